package validation_test

import (
	"testing"
	"time"

	"github.com/jrazmi/todolist/sdk/validation"
	"github.com/stretchr/testify/require"
)

func TestClonePointers(t *testing.T) {
	s := validation.StringPtr("milk")
	c := validation.CloneStringPtr(s)
	require.Equal(t, "milk", *c)
	*c = "bread"
	require.Equal(t, "milk", *s)
	require.Nil(t, validation.CloneStringPtr(nil))

	now := time.Now()
	tc := validation.CloneTimePtr(&now)
	require.True(t, tc.Equal(now))
	require.NotSame(t, &now, tc)
	require.Nil(t, validation.CloneTimePtr(nil))
}

func TestValueHelpers(t *testing.T) {
	require.Equal(t, "", validation.StringPtrValue(nil))
	require.Equal(t, "x", validation.StringPtrValue(validation.StringPtr("x")))
	require.True(t, *validation.BoolPtr(true))
}
