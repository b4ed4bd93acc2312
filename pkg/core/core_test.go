package core_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/leapstack-labs/leaprange/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestClass_String(t *testing.T) {
	assert.Equal(t, "generic", core.ClassGeneric.String())
	assert.Equal(t, "integer", core.ClassInteger.String())
	assert.Equal(t, "float", core.ClassFloat.String())
	assert.Equal(t, "unknown", core.Class(42).String())
}

func TestClass_Numeric(t *testing.T) {
	assert.False(t, core.ClassGeneric.Numeric())
	assert.True(t, core.ClassInteger.Numeric())
	assert.True(t, core.ClassFloat.Numeric())
}

func TestError(t *testing.T) {
	err := core.Errorf(core.ErrTypeMismatch, "max", "cannot exclude %s", "1.5")
	assert.EqualError(t, err, "max: cannot exclude 1.5")
	assert.ErrorIs(t, err, core.ErrTypeMismatch)
	assert.NotErrorIs(t, err, core.ErrInvalidArgument)

	var e *core.Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, "max", e.Op)

	bare := &core.Error{Kind: core.ErrInvalidArgument, Msg: "bad"}
	assert.EqualError(t, bare, "bad")
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("eval: %w", core.Errorf(core.ErrUnsupportedOperation, "last", "endless"))
	assert.Equal(t, core.ErrUnsupportedOperation, core.KindOf(wrapped))
	assert.Equal(t, core.ErrInvalidArgument, core.KindOf(core.ErrInvalidArgument))
	assert.Nil(t, core.KindOf(errors.New("other")))
	assert.Nil(t, core.KindOf(nil))
}
