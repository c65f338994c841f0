package apperrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	ErrBase := New("base error")
	assert.Equal(t, "base error", ErrBase.Error())
	assert.Equal(t, "msg", ErrBase.New("msg").Error())
	assert.ErrorIs(t, ErrBase, ErrBase)

	ErrFirstLevel := ErrBase.New("first level")
	assert.Equal(t, "first level", ErrFirstLevel.Error())
	assert.ErrorIs(t, ErrFirstLevel, ErrBase)

	ErrOther := New("other error")
	ErrOtherMsg := ErrOther.Msg("other error msg")
	ErrWrapped := ErrFirstLevel.Err(ErrOtherMsg)
	assert.Equal(t, "first level", ErrWrapped.Error())
	assert.ErrorIs(t, ErrWrapped, ErrBase)
	assert.ErrorIs(t, ErrWrapped, ErrFirstLevel)
	assert.ErrorIs(t, ErrWrapped, ErrOther)
	assert.ErrorIs(t, ErrWrapped, ErrOtherMsg)

	err := errors.New("plain error")
	ErrWrapped = ErrFirstLevel.Err(err)
	assert.Equal(t, "first level", ErrWrapped.Error())
	assert.ErrorIs(t, ErrWrapped, ErrBase)
	assert.ErrorIs(t, ErrWrapped, err)

	ErrWrapped = ErrFirstLevel.MsgErr("msg", err)
	assert.Equal(t, "msg", ErrWrapped.Error())
	assert.ErrorIs(t, ErrWrapped, ErrBase)
	assert.ErrorIs(t, ErrWrapped, err)

	goErr := fmt.Errorf("go error")
	ErrWrappedGo := ErrFirstLevel.Err(goErr)
	assert.ErrorIs(t, ErrWrappedGo, ErrBase)
	assert.ErrorIs(t, ErrWrappedGo, goErr)
}

func TestErrorStatusCode(t *testing.T) {
	ErrHTTP := New("http error").SetStatusCode(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, ErrHTTP.StatusCode())

	derived := ErrHTTP.Msg("resource missing")
	assert.Equal(t, http.StatusNotFound, derived.StatusCode())
	assert.ErrorIs(t, derived, ErrHTTP)

	// SetStatusCode must not mutate the original
	changed := derived.SetStatusCode(http.StatusBadGateway)
	assert.Equal(t, http.StatusBadGateway, changed.StatusCode())
	assert.Equal(t, http.StatusNotFound, derived.StatusCode())
}

func TestUnwrapAll(t *testing.T) {
	base := New("base")
	e1 := fmt.Errorf("e1")
	e2 := fmt.Errorf("e2")
	wrapped := base.Err(e1, e2)
	all := wrapped.UnwrapAll()
	assert.Len(t, all, 3)
	assert.ErrorIs(t, wrapped, e1)
	assert.ErrorIs(t, wrapped, e2)
}
