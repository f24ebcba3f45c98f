package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codeError struct {
	code string
}

func (e *codeError) Error() string {
	return e.code
}

func isCode(code string) func(error) bool {
	return func(err error) bool {
		ce, ok := err.(*codeError)

		return ok && ce.code == code
	}
}

func TestAny(t *testing.T) {
	unregistered := &codeError{code: "unregistered"}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"direct", unregistered, true},
		{"wrapped", Wrap(unregistered, "send"), true},
		{"fmt wrapped", fmt.Errorf("retryable: %w", WithStack(unregistered)), true},
		{"joined", Join(New("quota"), Wrap(unregistered, "send")), true},
		{"other code", Wrap(&codeError{code: "internal"}, "send"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Any(tt.err, isCode("unregistered")))
		})
	}
}

func TestAsType(t *testing.T) {
	err := Wrapf(&codeError{code: "invalid-argument"}, "order %s", "o1")

	ce, ok := AsType[*codeError](err)
	assert.True(t, ok)
	assert.Equal(t, "invalid-argument", ce.code)

	_, ok = AsType[*codeError](New("plain"))
	assert.False(t, ok)
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}
