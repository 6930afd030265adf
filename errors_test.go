package staylens_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jbialy/staylens"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := staylens.Errorf(staylens.ESCHEMAMISMATCH, "key %q not found", "niobeClientData")

	assert.Equal(t, staylens.ESCHEMAMISMATCH, staylens.ErrorCode(err))
	assert.Equal(t, "key \"niobeClientData\" not found", staylens.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, staylens.ErrorCode(nil))
}

func TestErrorCode_UnknownError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, staylens.EINTERNAL, staylens.ErrorCode(errors.New("boom")))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetching page: %w", staylens.Errorf(staylens.EUPSTREAM, "HTTP 503"))

	assert.Equal(t, staylens.EUPSTREAM, staylens.ErrorCode(err))
	assert.Equal(t, "HTTP 503", staylens.ErrorMessage(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, staylens.ErrorMessage(nil))
}
