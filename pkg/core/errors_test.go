package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuiteError_Error(t *testing.T) {
	err := NewSuiteError(ErrCategoryElement, "element_not_found", "element not found")
	assert.Equal(t, "element not found", err.Error())

	withCause := err.WithCause(errors.New("timeout after 15s"))
	assert.Equal(t, "element not found: timeout after 15s", withCause.Error())
}

func TestSuiteError_IsMatchesCopies(t *testing.T) {
	err := ErrElementNotFound.
		WithCause(errors.New("no such element")).
		WithDetails(map[string]interface{}{"locator": "accessibility id=input-email"})

	assert.True(t, errors.Is(err, ErrElementNotFound))
	assert.False(t, errors.Is(err, ErrNotInteractable))
	assert.False(t, errors.Is(err, ErrServerUnreachable))
}

func TestSuiteError_IsRejectsPlainErrors(t *testing.T) {
	assert.False(t, errors.Is(errors.New("boom"), ErrElementNotFound))
	assert.False(t, ErrElementNotFound.Is(errors.New("boom")))
}

func TestSuiteError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := ErrServerUnreachable.WithCause(cause)

	assert.True(t, errors.Is(err, cause))
	wrapped := fmt.Errorf("opening session: %w", err)
	assert.True(t, errors.Is(wrapped, ErrServerUnreachable))
	assert.True(t, errors.Is(wrapped, cause))
}

func TestSuiteError_WithDetailsMerges(t *testing.T) {
	base := ErrElementNotFound.WithDetails(map[string]interface{}{"locator": "id=foo"})
	merged := base.WithDetails(map[string]interface{}{"timeout": "5s"})

	assert.Equal(t, "id=foo", merged.Details["locator"])
	assert.Equal(t, "5s", merged.Details["timeout"])

	// The original must not pick up the new key.
	assert.NotContains(t, base.Details, "timeout")
	assert.Nil(t, ErrElementNotFound.Details)
}

func TestSuiteError_WithMessage(t *testing.T) {
	err := ErrSessionRejected.WithMessage("no session ID in response")
	assert.Equal(t, "no session ID in response", err.Error())
	assert.True(t, errors.Is(err, ErrSessionRejected))
}

func TestPredefinedErrorCategories(t *testing.T) {
	tests := []struct {
		err      *SuiteError
		category ErrorCategory
	}{
		{ErrElementNotFound, ErrCategoryElement},
		{ErrNotInteractable, ErrCategoryInteraction},
		{ErrServerUnreachable, ErrCategoryConnection},
		{ErrBackendUnreachable, ErrCategoryConnection},
		{ErrUnexpectedResponse, ErrCategoryConnection},
		{ErrInvalidCapabilities, ErrCategoryConfig},
		{ErrSessionRejected, ErrCategoryConfig},
		{ErrUnknownTab, ErrCategoryConfig},
	}

	for _, tt := range tests {
		t.Run(tt.err.Code, func(t *testing.T) {
			require.Equal(t, tt.category, tt.err.Category)
		})
	}
}

func TestErrorCategoryString(t *testing.T) {
	assert.Equal(t, "element", ErrCategoryElement.String())
	assert.Equal(t, "interaction", ErrCategoryInteraction.String())
	assert.Equal(t, "connection", ErrCategoryConnection.String())
	assert.Equal(t, "config", ErrCategoryConfig.String())
	assert.Equal(t, "none", ErrCategoryNone.String())
}
