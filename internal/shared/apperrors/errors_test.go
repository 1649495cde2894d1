package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf_WalksWrappedChain(t *testing.T) {
	base := NotFound("booking %s not found", "BK1")
	wrapped := fmt.Errorf("while confirming: %w", base)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsConflict(wrapped))
}

func TestKindOf_InsufficientSeats(t *testing.T) {
	seatsErr := &InsufficientSeatsError{FareClass: "FIRST", Required: 3, Available: 1}
	wrapped := fmt.Errorf("create booking: %w", seatsErr)

	assert.Equal(t, KindInsufficientSeats, KindOf(wrapped))

	var target *InsufficientSeatsError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, 3, target.Required)
}

func TestKindOf_PlainErrorIsUnknown(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", NotFound("missing"), http.StatusNotFound},
		{"validation", Validation("bad input"), http.StatusBadRequest},
		{"conflict", Conflict("duplicate"), http.StatusConflict},
		{"booking state", BookingState("already cancelled"), http.StatusConflict},
		{"insufficient seats", &InsufficientSeatsError{FareClass: "ECONOMY"}, http.StatusConflict},
		{"gateway failure", GatewayFailure(errors.New("timeout"), "charge failed"), http.StatusBadGateway},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, HTTPStatus(tc.err))
		})
	}
}

func TestGatewayFailure_PreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := GatewayFailure(cause, "charge failed for %s", "TXN_1")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "TXN_1")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", KindNotFound.String())
	assert.Equal(t, "GATEWAY_FAILURE", KindGatewayFailure.String())
	assert.Equal(t, "UNKNOWN", KindUnknown.String())
}
