package aiqsdk

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	t.Parallel()

	t.Run("400 uses error_description from body", func(t *testing.T) {
		failure := classifyStatus(http.StatusBadRequest, []byte(`{"error_description":"invalid_grant"}`))
		require.Equal(t, KindAuthenticationRejected, failure.Kind)
		require.Equal(t, http.StatusBadRequest, failure.StatusCode)
		require.Equal(t, "invalid_grant", failure.Message)
	})

	t.Run("400 without description falls back to status text", func(t *testing.T) {
		failure := classifyStatus(http.StatusBadRequest, []byte(`{}`))
		require.Equal(t, "Bad Request", failure.Message)
	})

	t.Run("400 with unparseable body falls back to status text", func(t *testing.T) {
		failure := classifyStatus(http.StatusBadRequest, []byte("not json"))
		require.Equal(t, "Bad Request", failure.Message)
	})

	t.Run("other statuses use status text", func(t *testing.T) {
		failure := classifyStatus(http.StatusInternalServerError, nil)
		require.Equal(t, KindAuthenticationRejected, failure.Kind)
		require.Equal(t, "Internal Server Error", failure.Message)

		failure = classifyStatus(http.StatusUnauthorized, []byte(`{"error_description":"ignored for 401"}`))
		require.Equal(t, "Unauthorized", failure.Message)
	})
}

func TestFailure(t *testing.T) {
	t.Parallel()

	t.Run("error string carries kind and message", func(t *testing.T) {
		failure := invalidInput("organization")
		require.EqualError(t, failure, "invalid_input: invalid organization")
	})

	t.Run("transport failures unwrap their cause", func(t *testing.T) {
		cause := fmt.Errorf("connection refused")
		failure := transportFailure(cause)
		require.ErrorIs(t, failure, cause)
		require.Equal(t, KindTransportFailure, failure.Kind)
	})

	t.Run("KindOf sees through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("fetching token: %w", malformedResponse("empty access token in response", nil))
		require.Equal(t, KindMalformedResponse, KindOf(wrapped))
	})

	t.Run("KindOf on foreign errors", func(t *testing.T) {
		require.Empty(t, KindOf(nil))
		require.Empty(t, KindOf(errors.New("plain")))
	})
}
