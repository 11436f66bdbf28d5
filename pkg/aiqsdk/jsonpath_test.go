package aiqsdk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringAt(t *testing.T) {
	t.Parallel()

	t.Run("top-level field", func(t *testing.T) {
		value, err := stringAt([]byte(`{"access_token":"abc123"}`), "access_token")
		require.NoError(t, err)
		require.Equal(t, "abc123", value)
	})

	t.Run("nested field", func(t *testing.T) {
		value, err := stringAt([]byte(`{"links":{"token":"https://svc/token"}}`), "links", "token")
		require.NoError(t, err)
		require.Equal(t, "https://svc/token", value)
	})

	t.Run("empty string is returned as-is", func(t *testing.T) {
		// Emptiness checks belong to the caller, not the extractor
		value, err := stringAt([]byte(`{"access_token":""}`), "access_token")
		require.NoError(t, err)
		require.Empty(t, value)
	})

	t.Run("missing terminal field", func(t *testing.T) {
		_, err := stringAt([]byte(`{"links":{}}`), "links", "token")
		require.Equal(t, KindMalformedResponse, KindOf(err))
		require.Contains(t, err.Error(), `"token"`)
	})

	t.Run("missing intermediate field", func(t *testing.T) {
		_, err := stringAt([]byte(`{"data":{}}`), "links", "token")
		require.Equal(t, KindMalformedResponse, KindOf(err))
		require.Contains(t, err.Error(), `"links"`)
	})

	t.Run("intermediate field is not an object", func(t *testing.T) {
		_, err := stringAt([]byte(`{"links":"nope"}`), "links", "token")
		require.Equal(t, KindMalformedResponse, KindOf(err))
	})

	t.Run("terminal field is not a string", func(t *testing.T) {
		_, err := stringAt([]byte(`{"access_token":42}`), "access_token")
		require.Equal(t, KindMalformedResponse, KindOf(err))
	})

	t.Run("body is not JSON", func(t *testing.T) {
		_, err := stringAt([]byte(`<html>oops</html>`), "access_token")
		require.Equal(t, KindMalformedResponse, KindOf(err))
	})
}
