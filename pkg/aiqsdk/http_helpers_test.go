package aiqsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/appearnetworks/aiq-sdk-go/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestRequestsCarryCorrelationIDs(t *testing.T) {
	t.Parallel()

	var requestIDs []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDs = append(requestIDs, r.Header.Get("X-Request-Id"))
		if r.URL.Path == "/oauth2/token" {
			fmt.Fprint(w, `{"access_token":"abc123"}`)
			return
		}
		fmt.Fprintf(w, `{"links":{"token":%q}}`, "http://"+r.Host+"/oauth2/token")
	}))
	t.Cleanup(srv.Close)

	client := NewSDKClient(srv.URL)
	_, err := client.FetchAccessToken(context.Background(), "jane", "s3cret", "acme")
	require.NoError(t, err)

	// Discovery and exchange each get their own ULID
	require.Len(t, requestIDs, 2)
	require.NotEqual(t, requestIDs[0], requestIDs[1])
	for _, id := range requestIDs {
		_, err := idx.Parse(id)
		require.NoError(t, err)
	}
}
