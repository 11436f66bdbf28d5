package aiqsdk

import (
	"io"
	"net/http"

	"github.com/appearnetworks/aiq-sdk-go/pkg/idx"
)

// doRequest performs a single HTTP round trip and returns the status code
// and the fully read body. The response body is always drained and closed
// before returning, on error paths included, so the underlying connection
// goes back to the pool deterministically.
//
// Any I/O failure, whether sending the request or reading the body, is
// classified as a TransportFailure without attempting to interpret a body.
func (c *SDKClient) doRequest(req *http.Request) (int, []byte, error) {
	req.Header.Set("X-Request-Id", string(idx.New()))

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return 0, nil, transportFailure(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, transportFailure(err)
	}

	return resp.StatusCode, body, nil
}

// requestValue is the response-handling routine shared by the discovery and
// exchange steps: perform the request, then on HTTP 200 extract the string
// at path from the JSON body, and on anything else classify the status into
// a Failure instead of attempting extraction.
func (c *SDKClient) requestValue(req *http.Request, path ...string) (string, error) {
	status, body, err := c.doRequest(req)
	if err != nil {
		return "", err
	}

	if status != http.StatusOK {
		failure := classifyStatus(status, body)
		c.logger().DebugContext(req.Context(), "supervisor request rejected",
			"method", req.Method,
			"status", status,
			"request_id", req.Header.Get("X-Request-Id"),
		)
		return "", failure
	}

	return stringAt(body, path...)
}
