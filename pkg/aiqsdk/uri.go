package aiqsdk

import (
	"net/url"
	"strings"
)

// integrationPathPrefix is the path prefix for every supervisor action.
const integrationPathPrefix = "integration"

// Param is an ordered query parameter pair. Unlike url.Values, a []Param
// preserves the caller's ordering and allows duplicate names, both of which
// the supervisor's action endpoints rely on.
type Param struct {
	Name  string
	Value string
}

// BuildIntegrationURI builds the URI of a supervisor action for the given
// organization:
//
//	<base>/integration/<org>/<action>[?name=value&...]
//
// Organization and action are percent-encoded as path segments; query
// parameters are appended in the order given. The construction is pure and
// performs no network I/O. Blank inputs and bases that cannot be assembled
// into a valid absolute URI fail with an InvalidInput failure.
func BuildIntegrationURI(baseURL, orgName, action string, params ...Param) (string, error) {
	if strings.TrimSpace(baseURL) == "" {
		return "", invalidInput("URL")
	}
	if strings.TrimSpace(orgName) == "" {
		return "", invalidInput("organization")
	}
	if strings.TrimSpace(action) == "" {
		return "", invalidInput("action")
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", invalidInputErr("URL", err)
	}
	if !base.IsAbs() || base.Host == "" {
		return "", invalidInput("URL")
	}

	var b strings.Builder
	b.WriteString(strings.TrimSuffix(baseURL, "/"))
	b.WriteByte('/')
	b.WriteString(integrationPathPrefix)
	b.WriteByte('/')
	b.WriteString(url.PathEscape(orgName))
	b.WriteByte('/')
	b.WriteString(url.PathEscape(action))

	if len(params) > 0 {
		b.WriteByte('?')
		b.WriteString(encodeParams(params))
	}

	uri := b.String()
	if _, err := url.Parse(uri); err != nil {
		return "", invalidInputErr("URL", err)
	}

	return uri, nil
}

// IntegrationURI is BuildIntegrationURI against the client's base URL.
func (c *SDKClient) IntegrationURI(orgName, action string, params ...Param) (string, error) {
	return BuildIntegrationURI(c.BaseURL, orgName, action, params...)
}

// encodeParams form-encodes pairs preserving their order. url.Values.Encode
// sorts by key, which would break both the action query contract and the
// fixed field order of the token exchange body.
func encodeParams(params []Param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
