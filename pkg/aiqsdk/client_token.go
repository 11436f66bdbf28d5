package aiqsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

const (
	// grantType is the OAuth2 grant used by the supervisor's token endpoint.
	grantType = "password"

	// tokenScope is the fixed scope requested for integration tooling.
	tokenScope = "integration"

	// linksField/tokenLinkField locate the token endpoint inside the
	// supervisor's self-describing root document.
	linksField     = "links"
	tokenLinkField = "token"

	// accessTokenField holds the issued token in the exchange response.
	accessTokenField = "access_token"
)

// FetchAccessToken authenticates the given user against the supervisor and
// returns the access token for the session.
//
// The flow has two sequential steps, each a single HTTP round trip:
//
//  1. Discovery: GET <base>?orgName=<org> and read the token endpoint URL
//     from the root document's "links.token" field.
//  2. Exchange: POST a password-grant form to the discovered URL and read
//     the "access_token" field from the response.
//
// The returned token is guaranteed non-empty; a missing or empty token
// field is reported as a MalformedResponse failure. All parameters are
// validated before any network call, and a validation failure makes zero
// round trips. One attempt, one outcome: the SDK never retries.
func (c *SDKClient) FetchAccessToken(ctx context.Context, username, password, orgName string) (string, error) {
	if strings.TrimSpace(c.BaseURL) == "" {
		return "", invalidInput("URL")
	}
	if strings.TrimSpace(username) == "" {
		return "", invalidInput("username")
	}
	if strings.TrimSpace(password) == "" {
		return "", invalidInput("password")
	}
	if strings.TrimSpace(orgName) == "" {
		return "", invalidInput("organization")
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", invalidInputErr("URL", err)
	}
	if !base.IsAbs() || base.Host == "" {
		return "", invalidInput("URL")
	}

	tokenURL, err := c.discoverTokenURL(ctx, orgName)
	if err != nil {
		return "", err
	}

	return c.exchangeCredentials(ctx, tokenURL, username, password, orgName)
}

// discoverTokenURL performs the discovery step and validates that the
// advertised token link is an absolute URL usable for the exchange step.
func (c *SDKClient) discoverTokenURL(ctx context.Context, orgName string) (string, error) {
	discoveryURL := c.BaseURL + "?orgName=" + url.QueryEscape(orgName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, discoveryURL, nil)
	if err != nil {
		return "", invalidInputErr("URL", err)
	}

	tokenURL, err := c.requestValue(req, linksField, tokenLinkField)
	if err != nil {
		return "", err
	}

	parsed, err := url.Parse(tokenURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return "", malformedResponse("token link is not an absolute URL", err)
	}

	return tokenURL, nil
}

// exchangeCredentials performs the exchange step against the discovered
// token URL. The form fields are serialized in a fixed order: grant_type,
// scope, username, password.
func (c *SDKClient) exchangeCredentials(ctx context.Context, tokenURL, username, password, orgName string) (string, error) {
	form := encodeParams([]Param{
		{Name: "grant_type", Value: grantType},
		{Name: "scope", Value: tokenScope},
		{Name: "username", Value: username},
		{Name: "password", Value: password},
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form))
	if err != nil {
		return "", invalidInputErr("URL", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logger().DebugContext(ctx, "authenticating user",
		"username", username,
		"org", orgName,
	)

	token, err := c.requestValue(req, accessTokenField)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", malformedResponse("empty access token in response", nil)
	}

	return token, nil
}

// AddAuthenticationHeader authenticates the given user and sets the
// resulting bearer token as the Authorization header on req. The header
// value uses the "BEARER" prefix the supervisor expects.
func (c *SDKClient) AddAuthenticationHeader(ctx context.Context, req *http.Request, username, password, orgName string) error {
	token, err := c.FetchAccessToken(ctx, username, password, orgName)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "BEARER "+token)
	return nil
}
