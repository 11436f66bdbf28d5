package aiqsdk

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// TokenSource returns an oauth2.TokenSource that runs the full
// discovery-and-exchange flow on every Token call. The SDK does not cache
// or refresh tokens; callers that want reuse should wrap the result in
// oauth2.ReuseTokenSource, which will honor the Expiry hint when the
// supervisor issues JWT access tokens.
func (c *SDKClient) TokenSource(ctx context.Context, username, password, orgName string) oauth2.TokenSource {
	return &tokenSource{
		client:   c,
		ctx:      ctx,
		username: username,
		password: password,
		orgName:  orgName,
	}
}

type tokenSource struct {
	client   *SDKClient
	ctx      context.Context
	username string
	password string
	orgName  string
}

// Token implements oauth2.TokenSource.
func (ts *tokenSource) Token() (*oauth2.Token, error) {
	access, err := ts.client.FetchAccessToken(ts.ctx, ts.username, ts.password, ts.orgName)
	if err != nil {
		return nil, err
	}

	token := &oauth2.Token{
		AccessToken: access,
		TokenType:   "BEARER",
	}
	if expiry, ok := TokenExpiry(access); ok {
		token.Expiry = expiry
	}

	return token, nil
}

// TokenExpiry reads the exp claim from a JWT access token without verifying
// the signature. Supervisors are free to issue opaque tokens; those report
// no expiry and the second return value is false.
func TokenExpiry(raw string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}, false
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, false
	}

	return expiry.Time, true
}
