/*
Package aiqsdk provides a client SDK for the AIQ integration supervisor.

# Overview

Tools that talk to an integration supervisor need two things before they can
issue real requests: the organization-scoped URI of the action they want to
call, and a bearer token obtained through the supervisor's password-grant
flow. This package implements both, and nothing else — no caching, no
retries, no upload mechanics. Callers own everything around it.

Create a client and fetch a token:

	client := aiqsdk.NewSDKClient("https://supervisor.example.com/token")

	token, err := client.FetchAccessToken(ctx, username, password, orgName)
	if err != nil {
		// inspect aiqsdk.KindOf(err) to branch on the failure class
	}

Or let the SDK attach the header to an outbound request directly:

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	err := client.AddAuthenticationHeader(ctx, req, username, password, orgName)

# Authentication Flow

The supervisor does not publish its token endpoint; it is discovered from a
self-describing root document. FetchAccessToken therefore runs two
sequential HTTP round trips:

 1. GET <base>?orgName=<org>, reading the endpoint URL from "links.token"
 2. POST grant_type=password&scope=integration&username=…&password=… to the
    discovered URL, reading "access_token" from the response

Each call is one attempt with one outcome. Credentials are held only for
the duration of the call and never logged.

# Action URIs

BuildIntegrationURI resolves an action against a base URL:

	uri, err := aiqsdk.BuildIntegrationURI(base, org, "datasync", aiqsdk.Param{Name: "since", Value: cursor})
	// => <base>/integration/<org>/datasync?since=…

Organization and action are percent-encoded as path segments. Query
parameters keep the caller's order and may repeat, which url.Values cannot
express — hence the Param slice.

# Error Handling

Every failure is a *Failure carrying one of four kinds:

  - KindInvalidInput: a required parameter was blank or unencodable;
    detected before any network I/O
  - KindTransportFailure: the round trip itself failed
  - KindAuthenticationRejected: the supervisor answered non-200; the
    message comes from error_description (HTTP 400) or the status text
  - KindMalformedResponse: unparseable body, missing field path, or an
    empty access token

Use KindOf to classify without type assertions:

	if aiqsdk.KindOf(err) == aiqsdk.KindAuthenticationRejected {
		// bad credentials, prompt the user again
	}

# Thread Safety

SDKClient is stateless between calls and safe for concurrent use over its
pooled HTTP client. Each request's response body is fully consumed and
closed on every path, so connections are returned to the pool
deterministically.
*/
package aiqsdk
