package api

import (
	"context"
	"errors"

	"golang.org/x/oauth2"
)

// ExchangePassword performs the OAuth2 password-grant exchange against the
// token endpoint. The form carries username, password, client_id,
// client_secret, and grant_type=password, matching what the identity provider
// expects from first-party clients.
//
// Failures map onto the client error taxonomy: *APIError when the provider
// rejects the grant (bad credentials, unknown client), *NetworkError when the
// provider cannot be reached.
func (c *Client) ExchangePassword(ctx context.Context, username, password string) (*TokenResponse, error) {
	conf := &oauth2.Config{
		ClientID:     c.oauthClientID,
		ClientSecret: c.oauthClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL: c.BaseURL() + EndpointToken,
			// The provider wants client credentials in the form body,
			// not in a basic auth header.
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	// Route the exchange through the client's own http.Client so timeouts
	// and test transports apply to the token call too.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	tok, err := conf.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, &APIError{
				StatusCode: retrieveErr.Response.StatusCode,
				Body:       truncate(string(retrieveErr.Body), maxErrorBody),
			}
		}
		return nil, &NetworkError{Cause: err}
	}

	return &TokenResponse{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
	}, nil
}
