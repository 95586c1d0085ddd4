package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExchangePasswordSendsGrantForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != EndpointToken {
			t.Errorf("unexpected path: %s", r.URL.Path)
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		for key, want := range map[string]string{
			"grant_type":    "password",
			"username":      "alice",
			"password":      "s3cret",
			"client_id":     "client-id",
			"client_secret": "client-secret",
		} {
			if got := r.PostForm.Get(key); got != want {
				t.Errorf("form %s: expected %q, got %q", key, want, got)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "T", "token_type": "Bearer", "expires_in": 36000}`))
	}))
	defer server.Close()

	client := New(
		WithBaseURL(server.URL),
		WithOAuthClient("client-id", "client-secret"),
	)

	tok, err := client.ExchangePassword(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.AccessToken != "T" {
		t.Errorf("expected access token T, got %s", tok.AccessToken)
	}
	if tok.TokenType != "Bearer" {
		t.Errorf("expected token type Bearer, got %s", tok.TokenType)
	}
}

func TestExchangePasswordRejectedGrant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "invalid_grant"}`))
	}))
	defer server.Close()

	client := New(
		WithBaseURL(server.URL),
		WithOAuthClient("client-id", "client-secret"),
	)

	_, err := client.ExchangePassword(context.Background(), "alice", "wrong")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrAPI) {
		t.Errorf("expected errors.Is(err, ErrAPI), got %v", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", apiErr.StatusCode)
	}
}

func TestExchangePasswordUnreachableProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	client := New(WithBaseURL(addr), WithOAuthClient("id", "secret"))

	_, err := client.ExchangePassword(context.Background(), "alice", "s3cret")
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("expected errors.Is(err, ErrNetwork), got %v", err)
	}
}
