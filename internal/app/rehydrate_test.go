package app

import (
	"context"
	"testing"

	"github.com/opencareer/jobcli/internal/api"
)

func TestRehydrateRestoresSession(t *testing.T) {
	server := authServer(t, nil)
	defer server.Close()

	flow, tokens, sessions := newTestFlow(server.URL)
	tokens.token = "T"

	if err := flow.Rehydrate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	current := sessions.Current()
	if current == nil || current.Username != "alice" {
		t.Errorf("expected rehydrated session for alice, got %v", current)
	}
}

func TestRehydrateWithoutTokenIsNoop(t *testing.T) {
	server := authServer(t, nil)
	defer server.Close()

	flow, _, sessions := newTestFlow(server.URL)

	if err := flow.Rehydrate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sessions.Current() != nil {
		t.Errorf("expected nil session, got %v", sessions.Current())
	}
}

func TestRehydrateClearsStaleToken(t *testing.T) {
	server := authServer(t, nil)
	defer server.Close()

	flow, tokens, sessions := newTestFlow(server.URL)
	tokens.token = "stale"

	if err := flow.Rehydrate(context.Background()); err != nil {
		t.Fatalf("a stale token is not an error, got %v", err)
	}
	if sessions.Current() != nil {
		t.Errorf("expected nil session, got %v", sessions.Current())
	}
	if tok, _ := tokens.Load(); tok != "" {
		t.Errorf("stale token should be cleared, got %q", tok)
	}
}

func TestRehydrateKeepsTokenOnNetworkFailure(t *testing.T) {
	server := authServer(t, nil)
	addr := server.URL
	server.Close()

	flow, tokens, sessions := newTestFlow(addr)
	tokens.token = "T"

	err := flow.Rehydrate(context.Background())
	if err == nil {
		t.Fatal("expected network error, got nil")
	}
	if sessions.Current() != nil {
		t.Errorf("expected nil session, got %v", sessions.Current())
	}
	if tok, _ := tokens.Load(); tok != "T" {
		t.Errorf("token must survive a network failure, got %q", tok)
	}
}

func TestJobsUsesTokenWhenPresent(t *testing.T) {
	flowToken := ""
	server := authServerWithJobs(t, &flowToken)
	defer server.Close()

	flow, tokens, _ := newTestFlow(server.URL)

	// Unauthenticated listing works.
	page, err := flow.Jobs(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Count != 1 {
		t.Errorf("expected count 1, got %d", page.Count)
	}
	if flowToken != "" {
		t.Errorf("unauthenticated listing sent auth header: %q", flowToken)
	}

	// With a persisted token the bearer rides along.
	tokens.token = "T"
	if _, err := flow.Jobs(context.Background(), "", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flowToken != "Bearer T" {
		t.Errorf("expected bearer header, got %q", flowToken)
	}
}

func TestRegisterValidatesInput(t *testing.T) {
	flow, _, _ := newTestFlow("https://api.example.com")

	if _, err := flow.Register(context.Background(), api.RegisterInput{Username: "x"}); err == nil {
		t.Error("expected validation error for missing password")
	}
}
