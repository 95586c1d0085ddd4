package session

import (
	"testing"

	"go.uber.org/goleak"

	"github.com/opencareer/jobcli/internal/api"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestReduce(t *testing.T) {
	alice := &api.User{ID: 1, Username: "alice"}
	bob := &api.User{ID: 2, Username: "bob"}

	tests := []struct {
		name    string
		current Session
		action  Action
		want    Session
	}{
		{name: "login from nil", current: nil, action: LoginAction(alice), want: alice},
		{name: "login replaces current", current: alice, action: LoginAction(bob), want: bob},
		{name: "logout clears session", current: alice, action: LogoutAction(), want: nil},
		{name: "logout when already nil", current: nil, action: LogoutAction(), want: nil},
		{name: "zero action is identity", current: alice, action: Action{}, want: alice},
		{name: "zero action on nil", current: nil, action: Action{}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reduce(tt.current, tt.action); got != tt.want {
				t.Errorf("Reduce() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReduceIsPure(t *testing.T) {
	alice := &api.User{ID: 1, Username: "alice"}
	for i := 0; i < 10; i++ {
		if got := Reduce(alice, LogoutAction()); got != nil {
			t.Fatalf("Reduce not referentially predictable on run %d: %v", i, got)
		}
	}
}
