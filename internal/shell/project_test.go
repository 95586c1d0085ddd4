package shell

import (
	"testing"

	"github.com/opencareer/jobcli/internal/api"
	"github.com/opencareer/jobcli/internal/session"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name        string
		session     session.Session
		reachable   []ScreenID
		unreachable []ScreenID
		active      ScreenID
	}{
		{
			name:        "nil session shows only login",
			session:     nil,
			reachable:   []ScreenID{ScreenLogin},
			unreachable: []ScreenID{ScreenHome, ScreenProfile},
			active:      ScreenLogin,
		},
		{
			name:        "session shows tabs, login unreachable",
			session:     &api.User{ID: 1, Username: "alice"},
			reachable:   []ScreenID{ScreenHome, ScreenProfile},
			unreachable: []ScreenID{ScreenLogin},
			active:      ScreenHome,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stack := Project(tt.session)
			for _, id := range tt.reachable {
				if !stack.Contains(id) {
					t.Errorf("expected %s reachable", id)
				}
			}
			for _, id := range tt.unreachable {
				if stack.Contains(id) {
					t.Errorf("expected %s unreachable", id)
				}
			}
			if stack.Active() != tt.active {
				t.Errorf("expected active %s, got %s", tt.active, stack.Active())
			}
		})
	}
}

func TestProjectIsPure(t *testing.T) {
	alice := &api.User{ID: 1, Username: "alice"}
	first := Project(alice)
	for i := 0; i < 5; i++ {
		again := Project(alice)
		if len(again) != len(first) || again.Active() != first.Active() {
			t.Fatalf("projection not stable: %v vs %v", again, first)
		}
	}
}
