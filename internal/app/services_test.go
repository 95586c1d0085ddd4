package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opencareer/jobcli/internal/api"
)

// authServerWithJobs fakes the jobs endpoint and records the Authorization
// header it saw.
func authServerWithJobs(t *testing.T, sawAuth *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case api.EndpointJobs:
			*sawAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(api.JobPage{
				Count:   1,
				Results: []api.Job{{ID: 1, Title: "Gardener"}},
			})
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}))
}
