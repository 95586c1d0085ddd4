// Package api provides the HTTP client for the OpenCareer job-listing API.
//
// The package exposes a client factory in two flavours: New returns an
// unauthenticated client bound to a base URL, NewAuthenticated returns the
// same client with a bearer token attached to every request. Both expose
// generic verb calls (Get, Post, PostForm, Delete) that decode JSON responses
// and fail with a *NetworkError (connection/timeout) or an *APIError
// (non-2xx status, carrying status code and body).
//
// Quick start:
//
//	client := api.New(api.WithBaseURL("https://api.example.com"))
//
//	tok, err := client.ExchangePassword(ctx, "alice", "s3cret")
//	if err != nil { ... }
//
//	me := api.NewAuthenticated(tok.AccessToken, api.WithBaseURL("https://api.example.com"))
//	var user api.User
//	err = me.Get(ctx, api.EndpointCurrentUser, &user)
//
// The client performs no retries and no caching.
package api

import "encoding/json"

// API endpoint paths, relative to the configured base URL.
const (
	// EndpointToken is the OAuth2 password-grant token endpoint.
	EndpointToken = "/o/token/"

	// EndpointCurrentUser returns the user record for the bearer token.
	EndpointCurrentUser = "/users/me/"

	// EndpointRegister creates a new user account.
	EndpointRegister = "/users/"

	// EndpointGoogleLogin is the federated login entry point. It is opened
	// in a browser, not called by this client.
	EndpointGoogleLogin = "/accounts/google/login/"

	// EndpointJobs lists job postings with search and pagination.
	EndpointJobs = "/jobs/"
)

// User is the user record returned by the identity endpoint.
type User struct {
	// ID is the numeric user identifier.
	ID int64 `json:"id"`

	// Username is the login name.
	Username string `json:"username"`

	// FirstName and LastName are the user's display names.
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`

	// Email is the contact address.
	Email string `json:"email,omitempty"`

	// Role distinguishes job seekers from recruiters.
	Role string `json:"role,omitempty"`

	// Phone is the optional contact number.
	Phone string `json:"phone,omitempty"`

	// Avatar is the URL of the profile image.
	Avatar string `json:"avatar,omitempty"`
}

// DisplayName returns the user's full name, falling back to the username.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Username
	}
}

// Job is a single job posting.
type Job struct {
	// ID is the numeric job identifier.
	ID int64 `json:"id"`

	// Title is the job title.
	Title string `json:"title"`

	// Description is the full posting text.
	Description string `json:"description,omitempty"`

	// Location is the workplace location.
	Location string `json:"location,omitempty"`

	// Salary is the offered salary; the server sends it as a decimal string.
	Salary json.Number `json:"salary,omitempty"`

	// Company is the hiring company's display name.
	Company string `json:"company,omitempty"`

	// JobType is the employment type (full-time, part-time, ...).
	JobType string `json:"job_type,omitempty"`

	// CreatedDate is the posting timestamp in the server's format.
	CreatedDate string `json:"created_date,omitempty"`
}

// JobPage is one page of job listings.
type JobPage struct {
	// Count is the total number of matching jobs across all pages.
	Count int `json:"count"`

	// Next and Previous are the server-provided page URLs, empty at the ends.
	Next     string `json:"next"`
	Previous string `json:"previous"`

	// Results are the jobs on this page.
	Results []Job `json:"results"`
}

// TokenResponse is the payload of a successful password-grant exchange.
type TokenResponse struct {
	// AccessToken is the opaque bearer token.
	AccessToken string `json:"access_token"`

	// TokenType is the token type, normally "Bearer".
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the token lifetime in seconds. The client does not
	// refresh tokens; this is informational only.
	ExpiresIn int64 `json:"expires_in,omitempty"`

	// Scope is the granted scope string.
	Scope string `json:"scope,omitempty"`
}

// RegisterInput is the payload for creating a new account.
type RegisterInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}
