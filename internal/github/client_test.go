package github

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	gh "github.com/google/go-github/v68/github"
	"github.com/jmcampanini/git-pr/internal/failure"
	"github.com/jmcampanini/git-pr/internal/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIdentity = git.RepoIdentity{Author: "jafow", RepoName: "git-pr"}

func testPayload() *gh.NewPullRequest {
	return &gh.NewPullRequest{
		Title: gh.Ptr("test title"),
		Body:  gh.Ptr("this is a test msg body"),
		Head:  gh.Ptr("feat"),
		Base:  gh.Ptr("master"),
	}
}

// recordedRequest captures what the fake forge received.
type recordedRequest struct {
	method   string
	path     string
	user     string
	password string
	hasAuth  bool
	body     map[string]any
}

func newForge(t *testing.T, status int, body string) (*httptest.Server, *recordedRequest) {
	t.Helper()

	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.user, rec.password, rec.hasAuth = r.BasicAuth()
		data, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(data, &rec.body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func newTestClient(t *testing.T, srv *httptest.Server, username string) *Client {
	t.Helper()
	client, err := New(Config{APIURL: srv.URL, Token: "s3cret", Username: username})
	require.NoError(t, err)
	return client
}

func TestClient_Submit_Created(t *testing.T) {
	srv, rec := newForge(t, http.StatusCreated, `{"html_url": "https://x/1", "number": 1, "state": "open"}`)
	client := newTestClient(t, srv, "")

	created, err := client.Submit(context.Background(), testIdentity, testPayload())
	require.NoError(t, err)

	assert.Equal(t, Created{URL: "https://x/1", Number: 1}, created)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/repos/jafow/git-pr/pulls", rec.path)
	assert.True(t, rec.hasAuth)
	assert.Equal(t, "jafow", rec.user)
	assert.Equal(t, "s3cret", rec.password)
	assert.Equal(t, map[string]any{
		"title": "test title",
		"body":  "this is a test msg body",
		"head":  "feat",
		"base":  "master",
	}, rec.body)
}

func TestClient_Submit_UsernameOverride(t *testing.T) {
	srv, rec := newForge(t, http.StatusCreated, `{"html_url": "https://x/2", "number": 2}`)
	client := newTestClient(t, srv, "octocat")

	_, err := client.Submit(context.Background(), testIdentity, testPayload())
	require.NoError(t, err)
	assert.Equal(t, "octocat", rec.user)
	assert.Equal(t, "/repos/jafow/git-pr/pulls", rec.path)
}

func TestClient_Submit_Failures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind failure.Kind
		wantErr  string
	}{
		{
			name:     "rejected with message",
			status:   http.StatusUnprocessableEntity,
			body:     `{"message": "already exists"}`,
			wantKind: failure.KindAPI,
			wantErr:  "already exists",
		},
		{
			name:     "validation errors are appended",
			status:   http.StatusUnprocessableEntity,
			body:     `{"message": "Validation Failed", "errors": [{"resource": "PullRequest", "code": "custom", "message": "A pull request already exists for jafow:feat."}]}`,
			wantKind: failure.KindAPI,
			wantErr:  "Validation Failed (A pull request already exists for jafow:feat.)",
		},
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{"message": "Bad credentials", "documentation_url": "https://docs.github.com/rest"}`,
			wantKind: failure.KindAPI,
			wantErr:  "Bad credentials",
		},
		{
			name:     "other success status is not created",
			status:   http.StatusOK,
			body:     `{"message": "unexpected"}`,
			wantKind: failure.KindAPI,
			wantErr:  "unexpected",
		},
		{
			name:     "created with malformed body",
			status:   http.StatusCreated,
			body:     `not json`,
			wantKind: failure.KindDecode,
		},
		{
			name:     "created without number",
			status:   http.StatusCreated,
			body:     `{"html_url": "https://x/1"}`,
			wantKind: failure.KindDecode,
			wantErr:  "created pull request is missing html_url or number",
		},
		{
			name:     "created with wrong field type",
			status:   http.StatusCreated,
			body:     `{"html_url": "https://x/1", "number": "one"}`,
			wantKind: failure.KindDecode,
		},
		{
			name:     "rejected with html body",
			status:   http.StatusBadGateway,
			body:     `<html>bad gateway</html>`,
			wantKind: failure.KindDecode,
		},
		{
			name:     "rejected without message",
			status:   http.StatusNotFound,
			body:     `{}`,
			wantKind: failure.KindDecode,
			wantErr:  "error response (HTTP 404) has no message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newForge(t, tt.status, tt.body)
			client := newTestClient(t, srv, "")

			_, err := client.Submit(context.Background(), testIdentity, testPayload())
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, failure.KindOf(err))
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestClient_Submit_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client := newTestClient(t, srv, "")
	srv.Close()

	_, err := client.Submit(context.Background(), testIdentity, testPayload())
	require.Error(t, err)
	assert.Equal(t, failure.KindOther, failure.KindOf(err))
	assert.NotContains(t, err.Error(), "s3cret")
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
		wantURL string
	}{
		{
			name:    "defaults to github.com api",
			cfg:     Config{Token: "t"},
			wantURL: DefaultAPIURL,
		},
		{
			name:    "adds trailing slash",
			cfg:     Config{Token: "t", APIURL: "https://git.corp.example.com/api/v3"},
			wantURL: "https://git.corp.example.com/api/v3/",
		},
		{
			name:    "missing token",
			cfg:     Config{},
			wantErr: "access token must be set",
		},
		{
			name:    "unsupported scheme",
			cfg:     Config{Token: "t", APIURL: "ftp://example.com/"},
			wantErr: `invalid api url "ftp://example.com/": scheme must be http or https`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.cfg)
			if tt.wantErr != "" {
				assert.Nil(t, client)
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, client.apiURL.String())
		})
	}
}

func TestEndpoint(t *testing.T) {
	assert.Equal(t, "https://api.github.com/repos/jafow/git-pr/pulls", Endpoint(DefaultAPIURL, testIdentity))
	assert.Equal(t, "https://git.corp.example.com/api/v3/repos/jafow/git-pr/pulls", Endpoint("https://git.corp.example.com/api/v3", testIdentity))
}

func TestAPIURLForHost(t *testing.T) {
	assert.Equal(t, DefaultAPIURL, APIURLForHost(""))
	assert.Equal(t, DefaultAPIURL, APIURLForHost("github.com"))
	assert.Equal(t, "https://git.corp.example.com/api/v3/", APIURLForHost("git.corp.example.com"))
}
