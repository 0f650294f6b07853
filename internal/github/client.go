package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	clog "github.com/charmbracelet/log"
	"github.com/goccy/go-json"
	gh "github.com/google/go-github/v68/github"
	"github.com/jmcampanini/git-pr/internal/failure"
	"github.com/jmcampanini/git-pr/internal/git"
)

// DefaultAPIURL is the REST base URL for github.com.
const DefaultAPIURL = "https://api.github.com/"

// APIURLForHost returns the REST base URL for a forge host. Hosts other than
// github.com are treated as GitHub Enterprise installations.
func APIURLForHost(host string) string {
	if host == "" || host == git.DefaultForgeHost {
		return DefaultAPIURL
	}
	return "https://" + host + "/api/v3/"
}

// Endpoint returns the URL a pull request for identity is posted to.
func Endpoint(apiURL string, identity git.RepoIdentity) string {
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}
	return apiURL + pullsPath(identity)
}

func pullsPath(identity git.RepoIdentity) string {
	return fmt.Sprintf("repos/%s/%s/pulls", identity.Author, identity.RepoName)
}

// Config holds the settings needed to submit pull requests.
type Config struct {
	// APIURL is the REST base URL, e.g. "https://api.github.com/".
	APIURL string
	// Token is the personal access token sent as the basic-auth password.
	Token string
	// Username is the basic-auth user. Empty means the repository author.
	Username string
	// Transport is the underlying round tripper. Nil uses http.DefaultTransport.
	Transport http.RoundTripper
}

// Client submits pull requests over the forge's REST API using basic auth.
type Client struct {
	apiURL    *url.URL
	log       *clog.Logger
	token     string
	transport http.RoundTripper
	username  string
}

var _ Forge = &Client{}

// New validates cfg and returns a Client.
func New(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, failure.Other(nil, "access token must be set")
	}

	raw := cfg.APIURL
	if raw == "" {
		raw = DefaultAPIURL
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	apiURL, err := url.Parse(raw)
	if err != nil {
		return nil, failure.Other(err, "invalid api url %q", cfg.APIURL)
	}
	if apiURL.Scheme != "http" && apiURL.Scheme != "https" {
		return nil, failure.Other(nil, "invalid api url %q: scheme must be http or https", cfg.APIURL)
	}

	return &Client{
		apiURL:    apiURL,
		log:       clog.Default().WithPrefix("github"),
		token:     cfg.Token,
		transport: cfg.Transport,
		username:  cfg.Username,
	}, nil
}

// Submit posts payload to /repos/{author}/{repo}/pulls once. Only 201 Created
// counts as success; any other status is read as the forge's error document.
func (c *Client) Submit(ctx context.Context, identity git.RepoIdentity, payload *gh.NewPullRequest) (Created, error) {
	username := c.username
	if username == "" {
		username = identity.Author
	}

	httpClient := &http.Client{
		Transport: &gh.BasicAuthTransport{
			Username:  username,
			Password:  c.token,
			Transport: c.transport,
		},
	}
	client := gh.NewClient(httpClient)
	client.BaseURL = c.apiURL

	req, err := client.NewRequest(http.MethodPost, pullsPath(identity), payload)
	if err != nil {
		return Created{}, failure.Other(err, "cannot build pull request")
	}

	c.log.Debug("Submitting pull request", "url", req.URL.String(), "user", username, "head", payload.GetHead(), "base", payload.GetBase())

	resp, err := httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return Created{}, failure.Other(err, "request to %s failed", req.URL.Redacted())
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Created{}, failure.Other(err, "cannot read response from %s", req.URL.Redacted())
	}

	if resp.StatusCode == http.StatusCreated {
		return decodeCreated(data)
	}

	c.log.Warn("Pull request rejected", "status", resp.StatusCode)
	return Created{}, decodeRejected(data, resp.StatusCode)
}

func decodeCreated(data []byte) (Created, error) {
	var body createdBody
	if err := json.Unmarshal(data, &body); err != nil {
		return Created{}, failure.Decode(err, "cannot decode created pull request")
	}
	if body.HTMLURL == nil || body.Number == nil {
		return Created{}, failure.Decode(nil, "created pull request is missing html_url or number")
	}
	if *body.Number < 0 {
		return Created{}, failure.Decode(nil, "created pull request has negative number %d", *body.Number)
	}
	return Created{URL: *body.HTMLURL, Number: *body.Number}, nil
}

func decodeRejected(data []byte, status int) error {
	var body rejectedBody
	if err := json.Unmarshal(data, &body); err != nil {
		return failure.Decode(err, "cannot decode error response (HTTP %d)", status)
	}
	if body.Message == nil {
		return failure.Decode(nil, "error response (HTTP %d) has no message", status)
	}
	return failure.API(body.reason())
}
