package github

import (
	"fmt"
	"strings"

	gh "github.com/google/go-github/v68/github"
)

// Created is a pull request the forge accepted.
type Created struct {
	URL    string
	Number int
}

func (c Created) String() string {
	return fmt.Sprintf("#%d %s", c.Number, c.URL)
}

// createdBody is the part of a 201 response that is required.
type createdBody struct {
	HTMLURL *string `json:"html_url"`
	Number  *int    `json:"number"`
}

// rejectedBody is the forge's error document. Errors is only present on
// validation failures.
type rejectedBody struct {
	Message *string    `json:"message"`
	Errors  []gh.Error `json:"errors"`
}

// reason returns the forge message, followed by any per-field error messages,
// e.g. "Validation Failed (A pull request already exists for jafow:feat)".
func (b rejectedBody) reason() string {
	var details []string
	for _, e := range b.Errors {
		if e.Message != "" {
			details = append(details, e.Message)
		}
	}
	if len(details) == 0 {
		return *b.Message
	}
	return fmt.Sprintf("%s (%s)", *b.Message, strings.Join(details, "; "))
}
