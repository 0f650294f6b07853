// Package failure holds the error taxonomy shared by the git-pr pipeline.
//
// Local problems (unreadable files, malformed HEAD or config content) are
// kept apart from remote ones (forge rejections, undecodable responses) so the
// command can report the kind and exit with a distinct status.
package failure
