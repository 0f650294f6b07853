// Package message collects the pull request title and description.
//
// A scratch file is seeded with an instructional footer, handed to the user's
// editor, and read back once the editor exits. The first line becomes the
// title; the following lines up to the footer become the description.
package message
