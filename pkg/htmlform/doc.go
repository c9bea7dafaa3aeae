// Package htmlform converts HTML form markup to and from form.Document
// trees using golang.org/x/net/html, and sanitises validator messages with
// bluemonday before they reach the document.
package htmlform
