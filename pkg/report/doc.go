// Package report turns field state into text or HTML summaries rendered
// with pongo2 templates.
package report
