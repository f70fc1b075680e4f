// Package refs extracts media references from Markdown documents.
//
// Two forms are recognized, both requiring the media folder prefix
// (default "images/"):
//
//	![alt](images/<name>)
//	<img|video|audio|source ... src="images/<name>" ...>
//
// HTML matching is a regular expression, not a parser: quotes inside values
// and tags split across lines are not handled. Names are returned verbatim
// after the prefix, so "images/sub/a.png" yields "sub/a.png".
package refs

import (
	"regexp"
)

// DefaultMediaDir is the reference prefix used by [Extract].
const DefaultMediaDir = "images"

// Extractor holds the compiled patterns for one media folder prefix.
type Extractor struct {
	prefix   string
	markdown *regexp.Regexp
	html     *regexp.Regexp
}

// NewExtractor compiles the reference patterns for mediaDir (e.g. "images").
func NewExtractor(mediaDir string) *Extractor {
	p := regexp.QuoteMeta(mediaDir + "/")
	return &Extractor{
		prefix: mediaDir + "/",
		markdown: regexp.MustCompile(
			`!\[.*?\]\(` + p + `(.*?)\)`),
		// The opening and closing quotes are matched independently, so
		// src="images/a.png' is accepted as well.
		html: regexp.MustCompile(
			`(?:<img|<video|<audio|<source).*?src=["']` + p + `(.*?)['"].*?>`),
	}
}

// Prefix returns the path prefix stripped from every reference.
func (e *Extractor) Prefix() string { return e.prefix }

// Extract returns the distinct media names referenced in text.
func (e *Extractor) Extract(text string) Set {
	out := make(Set)
	for _, re := range []*regexp.Regexp{e.markdown, e.html} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			out.Add(m[1])
		}
	}
	return out
}

var defaultExtractor = NewExtractor(DefaultMediaDir)

// Extract returns the distinct names referenced under "images/" in text.
func Extract(text string) Set {
	return defaultExtractor.Extract(text)
}
