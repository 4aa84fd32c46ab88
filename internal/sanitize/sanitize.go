// Package sanitize strips active markup from user input before it is
// submitted. Script and style bodies are dropped entirely, the
// javascript: protocol is removed, and remaining text is HTML-escaped.
package sanitize

import (
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

var jsProtocolRe = regexp.MustCompile(`(?i)javascript:`)

// ignoreTags are elements whose text content is never user-visible.
var ignoreTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
}

// Clean returns the submittable form of text. Inputs without markup
// pass through escaped only.
func Clean(text string) string {
	if text == "" {
		return text
	}

	cleaned := text
	if strings.ContainsAny(text, "<>") {
		cleaned = stripMarkup(text)
	}
	cleaned = jsProtocolRe.ReplaceAllString(cleaned, "")
	return html.EscapeString(cleaned)
}

// stripMarkup parses the input as HTML and keeps only text outside
// ignored elements.
func stripMarkup(text string) string {
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		// Parse failures are nearly impossible with html.Parse, but a
		// raw fallback keeps the submission path alive.
		log.Warnf("Failed to parse input as HTML, escaping raw text: %v", err)
		return text
	}

	var b strings.Builder
	var traverse func(n *html.Node)
	traverse = func(n *html.Node) {
		if n == nil {
			return
		}
		if n.Type == html.ElementNode && ignoreTags[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			traverse(child)
		}
	}
	traverse(doc)
	return b.String()
}
