package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// normalizeText returns the text of every node in sel as a single line.
// Text nodes are joined with a space and runs of whitespace collapse to one
// space, so inline markup never glues words together. Script and style
// contents are skipped.
func normalizeText(sel *goquery.Selection) string {
	var words []string
	for _, n := range sel.Nodes {
		words = appendWords(words, n)
	}
	return strings.Join(words, " ")
}

func appendWords(words []string, n *html.Node) []string {
	switch n.Type {
	case html.TextNode:
		return append(words, strings.Fields(n.Data)...)
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return words
		}
	case html.CommentNode:
		return words
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		words = appendWords(words, c)
	}
	return words
}
