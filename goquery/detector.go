package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/econbrief"
)

var _ econbrief.ChallengeDetector = (*Detector)(nil)

// DefaultChallengePhrases are texts shown by Cloudflare interstitials while
// the browser check runs.
var DefaultChallengePhrases = []string{
	"Just a moment",
	"Enable JavaScript",
}

// Detector identifies anti-automation challenge pages from their visible
// text. Phrase matching on rendered text is fragile, so it is kept behind
// econbrief.ChallengeDetector and can be replaced by a stronger signal.
type Detector struct {
	phrases []string
}

// NewDetector creates a Detector matching the given phrases.
// DefaultChallengePhrases are used when none are given.
func NewDetector(phrases ...string) *Detector {
	if len(phrases) == 0 {
		phrases = DefaultChallengePhrases
	}
	return &Detector{phrases: phrases}
}

// Challenged reports whether the text of doc, including its title and
// noscript fallbacks, contains a challenge phrase. Script, style and
// template contents are ignored.
func (d *Detector) Challenged(doc *econbrief.Document) bool {
	if doc == nil || doc.HTML == "" {
		return false
	}

	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc.HTML))
	if err != nil {
		return false
	}
	parsed.Find("script, style, template").Remove()

	text := normalizeText(parsed.Selection)
	for _, phrase := range d.phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}
