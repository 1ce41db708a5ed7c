package goquery

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/econbrief"
)

var _ econbrief.BriefingExtractor = (*BriefingExtractor)(nil)

// Marker is a content marker together with the fragment kind it denotes.
type Marker struct {
	Strategy
	Kind econbrief.FragmentKind
}

// ArticleContainers locate the primary article container.
var ArticleContainers = Strategies{
	MustStrategy("article-testid", `article[data-testid="Article"]`),
}

// BriefingMarkers select briefing fragments. An element is classified by
// the first marker it matches.
var BriefingMarkers = []Marker{
	{Strategy: MustStrategy("brief-paragraph", `p[data-component="the-world-in-brief-paragraph"]`), Kind: econbrief.FragmentParagraph},
	{Strategy: MustStrategy("brief-heading", `.css-p09rkj.e1pqka930`), Kind: econbrief.FragmentHeading},
	{Strategy: MustStrategy("paragraph", `p[data-component="paragraph"]`), Kind: econbrief.FragmentParagraph},
}

// BriefingExtractor extracts the daily briefing from its listing page as a
// stream of headings and paragraphs.
type BriefingExtractor struct {
	Detector   econbrief.ChallengeDetector
	Containers Strategies
	Markers    []Marker
}

// NewBriefingExtractor creates a BriefingExtractor with the default
// detector, container strategies and markers.
func NewBriefingExtractor() *BriefingExtractor {
	return &BriefingExtractor{
		Detector:   NewDetector(),
		Containers: ArticleContainers,
		Markers:    BriefingMarkers,
	}
}

// ExtractBriefing returns the formatted briefing.
//
// The search is scoped to the article container when there is one and to
// the whole page otherwise, since listing pages do not always carry it.
func (e *BriefingExtractor) ExtractBriefing(doc *econbrief.Document) (string, error) {
	evidence := econbrief.Evidence{
		Subject:        econbrief.SubjectBriefing,
		ContainerFound: true,
	}
	if doc != nil && e.Detector.Challenged(doc) {
		evidence.Challenged = true
		return "", econbrief.Classify(evidence)
	}
	if doc.Outcome() != econbrief.OutcomeContent {
		return "", econbrief.FetchFailed()
	}

	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc.HTML))
	if err != nil {
		return "", fmt.Errorf("parsing briefing HTML: %w", err)
	}

	scope := parsed.Selection
	if container, _, ok := e.Containers.First(parsed.Selection); ok {
		scope = container
	}

	fragments, matched := e.fragments(scope)
	text := econbrief.FormatBriefing(fragments)

	evidence.Matched = matched
	evidence.Length = utf8.RuneCountInString(text)
	for _, f := range fragments {
		if f.Kind == econbrief.FragmentParagraph {
			evidence.Paragraphs++
		}
	}
	if err := econbrief.Classify(evidence); err != nil {
		return "", err
	}
	return text, nil
}

// fragments walks scope in document order and returns the non-empty
// fragments along with the number of elements that matched any marker.
func (e *BriefingExtractor) fragments(scope *goquery.Selection) ([]econbrief.Fragment, int) {
	var fragments []econbrief.Fragment
	matched := 0
	scope.Find("*").Each(func(_ int, sel *goquery.Selection) {
		marker, ok := e.classify(sel)
		if !ok {
			return
		}
		matched++
		if text := normalizeText(sel); text != "" {
			fragments = append(fragments, econbrief.Fragment{Kind: marker.Kind, Text: text})
		}
	})
	return fragments, matched
}

func (e *BriefingExtractor) classify(sel *goquery.Selection) (Marker, bool) {
	for _, m := range e.Markers {
		if m.Matches(sel) {
			return m, true
		}
	}
	return Marker{}, false
}
