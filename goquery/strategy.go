// Package goquery implements the briefing and article extractors and the
// challenge page detector on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/econbrief"
)

// Strategy is a named CSS selector that locates one kind of element.
// Selectors are compiled once so an invalid selector fails at construction
// rather than at extraction time.
type Strategy struct {
	Name     string
	Selector string
	matcher  cascadia.Selector
}

// NewStrategy compiles selector into a Strategy.
func NewStrategy(name, selector string) (Strategy, error) {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return Strategy{}, econbrief.Errorf(econbrief.EINVALID, "invalid selector %q for %s: %v", selector, name, err)
	}
	return Strategy{Name: name, Selector: selector, matcher: m}, nil
}

// MustStrategy is like NewStrategy but panics if the selector is invalid.
// It is meant for package-level defaults.
func MustStrategy(name, selector string) Strategy {
	s, err := NewStrategy(name, selector)
	if err != nil {
		panic(fmt.Sprintf("goquery: %v", err))
	}
	return s
}

// Find returns the elements under scope matching the strategy, in
// document order.
func (s Strategy) Find(scope *goquery.Selection) *goquery.Selection {
	return scope.FindMatcher(s.matcher)
}

// Matches reports whether the first element of sel matches the strategy.
func (s Strategy) Matches(sel *goquery.Selection) bool {
	return sel.IsMatcher(s.matcher)
}

// Strategies is an ordered list of alternative selectors for the same
// field. Alternatives exist because the site's markup varies between
// editions and redesigns; new variants are added by appending.
type Strategies []Strategy

// First returns the first element matched by the earliest strategy that
// matches anything, and the name of that strategy. It returns false when
// no strategy matches.
func (ss Strategies) First(scope *goquery.Selection) (*goquery.Selection, string, bool) {
	for _, s := range ss {
		if found := s.Find(scope); found.Length() > 0 {
			return found.First(), s.Name, true
		}
	}
	return nil, "", false
}

// FirstText returns the normalized text of the first element, across
// strategies in order, whose text is non-empty.
func (ss Strategies) FirstText(scope *goquery.Selection) (string, bool) {
	for _, s := range ss {
		var text string
		s.Find(scope).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			text = normalizeText(sel)
			return text == ""
		})
		if text != "" {
			return text, true
		}
	}
	return "", false
}

// AllText returns the non-empty normalized texts of every element matched
// by the earliest strategy that yields any text, together with the number
// of elements that strategy matched. When no strategy yields text, matched
// is the element count of the first strategy that matched anything.
func (ss Strategies) AllText(scope *goquery.Selection) (texts []string, matched int) {
	for _, s := range ss {
		found := s.Find(scope)
		if found.Length() == 0 {
			continue
		}
		if matched == 0 {
			matched = found.Length()
		}
		var out []string
		found.Each(func(_ int, sel *goquery.Selection) {
			if text := normalizeText(sel); text != "" {
				out = append(out, text)
			}
		})
		if len(out) > 0 {
			return out, found.Length()
		}
	}
	return nil, matched
}
