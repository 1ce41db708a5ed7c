package mock

import "github.com/fwojciec/econbrief"

var (
	_ econbrief.BriefingExtractor = (*BriefingExtractor)(nil)
	_ econbrief.ArticleExtractor  = (*ArticleExtractor)(nil)
	_ econbrief.ChallengeDetector = (*ChallengeDetector)(nil)
)

// BriefingExtractor is a mock implementation of econbrief.BriefingExtractor.
type BriefingExtractor struct {
	ExtractBriefingFn func(doc *econbrief.Document) (string, error)
}

func (e *BriefingExtractor) ExtractBriefing(doc *econbrief.Document) (string, error) {
	return e.ExtractBriefingFn(doc)
}

// ArticleExtractor is a mock implementation of econbrief.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(doc *econbrief.Document) (string, error)
}

func (e *ArticleExtractor) ExtractArticle(doc *econbrief.Document) (string, error) {
	return e.ExtractArticleFn(doc)
}

// ChallengeDetector is a mock implementation of econbrief.ChallengeDetector.
type ChallengeDetector struct {
	ChallengedFn func(doc *econbrief.Document) bool
}

func (d *ChallengeDetector) Challenged(doc *econbrief.Document) bool {
	return d.ChallengedFn(doc)
}
