package goquery

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/econbrief"
)

var _ econbrief.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleTitles locate the headline. The styled class comes first; the
// bare h1 catches redesigns that rename it.
var ArticleTitles = Strategies{
	MustStrategy("title-class", `.css-1tik00t.e1qjd5lc0`),
	MustStrategy("title-h1", `h1`),
}

// ArticleSubheadings locate the optional standfirst.
var ArticleSubheadings = Strategies{
	MustStrategy("subheading-class", `.css-1fxcbca.e6h2z500`),
}

// ArticleParagraphs locate body paragraphs.
var ArticleParagraphs = Strategies{
	MustStrategy("paragraph", `p[data-component="paragraph"]`),
}

// ArticleExtractor extracts a long-form article's title, subheading and
// body paragraphs.
type ArticleExtractor struct {
	Detector    econbrief.ChallengeDetector
	Containers  Strategies
	Titles      Strategies
	Subheadings Strategies
	Paragraphs  Strategies
}

// NewArticleExtractor creates an ArticleExtractor with the default detector
// and strategies.
func NewArticleExtractor() *ArticleExtractor {
	return &ArticleExtractor{
		Detector:    NewDetector(),
		Containers:  ArticleContainers,
		Titles:      ArticleTitles,
		Subheadings: ArticleSubheadings,
		Paragraphs:  ArticleParagraphs,
	}
}

// ExtractArticle returns the formatted article.
func (e *ArticleExtractor) ExtractArticle(doc *econbrief.Document) (string, error) {
	evidence := econbrief.Evidence{Subject: econbrief.SubjectArticle}
	if doc != nil && e.Detector.Challenged(doc) {
		evidence.Challenged = true
		return "", econbrief.Classify(evidence)
	}
	if doc.Outcome() != econbrief.OutcomeContent {
		return "", econbrief.FetchFailed()
	}

	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc.HTML))
	if err != nil {
		return "", fmt.Errorf("parsing article HTML: %w", err)
	}

	container, _, ok := e.Containers.First(parsed.Selection)
	if !ok {
		return "", econbrief.Classify(evidence)
	}
	evidence.ContainerFound = true

	article, matched := e.article(container)
	text := econbrief.FormatArticle(article)

	evidence.Matched = matched
	evidence.Paragraphs = len(article.Paragraphs)
	evidence.Length = utf8.RuneCountInString(text)
	if err := econbrief.Classify(evidence); err != nil {
		return "", err
	}
	return text, nil
}

// article reads the article parts from container and counts how many
// content markers were present at all.
func (e *ArticleExtractor) article(container *goquery.Selection) (*econbrief.Article, int) {
	a := &econbrief.Article{Title: econbrief.TitleNotFound}
	matched := 0

	if title, ok := e.Titles.FirstText(container); ok {
		a.Title = title
		matched++
	}
	if sub, ok := e.Subheadings.FirstText(container); ok {
		a.Subheading = sub
		matched++
	}

	paragraphs, n := e.Paragraphs.AllText(container)
	a.Paragraphs = paragraphs
	matched += n

	return a, matched
}
