package econbrief

// FragmentKind tags a unit of extracted text.
type FragmentKind int

// Briefing fragments are headings and paragraphs; article fragments are a
// title, an optional subheading and body paragraphs.
const (
	FragmentHeading FragmentKind = iota
	FragmentParagraph
	FragmentTitle
	FragmentSubheading
	FragmentBody
)

// Fragment is one classified unit of extracted text. Fragments are kept in
// document order.
type Fragment struct {
	Kind FragmentKind
	Text string
}

// TitleNotFound is used in place of an article title that could not be
// located. A missing title does not fail extraction.
const TitleNotFound = "Title not found"

// Article holds the parts of a long-form article.
type Article struct {
	Title string

	// Subheading is empty when the article has none.
	Subheading string

	Paragraphs []string
}

// Fragments returns the article as ordered fragments.
func (a *Article) Fragments() []Fragment {
	fragments := make([]Fragment, 0, len(a.Paragraphs)+2)
	fragments = append(fragments, Fragment{Kind: FragmentTitle, Text: a.Title})
	if a.Subheading != "" {
		fragments = append(fragments, Fragment{Kind: FragmentSubheading, Text: a.Subheading})
	}
	for _, p := range a.Paragraphs {
		fragments = append(fragments, Fragment{Kind: FragmentBody, Text: p})
	}
	return fragments
}

// BriefingExtractor turns the briefing listing page into formatted text.
type BriefingExtractor interface {
	// ExtractBriefing returns the formatted briefing, or an error whose code
	// explains why the document held no usable briefing.
	ExtractBriefing(doc *Document) (string, error)
}

// ArticleExtractor turns an article page into formatted text.
type ArticleExtractor interface {
	// ExtractArticle returns the formatted article, or an error whose code
	// explains why the document held no usable article.
	ExtractArticle(doc *Document) (string, error)
}

// ChallengeDetector recognizes anti-automation interstitial pages.
type ChallengeDetector interface {
	// Challenged reports whether doc is a challenge page rather than content.
	Challenged(doc *Document) bool
}
