package econbrief

// Subjects used in classification messages.
const (
	SubjectBriefing = "briefing"
	SubjectArticle  = "article"
)

// Evidence summarizes what an extractor found in a document.
type Evidence struct {
	// Subject names what was being extracted, e.g. SubjectArticle.
	Subject string

	// Challenged is true when the document is an anti-automation page.
	Challenged bool

	// ContainerFound is true when the primary content container exists.
	// Extractors that treat the container as optional always set it.
	ContainerFound bool

	// Matched counts elements matching any content marker.
	Matched int

	// Paragraphs counts non-empty paragraph fragments.
	Paragraphs int

	// Length is the formatted output length in characters.
	Length int
}

// Classify decides whether an extraction succeeded. It returns nil on
// success and otherwise an *Error whose code names the failure kind.
// Rules are applied in order: challenge, missing container, no matched
// markers, too little text.
func Classify(e Evidence) error {
	switch {
	case e.Challenged:
		if e.Subject == SubjectArticle {
			return Errorf(ECHALLENGE, "Blocked by Cloudflare challenge.")
		}
		return Errorf(ECHALLENGE, "Still blocked by Cloudflare challenge. Please try updating cookies.")
	case !e.ContainerFound:
		return Errorf(ECONTAINER, "Could not find %s container. Check URL or cookie validity.", e.Subject)
	case e.Matched == 0:
		return Errorf(ESTRUCTURE, "Could not find %s content. Structure might have changed.", e.Subject)
	case e.Paragraphs == 0 || e.Length < MinContentLength:
		if e.Subject == SubjectBriefing {
			return Errorf(EINSUFFICIENT, "Briefing content too short.")
		}
		return Errorf(EINSUFFICIENT, "Could not extract sufficient text. Check cookie validity or paywall status.")
	}
	return nil
}

// FetchFailed returns the EFETCH error reported when a fetch produced no
// content at all.
func FetchFailed() error {
	return Errorf(EFETCH, "Failed to fetch content. Cloudflare might be blocking or network issue.")
}
