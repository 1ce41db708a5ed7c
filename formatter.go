package econbrief

import "strings"

// FormatBriefing formats briefing fragments for the agent.
// Headings are rendered as "## <text>" on their own line and fragments are
// separated by blank lines. Fragments of other kinds are ignored.
func FormatBriefing(fragments []Fragment) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		switch f.Kind {
		case FragmentHeading:
			parts = append(parts, "## "+f.Text)
		case FragmentParagraph:
			parts = append(parts, f.Text)
		}
	}
	return strings.Join(parts, "\n\n")
}

// FormatArticle formats an article for the agent:
//
//	Title: <title>
//	Subheading: <subheading>
//
//	Body:
//	<paragraph>
//
//	<paragraph>
//
// The subheading line is omitted when the article has none.
func FormatArticle(a *Article) string {
	var b strings.Builder
	var body []string
	for _, f := range a.Fragments() {
		switch f.Kind {
		case FragmentTitle:
			b.WriteString("Title: " + f.Text + "\n")
		case FragmentSubheading:
			b.WriteString("Subheading: " + f.Text + "\n")
		case FragmentBody:
			body = append(body, f.Text)
		}
	}
	b.WriteString("\nBody:\n")
	b.WriteString(strings.Join(body, "\n\n"))
	return b.String()
}
