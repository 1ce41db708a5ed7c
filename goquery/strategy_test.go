package goquery_test

import (
	"strings"
	"testing"

	pq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/econbrief"
	"github.com/fwojciec/econbrief/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *pq.Selection {
	t.Helper()
	doc, err := pq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc.Selection
}

func TestNewStrategy(t *testing.T) {
	t.Parallel()

	t.Run("compiles valid selector", func(t *testing.T) {
		t.Parallel()

		s, err := goquery.NewStrategy("paragraph", `p[data-component="paragraph"]`)

		require.NoError(t, err)
		assert.Equal(t, "paragraph", s.Name)
		assert.Equal(t, `p[data-component="paragraph"]`, s.Selector)
	})

	t.Run("rejects invalid selector", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewStrategy("broken", `p[data-component=`)

		require.Error(t, err)
		assert.Equal(t, econbrief.EINVALID, econbrief.ErrorCode(err))
	})

	t.Run("MustStrategy panics on invalid selector", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { goquery.MustStrategy("broken", `[[`) })
	})
}

func TestStrategies_First(t *testing.T) {
	t.Parallel()

	t.Run("earliest matching strategy wins", func(t *testing.T) {
		t.Parallel()

		scope := parse(t, `<main><h1 class="headline">Styled</h1><h1>Plain</h1></main>`)
		ss := goquery.Strategies{
			goquery.MustStrategy("missing", ".nope"),
			goquery.MustStrategy("styled", ".headline"),
			goquery.MustStrategy("plain", "h1"),
		}

		sel, name, ok := ss.First(scope)

		require.True(t, ok)
		assert.Equal(t, "styled", name)
		assert.Equal(t, "Styled", sel.Text())
	})

	t.Run("reports no match", func(t *testing.T) {
		t.Parallel()

		scope := parse(t, `<main><p>text</p></main>`)
		ss := goquery.Strategies{goquery.MustStrategy("article", "article")}

		_, _, ok := ss.First(scope)

		assert.False(t, ok)
	})
}

func TestStrategies_FirstText(t *testing.T) {
	t.Parallel()

	t.Run("skips elements with blank text", func(t *testing.T) {
		t.Parallel()

		scope := parse(t, `<div><h1> </h1><h1>  Real
		title </h1></div>`)
		ss := goquery.Strategies{goquery.MustStrategy("h1", "h1")}

		text, ok := ss.FirstText(scope)

		require.True(t, ok)
		assert.Equal(t, "Real title", text)
	})

	t.Run("falls through to next strategy", func(t *testing.T) {
		t.Parallel()

		scope := parse(t, `<div><span class="t"></span><h1>Fallback</h1></div>`)
		ss := goquery.Strategies{
			goquery.MustStrategy("class", ".t"),
			goquery.MustStrategy("h1", "h1"),
		}

		text, ok := ss.FirstText(scope)

		require.True(t, ok)
		assert.Equal(t, "Fallback", text)
	})
}

func TestStrategies_AllText(t *testing.T) {
	t.Parallel()

	t.Run("returns texts in document order and match count", func(t *testing.T) {
		t.Parallel()

		scope := parse(t, `<div><p class="x">one</p><p class="x"> </p><p class="x">two <b>bold</b></p></div>`)
		ss := goquery.Strategies{goquery.MustStrategy("x", "p.x")}

		texts, matched := ss.AllText(scope)

		assert.Equal(t, []string{"one", "two bold"}, texts)
		assert.Equal(t, 3, matched)
	})

	t.Run("counts matches even when all are empty", func(t *testing.T) {
		t.Parallel()

		scope := parse(t, `<div><p class="x"></p><p class="x"></p></div>`)
		ss := goquery.Strategies{goquery.MustStrategy("x", "p.x")}

		texts, matched := ss.AllText(scope)

		assert.Empty(t, texts)
		assert.Equal(t, 2, matched)
	})
}
