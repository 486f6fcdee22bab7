package pages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/projeto-tutor/tutor/internal/testutil"
)

// topLevel returns the landmarks directly under #page, skipping decoration.
func topLevel(t *testing.T, doc *html.Node) []string {
	t.Helper()
	pages := testutil.FindAll(doc, func(n *html.Node) bool {
		id, _ := testutil.Attr(n, "id")
		return id == "page"
	})
	require.Len(t, pages, 1, "document should contain exactly one #page")

	var out []string
	for c := pages[0].FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "header", "footer":
			out = append(out, c.Data)
		case "section":
			id, _ := testutil.Attr(c, "id")
			out = append(out, "section#"+id)
		default:
			if id, ok := testutil.Attr(c, "id"); ok {
				out = append(out, c.Data+"#"+id)
			}
		}
	}
	return out
}

func TestLanding_SectionOrder(t *testing.T) {
	want := []string{
		"header",
		"div#hero",
		"section#falha",
		"section#reconhecimento",
		"section#o-que-e",
		"section#como-funciona",
		"section#impacto",
		"footer",
	}

	tests := []struct {
		name string
		opts Options
	}{
		{name: "defaults", opts: DefaultOptions()},
		{name: "zero options", opts: Options{}},
		{name: "live reload", opts: Options{LiveReload: true, Lang: "en"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testutil.RenderTree(t, Document(tt.opts))
			assert.Equal(t, want, topLevel(t, doc))
		})
	}
}

func TestLanding_SectionOrderMatchesExported(t *testing.T) {
	doc := testutil.RenderTree(t, Landing(DefaultOptions()))

	var ids []string
	for _, s := range testutil.FindAll(doc, testutil.ByTag("section")) {
		id, _ := testutil.Attr(s, "id")
		ids = append(ids, id)
	}
	assert.Equal(t, SectionOrder, ids)
}

func TestLanding_Idempotent(t *testing.T) {
	first := testutil.Render(t, Document(DefaultOptions()))
	second := testutil.Render(t, Document(DefaultOptions()))
	assert.Equal(t, first, second)
}

func TestLanding_Charts(t *testing.T) {
	doc := testutil.RenderTree(t, Landing(DefaultOptions()))

	bars := testutil.FindAll(doc, testutil.ByTagClass("svg", "bar-chart"))
	require.Len(t, bars, 1)
	assert.Len(t, testutil.FindAll(bars[0], testutil.ByTag("rect")), 7, "intensity chart bars")
	assert.Len(t, testutil.FindAll(doc, testutil.ByClass("cell")), 35, "frequency grid cells")
	assert.Len(t, testutil.FindAll(doc, testutil.ByClass("bar")), 7, "study time columns")
	assert.Len(t, testutil.FindAll(doc, testutil.ByClass("stat-card")), 4)

	pie := testutil.FindAll(doc, testutil.ByTagClass("svg", "pie-chart"))
	require.Len(t, pie, 1)
	paths := testutil.FindAll(pie[0], testutil.ByTag("path"))
	require.Len(t, paths, 2)
}

func TestLanding_Content(t *testing.T) {
	doc := testutil.RenderTree(t, Landing(DefaultOptions()))

	assert.Len(t, testutil.FindAll(doc, testutil.ByTag("h1")), 1)
	assert.Len(t, testutil.FindAll(doc, testutil.ByClass("card")), 7, "3 source cards and 4 feature cards")
	assert.Len(t, testutil.FindAll(doc, testutil.ByClass("principle")), 4)
	assert.Len(t, testutil.FindAll(doc, testutil.ByClass("step")), 3)
	assert.Len(t, testutil.FindAll(doc, testutil.ByTag("li")), 4, "routine of step 2")

	links := testutil.FindAll(doc, testutil.ByClass("source-link"))
	require.Len(t, links, 3)
	for _, l := range links {
		target, _ := testutil.Attr(l, "target")
		rel, _ := testutil.Attr(l, "rel")
		assert.Equal(t, "_blank", target)
		assert.Equal(t, "noopener noreferrer", rel)
	}
}

func TestDocument_Shell(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		out := testutil.Render(t, Document(Options{}))

		assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
		assert.Contains(t, out, `<html lang="pt-BR">`)
		assert.Contains(t, out, "<title>Tutor</title>")
		assert.Contains(t, out, `href="/static/tutor.css"`)
		assert.Contains(t, out, `href="mailto:contato@tutor.org"`)
		assert.Contains(t, out, "© 2024 Tutor")
		assert.NotContains(t, out, "data-init")
		assert.NotContains(t, out, "datastar")
	})

	t.Run("overrides", func(t *testing.T) {
		out := testutil.Render(t, Document(Options{
			Lang:           "en",
			Title:          "Tutor preview",
			StylesheetHref: "static/tutor.css",
			ContactEmail:   "oi@example.org",
			Year:           2026,
		}))

		assert.Contains(t, out, `<html lang="en">`)
		assert.Contains(t, out, "<title>Tutor preview</title>")
		assert.Contains(t, out, `href="static/tutor.css"`)
		assert.Contains(t, out, `href="mailto:oi@example.org"`)
		assert.Contains(t, out, "© 2026 Tutor")
	})

	t.Run("live reload", func(t *testing.T) {
		out := testutil.Render(t, Document(Options{LiveReload: true, ReloadPath: "/__reload"}))

		assert.Contains(t, out, "datastar.js")
		assert.Contains(t, out, `data-init="@get(&#39;/__reload&#39;)"`)
	})
}
