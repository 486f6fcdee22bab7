// Package pages composes the presentational primitives into full documents.
package pages

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/projeto-tutor/tutor/internal/content"
)

const (
	tailwindScript = "https://cdn.tailwindcss.com"
	// datastar client, only loaded for the development reload stream
	datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"
)

// Options configures the document shell. None of the fields change the
// section structure of the page.
type Options struct {
	Lang           string
	Title          string
	Description    string
	StylesheetHref string
	ContactEmail   string
	Year           int
	// LiveReload subscribes the page to ReloadPath and reloads on each event.
	LiveReload bool
	ReloadPath string
}

// DefaultOptions returns the options the site ships with.
func DefaultOptions() Options {
	return Options{
		Lang:           "pt-BR",
		Title:          content.Brand,
		Description:    content.HeroLead,
		StylesheetHref: "/static/tutor.css",
		ContactEmail:   "contato@tutor.org",
		Year:           2024,
		ReloadPath:     "/reload",
	}
}

// withDefaults fills every empty field from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Lang == "" {
		o.Lang = d.Lang
	}
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.Description == "" {
		o.Description = d.Description
	}
	if o.StylesheetHref == "" {
		o.StylesheetHref = d.StylesheetHref
	}
	if o.ContactEmail == "" {
		o.ContactEmail = d.ContactEmail
	}
	if o.Year == 0 {
		o.Year = d.Year
	}
	if o.ReloadPath == "" {
		o.ReloadPath = d.ReloadPath
	}
	return o
}

// Document renders the complete HTML document for the landing page.
func Document(opts Options) g.Node {
	opts = opts.withDefaults()
	return h.Doctype(
		h.HTML(
			h.Lang(opts.Lang),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Meta(h.Name("description"), h.Content(opts.Description)),
				h.TitleEl(g.Text(opts.Title)),
				h.Script(h.Src(tailwindScript)),
				h.Link(h.Rel("stylesheet"), h.Href(opts.StylesheetHref)),
				g.If(opts.LiveReload, h.Script(h.Type("module"), h.Src(datastarScript))),
			),
			h.Body(
				h.Class("bg-tutor-bg text-tutor-text font-sans"),
				Landing(opts),
				g.If(opts.LiveReload, h.Div(h.ID("live-reload"), h.Data("init", "@get('"+opts.ReloadPath+"')"))),
			),
		),
	)
}

func copyright(year int, brand string) string {
	return "© " + strconv.Itoa(year) + " " + brand
}
