package components

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// CardProps configures Card. All fields are optional.
type CardProps struct {
	Icon        IconName
	Title       string
	Description g.Node
	Children    []g.Node
	Class       string
}

// Card renders a bordered panel with an optional icon, title and description.
func Card(p CardProps) g.Node {
	return h.Div(
		h.Class(joinClasses("card bg-tutor-card border border-tutor-border p-6 md:p-8 flex flex-col justify-between h-full backdrop-blur-sm", p.Class)),
		h.Div(
			Icon(p.Icon, "card-icon w-10 h-10 text-slate-400 mb-6 stroke-[1.5]"),
			g.If(p.Title != "", h.H3(h.Class("card-title text-lg md:text-xl font-medium text-slate-100 mb-2"), g.Text(p.Title))),
			g.If(p.Description != nil, h.Div(h.Class("card-description text-sm md:text-base text-slate-300 leading-relaxed"), p.Description)),
		),
		g.Group(p.Children),
	)
}

// joinClasses joins non-empty class lists with a single space.
func joinClasses(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}
