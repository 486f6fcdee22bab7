package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// SectionProps configures Section.
type SectionProps struct {
	ID       string
	Class    string
	Children []g.Node
}

// Section renders a centered content section.
func Section(p SectionProps) g.Node {
	return h.Section(
		g.If(p.ID != "", h.ID(p.ID)),
		h.Class(joinClasses("relative px-6 py-16 md:py-24 max-w-7xl mx-auto w-full", p.Class)),
		g.Group(p.Children),
	)
}
