package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// StatCardProps configures StatCard. Viz is the decorative chart.
type StatCardProps struct {
	Icon     IconName
	Title    string
	Subtitle string
	Value    string
	Viz      g.Node
}

// StatCard renders a fixed-height statistic panel with a chart at the bottom.
func StatCard(p StatCardProps) g.Node {
	return h.Div(
		h.Class("stat-card bg-tutor-card border border-tutor-border p-5 flex flex-col h-64"),
		h.Div(
			h.Class("flex items-start gap-3 mb-4"),
			Icon(p.Icon, "w-5 h-5 text-slate-400 mt-1 stroke-[1.5]"),
			h.Div(
				g.If(p.Title != "", h.H4(h.Class("stat-title text-slate-200 font-medium leading-tight"), g.Text(p.Title))),
				g.If(p.Subtitle != "", h.P(h.Class("stat-subtitle text-xs text-slate-400 mt-1"), g.Text(p.Subtitle))),
			),
		),
		h.Div(
			h.Class("flex-1 flex flex-col justify-end"),
			g.If(p.Value != "", h.Div(h.Class("stat-value text-4xl font-light text-slate-200 mb-2"), g.Text(p.Value))),
			h.Div(h.Class("stat-viz h-24 w-full relative"), p.Viz),
		),
	)
}
