package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ButtonVariant selects a visual treatment for Button.
type ButtonVariant int

// Button variants. The zero value is ButtonOutline.
const (
	ButtonOutline ButtonVariant = iota
	ButtonGhost
)

const buttonBase = "px-5 py-2 text-sm font-medium transition-colors duration-200 flex items-center gap-2"

var buttonVariants = map[ButtonVariant]string{
	ButtonOutline: "border border-white/20 hover:bg-white/5 text-slate-200",
	ButtonGhost:   "text-slate-400 hover:text-white",
}

// String returns the variant name used in the data-variant attribute.
func (v ButtonVariant) String() string {
	switch v {
	case ButtonGhost:
		return "ghost"
	default:
		return "outline"
	}
}

// ButtonProps configures Button.
type ButtonProps struct {
	Variant  ButtonVariant
	Class    string
	Children []g.Node
}

// Button renders a styled button. Unknown variants fall back to outline.
func Button(p ButtonProps) g.Node {
	variant := p.Variant
	style, ok := buttonVariants[variant]
	if !ok {
		variant = ButtonOutline
		style = buttonVariants[ButtonOutline]
	}
	return h.Button(
		h.Type("button"),
		h.Class(joinClasses(buttonBase, style, p.Class)),
		h.Data("variant", variant.String()),
		g.Group(p.Children),
	)
}
