// Package components provides the presentational primitives of the Tutor page.
//
// Every primitive is a pure function from a props struct to a gomponents
// node. Omitted optional fields omit the corresponding element.
package components

import (
	g "maragu.dev/gomponents"
)

// IconName identifies one of the glyphs the page uses.
type IconName string

// Known icons. The glyphs follow the Lucide outline set.
const (
	IconBox           IconName = "box"
	IconGlobe         IconName = "globe"
	IconAlertTriangle IconName = "alert-triangle"
	IconQuote         IconName = "quote"
	IconClipboardList IconName = "clipboard-list"
	IconWifiOff       IconName = "wifi-off"
	IconShieldCheck   IconName = "shield-check"
	IconHeart         IconName = "heart"
	IconBan           IconName = "ban"
	IconClock         IconName = "clock"
	IconCalendarDays  IconName = "calendar-days"
	IconZap           IconName = "zap"
	IconLock          IconName = "lock"
	IconArrowUpRight  IconName = "arrow-up-right"
)

var iconPaths = map[IconName]string{
	IconBox: `<path d="M21 8a2 2 0 0 0-1-1.73l-7-4a2 2 0 0 0-2 0l-7 4A2 2 0 0 0 3 8v8a2 2 0 0 0 1 1.73l7 4a2 2 0 0 0 2 0l7-4A2 2 0 0 0 21 16Z"/>` +
		`<path d="m3.3 7 8.7 5 8.7-5"/><path d="M12 22V12"/>`,
	IconGlobe: `<circle cx="12" cy="12" r="10"/><path d="M12 2a14.5 14.5 0 0 0 0 20 14.5 14.5 0 0 0 0-20"/><path d="M2 12h20"/>`,
	IconAlertTriangle: `<path d="m21.73 18-8-14a2 2 0 0 0-3.48 0l-8 14A2 2 0 0 0 4 21h16a2 2 0 0 0 1.73-3Z"/>` +
		`<path d="M12 9v4"/><path d="M12 17h.01"/>`,
	IconQuote: `<path d="M3 21c3 0 7-1 7-8V5c0-1.25-.756-2.017-2-2H4c-1.25 0-2 .75-2 1.972V11c0 1.25.75 2 2 2 1 0 1 0 1 1v1c0 1-1 2-2 2s-1 .008-1 1.031V20c0 1 0 1 1 1z"/>` +
		`<path d="M15 21c3 0 7-1 7-8V5c0-1.25-.757-2.017-2-2h-4c-1.25 0-2 .75-2 1.972V11c0 1.25.75 2 2 2h.75c0 2.25.25 4-2.75 4v3c0 1 0 1 1 1z"/>`,
	IconClipboardList: `<rect width="8" height="4" x="8" y="2" rx="1" ry="1"/>` +
		`<path d="M16 4h2a2 2 0 0 1 2 2v14a2 2 0 0 1-2 2H6a2 2 0 0 1-2-2V6a2 2 0 0 1 2-2h2"/>` +
		`<path d="M12 11h4"/><path d="M12 16h4"/><path d="M8 11h.01"/><path d="M8 16h.01"/>`,
	IconWifiOff: `<path d="M12 20h.01"/><path d="M8.5 16.429a5 5 0 0 1 7 0"/><path d="M5 12.859a10 10 0 0 1 5.17-2.69"/>` +
		`<path d="M19 12.859a10 10 0 0 0-2.007-1.523"/><path d="M2 8.82a15 15 0 0 1 4.177-2.643"/>` +
		`<path d="M22 8.82a15 15 0 0 0-11.288-3.764"/><path d="m2 2 20 20"/>`,
	IconShieldCheck: `<path d="M20 13c0 5-3.5 7.5-7.66 8.95a1 1 0 0 1-.67-.01C7.5 20.5 4 18 4 13V6a1 1 0 0 1 1-1c2 0 4.5-1.2 6.24-2.72a1.17 1.17 0 0 1 1.52 0C14.51 3.81 17 5 19 5a1 1 0 0 1 1 1z"/>` +
		`<path d="m9 12 2 2 4-4"/>`,
	IconHeart: `<path d="M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"/>`,
	IconBan:   `<circle cx="12" cy="12" r="10"/><path d="m4.9 4.9 14.2 14.2"/>`,
	IconClock: `<circle cx="12" cy="12" r="10"/><polyline points="12 6 12 12 16 14"/>`,
	IconCalendarDays: `<path d="M8 2v4"/><path d="M16 2v4"/><rect width="18" height="18" x="3" y="4" rx="2"/><path d="M3 10h18"/>` +
		`<path d="M8 14h.01"/><path d="M12 14h.01"/><path d="M16 14h.01"/><path d="M8 18h.01"/><path d="M12 18h.01"/><path d="M16 18h.01"/>`,
	IconZap:          `<polygon points="13 2 3 14 12 14 11 22 21 10 12 10 13 2"/>`,
	IconLock:         `<rect width="18" height="11" x="3" y="11" rx="2" ry="2"/><path d="M7 11V7a5 5 0 0 1 10 0v4"/>`,
	IconArrowUpRight: `<path d="M7 7h10v10"/><path d="M7 17 17 7"/>`,
}

// Known reports whether the icon has a glyph.
func (n IconName) Known() bool {
	_, ok := iconPaths[n]
	return ok
}

// Icon renders an inline SVG glyph. Unknown or empty names render nothing.
func Icon(name IconName, class string) g.Node {
	paths, ok := iconPaths[name]
	if !ok {
		return nil
	}
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.Attr("data-icon", string(name)),
		g.If(class != "", g.Attr("class", class)),
		g.Raw(paths),
	)
}
