package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LogoMark is the brand square with the initial beside the brand name.
func LogoMark(text string) g.Node {
	return h.Div(
		h.Class("flex items-center space-x-2"),
		h.Div(
			h.Class("w-8 h-8 bg-brand-500 rounded-lg flex items-center justify-center"),
			h.Span(h.Class("text-white font-bold text-sm"), g.Text(initial(text))),
		),
		h.Span(h.Class("text-heading-lg font-semibold text-neutral-900"), g.Text(text)),
	)
}

func initial(text string) string {
	for _, r := range text {
		return strings.ToUpper(string(r))
	}
	return ""
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify glyph from a "set--name size-classes" class string, e.g.
// "lucide--menu h-6 w-6". A non-empty ariaLabel exposes it as an image.
func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	classes := "iconify inline-block"
	if size := extractSizeClasses(iconClass); size != "" {
		classes = fmt.Sprintf("iconify inline-block %s", size)
	}

	if ariaLabel != "" {
		return h.Span(
			h.Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return h.Span(
		h.Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

// SectionHeading is the centered title and lead paragraph that opens each
// landing page section.
func SectionHeading(title, lead string) g.Node {
	return h.Div(
		h.Class("text-center mb-12"),
		h.H2(h.Class("text-display-md font-semibold text-neutral-900 mb-4"), g.Text(title)),
		g.If(lead != "", h.P(h.Class("text-body-lg text-neutral-600 max-w-2xl mx-auto"), g.Text(lead))),
	)
}
