package components

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/chiranperera/inner-most/internal/content"
)

var socialIcons = map[string]string{
	"twitter":   "lucide--twitter",
	"instagram": "lucide--instagram",
	"facebook":  "lucide--facebook",
}

// PageFooter renders the brand blurb, the link columns, the copyright line and
// social links.
func PageFooter(site *content.Site) g.Node {
	return h.Footer(
		h.Class("bg-neutral-900 text-white py-12"),
		Container(ContainerProps{},
			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-4 gap-8"),
				h.Div(
					h.Class("md:col-span-1"),
					h.Div(
						h.Class("flex items-center space-x-2 mb-4"),
						h.Div(
							h.Class("w-8 h-8 bg-brand-500 rounded-lg flex items-center justify-center"),
							h.Span(h.Class("text-white font-bold text-sm"), g.Text(initial(site.Brand))),
						),
						h.Span(h.Class("text-heading-lg font-semibold"), g.Text(site.Brand)),
					),
					g.If(site.Tagline != "", h.P(h.Class("text-body-sm text-neutral-400"), g.Text(site.Tagline))),
				),
				g.Map(site.FooterColumns, footerColumn),
			),

			h.Div(
				h.Class("border-t border-neutral-800 mt-8 pt-8 flex flex-col md:flex-row justify-between items-center"),
				h.P(h.Class("text-body-sm text-neutral-400"), g.Text(copyright(site))),
				g.If(len(site.Social) > 0, h.Div(
					h.Class("flex space-x-6 mt-4 md:mt-0"),
					g.Map(site.Social, socialLink),
				)),
			),
		),
	)
}

func footerColumn(col content.FooterColumn) g.Node {
	return h.Div(
		h.H4(h.Class("text-heading-sm font-semibold mb-4"), g.Text(col.Heading)),
		h.Ul(
			h.Class("space-y-2 text-body-sm text-neutral-400"),
			g.Map(col.Links, func(l content.NavigationItem) g.Node {
				return h.Li(h.A(h.Href(l.Href), h.Class("hover:text-white transition-colors"), g.Text(l.Label)))
			}),
		),
	)
}

func socialLink(l content.NavigationItem) g.Node {
	icon, ok := socialIcons[strings.ToLower(l.Label)]
	return h.A(
		h.Href(l.Href),
		h.Class("inline-flex items-center gap-1.5 text-neutral-400 hover:text-white transition-colors"),
		g.If(ok, Icon(icon+" h-4 w-4", "")),
		g.Text(l.Label),
	)
}

func copyright(site *content.Site) string {
	if site.Copyright <= 0 {
		return "© " + site.Brand + ". All rights reserved."
	}
	return "© " + strconv.Itoa(site.Copyright) + " " + site.Brand + ". All rights reserved."
}
