package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/chiranperera/inner-most/internal/content"
)

// AppPreview advertises the mobile apps next to a phone mockup.
func AppPreview(highlights []content.Highlight) g.Node {
	return h.Section(
		h.ID("download"),
		h.Class("py-16 sm:py-20 lg:py-24"),
		Container(ContainerProps{},
			h.Div(
				h.Class("grid grid-cols-1 lg:grid-cols-2 gap-12 items-center"),
				h.Div(
					h.H2(h.Class("text-display-md font-semibold text-neutral-900 mb-6"), g.Text("Take connections with you")),
					h.P(
						h.Class("text-body-lg text-neutral-600 mb-8"),
						g.Text("Download our mobile app and never miss a connection. Chat, meet, and build relationships on the go with our intuitive mobile experience."),
					),
					g.If(len(highlights) > 0, h.Ul(
						h.Class("space-y-6"),
						g.Map(highlights, highlightItem),
					)),
					h.Div(
						h.Class("mt-8 flex flex-col sm:flex-row gap-4"),
						Button(ButtonProps{Size: ButtonLG, Href: "/download?platform=ios", Class: "flex items-center space-x-2"},
							Icon("lucide--apple h-5 w-5", ""),
							h.Span(g.Text("Download for iOS")),
						),
						Button(ButtonProps{Variant: ButtonSecondary, Size: ButtonLG, Href: "/download?platform=android", Class: "flex items-center space-x-2"},
							Icon("lucide--smartphone h-5 w-5", ""),
							h.Span(g.Text("Download for Android")),
						),
					),
				),
				phoneMockup(),
			),
		),
	)
}

func highlightItem(item content.Highlight) g.Node {
	return h.Li(
		h.Class("flex items-start space-x-4"),
		h.Div(
			h.Class("w-6 h-6 bg-brand-500 rounded-full flex items-center justify-center flex-shrink-0 mt-0.5"),
			h.Span(h.Class("text-white text-sm"), g.Attr("aria-hidden", "true"), g.Text("✓")),
		),
		h.Div(
			h.H4(h.Class("text-heading-sm font-semibold text-neutral-900 mb-1"), g.Text(item.Title)),
			h.P(h.Class("text-body-sm text-neutral-600"), g.Text(item.Description)),
		),
	)
}

func phoneMockup() g.Node {
	return h.Div(
		h.Class("relative"),
		g.Attr("aria-hidden", "true"),
		h.Div(
			h.Class("relative mx-auto w-64 h-96"),
			h.Div(
				h.Class("absolute inset-0 bg-neutral-900 rounded-[2rem] p-2"),
				h.Div(
					h.Class("w-full h-full bg-white rounded-[1.5rem] overflow-hidden"),
					h.Div(
						h.Class("p-4 space-y-4"),
						h.Div(h.Class("h-4 bg-neutral-200 rounded")),
						h.Div(
							h.Class("space-y-2"),
							h.Div(h.Class("h-16 bg-brand-100 rounded-lg")),
							h.Div(h.Class("h-16 bg-neutral-100 rounded-lg")),
							h.Div(h.Class("h-16 bg-brand-50 rounded-lg")),
						),
					),
				),
			),
		),
	)
}
