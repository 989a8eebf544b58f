package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/chiranperera/inner-most/internal/content"
)

// Features is the "Why choose" section. It renders nothing when there are no
// features.
func Features(brand string, features []content.Feature) g.Node {
	if len(features) == 0 {
		return nil
	}

	return h.Section(
		h.ID("features"),
		h.Class("py-16 sm:py-20 lg:py-24 bg-surface-secondary"),
		Container(ContainerProps{},
			h.Div(
				h.Class("text-center mb-16"),
				h.H2(h.Class("text-display-md font-semibold text-neutral-900 mb-4"), g.Textf("Why choose %s?", brand)),
				h.P(
					h.Class("text-body-lg text-neutral-600 max-w-2xl mx-auto"),
					g.Text("We've reimagined online dating to focus on genuine connections and meaningful relationships."),
				),
			),
			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-8"),
				g.Map(features, func(f content.Feature) g.Node {
					return Card(CardProps{Variant: CardElevated, Class: "text-center", Attrs: []g.Node{g.Attr("data-testid", "feature-card")}},
						CardContent("pt-8",
							h.Div(h.Class("text-4xl mb-4"), g.Attr("aria-hidden", "true"), g.Text(f.Icon)),
							h.H3(h.Class("text-heading-md font-semibold text-neutral-900 mb-3"), g.Text(f.Title)),
							h.P(h.Class("text-body-sm text-neutral-600"), g.Text(f.Description)),
						),
					)
				}),
			),
		),
	)
}
