package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// CTA is the closing sign-up banner. Its buttons override the stock variant
// colors for the brand-colored background.
func CTA(brand string) g.Node {
	return h.Section(
		h.Class("py-16 sm:py-20 lg:py-24 bg-gradient-to-r from-brand-500 to-brand-600"),
		Container(ContainerProps{},
			h.Div(
				h.Class("text-center text-white"),
				h.H2(h.Class("text-display-md font-semibold mb-4"), g.Text("Ready to find your perfect match?")),
				h.P(
					h.Class("text-body-lg mb-8 opacity-90 max-w-2xl mx-auto"),
					g.Textf("Join thousands of people who have found meaningful relationships on %s. Your journey to love starts here.", brand),
				),
				h.Div(
					h.Class("flex flex-col sm:flex-row gap-4 justify-center"),
					Button(ButtonProps{
						Variant: ButtonSecondary,
						Size:    ButtonLG,
						Href:    "/signup",
						Class:   "bg-white text-brand-600 hover:bg-neutral-50",
					}, g.Text("Start Your Journey")),
					Button(ButtonProps{
						Variant: ButtonGhost,
						Size:    ButtonLG,
						Href:    "/about",
						Class:   "text-white border-white hover:bg-white/10",
					}, g.Text("Learn More")),
				),
			),
		),
	)
}
