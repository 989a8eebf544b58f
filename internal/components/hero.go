package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/chiranperera/inner-most/internal/content"
)

type HeroProps struct {
	Title            string
	Subtitle         string
	CTAText          string
	CTAHref          string
	SecondaryCTAText string
	SecondaryCTAHref string
	// BackgroundGradient defaults to true when nil.
	BackgroundGradient *bool
	// Profiles is the featured preview; the "Meet your people" block is omitted
	// when empty.
	Profiles       []content.ProfileSummary
	Brand          string
	OnProfileClick func(id string)
	Class          string
}

const defaultHeroSubtitle = "Discover meaningful connections with people who share your interests and values. Join thousands of users who have found their perfect match."

func (p HeroProps) withDefaults() HeroProps {
	if p.Title == "" {
		p.Title = "Don't worry, let happen!"
	}
	if p.Subtitle == "" {
		p.Subtitle = defaultHeroSubtitle
	}
	if p.CTAText == "" {
		p.CTAText = "Get Started"
	}
	if p.CTAHref == "" {
		p.CTAHref = "/signup"
	}
	if p.SecondaryCTAText == "" {
		p.SecondaryCTAText = "Learn More"
	}
	if p.SecondaryCTAHref == "" {
		p.SecondaryCTAHref = "/about"
	}
	if p.Brand == "" {
		p.Brand = "InnorMost"
	}
	return p
}

func (p HeroProps) gradient() bool {
	return p.BackgroundGradient == nil || *p.BackgroundGradient
}

// HeroSection is the first section of the landing page.
func HeroSection(props HeroProps) g.Node {
	p := props.withDefaults()
	gradient := p.gradient()

	return h.Section(
		h.Class(CN(
			"relative py-16 sm:py-20 lg:py-24",
			When(gradient, "bg-gradient-to-br from-brand-50 via-white to-neutral-50"),
			When(!gradient, "bg-white"),
			p.Class,
		)),
		Container(ContainerProps{Size: ContainerXL},
			h.Div(
				h.Class("text-center mb-16 lg:mb-20"),
				h.H1(
					h.Class("text-display-xl sm:text-display-lg lg:text-display-xl font-semibold text-neutral-900 mb-6 animate-fade-in"),
					g.Text(p.Title),
				),
				h.P(
					h.Class("text-body-lg text-neutral-600 max-w-3xl mx-auto mb-8 animate-slide-up"),
					g.Text(p.Subtitle),
				),
				h.Div(
					h.Class("flex flex-col sm:flex-row gap-4 justify-center items-center animate-slide-up"),
					Button(ButtonProps{Href: p.CTAHref, Size: ButtonLG, Class: "min-w-[160px] shadow-brand"}, g.Text(p.CTAText)),
					Button(ButtonProps{Href: p.SecondaryCTAHref, Variant: ButtonSecondary, Size: ButtonLG, Class: "min-w-[160px]"}, g.Text(p.SecondaryCTAText)),
				),
			),

			g.If(len(p.Profiles) > 0, h.Div(
				h.Class("animate-slide-up"),
				h.Div(
					h.Class("text-center mb-8"),
					h.H2(h.Class("text-heading-xl font-semibold text-neutral-900 mb-2"), g.Text("Meet your people")),
					h.P(h.Class("text-body-md text-neutral-600"), g.Textf("See who's already connecting on %s", p.Brand)),
				),
				ProfileGrid{
					Profiles:       p.Profiles,
					Columns:        GridColumns{Mobile: 2, Tablet: 3, Desktop: 4},
					OnProfileClick: p.OnProfileClick,
				},
				h.Div(
					h.Class("text-center mt-8"),
					Button(ButtonProps{Variant: ButtonGhost, Href: "/profiles"}, g.Text("View all profiles →")),
				),
			)),

			h.Div(h.Class("absolute top-10 left-10 w-20 h-20 bg-brand-100 rounded-full opacity-50 blur-xl animate-bounce-gentle"), g.Attr("aria-hidden", "true")),
			h.Div(h.Class("absolute bottom-10 right-10 w-32 h-32 bg-brand-200 rounded-full opacity-30 blur-xl animate-bounce-gentle"), g.Attr("style", "animation-delay: 1s"), g.Attr("aria-hidden", "true")),
		),
	)
}
