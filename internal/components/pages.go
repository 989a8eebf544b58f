package components

import (
	"net/http"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/chiranperera/inner-most/internal/content"
)

// FeaturedProfileCount is how many profiles the landing page hero previews.
const FeaturedProfileCount = 4

type PageProps struct {
	Site   *content.Site
	Header *Header
	Config PageConfig
	// OnProfileClick makes profile cards clickable.
	OnProfileClick func(id string)
}

func (p PageProps) header(path string) *Header {
	if p.Header != nil {
		return p.Header
	}
	props := HeaderProps{CurrentPath: path}
	if p.Site != nil {
		props.LogoText = p.Site.Brand
		props.Navigation = p.Site.NavigationOrDefault()
	}
	return NewHeader(props)
}

func (p PageProps) config(path string) PageConfig {
	cfg := p.Config
	if p.Site != nil && cfg.Metadata.Title == "" {
		cfg.Metadata = p.Site.Metadata
	}
	if cfg.Path == "" {
		cfg.Path = path
	}
	return cfg
}

func LandingPage(p PageProps) g.Node {
	site := p.Site
	return Layout(p.config("/"),
		h.Main(
			h.Class("min-h-screen bg-white"),
			p.header("/"),
			HeroSection(HeroProps{
				Profiles:       site.FeaturedProfiles(FeaturedProfileCount),
				Brand:          site.Brand,
				OnProfileClick: p.OnProfileClick,
			}),
			Features(site.Brand, site.Features),
			AppPreview(site.Highlights),
			CTA(site.Brand),
			PageFooter(site),
		),
	)
}

// ProfilesPage lists every profile in the default grid.
func ProfilesPage(p PageProps) g.Node {
	site := p.Site
	cfg := p.config("/profiles")
	if cfg.Title == "" {
		cfg.Title = "Profiles | " + site.Brand
	}

	return Layout(cfg,
		h.Main(
			h.Class("min-h-screen bg-white"),
			p.header("/profiles"),
			h.Section(
				h.Class("py-16 sm:py-20 lg:py-24 bg-surface-secondary"),
				Container(ContainerProps{},
					SectionHeading("Meet your people", "See who's already connecting on "+site.Brand),
					g.If(len(site.Profiles) == 0,
						h.P(h.Class("text-center text-body-md text-neutral-600"), g.Text("No profiles yet. Check back soon.")),
					),
					g.If(len(site.Profiles) > 0, ProfileGrid{
						Profiles:       site.Profiles,
						OnProfileClick: p.OnProfileClick,
					}),
				),
			),
			PageFooter(site),
		),
	)
}

// ErrorPage renders a status page. Site may be nil when content failed to load.
func ErrorPage(p PageProps, status int, message string) g.Node {
	cfg := p.config("")
	cfg.NoIndex = true
	cfg.Title = strconv.Itoa(status) + " " + http.StatusText(status)
	if message == "" {
		message = http.StatusText(status)
	}

	var footer g.Node
	if p.Site != nil {
		footer = PageFooter(p.Site)
	}

	return Layout(cfg,
		h.Main(
			h.Class("min-h-screen bg-white flex flex-col"),
			p.header(cfg.Path),
			h.Section(
				h.Class("flex-1 py-24"),
				Container(ContainerProps{Size: ContainerMD, Class: "text-center"},
					h.P(h.Class("text-display-xl font-semibold text-brand-500"), g.Attr("data-testid", "error-status"), g.Text(strconv.Itoa(status))),
					h.H1(h.Class("mt-4 text-heading-xl font-semibold text-neutral-900"), g.Text(message)),
					h.Div(
						h.Class("mt-8"),
						Button(ButtonProps{Href: "/"}, g.Text("Back to home")),
					),
				),
			),
			footer,
		),
	)
}
