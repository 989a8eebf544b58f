package components

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/chiranperera/inner-most/internal/content"
)

// MenuParam is the query parameter that carries the mobile menu state between
// requests.
const MenuParam = "menu"

type HeaderProps struct {
	// Logo is an image URL; when empty the brand mark is drawn instead.
	Logo     string
	LogoText string
	// Navigation defaults to content.DefaultNavigation when empty.
	Navigation []content.NavigationItem
	CTAText    string
	CTAHref    string
	// CurrentPath is the page the header is rendered on. The menu toggle links
	// back to it.
	CurrentPath string
	Class       string
}

func (p HeaderProps) withDefaults() HeaderProps {
	if p.LogoText == "" {
		p.LogoText = "InnorMost"
	}
	if len(p.Navigation) == 0 {
		p.Navigation = content.DefaultNavigation()
	}
	if p.CTAText == "" {
		p.CTAText = "Get Started"
	}
	if p.CTAHref == "" {
		p.CTAHref = "/signup"
	}
	if p.CurrentPath == "" {
		p.CurrentPath = "/"
	}
	return p
}

// Header is the sticky site header. It owns the open/closed state of the mobile
// menu, which starts closed.
type Header struct {
	props    HeaderProps
	menuOpen bool
}

func NewHeader(props HeaderProps) *Header {
	return &Header{props: props.withDefaults()}
}

// Toggle flips the mobile menu.
func (hd *Header) Toggle() {
	hd.menuOpen = !hd.menuOpen
}

func (hd *Header) MenuOpen() bool {
	return hd.menuOpen
}

// Navigation returns the items the header renders.
func (hd *Header) Navigation() []content.NavigationItem {
	return hd.props.Navigation
}

// Select follows the i-th navigation item. Following an item closes an open
// menu.
func (hd *Header) Select(i int) (content.NavigationItem, bool) {
	if i < 0 || i >= len(hd.props.Navigation) {
		return content.NavigationItem{}, false
	}
	hd.menuOpen = false
	return hd.props.Navigation[i], true
}

// toggleHref is where the toggle control points: the current page with the menu
// in the opposite state.
func (hd *Header) toggleHref() string {
	if hd.menuOpen {
		return hd.props.CurrentPath
	}
	return hd.props.CurrentPath + "?" + MenuParam + "=open"
}

func (hd *Header) Render(w io.Writer) error {
	return hd.node().Render(w)
}

func (hd *Header) node() g.Node {
	p := hd.props

	toggleIcon := "lucide--menu h-6 w-6"
	if hd.menuOpen {
		toggleIcon = "lucide--x h-6 w-6"
	}

	return h.Header(
		h.Class(CN("sticky top-0 z-50 bg-white/95 backdrop-blur-sm border-b border-neutral-200", p.Class)),
		Container(ContainerProps{},
			h.Div(
				h.Class("flex items-center justify-between h-16"),

				h.Div(
					h.Class("flex items-center"),
					h.A(
						h.Href("/"),
						g.If(p.Logo != "", h.Img(h.Src(p.Logo), h.Alt(p.LogoText), h.Class("h-8 w-auto"))),
						g.If(p.Logo == "", LogoMark(p.LogoText)),
					),
				),

				h.Nav(
					h.Class("hidden md:flex items-center space-x-8"),
					g.Attr("aria-label", "Main"),
					g.Map(p.Navigation, func(item content.NavigationItem) g.Node {
						return navLink(item, "text-body-md font-medium text-neutral-700 hover:text-brand-500 transition-colors", p.CurrentPath)
					}),
				),

				h.Div(
					h.Class("hidden md:flex items-center"),
					Button(ButtonProps{Href: p.CTAHref}, g.Text(p.CTAText)),
				),

				h.A(
					h.Href(hd.toggleHref()),
					h.Class("md:hidden p-2 rounded-md text-neutral-700 hover:text-brand-500 hover:bg-neutral-100"),
					g.Attr("role", "button"),
					g.Attr("aria-label", "Toggle mobile menu"),
					g.Attr("aria-expanded", boolString(hd.menuOpen)),
					g.Attr("aria-controls", "mobile-menu"),
					Icon(toggleIcon, ""),
				),
			),

			g.If(hd.menuOpen,
				h.Div(
					h.ID("mobile-menu"),
					h.Class("md:hidden border-t border-neutral-200 py-4"),
					h.Nav(
						h.Class("flex flex-col space-y-4"),
						g.Attr("aria-label", "Mobile"),
						g.Map(p.Navigation, func(item content.NavigationItem) g.Node {
							return navLink(item, "text-body-md font-medium text-neutral-700 hover:text-brand-500 transition-colors px-4 py-2", p.CurrentPath)
						}),
						h.Div(
							h.Class("px-4 pt-4 border-t border-neutral-200"),
							Button(ButtonProps{Href: p.CTAHref, Class: "w-full"}, g.Text(p.CTAText)),
						),
					),
				),
			),
		),
	)
}

func navLink(item content.NavigationItem, class, current string) g.Node {
	return h.A(
		h.Href(item.Href),
		h.Class(class),
		g.If(item.Href == current, g.Attr("aria-current", "page")),
		g.Text(item.Label),
	)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
