package components

import (
	"fmt"
	"io"
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/chiranperera/inner-most/internal/content"
)

type ProfileCardProps struct {
	Profile content.ProfileSummary
	// OnActivate makes the card clickable. It takes no arguments; the card
	// already knows which profile it shows.
	OnActivate func()
	Class      string
}

// Activate runs the activation callback and reports whether there was one.
func (p ProfileCardProps) Activate() bool {
	if p.OnActivate == nil {
		return false
	}
	p.OnActivate()
	return true
}

func (p ProfileCardProps) Clickable() bool {
	return p.OnActivate != nil
}

// ProfileHref is the activation URL of a profile card.
func ProfileHref(id string) string {
	return "/profiles/" + url.PathEscape(id)
}

// ProfileCard renders a member preview: photo with age badge, name, optional
// location and description, and up to three interest tags.
func ProfileCard(props ProfileCardProps) g.Node {
	p := props.Profile
	clickable := props.Clickable()

	return Card(
		CardProps{
			Variant: CardProfile,
			Hover:   clickable,
			Class:   CN("w-full max-w-sm mx-auto", When(clickable, "relative"), props.Class),
			Attrs: []g.Node{
				g.Attr("data-testid", "profile-card"),
				g.If(clickable, g.Group([]g.Node{
					g.Attr("data-profile-id", p.ID),
					g.Attr("role", "button"),
				})),
			},
		},

		h.Div(
			h.Class("relative w-full aspect-[4/5] mb-4"),
			h.Img(
				h.Src(p.Image),
				h.Alt(fmt.Sprintf("%s's profile", p.Name)),
				h.Loading("lazy"),
				g.Attr("sizes", "(max-width: 768px) 100vw, (max-width: 1200px) 50vw, 33vw"),
				h.Class("absolute inset-0 w-full h-full object-cover rounded-lg"),
			),
			h.Div(
				h.Class("absolute top-3 right-3 bg-white/90 backdrop-blur-sm px-2 py-1 rounded-full"),
				h.Span(
					h.Class("text-body-sm font-medium text-neutral-900"),
					g.Attr("data-testid", "profile-age"),
					g.Text(strconv.Itoa(p.Age)),
				),
			),
		),

		h.Div(
			h.Class("space-y-3"),
			h.Div(
				h.H3(
					h.Class("text-heading-lg font-semibold text-neutral-900"),
					g.If(clickable, h.A(
						h.Href(ProfileHref(p.ID)),
						h.Class("after:absolute after:inset-0 focus:outline-none"),
						g.Text(p.Name),
					)),
					g.If(!clickable, g.Text(p.Name)),
				),
				g.If(p.Location != "", h.P(h.Class("text-body-sm text-neutral-600"), g.Text(p.Location))),
			),

			g.If(p.Description != "", h.P(h.Class("text-body-sm text-neutral-700 line-clamp-2"), g.Text(p.Description))),

			g.If(len(p.Interests) > 0, h.Div(
				h.Class("flex flex-wrap gap-2"),
				g.Map(p.VisibleInterests(), func(interest string) g.Node {
					return h.Span(
						h.Class("inline-flex items-center px-2 py-1 rounded-full bg-brand-50 text-brand-600 text-body-xs font-medium"),
						g.Attr("data-testid", "interest-tag"),
						g.Text(interest),
					)
				}),
				g.If(p.HiddenInterestCount() > 0, h.Span(
					h.Class("text-body-xs text-neutral-500"),
					g.Attr("data-testid", "interest-more"),
					g.Textf("+%d more", p.HiddenInterestCount()),
				)),
			)),
		),
	)
}

// GridColumns is the number of columns per breakpoint. Zero fields take the
// defaults 1, 2 and 3.
type GridColumns struct {
	Mobile  int
	Tablet  int
	Desktop int
}

func (c GridColumns) withDefaults() GridColumns {
	if c.Mobile <= 0 {
		c.Mobile = 1
	}
	if c.Tablet <= 0 {
		c.Tablet = 2
	}
	if c.Desktop <= 0 {
		c.Desktop = 3
	}
	return c
}

// Class returns the grid column utilities. Extra-large screens always get four
// columns regardless of Desktop.
func (c GridColumns) Class() string {
	c = c.withDefaults()
	return CN(
		"grid gap-grid-gap",
		fmt.Sprintf("grid-cols-%d", c.Mobile),
		fmt.Sprintf("md:grid-cols-%d", c.Tablet),
		fmt.Sprintf("lg:grid-cols-%d", c.Desktop),
		"xl:grid-cols-4",
	)
}

// ProfileGrid lays out profile cards in content order.
type ProfileGrid struct {
	Profiles []content.ProfileSummary
	Columns  GridColumns
	// OnProfileClick receives the id of an activated card. When nil the cards
	// are not clickable.
	OnProfileClick func(id string)
}

// Cards returns one card per profile, in order. Each card's activation calls
// OnProfileClick with that card's profile id.
func (pg ProfileGrid) Cards() []ProfileCardProps {
	cards := make([]ProfileCardProps, len(pg.Profiles))
	for i, p := range pg.Profiles {
		cards[i] = ProfileCardProps{Profile: p}
		if pg.OnProfileClick != nil {
			id := p.ID
			cards[i].OnActivate = func() { pg.OnProfileClick(id) }
		}
	}
	return cards
}

func (pg ProfileGrid) Render(w io.Writer) error {
	return h.Div(
		h.Class(pg.Columns.Class()),
		g.Attr("data-testid", "profile-grid"),
		g.Map(pg.Cards(), ProfileCard),
	).Render(w)
}
