package components

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiranperera/inner-most/internal/content"
)

func TestHeader_Defaults(t *testing.T) {
	hd := NewHeader(HeaderProps{})
	doc := parse(t, hd)

	desktop := doc.Find(`nav[aria-label="Main"] a`)
	require.Equal(t, 4, desktop.Length())

	var hrefs, labels []string
	desktop.Each(func(_ int, a *goquery.Selection) {
		hrefs = append(hrefs, a.AttrOr("href", ""))
		labels = append(labels, a.Text())
	})
	assert.Equal(t, []string{"/", "/about", "/features", "/contact"}, hrefs)
	assert.Equal(t, []string{"Home", "About", "Features", "Contact"}, labels)

	cta := doc.Find(`a[href="/signup"]`)
	require.Equal(t, 1, cta.Length())
	assert.Equal(t, "Get Started", cta.Text())

	assert.Contains(t, doc.Find("header").Text(), "InnorMost")
	assert.Equal(t, "I", doc.Find("header .bg-brand-500 span").First().Text())
}

func TestHeader_MenuState(t *testing.T) {
	hd := NewHeader(HeaderProps{})
	assert.False(t, hd.MenuOpen(), "menu starts closed")

	for i := 1; i <= 6; i++ {
		hd.Toggle()
		assert.Equal(t, i%2 == 1, hd.MenuOpen(), "after %d toggles", i)
	}
}

func TestHeader_Select(t *testing.T) {
	hd := NewHeader(HeaderProps{})
	hd.Toggle()
	require.True(t, hd.MenuOpen())

	item, ok := hd.Select(2)
	require.True(t, ok)
	assert.Equal(t, content.NavigationItem{Label: "Features", Href: "/features"}, item)
	assert.False(t, hd.MenuOpen(), "following a link closes the menu")

	item, ok = hd.Select(0)
	require.True(t, ok)
	assert.Equal(t, "/", item.Href)
	assert.False(t, hd.MenuOpen(), "selecting with a closed menu keeps it closed")

	_, ok = hd.Select(4)
	assert.False(t, ok)
	_, ok = hd.Select(-1)
	assert.False(t, ok)
}

func TestHeader_RenderClosed(t *testing.T) {
	doc := parse(t, NewHeader(HeaderProps{CurrentPath: "/profiles"}))

	toggle := doc.Find(`[aria-label="Toggle mobile menu"]`)
	require.Equal(t, 1, toggle.Length())
	assert.Equal(t, "/profiles?menu=open", toggle.AttrOr("href", ""))
	assert.Equal(t, "false", toggle.AttrOr("aria-expanded", ""))
	assert.Equal(t, "lucide:menu", toggle.Find(".iconify").AttrOr("data-icon", ""))

	assert.Equal(t, 0, doc.Find("#mobile-menu").Length())
	assert.Equal(t, 1, doc.Find("nav").Length())
}

func TestHeader_RenderOpen(t *testing.T) {
	hd := NewHeader(HeaderProps{})
	hd.Toggle()
	doc := parse(t, hd)

	toggle := doc.Find(`[aria-label="Toggle mobile menu"]`)
	assert.Equal(t, "/", toggle.AttrOr("href", ""))
	assert.Equal(t, "true", toggle.AttrOr("aria-expanded", ""))
	assert.Equal(t, "lucide:x", toggle.Find(".iconify").AttrOr("data-icon", ""))

	mobile := doc.Find(`#mobile-menu nav[aria-label="Mobile"]`)
	require.Equal(t, 1, mobile.Length())

	links := mobile.Find("a")
	require.Equal(t, 5, links.Length(), "four items plus the CTA")
	for i, want := range []string{"/", "/about", "/features", "/contact"} {
		href := links.Eq(i).AttrOr("href", "")
		assert.Equal(t, want, href)
		assert.NotContains(t, href, MenuParam, "mobile links close the menu")
	}

	cta := links.Last()
	assert.Equal(t, "/signup", cta.AttrOr("href", ""))
	assert.Contains(t, classes(cta), "w-full")
}

func TestHeader_CustomProps(t *testing.T) {
	hd := NewHeader(HeaderProps{
		Logo:        "/logo.svg",
		LogoText:    "Acme",
		Navigation:  []content.NavigationItem{{Label: "Blog", Href: "/blog"}},
		CTAText:     "Join",
		CTAHref:     "/join",
		CurrentPath: "/blog",
		Class:       "bg-white",
	})
	doc := parse(t, hd)

	img := doc.Find("header img")
	assert.Equal(t, "/logo.svg", img.AttrOr("src", ""))
	assert.Equal(t, "Acme", img.AttrOr("alt", ""))

	nav := doc.Find(`nav[aria-label="Main"] a`)
	require.Equal(t, 1, nav.Length())
	assert.Equal(t, "page", nav.AttrOr("aria-current", ""))
	assert.Equal(t, "Join", doc.Find(`a[href="/join"]`).Text())

	header := classes(doc.Find("header"))
	assert.Contains(t, header, "bg-white")
	assert.NotContains(t, header, "bg-white/95")
	assert.Equal(t, []content.NavigationItem{{Label: "Blog", Href: "/blog"}}, hd.Navigation())
}
