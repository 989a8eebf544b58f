package components

import (
	"fmt"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/chiranperera/inner-most/internal/content"
)

const defaultTailwindCDN = "https://cdn.tailwindcss.com"

type PageConfig struct {
	Metadata content.Metadata
	// Title overrides Metadata.Title for pages other than the landing page.
	Title string
	// Path is the request path, used for the canonical link.
	Path        string
	BaseURL     string
	TailwindCDN string
	// TailwindConfig is the theme JSON inlined for the Tailwind runtime.
	TailwindConfig []byte
	// NoIndex keeps error pages out of search results.
	NoIndex bool
}

func (c PageConfig) title() string {
	if c.Title != "" {
		return c.Title
	}
	if c.Metadata.Title != "" {
		return c.Metadata.Title
	}
	return "InnorMost - Find Your Perfect Match"
}

func (c PageConfig) canonical() string {
	base := strings.TrimSuffix(c.BaseURL, "/")
	if base == "" {
		base = strings.TrimSuffix(c.Metadata.URL, "/")
	}
	if base == "" {
		return ""
	}
	path := c.Path
	if path == "" {
		path = "/"
	}
	return base + path
}

// RobotsDirective renders robots settings in meta tag syntax, e.g.
// "index, follow".
func RobotsDirective(r content.Robots) string {
	return strings.Join([]string{indexWord(r.Index), followWord(r.Follow)}, ", ")
}

// GoogleBotDirective adds the preview limits Google honours.
func GoogleBotDirective(gb content.GoogleBot) string {
	parts := []string{indexWord(gb.Index), followWord(gb.Follow)}
	parts = append(parts, "max-video-preview:"+strconv.Itoa(gb.MaxVideoPreview))
	if gb.MaxImagePreview != "" {
		parts = append(parts, "max-image-preview:"+gb.MaxImagePreview)
	}
	parts = append(parts, "max-snippet:"+strconv.Itoa(gb.MaxSnippet))
	return strings.Join(parts, ", ")
}

func indexWord(b bool) string {
	if b {
		return "index"
	}
	return "noindex"
}

func followWord(b bool) string {
	if b {
		return "follow"
	}
	return "nofollow"
}

func property(name, value string) g.Node {
	if value == "" {
		return nil
	}
	return h.Meta(g.Attr("property", name), h.Content(value))
}

func metaName(name, value string) g.Node {
	if value == "" {
		return nil
	}
	return h.Meta(h.Name(name), h.Content(value))
}

// Layout wraps page content in the HTML document: metadata, social cards,
// crawler directives, icons, fonts, the design-token stylesheet and the
// Tailwind runtime configured from the same tokens.
func Layout(config PageConfig, children ...g.Node) g.Node {
	md := config.Metadata
	title := config.title()
	cdn := config.TailwindCDN
	if cdn == "" {
		cdn = defaultTailwindCDN
	}

	robots := RobotsDirective(md.Robots)
	googlebot := GoogleBotDirective(md.Robots.GoogleBot)
	if config.NoIndex {
		robots, googlebot = "noindex, nofollow", "noindex, nofollow"
	}

	twitterTitle := md.Twitter.Title
	if twitterTitle == "" || config.Title != "" {
		twitterTitle = title
	}
	twitterDescription := md.Twitter.Description
	if twitterDescription == "" {
		twitterDescription = md.Description
	}

	var ogImage []g.Node
	if md.OGImage.URL != "" {
		ogImage = []g.Node{
			property("og:image", md.OGImage.URL),
			g.If(md.OGImage.Width > 0, property("og:image:width", strconv.Itoa(md.OGImage.Width))),
			g.If(md.OGImage.Height > 0, property("og:image:height", strconv.Itoa(md.OGImage.Height))),
			property("og:image:alt", md.OGImage.Alt),
			metaName("twitter:image", md.OGImage.URL),
		}
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1, maximum-scale=1")),
				h.TitleEl(g.Text(title)),
				metaName("description", md.Description),
				metaName("keywords", strings.Join(md.Keywords, ", ")),
				g.Map(md.Authors, func(a string) g.Node { return metaName("author", a) }),
				metaName("creator", md.Creator),
				metaName("publisher", md.Publisher),
				metaName("theme-color", md.ThemeColor),
				metaName("robots", robots),
				metaName("googlebot", googlebot),
				g.If(config.canonical() != "", h.Link(h.Rel("canonical"), h.Href(config.canonical()))),

				property("og:type", "website"),
				property("og:locale", md.Locale),
				property("og:url", config.canonical()),
				property("og:site_name", md.SiteName),
				property("og:title", title),
				property("og:description", md.Description),
				g.Group(ogImage),

				metaName("twitter:card", md.Twitter.Card),
				metaName("twitter:title", twitterTitle),
				metaName("twitter:description", twitterDescription),
				metaName("twitter:creator", md.Twitter.Creator),

				h.Link(h.Rel("icon"), h.Href("/favicon.ico"), g.Attr("sizes", "any")),
				h.Link(h.Rel("icon"), h.Href("/icon.svg"), h.Type("image/svg+xml")),
				h.Link(h.Rel("apple-touch-icon"), h.Href("/apple-touch-icon.png")),
				h.Link(h.Rel("manifest"), h.Href("/manifest.json")),

				h.Link(h.Rel("preconnect"), h.Href("https://fonts.googleapis.com")),
				h.Link(h.Rel("preconnect"), h.Href("https://fonts.gstatic.com"), g.Attr("crossorigin", "anonymous")),
				h.Link(h.Rel("stylesheet"), h.Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap")),

				h.Link(h.Rel("stylesheet"), h.Href("/static/tokens.css")),
				h.Script(h.Src(cdn)),
				g.If(len(config.TailwindConfig) > 0, h.Script(g.Raw(fmt.Sprintf("tailwind.config = %s;", config.TailwindConfig)))),
				h.Script(h.Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			h.Body(
				h.Class("font-sans antialiased bg-white text-neutral-900"),
				g.Group(children),
			),
		),
	})
}
