package render

import (
	"encoding/json"
	"fmt"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/chiranperera/inner-most/internal/components"
	"github.com/chiranperera/inner-most/internal/content"
	"github.com/chiranperera/inner-most/internal/tokens"
)

// Pages assembles the page trees shared by the HTTP handlers and the static
// exporter, along with the generated assets that accompany them.
type Pages struct {
	Site        *content.Site
	Tokens      tokens.Tokens
	BaseURL     string
	TailwindCDN string

	tailwind []byte
	css      []byte
}

func NewPages(site *content.Site, tok tokens.Tokens, baseURL, tailwindCDN string) (*Pages, error) {
	if site == nil {
		return nil, fmt.Errorf("new pages: site is nil")
	}
	tw, err := tok.TailwindConfig()
	if err != nil {
		return nil, fmt.Errorf("new pages: %w", err)
	}
	return &Pages{
		Site:        site,
		Tokens:      tok,
		BaseURL:     baseURL,
		TailwindCDN: tailwindCDN,
		tailwind:    tw,
		css:         []byte(tok.CSS()),
	}, nil
}

func (p *Pages) config(path string) components.PageConfig {
	return components.PageConfig{
		Metadata:       p.Site.Metadata,
		Path:           path,
		BaseURL:        p.BaseURL,
		TailwindCDN:    p.TailwindCDN,
		TailwindConfig: p.tailwind,
	}
}

// Header returns a fresh header for a request to path, with its menu closed.
func (p *Pages) Header(path string) *components.Header {
	return components.NewHeader(components.HeaderProps{
		LogoText:    p.Site.Brand,
		Navigation:  p.Site.NavigationOrDefault(),
		CurrentPath: path,
	})
}

func (p *Pages) props(path string, header *components.Header, onProfileClick func(string)) components.PageProps {
	if header == nil {
		header = p.Header(path)
	}
	return components.PageProps{
		Site:           p.Site,
		Header:         header,
		Config:         p.config(path),
		OnProfileClick: onProfileClick,
	}
}

// Landing is the home page. A nil onProfileClick renders non-clickable cards.
func (p *Pages) Landing(header *components.Header, onProfileClick func(string)) g.Node {
	return components.LandingPage(p.props("/", header, onProfileClick))
}

func (p *Pages) Profiles(header *components.Header, onProfileClick func(string)) g.Node {
	return components.ProfilesPage(p.props("/profiles", header, onProfileClick))
}

func (p *Pages) Error(path string, status int, message string) g.Node {
	return components.ErrorPage(p.props(path, nil, nil), status, message)
}

// TokensCSS is the design-token stylesheet served at /static/tokens.css.
func (p *Pages) TokensCSS() []byte {
	return p.css
}

// RobotsTxt mirrors the robots metadata for crawlers that never parse HTML.
func (p *Pages) RobotsTxt() []byte {
	var sb strings.Builder
	sb.WriteString("User-agent: *\n")
	if p.Site.Metadata.Robots.Index {
		sb.WriteString("Allow: /\n")
	} else {
		sb.WriteString("Disallow: /\n")
	}
	if base := strings.TrimSuffix(p.baseURL(), "/"); base != "" {
		sb.WriteString("Host: " + base + "\n")
	}
	return []byte(sb.String())
}

func (p *Pages) baseURL() string {
	if p.BaseURL != "" {
		return p.BaseURL
	}
	return p.Site.Metadata.URL
}

type manifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

type manifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description,omitempty"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	BackgroundColor string         `json:"background_color"`
	ThemeColor      string         `json:"theme_color,omitempty"`
	Icons           []manifestIcon `json:"icons"`
}

// Manifest is the web app manifest linked from every page.
func (p *Pages) Manifest() ([]byte, error) {
	md := p.Site.Metadata
	name := md.SiteName
	if name == "" {
		name = p.Site.Brand
	}
	background, _ := p.Tokens.Color("surface", "primary")

	b, err := json.MarshalIndent(manifest{
		Name:            name,
		ShortName:       p.Site.Brand,
		Description:     md.Description,
		StartURL:        "/",
		Display:         "standalone",
		BackgroundColor: background,
		ThemeColor:      md.ThemeColor,
		Icons: []manifestIcon{
			{Src: "/icon.svg", Sizes: "any", Type: "image/svg+xml"},
			{Src: "/apple-touch-icon.png", Sizes: "180x180", Type: "image/png"},
		},
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return b, nil
}
