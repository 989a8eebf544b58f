// Package content holds the data the landing page renders: navigation, profile
// previews, feature highlights, footer links and document metadata.
//
// Content is supplied from outside (a CMS export or the embedded sample file) and
// is immutable once loaded; components only read it.
package content

// NavigationItem is one link in a navigation list.
type NavigationItem struct {
	Label string `yaml:"label" json:"label" validate:"required"`
	Href  string `yaml:"href" json:"href" validate:"required"`
}

// ProfileSummary is the preview of one member shown on a profile card.
type ProfileSummary struct {
	ID          string   `yaml:"id" json:"id" validate:"required"`
	Name        string   `yaml:"name" json:"name" validate:"required"`
	Age         int      `yaml:"age" json:"age" validate:"gt=0"`
	Image       string   `yaml:"image" json:"image" validate:"required"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Interests   []string `yaml:"interests,omitempty" json:"interests,omitempty" validate:"dive,required"`
	Location    string   `yaml:"location,omitempty" json:"location,omitempty"`
}

// MaxVisibleInterests is how many interest tags a card shows before collapsing
// the rest into a "+N more" indicator.
const MaxVisibleInterests = 3

// VisibleInterests returns the interests shown as tags.
func (p ProfileSummary) VisibleInterests() []string {
	if len(p.Interests) <= MaxVisibleInterests {
		return p.Interests
	}
	return p.Interests[:MaxVisibleInterests]
}

// HiddenInterestCount is the N of the "+N more" indicator; zero means no indicator.
func (p ProfileSummary) HiddenInterestCount() int {
	if n := len(p.Interests) - MaxVisibleInterests; n > 0 {
		return n
	}
	return 0
}

// Feature is a product highlight card.
type Feature struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description" validate:"required"`
	Icon        string `yaml:"icon" json:"icon" validate:"required"`
}

// Highlight is a checklist bullet in the app preview section.
type Highlight struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description" validate:"required"`
}

type FooterColumn struct {
	Heading string           `yaml:"heading" json:"heading" validate:"required"`
	Links   []NavigationItem `yaml:"links" json:"links" validate:"dive"`
}

type Image struct {
	URL    string `yaml:"url" json:"url"`
	Width  int    `yaml:"width" json:"width" validate:"gte=0"`
	Height int    `yaml:"height" json:"height" validate:"gte=0"`
	Alt    string `yaml:"alt" json:"alt"`
}

type Twitter struct {
	Card        string `yaml:"card" json:"card"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Creator     string `yaml:"creator" json:"creator"`
}

type GoogleBot struct {
	Index           bool   `yaml:"index" json:"index"`
	Follow          bool   `yaml:"follow" json:"follow"`
	MaxVideoPreview int    `yaml:"max_video_preview" json:"max_video_preview"`
	MaxImagePreview string `yaml:"max_image_preview" json:"max_image_preview"`
	MaxSnippet      int    `yaml:"max_snippet" json:"max_snippet"`
}

// Robots are the crawler directives published in meta tags and robots.txt.
type Robots struct {
	Index     bool      `yaml:"index" json:"index"`
	Follow    bool      `yaml:"follow" json:"follow"`
	GoogleBot GoogleBot `yaml:"googlebot" json:"googlebot"`
}

// Metadata is document-level configuration consumed by the page layout.
type Metadata struct {
	Title       string   `yaml:"title" json:"title" validate:"required"`
	Description string   `yaml:"description" json:"description" validate:"required"`
	Keywords    []string `yaml:"keywords" json:"keywords"`
	Authors     []string `yaml:"authors" json:"authors"`
	Creator     string   `yaml:"creator" json:"creator"`
	Publisher   string   `yaml:"publisher" json:"publisher"`
	URL         string   `yaml:"url" json:"url"`
	SiteName    string   `yaml:"site_name" json:"site_name"`
	Locale      string   `yaml:"locale" json:"locale"`
	OGImage     Image    `yaml:"og_image" json:"og_image"`
	Twitter     Twitter  `yaml:"twitter" json:"twitter"`
	Robots      Robots   `yaml:"robots" json:"robots"`
	ThemeColor  string   `yaml:"theme_color" json:"theme_color"`
}

// Site is everything the landing page renders.
type Site struct {
	Brand         string           `yaml:"brand" json:"brand" validate:"required"`
	Tagline       string           `yaml:"tagline" json:"tagline"`
	Copyright     int              `yaml:"copyright_year" json:"copyright_year" validate:"gte=0"`
	Metadata      Metadata         `yaml:"metadata" json:"metadata"`
	Navigation    []NavigationItem `yaml:"navigation" json:"navigation" validate:"dive"`
	Profiles      []ProfileSummary `yaml:"profiles" json:"profiles" validate:"unique=ID,dive"`
	Features      []Feature        `yaml:"features" json:"features" validate:"dive"`
	Highlights    []Highlight      `yaml:"highlights" json:"highlights" validate:"dive"`
	FooterColumns []FooterColumn   `yaml:"footer" json:"footer" validate:"dive"`
	Social        []NavigationItem `yaml:"social" json:"social" validate:"dive"`
}

// DefaultNavigation is the header navigation used when none is configured.
func DefaultNavigation() []NavigationItem {
	return []NavigationItem{
		{Label: "Home", Href: "/"},
		{Label: "About", Href: "/about"},
		{Label: "Features", Href: "/features"},
		{Label: "Contact", Href: "/contact"},
	}
}

// Profile finds a profile by id.
func (s *Site) Profile(id string) (ProfileSummary, bool) {
	for _, p := range s.Profiles {
		if p.ID == id {
			return p, true
		}
	}
	return ProfileSummary{}, false
}

// FeaturedProfiles returns at most n profiles in content order.
func (s *Site) FeaturedProfiles(n int) []ProfileSummary {
	if n < 0 || n >= len(s.Profiles) {
		return s.Profiles
	}
	return s.Profiles[:n]
}

// NavigationOrDefault returns the configured header navigation, falling back to
// DefaultNavigation.
func (s *Site) NavigationOrDefault() []NavigationItem {
	if len(s.Navigation) == 0 {
		return DefaultNavigation()
	}
	return s.Navigation
}
