package components

import (
	"net/http"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiranperera/inner-most/internal/content"
	"github.com/chiranperera/inner-most/internal/tokens"
)

func TestLayout_Metadata(t *testing.T) {
	site := testSite(t)
	cfg, err := tokens.Default().TailwindConfig()
	require.NoError(t, err)

	html := render(t, Layout(PageConfig{Metadata: site.Metadata, Path: "/", TailwindConfig: cfg}))
	require.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))

	doc := parse(t, Layout(PageConfig{Metadata: site.Metadata, Path: "/", TailwindConfig: cfg}))
	meta := func(sel string) string {
		return doc.Find(sel).AttrOr("content", "")
	}

	assert.Equal(t, "en", doc.Find("html").AttrOr("lang", ""))
	assert.Equal(t, "InnorMost - Find Your Perfect Match", doc.Find("title").Text())
	assert.Contains(t, meta(`meta[name="description"]`), "Connect with meaningful relationships")
	assert.Equal(t, "dating, relationships, connections, matches, social networking", meta(`meta[name="keywords"]`))
	assert.Equal(t, "InnorMost Team", meta(`meta[name="author"]`))
	assert.Equal(t, "InnorMost", meta(`meta[name="creator"]`))
	assert.Equal(t, "index, follow", meta(`meta[name="robots"]`))
	assert.Equal(t, "index, follow, max-video-preview:-1, max-image-preview:large, max-snippet:-1", meta(`meta[name="googlebot"]`))

	assert.Equal(t, "website", meta(`meta[property="og:type"]`))
	assert.Equal(t, "en_US", meta(`meta[property="og:locale"]`))
	assert.Equal(t, "https://innermost.com/", meta(`meta[property="og:url"]`))
	assert.Equal(t, "InnorMost", meta(`meta[property="og:site_name"]`))
	assert.Equal(t, "/og-image.jpg", meta(`meta[property="og:image"]`))
	assert.Equal(t, "1200", meta(`meta[property="og:image:width"]`))
	assert.Equal(t, "630", meta(`meta[property="og:image:height"]`))

	assert.Equal(t, "summary_large_image", meta(`meta[name="twitter:card"]`))
	assert.Equal(t, "@innermost", meta(`meta[name="twitter:creator"]`))
	assert.Equal(t, "/og-image.jpg", meta(`meta[name="twitter:image"]`))

	assert.Equal(t, "https://innermost.com/", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	assert.Equal(t, 1, doc.Find(`link[rel="manifest"][href="/manifest.json"]`).Length())
	assert.Equal(t, 1, doc.Find(`link[rel="stylesheet"][href="/static/tokens.css"]`).Length())
	assert.Equal(t, 1, doc.Find(`script[src="https://cdn.tailwindcss.com"]`).Length())
	assert.Contains(t, html, `tailwind.config = {"theme":{"extend":`)
}

func TestLayout_EmptyMetadataOmitsTags(t *testing.T) {
	doc := parse(t, Layout(PageConfig{}))

	assert.Equal(t, "InnorMost - Find Your Perfect Match", doc.Find("title").Text())
	assert.Equal(t, 0, doc.Find(`meta[name="keywords"]`).Length())
	assert.Equal(t, 0, doc.Find(`meta[property="og:image"]`).Length())
	assert.Equal(t, 0, doc.Find(`link[rel="canonical"]`).Length())
	assert.Equal(t, "noindex, nofollow", doc.Find(`meta[name="robots"]`).AttrOr("content", ""))
}

func TestLandingPage(t *testing.T) {
	site := testSite(t)
	doc := parse(t, LandingPage(PageProps{Site: site, OnProfileClick: func(string) {}}))

	main := doc.Find("main")
	require.Equal(t, 1, main.Length())
	require.Equal(t, 1, main.Find("header").Length())

	assert.Equal(t, "Don't worry, let happen!", main.Find("h1").Text())
	assert.Equal(t, 4, main.Find(`[data-testid="profile-card"]`).Length())

	features := main.Find("#features")
	assert.Contains(t, features.Find("h2").Text(), "Why choose InnorMost?")
	assert.Equal(t, 4, features.Find(`[data-testid="feature-card"]`).Length())
	assert.Equal(t, "Smart Matching", features.Find("h3").First().Text())

	preview := main.Find("#download")
	assert.Equal(t, "Take connections with you", preview.Find("h2").Text())
	assert.Equal(t, 3, preview.Find("li").Length())
	assert.Contains(t, preview.Text(), "Download for iOS")
	assert.Contains(t, preview.Text(), "Download for Android")

	assert.Contains(t, main.Text(), "Ready to find your perfect match?")
	journey := main.Find(`a[href="/signup"]`).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.TrimSpace(s.Text()) == "Start Your Journey"
	})
	require.Equal(t, 1, journey.Length())
	jc := classes(journey)
	assert.Contains(t, jc, "text-brand-600")
	assert.NotContains(t, jc, "text-brand-500")

	footer := main.Find("footer")
	assert.Equal(t, 3, footer.Find("h4").Length())
	assert.Contains(t, footer.Text(), "Connecting hearts, creating meaningful relationships.")
	assert.Contains(t, footer.Text(), "© 2024 InnorMost. All rights reserved.")
	for _, href := range []string{"/features", "/pricing", "/safety", "/download", "/about", "/careers", "/press", "/contact", "/help", "/privacy", "/terms", "/community"} {
		assert.Equal(t, 1, footer.Find(`a[href="`+href+`"]`).Length(), href)
	}
	assert.Equal(t, 3, footer.Find(`a[href="#"]`).Length())
}

func TestLandingPage_EmptyContentDegrades(t *testing.T) {
	site := &content.Site{Brand: "InnorMost", Metadata: content.Metadata{Title: "T", Description: "D"}}
	doc := parse(t, LandingPage(PageProps{Site: site}))

	assert.Equal(t, 0, doc.Find("#features").Length())
	assert.NotContains(t, doc.Text(), "Meet your people")
	assert.Equal(t, 0, doc.Find("#download li").Length())
	assert.Equal(t, 4, doc.Find(`nav[aria-label="Main"] a`).Length())
}

func TestProfilesPage(t *testing.T) {
	site := testSite(t)
	doc := parse(t, ProfilesPage(PageProps{Site: site, OnProfileClick: func(string) {}}))

	assert.Equal(t, "Profiles | InnorMost", doc.Find("title").Text())
	assert.Equal(t, "https://innermost.com/profiles", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))

	grid := doc.Find(`[data-testid="profile-grid"]`)
	assert.Contains(t, classes(grid), "lg:grid-cols-3")
	assert.Equal(t, 4, grid.Find(`[data-profile-id]`).Length())
}

func TestProfilesPage_Empty(t *testing.T) {
	site := &content.Site{Brand: "InnorMost"}
	doc := parse(t, ProfilesPage(PageProps{Site: site}))

	assert.Equal(t, 0, doc.Find(`[data-testid="profile-grid"]`).Length())
	assert.Contains(t, doc.Text(), "No profiles yet")
}

func TestErrorPage(t *testing.T) {
	t.Run("with site", func(t *testing.T) {
		doc := parse(t, ErrorPage(PageProps{Site: testSite(t)}, http.StatusNotFound, "Profile '9' not found"))

		assert.Equal(t, "404 Not Found", doc.Find("title").Text())
		assert.Equal(t, "404", doc.Find(`[data-testid="error-status"]`).Text())
		assert.Equal(t, "Profile '9' not found", doc.Find("h1").Text())
		assert.Equal(t, "noindex, nofollow", doc.Find(`meta[name="robots"]`).AttrOr("content", ""))
		assert.Equal(t, 1, doc.Find("footer").Length())
	})

	t.Run("without site", func(t *testing.T) {
		doc := parse(t, ErrorPage(PageProps{}, http.StatusInternalServerError, ""))

		assert.Equal(t, "Internal Server Error", doc.Find("h1").Text())
		assert.Equal(t, 0, doc.Find("footer").Length())
		assert.Equal(t, 1, doc.Find("header").Length())
	})
}
