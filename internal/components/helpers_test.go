package components

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/chiranperera/inner-most/internal/content"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, n.Render(&sb))
	return sb.String()
}

func parse(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(render(t, n)))
	require.NoError(t, err)
	return doc
}

func classes(s *goquery.Selection) []string {
	c, _ := s.Attr("class")
	return strings.Fields(c)
}

func classList(s string) []string {
	return strings.Fields(s)
}

func sarah() content.ProfileSummary {
	return content.ProfileSummary{
		ID:          "1",
		Name:        "Sarah",
		Age:         28,
		Image:       "https://example.com/sarah.jpg",
		Description: "Love hiking, photography, and good coffee.",
		Interests:   []string{"Photography", "Hiking", "Coffee"},
		Location:    "San Francisco, CA",
	}
}

func testSite(t *testing.T) *content.Site {
	t.Helper()
	site, err := content.Default()
	require.NoError(t, err)
	return site
}
