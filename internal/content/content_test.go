package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	site, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "InnorMost", site.Brand)
	assert.Equal(t, "InnorMost - Find Your Perfect Match", site.Metadata.Title)
	assert.Len(t, site.Profiles, 4)
	assert.Len(t, site.Features, 4)
	assert.Len(t, site.Highlights, 3)
	assert.Len(t, site.FooterColumns, 3)
	assert.Equal(t, DefaultNavigation(), site.Navigation)
	assert.Equal(t, -1, site.Metadata.Robots.GoogleBot.MaxSnippet)

	sarah, ok := site.Profile("1")
	require.True(t, ok)
	assert.Equal(t, "Sarah", sarah.Name)
	assert.Equal(t, 28, sarah.Age)
	assert.Equal(t, []string{"Photography", "Hiking", "Coffee"}, sarah.Interests)

	_, ok = site.Profile("404")
	assert.False(t, ok)
}

func TestProfileSummary_Interests(t *testing.T) {
	tests := []struct {
		name        string
		interests   []string
		wantVisible []string
		wantHidden  int
	}{
		{"none", nil, nil, 0},
		{"fewer than limit", []string{"Art"}, []string{"Art"}, 0},
		{"exactly limit", []string{"Art", "Yoga", "Meditation"}, []string{"Art", "Yoga", "Meditation"}, 0},
		{"one over", []string{"Art", "Yoga", "Meditation", "Tea"}, []string{"Art", "Yoga", "Meditation"}, 1},
		{"many over", []string{"a", "b", "c", "d", "e", "f", "g"}, []string{"a", "b", "c"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ProfileSummary{Interests: tt.interests}
			assert.Equal(t, tt.wantVisible, p.VisibleInterests())
			assert.Equal(t, tt.wantHidden, p.HiddenInterestCount())
		})
	}
}

func TestFeaturedProfiles(t *testing.T) {
	site := &Site{Profiles: []ProfileSummary{{ID: "a"}, {ID: "b"}, {ID: "c"}}}

	assert.Len(t, site.FeaturedProfiles(2), 2)
	assert.Equal(t, "a", site.FeaturedProfiles(2)[0].ID)
	assert.Len(t, site.FeaturedProfiles(10), 3)
	assert.Len(t, site.FeaturedProfiles(-1), 3)
	assert.Empty(t, site.FeaturedProfiles(0))
}

func TestNavigationOrDefault(t *testing.T) {
	assert.Equal(t, DefaultNavigation(), (&Site{}).NavigationOrDefault())

	custom := []NavigationItem{{Label: "Blog", Href: "/blog"}}
	assert.Equal(t, custom, (&Site{Navigation: custom}).NavigationOrDefault())
}

const minimalSite = `
brand: Test
metadata:
  title: T
  description: D
`

func TestDecode_Minimal(t *testing.T) {
	site, err := Decode(strings.NewReader(minimalSite))
	require.NoError(t, err)
	assert.Equal(t, "Test", site.Brand)
	assert.Empty(t, site.Profiles)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "empty document",
			yaml:    "",
			wantErr: "content is empty",
		},
		{
			name:    "unknown key",
			yaml:    minimalSite + "colour: red\n",
			wantErr: "decode yaml",
		},
		{
			name:    "missing brand",
			yaml:    "metadata: {title: T, description: D}\n",
			wantErr: "brand is required",
		},
		{
			name: "duplicate profile ids",
			yaml: minimalSite + `
profiles:
  - {id: "1", name: A, age: 20, image: a.jpg}
  - {id: "1", name: B, age: 21, image: b.jpg}
`,
			wantErr: "profiles must have unique ID values",
		},
		{
			name: "non-positive age",
			yaml: minimalSite + `
profiles:
  - {id: "1", name: A, age: 0, image: a.jpg}
`,
			wantErr: "profiles[0].age must be greater than 0",
		},
		{
			name: "navigation without href",
			yaml: minimalSite + `
navigation:
  - {label: Home}
`,
			wantErr: "navigation[0].href is required",
		},
		{
			name: "empty interest tag",
			yaml: minimalSite + `
profiles:
  - {id: "1", name: A, age: 20, image: a.jpg, interests: [Art, ""]}
`,
			wantErr: "profiles[0].interests[1] is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalSite), 0o600))

	site, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test", site.Brand)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "open content")
}
