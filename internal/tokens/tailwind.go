package tokens

import (
	"encoding/json"
	"fmt"
)

// TailwindTheme builds the theme.extend object of a Tailwind configuration, so the
// runtime generates utilities for every custom token name.
func (t Tokens) TailwindTheme() map[string]any {
	colors := make(map[string]any, len(t.Colors))
	for _, p := range t.Colors {
		colors[p.Name] = entries(p.Shades)
	}

	families := make(map[string]any, len(t.FontFamilies))
	for _, ff := range t.FontFamilies {
		families[ff.Name] = ff.Stack
	}

	sizes := make(map[string]any, len(t.FontSizes))
	for _, fs := range t.FontSizes {
		metrics := map[string]string{
			"lineHeight": fs.LineHeight,
			"fontWeight": fs.Weight,
		}
		if fs.LetterSpacing != "" {
			metrics["letterSpacing"] = fs.LetterSpacing
		}
		sizes[fs.Name] = []any{fs.Size, metrics}
	}

	animations := make(map[string]string, len(t.Animations))
	for _, a := range t.Animations {
		animations[a.Name] = a.Value()
	}

	keyframes := make(map[string]any, len(t.Keyframes))
	for _, kf := range t.Keyframes {
		steps := make(map[string]any, len(kf.Steps))
		for _, step := range kf.Steps {
			steps[step.Offset] = entries(step.Props)
		}
		keyframes[kf.Name] = steps
	}

	return map[string]any{
		"colors":       colors,
		"fontFamily":   families,
		"fontSize":     sizes,
		"spacing":      entries(t.Spacing),
		"borderRadius": entries(t.Radii),
		"boxShadow":    entries(t.Shadows),
		"animation":    animations,
		"keyframes":    keyframes,
		"screens":      entries(t.Breakpoints),
	}
}

// TailwindConfig renders the runtime configuration object as JSON.
func (t Tokens) TailwindConfig() ([]byte, error) {
	cfg := map[string]any{
		"theme": map[string]any{
			"extend": t.TailwindTheme(),
		},
	}
	b, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal tailwind config: %w", err)
	}
	return b, nil
}

func entries(es []Entry) map[string]string {
	m := make(map[string]string, len(es))
	for _, e := range es {
		m[e.Key] = e.Value
	}
	return m
}
