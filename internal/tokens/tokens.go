// Package tokens holds the design tokens every visual component is styled from.
//
// Components never hard-code token values. They reference tokens through utility
// class names (bg-brand-500, p-card-padding, text-body-sm, shadow-card-hover) and
// this package renders the CSS custom properties and the Tailwind runtime theme
// that make those names resolve. Changing a value here changes every consumer.
package tokens

// Entry is one named token value.
type Entry struct {
	Key   string
	Value string
}

// Palette is a named color scale (brand-50 .. brand-900).
type Palette struct {
	Name   string
	Shades []Entry
}

type FontFamily struct {
	Name  string
	Stack []string
}

// FontSize is a typography step with its companion line metrics.
type FontSize struct {
	Name          string
	Size          string
	LineHeight    string
	LetterSpacing string
	Weight        string
}

// Keyframe is one step of an animation.
type Keyframe struct {
	Offset string
	Props  []Entry
}

type Keyframes struct {
	Name  string
	Steps []Keyframe
}

// Animation binds a utility name (animate-fade-in) to keyframes and timing.
type Animation struct {
	Name      string
	Keyframes string
	Duration  string
	Easing    string
}

// Tokens is the complete design-token table.
type Tokens struct {
	Colors       []Palette
	FontFamilies []FontFamily
	FontSizes    []FontSize
	Spacing      []Entry
	Radii        []Entry
	Shadows      []Entry
	Animations   []Animation
	Keyframes    []Keyframes
	Breakpoints  []Entry
}

// Default returns the InnorMost token table.
func Default() Tokens {
	return Tokens{
		Colors: []Palette{
			{Name: "brand", Shades: []Entry{
				{"50", "#FFF4F0"},
				{"100", "#FFE4D6"},
				{"200", "#FFCCB3"},
				{"300", "#FFB399"},
				{"400", "#FF9A80"},
				{"500", "#FF6B35"}, // primary CTA
				{"600", "#E85D2A"}, // active states
				{"700", "#D14F1F"},
				{"800", "#BA4114"},
				{"900", "#A3330A"},
			}},
			{Name: "neutral", Shades: []Entry{
				{"0", "#FFFFFF"},
				{"50", "#F8F9FA"},
				{"100", "#F1F3F4"},
				{"200", "#E6E6E6"},
				{"300", "#CCCCCC"},
				{"400", "#B3B3B3"},
				{"500", "#999999"},
				{"600", "#666666"},
				{"700", "#4A4A4A"},
				{"800", "#2E2E2E"},
				{"900", "#1A1A1A"},
			}},
			{Name: "surface", Shades: []Entry{
				{"primary", "#FFFFFF"},
				{"secondary", "#F8F9FA"},
				{"tertiary", "#F1F3F4"},
				{"elevated", "#FFFFFF"},
			}},
			{Name: "success", Shades: []Entry{{"50", "#F0FDF4"}, {"500", "#22C55E"}, {"600", "#16A34A"}, {"700", "#15803D"}}},
			{Name: "warning", Shades: []Entry{{"50", "#FFFBEB"}, {"500", "#F59E0B"}, {"600", "#D97706"}, {"700", "#B45309"}}},
			{Name: "error", Shades: []Entry{{"50", "#FEF2F2"}, {"500", "#EF4444"}, {"600", "#DC2626"}, {"700", "#B91C1C"}}},
		},

		FontFamilies: []FontFamily{
			{Name: "sans", Stack: []string{"Inter", "-apple-system", "BlinkMacSystemFont", "Segoe UI", "Roboto", "Helvetica Neue", "Arial", "sans-serif"}},
			{Name: "display", Stack: []string{"Inter", "-apple-system", "BlinkMacSystemFont", "sans-serif"}},
		},

		FontSizes: []FontSize{
			{Name: "display-xl", Size: "3rem", LineHeight: "1.2", LetterSpacing: "-0.025em", Weight: "600"},
			{Name: "display-lg", Size: "2.25rem", LineHeight: "1.2", LetterSpacing: "-0.02em", Weight: "600"},
			{Name: "display-md", Size: "1.75rem", LineHeight: "1.25", LetterSpacing: "-0.015em", Weight: "600"},
			{Name: "heading-xl", Size: "1.5rem", LineHeight: "1.3", Weight: "600"},
			{Name: "heading-lg", Size: "1.25rem", LineHeight: "1.4", Weight: "600"},
			{Name: "heading-md", Size: "1.125rem", LineHeight: "1.4", Weight: "600"},
			{Name: "heading-sm", Size: "1rem", LineHeight: "1.4", Weight: "600"},
			{Name: "body-lg", Size: "1.125rem", LineHeight: "1.7", Weight: "400"},
			{Name: "body-md", Size: "1rem", LineHeight: "1.6", Weight: "400"},
			{Name: "body-sm", Size: "0.875rem", LineHeight: "1.5", Weight: "400"},
			{Name: "body-xs", Size: "0.75rem", LineHeight: "1.4", Weight: "400"},
			{Name: "button-lg", Size: "1rem", LineHeight: "1.5", Weight: "600"},
			{Name: "button-md", Size: "0.875rem", LineHeight: "1.4", Weight: "600"},
			{Name: "button-sm", Size: "0.8125rem", LineHeight: "1.4", Weight: "500"},
		},

		// 8px base unit
		Spacing: []Entry{
			{"0.5", "0.125rem"},
			{"1", "0.25rem"},
			{"1.5", "0.375rem"},
			{"2", "0.5rem"},
			{"3", "0.75rem"},
			{"4", "1rem"},
			{"5", "1.25rem"},
			{"6", "1.5rem"},
			{"7", "1.75rem"},
			{"8", "2rem"},
			{"10", "2.5rem"},
			{"12", "3rem"},
			{"16", "4rem"},
			{"20", "5rem"},
			{"24", "6rem"},
			{"32", "8rem"},
			{"card-padding", "1.5rem"},
			{"section-spacing", "4rem"},
			{"element-margin", "1rem"},
			{"grid-gap", "1.5rem"},
			{"button-padding-y", "0.75rem"},
			{"button-padding-x", "1.5rem"},
		},

		Radii: []Entry{
			{"sm", "0.25rem"},
			{"md", "0.5rem"},
			{"lg", "0.75rem"},
			{"xl", "1rem"},
			{"2xl", "1.5rem"},
			{"button", "0.5rem"},
			{"card", "0.75rem"},
			{"input", "0.5rem"},
			{"avatar", "50%"},
		},

		Shadows: []Entry{
			{"xs", "0 1px 2px 0 rgb(0 0 0 / 0.05)"},
			{"sm", "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)"},
			{"md", "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)"},
			{"lg", "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)"},
			{"xl", "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)"},
			{"brand", "0 4px 14px 0 rgb(255 107 53 / 0.15)"},
			{"card-hover", "0 8px 25px -8px rgb(0 0 0 / 0.15)"},
			{"focus-brand", "0 0 0 3px rgb(255 107 53 / 0.2)"},
			{"focus-error", "0 0 0 3px rgb(239 68 68 / 0.2)"},
		},

		Animations: []Animation{
			{Name: "fade-in", Keyframes: "fadeIn", Duration: "0.3s", Easing: "ease-in-out"},
			{Name: "slide-up", Keyframes: "slideUp", Duration: "0.3s", Easing: "ease-in-out"},
			{Name: "scale-in", Keyframes: "scaleIn", Duration: "0.2s", Easing: "ease-in-out"},
			{Name: "bounce-gentle", Keyframes: "bounceGentle", Duration: "0.6s", Easing: "ease-in-out"},
		},

		Keyframes: []Keyframes{
			{Name: "fadeIn", Steps: []Keyframe{
				{Offset: "0%", Props: []Entry{{"opacity", "0"}}},
				{Offset: "100%", Props: []Entry{{"opacity", "1"}}},
			}},
			{Name: "slideUp", Steps: []Keyframe{
				{Offset: "0%", Props: []Entry{{"transform", "translateY(10px)"}, {"opacity", "0"}}},
				{Offset: "100%", Props: []Entry{{"transform", "translateY(0)"}, {"opacity", "1"}}},
			}},
			{Name: "scaleIn", Steps: []Keyframe{
				{Offset: "0%", Props: []Entry{{"transform", "scale(0.95)"}, {"opacity", "0"}}},
				{Offset: "100%", Props: []Entry{{"transform", "scale(1)"}, {"opacity", "1"}}},
			}},
			{Name: "bounceGentle", Steps: []Keyframe{
				{Offset: "0%, 100%", Props: []Entry{{"transform", "translateY(0)"}}},
				{Offset: "50%", Props: []Entry{{"transform", "translateY(-4px)"}}},
			}},
		},

		Breakpoints: []Entry{
			{"xs", "375px"},
			{"sm", "640px"},
			{"md", "768px"},
			{"lg", "1024px"},
			{"xl", "1280px"},
			{"2xl", "1536px"},
		},
	}
}

// Color looks up a palette shade, e.g. Color("brand", "500").
func (t Tokens) Color(palette, shade string) (string, bool) {
	for _, p := range t.Colors {
		if p.Name != palette {
			continue
		}
		for _, s := range p.Shades {
			if s.Key == shade {
				return s.Value, true
			}
		}
	}
	return "", false
}

// FontSizeNames lists the typography scale names (display-xl, body-sm, ...).
func (t Tokens) FontSizeNames() []string {
	names := make([]string, 0, len(t.FontSizes))
	for _, fs := range t.FontSizes {
		names = append(names, fs.Name)
	}
	return names
}
