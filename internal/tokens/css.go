package tokens

import (
	"fmt"
	"strings"
)

// Option customizes the generated stylesheet.
type Option func(*cssConfig)

type cssConfig struct {
	colorOverrides map[string]string
	keyframes      bool
}

// WithColorOverrides replaces color values by "<palette>-<shade>" key, e.g. "brand-500".
func WithColorOverrides(colors map[string]string) Option {
	return func(cfg *cssConfig) {
		for k, v := range colors {
			cfg.colorOverrides[k] = v
		}
	}
}

// WithKeyframes toggles the @keyframes and .animate-* rules.
func WithKeyframes(include bool) Option {
	return func(cfg *cssConfig) {
		cfg.keyframes = include
	}
}

// CSS renders the token table as CSS custom properties on :root, followed by the
// animation keyframes and their utility classes.
func (t Tokens) CSS(opts ...Option) string {
	cfg := &cssConfig{
		colorOverrides: make(map[string]string),
		keyframes:      true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var sb strings.Builder

	sb.WriteString(":root {\n")
	for _, p := range t.Colors {
		for _, s := range p.Shades {
			key := p.Name + "-" + s.Key
			value := s.Value
			if override, ok := cfg.colorOverrides[key]; ok {
				value = override
			}
			writeVar(&sb, "color-"+key, value)
		}
	}
	for _, ff := range t.FontFamilies {
		writeVar(&sb, "font-"+ff.Name, fontStack(ff.Stack))
	}
	for _, fs := range t.FontSizes {
		writeVar(&sb, "text-"+fs.Name, fs.Size)
		writeVar(&sb, "text-"+fs.Name+"-line-height", fs.LineHeight)
		if fs.LetterSpacing != "" {
			writeVar(&sb, "text-"+fs.Name+"-letter-spacing", fs.LetterSpacing)
		}
		writeVar(&sb, "text-"+fs.Name+"-font-weight", fs.Weight)
	}
	for _, s := range t.Spacing {
		writeVar(&sb, "space-"+cssIdent(s.Key), s.Value)
	}
	for _, r := range t.Radii {
		writeVar(&sb, "radius-"+r.Key, r.Value)
	}
	for _, s := range t.Shadows {
		writeVar(&sb, "shadow-"+s.Key, s.Value)
	}
	for _, b := range t.Breakpoints {
		writeVar(&sb, "breakpoint-"+b.Key, b.Value)
	}
	sb.WriteString("}\n")

	if cfg.keyframes {
		for _, kf := range t.Keyframes {
			fmt.Fprintf(&sb, "\n@keyframes %s {\n", kf.Name)
			for _, step := range kf.Steps {
				fmt.Fprintf(&sb, "  %s { %s }\n", step.Offset, declarations(step.Props))
			}
			sb.WriteString("}\n")
		}
		sb.WriteString("\n")
		for _, a := range t.Animations {
			fmt.Fprintf(&sb, ".animate-%s { animation: %s; }\n", a.Name, a.Value())
		}
	}

	return sb.String()
}

// Value is the CSS animation shorthand, e.g. "fadeIn 0.3s ease-in-out".
func (a Animation) Value() string {
	return strings.Join([]string{a.Keyframes, a.Duration, a.Easing}, " ")
}

func writeVar(sb *strings.Builder, name, value string) {
	fmt.Fprintf(sb, "  --%s: %s;\n", name, value)
}

func declarations(props []Entry) string {
	parts := make([]string, 0, len(props))
	for _, p := range props {
		parts = append(parts, p.Key+": "+p.Value+";")
	}
	return strings.Join(parts, " ")
}

func fontStack(stack []string) string {
	quoted := make([]string, 0, len(stack))
	for _, f := range stack {
		if strings.Contains(f, " ") {
			f = "'" + f + "'"
		}
		quoted = append(quoted, f)
	}
	return strings.Join(quoted, ", ")
}

// cssIdent makes a token key usable inside a custom property name ("0.5" -> "0_5").
func cssIdent(key string) string {
	return strings.ReplaceAll(key, ".", "_")
}
