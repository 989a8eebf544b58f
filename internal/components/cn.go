package components

import (
	"sort"
	"strings"

	"github.com/chiranperera/inner-most/internal/tokens"
)

// CN joins class fragments into one class attribute value.
//
// Empty fragments are dropped and a fragment may carry several space-separated
// classes. When two classes set the same utility under the same variant
// prefix, the later one wins, so callers can pass an override after a
// component's defaults. Surviving classes keep their input order.
func CN(fragments ...string) string {
	var classes []string
	for _, f := range fragments {
		classes = append(classes, strings.Fields(f)...)
	}
	if len(classes) == 0 {
		return ""
	}

	keep := make([]bool, len(classes))
	taken := make(map[string]struct{}, len(classes))

	for i := len(classes) - 1; i >= 0; i-- {
		c := classes[i]
		variant, base := splitVariant(c)

		group := classGroup(base)
		if group == "" {
			key := "=" + c
			if _, dup := taken[key]; dup {
				continue
			}
			taken[key] = struct{}{}
			keep[i] = true
			continue
		}

		if _, dup := taken[variant+group]; dup {
			continue
		}
		keep[i] = true
		taken[variant+group] = struct{}{}
		for _, covered := range groupCovers[group] {
			taken[variant+covered] = struct{}{}
		}
	}

	out := make([]string, 0, len(classes))
	for i, c := range classes {
		if keep[i] {
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}

// When returns the classes joined when cond holds and "" otherwise.
func When(cond bool, classes ...string) string {
	if !cond {
		return ""
	}
	return strings.Join(classes, " ")
}

// splitVariant separates "md:hover:px-4" into a normalized variant key and the
// utility. Colons inside arbitrary values ("[&:hover]") are not separators.
func splitVariant(class string) (variant, base string) {
	depth, last := 0, -1
	for i, r := range class {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case ':':
			if depth == 0 {
				last = i
			}
		}
	}

	base = class
	if last >= 0 {
		parts := strings.Split(class[:last], ":")
		sort.Strings(parts)
		variant = strings.Join(parts, ":") + ":"
		base = class[last+1:]
	}

	if strings.HasPrefix(base, "!") {
		variant += "!"
		base = base[1:]
	}
	base = strings.TrimPrefix(base, "-")
	return variant, base
}

var groupCovers = map[string][]string{
	"p":  {"px", "py", "pt", "pr", "pb", "pl", "ps", "pe"},
	"px": {"pr", "pl", "ps", "pe"},
	"py": {"pt", "pb"},
	"m":  {"mx", "my", "mt", "mr", "mb", "ml", "ms", "me"},
	"mx": {"mr", "ml", "ms", "me"},
	"my": {"mt", "mb"},

	"size": {"w", "h"},

	"inset":   {"inset-x", "inset-y", "top", "right", "bottom", "left", "start", "end"},
	"inset-x": {"right", "left"},
	"inset-y": {"top", "bottom"},

	"gap": {"gap-x", "gap-y"},

	"rounded": {"rounded-t", "rounded-r", "rounded-b", "rounded-l", "rounded-s", "rounded-e",
		"rounded-tl", "rounded-tr", "rounded-br", "rounded-bl", "rounded-ss", "rounded-se", "rounded-es", "rounded-ee"},

	"border-w":     {"border-w-x", "border-w-y", "border-w-t", "border-w-r", "border-w-b", "border-w-l", "border-w-s", "border-w-e"},
	"border-w-x":   {"border-w-r", "border-w-l"},
	"border-w-y":   {"border-w-t", "border-w-b"},
	"border-color": {"border-color-x", "border-color-y", "border-color-t", "border-color-r", "border-color-b", "border-color-l", "border-color-s", "border-color-e"},

	"overflow": {"overflow-x", "overflow-y"},
}

var exactGroups = map[string]string{}

func init() {
	for group, classes := range map[string][]string{
		"display":         {"block", "inline-block", "inline", "flex", "inline-flex", "grid", "inline-grid", "hidden", "contents", "table", "flow-root", "list-item"},
		"position":        {"static", "fixed", "absolute", "relative", "sticky"},
		"flex-direction":  {"flex-row", "flex-row-reverse", "flex-col", "flex-col-reverse"},
		"flex-wrap":       {"flex-wrap", "flex-nowrap", "flex-wrap-reverse"},
		"flex":            {"flex-1", "flex-auto", "flex-initial", "flex-none"},
		"shrink":          {"shrink", "shrink-0"},
		"grow":            {"grow", "grow-0"},
		"text-align":      {"text-left", "text-center", "text-right", "text-justify", "text-start", "text-end"},
		"text-overflow":   {"truncate", "text-ellipsis", "text-clip"},
		"text-wrap":       {"text-wrap", "text-nowrap", "text-balance", "text-pretty"},
		"text-transform":  {"uppercase", "lowercase", "capitalize", "normal-case"},
		"text-decoration": {"underline", "overline", "line-through", "no-underline"},
		"font-weight": {"font-thin", "font-extralight", "font-light", "font-normal", "font-medium",
			"font-semibold", "font-bold", "font-extrabold", "font-black"},
		"font-family":  {"font-sans", "font-serif", "font-mono", "font-display"},
		"border-style": {"border-solid", "border-dashed", "border-dotted", "border-double", "border-hidden", "border-none"},
		"border-table": {"border-collapse", "border-separate"},
		"visibility":   {"visible", "invisible", "collapse"},
		"object-fit":   {"object-cover", "object-contain", "object-fill", "object-none", "object-scale-down"},
		"bg-size":      {"bg-auto", "bg-cover", "bg-contain"},
		"bg-attach":    {"bg-fixed", "bg-local", "bg-scroll"},
		"bg-repeat":    {"bg-repeat", "bg-no-repeat", "bg-repeat-x", "bg-repeat-y", "bg-repeat-round", "bg-repeat-space"},
		"bg-position": {"bg-bottom", "bg-center", "bg-left", "bg-left-bottom", "bg-left-top",
			"bg-right", "bg-right-bottom", "bg-right-top", "bg-top"},
		"bg-image":   {"bg-none"},
		"transition": {"transition", "transition-all", "transition-colors", "transition-opacity", "transition-shadow", "transition-transform", "transition-none"},
		"outline":    {"outline", "outline-none", "outline-dashed", "outline-dotted", "outline-double"},
		"ring-w":     {"ring", "ring-inset"},
		"shadow":     {"shadow"},
		"rounded":    {"rounded"},
		"border-w":   {"border"},
		"blur":       {"blur"},
	} {
		for _, c := range classes {
			exactGroups[c] = group
		}
	}
}

// prefixGroups maps simple utility prefixes to their group; longer prefixes
// come first so "min-w-" wins over "m".
var prefixGroups = []struct{ prefix, group string }{
	{"space-x-", "space-x"}, {"space-y-", "space-y"},
	{"min-w-", "min-w"}, {"min-h-", "min-h"}, {"max-w-", "max-w"}, {"max-h-", "max-h"},
	{"size-", "size"}, {"w-", "w"}, {"h-", "h"},
	{"inset-x-", "inset-x"}, {"inset-y-", "inset-y"}, {"inset-", "inset"},
	{"top-", "top"}, {"right-", "right"}, {"bottom-", "bottom"}, {"left-", "left"},
	{"start-", "start"}, {"end-", "end"},
	{"gap-x-", "gap-x"}, {"gap-y-", "gap-y"}, {"gap-", "gap"},
	{"grid-cols-", "grid-cols"}, {"grid-rows-", "grid-rows"},
	{"col-span-", "col-span"}, {"row-span-", "row-span"},
	{"items-", "items"}, {"justify-items-", "justify-items"}, {"justify-self-", "justify-self"},
	{"justify-", "justify"}, {"self-", "self"}, {"content-", "content"},
	{"order-", "order"},
	{"opacity-", "opacity"}, {"z-", "z"},
	{"leading-", "leading"}, {"tracking-", "tracking"},
	{"line-clamp-", "line-clamp"}, {"whitespace-", "whitespace"},
	{"cursor-", "cursor"}, {"select-", "select"}, {"pointer-events-", "pointer-events"},
	{"overflow-x-", "overflow-x"}, {"overflow-y-", "overflow-y"}, {"overflow-", "overflow"},
	{"aspect-", "aspect"},
	{"duration-", "duration"}, {"ease-", "ease"}, {"delay-", "delay"}, {"animate-", "animate"},
	{"scale-x-", "scale-x"}, {"scale-y-", "scale-y"}, {"scale-", "scale"},
	{"translate-x-", "translate-x"}, {"translate-y-", "translate-y"},
	{"rotate-", "rotate"},
	{"backdrop-blur-", "backdrop-blur"}, {"blur-", "blur"},
	{"shadow-", "shadow"},
	{"from-", "from"}, {"via-", "via"}, {"to-", "to"},
	{"outline-offset-", "outline-offset"},
	{"ring-offset-", "ring-offset"},
	{"fill-", "fill"}, {"stroke-", "stroke"},
}

var spacingPrefixes = []string{"px", "py", "pt", "pr", "pb", "pl", "ps", "pe", "p", "mx", "my", "mt", "mr", "mb", "ml", "ms", "me", "m"}

var roundedSides = []string{"tl", "tr", "br", "bl", "ss", "se", "es", "ee", "t", "r", "b", "l", "s", "e"}

var borderSides = []string{"x", "y", "t", "r", "b", "l", "s", "e"}

var standardFontSizes = map[string]bool{
	"xs": true, "sm": true, "base": true, "lg": true, "xl": true, "2xl": true, "3xl": true,
	"4xl": true, "5xl": true, "6xl": true, "7xl": true, "8xl": true, "9xl": true,
}

var tokenFontSizes = func() map[string]bool {
	names := tokens.Default().FontSizeNames()
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}()

// classGroup names the utility group a class belongs to, or "" when the class
// is not recognised.
func classGroup(base string) string {
	if g, ok := exactGroups[base]; ok {
		return g
	}

	for _, p := range spacingPrefixes {
		if strings.HasPrefix(base, p+"-") {
			return p
		}
	}

	switch {
	case strings.HasPrefix(base, "rounded-"):
		rest := strings.TrimPrefix(base, "rounded-")
		for _, side := range roundedSides {
			if rest == side || strings.HasPrefix(rest, side+"-") {
				return "rounded-" + side
			}
		}
		return "rounded"
	case strings.HasPrefix(base, "text-"):
		return textGroup(strings.TrimPrefix(base, "text-"))
	case strings.HasPrefix(base, "bg-"):
		return bgGroup(strings.TrimPrefix(base, "bg-"))
	case strings.HasPrefix(base, "border-"):
		return borderGroup(strings.TrimPrefix(base, "border-"))
	case strings.HasPrefix(base, "ring-") && !strings.HasPrefix(base, "ring-offset-"):
		if isWidth(strings.TrimPrefix(base, "ring-")) {
			return "ring-w"
		}
		return "ring-color"
	case strings.HasPrefix(base, "outline-") && !strings.HasPrefix(base, "outline-offset-"):
		if isWidth(strings.TrimPrefix(base, "outline-")) {
			return "outline-w"
		}
		return "outline-color"
	}

	for _, pg := range prefixGroups {
		if strings.HasPrefix(base, pg.prefix) {
			return pg.group
		}
	}
	return ""
}

func textGroup(value string) string {
	if standardFontSizes[value] || tokenFontSizes[value] {
		return "font-size"
	}
	if isArbitrary(value) && !isArbitraryColor(value) {
		return "font-size"
	}
	return "text-color"
}

func bgGroup(value string) string {
	switch {
	case strings.HasPrefix(value, "gradient-"), strings.HasPrefix(value, "linear-"),
		strings.HasPrefix(value, "radial"), strings.HasPrefix(value, "conic"):
		return "bg-image"
	case strings.HasPrefix(value, "clip-"):
		return "bg-clip"
	case strings.HasPrefix(value, "origin-"):
		return "bg-origin"
	case strings.HasPrefix(value, "[url("):
		return "bg-image"
	}
	return "bg-color"
}

func borderGroup(value string) string {
	if isWidth(value) {
		return "border-w"
	}
	for _, side := range borderSides {
		if value == side {
			return "border-w-" + side
		}
		if rest, ok := strings.CutPrefix(value, side+"-"); ok {
			if isWidth(rest) {
				return "border-w-" + side
			}
			return "border-color-" + side
		}
	}
	return "border-color"
}

// isWidth reports whether a value is a bare number or an arbitrary length.
func isWidth(value string) bool {
	if value == "" {
		return false
	}
	if isArbitrary(value) {
		inner := value[1 : len(value)-1]
		return inner != "" && (inner[0] >= '0' && inner[0] <= '9' || strings.HasPrefix(inner, "length:"))
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isArbitrary(value string) bool {
	return len(value) >= 2 && value[0] == '[' && value[len(value)-1] == ']'
}

func isArbitraryColor(value string) bool {
	inner := strings.TrimSuffix(strings.TrimPrefix(value, "["), "]")
	for _, p := range []string{"#", "rgb", "hsl", "oklch", "color:", "var("} {
		if strings.HasPrefix(inner, p) {
			return true
		}
	}
	return false
}
