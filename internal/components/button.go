package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ButtonVariant selects the visual treatment of a Button. The zero value is
// ButtonPrimary.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
	ButtonGhost
	ButtonDestructive
)

func (v ButtonVariant) String() string {
	switch v {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonGhost:
		return "ghost"
	case ButtonDestructive:
		return "destructive"
	}
	return fmt.Sprintf("ButtonVariant(%d)", int(v))
}

// ButtonSize sets height, padding and type size. The zero value is ButtonMD.
type ButtonSize int

const (
	ButtonMD ButtonSize = iota
	ButtonSM
	ButtonLG
)

func (s ButtonSize) String() string {
	switch s {
	case ButtonMD:
		return "md"
	case ButtonSM:
		return "sm"
	case ButtonLG:
		return "lg"
	}
	return fmt.Sprintf("ButtonSize(%d)", int(s))
}

const buttonBase = "inline-flex items-center justify-center rounded-lg font-medium transition-all duration-200 focus:outline-none focus:ring-2 focus:ring-offset-2 disabled:opacity-50 disabled:pointer-events-none"

func (v ButtonVariant) classes() string {
	switch v {
	case ButtonPrimary:
		return "bg-brand-500 text-white shadow-sm hover:bg-brand-600 hover:shadow-md active:bg-brand-700 active:scale-95 focus:ring-brand-500"
	case ButtonSecondary:
		return "bg-white text-brand-500 border-2 border-brand-500 hover:bg-brand-50 hover:border-brand-600 active:bg-brand-100 active:scale-95 focus:ring-brand-500"
	case ButtonGhost:
		return "bg-transparent text-brand-500 hover:bg-brand-50 hover:text-brand-600 active:bg-brand-100 active:scale-95 focus:ring-brand-500"
	case ButtonDestructive:
		return "bg-red-500 text-white shadow-sm hover:bg-red-600 hover:shadow-md active:bg-red-700 active:scale-95 focus:ring-red-500"
	}
	panic(fmt.Sprintf("components: unknown button variant %d", int(v)))
}

func (s ButtonSize) classes() string {
	switch s {
	case ButtonMD:
		return "h-10 px-6 py-2 text-base"
	case ButtonSM:
		return "h-8 px-3 text-sm"
	case ButtonLG:
		return "h-12 px-8 text-lg"
	}
	panic(fmt.Sprintf("components: unknown button size %d", int(s)))
}

type ButtonProps struct {
	Variant ButtonVariant
	Size    ButtonSize
	// Href turns the button into a link.
	Href  string
	Class string
	// Attrs are passed through to the rendered element.
	Attrs []g.Node
}

// ButtonClass is the merged class list a Button with these props renders with.
func ButtonClass(props ButtonProps) string {
	return CN(buttonBase, props.Variant.classes(), props.Size.classes(), props.Class)
}

// Button renders an anchor when Href is set and a type="button" element
// otherwise.
func Button(props ButtonProps, children ...g.Node) g.Node {
	class := h.Class(ButtonClass(props))

	if props.Href != "" {
		return h.A(h.Href(props.Href), class, g.Group(props.Attrs), g.Group(children))
	}
	return h.Button(h.Type("button"), class, g.Group(props.Attrs), g.Group(children))
}
