package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ContainerSize caps the content width. The zero value is ContainerXL.
type ContainerSize int

const (
	ContainerXL ContainerSize = iota
	ContainerSM
	ContainerMD
	ContainerLG
	ContainerFull
)

func (s ContainerSize) classes() string {
	switch s {
	case ContainerSM:
		return "max-w-2xl"
	case ContainerMD:
		return "max-w-4xl"
	case ContainerLG:
		return "max-w-6xl"
	case ContainerXL:
		return "max-w-7xl"
	case ContainerFull:
		return "max-w-none"
	}
	panic(fmt.Sprintf("components: unknown container size %d", int(s)))
}

// ContainerPadding is the responsive horizontal inset. The zero value is
// ContainerPaddingMD.
type ContainerPadding int

const (
	ContainerPaddingMD ContainerPadding = iota
	ContainerPaddingNone
	ContainerPaddingSM
	ContainerPaddingLG
)

func (p ContainerPadding) classes() string {
	switch p {
	case ContainerPaddingNone:
		return "px-0"
	case ContainerPaddingSM:
		return "px-4 sm:px-6"
	case ContainerPaddingMD:
		return "px-4 sm:px-6 lg:px-8"
	case ContainerPaddingLG:
		return "px-6 sm:px-8 lg:px-12"
	}
	panic(fmt.Sprintf("components: unknown container padding %d", int(p)))
}

type ContainerProps struct {
	Size    ContainerSize
	Padding ContainerPadding
	Class   string
}

func ContainerClass(props ContainerProps) string {
	return CN("mx-auto w-full", props.Size.classes(), props.Padding.classes(), props.Class)
}

// Container centers content horizontally with a bounded width.
func Container(props ContainerProps, children ...g.Node) g.Node {
	return h.Div(h.Class(ContainerClass(props)), g.Group(children))
}
