package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// CardVariant picks padding and elevation. The zero value is CardDefault.
type CardVariant int

const (
	CardDefault CardVariant = iota
	CardElevated
	CardProfile
)

func (v CardVariant) String() string {
	switch v {
	case CardDefault:
		return "default"
	case CardElevated:
		return "elevated"
	case CardProfile:
		return "profile"
	}
	return fmt.Sprintf("CardVariant(%d)", int(v))
}

func (v CardVariant) classes() string {
	switch v {
	case CardDefault:
		return "p-card-padding shadow-sm"
	case CardElevated:
		return "p-card-padding shadow-md"
	case CardProfile:
		return "p-4 shadow-sm overflow-hidden"
	}
	panic(fmt.Sprintf("components: unknown card variant %d", int(v)))
}

const (
	cardBase  = "rounded-card bg-surface-primary border border-neutral-200"
	cardHover = "transition-all duration-300 cursor-pointer hover:shadow-card-hover hover:border-brand-200 hover:-translate-y-1"
)

type CardProps struct {
	Variant CardVariant
	// Hover adds the lift-on-hover affordance used by clickable cards.
	Hover bool
	Class string
	Attrs []g.Node
}

func CardClass(props CardProps) string {
	return CN(cardBase, props.Variant.classes(), When(props.Hover, cardHover), props.Class)
}

// Card is a bordered surface container.
func Card(props CardProps, children ...g.Node) g.Node {
	return h.Div(h.Class(CardClass(props)), g.Group(props.Attrs), g.Group(children))
}

func CardHeader(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(CN("flex flex-col space-y-1.5 p-6 pb-2", class)), g.Group(children))
}

func CardTitle(class string, children ...g.Node) g.Node {
	return h.H3(h.Class(CN("font-heading-lg leading-none tracking-tight text-neutral-900", class)), g.Group(children))
}

func CardDescription(class string, children ...g.Node) g.Node {
	return h.P(h.Class(CN("text-body-sm text-neutral-600", class)), g.Group(children))
}

func CardContent(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(CN("p-6 pt-0", class)), g.Group(children))
}

func CardFooter(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(CN("flex items-center p-6 pt-0", class)), g.Group(children))
}
