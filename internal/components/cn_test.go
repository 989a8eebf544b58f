package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCN(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		want      string
	}{
		{"nothing", nil, ""},
		{"drops empty fragments", []string{"", "a", "", "b", ""}, "a b"},
		{"flattens multi-class fragments", []string{"flex items-center", "gap-2"}, "flex items-center gap-2"},
		{"collapses whitespace", []string{"  flex\n\titems-center  "}, "flex items-center"},
		{"later padding wins", []string{"px-4 py-2", "px-0"}, "py-2 px-0"},
		{"side after shorthand keeps both", []string{"p-4", "px-2"}, "p-4 px-2"},
		{"shorthand after side wins", []string{"px-2 pt-1", "p-4"}, "p-4"},
		{"axis covers its sides", []string{"pl-2 pr-3 pt-1", "px-6"}, "pt-1 px-6"},
		{"margins", []string{"mx-auto mt-2", "m-0"}, "m-0"},
		{"variants are separate", []string{"px-4 sm:px-6 lg:px-8", "px-0"}, "sm:px-6 lg:px-8 px-0"},
		{"same variant conflicts", []string{"hover:bg-brand-50", "hover:bg-neutral-50"}, "hover:bg-neutral-50"},
		{"variant order is normalized", []string{"md:hover:p-2", "hover:md:p-4"}, "hover:md:p-4"},
		{"text color vs size", []string{"text-white text-base", "text-brand-600"}, "text-base text-brand-600"},
		{"token font size", []string{"text-body-sm text-neutral-600", "text-heading-lg"}, "text-neutral-600 text-heading-lg"},
		{"arbitrary text size", []string{"text-sm", "text-[13px]"}, "text-[13px]"},
		{"arbitrary text color", []string{"text-sm text-white", "text-[#fff]"}, "text-sm text-[#fff]"},
		{"bg color vs gradient", []string{"bg-white bg-gradient-to-br", "bg-brand-50"}, "bg-gradient-to-br bg-brand-50"},
		{"border width vs color", []string{"border-2 border-brand-500", "border-white"}, "border-2 border-white"},
		{"border width", []string{"border", "border-0"}, "border-0"},
		{"border side width", []string{"border-b border-t-2", "border-t"}, "border-b border-t"},
		{"display", []string{"hidden", "md:flex", "flex"}, "md:flex flex"},
		{"flex direction is not display", []string{"flex flex-col", "flex-row"}, "flex flex-row"},
		{"position", []string{"relative", "absolute"}, "absolute"},
		{"sizing", []string{"w-full h-8", "w-auto"}, "h-8 w-auto"},
		{"size covers width and height", []string{"w-4 h-4", "size-6"}, "size-6"},
		{"max width", []string{"max-w-7xl", "max-w-none"}, "max-w-none"},
		{"rounded", []string{"rounded-lg", "rounded-full"}, "rounded-full"},
		{"rounded shorthand covers sides", []string{"rounded-t-lg", "rounded-card"}, "rounded-card"},
		{"shadow", []string{"shadow-sm", "shadow-card-hover"}, "shadow-card-hover"},
		{"font weight vs family", []string{"font-sans font-medium", "font-semibold"}, "font-sans font-semibold"},
		{"negative translate", []string{"hover:-translate-y-1", "hover:translate-y-0"}, "hover:translate-y-0"},
		{"grid columns", []string{"grid-cols-1 md:grid-cols-2", "grid-cols-2"}, "md:grid-cols-2 grid-cols-2"},
		{"ring width vs color", []string{"focus:ring-2 focus:ring-brand-500", "focus:ring-red-500"}, "focus:ring-2 focus:ring-red-500"},
		{"unknown classes collapse only duplicates", []string{"custom-a custom-b", "custom-a"}, "custom-b custom-a"},
		{"arbitrary variant with colon", []string{"[&:hover]:p-2", "[&:hover]:p-4"}, "[&:hover]:p-4"},
		{"important is its own variant", []string{"!p-2", "p-4"}, "!p-2 p-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CN(tt.fragments...))
		})
	}
}

func TestCN_NoEmptyFragmentsAndOrderKept(t *testing.T) {
	got := CN("flex", When(false, "hidden"), "items-center", "", When(true, "gap-2", "text-sm"))

	assert.Equal(t, "flex items-center gap-2 text-sm", got)
	for _, c := range strings.Split(got, " ") {
		assert.NotEmpty(t, c)
	}
}

func TestWhen(t *testing.T) {
	assert.Equal(t, "", When(false, "a", "b"))
	assert.Equal(t, "a b", When(true, "a", "b"))
	assert.Equal(t, "", When(true))
}
