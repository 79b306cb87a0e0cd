// Package option defines the enumerated toolbar settings and their allow-lists.
package option

import "strings"

// Anchor is one of the nine named mounting points of the toolbar.
type Anchor string

const (
	TopLeft      Anchor = "top-left"
	TopCenter    Anchor = "top-center"
	TopRight     Anchor = "top-right"
	CenterLeft   Anchor = "center-left"
	Center       Anchor = "center"
	CenterRight  Anchor = "center-right"
	BottomLeft   Anchor = "bottom-left"
	BottomCenter Anchor = "bottom-center"
	BottomRight  Anchor = "bottom-right"
)

// Anchors lists every valid anchor in declaration order.
var Anchors = []Anchor{
	TopLeft, TopCenter, TopRight,
	BottomLeft, BottomCenter, BottomRight,
	CenterLeft, Center, CenterRight,
}

// DefaultAnchor is used when an invalid anchor is configured.
const DefaultAnchor = BottomCenter

// Valid reports whether a is one of the nine anchors.
func (a Anchor) Valid() bool {
	for _, v := range Anchors {
		if v == a {
			return true
		}
	}
	return false
}

// IsLeft reports whether the anchor sits on the left edge.
func (a Anchor) IsLeft() bool { return strings.Contains(string(a), "left") }

// IsRight reports whether the anchor sits on the right edge.
func (a Anchor) IsRight() bool { return strings.Contains(string(a), "right") }

// IsTop reports whether the anchor sits on the top edge.
func (a Anchor) IsTop() bool { return strings.Contains(string(a), "top") }

// IsBottom reports whether the anchor sits on the bottom edge.
func (a Anchor) IsBottom() bool { return strings.Contains(string(a), "bottom") }

// ParseAnchor returns the anchor named s.
func ParseAnchor(s string) (Anchor, bool) {
	a := Anchor(normalize(s))
	return a, a.Valid()
}

// Orientation is the main axis of the toolbar.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Orientations lists the valid orientations.
var Orientations = []Orientation{Horizontal, Vertical}

const DefaultOrientation = Horizontal

func (o Orientation) Valid() bool { return o == Horizontal || o == Vertical }

// Toggle returns the other orientation.
func (o Orientation) Toggle() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

func ParseOrientation(s string) (Orientation, bool) {
	o := Orientation(normalize(s))
	return o, o.Valid()
}

// Theme is the configured color theme. System follows the platform preference.
type Theme string

const (
	Light  Theme = "light"
	Dark   Theme = "dark"
	System Theme = "system"
)

// Themes is both the allow-list and the cycle order.
var Themes = []Theme{Light, Dark, System}

const DefaultTheme = System

func (t Theme) Valid() bool { return t == Light || t == Dark || t == System }

func ParseTheme(s string) (Theme, bool) {
	t := Theme(normalize(s))
	return t, t.Valid()
}

// NextTheme returns the theme after current in order. An unknown current
// value yields the first entry. An empty order uses Themes.
func NextTheme(current Theme, order []Theme) Theme {
	if len(order) == 0 {
		order = Themes
	}
	for i, t := range order {
		if t == current {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

// Size is the button size of the toolbar.
type Size string

const (
	Small  Size = "small"
	Medium Size = "medium"
	Large  Size = "large"
)

// Sizes is both the allow-list and the cycle order.
var Sizes = []Size{Small, Medium, Large}

const DefaultSize = Medium

func (s Size) Valid() bool { return s == Small || s == Medium || s == Large }

func ParseSize(s string) (Size, bool) {
	v := Size(normalize(s))
	return v, v.Valid()
}

// NextSize cycles small→medium→large→small.
func NextSize(s Size) Size {
	return Sizes[(indexOf(Sizes, s)+1)%len(Sizes)]
}

// PreviousSize cycles large→medium→small→large.
func PreviousSize(s Size) Size {
	i := indexOf(Sizes, s)
	if i < 0 {
		i = 0
	}
	return Sizes[(i-1+len(Sizes))%len(Sizes)]
}

// DisplayMode selects whether tools render icons, labels or both.
type DisplayMode string

const (
	IconOnly  DisplayMode = "icon"
	LabelOnly DisplayMode = "label"
	Both      DisplayMode = "both"
)

// DisplayModes is the cycle order icon→both→label.
var DisplayModes = []DisplayMode{IconOnly, Both, LabelOnly}

const DefaultDisplayMode = Both

func (d DisplayMode) Valid() bool { return d == IconOnly || d == LabelOnly || d == Both }

// ShowsIcon reports whether icons are drawn in this mode.
func (d DisplayMode) ShowsIcon() bool { return d != LabelOnly }

// ShowsLabel reports whether labels are drawn in this mode.
func (d DisplayMode) ShowsLabel() bool { return d != IconOnly }

func ParseDisplayMode(s string) (DisplayMode, bool) {
	d := DisplayMode(normalize(s))
	return d, d.Valid()
}

// NextDisplayMode cycles icon→both→label→icon.
func NextDisplayMode(d DisplayMode) DisplayMode {
	return DisplayModes[(indexOf(DisplayModes, d)+1)%len(DisplayModes)]
}

func indexOf[T comparable](list []T, v T) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return -1
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
