package controls

import (
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Style token names read by the widgets.
const (
	TokenFlagTrueDisplay  = "controls.flag.true"
	TokenFlagFalseDisplay = "controls.flag.false"
	tokenWidthPrefix      = "controls.width."
)

// Style is the theme configuration handed to a factory at construction.
// Widgets only read from it.
type Style struct {
	Theme   string
	Variant string
	Tokens  map[string]string
}

// DefaultStyle returns the built-in widths used when no theme supplies them.
func DefaultStyle() Style {
	return Style{
		Theme: "default",
		Tokens: map[string]string{
			tokenWidthPrefix + string(ShapeText):      "120",
			tokenWidthPrefix + string(ShapeCounter):   "80",
			tokenWidthPrefix + string(ShapeFlag):      "20",
			tokenWidthPrefix + string(ShapeChoice):    "120",
			tokenWidthPrefix + string(ShapeDateTime):  "160",
			tokenWidthPrefix + string(ShapeUtcOffset): "60",
		},
	}
}

// StyleFromTheme derives a Style from a theme selection. Manifest tokens are
// layered over the defaults and the selected variant's tokens over those.
func StyleFromTheme(selection *theme.Selection) Style {
	style := DefaultStyle()
	if selection == nil {
		return style
	}
	style.Theme = selection.Theme
	style.Variant = selection.Variant

	manifest := selection.Manifest
	if manifest == nil {
		return style
	}
	if style.Theme == "" {
		style.Theme = manifest.Name
	}
	mergeTokens(style.Tokens, manifest.Tokens)
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		mergeTokens(style.Tokens, variant.Tokens)
	}
	return style
}

func mergeTokens(dst, src map[string]string) {
	for key, value := range src {
		dst[key] = value
	}
}

// Token returns the named token, or "" when unset.
func (s Style) Token(name string) string {
	if s.Tokens == nil {
		return ""
	}
	return s.Tokens[name]
}

// WidthFor resolves a widget width: a positive hint from the definition wins,
// otherwise the per-shape width token is used.
func (s Style) WidthFor(shape Shape, hint int) int {
	if hint > 0 {
		return hint
	}
	raw := strings.TrimSpace(s.Token(tokenWidthPrefix + string(shape)))
	if raw == "" {
		return 0
	}
	width, err := strconv.Atoi(raw)
	if err != nil || width < 0 {
		return 0
	}
	return width
}

// FlagDisplays returns the true and false display tokens configured by the
// style. Empty values mean the converter defaults apply.
func (s Style) FlagDisplays() (string, string) {
	return s.Token(TokenFlagTrueDisplay), s.Token(TokenFlagFalseDisplay)
}
