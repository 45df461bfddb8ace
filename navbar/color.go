package navbar

// Color is a background color class of the navbar.
type Color string

// Supported background colors.
const (
	BgAmber     Color = "bg-amber-500"
	BgBlack     Color = "bg-black"
	BgEmerald   Color = "bg-emerald-500"
	BgIndigo    Color = "bg-indigo-500"
	BgLightBlue Color = "bg-lightBlue-500"
	BgOrange    Color = "bg-orange-500"
	BgPink      Color = "bg-pink-500"
	BgPurple    Color = "bg-purple-500"
	BgRed       Color = "bg-red-500"
	BgTeal      Color = "bg-teal-500"
	BgWhite     Color = "bg-white"
)

// colors maps the short color name to its class.
var colors = map[string]Color{
	"amber":     BgAmber,
	"black":     BgBlack,
	"emerald":   BgEmerald,
	"indigo":    BgIndigo,
	"lightBlue": BgLightBlue,
	"orange":    BgOrange,
	"pink":      BgPink,
	"purple":    BgPurple,
	"red":       BgRed,
	"teal":      BgTeal,
	"white":     BgWhite,
}

// ParseColor accepts either a short color name ("amber") or the class itself
// ("bg-amber-500").
func ParseColor(s string) (Color, error) {
	if c, ok := colors[s]; ok {
		return c, nil
	}

	for _, c := range colors {
		if string(c) == s {
			return c, nil
		}
	}

	return "", &InvalidColorError{Value: s}
}
