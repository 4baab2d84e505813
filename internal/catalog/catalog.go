// Package catalog holds the fixed material and alias tables. Both are
// immutable configuration data; dynamically added materials live in the
// store, not here.
package catalog

import "strings"

const (
	// DefaultIcon marks materials added without an explicit glyph.
	DefaultIcon = "📦"
	// DefaultUnit is EGP per ton, the quoting unit used by the feed market.
	DefaultUnit = "جنيه/طن"
)

// BuiltIn is an entry of the fixed material table.
type BuiltIn struct {
	Name string // Arabic display name
	Icon string
}

var builtIn = map[string]BuiltIn{
	"yellow_corn":  {Name: "ذرة صفراء", Icon: "🌽"},
	"soybean_meal": {Name: "كسب فول الصويا", Icon: "🫘"},
	"wheat_bran":   {Name: "نخالة قمح", Icon: "🌾"},
	"barley":       {Name: "شعير", Icon: "🌾"},
	"fish_meal":    {Name: "مسحوق سمك", Icon: "🐟"},
	"corn_gluten":  {Name: "جلوتين ذرة", Icon: "🌽"},
	"limestone":    {Name: "حجر جيري", Icon: "🪨"},
	"premix":       {Name: "بريمكس", Icon: "🧂"},
}

// aliases map the short codes the bot sends to canonical keys.
var aliases = map[string]string{
	"corn":   "yellow_corn",
	"soya":   "soybean_meal",
	"soy":    "soybean_meal",
	"bran":   "wheat_bran",
	"fish":   "fish_meal",
	"gluten": "corn_gluten",
}

// ResolveAlias substitutes an alias-table entry for its canonical key and
// passes unknown tokens through unchanged.
func ResolveAlias(token string) string {
	if key, ok := aliases[token]; ok {
		return key
	}
	return token
}

// LookupBuiltIn returns the fixed-table entry for key.
func LookupBuiltIn(key string) (BuiltIn, bool) {
	b, ok := builtIn[key]
	return b, ok
}

// BuiltInKeys returns the fixed material keys.
func BuiltInKeys() []string {
	keys := make([]string, 0, len(builtIn))
	for k := range builtIn {
		keys = append(keys, k)
	}
	return keys
}

// NormalizeKey lowercases the input and replaces every rune outside
// [a-z0-9_] with an underscore. Multi-byte runes collapse to a single
// underscore each.
func NormalizeKey(raw string) string {
	lowered := strings.ToLower(raw)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	return b.String()
}
