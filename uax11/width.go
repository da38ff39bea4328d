package uax11

import (
	"unicode"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

// Category is a value of the East_Asian_Width character property.
type Category int8

// East_Asian_Width property values, as abbreviated by UAX#11.
const (
	N  Category = iota // Neutral
	A                  // Ambiguous
	W                  // Wide
	Na                 // Narrow
	H                  // Halfwidth
	F                  // Fullwidth
)

var categoryNames = [...]string{N: "N", A: "A", W: "W", Na: "Na", H: "H", F: "F"}

func (c Category) String() string {
	if c < N || c > F {
		return "N"
	}
	return categoryNames[c]
}

var kindCategory = map[width.Kind]Category{
	width.EastAsianAmbiguous: A,
	width.EastAsianWide:      W,
	width.EastAsianNarrow:    Na,
	width.EastAsianHalfwidth: H,
	width.EastAsianFullwidth: F,
}

// WidthCategory returns the East_Asian_Width property of r.
//
// Code points without an explicit property are neutral (N), except for
// unassigned code points of the CJK ideograph blocks and of planes 2 and 3,
// which default to wide (W).
func WidthCategory(r rune) Category {
	if cat, ok := kindCategory[width.LookupRune(r).Kind()]; ok {
		return cat
	}
	if unicode.Is(cjkDefaultWide, r) {
		return W
	}
	return N
}

// Context holds the information about the output environment needed to
// decide whether ambiguous characters are displayed narrow or wide.
//
// From UAX#11:
// The term context as used here includes extra information such as explicit
// markup, knowledge of the source code page, font information, or language and
// script identification
//
// A Context literal is evaluated from Script and Locale on every call of
// IsEastAsian; contexts created by this package carry the decision with them.
type Context struct {
	ForceEastAsian bool            // treat ambiguous characters as wide
	Script         language.Script // ISO 15924 script identifier
	Locale         string          // IETF language tag, e.g. "ja-JP"
	eastAsian      int8            // 0 = undecided, 1 = East Asian, -1 = other
}

// EastAsianContext is a context for East Asian languages.
var EastAsianContext = &Context{
	ForceEastAsian: true,
	Script:         language.MustParseScript("Hant"),
	Locale:         "zh-Hant",
	eastAsian:      1,
}

// LatinContext is a context for western languages. It is the default context.
var LatinContext = &Context{
	Script:    language.MustParseScript("Latn"),
	Locale:    "en-US",
	eastAsian: -1,
}

// wideScripts are the scripts of East Asian and South East Asian writing
// systems, whose users expect ambiguous characters to be wide.
var wideScripts = map[string]bool{
	"Bopo": true, "Hanb": true, "Hang": true, "Hani": true, "Hans": true,
	"Hant": true, "Hira": true, "Jpan": true, "Kana": true, "Kitl": true,
	"Kits": true, "Kore": true, "Lana": true, "Nkdb": true, "Nkgb": true,
	"Plrd": true,
	"Bali": true, "Batk": true, "Beng": true, "Buhd": true, "Bugi": true,
	"Cham": true, "Java": true, "Khar": true, "Khmr": true, "Laoo": true,
	"Lisu": true, "Mtei": true, "Mymr": true, "Rjng": true, "Roro": true,
	"Tagb": true, "Tglg": true, "Thai": true, "Wole": true, "Yiii": true,
}

var eastAsianLanguages = language.NewMatcher([]language.Tag{
	language.Chinese, // fallback, matched with confidence No
	language.Japanese,
	language.Korean,
	language.Vietnamese,
	language.Thai,
	language.Mongolian,
	language.Burmese,
	language.Khmer,
})

func isEastAsian(script language.Script, lang language.Tag) bool {
	if wideScripts[script.String()] {
		return true
	}
	_, _, confidence := eastAsianLanguages.Match(lang)
	return confidence != language.No
}

func decision(eastAsian bool) int8 {
	if eastAsian {
		return 1
	}
	return -1
}

// ContextForLocale creates a context for a locale given as an IETF language
// tag, e.g. "ja-JP" or "de-CH".
func ContextForLocale(locale string) *Context {
	lang := language.Make(locale)
	script, _ := lang.Script()
	return &Context{
		Script:    script,
		Locale:    locale,
		eastAsian: decision(isEastAsian(script, lang)),
	}
}

// ContextFromEnvironment creates a context for the user's locale. If the
// locale cannot be detected, "en-US" is assumed.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf("cannot detect user locale: %v", err)
		userLocale = "en-US"
		T().Infof("UAX#11 sets default user locale %v", userLocale)
	} else {
		T().Infof("UAX#11 detected user locale %v", userLocale)
	}
	return ContextForLocale(userLocale)
}

// IsEastAsian reports whether ambiguous characters are wide in this context.
// A nil context is not East Asian.
func (ctx *Context) IsEastAsian() bool {
	switch {
	case ctx == nil:
		return false
	case ctx.ForceEastAsian || ctx.eastAsian > 0:
		return true
	case ctx.eastAsian < 0:
		return false
	case ctx.Locale == "":
		return wideScripts[ctx.Script.String()]
	}
	lang := language.Make(ctx.Locale)
	script := ctx.Script
	if script == (language.Script{}) {
		script, _ = lang.Script()
	}
	return isEastAsian(script, lang)
}

// ResolveWidth returns the column width of rune r in a given context, where
// w is the width a width table assigns to r. Only ambiguous characters of
// width 1 are subject to resolution; they become wide in East Asian contexts.
// A nil context is treated as LatinContext.
func ResolveWidth(r rune, w int, ctx *Context) int {
	if w != 1 || !ctx.IsEastAsian() || WidthCategory(r) != A {
		return w
	}
	T().P("rune", r).Debugf("UAX#11 resolves ambiguous width to 2")
	return 2
}

// Unassigned code points defaulting to W:
//
//   CJK Unified Ideographs Extension A   U+3400..U+4DBF
//   CJK Unified Ideographs               U+4E00..U+9FFF
//   CJK Compatibility Ideographs         U+F900..U+FAFF
//   Plane 2                              U+20000..U+2FFFD
//   Plane 3                              U+30000..U+3FFFD
var cjkDefaultWide = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3400, Hi: 0x4dbf, Stride: 1},
		{Lo: 0x4e00, Hi: 0x9fff, Stride: 1},
		{Lo: 0xf900, Hi: 0xfaff, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2fffd, Stride: 1},
		{Lo: 0x30000, Hi: 0x3fffd, Stride: 1},
	},
}
