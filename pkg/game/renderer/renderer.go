// Package renderer formats console output for the command line: color
// styles, the GT{}/NUM{}/WARN{} markup, translated message keys and an
// ASCII heightmap preview.
package renderer

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

// LocaleDomain is the gettext domain messages are looked up in.
const LocaleDomain = "default"

var (
	ColorTitle   color.Style
	ColorNumber  color.Style
	ColorOK      color.Style
	ColorWarning color.Style
	ColorDenied  color.Style
	ColorSubtle  color.Style

	regexpStringFunctions = regexp.MustCompile(`([A-Z]*){([\p{L}\p{N} _.,:%/-]+)}`)
)

// dynamicGet is used for runtime translation key lookups.
// Keys come from markup, so the format argument is never a constant.
var dynamicGet = gotext.Get

func init() {
	InitColors()
}

// InitColors initializes the color styles
func InitColors() {
	ColorTitle = color.Style{color.FgMagenta, color.OpBold}
	ColorNumber = color.Style{color.FgCyan, color.OpBold}
	ColorOK = color.Style{color.FgGreen}
	ColorWarning = color.Style{color.FgYellow, color.OpBold}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
	ColorSubtle = color.Style{color.FgGray}
}

// InitLocale loads translations for lang from library/<lang>/LC_MESSAGES.
// Keys without a translation print as themselves.
func InitLocale(library, lang string) {
	gotext.Configure(library, lang, LocaleDomain)
}

// FormatString formats a string with special markup:
//
//	GT{KEY}     translated message key
//	NUM{text}   highlighted value
//	OK{text}    success
//	WARN{text}  warning
//	ERR{text}   failure
//	DIM{text}   de-emphasized
func FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	for _, match := range regexpStringFunctions.FindAllStringSubmatch(ret, -1) {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "NUM":
			val = ColorNumber.Sprint(operand)
		case "OK":
			val = ColorOK.Sprint(operand)
		case "WARN":
			val = ColorWarning.Sprint(operand)
		case "ERR":
			val = ColorDenied.Sprint(operand)
		case "DIM":
			val = ColorSubtle.Sprint(operand)
		default:
			continue
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}

	return ret
}

// Fprint writes formatted markup to w.
func Fprint(w io.Writer, msg string, a ...any) {
	fmt.Fprint(w, FormatString(msg, a...))
}

// Translate looks up msgid in the loaded catalog and formats it with a.
// Untranslated messages fall back to msgid itself.
func Translate(msgid string, a ...any) string {
	return dynamicGet(msgid, a...)
}

// Plain strips color codes, leaving the visible text.
func Plain(s string) string {
	return color.ClearCode(s)
}
