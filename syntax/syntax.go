// Package syntax holds the compiled-in syntax highlighting table.
//
// Profiles are plain data: the highlighter in the buffer package walks a
// Profile's fields to classify bytes. There is no plugin mechanism and no
// runtime configuration beyond this compiled-in table.
package syntax

// Attr is a highlight attribute assigned to one rendered byte.
type Attr uint8

const (
	Normal Attr = iota
	Comment
	MultilineComment
	Keyword1
	Keyword2
	String
	Number
	Match
)

// ANSI SGR foreground codes.
const (
	ColorRed          = 31
	ColorGreen        = 32
	ColorYellow       = 33
	ColorBlue         = 34
	ColorMagenta      = 35
	ColorCyan         = 36
	ColorWhite        = 37
	ColorDefault      = 39
	ColorBrightYellow = 93
)

// Color maps a highlight attribute to the SGR foreground code used to
// render it. Normal (and any unlisted attribute) maps to ColorWhite; the
// compositor does not call Color for Normal bytes and resets them to
// ColorDefault instead.
func (a Attr) Color() int {
	switch a {
	case Comment, MultilineComment:
		return ColorCyan
	case Keyword1:
		return ColorYellow
	case Keyword2:
		return ColorGreen
	case String:
		return ColorMagenta
	case Number:
		return ColorRed
	case Match:
		return ColorBlue
	default:
		return ColorWhite
	}
}

// Profile is a compile-time syntax highlighting definition for one file
// type. KeywordsPrimary and KeywordsSecondary are kept as two separate
// lists rather than one list with a marker suffix, so which keywords
// render as Keyword2 is a type distinction instead of an encoding baked
// into the spelling.
type Profile struct {
	Name              string
	Extensions        []string
	KeywordsPrimary   []string
	KeywordsSecondary []string
	SingleLineComment string
	MultiLineBegin    string
	MultiLineEnd      string
	HighlightNumbers  bool
	HighlightStrings  bool
}

// Table is the compiled-in syntax profile table. It currently
// carries one entry matching C-family sources; new profiles are added here,
// never loaded from configuration.
var Table = []Profile{
	{
		Name:              "c",
		Extensions:        []string{".c", ".h", ".cpp"},
		SingleLineComment: "//",
		MultiLineBegin:    "/*",
		MultiLineEnd:      "*/",
		KeywordsPrimary: []string{
			"switch", "if", "while", "for", "break", "continue", "return",
			"else", "struct", "union", "typedef", "static", "enum", "class",
			"case",
		},
		KeywordsSecondary: []string{
			"int", "long", "double", "float", "char", "unsigned", "signed",
			"void",
		},
		HighlightNumbers: true,
		HighlightStrings: true,
	},
}

// Select returns the Profile whose Extensions match filename, or nil if
// none do (or filename is empty). A match is either a literal extension
// suffix or, if the candidate doesn't start with '.', a substring match.
func Select(filename string) *Profile {
	if filename == "" {
		return nil
	}
	for i := range Table {
		p := &Table[i]
		for _, m := range p.Extensions {
			if len(m) > 0 && m[0] == '.' {
				if hasExtension(filename, m) {
					return p
				}
			} else if contains(filename, m) {
				return p
			}
		}
	}
	return nil
}

func hasExtension(filename, ext string) bool {
	if len(filename) < len(ext) {
		return false
	}
	return filename[len(filename)-len(ext):] == ext
}

func contains(haystack, needle string) bool {
	return len(needle) > 0 && indexOf(haystack, needle) >= 0
}

func indexOf(haystack, needle string) int {
	n, m := len(haystack), len(needle)
	if m == 0 || m > n {
		return -1
	}
	for i := 0; i+m <= n; i++ {
		if haystack[i:i+m] == needle {
			return i
		}
	}
	return -1
}

// IsSeparator reports whether b bounds a keyword or number: whitespace,
// NUL, and ",.()+-/*=~%<>[];".
func IsSeparator(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0:
		return true
	}
	for i := 0; i < len(separatorPunct); i++ {
		if separatorPunct[i] == b {
			return true
		}
	}
	return false
}

const separatorPunct = ",.()+-/*=~%<>[];"
