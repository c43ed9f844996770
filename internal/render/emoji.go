package render

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// EmojiMode controls the star/fork glyphs
type EmojiMode string

const (
	EmojiAuto   EmojiMode = "auto"
	EmojiAlways EmojiMode = "always"
	EmojiNever  EmojiMode = "never"
)

// ParseEmojiMode accepts auto, always and never. Unknown values fall back to auto.
func ParseEmojiMode(s string) EmojiMode {
	switch EmojiMode(strings.ToLower(strings.TrimSpace(s))) {
	case EmojiAlways:
		return EmojiAlways
	case EmojiNever:
		return EmojiNever
	default:
		return EmojiAuto
	}
}

// EmojiEnabled resolves the mode against the output stream and the locale
func EmojiEnabled(mode EmojiMode, out *os.File) bool {
	switch mode {
	case EmojiAlways:
		return true
	case EmojiNever:
		return false
	}
	if out == nil || !(isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())) {
		return false
	}
	return unicodeLocale(os.Getenv)
}

// unicodeLocale follows the POSIX precedence LC_ALL > LC_CTYPE > LANG
func unicodeLocale(getenv func(string) string) bool {
	if getenv("TERM") == "dumb" {
		return false
	}
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := getenv(key)
		if v == "" {
			continue
		}
		v = strings.ToLower(v)
		return strings.Contains(v, "utf-8") || strings.Contains(v, "utf8")
	}
	return false
}
