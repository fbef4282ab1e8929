package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/soupkit/pkg/rng"
)

// Option configures slug generation.
type Option func(*config)

type config struct {
	maxLength     int
	separator     string
	customReplace map[string]string
	suffixLength  int
	src           rng.Source
}

func defaultConfig() *config {
	return &config{
		separator: "-",
	}
}

// MaxLength sets the maximum rune length of the slug. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the separator. Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// CustomReplace applies string replacements before slugification,
// e.g. {"&": "and"}.
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.customReplace = replacements
	}
}

// WithSuffix appends a random alphanumeric suffix of the given length.
func WithSuffix(length int) Option {
	return func(c *config) {
		c.suffixLength = length
	}
}

// WithSource sets the random source used for suffixes.
func WithSource(src rng.Source) Option {
	return func(c *config) {
		c.src = src
	}
}

// Make creates a URL-safe slug from s.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	for old, repl := range cfg.customReplace {
		s = strings.ReplaceAll(s, old, repl)
	}

	s = fold(s)

	var b strings.Builder
	b.Grow(len(s))

	sepLen := len([]rune(cfg.separator))
	lastWasSep := true // no leading separator
	runeCount := 0

	for _, r := range s {
		if cfg.maxLength > 0 && runeCount >= cfg.maxLength {
			break
		}
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastWasSep = false
			runeCount++
			continue
		}

		if !lastWasSep {
			if cfg.maxLength > 0 && runeCount+sepLen > cfg.maxLength {
				break
			}
			b.WriteString(cfg.separator)
			lastWasSep = true
			runeCount += sepLen
		}
	}

	result := strings.TrimSuffix(b.String(), cfg.separator)
	if cfg.suffixLength <= 0 {
		return result
	}

	suffixLen := cfg.suffixLength
	if cfg.maxLength > 0 && suffixLen > cfg.maxLength {
		suffixLen = cfg.maxLength
	}
	suffix := generateSuffix(rng.OrDefault(cfg.src), suffixLen)

	if cfg.maxLength > 0 {
		if room := cfg.maxLength - sepLen - suffixLen; room <= 0 {
			result = ""
		} else if runes := []rune(result); len(runes) > room {
			result = strings.TrimSuffix(string(runes[:room]), cfg.separator)
		}
	}

	if result == "" {
		return suffix
	}
	return result + cfg.separator + suffix
}

// letterFolds covers letters that carry no combining mark under NFD.
var letterFolds = strings.NewReplacer(
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"ø", "o", "Ø", "O",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ß", "ss",
)

// fold strips diacritics: é → e, ñ → n, ł → l.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return letterFolds.Replace(out)
}

func generateSuffix(src rng.Source, length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"

	b := make([]byte, length)
	for i := range b {
		b[i] = charset[src.IntN(len(charset))]
	}
	return string(b)
}
