package internal

import (
	"fmt"
	"notification-lab/errors"
	"strings"
	"unicode"
)

type Config struct {
	LogLevel        string `env:"LOG_LEVEL,default=WARN"`
	CensoredWords   string `env:"CENSORED_WORDS"`
	CharReplacement string `env:"CHARACTER_REPLACEMENT,default=*"`
	LimitMessages   *int   `env:"LIMIT_MESSAGES"`
	SearchLimit     int    `env:"SEARCH_LIMIT,default=10"`
	Colours         bool   `env:"COLOURS,default=true"`
}

// Words splits CENSORED_WORDS on commas, dropping blank items.
func (c Config) Words() []string {
	var words []string
	for _, word := range strings.Split(c.CensoredWords, ",") {
		if word = strings.TrimSpace(word); word != "" {
			words = append(words, word)
		}
	}
	return words
}

// CharacterRune parses CHARACTER_REPLACEMENT. Whitespace is refused, a fully
// censored post must never turn blank.
func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 || unicode.IsSpace(r[0]) {
		return 0, fmt.Errorf(
			"%w: CHARACTER_REPLACEMENT got %q",
			errors.ErrInvalidReplacement, str,
		)
	}
	return r[0], nil
}
