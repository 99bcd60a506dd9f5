// Package moderation masks forbidden words in posted messages before they
// reach the channel.
package moderation

import (
	"notification-lab/errors"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// ICensor rewrites a message and reports the forbidden words it found.
type ICensor interface {
	Censor(text string) (string, []string)
}

// Nop leaves every message untouched.
type Nop struct{}

func (Nop) Censor(text string) (string, []string) { return text, nil }

// Moderator matches forbidden words with an Aho-Corasick automaton built on
// normalized patterns: lower case, leet speak folded, punctuation and spaces ignored.
type Moderator struct {
	matcher     *goahocorasick.Machine
	replacement rune
}

// normalized keeps, for every searchable rune, its index in the original text.
type normalized struct {
	runes   []rune
	origIdx []int
}

// NewCensor returns a Moderator for the given words, or Nop when no usable
// word remains after normalization. A whitespace replacement is rejected.
func NewCensor(words []string, replacement rune) (ICensor, error) {
	if unicode.IsSpace(replacement) {
		return nil, errors.ErrInvalidReplacement
	}
	var patterns [][]rune
	for _, word := range words {
		if pattern := normalize(strings.TrimSpace(word)).runes; len(pattern) > 0 {
			patterns = append(patterns, pattern)
		}
	}
	if len(patterns) == 0 {
		return Nop{}, nil
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: m, replacement: replacement}, nil
}

// Censor replaces every rune covered by a match, noise included, and keeps
// everything else in place.
func (m *Moderator) Censor(text string) (string, []string) {
	norm := normalize(text)
	if len(norm.runes) == 0 {
		return text, nil
	}
	terms := m.matcher.MultiPatternSearch(norm.runes, false)
	if len(terms) == 0 {
		return text, nil
	}

	out := []rune(text)
	var words []string
	for _, term := range terms {
		start, end := term.Pos, term.Pos+len(term.Word)
		if start < 0 || end > len(norm.origIdx) {
			continue
		}
		for i := norm.origIdx[start]; i <= norm.origIdx[end-1]; i++ {
			out[i] = m.replacement
		}
		words = append(words, string(term.Word))
	}
	return string(out), words
}

func normalize(input string) normalized {
	runes := []rune(input)
	norm := normalized{
		runes:   make([]rune, 0, len(runes)),
		origIdx: make([]int, 0, len(runes)),
	}
	for i, r := range runes {
		folded := foldLeet(r)
		if isNoise(folded) {
			continue
		}
		norm.runes = append(norm.runes, unicode.ToLower(folded))
		norm.origIdx = append(norm.origIdx, i)
	}
	return norm
}

func foldLeet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
