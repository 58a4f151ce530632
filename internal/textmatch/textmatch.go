// Package textmatch implements a case-insensitive multi-pattern phrase
// matcher. A vocabulary phrase is reported present only when it occurs as a
// contiguous token sequence in the text, so "machine learning" never fires on
// a lone "machine" and "java" never fires inside "javascript".
package textmatch

import (
	"sort"
	"strings"
	"unicode"
)

type phrase struct {
	text   string
	tokens []string
}

// Matcher matches a fixed vocabulary against arbitrary text. It is immutable
// after construction and safe for concurrent use.
type Matcher struct {
	byFirst map[string][]phrase
}

// New builds a matcher for the given vocabulary. Entries that produce no
// tokens are ignored.
func New(vocabulary []string) *Matcher {
	m := &Matcher{byFirst: make(map[string][]phrase, len(vocabulary))}
	for _, entry := range vocabulary {
		tokens := Tokenize(entry)
		if len(tokens) == 0 {
			continue
		}
		m.byFirst[tokens[0]] = append(m.byFirst[tokens[0]], phrase{
			text:   strings.ToLower(strings.TrimSpace(entry)),
			tokens: tokens,
		})
	}
	return m
}

// Match returns the vocabulary phrases present in text, deduplicated and
// sorted for deterministic output.
func (m *Matcher) Match(text string) []string {
	if text == "" || len(m.byFirst) == 0 {
		return nil
	}

	tokens := Tokenize(text)
	found := make(map[string]struct{})
	for i, token := range tokens {
		for _, candidate := range m.byFirst[token] {
			if i+len(candidate.tokens) > len(tokens) {
				continue
			}
			matched := true
			for j := 1; j < len(candidate.tokens); j++ {
				if tokens[i+j] != candidate.tokens[j] {
					matched = false
					break
				}
			}
			if matched {
				found[candidate.text] = struct{}{}
			}
		}
	}

	if len(found) == 0 {
		return nil
	}
	result := make([]string, 0, len(found))
	for text := range found {
		result = append(result, text)
	}
	sort.Strings(result)
	return result
}

// Tokenize lowercases the text and splits it into tokens. Letters, digits and
// the symbols + and # always belong to a token; . / - are kept only when the
// following rune continues the token, so "node.js", "ci/cd" and "c++" survive
// as single tokens while a sentence-ending period does not.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	runes := []rune(lower)
	tokens := make([]string, 0, len(runes)/4)

	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for i, r := range runes {
		switch {
		case isTokenRune(r):
			current.WriteRune(r)
		case isJoiner(r) && i+1 < len(runes) && isTokenRune(runes[i+1]):
			current.WriteRune(r)
		default:
			flush()
		}
	}
	flush()

	return tokens
}

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#'
}

func isJoiner(r rune) bool {
	return r == '.' || r == '/' || r == '-'
}
