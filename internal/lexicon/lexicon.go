// Package lexicon holds the phrase lists every analyzer matches transcripts
// against. Scoring code only ever refers to lists by name, so a different
// language can be supported by supplying another Dictionary.
package lexicon

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ListName identifies one phrase list.
type ListName string

// Dictionary resolves a list name to its phrases. Phrases must be lower case.
// Returned slices are shared and must not be modified by callers.
type Dictionary interface {
	Phrases(name ListName) []string
}

// Table is a Dictionary backed by a map.
type Table map[ListName][]string

func (t Table) Phrases(name ListName) []string { return t[name] }

// English is the built-in US English dictionary.
var English Dictionary = english

// layered answers from the override table first and falls back to base.
type layered struct {
	base     Dictionary
	override Table
}

func (l layered) Phrases(name ListName) []string {
	if p, ok := l.override[name]; ok {
		return p
	}
	return l.base.Phrases(name)
}

// Override returns a Dictionary that replaces the given lists of base.
func Override(base Dictionary, t Table) Dictionary {
	if base == nil {
		base = English
	}
	return layered{base: base, override: t}
}

// Normalize lower-cases text and folds typographic apostrophes and quotes so
// "I’ll" matches "i'll".
func Normalize(s string) string {
	r := strings.NewReplacer("’", "'", "‘", "'", "“", `"`, "”", `"`)
	return strings.ToLower(r.Replace(s))
}

// Matches returns the phrases of list that occur in text as plain substrings.
// text must already be normalized.
func Matches(d Dictionary, name ListName, text string) []string {
	var out []string
	for _, p := range d.Phrases(name) {
		if strings.Contains(text, p) {
			out = append(out, p)
		}
	}
	return out
}

// Count returns how many phrases of list occur in text.
func Count(d Dictionary, name ListName, text string) int {
	n := 0
	for _, p := range d.Phrases(name) {
		if strings.Contains(text, p) {
			n++
		}
	}
	return n
}

// Occurrences sums every occurrence of every phrase of list in text.
func Occurrences(d Dictionary, name ListName, text string) int {
	n := 0
	for _, p := range d.Phrases(name) {
		n += strings.Count(text, p)
	}
	return n
}

// ContainsAny reports whether any phrase of list occurs in text.
func ContainsAny(d Dictionary, name ListName, text string) bool {
	for _, p := range d.Phrases(name) {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// ContainsBounded reports whether phrase occurs in text delimited by
// whitespace, punctuation or the ends of the string.
func ContainsBounded(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	from := 0
	for {
		i := strings.Index(text[from:], phrase)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(phrase)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		from = start + 1
		if from >= len(text) {
			return false
		}
	}
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// Words splits normalized text into word tokens, keeping in-word apostrophes.
func Words(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}
