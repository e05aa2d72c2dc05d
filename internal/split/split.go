package split

import (
	"regexp"
	"unicode/utf8"

	"github.com/karupanerura/pick/internal/selection"
)

// DefaultFieldSeparator is the separator used when none is configured.
const DefaultFieldSeparator = `[ \t]`

// fieldSource lazily splits a line on a separator pattern. In greedy mode
// empty tokens are dropped, so runs of adjacent separators collapse and a
// leading separator does not produce an empty token 0; non-greedy mode keeps
// them.
type fieldSource struct {
	sep       *regexp.Regexp
	line      string
	offset    int
	done      bool
	nonGreedy bool
}

// Fields returns a token source over the separator-delimited fields of line.
func Fields(line string, sep *regexp.Regexp, nonGreedy bool) selection.Source {
	return &fieldSource{sep: sep, line: line, nonGreedy: nonGreedy}
}

func (s *fieldSource) Next() (string, bool) {
	for {
		tok, ok := s.next()
		if !ok {
			return "", false
		}
		if tok != "" || s.nonGreedy {
			return tok, true
		}
	}
}

func (s *fieldSource) next() (string, bool) {
	if s.done {
		return "", false
	}

	rest := s.line[s.offset:]
	loc := s.sep.FindStringIndex(rest)
	if loc == nil || loc[0] == loc[1] {
		// No separator left. A zero-width match counts as none: a pattern
		// matching the empty string cannot delimit anything.
		s.done = true
		return rest, true
	}

	tok := rest[:loc[0]]
	s.offset += loc[1]
	return tok, true
}

// runeSource yields one token per rune, for character-wise selection.
// Invalid UTF-8 bytes pass through one byte at a time.
type runeSource struct {
	line string
}

// Runes returns a token source over the characters of line.
func Runes(line string) selection.Source {
	return &runeSource{line: line}
}

func (s *runeSource) Next() (string, bool) {
	if s.line == "" {
		return "", false
	}
	_, size := utf8.DecodeRuneInString(s.line)
	tok := s.line[:size]
	s.line = s.line[size:]
	return tok, true
}
