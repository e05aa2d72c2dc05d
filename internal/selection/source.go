package selection

// Source is a finite, ordered token sequence consumable at most once.
type Source interface {
	Next() (string, bool)
}

type sliceSource struct {
	tokens []string
	index  int
}

// SliceSource adapts already materialized tokens to a Source.
func SliceSource(tokens []string) Source {
	return &sliceSource{tokens: tokens}
}

func (s *sliceSource) Next() (string, bool) {
	if s.index == len(s.tokens) {
		return "", false
	}
	tok := s.tokens[s.index]
	s.index++
	return tok, true
}

// peekSource adds one-token lookahead to a Source. Every strategy decides
// separator placement through it, whether it is emitting from a live source
// or from a buffer.
type peekSource struct {
	src    Source
	peeked string
	holds  bool
}

func newPeekSource(src Source) *peekSource {
	return &peekSource{src: src}
}

func (p *peekSource) Next() (string, bool) {
	if p.holds {
		p.holds = false
		return p.peeked, true
	}
	return p.src.Next()
}

func (p *peekSource) HasMore() bool {
	if p.holds {
		return true
	}
	tok, ok := p.src.Next()
	if !ok {
		return false
	}
	p.peeked, p.holds = tok, true
	return true
}
