package selection

// Select emits the tokens of src covered by the range, in range order.
// Bounds falling outside the actual token count degrade to a shorter or
// empty selection, never an error; only the emitter can fail.
func (r Range) Select(src Source, em Emitter) error {
	switch r.strategy {
	case reverseStrategy:
		return r.selectReverse(src, em)
	case negativeStrategy:
		return r.selectNegative(src, em)
	default:
		return r.selectForward(src, em)
	}
}

// selectForward handles 0 <= start <= end in a single pass: skip the first
// start tokens unbuffered, then emit up to end-start+1 tokens as they arrive.
func (r Range) selectForward(src Source, em Emitter) error {
	for skipped := 0; skipped < r.Start; skipped++ {
		if _, ok := src.Next(); !ok {
			return nil
		}
	}
	return emitAtMost(newPeekSource(src), em, r.End-r.Start)
}

// emitAtMost emits up to max+1 tokens in arrival order, stopping early when
// src runs out.
func emitAtMost(src *peekSource, em Emitter, max int) error {
	for i := 0; i <= max; i++ {
		tok, ok := src.Next()
		if !ok {
			return nil
		}
		if err := em.Emit(tok, src.HasMore() && i != max); err != nil {
			return err
		}
	}
	return nil
}

// selectReverse handles 0 <= end < start, emitting in descending index
// order. Only the start-end+1 window is buffered, never the whole remaining
// sequence.
func (r Range) selectReverse(src Source, em Emitter) error {
	for skipped := 0; skipped < r.End; skipped++ {
		if _, ok := src.Next(); !ok {
			return nil
		}
	}

	window := r.Start - r.End + 1
	stack := make([]string, 0, window)
	for len(stack) < window {
		tok, ok := src.Next()
		if !ok {
			break
		}
		stack = append(stack, tok)
	}

	for i, j := 0, len(stack)-1; i < j; i, j = i+1, j-1 {
		stack[i], stack[j] = stack[j], stack[i]
	}
	ps := newPeekSource(SliceSource(stack))
	for {
		tok, ok := ps.Next()
		if !ok {
			return nil
		}
		if err := em.Emit(tok, ps.HasMore()); err != nil {
			return err
		}
	}
}

// selectNegative handles ranges with at least one end-relative bound. The
// whole sequence is materialized because resolving a negative bound needs
// its length.
//
// The branch selection is deliberately asymmetric: after resolution, e > s
// emits ascending, but descending emission happens only when the original
// start was negative. A range like -1:-3 therefore comes out reversed while
// 5:-3 on a six-token line comes out empty.
func (r Range) selectNegative(src Source, em Emitter) error {
	var tokens []string
	for {
		tok, ok := src.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	if len(tokens) == 0 {
		return nil
	}

	s := resolve(r.Start, len(tokens))
	e := resolve(r.End, len(tokens))
	last := len(tokens) - 1

	switch {
	case e > s:
		top := min(e, last)
		for i := s; i < top; i++ {
			if err := em.Emit(tokens[i], true); err != nil {
				return err
			}
		}
		return em.Emit(tokens[top], false)

	case r.Start < 0:
		for i := min(s, last); i > e; i-- {
			if err := em.Emit(tokens[i], true); err != nil {
				return err
			}
		}
		return em.Emit(tokens[e], false)

	default:
		// only the end was negative and the ascending test failed
		return nil
	}
}

// resolve converts an end-relative bound to an absolute zero-based index.
// A magnitude larger than the token count clamps to index 0 rather than
// wrapping.
func resolve(bound, length int) int {
	if bound >= 0 {
		return bound
	}
	if -bound > length {
		return 0
	}
	return length + bound
}
