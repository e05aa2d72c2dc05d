package selection

import (
	"fmt"
	"io"
)

// Emitter receives tokens in emission order. hasMore reports whether another
// token of the current selection follows, which is when the output separator
// belongs after this token.
type Emitter interface {
	Emit(token string, hasMore bool) error
}

// WriterEmitter writes tokens to W, placing Sep after every non-final token.
// An empty token writes nothing and suppresses its separator, so dropped
// fields do not leave runs of separators behind.
type WriterEmitter struct {
	W   io.Writer
	Sep string
}

func (e *WriterEmitter) Emit(token string, hasMore bool) error {
	if token == "" {
		return nil
	}
	if _, err := io.WriteString(e.W, token); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}
	if hasMore {
		if _, err := io.WriteString(e.W, e.Sep); err != nil {
			return fmt.Errorf("io.WriteString: %w", err)
		}
	}
	return nil
}

// CollectEmitter gathers emitted tokens for output modes that need the whole
// selection before writing anything, such as JSON arrays.
type CollectEmitter struct {
	Tokens []string
}

func (e *CollectEmitter) Emit(token string, _ bool) error {
	e.Tokens = append(e.Tokens, token)
	return nil
}
