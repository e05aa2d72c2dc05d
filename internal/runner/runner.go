package runner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/goccy/go-json"
	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/karupanerura/pick/internal/selection"
	"github.com/karupanerura/pick/internal/split"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Runner applies a fixed set of ranges to every input line. It is read-only
// during processing and safe to reuse across inputs.
type Runner struct {
	Ranges          []selection.Range
	FieldSeparator  *regexp.Regexp
	OutputSeparator string
	CharacterWise   bool
	NonGreedy       bool
	JSON            bool
}

func (r *Runner) source(line string) selection.Source {
	if r.CharacterWise {
		return split.Runes(line)
	}
	return split.Fields(line, r.FieldSeparator, r.NonGreedy)
}

// Run processes in line by line, writing one output line per input line.
func (r *Runner) Run(w io.Writer, in io.Reader) error {
	colorize := false
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		colorize = isatty.IsTerminal(f.Fd())
	}

	bw := bufio.NewWriter(w)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if err := r.processLine(bw, scanner.Text(), colorize); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("bufio.Scanner: %w", err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("bufio.Writer.Flush: %w", err)
	}
	return nil
}

// RunFiles processes each file concurrently, flushing the results to w in
// argument order once all of them finished.
func (r *Runner) RunFiles(w io.Writer, paths []string) error {
	bufs := make([]bytes.Buffer, len(paths))
	eg := errgroup.Group{}
	for i, path := range paths {
		i := i
		path := path
		eg.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("os.Open(%q): %w", path, err)
			}
			defer f.Close()

			if err := r.Run(&bufs[i], f); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for i := range bufs {
		if _, err := bufs[i].WriteTo(w); err != nil {
			return fmt.Errorf("bytes.Buffer.WriteTo: %w", err)
		}
	}
	return nil
}

func (r *Runner) processLine(w io.Writer, line string, colorize bool) error {
	if r.JSON {
		return r.processLineJSON(w, line, colorize)
	}

	for i, rng := range r.Ranges {
		if i != 0 {
			if _, err := io.WriteString(w, r.OutputSeparator); err != nil {
				return fmt.Errorf("io.WriteString: %w", err)
			}
		}

		em := &selection.WriterEmitter{W: w, Sep: r.OutputSeparator}
		if err := rng.Select(r.source(line), em); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}
	return nil
}

func (r *Runner) processLineJSON(w io.Writer, line string, colorize bool) error {
	parts := make([][]string, 0, len(r.Ranges))
	for _, rng := range r.Ranges {
		em := &selection.CollectEmitter{Tokens: []string{}}
		if err := rng.Select(r.source(line), em); err != nil {
			return err
		}
		parts = append(parts, em.Tokens)
	}
	return dumpJSON(w, lo.Flatten(parts), colorize)
}

func dumpJSON(w io.Writer, v any, colorize bool) error {
	opts := []json.EncodeOptionFunc{json.DisableHTMLEscape()}
	if colorize {
		opts = append(opts, json.Colorize(json.DefaultColorScheme))
	}

	b, err := json.MarshalWithOption(v, opts...)
	if err != nil {
		return fmt.Errorf("json.MarshalWithOption: %w", err)
	}

	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	if _, err = io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}
	return nil
}
