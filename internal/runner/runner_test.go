package runner_test

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/karupanerura/pick/internal/runner"
	"github.com/karupanerura/pick/internal/selection"
	"github.com/karupanerura/pick/internal/split"
)

func mustRanges(t *testing.T, exclusive bool, args ...string) []selection.Range {
	t.Helper()

	ranges, err := selection.ParseRanges(args, exclusive)
	if err != nil {
		t.Fatal(err)
	}
	return ranges
}

func TestRun(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name        string
		ranges      []string
		exclusive   bool
		sep         string
		outSep      string
		emptyOutSep bool
		charWise    bool
		nonGreedy   bool
		jsonMode    bool
		input       string
		expected    string
	}{
		{
			name:     "forward",
			ranges:   []string{"1:3"},
			input:    "rust is pretty cool\n",
			expected: "is pretty cool\n",
		},
		{
			name:      "forward exclusive",
			ranges:    []string{"1:3"},
			exclusive: true,
			input:     "rust is pretty cool\n",
			expected:  "is pretty\n",
		},
		{
			name:     "single out of bounds",
			ranges:   []string{"10"},
			input:    "rust is pretty cool\n",
			expected: "\n",
		},
		{
			name:     "reverse",
			ranges:   []string{"3:1"},
			input:    "rust lang is pretty darn cool\n",
			expected: "pretty is lang\n",
		},
		{
			name:     "custom field separator",
			ranges:   []string{"1:3"},
			sep:      "#",
			input:    "rust##is###pretty####cool\n",
			expected: "is pretty cool\n",
		},
		{
			name:     "regex field separator",
			ranges:   []string{"1:3"},
			sep:      "[aeiou]",
			input:    "the quick brown fox jumped over the lazy dog\n",
			expected: " q ck br wn f\n",
		},
		{
			name:     "missing field separator",
			ranges:   []string{"1:3"},
			sep:      "#",
			input:    "rust lang is pretty darn cool\n",
			expected: "\n",
		},
		{
			name:     "negative ascending",
			ranges:   []string{"-3:-1"},
			input:    "rust lang is pretty darn cool\n",
			expected: "pretty darn cool\n",
		},
		{
			name:     "negative descending",
			ranges:   []string{"-1:-3"},
			input:    "rust lang is pretty darn cool\n",
			expected: "cool darn pretty\n",
		},
		{
			name:     "output separator",
			ranges:   []string{"1:3"},
			outSep:   "#",
			input:    "a b c d\n",
			expected: "b#c#d\n",
		},
		{
			name:     "output separator between ranges",
			ranges:   []string{"1", "3"},
			outSep:   "#",
			input:    "a b c d\n",
			expected: "b#d\n",
		},
		{
			name:     "output separator reversed",
			ranges:   []string{"3:1"},
			outSep:   "#",
			input:    "a b c d\n",
			expected: "d#c#b\n",
		},
		{
			name:     "output separator negative",
			ranges:   []string{"0:-2"},
			outSep:   "#",
			input:    "a b c d\n",
			expected: "a#b#c\n",
		},
		{
			name:        "empty output separator",
			ranges:      []string{"0:2"},
			emptyOutSep: true,
			input:       "a b c d\n",
			expected:    "abc\n",
		},
		{
			name:     "character-wise",
			ranges:   []string{"0:2"},
			charWise: true,
			input:    "abcd\n",
			expected: "abc\n",
		},
		{
			name:     "character-wise with output separator",
			ranges:   []string{"0:2"},
			charWise: true,
			outSep:   ":",
			input:    "abcd\n",
			expected: "a:b:c\n",
		},
		{
			name:     "character-wise open end",
			ranges:   []string{"2:"},
			charWise: true,
			input:    "abcd\n",
			expected: "cd\n",
		},
		{
			name:     "character-wise reversed",
			ranges:   []string{"2:0"},
			charWise: true,
			input:    "abcd\n",
			expected: "cba\n",
		},
		{
			name:     "character-wise negative",
			ranges:   []string{"-2:"},
			charWise: true,
			input:    "abcd\n",
			expected: "cd\n",
		},
		{
			name:     "character-wise past the end",
			ranges:   []string{"0:9"},
			charWise: true,
			input:    "abcd\n",
			expected: "abcd\n",
		},
		{
			name:      "non-greedy forward",
			ranges:    []string{"0:2"},
			sep:       ":",
			nonGreedy: true,
			input:     "a:b::c:::d\n",
			expected:  "a b \n",
		},
		{
			name:     "greedy forward",
			ranges:   []string{"0:2"},
			sep:      ":",
			input:    "a:b::c:::d\n",
			expected: "a b c\n",
		},
		{
			name:      "non-greedy reversed drops empty separators",
			ranges:    []string{"2:0"},
			sep:       ":",
			nonGreedy: true,
			input:     "a:b::c:::d\n",
			expected:  "b a\n",
		},
		{
			name:      "non-greedy negative",
			ranges:    []string{"2:-1"},
			sep:       ":",
			nonGreedy: true,
			input:     "a:b::c:::d\n",
			expected:  "c d\n",
		},
		{
			name:      "non-greedy negative descending",
			ranges:    []string{"-1:-3"},
			sep:       ":",
			nonGreedy: true,
			input:     "a:b::c:::d\n",
			expected:  "d \n",
		},
		{
			name:     "multiple lines",
			ranges:   []string{"1"},
			input:    "a b\nc d\n",
			expected: "b\nd\n",
		},
		{
			name:     "blank line",
			ranges:   []string{"0:"},
			input:    "a b\n\nc d\n",
			expected: "a b\n\nc d\n",
		},
		{
			name:     "json array",
			ranges:   []string{"1:3"},
			jsonMode: true,
			input:    "a b c d\n",
			expected: "[\"b\",\"c\",\"d\"]\n",
		},
		{
			name:     "json empty selection",
			ranges:   []string{"10"},
			jsonMode: true,
			input:    "a b c d\n",
			expected: "[]\n",
		},
		{
			name:     "json multiple ranges",
			ranges:   []string{"0", "2:3"},
			jsonMode: true,
			input:    "a b c d\n",
			expected: "[\"a\",\"c\",\"d\"]\n",
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sep := tt.sep
			if sep == "" {
				sep = split.DefaultFieldSeparator
			}
			// mirror the CLI default: characters pack together, fields get a space
			outSep := tt.outSep
			if outSep == "" && !tt.emptyOutSep && !tt.charWise {
				outSep = " "
			}

			r := &runner.Runner{
				Ranges:          mustRanges(t, tt.exclusive, tt.ranges...),
				FieldSeparator:  regexp.MustCompile(sep),
				OutputSeparator: outSep,
				CharacterWise:   tt.charWise,
				NonGreedy:       tt.nonGreedy,
				JSON:            tt.jsonMode,
			}

			var b bytes.Buffer
			if err := r.Run(&b, strings.NewReader(tt.input)); err != nil {
				t.Fatal(err)
			}
			if got := b.String(); got != tt.expected {
				t.Errorf("output = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRunFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	if err := os.WriteFile(first, []byte("a b\nc d\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("e f\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := &runner.Runner{
		Ranges:          mustRanges(t, false, "1"),
		FieldSeparator:  regexp.MustCompile(split.DefaultFieldSeparator),
		OutputSeparator: " ",
	}

	var b bytes.Buffer
	if err := r.RunFiles(&b, []string{first, second}); err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), "b\nd\nf\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	if err := r.RunFiles(&b, []string{filepath.Join(dir, "missing.txt")}); err == nil {
		t.Error("should fail on a missing file")
	}
}
