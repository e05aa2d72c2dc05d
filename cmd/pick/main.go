package main

import (
	"io"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/karupanerura/pick/internal/config"
	"github.com/karupanerura/pick/internal/runner"
	"github.com/karupanerura/pick/internal/selection"
)

type Option struct {
	FieldSeparator  *string  `short:"f" long:"field-separator" description:"[OPTIONAL] Regular expression separating input fields (default: blanks)"`
	OutputSeparator *string  `short:"o" long:"output-separator" description:"[OPTIONAL] String placed between emitted tokens (default: single space, empty in character-wise mode)"`
	CharacterWise   bool     `short:"c" long:"character-wise" description:"[OPTIONAL] Select characters instead of fields"`
	NonGreedy       bool     `short:"n" long:"non-greedy" description:"[OPTIONAL] Keep empty fields between adjacent separators"`
	Exclusive       bool     `short:"x" long:"exclusive" description:"[OPTIONAL] Ranges exclude their end bound"`
	Input           []string `short:"i" long:"input" description:"[OPTIONAL] Input file, repeatable (default: stdin)"`
	JSON            bool     `short:"j" long:"json" description:"[OPTIONAL] Emit selections as JSON arrays"`
	Config          string   `long:"config" description:"[OPTIONAL] YAML file with default options"`
}

// rangeArgPattern matches range arguments that would otherwise be mistaken
// for flags, e.g. "-1", "-2:" or "-1:-3".
var rangeArgPattern = regexp.MustCompile(`^-\d+(:(-?\d+)?)?$`)

// valueOptions are the options that consume the following argument.
var valueOptions = map[string]bool{
	"-f": true, "--field-separator": true,
	"-o": true, "--output-separator": true,
	"-i": true, "--input": true,
	"--config": true,
}

// splitArgs separates range arguments from options, preserving the relative
// order of the ranges, so that a leading-dash range never reaches the flag
// parser.
func splitArgs(args []string) (optionArgs, rangeArgs []string) {
	expectValue := false
	for i, arg := range args {
		switch {
		case expectValue:
			optionArgs = append(optionArgs, arg)
			expectValue = false
		case arg == "--":
			rangeArgs = append(rangeArgs, args[i+1:]...)
			return optionArgs, rangeArgs
		case rangeArgPattern.MatchString(arg):
			rangeArgs = append(rangeArgs, arg)
		case strings.HasPrefix(arg, "-") && arg != "-":
			optionArgs = append(optionArgs, arg)
			expectValue = valueOptions[arg]
		default:
			rangeArgs = append(rangeArgs, arg)
		}
	}
	return optionArgs, rangeArgs
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	return runWith(args, os.Stdout, os.Stdin)
}

func runWith(args []string, stdout io.Writer, stdin io.Reader) int {
	optionArgs, rangeArgs := splitArgs(args)

	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	parser.Usage = "[OPTIONS] RANGE..."
	rest, err := parser.ParseArgs(optionArgs)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		} else {
			parser.WriteHelp(stdout)
			return 1
		}
	}
	rangeArgs = append(rangeArgs, rest...)
	if len(rangeArgs) == 0 {
		parser.WriteHelp(stdout)
		return 1
	}

	cfg := config.Default()
	if opt.Config != "" {
		cfg, err = config.Load(opt.Config)
		if err != nil {
			log.Printf("failed to load config: %v", err)
			return 1
		}
	}

	// explicit flags win over the config file
	fieldSeparator := cfg.FieldSeparator
	if opt.FieldSeparator != nil {
		fieldSeparator = *opt.FieldSeparator
	}

	characterWise := opt.CharacterWise || cfg.CharacterWise

	// characters are packed together unless a separator is asked for explicitly
	outputSeparator := " "
	if characterWise {
		outputSeparator = ""
	}
	if cfg.OutputSeparator != nil {
		outputSeparator = *cfg.OutputSeparator
	}
	if opt.OutputSeparator != nil {
		outputSeparator = *opt.OutputSeparator
	}

	sep, err := regexp.Compile(fieldSeparator)
	if err != nil {
		log.Printf("failed to compile field separator: %v", err)
		return 1
	}

	ranges, err := selection.ParseRanges(rangeArgs, opt.Exclusive || cfg.Exclusive)
	if err != nil {
		log.Printf("failed to parse ranges: %v", err)
		return 1
	}

	r := &runner.Runner{
		Ranges:          ranges,
		FieldSeparator:  sep,
		OutputSeparator: outputSeparator,
		CharacterWise:   characterWise,
		NonGreedy:       opt.NonGreedy || cfg.NonGreedy,
		JSON:            opt.JSON || cfg.JSON,
	}

	if len(opt.Input) != 0 {
		if err := r.RunFiles(stdout, opt.Input); err != nil {
			log.Printf("failed to process input files: %v", err)
			return 1
		}
		return 0
	}

	if err := r.Run(stdout, stdin); err != nil {
		log.Printf("failed to process input: %v", err)
		return 1
	}
	return 0
}
