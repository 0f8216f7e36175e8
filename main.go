package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/serroba/textot/internal/text"
	"gopkg.in/yaml.v3"
)

// Config holds the command line options.
type Config struct {
	From   string // Path of the previous text
	To     string // Path of the next text
	Shape  string // up, down or twoway
	Format string // json or yaml
}

var errUsage = errors.New("usage: textot -from FILE -to FILE [-shape up|down|twoway] [-format json|yaml]")

func main() {
	var cfg Config

	flag.StringVar(&cfg.From, "from", "", "path of the previous text")
	flag.StringVar(&cfg.To, "to", "", "path of the next text")
	flag.StringVar(&cfg.Shape, "shape", "twoway", "operation shape: up, down or twoway")
	flag.StringVar(&cfg.Format, "format", "json", "output format: json or yaml")
	flag.Parse()

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("textot: %v", err)
	}
}

// run diffs the two files, checks that the result reproduces the target and
// writes the operation units to w.
func run(cfg Config, w io.Writer) error {
	if cfg.From == "" || cfg.To == "" {
		return errUsage
	}

	prev, err := os.ReadFile(cfg.From)
	if err != nil {
		return err
	}

	next, err := os.ReadFile(cfg.To)
	if err != nil {
		return err
	}

	units, err := diffUnits(string(prev), string(next), cfg.Shape)
	if err != nil {
		return err
	}

	log.Printf("diffed %s -> %s: %d units", cfg.From, cfg.To, len(units))

	return encodeUnits(w, units, cfg.Format)
}

func diffUnits(prev, next, shape string) ([]*text.Unit, error) {
	op, err := text.Diff(prev, next)
	if err != nil {
		return nil, fmt.Errorf("diffing: %w", err)
	}

	applied, err := op.Up().Apply(prev)
	if err != nil {
		return nil, fmt.Errorf("applying diff: %w", err)
	}

	if applied != next {
		return nil, errors.New("applying diff did not reproduce the target text")
	}

	switch shape {
	case "up":
		return op.Up().Units(), nil
	case "down":
		return op.Down().Units(), nil
	case "twoway":
		return op.Units(), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", shape)
	}
}

func encodeUnits(w io.Writer, units []*text.Unit, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(units)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(units); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
