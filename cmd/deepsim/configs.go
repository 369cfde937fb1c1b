package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/qri-io/deepsim"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	J bool `cli:"name=j aliases=json desc='read inputs as json'"`
	Y bool `cli:"name=y aliases=yaml desc='read inputs as yaml'"`

	Fuzzy         int  `cli:"name=fuzzy desc='fuzzy string match threshold 1-100, 0 for exact matching'"`
	CaseSensitive bool `cli:"name=case desc='fuzzy string matching respects case'"`
	JSONOut       bool `cli:"name=jsonOut desc='write the result as json'"`
	Color         bool `cli:"name=color desc='report with color'"`
	Verbose       bool `cli:"name=v desc='debug logging'"`

	MinSimilarity float64

	Main *cli.Command
}

func (cfg *MainConfig) mkMinSimilarity() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid minimum similarity %q: %w", cli.ErrUsage, a, err)
		}
		if f < 0 || f > 100 {
			return nil, fmt.Errorf("%w: minimum similarity must be within 0-100, got %v", cli.ErrUsage, f)
		}
		cfg.MinSimilarity = f
		return f, nil
	}
}

func (cfg *MainConfig) inputFormat() (docFormat, error) {
	switch {
	case cfg.J && cfg.Y:
		return formatAuto, fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	case cfg.J:
		return formatJSON, nil
	case cfg.Y:
		return formatYAML, nil
	}
	return formatAuto, nil
}

func (cfg *MainConfig) compareOpts() []deepsim.Option {
	return []deepsim.Option{
		deepsim.OptionFuzzyThreshold(cfg.Fuzzy),
		deepsim.OptionCaseInsensitive(!cfg.CaseSensitive),
	}
}

// colorOut reports whether output to w should be colored. an explicit
// -color wins, otherwise color is on for terminals
func (cfg *MainConfig) colorOut(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return false
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
