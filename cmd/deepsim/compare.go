package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/qri-io/deepsim"

	"github.com/scott-cotton/cli"
	"go.uber.org/zap"
)

func compare(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: deepsim requires 2 args, got %v", cli.ErrUsage, args)
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	res, err := compareFiles(cfg, logger, args[0], args[1])
	if err != nil {
		return err
	}
	if err := writeResult(cfg, cc.Out, res, cfg.colorOut(cc.Out)); err != nil {
		return err
	}
	if !res.Passes(cfg.MinSimilarity) {
		logger.Info("similarity below minimum",
			zap.Float64("similarity", res.Similarity),
			zap.Float64("min", cfg.MinSimilarity))
		return cli.ExitCodeErr(1)
	}
	return nil
}

// compareFiles loads a control & candidate document and compares them
func compareFiles(cfg *MainConfig, logger *zap.Logger, control, candidate string) (*deepsim.Result, error) {
	f, err := cfg.inputFormat()
	if err != nil {
		return nil, err
	}

	left, err := loadDocument(control, f)
	if err != nil {
		return nil, err
	}
	right, err := loadDocument(candidate, f)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded documents",
		zap.String("control", control),
		zap.String("candidate", candidate),
		zap.Stringer("format", f))

	res, err := deepsim.Compare(left, right, cfg.compareOpts()...)
	if err != nil {
		return nil, fmt.Errorf("comparing %s with %s: %w", control, candidate, err)
	}
	logger.Debug("compared documents",
		zap.Int("leaves", res.Stats.Leaves),
		zap.Int("differences", len(res.Differences)),
		zap.Float64("similarity", res.Similarity),
		zap.Int("fuzzy", cfg.Fuzzy))
	return res, nil
}

func writeResult(cfg *MainConfig, w io.Writer, res *deepsim.Result, color bool) error {
	if cfg.JSONOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if err := deepsim.FormatPretty(w, res, color); err != nil {
		return err
	}
	stats := deepsim.FormatPrettyStats(&res.Stats)
	if color {
		stats = deepsim.FormatPrettyStatsColor(&res.Stats)
	}
	_, err := io.WriteString(w, stats)
	return err
}
