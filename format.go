package deepsim

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// FormatPrettyString is a convenice wrapper that outputs to a string instead of
// an io.Writer
func FormatPrettyString(res *Result, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, res, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a text report of differences to w, one per line. if
// colorTTY is true it will add
// green "+" for values missing in the left document
// red "-" for values missing in the right document
// magenta "!" for type mismatches
// blue "~" for value mismatches
func FormatPretty(w io.Writer, res *Result, colorTTY bool) error {
	if res == nil {
		return nil
	}
	colors := kindColors(colorTTY)
	for _, d := range res.Differences {
		line, err := formatDifference(d)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, paint(colors[d.Kind], line)); err != nil {
			return err
		}
	}
	return nil
}

func formatDifference(d *Difference) (string, error) {
	switch d.Kind {
	case MissingInLeft:
		right, err := json.Marshal(d.Right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s: %s", d.Kind.Symbol(), d.Path, right), nil
	case MissingInRight:
		left, err := json.Marshal(d.Left)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s: %s", d.Kind.Symbol(), d.Path, left), nil
	default:
		left, err := json.Marshal(d.Left)
		if err != nil {
			return "", err
		}
		right, err := json.Marshal(d.Right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s: %s -> %s", d.Kind.Symbol(), d.Path, left, right), nil
	}
}

// kindColors returns nil when color is off, so every lookup yields a nil
// color that paint leaves alone
func kindColors(colorTTY bool) map[Kind]*color.Color {
	if !colorTTY {
		return nil
	}
	colors := map[Kind]*color.Color{
		kindMatch:      color.New(color.FgWhite),
		MissingInLeft:  color.New(color.FgGreen),
		MissingInRight: color.New(color.FgRed),
		TypeMismatch:   color.New(color.FgMagenta),
		ValueMismatch:  color.New(color.FgBlue),
	}
	// color would otherwise be dropped whenever stdout isn't a terminal
	for _, c := range colors {
		c.EnableColor()
	}
	return colors
}

func paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// FormatPrettyStats prints a string of stats info
func FormatPrettyStats(s *Stats) string {
	return formatStats(s, false)
}

// FormatPrettyStatsColor prints a string of stats info with ANSI colors
func FormatPrettyStatsColor(s *Stats) string {
	return formatStats(s, true)
}

func formatStats(s *Stats, colorTTY bool) string {
	if s == nil {
		return "<nil>"
	}
	colors := kindColors(colorTTY)
	buf := &bytes.Buffer{}

	buf.WriteString(paint(colors[kindMatch], fmt.Sprintf("%.2f%% similar.", s.Similarity())))
	buf.WriteString(paint(colors[kindMatch], count(s.Leaves, "leaf", "leaves")))
	buf.WriteString(paint(colors[kindMatch], count(s.Matches, "match", "matches")))
	if s.MissingInLeft > 0 {
		buf.WriteString(paint(colors[MissingInLeft], count(s.MissingInLeft, "missing in left", "missing in left")))
	}
	if s.MissingInRight > 0 {
		buf.WriteString(paint(colors[MissingInRight], count(s.MissingInRight, "missing in right", "missing in right")))
	}
	if s.TypeMismatches > 0 {
		buf.WriteString(paint(colors[TypeMismatch], count(s.TypeMismatches, "type mismatch", "type mismatches")))
	}
	if s.ValueMismatches > 0 {
		buf.WriteString(paint(colors[ValueMismatch], count(s.ValueMismatches, "value mismatch", "value mismatches")))
	}
	buf.WriteRune('\n')

	return buf.String()
}

func count(n int, singular, plural string) string {
	word := plural
	if n == 1 {
		word = singular
	}
	return fmt.Sprintf(" %d %s.", n, word)
}
