// SPDX-License-Identifier: MIT

// Command quasirand streams Sobol low-discrepancy points to stdout and
// can summarize their per-dimension distribution as a quick uniformity
// check.
//
// Emit raw points:
//
//	quasirand emit --dim 2 --count 1000
//
// Emit points rescaled onto a box described by a YAML file
// (lower/upper vectors of equal length):
//
//	quasirand emit --bounds box.yaml --count 1000
//
// Summarize a stream:
//
//	quasirand stats --dim 5 --count 100000
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/bmizerany/perks/quantile"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quasirand/sobol"
)

var (
	dim          int
	count        int64
	skipCount    int64
	exactSkip    bool
	boundsPath   string
	fallbackSeed int64

	rootCmd = &cobra.Command{
		Use:          "quasirand",
		Short:        "Sobol low-discrepancy point generator",
		SilenceUsage: true,
	}

	emitCmd = &cobra.Command{
		Use:   "emit",
		Short: "Stream points as whitespace-separated rows",
		RunE:  runEmit,
	}

	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Print per-dimension quantiles and means of a stream",
		RunE:  runStats,
	}
)

func init() {
	for _, c := range []*cobra.Command{emitCmd, statsCmd} {
		c.Flags().IntVar(&dim, "dim", 2, "Point dimension (0..32)")
		c.Flags().Int64Var(&count, "count", 1024, "Number of points to draw")
		c.Flags().Int64Var(&skipCount, "skip", 0, "Burn-in before the first point")
		c.Flags().BoolVar(&exactSkip, "exact-skip", false, "Skip exactly --skip points instead of the 2^m-1 heuristic")
		c.Flags().Int64Var(&fallbackSeed, "fallback-seed", 0, "Seed for the counter-exhaustion fallback (0 = wall clock)")
	}
	emitCmd.Flags().StringVar(&boundsPath, "bounds", "", "YAML file with lower/upper bound vectors; overrides --dim")

	rootCmd.AddCommand(emitCmd, statsCmd)
}

// boundsFile is the on-disk shape of --bounds.
type boundsFile struct {
	Lower []float64 `yaml:"lower"`
	Upper []float64 `yaml:"upper"`
}

func loadBounds(path string) (*boundsFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bounds: %w", err)
	}
	var b boundsFile
	if err = yaml.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("parse bounds: %w", err)
	}

	return &b, nil
}

// newSource builds the configured stream: scaled when --bounds is set,
// plain otherwise, with burn-in already applied.
func newSource() (sobol.Source, error) {
	opts := []sobol.Option{sobol.WithFallbackSeed(fallbackSeed)}

	var (
		src interface {
			sobol.Source
			Skip(int64) int64
			SkipExact(int64) int64
		}
		err error
	)
	if boundsPath != "" {
		var b *boundsFile
		if b, err = loadBounds(boundsPath); err != nil {
			return nil, err
		}
		src, err = sobol.NewScaled(b.Lower, b.Upper, opts...)
	} else {
		src, err = sobol.New(dim, opts...)
	}
	if err != nil {
		return nil, err
	}

	if exactSkip {
		src.SkipExact(skipCount)
	} else if n := src.Skip(skipCount); n != skipCount && skipCount > 0 {
		slog.Info("Heuristic burn-in applied", slog.Int64("requested", skipCount), slog.Int64("skipped", n))
	}

	return src, nil
}

func runEmit(*cobra.Command, []string) error {
	src, err := newSource()
	if err != nil {
		return err
	}

	w := bufio.NewWriterSize(os.Stdout, 1<<16)
	defer w.Flush()

	buf := make([]float64, src.Dimension())
	for i := int64(0); i < count; i++ {
		if err = src.NextAt(buf); err != nil {
			return err
		}
		for j, v := range buf {
			if j > 0 {
				if err = w.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err = w.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
				return err
			}
		}
		if err = w.WriteByte('\n'); err != nil {
			return err
		}
	}

	return w.Flush()
}

func runStats(*cobra.Command, []string) error {
	src, err := newSource()
	if err != nil {
		return err
	}
	n := src.Dimension()
	slog.Info("Sampling", slog.Int("dim", n), slog.Int64("count", count))

	streams := make([]*quantile.Stream, n)
	means := make([]float64, n)
	for i := range streams {
		streams[i] = quantile.NewTargeted(0.25, 0.50, 0.75, 0.95)
	}

	buf := make([]float64, n)
	for i := int64(0); i < count; i++ {
		if err = src.NextAt(buf); err != nil {
			return err
		}
		for j, v := range buf {
			streams[j].Insert(v)
			means[j] += v
		}
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	fmt.Fprintf(w, "%-5s %10s %10s %10s %10s %10s\n", "dim", "mean", "p25", "p50", "p75", "p95")
	for j := 0; j < n; j++ {
		fmt.Fprintf(w, "%-5d %10.5f %10.5f %10.5f %10.5f %10.5f\n",
			j,
			means[j]/float64(count),
			streams[j].Query(0.25),
			streams[j].Query(0.50),
			streams[j].Query(0.75),
			streams[j].Query(0.95),
		)
	}

	return w.Flush()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
