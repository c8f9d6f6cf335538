// Command serpentine runs serpentine binning on a pair of DADE contact
// matrices (or on a generated demo pair) and reports the MD diagnostics
// and smoothed outputs.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/serpentine/binning"
	"github.com/katalvlaran/serpentine/dade"
	"github.com/katalvlaran/serpentine/mdstats"
	"github.com/katalvlaran/serpentine/outliers"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serpentine <matrixA> <matrixB>",
		Short: "Serpentine binning for paired contact matrices",
		Long: `serpentine equalizes noise between two paired count matrices by
adaptively merging adjacent pixels into regions until every region clears
a confidence threshold in both matrices, averaged over many randomized
trials. Inputs are DADE upper-triangular text matrices.`,
		Version: version,
		Args: func(cmd *cobra.Command, args []string) error {
			if isTest, _ := cmd.Flags().GetBool("test"); isTest {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().Float64P("threshold", "t", binning.DefaultThreshold,
		"aggregate value a region must reach in both matrices")
	cmd.Flags().Float64P("min-threshold", "m", binning.DefaultMinThreshold,
		"aggregate value below which merging is forced in either matrix")
	cmd.Flags().IntP("iterations", "n", binning.DefaultIterations,
		"number of independent randomized trials to average")
	cmd.Flags().IntP("workers", "w", binning.DefaultWorkers,
		"maximum trials running concurrently")
	cmd.Flags().Int64("seed", 0, "random seed (0 = clock-seeded, nonzero = reproducible)")
	cmd.Flags().Bool("triangular", true, "treat inputs as symmetric (lower-triangle binning)")
	cmd.Flags().Bool("filter", false, "drop rows/columns with outstanding totals before binning")
	cmd.Flags().Int("bins", mdstats.DefaultBins, "bin count for the MD diagnostics")
	cmd.Flags().StringP("output", "o", "", "directory for Amod/Bmod/D TSV output")
	cmd.Flags().StringP("config", "c", "", "YAML file with run defaults (flags take precedence)")
	cmd.Flags().Bool("test", false, "run a demo on randomly generated matrices")
	cmd.Flags().Int("test-size", 300, "size of the generated demo matrices")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	opts, err := gatherOptions(cmd)
	if err != nil {
		return err
	}

	if isTest, _ := cmd.Flags().GetBool("test"); isTest {
		size, _ := cmd.Flags().GetInt("test-size")
		return runDemo(cmd, opts, size)
	}

	a, err := dade.Load(args[0])
	if err != nil {
		return err
	}
	b, err := dade.Load(args[1])
	if err != nil {
		return err
	}

	if doFilter, _ := cmd.Flags().GetBool("filter"); doFilter {
		keep := outliers.Keep(outliers.Mask(a), outliers.Mask(b))
		if a, err = outliers.Apply(a, keep); err != nil {
			return err
		}
		if b, err = outliers.Apply(b, keep); err != nil {
			return err
		}
		r, _ := a.Dims()
		fmt.Fprintf(cmd.ErrOrStderr(), "filtered to %d/%d rows\n", r, len(keep))
	}

	return analyze(cmd, a, b, opts)
}

// analyze bins the pair, prints the diagnostics and writes the outputs.
func analyze(cmd *cobra.Command, a, b *mat.Dense, opts binning.Options) error {
	bins, _ := cmd.Flags().GetInt("bins")
	if before, err := mdstats.Before(a, b, bins, opts.Triangular); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "before: trend=%.4f suggested threshold=%.1f\n",
			before.Trend, before.Threshold)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "running %d trials (threshold %g, min %g)...\n",
		opts.Iterations, opts.Threshold, opts.MinThreshold)
	asm, bsm, dsm, err := binning.Bin(a, b, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "mass: A %.6g -> %.6g, B %.6g -> %.6g\n",
		mat.Sum(a), mat.Sum(asm), mat.Sum(b), mat.Sum(bsm))
	if after, err := mdstats.After(asm, bsm, dsm, bins, opts.Triangular); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "after: trend=%.4f\n", after.Trend)
	}

	outDir, _ := cmd.Flags().GetString("output")
	if outDir == "" {
		return nil
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	for name, m := range map[string]*mat.Dense{"Amod.tsv": asm, "Bmod.tsv": bsm, "D.tsv": dsm} {
		if err := writeTSV(filepath.Join(outDir, name), m); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote Amod.tsv, Bmod.tsv, D.tsv to %s\n", outDir)
	return nil
}

// gatherOptions resolves binning options from config file and flags;
// explicitly set flags override config values.
func gatherOptions(cmd *cobra.Command) (binning.Options, error) {
	opts := binning.DefaultOptions()
	opts.Threshold, _ = cmd.Flags().GetFloat64("threshold")
	opts.MinThreshold, _ = cmd.Flags().GetFloat64("min-threshold")
	opts.Iterations, _ = cmd.Flags().GetInt("iterations")
	opts.Workers, _ = cmd.Flags().GetInt("workers")
	opts.Seed, _ = cmd.Flags().GetInt64("seed")
	opts.Triangular, _ = cmd.Flags().GetBool("triangular")

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return opts, nil
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return opts, err
	}
	applyConfig(cmd, cfg, &opts)
	return opts, nil
}
