package main

import (
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pmeier/meshsample/internal/logger"
	"github.com/pmeier/meshsample/pkg/pointcloud"
	"github.com/pmeier/meshsample/pkg/sampler"
	"github.com/pmeier/meshsample/pkg/stl"
)

var (
	sampleCount      int
	sampleSeed       int64
	sampleOutput     string
	sampleFormat     string
	sampleWeightAxis string
	filterAxis       string
	filterMinDot     float64
	attemptFactor    int
)

var sampleCmd = &cobra.Command{
	Use:   "sample [file]",
	Short: "Sample points over the surface of a model",
	Long: `Draw random points distributed uniformly over the surface of a model,
weighted by triangle area, and write them as a point cloud.

An optional weight axis skews the density toward one end of the model and
an optional directional filter keeps only points whose surface normal
lies within a hemisphere around a given axis.`,
	Args: cobra.ExactArgs(1),
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().IntVarP(&sampleCount, "count", "n", 0, "Number of points to sample (default from config)")
	sampleCmd.Flags().Int64Var(&sampleSeed, "seed", 0, "Random seed, 0 seeds from the clock")
	sampleCmd.Flags().StringVarP(&sampleOutput, "output", "o", "", "Output file (default: input name with a new extension)")
	sampleCmd.Flags().StringVarP(&sampleFormat, "format", "f", "", "Output format: ply, xyz or csv")
	sampleCmd.Flags().StringVar(&sampleWeightAxis, "weight-axis", "", "Skew sampling density along an axis (x, y, z, -x, ...)")
	sampleCmd.Flags().StringVar(&filterAxis, "filter-axis", "", "Keep only points facing this axis")
	sampleCmd.Flags().Float64Var(&filterMinDot, "min-dot", 0, "Minimum dot product between normal and filter axis")
	sampleCmd.Flags().IntVar(&attemptFactor, "attempt-factor", 0, "Attempt budget as a multiple of the target count")
}

func runSample(cmd *cobra.Command, args []string) error {
	applySampleFlags(cmd)

	model, err := loadModel(args[0])
	if err != nil {
		return err
	}

	cloud, err := sampleModel(model)
	if err != nil {
		return err
	}

	return writeCloud(cloud, args[0])
}

// applySampleFlags overlays changed CLI flags onto the loaded config.
func applySampleFlags(cmd *cobra.Command) {
	if cmd.Flags().Changed("count") {
		cfg.Sampling.Count = sampleCount
	}
	if cmd.Flags().Changed("seed") {
		cfg.Sampling.Seed = sampleSeed
	}
	if cmd.Flags().Changed("weight-axis") {
		cfg.Sampling.WeightAxis = sampleWeightAxis
	}
	if cmd.Flags().Changed("attempt-factor") {
		cfg.Sampling.AttemptFactor = attemptFactor
	}
	if cmd.Flags().Changed("filter-axis") {
		cfg.Filter.Enabled = true
		cfg.Filter.Axis = filterAxis
	}
	if cmd.Flags().Changed("min-dot") {
		cfg.Filter.Enabled = true
		cfg.Filter.MinDot = filterMinDot
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = sampleFormat
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Path = sampleOutput
	}
}

// sampleModel builds a sampler for the model per the active config and
// collects the requested point cloud.
func sampleModel(model *stl.Model) (*pointcloud.Cloud, error) {
	positions := model.Flatten()

	opts := []sampler.Option{}
	if cfg.Sampling.Seed != 0 {
		opts = append(opts, sampler.WithRandomSource(rand.New(rand.NewSource(cfg.Sampling.Seed))))
	}
	if cfg.Sampling.WeightAxis != "" {
		axis, err := parseAxis(cfg.Sampling.WeightAxis)
		if err != nil {
			return nil, fmt.Errorf("weight axis: %w", err)
		}
		opts = append(opts, sampler.WithVertexWeights(sampler.AxisRamp(positions, axis)))
	}

	s, err := sampler.New(positions, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := s.Build(); err != nil {
		if errors.Is(err, sampler.ErrDegenerateMesh) {
			return nil, fmt.Errorf("%s has no sampleable surface: %w", model.Name, err)
		}
		return nil, err
	}

	var keep pointcloud.Filter
	if cfg.Filter.Enabled {
		axis, err := parseAxis(cfg.Filter.Axis)
		if err != nil {
			return nil, fmt.Errorf("filter axis: %w", err)
		}
		keep = pointcloud.HemisphereFilter(axis, cfg.Filter.MinDot)
	}

	target := cfg.Sampling.Count
	maxAttempts := target * cfg.Sampling.AttemptFactor

	start := time.Now()
	cloud, err := pointcloud.Collect(s, target, maxAttempts, keep)
	if errors.Is(err, pointcloud.ErrBudgetExhausted) {
		// Degrade to the partial cloud rather than failing outright
		logger.Log.Warn("attempt budget exhausted, writing partial cloud",
			zap.Int("requested", target),
			zap.Int("collected", cloud.Len()),
			zap.Int("attempts", maxAttempts))
	} else if err != nil {
		return nil, err
	}

	logger.Log.Info("sampling done",
		zap.Int("points", cloud.Len()),
		zap.Int("triangles", s.TriangleCount()),
		zap.Duration("elapsed", time.Since(start)))

	return cloud, nil
}

// writeCloud writes the cloud to the configured output path and format.
func writeCloud(cloud *pointcloud.Cloud, inputPath string) error {
	format, err := pointcloud.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	outPath := cfg.Output.Path
	if outPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outPath = base + "." + string(format)
	}

	if err := pointcloud.WriteFile(outPath, cloud, format); err != nil {
		return err
	}

	logger.Log.Info("point cloud written",
		zap.String("file", outPath),
		zap.String("format", string(format)),
		zap.Int("points", cloud.Len()))
	return nil
}
