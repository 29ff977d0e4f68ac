package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmeier/meshsample/internal/config"
	"github.com/pmeier/meshsample/internal/logger"
	"github.com/pmeier/meshsample/version"
)

var (
	cfg      *config.Config
	cfgPath  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "meshsample",
	Short: "Surface point sampler for triangle meshes",
	Long: `meshsample draws random points uniformly over the surface of a
triangulated model, weighted by triangle area and optional per-vertex
weights, and writes the result as a point cloud.

It reads ASCII and binary STL files as well as OpenSCAD sources
(rendered through the openscad binary).`,
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}

		level := cfg.Logging.Level
		if logLevel != "" {
			level = logLevel
		}
		logger.Init(level, cfg.Logging.LogFile)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to a meshsample.yaml config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

func main() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
