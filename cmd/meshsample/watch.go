package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pmeier/meshsample/internal/logger"
	"github.com/pmeier/meshsample/pkg/scad"
	"github.com/pmeier/meshsample/pkg/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-sample a model whenever it changes",
	Long: `Watch a model file and regenerate the point cloud on every change.
For OpenSCAD sources all transitively included files are watched too.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	// Same sampling knobs as the sample command
	watchCmd.Flags().AddFlagSet(sampleCmd.Flags())
}

func runWatch(cmd *cobra.Command, args []string) error {
	applySampleFlags(cmd)
	sourceFile := args[0]

	// First run up front, so a broken model fails fast
	if err := resample(sourceFile); err != nil {
		return err
	}

	filesToWatch := []string{sourceFile}
	if strings.EqualFold(filepath.Ext(sourceFile), ".scad") {
		renderer := scad.NewRenderer(filepath.Dir(sourceFile))
		deps, err := renderer.ResolveDependencies(sourceFile)
		if err != nil {
			return err
		}
		filesToWatch = deps
	}

	fw, err := watcher.NewFileWatcher(500*time.Millisecond, func(err error) {
		logger.Log.Error("watcher error", zap.Error(err))
	})
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Watch(filesToWatch, func(changed string) {
		logger.Log.Info("file changed", zap.String("file", changed))
		if err := resample(sourceFile); err != nil {
			logger.Log.Error("re-sampling failed", zap.Error(err))
		}
	}); err != nil {
		return err
	}
	fw.Start()

	logger.Log.Info("watching for changes",
		zap.Int("files", len(filesToWatch)),
		zap.String("source", sourceFile))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	return nil
}

func resample(sourceFile string) error {
	model, err := loadModel(sourceFile)
	if err != nil {
		return err
	}
	cloud, err := sampleModel(model)
	if err != nil {
		return err
	}
	return writeCloud(cloud, sourceFile)
}
