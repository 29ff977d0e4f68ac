package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/pmeier/meshsample/pkg/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Sample a model and preview the point cloud",
	Long: `Sample a model and open an interactive preview of the resulting point
cloud. Drag to rotate, scroll to zoom.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().AddFlagSet(sampleCmd.Flags())
}

func runView(cmd *cobra.Command, args []string) error {
	applySampleFlags(cmd)

	model, err := loadModel(args[0])
	if err != nil {
		return err
	}

	cloud, err := sampleModel(model)
	if err != nil {
		return err
	}
	if cloud.Len() == 0 {
		return fmt.Errorf("no points to show, the filter rejected everything")
	}

	a := app.New()
	w := a.NewWindow(fmt.Sprintf("meshsample - %s (%d points)", args[0], cloud.Len()))
	w.SetContent(viewer.NewCloudRenderer(cloud))
	w.Resize(fyne.NewSize(900, 700))
	w.ShowAndRun()

	return nil
}
