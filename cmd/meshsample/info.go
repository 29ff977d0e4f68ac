package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmeier/meshsample/pkg/analysis"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display information about a model",
	Long:  "Show triangle count, surface area, bounding box, edge statistics and whether the surface can be sampled.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	model, err := loadModel(args[0])
	if err != nil {
		return err
	}

	result := analysis.AnalyzeModel(model)

	fmt.Println("Model Information")
	fmt.Println("=================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", args[0])

	fmt.Println("Statistics:")
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Degenerate triangles: %d\n", result.DegenerateCount)
	fmt.Printf("  Edges: %d\n", result.EdgeCount)
	fmt.Printf("  Surface area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n", analysis.FormatVector(result.BoundingBox.Center()))
	fmt.Printf("  Dimensions: %s\n", analysis.FormatVector(result.Dimensions))
	fmt.Printf("  Diagonal: %.6f units\n\n", result.BoundingBox.Diagonal())

	if result.EdgeCount > 0 {
		fmt.Println("Edge Lengths:")
		fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
		fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
		fmt.Printf("  Average: %.6f units\n\n", result.AvgEdgeLength)
	}

	if result.Sampleable() {
		fmt.Println("Surface sampling: possible")
	} else {
		fmt.Println("Surface sampling: NOT possible (zero total surface area)")
	}
	return nil
}
