package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pmeier/meshsample/internal/logger"
	"github.com/pmeier/meshsample/pkg/geometry"
	"github.com/pmeier/meshsample/pkg/scad"
	"github.com/pmeier/meshsample/pkg/stl"
)

// loadModel loads a model from either an STL or OpenSCAD file. OpenSCAD
// sources are rendered to a temporary STL first.
func loadModel(filePath string) (*stl.Model, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".scad":
		logger.Log.Info("rendering OpenSCAD source", zap.String("file", filePath))

		renderer := scad.NewRenderer(filepath.Dir(filePath))
		tempFile := filepath.Join(os.TempDir(), fmt.Sprintf("meshsample_%d.stl", time.Now().UnixNano()))
		defer os.Remove(tempFile)

		if err := renderer.RenderToSTL(filePath, tempFile); err != nil {
			return nil, fmt.Errorf("failed to render OpenSCAD file: %w", err)
		}

		model, err := stl.ParseFile(tempFile)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rendered STL: %w", err)
		}
		return model, nil

	case ".stl":
		model, err := stl.ParseFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse STL file: %w", err)
		}
		return model, nil
	}

	return nil, fmt.Errorf("unsupported file type: %s (expected .stl or .scad)", filePath)
}

// parseAxis parses an axis name like "z" or "-x" into a unit vector.
func parseAxis(name string) (geometry.Vector3, error) {
	sign := 1.0
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(trimmed, "-") {
		sign = -1
		trimmed = trimmed[1:]
	}

	switch trimmed {
	case "x":
		return geometry.NewVector3(sign, 0, 0), nil
	case "y":
		return geometry.NewVector3(0, sign, 0), nil
	case "z":
		return geometry.NewVector3(0, 0, sign), nil
	}
	return geometry.Vector3{}, fmt.Errorf("invalid axis %q (expected x, y, z, -x, -y or -z)", name)
}
