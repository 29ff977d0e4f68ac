package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pmeier/meshsample/pkg/geometry"
)

func TestParseAxis(t *testing.T) {
	cases := []struct {
		in   string
		want geometry.Vector3
	}{
		{"x", geometry.NewVector3(1, 0, 0)},
		{"y", geometry.NewVector3(0, 1, 0)},
		{"z", geometry.NewVector3(0, 0, 1)},
		{"-x", geometry.NewVector3(-1, 0, 0)},
		{"-Z", geometry.NewVector3(0, 0, -1)},
		{" y ", geometry.NewVector3(0, 1, 0)},
	}

	for _, tc := range cases {
		got, err := parseAxis(tc.in)
		if err != nil {
			t.Errorf("parseAxis(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseAxis(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "w", "xy", "--x"} {
		if _, err := parseAxis(bad); err == nil {
			t.Errorf("parseAxis(%q): expected error, got nil", bad)
		}
	}
}

func TestLoadModelUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.obj")
	if err := os.WriteFile(path, []byte("o cube\n"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	if _, err := loadModel(path); err == nil {
		t.Error("expected error for unsupported extension, got nil")
	}
}

func TestLoadModelSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.stl")
	stlData := `solid tri
facet normal 0 0 1
  outer loop
    vertex 0 0 0
    vertex 1 0 0
    vertex 0 1 0
  endloop
endfacet
endsolid tri
`
	if err := os.WriteFile(path, []byte(stlData), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	model, err := loadModel(path)
	if err != nil {
		t.Fatalf("loadModel failed: %v", err)
	}
	if model.TriangleCount() != 1 {
		t.Errorf("expected 1 triangle, got %d", model.TriangleCount())
	}
}
