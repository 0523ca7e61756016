package renderer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const testChartMeta = `apiVersion: v2
name: compositions
version: 0.1.0`

const testChartValues = `bucketName: default-bucket
region: us-east-1`

const testChartTemplate = `apiVersion: apiextensions.crossplane.io/v1
kind: Composition
metadata:
  name: {{ .Values.bucketName }}
  labels:
    region: {{ .Values.region }}`

func newTestChart(t *testing.T) *HelmRenderer {
	t.Helper()
	r := NewHelmRenderer(nil)
	files := map[string]string{
		"Chart.yaml":                 testChartMeta,
		"values.yaml":                testChartValues,
		"templates/composition.yaml": testChartTemplate,
	}
	for name, content := range files {
		if err := r.AddFile(name, []byte(content)); err != nil {
			t.Fatalf("AddFile(%s) error = %v", name, err)
		}
	}
	return r
}

func TestHelmRenderer_Render(t *testing.T) {
	r := newTestChart(t)

	result, err := r.Render(context.Background(), nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(result.Manifests) != 1 {
		t.Fatalf("Render() produced %d manifests, want 1", len(result.Manifests))
	}

	manifest := result.Manifests[0]
	metadata, ok := manifest.Content["metadata"].(map[string]interface{})
	if !ok {
		t.Fatal("rendered manifest has no metadata")
	}
	if metadata["name"] != "default-bucket" {
		t.Errorf("rendered name = %v, want default-bucket", metadata["name"])
	}
	if manifest.Source != "compositions/templates/composition.yaml" {
		t.Errorf("Source = %q, want template path", manifest.Source)
	}
}

func TestHelmRenderer_ValuesOverride(t *testing.T) {
	valuesPath := filepath.Join(t.TempDir(), "override.yaml")
	if err := os.WriteFile(valuesPath, []byte("bucketName: override-bucket"), 0644); err != nil {
		t.Fatalf("failed to write values file: %v", err)
	}

	r := newTestChart(t)
	if err := r.SetOptions(&Options{IncludeMetadata: true, Values: valuesPath}); err != nil {
		t.Fatalf("SetOptions() error = %v", err)
	}

	result, err := r.Render(context.Background(), nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	metadata := result.Manifests[0].Content["metadata"].(map[string]interface{})
	if metadata["name"] != "override-bucket" {
		t.Errorf("rendered name = %v, want override-bucket", metadata["name"])
	}
	// Values not overridden keep their chart defaults
	labels := metadata["labels"].(map[string]interface{})
	if labels["region"] != "us-east-1" {
		t.Errorf("rendered region = %v, want us-east-1", labels["region"])
	}
}

func TestHelmRenderer_NoFiles(t *testing.T) {
	r := NewHelmRenderer(nil)
	if _, err := r.Render(context.Background(), nil); err == nil {
		t.Error("expected error when no chart files were added")
	}
	if err := r.Validate(nil); err == nil {
		t.Error("expected validation error when no chart files were added")
	}
}

func TestHelmRenderer_AddFile(t *testing.T) {
	r := NewHelmRenderer(nil)

	if err := r.AddFile("", []byte("content")); err == nil {
		t.Error("expected error for empty file name")
	}
	if err := r.AddFile("Chart.yaml", nil); err == nil {
		t.Error("expected error for nil content")
	}
	if err := r.AddFile("Chart.yaml", []byte(testChartMeta)); err != nil {
		t.Errorf("AddFile() error = %v", err)
	}
}
