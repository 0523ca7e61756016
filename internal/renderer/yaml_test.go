package renderer

import (
	"context"
	"testing"
)

func TestYAMLRenderer_Render(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		input         string
		wantManifests int
		wantWarnings  int
		wantErr       bool
	}{
		{
			name: "single document",
			input: `apiVersion: apiextensions.crossplane.io/v1
kind: Composition
metadata:
  name: network`,
			wantManifests: 1,
		},
		{
			name: "multi document stream",
			input: `apiVersion: v1
kind: ConfigMap
metadata:
  name: first
---
apiVersion: v1
kind: Secret
metadata:
  name: second`,
			wantManifests: 2,
		},
		{
			name: "empty documents are skipped",
			input: `---
---
apiVersion: v1
kind: ConfigMap
metadata:
  name: only`,
			wantManifests: 1,
		},
		{
			name: "broken document becomes a warning",
			input: `apiVersion: v1
kind: ConfigMap
metadata:
  name: good
---
key: [unclosed`,
			wantManifests: 1,
			wantWarnings:  1,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewYAMLRenderer()
			result, err := r.Render(ctx, []byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Fatalf("Render() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(result.Manifests) != tt.wantManifests {
				t.Errorf("Render() produced %d manifests, want %d", len(result.Manifests), tt.wantManifests)
			}
			if len(result.Warnings) != tt.wantWarnings {
				t.Errorf("Render() produced %d warnings, want %d: %v", len(result.Warnings), tt.wantWarnings, result.Warnings)
			}
		})
	}
}

func TestYAMLRenderer_ManifestNames(t *testing.T) {
	input := `apiVersion: v1
kind: ConfigMap
metadata:
  name: named
---
apiVersion: v1
kind: ConfigMap`

	r := NewYAMLRenderer()
	result, err := r.Render(context.Background(), []byte(input))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(result.Manifests) != 2 {
		t.Fatalf("Render() produced %d manifests, want 2", len(result.Manifests))
	}
	if result.Manifests[0].Name != "named" {
		t.Errorf("first manifest name = %q, want %q", result.Manifests[0].Name, "named")
	}
	if result.Manifests[1].Name != "document-2" {
		t.Errorf("second manifest name = %q, want %q", result.Manifests[1].Name, "document-2")
	}
}

func TestYAMLRenderer_SetSource(t *testing.T) {
	r := NewYAMLRenderer()
	r.SetSource("compositions/network.yaml")

	result, err := r.Render(context.Background(), []byte("apiVersion: v1\nkind: ConfigMap"))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := result.Manifests[0].Source; got != "compositions/network.yaml" {
		t.Errorf("Source = %q, want %q", got, "compositions/network.yaml")
	}
}

func TestYAMLRenderer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid map", "kind: Composition", false},
		{"valid array", "- one\n- two", false},
		{"scalar document", "just a string", true},
		{"broken yaml", "key: [unclosed", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewYAMLRenderer()
			err := r.Validate([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestYAMLRenderer_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewYAMLRenderer()
	if _, err := r.Render(ctx, []byte("kind: ConfigMap")); err == nil {
		t.Error("expected error from canceled context")
	}
}
