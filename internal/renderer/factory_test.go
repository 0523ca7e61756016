package renderer

import "testing"

func TestFactory_GetRenderer(t *testing.T) {
	tests := []struct {
		name         string
		rendererType Type
		wantErr      bool
	}{
		{"yaml renderer", TypeYAML, false},
		{"helm renderer", TypeHelm, false},
		{"kustomize renderer", TypeKustomize, false},
		{"unknown renderer", Type("jsonnet"), true},
	}

	factory := NewFactory(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := factory.GetRenderer(tt.rendererType)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetRenderer() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && r == nil {
				t.Error("GetRenderer() returned nil renderer")
			}
		})
	}
}

func TestFactory_PropagatesOptions(t *testing.T) {
	opts := &Options{IncludeMetadata: false, Values: "custom.yaml"}
	factory := NewFactory(opts)

	r, err := factory.GetRenderer(TypeHelm)
	if err != nil {
		t.Fatalf("GetRenderer() error = %v", err)
	}
	if got := r.GetOptions(); got.Values != "custom.yaml" {
		t.Errorf("Values = %q, want custom.yaml", got.Values)
	}
}
