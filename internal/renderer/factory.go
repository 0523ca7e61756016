package renderer

// Type represents the type of renderer
type Type string

const (
	// TypeYAML represents a plain multi-document YAML renderer
	TypeYAML Type = "yaml"
	// TypeHelm represents a Helm chart renderer
	TypeHelm Type = "helm"
	// TypeKustomize represents a Kustomize renderer
	TypeKustomize Type = "kustomize"
)

// Factory creates renderers based on type
type Factory struct {
	defaultOpts *Options
}

// NewFactory creates a new Factory with default options
func NewFactory(opts *Options) *Factory {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Factory{defaultOpts: opts}
}

// GetRenderer returns a renderer based on the given type
func (f *Factory) GetRenderer(typ Type) (Renderer, error) {
	switch typ {
	case TypeYAML:
		r := NewYAMLRenderer()
		if err := r.SetOptions(f.defaultOpts); err != nil {
			return nil, err
		}
		return r, nil
	case TypeHelm:
		return NewHelmRenderer(f.defaultOpts), nil
	case TypeKustomize:
		return NewKustomizeRenderer(f.defaultOpts), nil
	default:
		return nil, ErrInvalidFormat
	}
}
