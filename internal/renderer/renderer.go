// Package renderer provides functionality for rendering manifest sources
// (plain YAML streams, Helm charts, Kustomize directories) into a
// standardized list of parsed documents.
package renderer

import (
	"context"
	"fmt"

	"github.com/kernel-kun/crossplane-utils/internal/types"
)

// Options contains configuration options for renderers
type Options struct {
	// IncludeMetadata determines if metadata should be included in rendered output
	IncludeMetadata bool
	// Values is a path to a values.yaml file used for rendering a helm chart
	Values string
}

// DefaultOptions returns a new Options with default values
func DefaultOptions() *Options {
	return &Options{
		IncludeMetadata: true,
		Values:          "",
	}
}

// Result contains the output of a render operation
type Result struct {
	// Name of the rendered artifact
	Name string
	// Version is a content hash of the input
	Version string
	// Manifests holds the parsed documents
	Manifests []*Manifest
	// Warnings holds non-fatal per-document failures
	Warnings []string
}

// Manifest is an alias for types.Manifest
type Manifest = types.Manifest

// Error types for the renderer package
var (
	ErrInvalidInput  = fmt.Errorf("invalid input")
	ErrInvalidFormat = fmt.Errorf("invalid format")
)

// Renderer defines the interface for manifest renderers. Implementations
// convert input data into parsed documents that the extractor can scan.
type Renderer interface {
	// Render processes the input data and returns parsed manifests.
	// The context can be used to cancel long-running render operations.
	Render(ctx context.Context, input []byte) (*Result, error)

	// Validate checks if the input can be handled by this renderer
	Validate(input []byte) error

	// SetOptions configures the renderer with the provided options
	SetOptions(opts *Options) error

	// GetOptions returns the current renderer options
	GetOptions() *Options

	// AddFile adds a file to the renderer's context. Renderers that operate
	// on a single input stream may ignore added files.
	AddFile(name string, content []byte) error
}
