// Package extractor provides functionality to extract managed-resource
// associations from Crossplane Composition manifests, including resources
// only visible inside inline go-template bodies of pipeline steps.
package extractor

import (
	"context"
	"fmt"

	"github.com/kernel-kun/crossplane-utils/internal/renderer"
	"github.com/kernel-kun/crossplane-utils/internal/types"
)

// Options contains configuration options for extractors
type Options struct {
	// IncludeMetadata includes additional metadata in extraction results
	IncludeMetadata bool
}

// DefaultOptions returns the default extractor options
func DefaultOptions() *Options {
	return &Options{
		IncludeMetadata: true,
	}
}

// Result represents the output of an extractor
type Result struct {
	// Records contains one row per discovered resource association
	Records []types.ExtractionRecord `json:"records"`
	// Functions is the catalog of pipeline function references seen
	Functions *FunctionCatalog `json:"functions"`
	// Metadata contains additional information about the extraction
	Metadata map[string]interface{} `json:"metadata"`
}

// NewResult creates a new Result with initialized fields
func NewResult() *Result {
	return &Result{
		Records:   make([]types.ExtractionRecord, 0),
		Functions: NewFunctionCatalog(),
		Metadata:  make(map[string]interface{}),
	}
}

// Error types for the extractor package
var (
	ErrInvalidInput = fmt.Errorf("invalid input")
)

// Extractor defines the interface for extracting information from manifests
type Extractor interface {
	// Extract processes the manifests and returns structured data
	Extract(ctx context.Context, manifests []*renderer.Manifest) (*Result, error)
	// Validate checks if the manifests can be processed by this extractor
	Validate(manifests []*renderer.Manifest) error
	// SetOptions configures the extractor with the given options
	SetOptions(opts *Options)
	// GetOptions returns the current options
	GetOptions() *Options
}
