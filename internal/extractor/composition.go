package extractor

import (
	"context"
	"fmt"

	"github.com/kernel-kun/crossplane-utils/internal/logger"
	"github.com/kernel-kun/crossplane-utils/internal/renderer"
	"github.com/kernel-kun/crossplane-utils/internal/types"
)

const (
	compositionAPIVersion = "apiextensions.crossplane.io/v1"
	compositionKind       = "Composition"
)

// CompositionExtractor implements Extractor for Crossplane Compositions
type CompositionExtractor struct {
	opts *Options
}

// NewCompositionExtractor creates a new CompositionExtractor
func NewCompositionExtractor(opts *Options) *CompositionExtractor {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &CompositionExtractor{
		opts: opts,
	}
}

// Extract processes the manifests and returns one record per discovered
// resource association, plus the catalog of pipeline function references
func (e *CompositionExtractor) Extract(ctx context.Context, manifests []*renderer.Manifest) (*Result, error) {
	if err := e.Validate(manifests); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	result := NewResult()
	compositions := 0

	for _, manifest := range manifests {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		records := e.extractComposition(manifest.Content, manifest.Source, result.Functions)
		if records == nil {
			continue
		}
		compositions++
		result.Records = append(result.Records, records...)
	}

	if e.opts.IncludeMetadata {
		result.Metadata["manifestCount"] = len(manifests)
		result.Metadata["compositionCount"] = compositions
		result.Metadata["recordCount"] = len(result.Records)
	}

	return result, nil
}

// extractComposition returns the extraction records for one document, or nil
// when the document is not a Composition
func (e *CompositionExtractor) extractComposition(doc map[string]interface{}, filePath string, catalog *FunctionCatalog) []types.ExtractionRecord {
	apiVersion, _ := doc["apiVersion"].(string)
	kind, _ := doc["kind"].(string)
	if apiVersion != compositionAPIVersion || kind != compositionKind {
		logger.Debug().Str("file", filePath).Msg("document is not a Composition, skipping")
		return nil
	}

	spec, _ := doc["spec"].(map[string]interface{})

	// Composite type reference, with placeholders for missing fields
	compositeRef, _ := spec["compositeTypeRef"].(map[string]interface{})
	compositeKindAPI := stringOr(compositeRef, "kind", notAvailable) + "_" +
		stringOr(compositeRef, "apiVersion", notAvailable)

	pipeline, _ := spec["pipeline"].([]interface{})

	// Collect function references from the pipeline
	for _, entry := range pipeline {
		step, _ := entry.(map[string]interface{})
		functionRef, _ := step["functionRef"].(map[string]interface{})
		catalog.Add(stringOr(functionRef, "name", notAvailable))
	}

	// Scan the whole document for managed-resource references
	associations := ScanResources(doc)

	// Also scan inline template text of every pipeline step. Fragments are fed
	// back through the resource scanner, which filters out non-managed domains
	// and assigns categories the same way as for direct document finds.
	for _, entry := range pipeline {
		step, _ := entry.(map[string]interface{})
		input, _ := step["input"].(map[string]interface{})
		inline, _ := input["inline"].(map[string]interface{})
		template, _ := inline["template"].(string)
		if template == "" {
			continue
		}
		for _, fragment := range ExtractTemplateContent(template) {
			associations = append(associations, ScanResources(fragment.AsDocument())...)
		}
	}

	// A Composition with no discovered resources still yields one record, so
	// every processed Composition is represented in the raw output
	if len(associations) == 0 {
		associations = []types.ResourceAssociation{
			{
				KindAPIVersion: notAvailable,
				Kind:           notAvailable,
				APIVersion:     notAvailable,
			},
		}
	}

	records := make([]types.ExtractionRecord, 0, len(associations))
	for _, association := range associations {
		records = append(records, types.ExtractionRecord{
			FilePath:                  filePath,
			CompositionKindAPIVersion: compositeKindAPI,
			Resource:                  association,
		})
	}

	logger.Debug().
		Str("file", filePath).
		Str("composition", compositeKindAPI).
		Int("resources", len(associations)).
		Msg("extracted composition details")

	return records
}

// Validate checks if the manifests can be processed
func (e *CompositionExtractor) Validate(manifests []*renderer.Manifest) error {
	if len(manifests) == 0 {
		return ErrInvalidInput
	}
	return nil
}

// GetOptions returns the extractor options
func (e *CompositionExtractor) GetOptions() *Options {
	return e.opts
}

// SetOptions sets the extractor options
func (e *CompositionExtractor) SetOptions(opts *Options) {
	if opts != nil {
		e.opts = opts
	}
}

// stringOr reads a string value from a possibly-nil mapping, falling back to
// def when the key is absent or not a string
func stringOr(m map[string]interface{}, key, def string) string {
	if m == nil {
		return def
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return def
}
