package resolver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kernel-kun/crossplane-utils/internal/renderer"
)

// LocalFileResolver implements SourceResolver for local YAML files
type LocalFileResolver struct {
	source string
	opts   *Options
}

// NewLocalFileResolver creates a new LocalFileResolver
func NewLocalFileResolver(source string, opts *Options) *LocalFileResolver {
	return &LocalFileResolver{
		source: source,
		opts:   opts,
	}
}

// CanResolve checks if this resolver can handle the given source
func (r *LocalFileResolver) CanResolve(source string) bool {
	if _, err := os.Stat(source); err != nil {
		return false
	}

	ext := strings.ToLower(filepath.Ext(source))
	return ext == ".yaml" || ext == ".yml"
}

// Resolve reads the file and returns its parsed documents
func (r *LocalFileResolver) Resolve(ctx context.Context) (*renderer.Result, *ResolverMetadata, error) {
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	info, err := os.Stat(r.source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if !info.Mode().IsRegular() {
		return nil, nil, fmt.Errorf("not a regular file: %s", r.source)
	}

	content, err := os.ReadFile(r.source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}

	yr := renderer.NewYAMLRenderer()
	yr.SetSource(r.source)

	if err := yr.Validate(content); err != nil {
		return nil, nil, err
	}

	result, err := yr.Render(ctx, content)
	if err != nil {
		return nil, nil, err
	}

	return result, &ResolverMetadata{
		Name:         r.source,
		Type:         SourceTypeFile,
		RendererType: renderer.TypeYAML,
		Path:         r.source,
		Size:         info.Size(),
		ModTime:      info.ModTime(),
		Extra: map[string]interface{}{
			"manifests": len(result.Manifests),
			"warnings":  result.Warnings,
		},
	}, nil
}

// isValidYAML performs basic YAML validation
// This is a simple check for common YAML markers
func isValidYAML(content string) bool {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return false
	}

	// Check for common YAML markers
	hasMarker := strings.Contains(trimmed, ":") || // key-value pairs
		strings.Contains(trimmed, "- ") || // array items
		strings.Contains(trimmed, "---") // document separator

	return hasMarker
}
