package resolver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kernel-kun/crossplane-utils/internal/renderer"
)

// SourceResolver defines the interface that all source resolvers must implement
type SourceResolver interface {
	// CanResolve checks if this resolver can handle the given source
	CanResolve(source string) bool

	// Resolve processes the source and returns the parsed manifests
	Resolve(ctx context.Context) (*renderer.Result, *ResolverMetadata, error)
}

// rendererDefinition defines a renderer type and its marker files
type rendererDefinition struct {
	Type        renderer.Type
	Identifiers []string
}

// DetectRendererType determines which renderer to use based on the directory contents
func DetectRendererType(dirPath string) (renderer.Type, error) {
	definitions := []rendererDefinition{
		{
			Type:        renderer.TypeHelm,
			Identifiers: []string{"Chart.yaml", "Chart.yml"},
		},
		{
			Type:        renderer.TypeKustomize,
			Identifiers: []string{"kustomization.yaml", "kustomization.yml"},
		},
	}

	for _, definition := range definitions {
		for _, identifier := range definition.Identifiers {
			filePath := filepath.Join(dirPath, identifier)
			fileInfo, err := os.Stat(filePath)

			if err == nil {
				if fileInfo.IsDir() {
					continue
				}
				return definition.Type, nil
			}

			if !os.IsNotExist(err) {
				return renderer.TypeYAML, fmt.Errorf("error checking for %s: %w", filePath, err)
			}
		}
	}

	return renderer.TypeYAML, nil
}

// ResolverFactory creates the appropriate resolver for a given source
func ResolverFactory(source string, opts *Options) (SourceResolver, error) {
	if source == "" {
		return nil, fmt.Errorf("empty source")
	}

	// Try to parse as URL first
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		ext := strings.ToLower(filepath.Ext(source))
		if ext != ".yaml" && ext != ".yml" {
			return nil, fmt.Errorf("URL does not point to a YAML file: %s", source)
		}
		return NewRemoteResolver(source, opts, defaultHTTPClient)
	}

	// Check if it's a directory
	info, err := os.Stat(source)
	if err == nil && info.IsDir() {
		return NewFolderResolver(source, opts), nil
	}

	// Try local YAML resolver
	local := NewLocalFileResolver(source, opts)
	if local.CanResolve(source) {
		return local, nil
	}

	return nil, fmt.Errorf("no suitable resolver found for source: %s", source)
}
