package renderer

import (
	"bytes"
	"context"
	"crypto/sha512"
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v3"
)

// YAMLRenderer implements the Renderer interface for multi-document YAML streams
type YAMLRenderer struct {
	opts *Options
	// source is attached to every produced manifest so records can be traced
	// back to the file they came from
	source string
}

// NewYAMLRenderer creates a new YAMLRenderer with default options
func NewYAMLRenderer() *YAMLRenderer {
	return &YAMLRenderer{
		opts: DefaultOptions(),
	}
}

// SetSource sets the source path attached to produced manifests
func (r *YAMLRenderer) SetSource(source string) {
	r.source = source
}

// Render decodes a multi-document YAML stream into parsed manifests.
// Documents that fail to parse become warnings, not errors: a broken document
// must not hide the valid ones around it.
func (r *YAMLRenderer) Render(ctx context.Context, input []byte) (*Result, error) {
	if len(input) == 0 {
		return nil, ErrInvalidInput
	}

	hash := sha512.Sum512(input)
	version := fmt.Sprintf("sha512:%x", hash)

	result := &Result{
		Name:      r.source,
		Version:   version,
		Manifests: make([]*Manifest, 0),
	}

	decoder := yaml.NewDecoder(bytes.NewReader(input))
	docNum := 0

	for {
		// Check for context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var obj map[string]interface{}
		err := decoder.Decode(&obj)
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("failed to parse document %d: %v", docNum+1, err))
			break
		}

		docNum++

		// Skip empty documents
		if len(obj) == 0 {
			continue
		}

		// Get name from metadata if available
		var name string
		if metadata, ok := obj["metadata"].(map[string]interface{}); ok {
			if n, ok := metadata["name"].(string); ok {
				name = n
			}
		}
		if name == "" {
			name = fmt.Sprintf("document-%d", docNum)
		}

		manifest := &Manifest{
			Name:    name,
			Source:  r.source,
			Content: obj,
		}

		if r.opts.IncludeMetadata {
			manifest.Metadata = map[string]interface{}{
				"docNum": docNum,
			}
		}

		result.Manifests = append(result.Manifests, manifest)
	}

	return result, nil
}

// Validate checks if the input is valid YAML
func (r *YAMLRenderer) Validate(input []byte) error {
	if len(input) == 0 {
		return ErrInvalidInput
	}

	var obj interface{}
	decoder := yaml.NewDecoder(bytes.NewReader(input))
	docCount := 0

	for {
		err := decoder.Decode(&obj)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}

		switch obj.(type) {
		case map[string]interface{}, []interface{}, nil:
			docCount++
		default:
			return fmt.Errorf("%w: document must be a YAML map or array, got %T", ErrInvalidFormat, obj)
		}
	}

	if docCount == 0 {
		return fmt.Errorf("%w: no valid YAML documents found", ErrInvalidFormat)
	}

	return nil
}

// SetOptions configures the renderer with the provided options
func (r *YAMLRenderer) SetOptions(opts *Options) error {
	if opts == nil {
		return ErrInvalidInput
	}
	r.opts = opts
	return nil
}

// GetOptions returns the current renderer options
func (r *YAMLRenderer) GetOptions() *Options {
	return r.opts
}

// AddFile adds a file to the renderer's context
func (r *YAMLRenderer) AddFile(name string, content []byte) error {
	// YAMLRenderer doesn't need additional files
	return nil
}
