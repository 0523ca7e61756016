package renderer

import (
	"context"
	"crypto/sha512"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	yaml "gopkg.in/yaml.v3"
	"sigs.k8s.io/kustomize/api/krusty"
	"sigs.k8s.io/kustomize/kyaml/filesys"
)

// KustomizeRenderer implements Renderer for Kustomize directories
type KustomizeRenderer struct {
	opts  *Options
	files map[string][]byte // file name -> content
	mux   sync.RWMutex
}

// NewKustomizeRenderer creates a new KustomizeRenderer
func NewKustomizeRenderer(opts *Options) *KustomizeRenderer {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &KustomizeRenderer{
		opts:  opts,
		files: make(map[string][]byte),
	}
}

// Render builds the kustomization over an in-memory filesystem and decodes
// the emitted YAML stream
func (r *KustomizeRenderer) Render(ctx context.Context, input []byte) (*Result, error) {
	fs := filesys.MakeFsInMemory()

	r.mux.RLock()
	for name, content := range r.files {
		dir := filepath.Dir("/" + name)
		if err := fs.MkdirAll(dir); err != nil {
			r.mux.RUnlock()
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		if err := fs.WriteFile("/"+name, content); err != nil {
			r.mux.RUnlock()
			return nil, fmt.Errorf("failed to write file %s: %w", name, err)
		}
	}
	r.mux.RUnlock()

	k := krusty.MakeKustomizer(
		krusty.MakeDefaultOptions(),
	)

	resources, err := k.Run(fs, "/")
	if err != nil {
		return nil, fmt.Errorf("failed to build resources: %w", err)
	}

	yamlData, err := resources.AsYaml()
	if err != nil {
		return nil, fmt.Errorf("failed to convert resources to yaml: %w", err)
	}

	hash := sha512.Sum512(yamlData)

	result := &Result{
		Name:      string(input),
		Version:   fmt.Sprintf("sha512:%x", hash),
		Manifests: make([]*Manifest, 0),
	}

	decoder := yaml.NewDecoder(strings.NewReader(string(yamlData)))
	docNum := 0

	for {
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
			return nil, fmt.Errorf("failed to parse manifest: %w", err)
		}
		docNum++
		if len(obj) == 0 {
			continue
		}

		manifest := &Manifest{
			Source:  result.Name,
			Content: obj,
		}
		if metadata, ok := obj["metadata"].(map[string]interface{}); ok {
			if name, ok := metadata["name"].(string); ok {
				manifest.Name = name
			}
		}
		if manifest.Name == "" {
			manifest.Name = fmt.Sprintf("document-%d", docNum)
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

// Validate checks if the input is a kustomization file
func (r *KustomizeRenderer) Validate(input []byte) error {
	var obj map[string]interface{}
	if err := yaml.Unmarshal(input, &obj); err != nil {
		return fmt.Errorf("%w: invalid yaml", ErrInvalidInput)
	}

	if kind, ok := obj["kind"].(string); !ok || kind != "Kustomization" {
		return fmt.Errorf("%w: not a kustomization file", ErrInvalidInput)
	}

	return nil
}

// SetOptions configures the renderer with the provided options
func (r *KustomizeRenderer) SetOptions(opts *Options) error {
	if opts == nil {
		return ErrInvalidInput
	}
	r.opts = opts
	return nil
}

// GetOptions returns the current renderer options
func (r *KustomizeRenderer) GetOptions() *Options {
	return r.opts
}

// AddFile adds a file to the renderer's context in a thread-safe manner
func (r *KustomizeRenderer) AddFile(name string, content []byte) error {
	if name == "" {
		return fmt.Errorf("file name cannot be empty")
	}
	if content == nil {
		return fmt.Errorf("file content cannot be nil")
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	r.files[name] = content
	return nil
}
