package renderer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	yaml "gopkg.in/yaml.v3"
	"helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/chart/loader"
	"helm.sh/helm/v3/pkg/chartutil"
	"helm.sh/helm/v3/pkg/engine"
)

// HelmRenderer implements Renderer for Helm charts. Files are collected via
// AddFile and loaded as an in-memory chart, so no temporary files are needed.
type HelmRenderer struct {
	opts  *Options
	files map[string][]byte
	mux   sync.RWMutex
}

// NewHelmRenderer creates a new HelmRenderer
func NewHelmRenderer(opts *Options) *HelmRenderer {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HelmRenderer{
		opts:  opts,
		files: make(map[string][]byte),
	}
}

// loadChart builds a chart from the accumulated files
func (r *HelmRenderer) loadChart() (*chart.Chart, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()

	if len(r.files) == 0 {
		return nil, fmt.Errorf("%w: no chart files added", ErrInvalidInput)
	}

	buffered := make([]*loader.BufferedFile, 0, len(r.files))
	for name, content := range r.files {
		buffered = append(buffered, &loader.BufferedFile{
			Name: filepath.ToSlash(name),
			Data: content,
		})
	}
	// loader.LoadFiles expects Chart.yaml first
	sort.Slice(buffered, func(i, j int) bool {
		return buffered[i].Name < buffered[j].Name
	})

	c, err := loader.LoadFiles(buffered)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart: %w", err)
	}
	return c, nil
}

// Validate checks if the accumulated files form a loadable Helm chart
func (r *HelmRenderer) Validate(input []byte) error {
	_, err := r.loadChart()
	return err
}

// Render renders the chart templates and decodes every produced document.
// Each manifest's source is the template file it was rendered from.
func (r *HelmRenderer) Render(ctx context.Context, input []byte) (*Result, error) {
	c, err := r.loadChart()
	if err != nil {
		return nil, err
	}

	values := c.Values
	if values == nil {
		values = make(map[string]interface{})
	}

	// Apply a values override file when configured
	if r.opts.Values != "" {
		overrideRaw, err := os.ReadFile(r.opts.Values)
		if err != nil {
			return nil, fmt.Errorf("failed to read values file: %w", err)
		}
		override := make(map[string]interface{})
		if err := yaml.Unmarshal(overrideRaw, &override); err != nil {
			return nil, fmt.Errorf("failed to parse values file: %w", err)
		}
		values = chartutil.CoalesceTables(override, values)
	}

	options := chartutil.ReleaseOptions{
		Name:      c.Name(),
		Namespace: "default",
		Revision:  1,
		IsInstall: true,
	}

	valuesToRender, err := chartutil.ToRenderValues(c, values, options, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart values: %w", err)
	}

	eng := engine.Engine{
		LintMode: false,
		Strict:   false,
	}

	rendered, err := eng.Render(c, valuesToRender)
	if err != nil {
		return nil, fmt.Errorf("failed to render templates: %w", err)
	}

	result := &Result{
		Name:      c.Name(),
		Manifests: make([]*Manifest, 0),
		Warnings:  make([]string, 0),
	}

	// Stable template order keeps output deterministic
	names := make([]string, 0, len(rendered))
	for name := range rendered {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		content := rendered[name]
		if content == "" {
			continue
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		decoder := yaml.NewDecoder(bytes.NewReader([]byte(content)))
		docNum := 0
		for {
			var doc map[string]interface{}
			if err := decoder.Decode(&doc); err != nil {
				break
			}
			docNum++
			if len(doc) == 0 {
				continue
			}

			manifest := &Manifest{
				Name:    fmt.Sprintf("%s-%d", filepath.Base(name), docNum),
				Source:  name,
				Content: doc,
			}
			if r.opts.IncludeMetadata {
				manifest.Metadata = map[string]interface{}{
					"template": name,
					"docNum":   docNum,
				}
			}
			result.Manifests = append(result.Manifests, manifest)
		}
	}

	return result, nil
}

// SetOptions configures the renderer with the provided options
func (r *HelmRenderer) SetOptions(opts *Options) error {
	if opts == nil {
		return ErrInvalidInput
	}
	r.opts = opts
	return nil
}

// GetOptions returns the current renderer options
func (r *HelmRenderer) GetOptions() *Options {
	return r.opts
}

// AddFile adds a chart file in a thread-safe manner
func (r *HelmRenderer) AddFile(name string, content []byte) error {
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
