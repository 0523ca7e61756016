package resolver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kernel-kun/crossplane-utils/internal/logger"
	"github.com/kernel-kun/crossplane-utils/internal/renderer"
)

// FolderResolver implements SourceResolver for directories containing YAML files
type FolderResolver struct {
	source string
	opts   *Options
}

// NewFolderResolver creates a new FolderResolver
func NewFolderResolver(source string, opts *Options) *FolderResolver {
	return &FolderResolver{
		source: source,
		opts:   opts,
	}
}

// CanResolve checks if this resolver can handle the given source
func (r *FolderResolver) CanResolve(source string) bool {
	info, err := os.Stat(source)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Resolve processes the source directory and returns the parsed manifests.
// Helm chart and Kustomize directories are rendered as a bundle first; plain
// directories are walked file by file so every manifest keeps its own source
// path. Per-file failures are logged and skipped, never fatal.
func (r *FolderResolver) Resolve(ctx context.Context) (*renderer.Result, *ResolverMetadata, error) {
	info, err := os.Stat(r.source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat directory: %w", err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("not a directory: %s", r.source)
	}

	rendererType, err := DetectRendererType(r.source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to detect renderer type: %w", err)
	}

	if rendererType == renderer.TypeHelm || rendererType == renderer.TypeKustomize {
		return r.resolveBundle(ctx, rendererType)
	}

	return r.resolveFiles(ctx)
}

// resolveBundle renders a Helm chart or Kustomize directory as one unit
func (r *FolderResolver) resolveBundle(ctx context.Context, rendererType renderer.Type) (*renderer.Result, *ResolverMetadata, error) {
	factory := renderer.NewFactory(&renderer.Options{
		IncludeMetadata: true,
		Values:          valuesPath(r.opts),
	})
	rend, err := factory.GetRenderer(rendererType)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get renderer: %w", err)
	}

	var totalSize int64
	err = filepath.Walk(r.source, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", path, err)
		}
		relPath, err := filepath.Rel(r.source, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		totalSize += info.Size()
		return rend.AddFile(relPath, content)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	result, err := rend.Render(ctx, []byte(r.source))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to render: %w", err)
	}

	// Attribute rendered manifests to the bundle directory
	for _, m := range result.Manifests {
		if !filepath.IsAbs(m.Source) {
			m.Source = filepath.Join(r.source, m.Source)
		}
	}

	meta := &ResolverMetadata{
		Name:         r.source,
		Type:         SourceTypeFolder,
		RendererType: rendererType,
		Path:         r.source,
		Size:         totalSize,
		ModTime:      time.Now(),
		Extra: map[string]interface{}{
			"manifests": len(result.Manifests),
			"warnings":  result.Warnings,
		},
	}

	return result, meta, nil
}

// resolveFiles walks the directory and renders every YAML file separately
func (r *FolderResolver) resolveFiles(ctx context.Context) (*renderer.Result, *ResolverMetadata, error) {
	result := &renderer.Result{
		Name:      r.source,
		Manifests: make([]*renderer.Manifest, 0),
	}
	var totalSize int64
	fileCount := 0

	// Track visited symlinks to prevent cycles
	visitedSymlinks := make(map[string]bool)

	processFile := func(path string, size int64) {
		content, err := os.ReadFile(path)
		if err != nil {
			logger.Warn().Err(err).Str("file", path).Msg("failed to read file, skipping")
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", path, err))
			return
		}
		if len(content) == 0 || !isValidYAML(string(content)) {
			logger.Debug().Str("file", path).Msg("no YAML content, skipping")
			return
		}

		yr := renderer.NewYAMLRenderer()
		yr.SetSource(path)
		fileResult, err := yr.Render(ctx, content)
		if err != nil {
			logger.Warn().Err(err).Str("file", path).Msg("failed to parse file, skipping")
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", path, err))
			return
		}

		result.Manifests = append(result.Manifests, fileResult.Manifests...)
		result.Warnings = append(result.Warnings, fileResult.Warnings...)
		totalSize += size
		fileCount++
	}

	var walkFn fs.WalkDirFunc
	walkFn = func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Handle symlinks if enabled
		if r.opts != nil && r.opts.FollowSymlinks && d.Type()&os.ModeSymlink != 0 {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("failed to get absolute path for %s: %w", path, err)
			}
			if visitedSymlinks[absPath] {
				return nil
			}
			visitedSymlinks[absPath] = true

			target, err := filepath.EvalSymlinks(path)
			if err != nil {
				return fmt.Errorf("failed to evaluate symlink %s: %w", path, err)
			}
			targetInfo, err := os.Stat(target)
			if err != nil {
				return fmt.Errorf("failed to stat symlink target %s: %w", target, err)
			}
			if targetInfo.IsDir() {
				return filepath.WalkDir(target, walkFn)
			}
			ext := strings.ToLower(filepath.Ext(target))
			if ext == ".yaml" || ext == ".yml" {
				processFile(target, targetInfo.Size())
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		processFile(path, info.Size())
		return nil
	}

	if err := filepath.WalkDir(r.source, walkFn); err != nil {
		return nil, nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	// A directory without YAML files is an empty run, not a failure
	if fileCount == 0 {
		logger.Warn().Str("dir", r.source).Msg("no YAML files found in directory")
	}

	metadata := &ResolverMetadata{
		Name:         r.source,
		Type:         SourceTypeFolder,
		RendererType: renderer.TypeYAML,
		Path:         r.source,
		Size:         totalSize,
		ModTime:      time.Now(),
		Extra: map[string]interface{}{
			"files":     fileCount,
			"manifests": len(result.Manifests),
			"warnings":  result.Warnings,
		},
	}

	return result, metadata, nil
}

// valuesPath extracts the helm values override path from the options
func valuesPath(opts *Options) string {
	if opts == nil {
		return ""
	}
	return opts.Values
}
