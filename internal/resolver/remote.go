package resolver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/kernel-kun/crossplane-utils/internal/renderer"
)

// defaultHTTPClient is the default HTTP client used by RemoteResolver
// This can be overridden for testing
var defaultHTTPClient = http.DefaultClient

// Default timeout for HTTP requests
const defaultHTTPTimeout = 30 * time.Second

// RemoteResolver implements SourceResolver for remote HTTP/HTTPS resources
type RemoteResolver struct {
	source string
	opts   *Options
	client *http.Client
}

// isValidURL checks if a string is a valid URL
func isValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// NewRemoteResolver creates a new RemoteResolver
func NewRemoteResolver(source string, opts *Options, client *http.Client) (*RemoteResolver, error) {
	if !isValidURL(source) {
		return nil, fmt.Errorf("invalid URL: %s", source)
	}

	if client == nil {
		client = defaultHTTPClient
		if client == nil {
			client = &http.Client{
				Timeout: defaultHTTPTimeout,
				CheckRedirect: func(req *http.Request, via []*http.Request) error {
					if len(via) >= 10 {
						return fmt.Errorf("too many redirects")
					}
					return nil
				},
			}
		}
	}

	return &RemoteResolver{
		source: source,
		opts:   opts,
		client: client,
	}, nil
}

// CanResolve checks if this resolver can handle the given source
func (r *RemoteResolver) CanResolve(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	ext := strings.ToLower(path.Ext(u.Path))
	return ext == ".yaml" || ext == ".yml"
}

// Resolve fetches the URL and returns its parsed documents
func (r *RemoteResolver) Resolve(ctx context.Context) (*renderer.Result, *ResolverMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.source, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/yaml,text/yaml,text/plain")
	req.Header.Set("User-Agent", "crossplane-utils/1.0")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("HTTP request failed with status: %s", resp.Status)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
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
		Type:         SourceTypeRemote,
		RendererType: renderer.TypeYAML,
		Path:         r.source,
		Size:         int64(len(content)),
		ModTime:      time.Now(),
		Extra: map[string]interface{}{
			"manifests": len(result.Manifests),
			"warnings":  result.Warnings,
		},
	}, nil
}
