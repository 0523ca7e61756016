package resolver

import (
	"time"

	"github.com/kernel-kun/crossplane-utils/internal/renderer"
)

// SourceType represents the type of source being resolved
type SourceType int

const (
	// SourceTypeUnknown represents an unknown source type
	SourceTypeUnknown SourceType = iota
	// SourceTypeFile represents a single YAML file
	SourceTypeFile
	// SourceTypeRemote represents a remote HTTP/HTTPS resource
	SourceTypeRemote
	// SourceTypeFolder represents a directory containing YAML files
	SourceTypeFolder
)

// String returns the string representation of a SourceType
func (st SourceType) String() string {
	switch st {
	case SourceTypeFile:
		return "file"
	case SourceTypeRemote:
		return "remote"
	case SourceTypeFolder:
		return "folder"
	default:
		return "unknown"
	}
}

// Options holds configuration for resolvers
type Options struct {
	// FollowSymlinks determines if symlinks should be followed during directory traversal
	FollowSymlinks bool
	// Values is a path to a values.yaml file used when rendering a helm chart
	Values string
}

// ResolverMetadata contains information about the resolved source
type ResolverMetadata struct {
	// Name of the artifact
	Name string
	// Type is the source type (file, folder, remote)
	Type SourceType
	// RendererType indicates the type of renderer used (yaml, helm, kustomize)
	RendererType renderer.Type
	// Path is the path to the source
	Path string
	// Size is the size of the source in bytes
	Size int64
	// ModTime is the last modification time of the source
	ModTime time.Time
	// Extra contains additional metadata specific to the source type
	Extra map[string]interface{}
}
