// Package analyzer coordinates a full extraction run: resolve the source,
// extract composition records, aggregate statistics and write the report.
package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/kernel-kun/crossplane-utils/internal/aggregator"
	"github.com/kernel-kun/crossplane-utils/internal/extractor"
	"github.com/kernel-kun/crossplane-utils/internal/formatter"
	"github.com/kernel-kun/crossplane-utils/internal/logger"
	"github.com/kernel-kun/crossplane-utils/internal/report"
	"github.com/kernel-kun/crossplane-utils/internal/resolver"
	"github.com/kernel-kun/crossplane-utils/internal/types"
)

// Options holds configuration for the analyzer
type Options struct {
	// FollowSymlinks determines if symlinks should be followed during directory traversal
	FollowSymlinks bool
	// OutputFormat is the console output format (table, json, yaml)
	OutputFormat string
	// OutputPath is the xlsx report destination
	OutputPath string
	// SkipReport disables the xlsx export
	SkipReport bool
	// Values is a path to a values.yaml file used for rendering a helm chart
	Values string
	// Report holds the report writer configuration
	Report *report.Options
	// Version is stamped into results
	Version string
}

// DefaultOptions returns the default analyzer options
func DefaultOptions() *Options {
	return &Options{
		FollowSymlinks: false,
		OutputFormat:   "table",
		OutputPath:     "composition_extraction.xlsx",
		SkipReport:     false,
		Report:         report.DefaultOptions(),
		Version:        "dev",
	}
}

// Error types for analyzer operations
var (
	ErrInvalidSource = fmt.Errorf("invalid source")
)

// Analyzer manages the full composition analysis run. Records and the
// function catalog are owned here and appended to from a single goroutine.
type Analyzer struct {
	opts *Options
}

// New creates a new Analyzer with the given options
func New(opts *Options) *Analyzer {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Report == nil {
		opts.Report = report.DefaultOptions()
	}
	return &Analyzer{
		opts: opts,
	}
}

// Analyze runs the full extraction process for the given source.
// The context can be used to cancel the operation.
func (a *Analyzer) Analyze(ctx context.Context, source string) (*types.Result, error) {
	if source == "" {
		return nil, ErrInvalidSource
	}

	format, err := formatter.ParseType(a.opts.OutputFormat)
	if err != nil {
		return nil, err
	}

	res, err := resolver.ResolverFactory(source, &resolver.Options{
		FollowSymlinks: a.opts.FollowSymlinks,
		Values:         a.opts.Values,
	})
	if err != nil {
		return nil, err
	}

	rendered, metadata, err := res.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("source", source).
		Str("type", metadata.Type.String()).
		Int("manifests", len(rendered.Manifests)).
		Msg("starting composition extraction")

	result := &types.Result{
		Version:   a.opts.Version,
		Source:    metadata.Path,
		Timestamp: time.Now().Unix(),
		Warnings:  rendered.Warnings,
	}

	catalog := extractor.NewFunctionCatalog()

	if len(rendered.Manifests) > 0 {
		ext := extractor.NewCompositionExtractor(nil)
		extracted, err := ext.Extract(ctx, rendered.Manifests)
		if err != nil {
			return nil, fmt.Errorf("extraction failed: %w", err)
		}
		result.Records = extracted.Records
		catalog.Merge(extracted.Functions)
		result.Extra = extracted.Metadata
	}

	result.Statistics = aggregator.Statistics(result.Records)
	result.Mapping = aggregator.FileMapping(result.Records)
	result.Functions = catalog.Names()

	if len(result.Records) == 0 {
		logger.Warn().Str("source", source).Msg("no Composition entries found")
	} else {
		logger.Info().Int("records", len(result.Records)).Msg("extraction complete")
	}

	f, err := formatter.NewFormatter(format)
	if err != nil {
		return nil, err
	}
	output, err := f.Format(*result)
	if err != nil {
		return nil, fmt.Errorf("formatting failed: %w", err)
	}
	result.OutputFormatted = output

	if !a.opts.SkipReport {
		writer := report.NewWriter(a.opts.Report)
		if err := writer.Write(*result, a.opts.OutputPath); err != nil {
			return nil, fmt.Errorf("report export failed: %w", err)
		}
	}

	result.Success = true
	return result, nil
}
