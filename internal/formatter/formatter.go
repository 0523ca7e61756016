// Package formatter renders an analysis result for the console.
package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/kernel-kun/crossplane-utils/internal/types"
	"gopkg.in/yaml.v3"
)

// Formatter defines the interface for formatting data
type Formatter interface {
	Format(data types.Result) (string, error)
}

// Type represents the type of formatter
type Type string

const (
	// TypeJSON formats data as JSON
	TypeJSON Type = "json"
	// TypeYAML formats data as YAML
	TypeYAML Type = "yaml"
	// TypeTable formats data as a table
	TypeTable Type = "table"
)

// JSON implements JSON formatting
type JSON struct{}

// YAML implements YAML formatting
type YAML struct{}

// Table implements table formatting
type Table struct{}

// Format formats data as JSON
func (j *JSON) Format(data types.Result) (string, error) {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error formatting as JSON: %w", err)
	}
	return string(bytes), nil
}

// Format formats data as YAML
func (y *YAML) Format(data types.Result) (string, error) {
	bytes, err := yaml.Marshal(struct {
		Source     string                      `yaml:"source"`
		Records    []types.ExtractionRecord    `yaml:"records"`
		Statistics []types.AggregatedStatistic `yaml:"statistics"`
		Mapping    []types.FileMappingEntry    `yaml:"mapping"`
		Functions  []string                    `yaml:"functions"`
	}{
		Source:     data.Source,
		Records:    data.Records,
		Statistics: data.Statistics,
		Mapping:    data.Mapping,
		Functions:  data.Functions,
	})
	if err != nil {
		return "", fmt.Errorf("error formatting as YAML: %w", err)
	}
	return string(bytes), nil
}

// Format formats data as tables using go-pretty/v6/table
func (t *Table) Format(data types.Result) (string, error) {
	// Create statistics table
	statsTable := table.NewWriter()
	statsTable.SetOutputMirror(nil)
	statsTable.SetStyle(table.StyleLight)
	statsTable.Style().Options.SeparateColumns = true

	statsTable.SetTitle("MANAGED RESOURCE STATISTICS")
	statsTable.AppendHeader(table.Row{
		"KIND/API VERSION",
		"KIND",
		"API VERSION",
		"CATEGORY",
		"TOTAL OCCURRENCES",
		"FOUND IN N FILES",
		"USED BY N COMPOSITIONS",
	})

	for _, stat := range data.Statistics {
		statsTable.AppendRow(table.Row{
			stat.KindAPIVersion,
			stat.Kind,
			stat.APIVersion,
			stat.Category,
			stat.TotalOccurrences,
			stat.FoundInNFiles,
			stat.UsedByNCompositions,
		})
	}

	// Create file mapping table
	mappingTable := table.NewWriter()
	mappingTable.SetOutputMirror(nil)
	mappingTable.SetStyle(table.StyleLight)
	mappingTable.Style().Options.SeparateColumns = true

	mappingTable.SetTitle("FILE MAPPING")
	mappingTable.AppendHeader(table.Row{
		"KIND/API VERSION",
		"TOTAL FILES",
		"TOTAL OCCURRENCES",
		"FILE LOCATIONS",
	})

	for _, entry := range data.Mapping {
		mappingTable.AppendRow(table.Row{
			entry.KindAPIVersion,
			entry.TotalFiles,
			entry.TotalOccurrences,
			strings.Join(entry.FileLocations, "\n"),
		})
	}

	// Create function catalog table
	functionsTable := table.NewWriter()
	functionsTable.SetOutputMirror(nil)
	functionsTable.SetStyle(table.StyleLight)
	functionsTable.Style().Options.SeparateColumns = true

	functionsTable.SetTitle("PIPELINE FUNCTIONS")
	functionsTable.AppendHeader(table.Row{"FUNCTION REFERENCE"})

	for _, name := range data.Functions {
		functionsTable.AppendRow(table.Row{name})
	}

	return statsTable.Render() + "\n\n" + mappingTable.Render() + "\n\n" + functionsTable.Render() + "\n", nil
}

// ParseType converts a string to a Type
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeJSON, TypeYAML, TypeTable:
		return Type(s), nil
	default:
		return "", fmt.Errorf("unknown formatter type: %s", s)
	}
}

// NewFormatter creates a new formatter of the specified type
func NewFormatter(t Type) (Formatter, error) {
	switch t {
	case TypeJSON:
		return &JSON{}, nil
	case TypeYAML:
		return &YAML{}, nil
	case TypeTable:
		return &Table{}, nil
	default:
		return nil, fmt.Errorf("unknown formatter type: %s", t)
	}
}
