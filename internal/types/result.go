package types

// Manifest represents a single parsed YAML document
type Manifest struct {
	// Name of the manifest
	Name string `json:"name"`
	// Source is the path of the file (or rendered template) the document came from
	Source string `json:"source"`
	// Content is the parsed YAML content
	Content map[string]interface{} `json:"content"`
	// Raw is the original YAML content
	Raw []byte `json:"raw,omitempty"`
	// Metadata contains additional information about the manifest
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// ResourceAssociation is one discovered managed-resource reference.
// KindAPIVersion is the composite key "<kind>_<apiVersion>". Duplicates are
// expected and meaningful: they represent repeated occurrences to be counted.
type ResourceAssociation struct {
	KindAPIVersion string `json:"kindApiVersion" yaml:"kindApiVersion"`
	Kind           string `json:"kind" yaml:"kind"`
	APIVersion     string `json:"apiVersion" yaml:"apiVersion"`
	Category       string `json:"category" yaml:"category"`
}

// ExtractionRecord is one output row tying a discovered resource to the
// Composition and file it was found in
type ExtractionRecord struct {
	FilePath                  string              `json:"filePath" yaml:"filePath"`
	CompositionKindAPIVersion string              `json:"compositionKindApiVersion" yaml:"compositionKindApiVersion"`
	Resource                  ResourceAssociation `json:"resource" yaml:"resource"`
}

// AggregatedStatistic is one row of the occurrence statistics, keyed by the
// distinct (kindApiVersion, kind, apiVersion, category) tuple
type AggregatedStatistic struct {
	KindAPIVersion      string `json:"kindApiVersion" yaml:"kindApiVersion"`
	Kind                string `json:"kind" yaml:"kind"`
	APIVersion          string `json:"apiVersion" yaml:"apiVersion"`
	Category            string `json:"category" yaml:"category"`
	TotalOccurrences    int    `json:"totalOccurrences" yaml:"totalOccurrences"`
	FoundInNFiles       int    `json:"foundInNFiles" yaml:"foundInNFiles"`
	UsedByNCompositions int    `json:"usedByNCompositions" yaml:"usedByNCompositions"`
}

// FileMappingEntry maps one managed resource to the files it appears in.
// FileLocations holds "path (N occurrences)" strings sorted by descending count.
type FileMappingEntry struct {
	KindAPIVersion   string   `json:"kindApiVersion" yaml:"kindApiVersion"`
	TotalFiles       int      `json:"totalFiles" yaml:"totalFiles"`
	TotalOccurrences int      `json:"totalOccurrences" yaml:"totalOccurrences"`
	FileLocations    []string `json:"fileLocations" yaml:"fileLocations"`
}

// Result represents a unified result type for a full analysis run
type Result struct {
	// Basic information
	Version   string `json:"version"`
	Source    string `json:"source"`
	Success   bool   `json:"success"`
	Error     error  `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`

	// Extracted data
	Records    []ExtractionRecord    `json:"records"`
	Statistics []AggregatedStatistic `json:"statistics"`
	Mapping    []FileMappingEntry    `json:"mapping"`
	Functions  []string              `json:"functions"`

	// Warnings collected while processing (per-file failures, skipped docs)
	Warnings []string `json:"warnings,omitempty"`

	// Formatted output
	OutputFormatted string `json:"output_formatted,omitempty"`

	// Additional data
	Extra map[string]interface{} `json:"extra,omitempty"`
}
