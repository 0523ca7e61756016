package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/kernel-kun/crossplane-utils/internal/types"
)

func sampleResult() types.Result {
	return types.Result{
		Source:  "/tmp/compositions",
		Success: true,
		Records: []types.ExtractionRecord{
			{
				FilePath:                  "network.yaml",
				CompositionKindAPIVersion: "XNetwork_example.org/v1alpha1",
				Resource: types.ResourceAssociation{
					KindAPIVersion: "VPC_ec2.aws.upbound.io/v1beta1",
					Kind:           "VPC",
					APIVersion:     "ec2.aws.upbound.io/v1beta1",
					Category:       "aws",
				},
			},
		},
		Statistics: []types.AggregatedStatistic{
			{
				KindAPIVersion:      "VPC_ec2.aws.upbound.io/v1beta1",
				Kind:                "VPC",
				APIVersion:          "ec2.aws.upbound.io/v1beta1",
				Category:            "aws",
				TotalOccurrences:    1,
				FoundInNFiles:       1,
				UsedByNCompositions: 1,
			},
		},
		Mapping: []types.FileMappingEntry{
			{
				KindAPIVersion:   "VPC_ec2.aws.upbound.io/v1beta1",
				TotalFiles:       1,
				TotalOccurrences: 1,
				FileLocations:    []string{"network.yaml (1 occurrences)"},
			},
		},
		Functions: []string{"function-patch-and-transform"},
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input   string
		want    Type
		wantErr bool
	}{
		{"json", TypeJSON, false},
		{"yaml", TypeYAML, false},
		{"table", TypeTable, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseType(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestJSON_Format(t *testing.T) {
	f := &JSON{}
	out, err := f.Format(sampleResult())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["source"] != "/tmp/compositions" {
		t.Errorf("source = %v, want /tmp/compositions", decoded["source"])
	}
}

func TestYAML_Format(t *testing.T) {
	f := &YAML{}
	out, err := f.Format(sampleResult())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	for _, want := range []string{
		"source: /tmp/compositions",
		"VPC_ec2.aws.upbound.io/v1beta1",
		"function-patch-and-transform",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}
}

func TestTable_Format(t *testing.T) {
	f := &Table{}
	out, err := f.Format(sampleResult())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	for _, want := range []string{
		"MANAGED RESOURCE STATISTICS",
		"FILE MAPPING",
		"PIPELINE FUNCTIONS",
		"VPC_ec2.aws.upbound.io/v1beta1",
		"network.yaml (1 occurrences)",
		"function-patch-and-transform",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		formatterType Type
		wantErr       bool
	}{
		{TypeJSON, false},
		{TypeYAML, false},
		{TypeTable, false},
		{Type("csv"), true},
	}

	for _, tt := range tests {
		f, err := NewFormatter(tt.formatterType)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewFormatter(%q) error = %v, wantErr %v", tt.formatterType, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && f == nil {
			t.Errorf("NewFormatter(%q) returned nil formatter", tt.formatterType)
		}
	}
}
