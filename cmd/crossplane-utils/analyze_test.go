package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kernel-kun/crossplane-utils/internal/analyzer"
)

const compositionFixture = `apiVersion: apiextensions.crossplane.io/v1
kind: Composition
metadata:
  name: network
spec:
  compositeTypeRef:
    apiVersion: example.org/v1alpha1
    kind: XNetwork
  pipeline:
    - step: create-resources
      functionRef:
        name: function-patch-and-transform
      input:
        resources:
          - base:
              apiVersion: ec2.aws.upbound.io/v1beta1
              kind: VPC`

func TestAnalyzeCmd_RunE(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "network.yaml"), []byte(compositionFixture), 0644); err != nil {
		t.Fatal(err)
	}

	analyzeOpts = &analyzer.Options{} // ensure default
	analyzeOpts.OutputFormat = "json" // deterministic output
	analyzeOpts.SkipReport = true
	cmd := analyzeCmd
	r, w, _ := os.Pipe()
	old := os.Stdout
	os.Stdout = w
	cmd.SetContext(context.Background())
	err := cmd.RunE(cmd, []string{dir})
	w.Close()
	os.Stdout = old
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	buf.ReadFrom(r)
	if buf.Len() == 0 {
		t.Error("no output")
	}
	if !strings.Contains(buf.String(), "VPC_ec2.aws.upbound.io/v1beta1") {
		t.Error("output missing extracted association")
	}
}

func TestAnalyzeCmd_RunE_Error(t *testing.T) {
	analyzeOpts = &analyzer.Options{OutputFormat: "table", SkipReport: true}
	cmd := analyzeCmd
	cmd.SetContext(context.Background())
	if err := cmd.RunE(cmd, []string{filepath.Join(os.TempDir(), "nonexistent-compositions")}); err == nil {
		t.Fatal("expected error")
	}
}
