package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"
)

// Build metadata, stamped via -ldflags at release time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionOutput string

// VersionInfo groups the build metadata for structured output
type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

// render returns the version info in the requested format
func (i VersionInfo) render(format string) (string, error) {
	switch format {
	case "json":
		out, err := json.MarshalIndent(i, "", "  ")
		if err != nil {
			return "", fmt.Errorf("error formatting version to JSON: %w", err)
		}
		return string(out), nil
	case "yaml":
		out, err := yaml.Marshal(i)
		if err != nil {
			return "", fmt.Errorf("error formatting version to YAML: %w", err)
		}
		return string(out), nil
	default:
		return fmt.Sprintf("crossplane-utils %s (commit %s, built %s)", i.Version, i.Commit, i.Date), nil
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := VersionInfo{Version: version, Commit: commit, Date: date}
		out, err := info.render(versionOutput)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	versionCmd.Flags().StringVarP(&versionOutput, "output", "o", "plain", "output format (plain, json, yaml)")
}
