package extractor

import (
	"regexp"

	"github.com/kernel-kun/crossplane-utils/internal/logger"
)

// Fragment holds the apiVersion/kind pair recovered from a templated text
// fragment that is not valid YAML on its own
type Fragment struct {
	APIVersion string `json:"apiVersion"`
	Kind       string `json:"kind"`
}

// Values are captured up to the first whitespace or template-action brace, so
// lines like `apiVersion: {{ .Values.group }}/v1` yield no match rather than
// a garbage value.
var (
	fragmentAPIVersionPattern = regexp.MustCompile(`apiVersion:\s*([^\s{]+)`)
	fragmentKindPattern       = regexp.MustCompile(`kind:\s*([^\s{]+)`)
)

// ParseTemplatedFragment attempts to locate an apiVersion and a kind value in
// a text fragment that mixes YAML syntax with unresolved template actions.
// Returns nil when either value is missing; it never fails on malformed input.
func ParseTemplatedFragment(content string) *Fragment {
	apiMatch := fragmentAPIVersionPattern.FindStringSubmatch(content)
	kindMatch := fragmentKindPattern.FindStringSubmatch(content)

	if apiMatch == nil || kindMatch == nil {
		logger.Debug().Str("content", content).Msg("no apiVersion/kind pair in templated fragment")
		return nil
	}

	return &Fragment{
		APIVersion: apiMatch[1],
		Kind:       kindMatch[1],
	}
}

// AsDocument converts the fragment into a minimal parsed document so it can
// be fed through the resource scanner like any other document
func (f *Fragment) AsDocument() map[string]interface{} {
	return map[string]interface{}{
		"apiVersion": f.APIVersion,
		"kind":       f.Kind,
	}
}
