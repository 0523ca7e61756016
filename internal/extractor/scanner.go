package extractor

import (
	"regexp"
	"sort"
	"strings"

	"github.com/kernel-kun/crossplane-utils/internal/types"
)

const (
	crossplaneDomain = ".crossplane.io/"
	upboundDomain    = ".upbound.io/"

	// placeholder used wherever a value is missing
	notAvailable = "N/A"
	// categoryOther is assigned when no domain suffix matches
	categoryOther = "other"
)

var (
	crossplaneCategoryPattern = regexp.MustCompile(`([^.]+)\.crossplane\.io`)
	upboundCategoryPattern    = regexp.MustCompile(`([^.]+)\.upbound\.io`)
)

// IsManagedAPIVersion reports whether an apiVersion belongs to the Crossplane
// or Upbound domains
func IsManagedAPIVersion(apiVersion string) bool {
	return strings.Contains(apiVersion, crossplaneDomain) ||
		strings.Contains(apiVersion, upboundDomain)
}

// Category extracts the API group label immediately preceding a recognized
// domain suffix, e.g. "aws" for "aws.upbound.io/v1beta1". Unrecognized or
// empty input yields "other".
func Category(apiVersion string) string {
	if apiVersion == "" {
		return categoryOther
	}

	if m := crossplaneCategoryPattern.FindStringSubmatch(apiVersion); m != nil {
		return m[1]
	}
	if m := upboundCategoryPattern.FindStringSubmatch(apiVersion); m != nil {
		return m[1]
	}
	return categoryOther
}

// ScanResources walks a parsed document and collects every apiVersion value
// in the managed domains, paired with the sibling kind from the same mapping.
// Associations are never deduplicated: repeated finds are repeated
// occurrences, and the aggregator counts them.
//
// The traversal uses an explicit work stack rather than recursion, so
// pathologically deep documents cannot blow the call stack.
func ScanResources(doc interface{}) []types.ResourceAssociation {
	associations := make([]types.ResourceAssociation, 0)

	stack := []interface{}{doc}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch v := node.(type) {
		case map[string]interface{}:
			if apiVersion, ok := v["apiVersion"].(string); ok && IsManagedAPIVersion(apiVersion) {
				kind := notAvailable
				if k, ok := v["kind"].(string); ok {
					kind = k
				}
				associations = append(associations, types.ResourceAssociation{
					KindAPIVersion: kind + "_" + apiVersion,
					Kind:           kind,
					APIVersion:     apiVersion,
					Category:       Category(apiVersion),
				})
			}

			// Push children in reverse key order so they pop in key order
			keys := make([]string, 0, len(v))
			for key := range v {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for i := len(keys) - 1; i >= 0; i-- {
				stack = append(stack, v[keys[i]])
			}

		case []interface{}:
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, v[i])
			}
		}
	}

	return associations
}
