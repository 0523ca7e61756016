package extractor

import (
	"strings"
)

// markers that open a candidate resource document: the trigger must appear on
// a line, and the confirm marker within that line plus the next two
var resourceMarkers = []struct {
	start   string
	confirm []string
}{
	{start: "apiVersion:", confirm: []string{"kind:", "metadata:"}},
}

// ExtractTemplateContent segments a multi-line template blob into candidate
// resource fragments and parses each through ParseTemplatedFragment.
//
// This is a heuristic document-boundary detector, not a template-language
// parser: template actions are never executed or substituted, the scanner
// only locates text spans that look like resource declarations.
func ExtractTemplateContent(template string) []*Fragment {
	fragments := make([]*Fragment, 0)
	lines := strings.Split(template, "\n")

	var buffer []string
	inDocument := false

	flush := func() {
		if len(buffer) == 0 {
			return
		}
		if f := ParseTemplatedFragment(strings.Join(buffer, " ")); f != nil {
			fragments = append(fragments, f)
		}
		buffer = nil
	}

	for i, line := range lines {
		// Comment lines never open or feed a document
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		// Check for the start of a new resource document
		for _, marker := range resourceMarkers {
			if !strings.Contains(line, marker.start) {
				continue
			}
			window := strings.Join(lines[i:min(i+3, len(lines))], "")
			for _, confirm := range marker.confirm {
				if strings.Contains(window, confirm) {
					if inDocument {
						flush()
					}
					buffer = nil
					inDocument = true
					break
				}
			}
			break
		}

		if inDocument {
			buffer = append(buffer, line)
		}

		if strings.TrimSpace(line) == "---" && inDocument {
			flush()
			inDocument = false
		}
	}

	// Handle the last document
	flush()

	return fragments
}
