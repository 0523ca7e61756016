// Package aggregator turns a flat list of extraction records into
// deduplicated occurrence statistics and per-resource file mappings.
package aggregator

import (
	"fmt"
	"sort"

	"github.com/kernel-kun/crossplane-utils/internal/types"
)

// statisticKey is the distinct tuple a statistic row is grouped by
type statisticKey struct {
	kindAPIVersion string
	kind           string
	apiVersion     string
	category       string
}

// Statistics groups records by (kindApiVersion, kind, apiVersion, category)
// and counts total occurrences, distinct files and distinct compositions per
// group. Rows are sorted descending by occurrences; ties keep first-seen
// order. The sum of TotalOccurrences always equals len(records).
func Statistics(records []types.ExtractionRecord) []types.AggregatedStatistic {
	type group struct {
		occurrences  int
		files        map[string]struct{}
		compositions map[string]struct{}
		firstSeen    int
	}

	groups := make(map[statisticKey]*group)
	order := make([]statisticKey, 0)

	for _, record := range records {
		key := statisticKey{
			kindAPIVersion: record.Resource.KindAPIVersion,
			kind:           record.Resource.Kind,
			apiVersion:     record.Resource.APIVersion,
			category:       record.Resource.Category,
		}
		g, ok := groups[key]
		if !ok {
			g = &group{
				files:        make(map[string]struct{}),
				compositions: make(map[string]struct{}),
				firstSeen:    len(order),
			}
			groups[key] = g
			order = append(order, key)
		}
		g.occurrences++
		g.files[record.FilePath] = struct{}{}
		g.compositions[record.CompositionKindAPIVersion] = struct{}{}
	}

	statistics := make([]types.AggregatedStatistic, 0, len(order))
	for _, key := range order {
		g := groups[key]
		statistics = append(statistics, types.AggregatedStatistic{
			KindAPIVersion:      key.kindAPIVersion,
			Kind:                key.kind,
			APIVersion:          key.apiVersion,
			Category:            key.category,
			TotalOccurrences:    g.occurrences,
			FoundInNFiles:       len(g.files),
			UsedByNCompositions: len(g.compositions),
		})
	}

	// Descending by occurrences; SliceStable keeps first-seen order for ties
	sort.SliceStable(statistics, func(i, j int) bool {
		return statistics[i].TotalOccurrences > statistics[j].TotalOccurrences
	})

	return statistics
}

// FileMapping groups records by kindApiVersion and tallies occurrences per
// file. Locations are formatted "path (N occurrences)" and sorted descending
// by count, ties by path. Entries are sorted by kindApiVersion.
func FileMapping(records []types.ExtractionRecord) []types.FileMappingEntry {
	perResource := make(map[string]map[string]int)
	order := make([]string, 0)

	for _, record := range records {
		key := record.Resource.KindAPIVersion
		counts, ok := perResource[key]
		if !ok {
			counts = make(map[string]int)
			perResource[key] = counts
			order = append(order, key)
		}
		counts[record.FilePath]++
	}
	sort.Strings(order)

	entries := make([]types.FileMappingEntry, 0, len(order))
	for _, key := range order {
		counts := perResource[key]

		type fileCount struct {
			path  string
			count int
		}
		files := make([]fileCount, 0, len(counts))
		total := 0
		for path, count := range counts {
			files = append(files, fileCount{path: path, count: count})
			total += count
		}
		sort.Slice(files, func(i, j int) bool {
			if files[i].count != files[j].count {
				return files[i].count > files[j].count
			}
			return files[i].path < files[j].path
		})

		locations := make([]string, 0, len(files))
		for _, f := range files {
			locations = append(locations, fmt.Sprintf("%s (%d occurrences)", f.path, f.count))
		}

		entries = append(entries, types.FileMappingEntry{
			KindAPIVersion:   key,
			TotalFiles:       len(files),
			TotalOccurrences: total,
			FileLocations:    locations,
		})
	}

	return entries
}
