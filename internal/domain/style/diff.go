package style

import "sort"

// Diff returns the sorted option names whose (key, value) pair exists in
// preset but not in target. The diff is preset-relative: options the
// target sets beyond the preset's key set are never reported.
func Diff(preset, target Config) []string {
	keys := make([]string, 0)
	for k, v := range preset {
		if tv, ok := target[k]; !ok || tv != v {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Closest selects, among the named presets in order, the one with the
// fewest differing keys. Ties go to the earliest name. Names without an
// entry in diffs are skipped; ok is false when nothing was considered.
func Closest(names []string, diffs map[string][]string) (name string, diff []string, ok bool) {
	for _, n := range names {
		d, loaded := diffs[n]
		if !loaded {
			continue
		}
		if !ok || len(d) < len(diff) {
			name, diff, ok = n, d, true
		}
	}
	return name, diff, ok
}
