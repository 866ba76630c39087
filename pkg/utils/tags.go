package utils

import "sort"

// SortedKVPairs flattens a tag map into a ["key1", "value1", ...] slice
// ordered by key. The stable order makes log output and registered
// metric label sets deterministic.
func SortedKVPairs(tags map[string]string) []string {
	keys := make([]string, 0, len(tags))
	for key := range tags {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	kvs := make([]string, 0, 2*len(tags))
	for _, key := range keys {
		kvs = append(kvs, key, tags[key])
	}
	return kvs
}

// AddStringIfMissing adds a string to a slice of strings
// returns true, list with appended string if string was not in the list
// returns false, old list if string was already in the list
func AddStringIfMissing(slice []string, s string) (bool, []string) {
	for _, item := range slice {
		if item == s {
			return false, slice
		}
	}
	return true, append(slice, s)
}
