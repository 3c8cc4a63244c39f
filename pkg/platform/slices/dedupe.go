// Package slices provides small slice utilities.
package slices

// DedupeInts removes duplicates from a slice of ids. Order is preserved and
// the first occurrence wins.
//
// Example:
//
//	DedupeInts([]int64{1, 2, 1, 3})
//	// Returns: []int64{1, 2, 3}
func DedupeInts(values []int64) []int64 {
	if len(values) == 0 {
		return values
	}

	seen := make(map[int64]struct{}, len(values))
	result := make([]int64, 0, len(values))

	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}

	return result
}
