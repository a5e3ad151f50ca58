// Package idset provides sorted, deduplicated sets of int ids, built around
// sort.Search binary search. It backs the places the hull needs a
// strictly-increasing adjacency or deletion list: a point's or face's
// conflict adjacency, and the run-long deleted-vertex/edge/face
// accumulators that feed the final compaction remap.
package idset

import "sort"

// Insert adds v into the sorted, deduplicated slice ids and returns the new
// slice along with the index v ended up at. If v is already present, ids is
// returned unchanged and index is its existing position.
func Insert(ids []int, v int) (out []int, index int) {
	i := sort.Search(len(ids), func(i int) bool { return ids[i] >= v })
	if i < len(ids) && ids[i] == v {
		return ids, i
	}
	ids = append(ids, 0)
	copy(ids[i+1:], ids[i:])
	ids[i] = v
	return ids, i
}

// Remove deletes v from the sorted slice ids, if present. ok reports whether
// v was found and removed.
func Remove(ids []int, v int) (out []int, ok bool) {
	i := sort.Search(len(ids), func(i int) bool { return ids[i] >= v })
	if i >= len(ids) || ids[i] != v {
		return ids, false
	}
	return append(ids[:i], ids[i+1:]...), true
}

// Contains reports whether v is present in the sorted slice ids.
func Contains(ids []int, v int) bool {
	i := sort.Search(len(ids), func(i int) bool { return ids[i] >= v })
	return i < len(ids) && ids[i] == v
}

// Merge returns the sorted, deduplicated union of two sorted slices a and b,
// via a classical two-finger merge. Neither input is mutated.
func Merge(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Remap renumbers every id in ids to account for the sorted, deduplicated
// set deleted: each surviving id r becomes r minus the count of deleted ids
// that are <= r. Deleted must be sorted ascending; ids that themselves
// appear in deleted are dropped from the output.
func Remap(ids []int, deleted []int) []int {
	out := make([]int, 0, len(ids))
	for _, r := range ids {
		if Contains(deleted, r) {
			continue
		}
		shift := sort.Search(len(deleted), func(i int) bool { return deleted[i] > r })
		out = append(out, r-shift)
	}
	return out
}

// RemapOne renumbers a single surviving id the same way Remap does, for
// callers that only need to translate one cross-reference at a time (e.g.
// a face's innerEdge field during mesh compaction).
func RemapOne(r int, deleted []int) int {
	shift := sort.Search(len(deleted), func(i int) bool { return deleted[i] > r })
	return r - shift
}
