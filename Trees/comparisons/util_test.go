package comparisons

import "slices"

func sortedUnique(a []int) []int {
	s := slices.Clone(a)
	slices.Sort(s)
	return slices.Compact(s)
}
