package utils

import "golang.org/x/exp/constraints"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// IndexOfMax returns the index of the first maximum, or -1 for an empty slice.
func IndexOfMax[T constraints.Ordered](values []T) int {
	if len(values) == 0 {
		return -1
	}
	maxIndex := 0
	for i, v := range values[1:] {
		if v > values[maxIndex] {
			maxIndex = i + 1
		}
	}
	return maxIndex
}
