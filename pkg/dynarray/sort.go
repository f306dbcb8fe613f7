package dynarray

import "go.llib.dev/frameless/pkg/compare"

// SortThreshold is the largest length that Sort still handles with merge sort.
// Longer arrays are sorted with an in-place quicksort.
const SortThreshold = 50

// Sort orders the elements according to cmp.
//
// cmp must return a negative number when a < b, zero when they are equal,
// and a positive number when a > b.
//
// Arrays up to SortThreshold elements are sorted stably.
// Above the threshold, the sort is in place and equal elements may be reordered.
func (a *Array[T]) Sort(cmp func(a, b T) int) error {
	if cmp == nil {
		return ErrInvalidArgument.F("nil comparison function given to Sort")
	}
	if a.Len() < 2 {
		return nil
	}
	if a.size <= SortThreshold {
		aux := make([]T, a.size)
		a.mergeSort(0, a.size-1, cmp, aux)
		return nil
	}
	a.quickSort(0, a.size-1, cmp)
	return nil
}

func (a *Array[T]) mergeSort(low, high int, cmp func(a, b T) int, aux []T) {
	if high <= low {
		return
	}
	middle := low + (high-low)/2
	a.mergeSort(low, middle, cmp, aux)
	a.mergeSort(middle+1, high, cmp, aux)
	a.merge(low, middle, high, cmp, aux)
}

// merge combines the sorted [low, middle] and [middle+1, high] ranges.
// On ties the left element wins, which keeps the sort stable.
// Whatever remains from the right half is already in its final place.
func (a *Array[T]) merge(low, middle, high int, cmp func(a, b T) int, aux []T) {
	copy(aux[low:high+1], a.buffer[low:high+1])
	var (
		i = low
		j = middle + 1
		k = low
	)
	for i <= middle && j <= high {
		if compare.IsLessOrEqual(cmp(aux[i], aux[j])) {
			a.buffer[k] = aux[i]
			i++
		} else {
			a.buffer[k] = aux[j]
			j++
		}
		k++
	}
	for i <= middle {
		a.buffer[k] = aux[i]
		k++
		i++
	}
}

// quickSort recurses into the smaller partition and loops over the larger one.
// Stack depth is O(log n) regardless of the input order.
func (a *Array[T]) quickSort(low, high int, cmp func(a, b T) int) {
	for low < high {
		p := a.partition(low, high, cmp)
		if p-low < high-p {
			a.quickSort(low, p-1, cmp)
			low = p + 1
		} else {
			a.quickSort(p+1, high, cmp)
			high = p - 1
		}
	}
}

// partition is a Lomuto partition around the last element of [low, high].
// It returns the final index of the pivot.
func (a *Array[T]) partition(low, high int, cmp func(a, b T) int) int {
	pivot := a.buffer[high]
	i := low - 1
	for j := low; j < high; j++ {
		if compare.IsLess(cmp(a.buffer[j], pivot)) {
			i++
			a.swap(i, j)
		}
	}
	a.swap(i+1, high)
	return i + 1
}

func (a *Array[T]) swap(i, j int) {
	a.buffer[i], a.buffer[j] = a.buffer[j], a.buffer[i]
}
