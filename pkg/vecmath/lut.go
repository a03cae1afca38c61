package vecmath

import "sort"

// Lerpable values can be linearly interpolated, matching the original's
// `Lerpable` trait (blackhole/src/math.rs).
type Lerpable[T any] interface {
	Lerp(other T, factor float64) T
}

type lutEntry[T any] struct {
	key   float64
	value T
}

// LookupTable is a process-wide, read-only-after-construction table that
// linearly interpolates between sorted (key, value) samples. Used for the
// Gaussian inverse-CDF and blackbody-by-temperature tables (spec §9 LUTs).
type LookupTable[T Lerpable[T]] struct {
	entries []lutEntry[T]
}

// NewLookupTableFromSorted builds a LookupTable from entries already sorted
// ascending by key.
func NewLookupTableFromSorted[T Lerpable[T]](keys []float64, values []T) LookupTable[T] {
	entries := make([]lutEntry[T], len(keys))
	for i := range keys {
		entries[i] = lutEntry[T]{key: keys[i], value: values[i]}
	}
	return LookupTable[T]{entries: entries}
}

// NewLookupTable builds a LookupTable from unsorted (key, value) pairs,
// sorting them first.
func NewLookupTable[T Lerpable[T]](keys []float64, values []T) LookupTable[T] {
	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return keys[idx[a]] < keys[idx[b]] })

	sortedKeys := make([]float64, len(keys))
	sortedValues := make([]T, len(values))
	for i, j := range idx {
		sortedKeys[i] = keys[j]
		sortedValues[i] = values[j]
	}
	return NewLookupTableFromSorted(sortedKeys, sortedValues)
}

// Lookup returns the linearly-interpolated value at x, clamping to the
// table's first/last entry outside its range.
func (lut LookupTable[T]) Lookup(x float64) T {
	n := len(lut.entries)
	if n == 0 {
		var zero T
		return zero
	}
	if x <= lut.entries[0].key {
		return lut.entries[0].value
	}
	if x >= lut.entries[n-1].key {
		return lut.entries[n-1].value
	}

	i := sort.Search(n, func(i int) bool { return lut.entries[i].key >= x })
	lo, hi := lut.entries[i-1], lut.entries[i]
	factor := (x - lo.key) / (hi.key - lo.key)
	return lo.value.Lerp(hi.value, factor)
}

// f64 is Lerpable so plain float64 tables (the Gaussian inverse-CDF) can use
// LookupTable directly.
type f64 float64

func (f f64) Lerp(other f64, factor float64) f64 {
	return f64(float64(f)*(1-factor) + float64(other)*factor)
}

// vec3Lerpable adapts Vec3 to Lerpable for color LUTs (e.g. blackbody).
type vec3Lerpable Vec3

func (v vec3Lerpable) Lerp(other vec3Lerpable, factor float64) vec3Lerpable {
	return vec3Lerpable(Vec3(v).Lerp(Vec3(other), factor))
}
