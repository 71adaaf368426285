package spinner

// Split holds the two parity buckets of a sequence.
//
// Items at even indices (0, 2, 4, ...) land in Odd and items at odd indices
// land in Even. The bucket names are kept as they always were because the
// rotation direction of each group is tied to them.
type Split[T any] struct {
	Even []T
	Odd  []T
}

// EverySecond partitions items by index parity, preserving order within
// each bucket. The input is not modified.
func EverySecond[T any](items []T) Split[T] {
	s := Split[T]{
		Odd:  make([]T, 0, (len(items)+1)/2),
		Even: make([]T, 0, len(items)/2),
	}
	for i, item := range items {
		if i%2 == 0 {
			s.Odd = append(s.Odd, item)
		} else {
			s.Even = append(s.Even, item)
		}
	}
	return s
}

// Interleave restores the original order of a Split produced by EverySecond.
func Interleave[T any](s Split[T]) []T {
	out := make([]T, 0, len(s.Even)+len(s.Odd))
	for i := 0; i < len(s.Odd) || i < len(s.Even); i++ {
		if i < len(s.Odd) {
			out = append(out, s.Odd[i])
		}
		if i < len(s.Even) {
			out = append(out, s.Even[i])
		}
	}
	return out
}

// Len returns the total number of items in both buckets.
func (s Split[T]) Len() int {
	return len(s.Even) + len(s.Odd)
}
