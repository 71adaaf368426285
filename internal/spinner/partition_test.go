package spinner

import (
	"reflect"
	"testing"
)

func TestEverySecond(t *testing.T) {
	tests := []struct {
		name     string
		items    []int
		wantOdd  []int
		wantEven []int
	}{
		{"empty", nil, []int{}, []int{}},
		{"one", []int{10}, []int{10}, []int{}},
		{"two", []int{10, 11}, []int{10}, []int{11}},
		{"four", []int{10, 11, 12, 13}, []int{10, 12}, []int{11, 13}},
		{"five", []int{1, 2, 3, 4, 5}, []int{1, 3, 5}, []int{2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := EverySecond(tt.items)
			if !reflect.DeepEqual(s.Odd, tt.wantOdd) {
				t.Errorf("Odd: got %v, want %v", s.Odd, tt.wantOdd)
			}
			if !reflect.DeepEqual(s.Even, tt.wantEven) {
				t.Errorf("Even: got %v, want %v", s.Even, tt.wantEven)
			}
		})
	}
}

func TestEverySecondLengths(t *testing.T) {
	for n := 0; n <= 17; n++ {
		items := make([]string, n)
		for i := range items {
			items[i] = string(rune('a' + i))
		}

		s := EverySecond(items)
		if len(s.Odd) != (n+1)/2 {
			t.Errorf("n=%d: len(Odd) = %d, want %d", n, len(s.Odd), (n+1)/2)
		}
		if len(s.Even) != n/2 {
			t.Errorf("n=%d: len(Even) = %d, want %d", n, len(s.Even), n/2)
		}
		if s.Len() != n {
			t.Errorf("n=%d: Len() = %d", n, s.Len())
		}

		back := Interleave(s)
		if len(back) != n {
			t.Fatalf("n=%d: Interleave returned %d items", n, len(back))
		}
		for i := range items {
			if back[i] != items[i] {
				t.Errorf("n=%d: Interleave[%d] = %q, want %q", n, i, back[i], items[i])
			}
		}
	}
}

func TestEverySecondLeavesInputAlone(t *testing.T) {
	items := []int{1, 2, 3}
	s := EverySecond(items)
	s.Odd[0] = 99

	if items[0] != 1 {
		t.Errorf("input modified: %v", items)
	}
}
