package grid

import "github.com/matzehuels/figgrid/pkg/errors"

// Range selects a half-open run of rows or columns [From, To). Negative
// values count from the end; a zero To means "through the last index".
type Range struct {
	From, To int
}

// All covers an entire axis.
var All = Range{}

// Index selects a single row or column.
func Index(i int) Range { return Range{From: i, To: i + 1} }

func (r Range) resolve(n int, axis string) (int, int, error) {
	from, to := r.From, r.To
	if from < 0 {
		from += n
	}
	switch {
	case to == 0:
		to = n
	case to < 0:
		to += n
	}
	if from < 0 || to > n || from >= to {
		return 0, 0, errors.Configuration("%s range [%d, %d) is outside [0, %d)", axis, r.From, r.To, n)
	}
	return from, to, nil
}
