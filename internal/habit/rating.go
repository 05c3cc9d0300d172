package habit

import "github.com/carson-networks/flow-server/internal/record"

// nextRating is the full transition table for one tap: 0 -> 1 -> 2 -> 3 -> -2 -> -1 -> 0.
var nextRating = map[record.Rating]record.Rating{
	0:  1,
	1:  2,
	2:  3,
	3:  -2,
	-2: -1,
	-1: 0,
}

// NextRating returns the rating that follows r when the habit is tapped.
// Values outside the rating range restart the cycle at 1, as if they were 0.
func NextRating(r record.Rating) record.Rating {
	if next, ok := nextRating[r]; ok {
		return next
	}
	return nextRating[0]
}
