package record

// Rating is a habit rating in the closed range -2..3.
type Rating int8

const (
	RatingMin Rating = -2
	RatingMax Rating = 3
)

// Valid reports whether r lies in the rating range.
func (r Rating) Valid() bool {
	return r >= RatingMin && r <= RatingMax
}

// RatingFrom converts a stored integer, rating anything outside the range 0.
func RatingFrom(v int) Rating {
	if v < int(RatingMin) || v > int(RatingMax) {
		return 0
	}
	return Rating(v)
}
