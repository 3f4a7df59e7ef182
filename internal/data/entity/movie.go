package entity

// Movie is a catalog record. ID is assigned by the store on insert.
type Movie struct {
	ID             int64   `db:"id"`
	Title          string  `db:"title"`
	Year           int     `db:"year"`
	Price          float64 `db:"price"`
	AgeRestriction int     `db:"age_restriction"`
}
