package entity

// Hotel is seeded once and immutable at runtime.
type Hotel struct {
	BaseSimple
	Name        string `db:"name"`
	Location    string `db:"location"`
	Description string `db:"description"`
}
