package entity

// Post puesto de trabajo.
type Post struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}
