package entity

// Department unidad organizacional.
type Department struct {
	ID   int     `db:"id"`
	Name string  `db:"name"`
	Code *string `db:"code"`
}
