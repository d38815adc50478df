package entity

// Designation cargo con nivel jerárquico opcional.
type Designation struct {
	ID    int    `db:"id"`
	Name  string `db:"name"`
	Level *int   `db:"level"`
}
