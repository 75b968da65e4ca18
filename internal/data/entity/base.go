package entity

// Base carries identity and the soft-delete flag shared by every table.
// Rows are never physically removed; Activo = false marks deletion.
type Base struct {
	ID     int64 `db:"id"`
	Activo bool  `db:"activo"`
}
