package entity

type Sala struct {
	Base
	Nombre    string `db:"nombre"`
	Capacidad int    `db:"capacidad"`
}
