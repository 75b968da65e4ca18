package entity

import (
	"time"
)

// PeliculaSala is a scheduled screening of a movie in a room
type PeliculaSala struct {
	Base
	PeliculaID   int64     `db:"pelicula_id"`
	SalaID       int64     `db:"sala_id"`
	FechaFuncion time.Time `db:"fecha_funcion"`
}
