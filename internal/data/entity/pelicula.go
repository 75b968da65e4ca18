package entity

import (
	"time"
)

type Pelicula struct {
	Base
	Titulo          string    `db:"titulo"`
	Descripcion     *string   `db:"descripcion"`
	DuracionMinutos int       `db:"duracion_minutos"`
	FechaEstreno    time.Time `db:"fecha_estreno"`
}
