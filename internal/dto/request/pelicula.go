package request

import (
	"time"
)

type CrearPeliculaRequest struct {
	Titulo          string    `json:"titulo" validate:"required,min=1,max=100"`
	Descripcion     *string   `json:"descripcion,omitempty" validate:"omitempty,max=500"`
	DuracionMinutos int       `json:"duracionMinutos" validate:"required,min=1,max=500"`
	FechaEstreno    time.Time `json:"fechaEstreno" validate:"required"`
}

type ActualizarPeliculaRequest struct {
	ID              int64     `json:"id" validate:"required,min=1"`
	Titulo          string    `json:"titulo" validate:"required,min=1,max=100"`
	Descripcion     *string   `json:"descripcion,omitempty" validate:"omitempty,max=500"`
	DuracionMinutos int       `json:"duracionMinutos" validate:"required,min=1,max=500"`
	FechaEstreno    time.Time `json:"fechaEstreno" validate:"required"`
}
