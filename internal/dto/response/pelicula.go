package response

import (
	"time"

	"sala-cine/internal/data/entity"
)

type PeliculaResponse struct {
	ID              int64     `json:"id"`
	Titulo          string    `json:"titulo"`
	Descripcion     *string   `json:"descripcion"`
	DuracionMinutos int       `json:"duracionMinutos"`
	FechaEstreno    time.Time `json:"fechaEstreno"`
	Activo          bool      `json:"activo"`
}

// Helper converters
func PeliculaToResponse(pelicula *entity.Pelicula) PeliculaResponse {
	return PeliculaResponse{
		ID:              pelicula.ID,
		Titulo:          pelicula.Titulo,
		Descripcion:     pelicula.Descripcion,
		DuracionMinutos: pelicula.DuracionMinutos,
		FechaEstreno:    pelicula.FechaEstreno,
		Activo:          pelicula.Activo,
	}
}

// PeliculasToResponse never returns nil so lists encode as [] instead of null
func PeliculasToResponse(peliculas []*entity.Pelicula) []PeliculaResponse {
	responses := make([]PeliculaResponse, len(peliculas))
	for i, pelicula := range peliculas {
		responses[i] = PeliculaToResponse(pelicula)
	}
	return responses
}
