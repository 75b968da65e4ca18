package adaptor

import (
	"sala-cine/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Pelicula *PeliculaHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Pelicula: NewPeliculaHandler(service.Pelicula, log),
	}
}
