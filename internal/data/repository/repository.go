package repository

import (
	"sala-cine/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Pelicula     PeliculaRepository
	Sala         SalaRepository
	PeliculaSala PeliculaSalaRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Pelicula:     NewPeliculaRepository(db, log),
		Sala:         NewSalaRepository(db, log),
		PeliculaSala: NewPeliculaSalaRepository(db, log),
	}
}
