package usecase

import (
	"sala-cine/internal/data/repository"
	"sala-cine/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Pelicula PeliculaService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Pelicula: NewPeliculaService(repo, log),
	}
}
