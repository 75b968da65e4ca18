package wire

import (
	"sala-cine/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePelicula(r chi.Router, peliculaHandler *adaptor.PeliculaHandler) {
	r.Route("/api/peliculas", func(r chi.Router) {
		// Filtered queries go before {id} so the static segments win
		r.Get("/buscar/nombre", peliculaHandler.BuscarPorNombre)
		r.Get("/buscar/fecha-publicacion", peliculaHandler.BuscarPorFechaPublicacion)
		r.Get("/sala/estado", peliculaHandler.EstadoSala)

		r.Get("/", peliculaHandler.ObtenerTodas)
		r.Get("/{id}", peliculaHandler.ObtenerPorID)
		r.Post("/", peliculaHandler.Crear)
		r.Put("/", peliculaHandler.Actualizar)
		r.Delete("/{id}", peliculaHandler.Eliminar)
	})
}
