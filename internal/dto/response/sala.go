package response

type EstadoSalaResponse struct {
	Mensaje string `json:"mensaje"`
}
