package capturas

import "time"

// Subplot es una de las cuatro subparcelas fijas alrededor del punto de la reserva.
type Subplot struct {
	ID        int    `json:"id"`
	Direccion string `json:"direccion"`
	Distancia int    `json:"distancia"`
}

var subplots = []Subplot{
	{ID: 1, Direccion: "Norte", Distancia: 80},
	{ID: 2, Direccion: "Sur", Distancia: 80},
	{ID: 3, Direccion: "Este", Distancia: 80},
	{ID: 4, Direccion: "Oeste", Distancia: 80},
}

// Subplots devuelve una copia de las subparcelas disponibles.
func Subplots() []Subplot {
	out := make([]Subplot, len(subplots))
	copy(out, subplots)
	return out
}

func validSubplot(id int) bool {
	for _, s := range subplots {
		if s.ID == id {
			return true
		}
	}
	return false
}

// Tree es una fila de ARBOL.
type Tree struct {
	ID               int64
	NombreCientifico string
	NombreComun      string
	Altura           float64
	Diametro         float64
	Dano             string
	FormaFuste       string
	Observaciones    string
	NSubparcela      int
	NroDocumento     string
	IDReserva        int64
	FechaRegistro    time.Time
}

// Plant es una fila de PLANTA.
type Plant struct {
	ID            int64
	Tamano        float64
	NombreComun   string
	Observaciones string
	NSubparcela   int
	NroDocumento  string
	IDReserva     int64
	FechaRegistro time.Time
}
