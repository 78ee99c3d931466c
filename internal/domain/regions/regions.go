package regions

import "strings"

// departamentos es la lista fija de departamentos de Colombia usada en registro y en el
// selector de municipios del frontend.
var departamentos = []string{
	"Amazonas", "Antioquia", "Arauca", "Atlántico", "Bolívar", "Boyacá", "Caldas", "Caquetá",
	"Casanare", "Cauca", "Cesar", "Chocó", "Córdoba", "Cundinamarca", "Guainía", "Guaviare",
	"Huila", "La Guajira", "Magdalena", "Meta", "Nariño", "Norte de Santander", "Putumayo",
	"Quindío", "Risaralda", "San Andrés y Providencia", "Santander", "Sucre", "Tolima",
	"Valle del Cauca", "Vaupés", "Vichada",
}

// Region es un departamento con id 1-based (compatibilidad con el frontend).
type Region struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// Names devuelve una copia de la lista.
func Names() []string {
	out := make([]string, len(departamentos))
	copy(out, departamentos)
	return out
}

func List() []Region {
	out := make([]Region, 0, len(departamentos))
	for i, d := range departamentos {
		out = append(out, Region{ID: i + 1, Nombre: d})
	}
	return out
}

// Canonical devuelve el nombre tal como está en la lista (comparación case-insensitive).
func Canonical(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	for _, d := range departamentos {
		if strings.EqualFold(d, name) {
			return d, true
		}
	}
	return "", false
}
