package reportes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// TipoArbol es el único tipo de reporte soportado.
const TipoArbol = "Arbol"

const DateLayout = "2006-01-02"

// TreeColumns es el orden de columnas del reporte de árboles.
var TreeColumns = []string{
	"ID_ARBOL",
	"NOMBRE_CIENTIFICO",
	"NOMBRE_COMUN",
	"ALTURA",
	"DIAMETRO",
	"DANO",
	"FORMAFUSTE",
	"OBSERVACIONES",
	"NSUBPARCELA",
	"NRO_DOCUMENTO",
	"ID_RESERVA",
	"FECHA_REGISTRO",
}

// Filter acota por FECHA_REGISTRO: From inclusivo, Until exclusivo. nil = sin límite.
type Filter struct {
	From  *time.Time
	Until *time.Time
}

// Match indica si t cae dentro del filtro.
func (f Filter) Match(t time.Time) bool {
	if f.From != nil && t.Before(*f.From) {
		return false
	}
	if f.Until != nil && !t.Before(*f.Until) {
		return false
	}
	return true
}

// Row es una fila del reporte; serializa como objeto JSON respetando el orden de Columns.
type Row struct {
	Columns []string
	Values  []any
}

func (r Row) Get(col string) (any, bool) {
	for i, c := range r.Columns {
		if c == col && i < len(r.Values) {
			return r.Values[i], true
		}
	}
	return nil, false
}

func (r Row) MarshalJSON() ([]byte, error) {
	if len(r.Columns) != len(r.Values) {
		return nil, fmt.Errorf("reportes: %d columnas y %d valores", len(r.Columns), len(r.Values))
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.Values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
