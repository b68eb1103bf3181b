package adopters

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"shelter-api/internal/errs"
)

// Column es una columna de adopters habilitada para filtrar.
type Column string

const (
	ColumnID    Column = "id"
	ColumnName  Column = "name"
	ColumnEmail Column = "email"
)

type columnKind int

const (
	kindInt columnKind = iota
	kindString
)

// filterColumns es el conjunto cerrado de columnas filtrables.
// Cualquier otra key se rechaza antes de construir SQL.
var filterColumns = map[Column]columnKind{
	ColumnID:    kindInt,
	ColumnName:  kindString,
	ColumnEmail: kindString,
}

// Condition es un predicado de igualdad: Column = Value.
// Value es int64 para ColumnID y string para el resto.
type Condition struct {
	Column Column
	Value  any
}

// Filter es un AND de condiciones de igualdad. El zero value no filtra nada.
type Filter struct {
	conds []Condition
}

// NewFilter construye un Filter desde un mapa arbitrario (uso programático).
func NewFilter(m map[string]any) (Filter, error) {
	conds := make([]Condition, 0, len(m))
	seen := make(map[Column]bool, len(m))
	for key, raw := range m {
		col, kind, err := lookupColumn(key)
		if err != nil {
			return Filter{}, err
		}
		if seen[col] {
			return Filter{}, errs.Validation(string(col), "filter must be given exactly once")
		}
		seen[col] = true
		v, err := coerce(col, kind, raw)
		if err != nil {
			return Filter{}, err
		}
		conds = append(conds, Condition{Column: col, Value: v})
	}
	return newFilter(conds), nil
}

// ParseFilter construye un Filter desde un query string (?name=Jane&id=3).
// Cada key debe aparecer una sola vez.
func ParseFilter(q url.Values) (Filter, error) {
	conds := make([]Condition, 0, len(q))
	seen := make(map[Column]bool, len(q))
	for key, values := range q {
		col, kind, err := lookupColumn(key)
		if err != nil {
			return Filter{}, err
		}
		// "name" y "name " normalizan a la misma columna
		if len(values) != 1 || seen[col] {
			return Filter{}, errs.Validation(string(col), "filter must be given exactly once")
		}
		seen[col] = true
		v, err := coerce(col, kind, values[0])
		if err != nil {
			return Filter{}, err
		}
		conds = append(conds, Condition{Column: col, Value: v})
	}
	return newFilter(conds), nil
}

func newFilter(conds []Condition) Filter {
	// orden estable para que el SQL generado sea determinístico
	sort.Slice(conds, func(i, j int) bool { return conds[i].Column < conds[j].Column })
	return Filter{conds: conds}
}

func (f Filter) Empty() bool { return len(f.conds) == 0 }

// Conditions devuelve una copia de los predicados, ordenados por columna.
func (f Filter) Conditions() []Condition {
	out := make([]Condition, len(f.conds))
	copy(out, f.conds)
	return out
}

// Matches evalúa el filtro en memoria. Un email NULL nunca iguala a un valor,
// igual que en SQL.
func (f Filter) Matches(a Adopter) bool {
	for _, c := range f.conds {
		switch c.Column {
		case ColumnID:
			if a.ID != c.Value.(int64) {
				return false
			}
		case ColumnName:
			if a.Name != c.Value.(string) {
				return false
			}
		case ColumnEmail:
			if a.Email == nil || *a.Email != c.Value.(string) {
				return false
			}
		}
	}
	return true
}

func lookupColumn(key string) (Column, columnKind, error) {
	col := Column(strings.TrimSpace(key))
	kind, ok := filterColumns[col]
	if !ok {
		return "", 0, errs.Validation(key, "unknown filter column")
	}
	return col, kind, nil
}

func coerce(col Column, kind columnKind, raw any) (any, error) {
	switch kind {
	case kindInt:
		switch v := raw.(type) {
		case int:
			return int64(v), nil
		case int32:
			return int64(v), nil
		case int64:
			return v, nil
		case string:
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return nil, errs.Validation(string(col), "must be an integer")
			}
			return n, nil
		}
	case kindString:
		if s, ok := raw.(string); ok {
			return s, nil
		}
	}
	return nil, errs.Validation(string(col), fmt.Sprintf("unsupported value type %T", raw))
}
