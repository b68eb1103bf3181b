package sqlstore

import "strings"

// query arma SQL con placeholders numerados según el dialecto.
// Los argumentos se agregan en el mismo orden en que aparecen en el texto.
type query struct {
	d    Dialect
	sb   strings.Builder
	args []any
}

func newQuery(d Dialect, base string) *query {
	q := &query{d: d}
	q.sb.WriteString(base)
	return q
}

func (q *query) write(s string) *query {
	q.sb.WriteString(s)
	return q
}

// arg registra v y devuelve su placeholder.
func (q *query) arg(v any) string {
	q.args = append(q.args, v)
	return q.d.placeholder(len(q.args))
}

func (q *query) String() string { return q.sb.String() }

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullInt(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}
