package sqlstore

import (
	"fmt"
	"strings"
)

// Dialect agrupa lo que cambia entre motores: driver, placeholders,
// soporte de RETURNING y el dialecto de goose.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
	MySQL    Dialect = "mysql"
)

func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(strings.TrimSpace(s))); d {
	case Postgres, SQLite, MySQL:
		return d, nil
	case "postgresql", "pgx":
		return Postgres, nil
	case "sqlite3":
		return SQLite, nil
	default:
		return "", fmt.Errorf("sqlstore: unsupported dialect %q", s)
	}
}

func (d Dialect) driverName() string {
	switch d {
	case Postgres:
		return "pgx"
	case SQLite:
		return "sqlite"
	default:
		return "mysql"
	}
}

// placeholder devuelve el marcador del argumento n (1-based).
func (d Dialect) placeholder(n int) string {
	if d == Postgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// returning indica si INSERT/UPDATE ... RETURNING está disponible.
// MySQL no lo tiene: se relee la fila por id.
func (d Dialect) returning() bool {
	return d != MySQL
}

func (d Dialect) gooseDialect() string {
	switch d {
	case SQLite:
		return "sqlite3"
	default:
		return string(d)
	}
}
