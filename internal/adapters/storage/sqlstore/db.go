package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	zerologadapter "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

const defaultPingTimeout = 3 * time.Second

// DB es el pool compartido del proceso. Se crea una vez al arrancar (Open)
// y se cierra una vez al apagar, después de drenar el servidor HTTP.
type DB struct {
	*sql.DB
	dialect Dialect
}

// New envuelve un *sql.DB ya abierto (p.ej. sqlmock en tests).
func New(db *sql.DB, d Dialect) *DB {
	return &DB{DB: db, dialect: d}
}

func (db *DB) Dialect() Dialect { return db.dialect }

type Options struct {
	Dialect Dialect
	DSN     string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration

	// LogQueries activa el tracer de pgx (sólo Postgres).
	LogQueries bool
	Logger     zerolog.Logger
}

// Open abre el pool según el dialecto y verifica la conexión con un ping.
func Open(ctx context.Context, opts Options) (*DB, error) {
	if strings.TrimSpace(opts.DSN) == "" {
		return nil, fmt.Errorf("sqlstore: empty dsn")
	}

	var (
		db  *sql.DB
		err error
	)
	switch opts.Dialect {
	case Postgres:
		db, err = openPostgres(opts)
	case SQLite:
		db, err = sql.Open(SQLite.driverName(), sqliteDSN(opts.DSN))
	case MySQL:
		db, err = openMySQL(opts.DSN)
	default:
		return nil, fmt.Errorf("sqlstore: unsupported dialect %q", opts.Dialect)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open %s: %w", opts.Dialect, err)
	}

	if opts.Dialect == SQLite && isMemoryDSN(opts.DSN) {
		// cada conexión a :memory: es una base distinta: una sola conexión, sin reciclar
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		applyPool(db, opts)
	}

	timeout := opts.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlstore: ping %s: %w", opts.Dialect, err)
	}

	if opts.Dialect == SQLite {
		if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlstore: enable foreign keys: %w", err)
		}
	}

	return &DB{DB: db, dialect: opts.Dialect}, nil
}

func openPostgres(opts Options) (*sql.DB, error) {
	cfg, err := pgx.ParseConfig(opts.DSN)
	if err != nil {
		return nil, err
	}
	if opts.LogQueries {
		cfg.Tracer = &tracelog.TraceLog{
			Logger:   zerologadapter.NewLogger(opts.Logger),
			LogLevel: tracelog.LogLevelDebug,
		}
	}
	return stdlib.OpenDB(*cfg), nil
}

func openMySQL(dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	// RowsAffected debe contar filas encontradas, no sólo cambiadas,
	// para que un UPDATE idéntico no parezca "not found".
	cfg.ClientFoundRows = true
	cfg.ParseTime = true

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, err
	}
	return sql.OpenDB(connector), nil
}

// defaults razonables; se pisan desde config
func applyPool(db *sql.DB, opts Options) {
	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 10
	}
	maxIdle := opts.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = 5
	}
	idle := opts.ConnMaxIdleTime
	if idle <= 0 {
		idle = 5 * time.Minute
	}
	life := opts.ConnMaxLifetime
	if life <= 0 {
		life = 30 * time.Minute
	}

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxIdleTime(idle)
	db.SetConnMaxLifetime(life)
}

func isMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// sqliteDSN agrega foreign_keys a cada conexión del pool en bases de archivo.
func sqliteDSN(dsn string) string {
	if isMemoryDSN(dsn) || strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}
