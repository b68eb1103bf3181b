// Package server es el ciclo de vida del proceso HTTP: abre el pool una vez
// al arrancar y lo cierra una vez al apagar, después de drenar los requests.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"shelter-api/internal/adapters/storage/sqlstore"
	"shelter-api/internal/config"
	"shelter-api/internal/router"

	"github.com/rs/zerolog"
)

type Server struct {
	Config *config.Config
	Logger zerolog.Logger

	// DB es nil con driver=memory.
	DB *sqlstore.DB

	httpServer *http.Server
}

// New abre el pool (si corresponde), corre migraciones si auto_migrate y
// arma el http.Server. No empieza a escuchar.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Server, error) {
	db, err := OpenDB(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if db != nil && cfg.Database.AutoMigrate {
		if err := sqlstore.Migrate(ctx, db, log); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	s := &Server{
		Config: cfg,
		Logger: log,
		DB:     db,
	}

	s.httpServer = &http.Server{
		Addr: cfg.Server.Addr,
		Handler: router.NewRouter(router.Options{
			Logger:      log,
			DB:          db,
			CORSOrigins: cfg.Server.CORSAllowedOrigins,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s, nil
}

// OpenDB abre el pool según cfg.Database. Con driver=memory devuelve nil, nil.
func OpenDB(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*sqlstore.DB, error) {
	if cfg.Database.InMemory() {
		log.Warn().Msg("database.driver=memory: data is not persisted")
		return nil, nil
	}

	dialect, err := sqlstore.ParseDialect(cfg.Database.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sqlstore.Open(ctx, sqlstore.Options{
		Dialect:         dialect,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		LogQueries:      cfg.Database.LogQueries,
		Logger:          log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	log.Info().Str("dialect", string(dialect)).Msg("database pool ready")
	return db, nil
}

func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start bloquea hasta que el servidor se cierra. Un Shutdown no cuenta como error.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("http server not initialized")
	}

	s.Logger.Info().
		Str("addr", s.Config.Server.Addr).
		Str("env", s.Config.Env).
		Str("driver", s.Config.Database.Driver).
		Msg("starting server")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown deja de aceptar conexiones, espera los requests en curso y
// recién entonces cierra el pool.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error

	if err := s.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown HTTP server: %w", err))
	}

	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	s.Logger.Info().Msg("server stopped")
	return errors.Join(errs...)
}
