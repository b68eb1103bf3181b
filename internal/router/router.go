package router

import (
	"context"
	"net/http"
	"time"

	_ "shelter-api/docs"
	mem "shelter-api/internal/adapters/storage/memory"
	"shelter-api/internal/adapters/storage/sqlstore"
	"shelter-api/internal/domain/adopters"
	"shelter-api/internal/domain/dogs"
	"shelter-api/internal/middleware"
	"shelter-api/internal/platform/respond"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	APIPrefix     = "/api/v1"
	healthTimeout = 2 * time.Second
)

type Options struct {
	Logger zerolog.Logger

	// Opcional: si viene, usa el pool SQL. Si no, in-memory.
	DB *sqlstore.DB

	// Opcional: con nil se arma un store nuevo. Los tests lo pasan para sembrar datos.
	Memory *mem.Store

	CORSOrigins []string
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(opts.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CORS(opts.CORSOrigins))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]any{
			"status":  http.StatusOK,
			"message": "API is running",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})
	r.Get("/health", healthHandler(opts.DB))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		adopterRepo adopters.Repository
		dogRepo     dogs.Repository
	)

	if opts.DB != nil {
		adopterRepo = sqlstore.NewAdoptersRepo(opts.DB)
		dogRepo = sqlstore.NewDogsRepo(opts.DB)
	} else {
		store := opts.Memory
		if store == nil {
			store = mem.NewStore()
		}
		adopterRepo = mem.NewAdopterRepo(store)
		dogRepo = mem.NewDogRepo(store)
	}

	// Services por módulo
	adoptersSvc := adopters.NewService(adopterRepo)
	dogsSvc := dogs.NewService(dogRepo)

	// Rutas por módulo; adopters primero porque dogs cuelga /adopters/{id}/dogs
	r.Route(APIPrefix, func(api chi.Router) {
		adopters.RegisterRoutes(api, adoptersSvc)
		dogs.RegisterRoutes(api, dogsSvc)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respond.Text(w, http.StatusNotFound, "route not found")
	})

	return r
}

func healthHandler(db *sqlstore.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			respond.JSON(w, http.StatusOK, map[string]string{"status": "ok", "database": "memory"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("health ping failed")
			respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "database": string(db.Dialect())})
			return
		}
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok", "database": string(db.Dialect())})
	}
}
