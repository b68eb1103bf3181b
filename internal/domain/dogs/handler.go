package dogs

import (
	"net/http"
	"strconv"
	"strings"

	"shelter-api/internal/platform/respond"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/dogs", listDogsHandler(svc))

	// Perros de un adoptante (vive aquí para que adopters no dependa de dogs)
	r.Get("/adopters/{adopterID}/dogs", listAdopterDogsHandler(svc))
}

// listingResponse es un perro con el nombre de su adoptante (null si no tiene).
type listingResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	AdopterName *string `json:"adopter_name"`
}

type listDogsResponse struct {
	Dogs  []listingResponse `json:"dogs"`
	Count int               `json:"count"`
}

type dogResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Weight    float64 `json:"weight"`
	AdopterID *int64  `json:"adopter_id"`
}

// listDogsHandler godoc
// @Summary Listar perros
// @Description Todos los perros con el nombre de su adoptante (LEFT JOIN).
// @Tags dogs
// @Produce json
// @Success 200 {object} listDogsResponse
// @Failure 500 {object} respond.Message
// @Router /dogs [get]
func listDogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("list dogs")
			respond.Text(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]listingResponse, 0, len(items))
		for _, d := range items {
			out = append(out, listingResponse{
				ID:          d.ID,
				Name:        d.Name,
				Weight:      d.Weight,
				AdopterName: d.AdopterName,
			})
		}
		respond.JSON(w, http.StatusOK, listDogsResponse{Dogs: out, Count: len(out)})
	}
}

// listAdopterDogsHandler godoc
// @Summary Perros de un adoptante
// @Description 404 cuando la lista está vacía (adoptante sin perros o inexistente).
// @Tags adopters
// @Produce json
// @Param adopterID path int true "ID del adoptante"
// @Success 200 {array} dogResponse
// @Failure 400 {object} respond.Message
// @Failure 404 {object} respond.Message
// @Failure 500 {object} respond.Message
// @Router /adopters/{adopterID}/dogs [get]
func listAdopterDogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adopterID, err := strconv.ParseInt(strings.TrimSpace(chi.URLParam(r, "adopterID")), 10, 64)
		if err != nil {
			respond.Text(w, http.StatusBadRequest, "invalid adopter id")
			return
		}

		items, err := svc.ListByAdopter(r.Context(), adopterID)
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Int64("adopter_id", adopterID).Msg("list dogs by adopter")
			respond.Text(w, http.StatusInternalServerError, "Error retrieving the dogs for this adopter")
			return
		}
		if len(items) == 0 {
			respond.Text(w, http.StatusNotFound, "No dogs for this adopter")
			return
		}

		out := make([]dogResponse, 0, len(items))
		for _, d := range items {
			out = append(out, dogResponse{
				ID:        d.ID,
				Name:      d.Name,
				Weight:    d.Weight,
				AdopterID: d.AdopterID,
			})
		}
		respond.JSON(w, http.StatusOK, out)
	}
}
