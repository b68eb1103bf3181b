package adopters

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"shelter-api/internal/errs"
	"shelter-api/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/adopters", func(ar chi.Router) {
		ar.Get("/", listAdoptersHandler(svc))
		ar.Post("/", createAdopterHandler(svc))

		ar.Get("/{adopterID}", getAdopterHandler(svc))
		// PUT se mantiene por compatibilidad; ambos son sparse.
		ar.Put("/{adopterID}", updateAdopterHandler(svc))
		ar.Patch("/{adopterID}", updateAdopterHandler(svc))
		ar.Delete("/{adopterID}", deleteAdopterHandler(svc))
	})
}

// adopterResponse es un adoptante devuelto por la API.
type adopterResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
}

// adopterRequest documenta el body de POST/PUT/PATCH.
// El decode real va por decodeFields para detectar presencia y null.
type adopterRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// listAdoptersHandler godoc
// @Summary Listar adoptantes
// @Description Filtros de igualdad por query string; se combinan con AND. Columnas: id, name, email.
// @Tags adopters
// @Produce json
// @Param id query int false "ID exacto"
// @Param name query string false "Nombre exacto"
// @Param email query string false "Email exacto"
// @Success 200 {array} adopterResponse
// @Failure 400 {object} respond.Message "filtro desconocido o mal tipado"
// @Failure 500 {object} respond.Message
// @Router /adopters [get]
func listAdoptersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := ParseFilter(r.URL.Query())
		if err != nil {
			respond.Error(w, r, err, "")
			return
		}

		items, err := svc.Find(r.Context(), f)
		if err != nil {
			respond.Error(w, r, err, "")
			return
		}

		out := make([]adopterResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAdopterResponse(a))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getAdopterHandler godoc
// @Summary Obtener adoptante
// @Tags adopters
// @Produce json
// @Param adopterID path int true "ID del adoptante"
// @Success 200 {object} adopterResponse
// @Failure 400 {object} respond.Message
// @Failure 404 {object} respond.Message
// @Failure 500 {object} respond.Message
// @Router /adopters/{adopterID} [get]
func getAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := adopterIDParam(w, r)
		if !ok {
			return
		}

		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, r, err, "not found")
			return
		}
		respond.JSON(w, http.StatusOK, toAdopterResponse(a))
	}
}

// createAdopterHandler godoc
// @Summary Crear adoptante
// @Description name es obligatorio; la regla la aplica la base (NOT NULL).
// @Tags adopters
// @Accept json
// @Produce json
// @Param payload body adopterRequest true "Adoptante"
// @Success 201 {object} adopterResponse
// @Failure 400 {object} respond.Message
// @Failure 500 {object} respond.Message
// @Router /adopters [post]
func createAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := decodeFields(r)
		if err != nil {
			respond.Error(w, r, err, "")
			return
		}

		created, err := svc.Create(r.Context(), NewAdopter{
			Name:  fields.Name.Value,
			Email: fields.Email.Value,
		})
		if err != nil {
			respond.Error(w, r, err, "")
			return
		}
		respond.JSON(w, http.StatusCreated, toAdopterResponse(created))
	}
}

// updateAdopterHandler godoc
// @Summary Actualizar adoptante (parcial)
// @Description Sólo se modifican los campos presentes. "email": null limpia el email.
// @Tags adopters
// @Accept json
// @Produce json
// @Param adopterID path int true "ID del adoptante"
// @Param payload body adopterRequest true "Campos a cambiar"
// @Success 200 {object} adopterResponse
// @Failure 400 {object} respond.Message
// @Failure 404 {object} respond.Message
// @Failure 500 {object} respond.Message
// @Router /adopters/{adopterID} [patch]
func updateAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := adopterIDParam(w, r)
		if !ok {
			return
		}

		patch, err := decodeFields(r)
		if err != nil {
			respond.Error(w, r, err, "")
			return
		}

		updated, err := svc.Update(r.Context(), id, patch)
		if err != nil {
			respond.Error(w, r, err, "not found")
			return
		}
		respond.JSON(w, http.StatusOK, toAdopterResponse(updated))
	}
}

// deleteAdopterHandler godoc
// @Summary Eliminar adoptante
// @Description No borra ni desasocia sus perros; si tiene perros la base rechaza el delete.
// @Tags adopters
// @Produce json
// @Param adopterID path int true "ID del adoptante"
// @Success 200 {object} respond.Message
// @Failure 400 {object} respond.Message
// @Failure 404 {object} respond.Message
// @Failure 500 {object} respond.Message
// @Router /adopters/{adopterID} [delete]
func deleteAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := adopterIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respond.Error(w, r, err, "not found")
			return
		}
		respond.Text(w, http.StatusOK, "destroyed")
	}
}

func adopterIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := strings.TrimSpace(chi.URLParam(r, "adopterID"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respond.Text(w, http.StatusBadRequest, "invalid adopter id")
		return 0, false
	}
	return id, true
}

// decodeFields lee el body como mapa crudo para distinguir "ausente" de null,
// y rechaza campos que no son columnas editables.
func decodeFields(r *http.Request) (Patch, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return Patch{}, errs.Validation("body", "invalid json")
	}

	var p Patch
	for key, v := range raw {
		var target *Field[string]
		switch key {
		case "name":
			target = &p.Name
		case "email":
			target = &p.Email
		default:
			return Patch{}, errs.Validation(key, "unknown field")
		}

		target.Set = true
		if string(v) == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return Patch{}, errs.Validation(key, "must be a string or null")
		}
		target.Value = &s
	}
	return p, nil
}

func toAdopterResponse(a Adopter) adopterResponse {
	return adopterResponse{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
	}
}
