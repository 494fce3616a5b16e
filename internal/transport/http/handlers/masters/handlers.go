package mastershandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"servicebook/internal/domain/masters"
	"servicebook/internal/transport/http/api"
	"servicebook/internal/transport/http/middleware"
	"servicebook/internal/transport/http/shared"
)

type Handler struct {
	Store *masters.Store
}

func NewHandler(store *masters.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/masters", func(r chi.Router) {
		r.Get("/colleges", h.handleListColleges)
		r.Post("/colleges", h.handleCreateCollege)
		r.Get("/districts", h.handleListDistricts)
		r.Post("/districts", h.handleCreateDistrict)
	})
}

func (h *Handler) handleListColleges(w http.ResponseWriter, r *http.Request) {
	colleges, err := h.Store.ListColleges(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "college_list_failed", "failed to list colleges", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, colleges, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateCollege(w http.ResponseWriter, r *http.Request) {
	var payload masters.College
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.Required("code", payload.Code, "code is required")
	v.Required("name", payload.Name, "name is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Store.CreateCollege(r.Context(), payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "college_create_failed", "failed to create college", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListDistricts(w http.ResponseWriter, r *http.Request) {
	districts, err := h.Store.ListDistricts(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "district_list_failed", "failed to list districts", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, districts, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateDistrict(w http.ResponseWriter, r *http.Request) {
	var payload masters.District
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Store.CreateDistrict(r.Context(), payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "district_create_failed", "failed to create district", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}
