package recordhandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"servicebook/internal/domain/records"
	"servicebook/internal/transport/http/api"
	"servicebook/internal/transport/http/middleware"
	"servicebook/internal/transport/http/shared"
)

type Handler struct {
	Service *records.Service
}

func NewHandler(service *records.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/records", func(r chi.Router) {
		r.Get("/", h.handleModules)
		r.Route("/{module}", func(r chi.Router) {
			r.Get("/", h.handleList)
			r.Post("/", h.handleCreate)
			r.Put("/{recordID}", h.handleUpdate)
			r.Delete("/{recordID}", h.handleDelete)
			r.Post("/approve", h.handleApprove)
			r.Post("/revert", h.handleRevert)
		})
	})
}

func failRecordErr(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	requestID := middleware.GetRequestID(r.Context())
	var verr *records.ValidationError
	switch {
	case errors.Is(err, records.ErrUnknownModule):
		api.Fail(w, http.StatusNotFound, "unknown_module", "unknown record module", requestID)
	case errors.Is(err, records.ErrRecordNotFound):
		api.Fail(w, http.StatusNotFound, "record_not_found", "record not found", requestID)
	case errors.As(err, &verr):
		issues := make([]shared.ValidationIssue, 0, len(verr.Issues))
		for _, iss := range verr.Issues {
			issues = append(issues, shared.ValidationIssue{Field: iss.Field, Reason: iss.Reason})
		}
		shared.FailValidation(w, requestID, issues)
	default:
		api.Fail(w, http.StatusInternalServerError, code, message, requestID)
	}
}

func (h *Handler) handleModules(w http.ResponseWriter, r *http.Request) {
	type moduleInfo struct {
		Code  string `json:"code"`
		Title string `json:"title"`
	}
	mods := h.Service.Modules()
	out := make([]moduleInfo, 0, len(mods))
	for _, m := range mods {
		out = append(out, moduleInfo{Code: m.Code, Title: m.Title})
	}
	api.Success(w, out, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 200)
	q := records.ListQuery{
		EmployeeID: strings.TrimSpace(r.URL.Query().Get("employeeId")),
		Status:     strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("status"))),
		Limit:      page.Limit,
		Offset:     page.Offset,
	}
	list, err := h.Service.List(r.Context(), chi.URLParam(r, "module"), q)
	if err != nil {
		failRecordErr(w, r, err, "record_list_failed", "failed to list records")
		return
	}
	if list == nil {
		list = []records.Approvable{}
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	id, err := h.Service.Create(r.Context(), chi.URLParam(r, "module"), body)
	if err != nil {
		failRecordErr(w, r, err, "record_create_failed", "failed to create record")
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	err = h.Service.Update(r.Context(), chi.URLParam(r, "module"), chi.URLParam(r, "recordID"), body)
	if err != nil {
		failRecordErr(w, r, err, "record_update_failed", "failed to update record")
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Delete(r.Context(), chi.URLParam(r, "module"), chi.URLParam(r, "recordID"))
	if err != nil {
		failRecordErr(w, r, err, "record_delete_failed", "failed to delete record")
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

type reviewRequest struct {
	IDs    []string `json:"ids"`
	Remark string   `json:"remark"`
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	var payload reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	count, err := h.Service.Approve(r.Context(), chi.URLParam(r, "module"), payload.IDs, user.UserID)
	if err != nil {
		failRecordErr(w, r, err, "record_approve_failed", "failed to approve records")
		return
	}
	api.Success(w, map[string]int64{"approved": count}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRevert(w http.ResponseWriter, r *http.Request) {
	var payload reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	count, err := h.Service.Revert(r.Context(), chi.URLParam(r, "module"), payload.IDs, strings.TrimSpace(payload.Remark))
	if err != nil {
		failRecordErr(w, r, err, "record_revert_failed", "failed to revert records")
		return
	}
	api.Success(w, map[string]int64{"reverted": count}, middleware.GetRequestID(r.Context()))
}
