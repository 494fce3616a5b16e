package portalhandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"servicebook/internal/domain/auth"
	"servicebook/internal/domain/employee"
	"servicebook/internal/domain/records"
	"servicebook/internal/transport/http/api"
	"servicebook/internal/transport/http/middleware"
	"servicebook/internal/transport/http/shared"
)

// Handler is the employee-facing surface: everything here is scoped to
// the employee record linked to the authenticated account.
type Handler struct {
	Employees *employee.Service
	Records   *records.Store
	Self      *records.SelfService
}

func NewHandler(employees *employee.Service, recordStore *records.Store, self *records.SelfService) *Handler {
	return &Handler{Employees: employees, Records: recordStore, Self: self}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/portal", func(r chi.Router) {
		r.Get("/me", h.handleMe)
		r.Post("/photo", h.handleUploadPhoto)
		r.Get("/modules", h.handleModules)
		r.Get("/records/{module}", h.handleView)
		r.Post("/records/{module}", h.handleSubmit)
	})
}

// actingEmployee resolves the caller's linked employee id, failing the
// request when the account has none.
func actingEmployee(w http.ResponseWriter, r *http.Request) (auth.UserContext, string, bool) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return auth.UserContext{}, "", false
	}
	if user.EmployeeID == "" {
		api.Fail(w, http.StatusForbidden, "no_employee_record", "no employee record linked to this account", middleware.GetRequestID(r.Context()))
		return auth.UserContext{}, "", false
	}
	return user, user.EmployeeID, true
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	_, employeeID, ok := actingEmployee(w, r)
	if !ok {
		return
	}
	emp, err := h.Employees.Store.GetEmployee(r.Context(), employeeID)
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee record not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "profile_failed", "failed to load profile", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	_, employeeID, ok := actingEmployee(w, r)
	if !ok {
		return
	}

	maxBytes := int64(employee.MaxPhotoBytes + 16*1024)
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		api.Fail(w, http.StatusRequestEntityTooLarge, "photo_too_large", employee.ErrPhotoTooLarge.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_upload", "photo field is required", middleware.GetRequestID(r.Context()))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, employee.MaxPhotoBytes+1))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_upload", "failed to read photo", middleware.GetRequestID(r.Context()))
		return
	}

	path, err := h.Employees.SavePhoto(r.Context(), employeeID, &employee.PhotoUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        int64(len(data)),
		Data:        data,
	})
	switch {
	case errors.Is(err, employee.ErrPhotoTooLarge):
		api.Fail(w, http.StatusRequestEntityTooLarge, "photo_too_large", err.Error(), middleware.GetRequestID(r.Context()))
		return
	case errors.Is(err, employee.ErrPhotoBadType):
		api.Fail(w, http.StatusUnsupportedMediaType, "photo_bad_type", err.Error(), middleware.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "photo_save_failed", "failed to save photo", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"photoPath": path}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleModules(w http.ResponseWriter, r *http.Request) {
	_, employeeID, ok := actingEmployee(w, r)
	if !ok {
		return
	}
	perms, err := h.Records.GetPermissions(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "modules_failed", "failed to load modules", middleware.GetRequestID(r.Context()))
		return
	}

	type moduleInfo struct {
		Code    string `json:"code"`
		Title   string `json:"title"`
		CanEdit bool   `json:"canEdit"`
	}
	mods := h.Self.Registry.Modules()
	out := make([]moduleInfo, 0, len(mods))
	for _, m := range mods {
		out = append(out, moduleInfo{Code: m.Code, Title: m.Title, CanEdit: perms.Allowed(m.PermColumn)})
	}
	api.Success(w, out, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleView(w http.ResponseWriter, r *http.Request) {
	_, employeeID, ok := actingEmployee(w, r)
	if !ok {
		return
	}
	view, err := h.Self.LoadView(r.Context(), employeeID, chi.URLParam(r, "module"))
	if errors.Is(err, records.ErrUnknownModule) {
		api.Fail(w, http.StatusNotFound, "unknown_module", "unknown record module", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "records_view_failed", "failed to load records", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, view, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	_, employeeID, ok := actingEmployee(w, r)
	if !ok {
		return
	}
	var payload records.SubmitInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	result, err := h.Self.SubmitEdits(r.Context(), employeeID, chi.URLParam(r, "module"), payload)
	var verr *records.ValidationError
	switch {
	case errors.Is(err, records.ErrUnknownModule):
		api.Fail(w, http.StatusNotFound, "unknown_module", "unknown record module", middleware.GetRequestID(r.Context()))
		return
	case errors.Is(err, records.ErrPermissionDenied):
		api.Fail(w, http.StatusForbidden, "self_edit_forbidden", "editing this module is not permitted", middleware.GetRequestID(r.Context()))
		return
	case errors.As(err, &verr):
		issues := make([]shared.ValidationIssue, 0, len(verr.Issues))
		for _, iss := range verr.Issues {
			issues = append(issues, shared.ValidationIssue{Field: iss.Field, Reason: iss.Reason})
		}
		shared.FailValidation(w, middleware.GetRequestID(r.Context()), issues)
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "records_submit_failed", "failed to save records", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}
