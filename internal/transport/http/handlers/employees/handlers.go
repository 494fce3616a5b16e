package employeehandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"servicebook/internal/domain/employee"
	"servicebook/internal/domain/records"
	"servicebook/internal/domain/reports"
	"servicebook/internal/platform/storage"
	"servicebook/internal/transport/http/api"
	"servicebook/internal/transport/http/middleware"
	"servicebook/internal/transport/http/shared"
)

const maxImportBytes = 8 * 1024 * 1024

type Handler struct {
	Service  *employee.Service
	Importer *employee.Importer
	Records  *records.Store
	Reports  *reports.Service
	Photos   *storage.PhotoStore
}

func NewHandler(service *employee.Service, importer *employee.Importer, recordStore *records.Store, reportsSvc *reports.Service, photos *storage.PhotoStore) *Handler {
	return &Handler{Service: service, Importer: importer, Records: recordStore, Reports: reportsSvc, Photos: photos}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Post("/import", h.handleImport)
		r.Get("/export/csv", h.handleExportCSV)
		r.Get("/export/pdf", h.handleExportPDF)
		r.Get("/{employeeID}", h.handleGet)
		r.Put("/{employeeID}", h.handleUpdate)
		r.Post("/{employeeID}/photo", h.handleUploadPhoto)
		r.Get("/{employeeID}/photo", h.handlePhoto)
		r.Get("/{employeeID}/self-edit", h.handleGetSelfEdit)
		r.Put("/{employeeID}/self-edit", h.handleSetSelfEdit)
	})
}

func queryFilter(r *http.Request) employee.Filter {
	q := r.URL.Query()
	return employee.Filter{
		HRMSID:  strings.TrimSpace(q.Get("hrmsId")),
		Branch:  strings.TrimSpace(q.Get("branch")),
		College: strings.TrimSpace(q.Get("college")),
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	filter := queryFilter(r)
	page := shared.ParsePagination(r, 50, 200)

	list, err := h.Service.Store.ListEmployees(r.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	total, err := h.Service.Store.CountEmployees(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{
		"items":  list,
		"total":  total,
		"limit":  page.Limit,
		"offset": page.Offset,
	}, middleware.GetRequestID(r.Context()))
}

func validateEmployee(e *employee.Employee) *shared.Validator {
	v := shared.NewValidator()
	v.Required("hrmsId", e.HRMSID, "hrmsId is required")
	v.Required("name", e.Name, "name is required")
	if e.Gender != "" {
		v.Enum("gender", strings.ToUpper(e.Gender), []string{"M", "F", "O"}, "gender must be M, F or O")
	}
	if e.DOB != nil && e.DOB.After(time.Now()) {
		v.Add("dob", "dob must be in the past")
	}
	return v
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload employee.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if validateEmployee(&payload).Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	created, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Service.Store.GetEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_get_failed", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload employee.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if validateEmployee(&payload).Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	updated, err := h.Service.Update(r.Context(), chi.URLParam(r, "employeeID"), payload)
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_update_failed", "failed to update employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	h.uploadPhoto(w, r, chi.URLParam(r, "employeeID"))
}

func (h *Handler) handlePhoto(w http.ResponseWriter, r *http.Request) {
	h.servePhoto(w, r, chi.URLParam(r, "employeeID"))
}

func (h *Handler) handleGetSelfEdit(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if _, err := h.Service.Store.GetEmployee(r.Context(), employeeID); errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	} else if err != nil {
		api.Fail(w, http.StatusInternalServerError, "self_edit_get_failed", "failed to load permissions", middleware.GetRequestID(r.Context()))
		return
	}

	perms, err := h.Records.GetPermissions(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "self_edit_get_failed", "failed to load permissions", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, perms, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSetSelfEdit(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if _, err := h.Service.Store.GetEmployee(r.Context(), employeeID); errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	} else if err != nil {
		api.Fail(w, http.StatusInternalServerError, "self_edit_set_failed", "failed to save permissions", middleware.GetRequestID(r.Context()))
		return
	}

	var payload records.SelfEditPermission
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.EmployeeID = employeeID

	if err := h.Records.SetPermissions(r.Context(), &payload); err != nil {
		api.Fail(w, http.StatusInternalServerError, "self_edit_set_failed", "failed to save permissions", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, payload, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportBytes); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_upload", "invalid multipart upload", middleware.GetRequestID(r.Context()))
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_upload", "file field is required", middleware.GetRequestID(r.Context()))
		return
	}
	defer file.Close()

	summary, err := h.Importer.ImportCSV(r.Context(), file)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "import_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="employees.csv"`)
	if err := h.Reports.RegisterCSV(r.Context(), w, queryFilter(r)); err != nil {
		// headers are already out; the truncated body is the best we can do
		slog.Warn("csv export failed mid-stream", "err", err)
	}
}

func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="employees.pdf"`)
	if err := h.Reports.RegisterPDF(r.Context(), w, queryFilter(r)); err != nil {
		// headers are already out; the truncated body is the best we can do
		slog.Warn("pdf export failed mid-stream", "err", err)
	}
}
