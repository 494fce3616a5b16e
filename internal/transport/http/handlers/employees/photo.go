package employeehandler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"servicebook/internal/domain/employee"
	"servicebook/internal/transport/http/api"
	"servicebook/internal/transport/http/middleware"
)

// multipart overhead on top of the photo ceiling
const maxPhotoMultipartBytes = employee.MaxPhotoBytes + 16*1024

func (h *Handler) uploadPhoto(w http.ResponseWriter, r *http.Request, employeeID string) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoMultipartBytes)
	if err := r.ParseMultipartForm(maxPhotoMultipartBytes); err != nil {
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

	upload := &employee.PhotoUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        int64(len(data)),
		Data:        data,
	}

	path, err := h.Service.SavePhoto(r.Context(), employeeID, upload)
	switch {
	case errors.Is(err, employee.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
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

func (h *Handler) servePhoto(w http.ResponseWriter, r *http.Request, employeeID string) {
	emp, err := h.Service.Store.GetEmployee(r.Context(), employeeID)
	if errors.Is(err, employee.ErrNotFound) || (err == nil && emp.PhotoPath == "") {
		api.Fail(w, http.StatusNotFound, "photo_not_found", "no photo on record", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "photo_get_failed", "failed to load photo", middleware.GetRequestID(r.Context()))
		return
	}

	data, err := h.Photos.Open(emp.PhotoPath)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "photo_not_found", "no photo on record", middleware.GetRequestID(r.Context()))
		return
	}

	ctype := "image/jpeg"
	if strings.EqualFold(filepath.Ext(emp.PhotoPath), ".png") {
		ctype = "image/png"
	}
	w.Header().Set("Content-Type", ctype)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
