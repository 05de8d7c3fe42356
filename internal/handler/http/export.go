package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/atlashr/hrms-backend-go/internal/handler/http/response"
	"github.com/atlashr/hrms-backend-go/internal/service/export"
	"github.com/go-chi/chi/v5"
)

type ExportHandler interface {
	DownloadPayslipPDF(w http.ResponseWriter, r *http.Request)
	DownloadWPSRegister(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	exportService export.ExportService
}

func NewExportHandler(exportService export.ExportService) ExportHandler {
	return &exportHandlerImpl{exportService: exportService}
}

func (h *exportHandlerImpl) DownloadPayslipPDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip ID is required", nil)
		return
	}

	data, filename, err := h.exportService.PayslipPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

func (h *exportHandlerImpl) DownloadWPSRegister(w http.ResponseWriter, r *http.Request) {
	month, year, ok := parsePeriodQuery(w, r)
	if !ok {
		return
	}

	data, filename, err := h.exportService.WPSRegister(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}
