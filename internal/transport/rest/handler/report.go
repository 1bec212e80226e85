package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"orgassess/internal/service"
	"orgassess/internal/transport/rest/middleware"
)

// ReportHandler handles report endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Benchmark handles GET /v1/assessments/{id}/benchmark
//
//	@Summary	Percentile of an assessment among peers of the same organization type
//	@Tags		reports
//	@Produce	json
//	@Param		id	path		string	true	"assessment id"
//	@Success	200	{object}	model.Benchmark
//	@Security	BearerAuth
//	@Router		/assessments/{id}/benchmark [get]
func (h *ReportHandler) Benchmark(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetOrganizationID(r.Context())
	if orgID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	benchmark, err := h.reportSvc.Benchmark(r.Context(), orgID, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, benchmark)
}
