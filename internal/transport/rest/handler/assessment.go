package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"orgassess/internal/model"
	"orgassess/internal/service"
	"orgassess/internal/transport/rest/middleware"
)

// AssessmentHandler handles assessment submission and retrieval
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// Submit handles POST /v1/assessments
//
//	@Summary	Score and store an assessment for the caller's organization
//	@Tags		assessments
//	@Accept		json
//	@Produce	json
//	@Param		body	body		model.SubmitAssessmentRequest	true	"responses"
//	@Success	201		{object}	model.Assessment
//	@Failure	400,402	{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/assessments [post]
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetOrganizationID(r.Context())
	if orgID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.SubmitAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assessment, err := h.assessmentSvc.Submit(r.Context(), orgID, middleware.GetAnalystID(r.Context()), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, assessment)
}

// List handles GET /v1/assessments
//
//	@Summary	List recent assessments of the caller's organization
//	@Tags		assessments
//	@Produce	json
//	@Success	200	{array}	model.AssessmentSummary
//	@Security	BearerAuth
//	@Router		/assessments [get]
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetOrganizationID(r.Context())
	if orgID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	summaries, err := h.assessmentSvc.List(r.Context(), orgID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

// Get handles GET /v1/assessments/{id}
//
//	@Summary	Fetch one stored assessment
//	@Tags		assessments
//	@Produce	json
//	@Param		id	path		string	true	"assessment id"
//	@Success	200	{object}	model.Assessment
//	@Failure	403,404	{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/assessments/{id} [get]
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetOrganizationID(r.Context())
	if orgID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	assessment, err := h.assessmentSvc.Get(r.Context(), orgID, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// Analyze handles POST /v1/analyze. Nothing is stored.
//
//	@Summary	Run the index suite without storing the result
//	@Tags		assessments
//	@Accept		json
//	@Produce	json
//	@Param		body	body		model.SubmitAssessmentRequest	true	"responses"
//	@Success	200		{object}	scoring.CompositeResult
//	@Security	BearerAuth
//	@Router		/analyze [post]
func (h *AssessmentHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.assessmentSvc.Analyze(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
