package handlers

import (
	"context"
	"errors"
	"net/http"

	"survey-backend/internal/models"
)

type PreSurveyStore interface {
	Create(ctx context.Context, resp *models.PreSurveyResponse) error
}

type ResponseStore interface {
	InsertMany(ctx context.Context, responses []models.TrialResponse) error
	FindAll(ctx context.Context) ([]models.TrialResponse, error)
}

type PostSurveyStore interface {
	Create(ctx context.Context, resp *models.PostSurveyResponse) error
}

var errMissingBatch = errors.New("submittedResponses must be an array")

type SurveyHandler struct {
	preSurveys  PreSurveyStore
	responses   ResponseStore
	postSurveys PostSurveyStore
}

func NewSurveyHandler(preSurveys PreSurveyStore, responses ResponseStore, postSurveys PostSurveyStore) *SurveyHandler {
	return &SurveyHandler{
		preSurveys:  preSurveys,
		responses:   responses,
		postSurveys: postSurveys,
	}
}

// --- GET /api/responses ---

func (h *SurveyHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	responses, err := h.responses.FindAll(r.Context())
	if err != nil {
		writeError(w, "Error fetching responses", err)
		return
	}

	writeJSON(w, http.StatusOK, responses)
}

// --- POST /api/submit-pre-survey ---

func (h *SurveyHandler) SubmitPreSurvey(w http.ResponseWriter, r *http.Request) {
	const failure = "Error submitting pre-survey response"

	var req models.PreSurveyResponse
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, failure, err)
		return
	}

	logPayload("received pre-survey data", req)

	if err := h.preSurveys.Create(r.Context(), &req); err != nil {
		writeError(w, failure, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Pre-survey response submitted successfully!"})
}

// --- POST /api/submit-survey ---

func (h *SurveyHandler) SubmitSurvey(w http.ResponseWriter, r *http.Request) {
	const failure = "Error submitting all survey responses"

	var req models.SurveyBatch
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, failure, err)
		return
	}
	// Missing and null both decode to nil; an explicit [] is a valid empty batch.
	if req.SubmittedResponses == nil {
		writeError(w, failure, errMissingBatch)
		return
	}

	logPayload("received survey data", req.SubmittedResponses)

	if err := h.responses.InsertMany(r.Context(), req.SubmittedResponses); err != nil {
		writeError(w, failure, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "All survey responses submitted successfully!"})
}

// --- POST /api/submit-post-survey ---

func (h *SurveyHandler) SubmitPostSurvey(w http.ResponseWriter, r *http.Request) {
	const failure = "Error submitting post-survey response"

	var req models.PostSurveyResponse
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, failure, err)
		return
	}

	logPayload("received post-survey data", req)

	if err := h.postSurveys.Create(r.Context(), &req); err != nil {
		writeError(w, failure, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Post-survey response submitted successfully!"})
}
