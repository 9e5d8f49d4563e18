package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"surveymon/internal/model"
	"surveymon/internal/service"
	"surveymon/internal/transport/rest/middleware"
)

// SurveyHandler handles survey CRUD requests
type SurveyHandler struct {
	surveySvc *service.SurveyService
	log       *zap.Logger
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveySvc *service.SurveyService, log *zap.Logger) *SurveyHandler {
	return &SurveyHandler{surveySvc: surveySvc, log: log}
}

// Create handles POST /v1/surveys
func (h *SurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var survey model.Survey
	if err := json.NewDecoder(r.Body).Decode(&survey); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	survey.AdminID = middleware.GetAdminID(r.Context())
	survey.CreatedAt = time.Now()
	survey.UpdatedAt = survey.CreatedAt

	id, err := h.surveySvc.Create(r.Context(), &survey)
	if err != nil {
		h.log.Error("failed to create survey", zap.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	survey.ID = id

	writeJSON(w, http.StatusCreated, survey)
}

// Get handles GET /v1/surveys/{surveyId}
func (h *SurveyHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	survey, err := h.surveySvc.GetByID(r.Context(), surveyID)
	if err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			writeError(w, http.StatusNotFound, "survey not found")
			return
		}
		h.log.Error("failed to get survey", zap.String("surveyId", surveyID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to get survey")
		return
	}

	writeJSON(w, http.StatusOK, survey)
}

// List handles GET /v1/surveys
func (h *SurveyHandler) List(w http.ResponseWriter, r *http.Request) {
	adminID := middleware.GetAdminID(r.Context())

	surveys, err := h.surveySvc.GetByAdminID(r.Context(), adminID)
	if err != nil {
		h.log.Error("failed to list surveys", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list surveys")
		return
	}
	if surveys == nil {
		surveys = []*model.Survey{}
	}

	writeJSON(w, http.StatusOK, surveys)
}

// Update handles PUT /v1/surveys/{surveyId}
func (h *SurveyHandler) Update(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	var survey model.Survey
	if err := json.NewDecoder(r.Body).Decode(&survey); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	survey.ID = surveyID
	survey.UpdatedAt = time.Now()

	if err := h.surveySvc.Update(r.Context(), &survey); err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			writeError(w, http.StatusNotFound, "survey not found")
			return
		}
		h.log.Error("failed to update survey", zap.String("surveyId", surveyID), zap.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, survey)
}

// SetStatus handles PATCH /v1/surveys/{surveyId}/status
func (h *SurveyHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.surveySvc.SetStatus(r.Context(), surveyID, req.Status); err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			writeError(w, http.StatusNotFound, "survey not found")
			return
		}
		h.log.Error("failed to update survey status", zap.String("surveyId", surveyID), zap.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

// Delete handles DELETE /v1/surveys/{surveyId}
func (h *SurveyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	if err := h.surveySvc.Delete(r.Context(), surveyID); err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			writeError(w, http.StatusNotFound, "survey not found")
			return
		}
		h.log.Error("failed to delete survey", zap.String("surveyId", surveyID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to delete survey")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
