package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"surveymon/internal/model"
	"surveymon/internal/service"
)

// submitAnswerRequest carries one answer plus an optional respondent profile.
type submitAnswerRequest struct {
	QuestionID   string     `json:"questionId"`
	RespondentID string     `json:"respondentId"`
	Value        string     `json:"value"`
	Gender       string     `json:"gender,omitempty"`
	BirthDate    *time.Time `json:"birthDate,omitempty"`
}

// AnswerHandler handles public answer submission
type AnswerHandler struct {
	answerSvc *service.AnswerService
	log       *zap.Logger
}

// NewAnswerHandler creates a new answer handler
func NewAnswerHandler(answerSvc *service.AnswerService, log *zap.Logger) *AnswerHandler {
	return &AnswerHandler{answerSvc: answerSvc, log: log}
}

// Submit handles POST /v1/surveys/{surveyId}/answers
func (h *AnswerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	var req submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuestionID == "" {
		writeError(w, http.StatusBadRequest, "questionId is required")
		return
	}
	if req.RespondentID == "" {
		req.RespondentID = uuid.New().String()
	}

	answer := &model.Answer{
		ID:           uuid.New().String(),
		SurveyID:     surveyID,
		QuestionID:   req.QuestionID,
		RespondentID: req.RespondentID,
		Value:        req.Value,
		AnsweredAt:   time.Now(),
	}

	respondent := &model.Respondent{
		Gender:    req.Gender,
		BirthDate: req.BirthDate,
		CreatedAt: time.Now(),
	}
	if respondent.Gender == "" {
		respondent.Gender = model.GenderUnknown
	}

	if err := h.answerSvc.Submit(r.Context(), answer, respondent); err != nil {
		switch {
		case errors.Is(err, service.ErrSurveyNotFound):
			writeError(w, http.StatusNotFound, "survey not found")
		case errors.Is(err, service.ErrQuestionNotFound):
			writeError(w, http.StatusNotFound, "question not found")
		default:
			h.log.Error("failed to submit answer",
				zap.String("surveyId", surveyID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to submit answer")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"respondentId": req.RespondentID,
		"status":       "accepted",
	})
}
