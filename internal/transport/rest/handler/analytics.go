package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"surveymon/internal/model"
	"surveymon/internal/service"
)

// AnalyticsHandler handles analytics generation, retrieval and reporting
type AnalyticsHandler struct {
	analyticsSvc *service.AnalyticsService
	insightSvc   *service.InsightService
	reportSvc    *service.ReportService
	log          *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(
	analyticsSvc *service.AnalyticsService,
	insightSvc *service.InsightService,
	reportSvc *service.ReportService,
	log *zap.Logger,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
		insightSvc:   insightSvc,
		reportSvc:    reportSvc,
		log:          log,
	}
}

// Generate handles POST /v1/surveys/{surveyId}/analytics/generate
func (h *AnalyticsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	snapshot, err := h.analyticsSvc.Generate(r.Context(), surveyID)
	if err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			writeError(w, http.StatusNotFound, "survey not found")
			return
		}
		h.log.Error("failed to generate analytics",
			zap.String("surveyId", surveyID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to generate analytics")
		return
	}

	insights, err := h.insightSvc.Generate(r.Context(), snapshot)
	if err != nil {
		h.log.Error("failed to generate insights",
			zap.String("surveyId", surveyID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to generate insights")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"analytics": snapshot,
		"insights":  insights,
	})
}

// GetAnalytics handles GET /v1/surveys/{surveyId}/analytics
func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	snapshot, err := h.analyticsSvc.GetSnapshot(r.Context(), surveyID)
	if err != nil {
		h.log.Error("failed to get analytics",
			zap.String("surveyId", surveyID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to get analytics")
		return
	}
	if snapshot == nil {
		writeError(w, http.StatusNotFound, "analytics not generated yet")
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

// ListInsights handles GET /v1/surveys/{surveyId}/insights
func (h *AnalyticsHandler) ListInsights(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	insights, err := h.insightSvc.ListBySurvey(r.Context(), surveyID)
	if err != nil {
		h.log.Error("failed to list insights",
			zap.String("surveyId", surveyID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list insights")
		return
	}
	if insights == nil {
		insights = []model.Insight{}
	}

	writeJSON(w, http.StatusOK, insights)
}

// ExportReport handles GET /v1/surveys/{surveyId}/report.csv
func (h *AnalyticsHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	data, err := h.reportSvc.ExportCSV(r.Context(), surveyID)
	if err != nil {
		if errors.Is(err, service.ErrSnapshotNotFound) {
			writeError(w, http.StatusNotFound, "analytics not generated yet")
			return
		}
		h.log.Error("failed to export report",
			zap.String("surveyId", surveyID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to export report")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=survey_report.csv")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
