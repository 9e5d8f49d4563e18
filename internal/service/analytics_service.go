package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"surveymon/internal/cache"
	"surveymon/internal/config"
	"surveymon/internal/model"
	"surveymon/internal/repository"
)

// AnalyticsService loads a survey's corpus, runs the analyzers over it and
// persists the resulting snapshot (upsert keyed by survey id, last writer
// wins).
type AnalyticsService struct {
	surveyRepo     repository.SurveyRepo
	answerRepo     repository.AnswerRepo
	respondentRepo repository.RespondentRepo
	analyticsRepo  repository.AnalyticsRepo
	snapshots      cache.SnapshotCache
	broadcaster    Broadcaster
	cfg            *config.AnalyticsConfig
	log            *zap.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	surveyRepo repository.SurveyRepo,
	answerRepo repository.AnswerRepo,
	respondentRepo repository.RespondentRepo,
	analyticsRepo repository.AnalyticsRepo,
	snapshots cache.SnapshotCache,
	cfg *config.AnalyticsConfig,
	log *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		surveyRepo:     surveyRepo,
		answerRepo:     answerRepo,
		respondentRepo: respondentRepo,
		analyticsRepo:  analyticsRepo,
		snapshots:      snapshots,
		cfg:            cfg,
		log:            log,
	}
}

// SetBroadcaster injects the dashboard broadcaster (avoids import cycle)
func (s *AnalyticsService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// LoadCorpus materializes the survey's full question/answer/respondent set.
// Returns ErrSurveyNotFound when the survey id does not resolve.
func (s *AnalyticsService) LoadCorpus(ctx context.Context, surveyID string) (*SurveyCorpus, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}

	answers, err := s.answerRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	corpus := &SurveyCorpus{
		Survey:    survey,
		Questions: sortQuestions(survey.Questions),
		Answers:   answers,
	}

	ids := corpus.DistinctRespondentIDs()
	if len(ids) > 0 {
		respondents, err := s.respondentRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		corpus.Respondents = respondents
	}

	return corpus, nil
}

// Compute runs every analyzer over an immutable corpus and assembles the
// snapshot. Pure apart from the clock: identical corpora produce identical
// snapshots except GeneratedAt.
//
// Completion runs first because the quality score consumes its rate; the
// remaining analyzers only read the corpus and run concurrently.
func (s *AnalyticsService) Compute(corpus *SurveyCorpus, now time.Time) *model.AnalyticsSnapshot {
	completionRate, avgMinutes := analyzeCompletion(corpus.Questions, corpus.Answers)
	totalRespondents := len(corpus.DistinctRespondentIDs())

	snapshot := &model.AnalyticsSnapshot{
		SurveyID:                 corpus.Survey.ID,
		TotalResponses:           totalRespondents,
		CompletionRate:           completionRate,
		AverageCompletionMinutes: avgMinutes,
		GeneratedAt:              now,
	}

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		snapshot.ResponseQualityScore = scoreQuality(corpus.Questions, corpus.Answers, completionRate)
	}()
	go func() {
		defer wg.Done()
		snapshot.DemographicBreakdown = aggregateDemographics(corpus.Respondents, s.cfg, now)
	}()
	go func() {
		defer wg.Done()
		snapshot.QuestionAnalytics = buildQuestionAnalytics(corpus.Questions, corpus.Answers, totalRespondents, s.log)
	}()
	go func() {
		defer wg.Done()
		snapshot.SentimentAnalysis = analyzeSentiment(corpus.Questions, corpus.Answers, s.cfg)
	}()
	go func() {
		defer wg.Done()
		snapshot.TrendData = buildTrend(corpus.Answers)
	}()
	wg.Wait()

	return snapshot
}

// Generate recomputes and stores the analytics snapshot for a survey,
// replacing any previous one, then refreshes the cache and notifies
// subscribed dashboards.
func (s *AnalyticsService) Generate(ctx context.Context, surveyID string) (*model.AnalyticsSnapshot, error) {
	corpus, err := s.LoadCorpus(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	snapshot := s.Compute(corpus, time.Now())

	if err := s.analyticsRepo.UpsertSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}
	if err := s.snapshots.SetSnapshot(ctx, snapshot); err != nil {
		s.log.Warn("failed to cache snapshot", zap.String("surveyId", surveyID), zap.Error(err))
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToAdmins(surveyID, "analytics_updated", snapshot)
	}

	s.log.Info("analytics snapshot generated",
		zap.String("surveyId", surveyID),
		zap.Int("totalResponses", snapshot.TotalResponses),
		zap.Float64("completionRate", snapshot.CompletionRate))

	return snapshot, nil
}

// GetSnapshot serves the stored snapshot, cache first. Returns nil when no
// snapshot has been generated yet.
func (s *AnalyticsService) GetSnapshot(ctx context.Context, surveyID string) (*model.AnalyticsSnapshot, error) {
	if snapshot, err := s.snapshots.GetSnapshot(ctx, surveyID); err == nil && snapshot != nil {
		return snapshot, nil
	}

	snapshot, err := s.analyticsRepo.GetSnapshot(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, nil
	}

	if err := s.snapshots.SetSnapshot(ctx, snapshot); err != nil {
		s.log.Warn("failed to cache snapshot", zap.String("surveyId", surveyID), zap.Error(err))
	}
	return snapshot, nil
}
