package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"surveymon/internal/cache"
	"surveymon/internal/model"
	"surveymon/internal/repository"
)

// AnswerService handles answer submission. Each submission upserts the
// respondent record and the (question, respondent) answer, then invalidates
// the survey's cached snapshot so the next analytics read is fresh.
type AnswerService struct {
	surveyRepo     repository.SurveyRepo
	answerRepo     repository.AnswerRepo
	respondentRepo repository.RespondentRepo
	snapshots      cache.SnapshotCache
	log            *zap.Logger
}

// NewAnswerService creates a new answer service
func NewAnswerService(
	surveyRepo repository.SurveyRepo,
	answerRepo repository.AnswerRepo,
	respondentRepo repository.RespondentRepo,
	snapshots cache.SnapshotCache,
	log *zap.Logger,
) *AnswerService {
	return &AnswerService{
		surveyRepo:     surveyRepo,
		answerRepo:     answerRepo,
		respondentRepo: respondentRepo,
		snapshots:      snapshots,
		log:            log,
	}
}

// Submit stores one respondent's answer to one question. Re-submitting the
// same (question, respondent) pair replaces the previous answer.
func (s *AnswerService) Submit(ctx context.Context, answer *model.Answer, respondent *model.Respondent) error {
	survey, err := s.surveyRepo.GetByID(ctx, answer.SurveyID)
	if err != nil {
		return err
	}
	if survey == nil {
		return ErrSurveyNotFound
	}

	found := false
	for _, q := range survey.Questions {
		if q.ID == answer.QuestionID {
			found = true
			break
		}
	}
	if !found {
		return ErrQuestionNotFound
	}

	if answer.AnsweredAt.IsZero() {
		answer.AnsweredAt = time.Now()
	}

	if respondent != nil {
		respondent.ID = answer.RespondentID
		if err := s.respondentRepo.Upsert(ctx, respondent); err != nil {
			return err
		}
	}

	if err := s.answerRepo.Upsert(ctx, answer); err != nil {
		return err
	}

	if err := s.snapshots.Invalidate(ctx, answer.SurveyID); err != nil {
		s.log.Warn("failed to invalidate snapshot cache",
			zap.String("surveyId", answer.SurveyID), zap.Error(err))
	}

	return nil
}
