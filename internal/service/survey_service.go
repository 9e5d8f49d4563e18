package service

import (
	"context"
	"fmt"

	"surveymon/internal/model"
	"surveymon/internal/repository"
)

// SurveyService handles survey CRUD operations
type SurveyService struct {
	surveyRepo repository.SurveyRepo
}

// NewSurveyService creates a new survey service
func NewSurveyService(surveyRepo repository.SurveyRepo) *SurveyService {
	return &SurveyService{
		surveyRepo: surveyRepo,
	}
}

// Create validates and creates a new survey
func (s *SurveyService) Create(ctx context.Context, survey *model.Survey) (string, error) {
	if err := validateQuestions(survey.Questions); err != nil {
		return "", err
	}
	return s.surveyRepo.Create(ctx, survey)
}

// GetByID retrieves a survey by ID; returns ErrSurveyNotFound if absent
func (s *SurveyService) GetByID(ctx context.Context, id string) (*model.Survey, error) {
	survey, err := s.surveyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	return survey, nil
}

// GetByAdminID retrieves all surveys for an admin
func (s *SurveyService) GetByAdminID(ctx context.Context, adminID string) ([]*model.Survey, error) {
	return s.surveyRepo.GetByAdminID(ctx, adminID)
}

// Update updates an existing survey
func (s *SurveyService) Update(ctx context.Context, survey *model.Survey) error {
	if err := validateQuestions(survey.Questions); err != nil {
		return err
	}
	return s.surveyRepo.Update(ctx, survey)
}

// Delete deletes a survey
func (s *SurveyService) Delete(ctx context.Context, id string) error {
	return s.surveyRepo.Delete(ctx, id)
}

var surveyStatuses = map[string]bool{
	"draft":  true,
	"active": true,
	"closed": true,
}

// SetStatus moves a survey through its lifecycle (draft, active, closed)
// without replacing the document.
func (s *SurveyService) SetStatus(ctx context.Context, id, status string) error {
	if !surveyStatuses[status] {
		return fmt.Errorf("unknown survey status %q", status)
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.surveyRepo.UpdateStatus(ctx, id, status)
}

// validateQuestions fails fast on data-integrity violations: closed-form
// questions must carry a non-empty option set.
func validateQuestions(questions []model.Question) error {
	for _, q := range questions {
		if q.Type.IsClosedForm() && len(q.Options) == 0 {
			return fmt.Errorf("question %q: type %s requires options", q.ID, q.Type)
		}
	}
	return nil
}
