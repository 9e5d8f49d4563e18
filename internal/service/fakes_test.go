package service

import (
	"context"

	"surveymon/internal/model"
)

// In-memory repository fakes shared by the service tests.

type fakeSurveyRepo struct {
	surveys map[string]*model.Survey
}

func newFakeSurveyRepo(surveys ...*model.Survey) *fakeSurveyRepo {
	r := &fakeSurveyRepo{surveys: make(map[string]*model.Survey)}
	for _, s := range surveys {
		r.surveys[s.ID] = s
	}
	return r
}

func (r *fakeSurveyRepo) Create(ctx context.Context, survey *model.Survey) (string, error) {
	if survey.ID == "" {
		survey.ID = "generated"
	}
	r.surveys[survey.ID] = survey
	return survey.ID, nil
}

func (r *fakeSurveyRepo) GetByID(ctx context.Context, id string) (*model.Survey, error) {
	return r.surveys[id], nil
}

func (r *fakeSurveyRepo) GetByAdminID(ctx context.Context, adminID string) ([]*model.Survey, error) {
	var out []*model.Survey
	for _, s := range r.surveys {
		if s.AdminID == adminID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSurveyRepo) Update(ctx context.Context, survey *model.Survey) error {
	r.surveys[survey.ID] = survey
	return nil
}

func (r *fakeSurveyRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if s, ok := r.surveys[id]; ok {
		s.Status = status
	}
	return nil
}

func (r *fakeSurveyRepo) Delete(ctx context.Context, id string) error {
	delete(r.surveys, id)
	return nil
}

type fakeAnswerRepo struct {
	answers []model.Answer
}

func (r *fakeAnswerRepo) Upsert(ctx context.Context, answer *model.Answer) error {
	for i, a := range r.answers {
		if a.QuestionID == answer.QuestionID && a.RespondentID == answer.RespondentID {
			r.answers[i] = *answer
			return nil
		}
	}
	r.answers = append(r.answers, *answer)
	return nil
}

func (r *fakeAnswerRepo) GetBySurveyID(ctx context.Context, surveyID string) ([]model.Answer, error) {
	var out []model.Answer
	for _, a := range r.answers {
		if a.SurveyID == surveyID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAnswerRepo) GetByRespondentID(ctx context.Context, surveyID, respondentID string) ([]model.Answer, error) {
	var out []model.Answer
	for _, a := range r.answers {
		if a.SurveyID == surveyID && a.RespondentID == respondentID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAnswerRepo) DeleteBySurveyID(ctx context.Context, surveyID string) error {
	var kept []model.Answer
	for _, a := range r.answers {
		if a.SurveyID != surveyID {
			kept = append(kept, a)
		}
	}
	r.answers = kept
	return nil
}

type fakeRespondentRepo struct {
	respondents map[string]model.Respondent
}

func newFakeRespondentRepo() *fakeRespondentRepo {
	return &fakeRespondentRepo{respondents: make(map[string]model.Respondent)}
}

func (r *fakeRespondentRepo) Upsert(ctx context.Context, respondent *model.Respondent) error {
	r.respondents[respondent.ID] = *respondent
	return nil
}

func (r *fakeRespondentRepo) GetByID(ctx context.Context, id string) (*model.Respondent, error) {
	if resp, ok := r.respondents[id]; ok {
		return &resp, nil
	}
	return nil, nil
}

func (r *fakeRespondentRepo) GetByIDs(ctx context.Context, ids []string) ([]model.Respondent, error) {
	var out []model.Respondent
	for _, id := range ids {
		if resp, ok := r.respondents[id]; ok {
			out = append(out, resp)
		}
	}
	return out, nil
}

type fakeAnalyticsRepo struct {
	snapshots map[string]*model.AnalyticsSnapshot
	insights  []model.Insight
}

func newFakeAnalyticsRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{snapshots: make(map[string]*model.AnalyticsSnapshot)}
}

func (r *fakeAnalyticsRepo) UpsertSnapshot(ctx context.Context, snapshot *model.AnalyticsSnapshot) error {
	r.snapshots[snapshot.SurveyID] = snapshot
	return nil
}

func (r *fakeAnalyticsRepo) GetSnapshot(ctx context.Context, surveyID string) (*model.AnalyticsSnapshot, error) {
	return r.snapshots[surveyID], nil
}

func (r *fakeAnalyticsRepo) InsertInsights(ctx context.Context, insights []model.Insight) error {
	r.insights = append(r.insights, insights...)
	return nil
}

func (r *fakeAnalyticsRepo) ListInsights(ctx context.Context, surveyID string) ([]model.Insight, error) {
	var out []model.Insight
	for _, i := range r.insights {
		if i.SurveyID == surveyID {
			out = append(out, i)
		}
	}
	return out, nil
}

type fakeSnapshotCache struct {
	snapshots   map[string]*model.AnalyticsSnapshot
	invalidated []string
}

func newFakeSnapshotCache() *fakeSnapshotCache {
	return &fakeSnapshotCache{snapshots: make(map[string]*model.AnalyticsSnapshot)}
}

func (c *fakeSnapshotCache) GetSnapshot(ctx context.Context, surveyID string) (*model.AnalyticsSnapshot, error) {
	return c.snapshots[surveyID], nil
}

func (c *fakeSnapshotCache) SetSnapshot(ctx context.Context, snapshot *model.AnalyticsSnapshot) error {
	c.snapshots[snapshot.SurveyID] = snapshot
	return nil
}

func (c *fakeSnapshotCache) Invalidate(ctx context.Context, surveyID string) error {
	delete(c.snapshots, surveyID)
	c.invalidated = append(c.invalidated, surveyID)
	return nil
}

type fakeBroadcaster struct {
	messages []string
}

func (b *fakeBroadcaster) BroadcastToAdmins(surveyID string, msgType string, payload interface{}) {
	b.messages = append(b.messages, msgType)
}
