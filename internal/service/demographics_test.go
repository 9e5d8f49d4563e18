package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"surveymon/internal/config"
	"surveymon/internal/model"
)

func birthDate(y, m, d int) *time.Time {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAggregateDemographics(t *testing.T) {
	cfg := config.DefaultAnalyticsConfig()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	respondents := []model.Respondent{
		{ID: "r1", Gender: "female", BirthDate: birthDate(2000, 1, 1), CreatedAt: now.AddDate(0, 0, -10)},
		{ID: "r2", Gender: "male", BirthDate: birthDate(1990, 6, 1), CreatedAt: now.AddDate(0, -2, 0)},
		{ID: "r3", Gender: "", BirthDate: nil, CreatedAt: now.AddDate(-2, 0, 0)},
	}

	b := aggregateDemographics(respondents, cfg, now)

	assert.Equal(t, map[string]int{"female": 1, "male": 1, "unknown": 1}, b.Gender)
	assert.Equal(t, map[string]int{"20s": 1, "30s": 1, "unknown": 1}, b.AgeGroup)
	assert.Equal(t, map[string]int{"last_month": 1, "last_3_months": 1, "over_year": 1}, b.RegistrationRecency)
}

func TestAgeGroupLabelBoundaries(t *testing.T) {
	cfg := config.DefaultAnalyticsConfig()
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		birth *time.Time
		want  string
	}{
		{"nil birth date", nil, "unknown"},
		{"19 years old", birthDate(2006, 6, 1), "under_20"},
		{"exactly 20", birthDate(2006, 3, 15), "20s"},
		{"29 years old", birthDate(1996, 6, 1), "20s"},
		{"exactly 30", birthDate(1996, 3, 15), "30s"},
		{"59 years old", birthDate(1966, 6, 1), "50s"},
		{"exactly 60", birthDate(1966, 3, 15), "over_60"},
		{"birthday tomorrow", birthDate(1996, 3, 16), "20s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ageGroupLabel(tt.birth, cfg, now))
		})
	}
}

func TestRecencyLabelBoundaries(t *testing.T) {
	cfg := config.DefaultAnalyticsConfig()
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		created time.Time
		want    string
	}{
		{"two weeks ago", now.AddDate(0, 0, -14), "last_month"},
		{"exactly one month", now.AddDate(0, -1, 0), "last_3_months"},
		{"two months ago", now.AddDate(0, -2, 0), "last_3_months"},
		{"five months ago", now.AddDate(0, -5, 0), "last_6_months"},
		{"eleven months ago", now.AddDate(0, -11, 0), "last_year"},
		{"exactly one year", now.AddDate(-1, 0, 0), "over_year"},
		{"two years ago", now.AddDate(-2, 0, 0), "over_year"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recencyLabel(tt.created, cfg, now))
		})
	}
}

func TestWholeYears(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 30, wholeYears(time.Date(1996, 3, 15, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 29, wholeYears(time.Date(1996, 3, 16, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 0, wholeYears(now.AddDate(1, 0, 0), now))
}

func TestWholeMonths(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, wholeMonths(time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 0, wholeMonths(time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 12, wholeMonths(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 0, wholeMonths(now.AddDate(0, 1, 0), now))
}
