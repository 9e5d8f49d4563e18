package service

import (
	"time"

	"surveymon/internal/config"
	"surveymon/internal/model"
)

// aggregateDemographics buckets the survey's distinct respondents by gender,
// age group and registration recency, each grouping independent of the others.
func aggregateDemographics(respondents []model.Respondent, cfg *config.AnalyticsConfig, now time.Time) model.DemographicBreakdown {
	breakdown := model.DemographicBreakdown{
		Gender:              make(map[string]int),
		AgeGroup:            make(map[string]int),
		RegistrationRecency: make(map[string]int),
	}

	for _, r := range respondents {
		gender := r.Gender
		if gender == "" {
			gender = model.GenderUnknown
		}
		breakdown.Gender[gender]++
		breakdown.AgeGroup[ageGroupLabel(r.BirthDate, cfg, now)]++
		breakdown.RegistrationRecency[recencyLabel(r.CreatedAt, cfg, now)]++
	}

	return breakdown
}

func ageGroupLabel(birthDate *time.Time, cfg *config.AnalyticsConfig, now time.Time) string {
	if birthDate == nil {
		return cfg.AgeUnknownLabel
	}
	age := wholeYears(*birthDate, now)
	for _, b := range cfg.AgeBuckets {
		if age < b.Max {
			return b.Label
		}
	}
	return cfg.AgeOverflowLabel
}

func recencyLabel(createdAt time.Time, cfg *config.AnalyticsConfig, now time.Time) string {
	months := wholeMonths(createdAt, now)
	for _, b := range cfg.RecencyBuckets {
		if months < b.MaxMonths {
			return b.Label
		}
	}
	return cfg.RecencyOverflow
}

// wholeYears counts fully elapsed years between from and to.
func wholeYears(from, to time.Time) int {
	years := to.Year() - from.Year()
	if from.AddDate(years, 0, 0).After(to) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}

// wholeMonths counts fully elapsed calendar months between from and to.
func wholeMonths(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	return months
}
