package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"surveymon/internal/config"
	"surveymon/internal/model"
)

// Seeds a demo survey with respondents and answers so the analytics
// pipeline has data to chew on right after a fresh install.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)

	now := time.Now()
	survey := model.Survey{
		AdminID:     "admin_demo",
		Title:       "Smartphone Launch Feedback",
		Description: "Understand user perception, satisfaction, and improvement areas for the new device.",
		Points:      100,
		Status:      "active",
		Questions: []model.Question{
			{
				ID:         "q1",
				Text:       "On a scale from 1 to 5, how satisfied are you with this smartphone overall?",
				Type:       model.QuestionTypeRating,
				Options:    []string{"1", "2", "3", "4", "5"},
				IsRequired: true,
				OrderIndex: 0,
			},
			{
				ID:         "q2",
				Text:       "Which model did you purchase?",
				Type:       model.QuestionTypeRadio,
				Options:    []string{"Standard Model", "Pro / Plus Model", "Ultra / Max Model"},
				IsRequired: true,
				OrderIndex: 1,
			},
			{
				ID:         "q3",
				Text:       "Which features do you use daily?",
				Type:       model.QuestionTypeCheckbox,
				Options:    []string{"Camera", "Battery saver", "Face unlock", "Wireless charging"},
				OrderIndex: 2,
			},
			{
				ID:         "q4",
				Text:       "What is one thing you would improve or change about this smartphone?",
				Type:       model.QuestionTypeTextarea,
				OrderIndex: 3,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := db.Collection("surveys").InsertOne(ctx, survey)
	if err != nil {
		log.Fatalf("Failed to insert survey: %v", err)
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		log.Fatalf("Unexpected inserted id type: %T", result.InsertedID)
	}
	surveyID := oid.Hex()

	birth := func(y, m, d int) *time.Time {
		t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
		return &t
	}
	respondents := []interface{}{
		model.Respondent{ID: "resp_demo_1", Gender: "female", BirthDate: birth(1998, 5, 12), CreatedAt: now.AddDate(0, 0, -20)},
		model.Respondent{ID: "resp_demo_2", Gender: "male", BirthDate: birth(1985, 11, 3), CreatedAt: now.AddDate(0, -4, 0)},
		model.Respondent{ID: "resp_demo_3", Gender: "female", BirthDate: birth(2004, 2, 28), CreatedAt: now.AddDate(-2, 0, 0)},
		model.Respondent{ID: "resp_demo_4", Gender: "", CreatedAt: now.AddDate(0, -8, 0)},
	}
	if _, err := db.Collection("respondents").InsertMany(ctx, respondents); err != nil {
		log.Fatalf("Failed to insert respondents: %v", err)
	}

	type seedAnswer struct {
		questionID   string
		respondentID string
		value        string
		daysAgo      int
	}
	seedAnswers := []seedAnswer{
		// resp_demo_1 completes the survey
		{"q1", "resp_demo_1", "5", 3},
		{"q2", "resp_demo_1", "Pro / Plus Model", 3},
		{"q3", "resp_demo_1", `["Camera","Face unlock"]`, 3},
		{"q4", "resp_demo_1", "カメラがとても使いやすくて満足です", 3},
		// resp_demo_2 completes the survey
		{"q1", "resp_demo_2", "4", 2},
		{"q2", "resp_demo_2", "Standard Model", 2},
		{"q3", "resp_demo_2", `["Battery saver"]`, 2},
		{"q4", "resp_demo_2", "バッテリーの持ちが悪いのが不満です", 2},
		// resp_demo_3 drops out after two questions
		{"q1", "resp_demo_3", "5", 1},
		{"q2", "resp_demo_3", "Pro / Plus Model", 1},
		// resp_demo_4 answers a single question
		{"q4", "resp_demo_4", "特にありません", 1},
	}
	answers := make([]interface{}, 0, len(seedAnswers))
	for i, a := range seedAnswers {
		answers = append(answers, model.Answer{
			ID:           fmt.Sprintf("ans_demo_%d", i+1),
			SurveyID:     surveyID,
			QuestionID:   a.questionID,
			RespondentID: a.respondentID,
			Value:        a.value,
			AnsweredAt:   now.AddDate(0, 0, -a.daysAgo).Add(time.Duration(i) * time.Minute),
		})
	}
	if _, err := db.Collection("answers").InsertMany(ctx, answers); err != nil {
		log.Fatalf("Failed to insert answers: %v", err)
	}

	fmt.Printf("Seeded survey '%s' (%s) with %d respondents and %d answers\n",
		survey.Title, surveyID, len(respondents), len(seedAnswers))
}
