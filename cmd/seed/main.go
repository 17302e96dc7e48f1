package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"remedyai/internal/model"
	"remedyai/internal/repository"
)

// Seeds a few completed survey records so the /v1/records operator view
// has data to show on a fresh database.
func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	mongoDB := os.Getenv("MONGO_DB")
	if mongoDB == "" {
		mongoDB = "remedyai"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	records := repository.NewRecordRepo(client.Database(mongoDB))

	samples := []*model.SurveyRecord{
		{
			Symptom:  "복통",
			Duration: "하루 이상",
			Severity: "매우 심함",
			Level:    model.LevelEmergency,
			Summary:  "지속된 극심한 복통은 즉각적인 응급 진료가 필요합니다.",
		},
		{
			Symptom:  "두통",
			Duration: "1~3시간",
			Severity: "중간",
			Level:    model.LevelCaution,
			Summary:  "경과를 지켜보되 악화 시 진료를 받으세요.",
		},
		{
			Symptom:  "호흡곤란",
			Duration: "1시간 미만",
			Severity: "약함",
			Level:    model.LevelStable,
			Summary:  "안정을 취하며 증상 변화를 관찰하세요.",
		},
	}

	for _, rec := range samples {
		if err := records.Insert(ctx, rec); err != nil {
			log.Fatalf("Failed to insert record: %v", err)
		}
	}

	fmt.Printf("Seeded %d survey records into %s.survey_results\n", len(samples), mongoDB)
}
