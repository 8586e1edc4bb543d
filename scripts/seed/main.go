package main

import (
	"log"
	"time"

	"rauha/config"
	"rauha/database"
	"rauha/models"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	// Clear existing data
	db.Where("1 = 1").Delete(&models.UserProgress{})
	db.Where("1 = 1").Delete(&models.Step{})
	db.Where("1 = 1").Delete(&models.Module{})
	db.Where("1 = 1").Delete(&models.Therapy{})
	db.Where("1 = 1").Delete(&models.User{})
	log.Println("Cleared existing data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash sample password: %v", err)
	}

	therapist := models.User{Name: "Dr. Sarah Johnson", Email: "therapist@rauha.com", Password: string(hash), Role: models.RoleTherapist}
	patient1 := models.User{Name: "John Doe", Email: "john@example.com", Password: string(hash), Role: models.RolePatient}
	patient2 := models.User{Name: "Jane Smith", Email: "jane@example.com", Password: string(hash), Role: models.RolePatient}
	for _, user := range []*models.User{&therapist, &patient1, &patient2} {
		if err := db.Create(user).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", user.Email, err)
		}
	}
	log.Println("Created sample users")

	anxiety := models.Therapy{
		Title:       "Anxiety Management",
		Description: "A comprehensive CBT program to help manage anxiety symptoms through proven techniques.",
		Category:    "anxiety",
		Duration:    8,
		CreatedByID: therapist.ID,
	}
	depression := models.Therapy{
		Title:       "Depression Recovery",
		Description: "Evidence-based cognitive behavioral therapy for depression recovery.",
		Category:    "depression",
		Duration:    12,
		CreatedByID: therapist.ID,
	}
	for _, therapy := range []*models.Therapy{&anxiety, &depression} {
		if err := db.Create(therapy).Error; err != nil {
			log.Fatalf("Failed to create therapy %s: %v", therapy.Title, err)
		}
	}
	log.Println("Created sample therapies")

	modules := []models.Module{
		{Title: "Understanding Anxiety", Description: "Learn about the nature of anxiety and how it affects your mind and body.", TherapyID: anxiety.ID, OrderIndex: 0, Type: models.ModuleLesson},
		{Title: "Breathing Techniques", Description: "Master breathing exercises to manage anxiety in the moment.", TherapyID: anxiety.ID, OrderIndex: 1, Type: models.ModuleExercise},
		{Title: "Thought Challenging", Description: "Learn to identify and challenge anxious thoughts.", TherapyID: anxiety.ID, OrderIndex: 2, Type: models.ModuleLesson},
		{Title: "Understanding Depression", Description: "Learn about depression and its impact on daily life.", TherapyID: depression.ID, OrderIndex: 0, Type: models.ModuleLesson},
		{Title: "Mood Tracking", Description: "Learn to track and understand your mood patterns.", TherapyID: depression.ID, OrderIndex: 1, Type: models.ModuleExercise},
	}
	for i := range modules {
		if err := db.Create(&modules[i]).Error; err != nil {
			log.Fatalf("Failed to create module %s: %v", modules[i].Title, err)
		}
	}
	log.Println("Created sample modules")

	steps := []models.Step{
		{Title: "What is Anxiety?", Content: "Anxiety is a natural response to stress. It's your body's way of alerting you to danger.", ModuleID: modules[0].ID, OrderIndex: 0, Type: models.StepReading},
		{Title: "Anxiety Symptoms", Content: "Common symptoms include rapid heartbeat, sweating, trembling, and feelings of worry.", ModuleID: modules[0].ID, OrderIndex: 1, Type: models.StepReading},
		{Title: "Anxiety Quiz", Content: "Test your understanding of anxiety concepts.", ModuleID: modules[0].ID, OrderIndex: 2, Type: models.StepQuiz},
		{Title: "Basic Breathing Exercise", Content: "Practice the 4-7-8 breathing technique: Inhale for 4, hold for 7, exhale for 8.", ModuleID: modules[1].ID, OrderIndex: 0, Type: models.StepExercise},
		{Title: "Progressive Muscle Relaxation", Content: "Learn to tense and relax different muscle groups to reduce physical anxiety.", ModuleID: modules[1].ID, OrderIndex: 1, Type: models.StepExercise},
		{Title: "Understanding Depression", Content: "Depression is more than just feeling sad. It affects how you think, feel, and behave.", ModuleID: modules[3].ID, OrderIndex: 0, Type: models.StepReading},
		{Title: "Depression Symptoms", Content: "Symptoms include persistent sadness, loss of interest, fatigue, and difficulty concentrating.", ModuleID: modules[3].ID, OrderIndex: 1, Type: models.StepReading},
		{Title: "Daily Mood Check", Content: "Rate your mood on a scale of 1-10 and note any triggers or patterns.", ModuleID: modules[4].ID, OrderIndex: 0, Type: models.StepExercise},
	}
	for i := range steps {
		if err := db.Create(&steps[i]).Error; err != nil {
			log.Fatalf("Failed to create step %s: %v", steps[i].Title, err)
		}
	}
	log.Println("Created sample steps")

	daysAgo := func(days int) *time.Time {
		t := time.Now().AddDate(0, 0, -days)
		return &t
	}

	progress := []models.UserProgress{
		{UserID: patient1.ID, StepID: steps[0].ID, Status: models.ProgressCompleted, CompletedAt: daysAgo(2)},
		{UserID: patient1.ID, StepID: steps[1].ID, Status: models.ProgressCompleted, CompletedAt: daysAgo(1)},
		{UserID: patient2.ID, StepID: steps[0].ID, Status: models.ProgressCompleted, CompletedAt: daysAgo(3)},
		{UserID: patient2.ID, StepID: steps[5].ID, Status: models.ProgressCompleted, CompletedAt: daysAgo(1)},
	}
	for i := range progress {
		if err := db.Create(&progress[i]).Error; err != nil {
			log.Fatalf("Failed to create progress row: %v", err)
		}
	}
	log.Println("Created sample progress data")

	log.Println("Database seeded successfully")
	log.Println("Therapist: therapist@rauha.com / password123")
	log.Println("Patient 1: john@example.com / password123")
	log.Println("Patient 2: jane@example.com / password123")
}
