package main

import (
	"internhub/config"
	"internhub/database"
	"internhub/models"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Seeds a demo internship with a learning path, tasks, interns and some
// submissions. Local development only.
func main() {
	config.LoadConfig()
	database.ConnectDb()
	db := database.Database.Db

	admin := models.User{Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin}
	intern1 := models.User{Name: "Aida Nurlan", Email: "aida@example.com", Role: models.RoleIntern, University: "KBTU", Major: "CS"}
	intern2 := models.User{Name: "Bekzat Omar", Email: "bekzat@example.com", Role: models.RoleIntern, University: "NU", Major: "SE"}
	for _, u := range []*models.User{&admin, &intern1, &intern2} {
		if err := db.Where("email = ?", u.Email).FirstOrCreate(u).Error; err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.Email, err)
		}
	}

	path := models.LearningPath{Title: "Backend Track", Description: "Go backend onboarding curriculum"}
	if err := db.Where("title = ?", path.Title).FirstOrCreate(&path).Error; err != nil {
		log.Fatalf("Failed to seed learning path: %v", err)
	}

	taskDefs := []struct {
		title   string
		offset  int
		content string
	}{
		{"Environment setup", 3, `{"type":"markdown","body":"Install Go and set up the repo."}`},
		{"First CRUD endpoint", 7, `{"type":"markdown","body":"Build a small CRUD service."}`},
		{"Database layer", 14, `{"type":"markdown","body":"Model the schema and wire the ORM."}`},
		{"Final project", 28, `{"type":"markdown","body":"Ship the capstone service."}`},
	}
	tasks := make([]models.Task, 0, len(taskDefs))
	for i, def := range taskDefs {
		task := models.Task{
			LearningPathID: path.ID,
			Title:          def.title,
			OrderIndex:     i,
			DeadlineOffset: def.offset,
			Content:        datatypes.JSON(def.content),
		}
		if err := db.Where("learning_path_id = ? AND title = ?", path.ID, def.title).FirstOrCreate(&task).Error; err != nil {
			log.Fatalf("Failed to seed task %s: %v", def.title, err)
		}
		tasks = append(tasks, task)
	}

	start := time.Now().AddDate(0, 0, -10)
	end := start.AddDate(0, 2, 0)
	internship := models.Internship{
		Title:          "Summer Backend Internship",
		Description:    "Two month backend internship on the platform team.",
		Capacity:       10,
		StartDate:      &start,
		EndDate:        &end,
		LearningPathID: &path.ID,
		IsPublished:    true,
		FormSchema:     datatypes.JSON(`{"fields":[{"name":"motivation","type":"textarea","required":true}]}`),
	}
	if err := db.Where("title = ?", internship.Title).FirstOrCreate(&internship).Error; err != nil {
		log.Fatalf("Failed to seed internship: %v", err)
	}

	reviewedAt := time.Now().AddDate(0, 0, -9)
	for _, intern := range []models.User{intern1, intern2} {
		app := models.Application{
			UserID:       intern.ID,
			InternshipID: internship.ID,
			TrackingCode: uuid.NewString(),
			Status:       models.ApplicationAccepted,
			ReviewedAt:   &reviewedAt,
			Responses:    datatypes.JSON(`{"motivation":"I want to learn Go."}`),
		}
		if err := db.Where("user_id = ? AND internship_id = ?", intern.ID, internship.ID).FirstOrCreate(&app).Error; err != nil {
			log.Fatalf("Failed to seed application for %s: %v", intern.Email, err)
		}
	}

	// intern1 finished the first task, intern2 has one awaiting review
	sub1 := models.Submission{
		UserID: intern1.ID, TaskID: tasks[0].ID,
		FileURL: "https://storage.example.com/demo/setup.zip",
		Status:  models.SubmissionApproved, SubmittedAt: time.Now().AddDate(0, 0, -8),
	}
	sub2 := models.Submission{
		UserID: intern2.ID, TaskID: tasks[0].ID,
		FileURL: "https://storage.example.com/demo/setup2.zip",
		Status:  models.SubmissionPending, SubmittedAt: time.Now().AddDate(0, 0, -1),
	}
	for _, s := range []*models.Submission{&sub1, &sub2} {
		if err := db.Where("user_id = ? AND task_id = ?", s.UserID, s.TaskID).FirstOrCreate(s).Error; err != nil {
			log.Fatalf("Failed to seed submission: %v", err)
		}
	}

	adjustment := models.DeadlineAdjustment{
		UserID: intern2.ID, TaskID: tasks[1].ID,
		NewDeadlineOffset: 14, Reason: "Joined one week late", CreatedBy: admin.ID,
	}
	if err := db.Where("user_id = ? AND task_id = ? AND is_deleted = ?", adjustment.UserID, adjustment.TaskID, false).
		FirstOrCreate(&adjustment).Error; err != nil {
		log.Fatalf("Failed to seed deadline adjustment: %v", err)
	}

	log.Println("Demo data seeded successfully.")
}
