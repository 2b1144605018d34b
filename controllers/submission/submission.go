package controllers

import (
	"internhub/database"
	"internhub/middleware"
	"internhub/models"
	"log"
	"time"

	submissionValidator "internhub/validators/submission"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// canSubmit reports whether the user holds an accepted application to an
// internship whose learning path contains the task.
func canSubmit(db *gorm.DB, userID uint, task models.Task) bool {
	var count int64
	db.Model(&models.Application{}).
		Joins("JOIN internships ON internships.id = applications.internship_id").
		Where("applications.user_id = ? AND applications.status = ? AND applications.is_deleted = ?",
			userID, models.ApplicationAccepted, false).
		Where("internships.learning_path_id = ? AND internships.is_deleted = ?", task.LearningPathID, false).
		Count(&count)
	return count > 0
}

// SubmitTask creates the user's submission for a task, or rewrites it in place
// when the previous review asked for changes.
func SubmitTask(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	taskID := c.Locals("taskID").(int)
	reqData := c.Locals("validatedSubmission").(*submissionValidator.SubmitRequest)

	db := database.Database.Db

	var task models.Task
	if err := db.Where("id = ? AND is_deleted = ?", taskID, false).First(&task).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found!", nil)
	}

	if !canSubmit(db, userID, task) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not an accepted intern for this task!", nil)
	}

	now := time.Now()

	// Resubmission path: one conditional update keyed on REQUIRES_CHANGES so
	// concurrent submits cannot double-apply.
	res := db.Model(&models.Submission{}).
		Where("user_id = ? AND task_id = ? AND status = ? AND is_deleted = ?",
			userID, task.ID, models.SubmissionRequiresChanges, false).
		Updates(map[string]interface{}{
			"status":        models.SubmissionPending,
			"file_url":      reqData.FileURL,
			"comment":       reqData.Comment,
			"feedback":      "",
			"admin_comment": "",
			"submitted_at":  now,
			"reviewed_at":   nil,
		})
	if res.Error != nil {
		log.Printf("Error resubmitting task %d for user %d: %v", task.ID, userID, res.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit task!", nil)
	}
	if res.RowsAffected > 0 {
		var submission models.Submission
		db.Where("user_id = ? AND task_id = ?", userID, task.ID).First(&submission)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Task resubmitted successfully!", submission)
	}

	// No REQUIRES_CHANGES row to rewrite: any other existing submission blocks
	var existing models.Submission
	if err := db.Where("user_id = ? AND task_id = ? AND is_deleted = ?", userID, task.ID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already submitted this task!", nil)
	}

	submission := models.Submission{
		UserID:      userID,
		TaskID:      task.ID,
		FileURL:     reqData.FileURL,
		Comment:     reqData.Comment,
		Status:      models.SubmissionPending,
		SubmittedAt: now,
	}

	// The (user_id, task_id) unique index turns a concurrent double-create
	// into a conflict instead of a duplicate row.
	if err := db.Create(&submission).Error; err != nil {
		log.Printf("Error creating submission for task %d user %d: %v", task.ID, userID, err)
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already submitted this task!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Task submitted successfully!", submission)
}

// GetMySubmissions lists the caller's submissions with task titles
func GetMySubmissions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var submissions []models.Submission
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("submitted_at desc").Find(&submissions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	type SubmissionWithTask struct {
		models.Submission
		TaskTitle string `json:"task_title"`
	}

	result := make([]SubmissionWithTask, len(submissions))
	for i, s := range submissions {
		result[i] = SubmissionWithTask{Submission: s}
		var task models.Task
		if err := db.Select("title").Where("id = ?", s.TaskID).First(&task).Error; err == nil {
			result[i].TaskTitle = task.Title
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", result)
}
