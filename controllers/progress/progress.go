package controllers

import (
	"internhub/config"
	"internhub/database"
	"internhub/middleware"
	"internhub/models"
	"internhub/progress"
	"time"

	"github.com/gofiber/fiber/v2"
)

func riskPolicy() progress.Policy {
	if config.AppConfig == nil {
		return progress.DefaultPolicy()
	}
	return progress.Policy{
		AtRiskProgressBelow: config.AppConfig.AtRiskProgressBelow,
		AtRiskElapsedGap:    config.AppConfig.AtRiskElapsedGap,
	}
}

// AdminGetInternshipProgress evaluates every accepted intern of an internship
// against its learning path and returns the per-task and aggregate report.
func AdminGetInternshipProgress(c *fiber.Ctx) error {
	internshipID := c.Locals("internshipID").(int)

	db := database.Database.Db

	var internship models.Internship
	if err := db.Where("id = ? AND is_deleted = ?", internshipID, false).First(&internship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship not found!", nil)
	}

	// Snapshot everything the evaluator reads in one pass.
	var tasks []models.Task
	if internship.LearningPathID != nil {
		if err := db.Where("learning_path_id = ? AND is_deleted = ?", *internship.LearningPathID, false).
			Order("order_index asc, id asc").Find(&tasks).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tasks!", nil)
		}
	}

	var applications []models.Application
	if err := db.Preload("User").
		Where("internship_id = ? AND status = ? AND is_deleted = ?", internship.ID, models.ApplicationAccepted, false).
		Order("created_at asc, id asc").Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	interns := make([]models.User, 0, len(applications))
	userIDs := make([]uint, 0, len(applications))
	for _, app := range applications {
		interns = append(interns, app.User)
		userIDs = append(userIDs, app.UserID)
	}
	taskIDs := make([]uint, 0, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
	}

	var submissions []models.Submission
	var adjustments []models.DeadlineAdjustment
	if len(userIDs) > 0 && len(taskIDs) > 0 {
		if err := db.Where("user_id IN ? AND task_id IN ? AND is_deleted = ?", userIDs, taskIDs, false).
			Find(&submissions).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
		}
		if err := db.Where("user_id IN ? AND task_id IN ? AND is_deleted = ?", userIDs, taskIDs, false).
			Find(&adjustments).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch deadline adjustments!", nil)
		}
	}

	report := progress.Evaluate(progress.Snapshot{
		Internship:  internship,
		Tasks:       tasks,
		Interns:     interns,
		Submissions: submissions,
		Adjustments: adjustments,
	}, time.Now(), riskPolicy())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"internship": fiber.Map{
			"id":         internship.ID,
			"title":      internship.Title,
			"start_date": internship.StartDate,
			"end_date":   internship.EndDate,
		},
		"interns":      report.Interns,
		"summary":      report.Summary,
		"datesAssumed": report.DatesAssumed,
	})
}
