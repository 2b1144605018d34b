package controllers

import (
	"internhub/database"
	"internhub/middleware"
	"internhub/models"
	"internhub/utils"
	"log"
	"time"

	applicationValidator "internhub/validators/application"

	"github.com/gofiber/fiber/v2"
)

// AdminListApplications lists an internship's applications, optionally by status
func AdminListApplications(c *fiber.Ctx) error {
	internshipID := c.Locals("internshipID").(int)
	statusFilter, _ := c.Locals("statusFilter").(string)

	db := database.Database.Db

	var internship models.Internship
	if err := db.Where("id = ? AND is_deleted = ?", internshipID, false).First(&internship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship not found!", nil)
	}

	query := db.Where("internship_id = ? AND is_deleted = ?", internship.ID, false)
	if statusFilter != "" {
		query = query.Where("status = ?", statusFilter)
	}

	var applications []models.Application
	if err := query.Preload("User").Order("created_at asc").Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", applications)
}

// AdminReviewApplication accepts or rejects a pending application
func AdminReviewApplication(c *fiber.Ctx) error {
	applicationID := c.Locals("applicationID").(int)
	reqData := c.Locals("validatedReview").(*applicationValidator.ReviewRequest)

	db := database.Database.Db

	var application models.Application
	if err := db.Preload("User").Where("id = ? AND is_deleted = ?", applicationID, false).First(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	if application.Status != models.ApplicationPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Application has already been reviewed!", nil)
	}

	var internship models.Internship
	if err := db.Where("id = ?", application.InternshipID).First(&internship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship not found!", nil)
	}

	if reqData.Status == models.ApplicationAccepted && internship.Capacity > 0 {
		var accepted int64
		db.Model(&models.Application{}).
			Where("internship_id = ? AND status = ? AND is_deleted = ?", internship.ID, models.ApplicationAccepted, false).
			Count(&accepted)
		if accepted >= int64(internship.Capacity) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Internship capacity is already reached!", nil)
		}
	}

	now := time.Now()
	application.Status = reqData.Status
	application.ReviewedAt = &now
	application.Feedback = reqData.Feedback

	if err := db.Save(&application).Error; err != nil {
		log.Printf("Error reviewing application %d: %v", application.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to review application!", nil)
	}

	// Notify the candidate (async)
	go func(app models.Application, internshipTitle string) {
		if app.User.Email != "" {
			if err := utils.SendApplicationDecisionEmail(app.User.Email, app.User.Name, internshipTitle, app.Status, app.Feedback); err != nil {
				log.Printf("Error sending decision email for application %d: %v", app.ID, err)
			}
		}
		event := "application.rejected"
		if app.Status == models.ApplicationAccepted {
			event = "application.accepted"
		}
		utils.PostWebhookEvent(event, fiber.Map{
			"application_id": app.ID,
			"tracking_code":  app.TrackingCode,
			"user_id":        app.UserID,
			"internship_id":  app.InternshipID,
			"status":         app.Status,
		})
	}(application, internship.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application reviewed successfully!", application)
}
