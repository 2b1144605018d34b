package controllers

import (
	"internhub/database"
	"internhub/middleware"
	"internhub/models"
	"log"
	"strings"

	applicationValidator "internhub/validators/application"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// emptyJSON reports whether raw carries no form data
func emptyJSON(raw []byte) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null" || s == "{}" || s == "[]"
}

// ApplyToInternship submits a candidate's application
func ApplyToInternship(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedApplication").(*applicationValidator.ApplyRequest)

	db := database.Database.Db

	var internship models.Internship
	if err := db.Where("id = ? AND is_published = ? AND is_deleted = ?", reqData.InternshipID, true, false).First(&internship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship not found or not open!", nil)
	}

	// An internship with an application form requires answers
	if !emptyJSON(internship.FormSchema) && emptyJSON(reqData.Responses) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This internship requires application form responses!", nil)
	}

	// One live application per (user, internship); the unique index backstops
	// this check.
	var existing models.Application
	if err := db.Where("user_id = ? AND internship_id = ? AND is_deleted = ?", userID, internship.ID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already applied to this internship!", nil)
	}

	if internship.Capacity > 0 {
		var accepted int64
		db.Model(&models.Application{}).
			Where("internship_id = ? AND status = ? AND is_deleted = ?", internship.ID, models.ApplicationAccepted, false).
			Count(&accepted)
		if accepted >= int64(internship.Capacity) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Internship is already full!", nil)
		}
	}

	application := models.Application{
		UserID:       userID,
		InternshipID: internship.ID,
		TrackingCode: uuid.NewString(),
		Status:       models.ApplicationPending,
		Responses:    datatypes.JSON(reqData.Responses),
	}

	if err := db.Create(&application).Error; err != nil {
		log.Printf("Error creating application: %v", err)
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Failed to submit application!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application submitted successfully!", application)
}

// GetMyApplications lists the caller's applications
func GetMyApplications(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var applications []models.Application
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	type ApplicationWithInternship struct {
		models.Application
		InternshipTitle string `json:"internship_title"`
	}

	result := make([]ApplicationWithInternship, len(applications))
	for i, app := range applications {
		result[i] = ApplicationWithInternship{Application: app}
		var internship models.Internship
		if err := db.Select("title").Where("id = ?", app.InternshipID).First(&internship).Error; err == nil {
			result[i].InternshipTitle = internship.Title
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", result)
}
