package controllers

import (
	"internhub/database"
	"internhub/middleware"
	"internhub/models"

	"github.com/gofiber/fiber/v2"
)

// GetPublishedInternships lists open internships for candidates
func GetPublishedInternships(c *fiber.Ctx) error {
	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Internship{}).
		Where("is_published = ? AND is_deleted = ?", true, false)

	var total int64
	db.Count(&total)

	var internships []models.Internship
	if err := db.Offset(offset).Limit(limit).Order("start_date asc").Find(&internships).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch internships!", nil)
	}

	response := map[string]interface{}{
		"internships": internships,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Internships fetched successfully!", response)
}

// GetInternshipDetails fetches one published internship, its task outline and
// whether the caller already applied
func GetInternshipDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	internshipID := c.Locals("internshipID").(int)

	db := database.Database.Db

	var internship models.Internship
	if err := db.Where("id = ? AND is_published = ? AND is_deleted = ?", internshipID, true, false).First(&internship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship not found!", nil)
	}

	var tasks []models.Task
	if internship.LearningPathID != nil {
		db.Select("id, title, order_index, deadline_offset").
			Where("learning_path_id = ? AND is_deleted = ?", *internship.LearningPathID, false).
			Order("order_index asc, id asc").Find(&tasks)
	}

	var application models.Application
	hasApplied := db.Where("user_id = ? AND internship_id = ? AND is_deleted = ?", userID, internship.ID, false).
		First(&application).Error == nil

	result := fiber.Map{
		"internship":  internship,
		"tasks":       tasks,
		"has_applied": hasApplied,
	}
	if hasApplied {
		result["application"] = application
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Internship details fetched successfully!", result)
}
