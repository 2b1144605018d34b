package controllers

import (
	"internhub/database"
	"internhub/middleware"
	"internhub/models"
	"log"

	internshipValidator "internhub/validators/internship"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AdminCreateInternship creates a new internship offering
func AdminCreateInternship(c *fiber.Ctx) error {
	reqData := c.Locals("validatedInternship").(*internshipValidator.CreateInternshipRequest)

	db := database.Database.Db

	if reqData.LearningPathID != nil {
		var path models.LearningPath
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.LearningPathID, false).First(&path).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
		}
	}

	internship := models.Internship{
		Title:          reqData.Title,
		Description:    reqData.Description,
		Capacity:       reqData.Capacity,
		StartDate:      reqData.ParsedStart,
		EndDate:        reqData.ParsedEnd,
		LearningPathID: reqData.LearningPathID,
		FormSchema:     datatypes.JSON(reqData.FormSchema),
	}

	if err := db.Create(&internship).Error; err != nil {
		log.Printf("Error creating internship: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create internship!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Internship created successfully!", internship)
}

// AdminUpdateInternship updates an existing internship
func AdminUpdateInternship(c *fiber.Ctx) error {
	internshipID := c.Locals("internshipID").(int)
	reqData := c.Locals("validatedInternship").(*internshipValidator.CreateInternshipRequest)

	db := database.Database.Db

	var internship models.Internship
	if err := db.Where("id = ? AND is_deleted = ?", internshipID, false).First(&internship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship not found!", nil)
	}

	if reqData.LearningPathID != nil && *reqData.LearningPathID != 0 {
		var path models.LearningPath
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.LearningPathID, false).First(&path).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
		}
	}

	internship.Title = reqData.Title
	internship.Description = reqData.Description
	internship.Capacity = reqData.Capacity

	// Omitted fields keep their stored value; an empty date string clears the
	// date and learning_path_id 0 detaches the path.
	if reqData.StartDate != nil {
		internship.StartDate = reqData.ParsedStart
	}
	if reqData.EndDate != nil {
		internship.EndDate = reqData.ParsedEnd
	}
	if reqData.LearningPathID != nil {
		if *reqData.LearningPathID == 0 {
			internship.LearningPathID = nil
		} else {
			internship.LearningPathID = reqData.LearningPathID
		}
	}
	if len(reqData.FormSchema) > 0 {
		internship.FormSchema = datatypes.JSON(reqData.FormSchema)
	}

	// Recheck against stored dates: the payload may change only one of them
	if internship.StartDate != nil && internship.EndDate != nil && !internship.EndDate.After(*internship.StartDate) {
		return middleware.ValidationErrorResponse(c, map[string]string{"end_date": "End date must be after start date!"})
	}

	if err := db.Save(&internship).Error; err != nil {
		log.Printf("Error updating internship %d: %v", internship.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update internship!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Internship updated successfully!", internship)
}

// AdminPublishInternship makes an internship visible to candidates
func AdminPublishInternship(c *fiber.Ctx) error {
	internshipID := c.Locals("internshipID").(int)

	db := database.Database.Db

	var internship models.Internship
	if err := db.Where("id = ? AND is_deleted = ?", internshipID, false).First(&internship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship not found!", nil)
	}

	if internship.StartDate == nil || internship.EndDate == nil {
		log.Printf("Internship %d published without full dates; progress risk tracking will assume now", internship.ID)
	}

	internship.IsPublished = true
	if err := db.Save(&internship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish internship!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Internship published successfully!", internship)
}

// AdminDeleteInternship deletes an internship. When applications exist the
// delete cascades to them and only a super admin may perform it.
func AdminDeleteInternship(c *fiber.Ctx) error {
	internshipID := c.Locals("internshipID").(int)
	role, _ := c.Locals("role").(string)

	db := database.Database.Db

	var internship models.Internship
	if err := db.Where("id = ? AND is_deleted = ?", internshipID, false).First(&internship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship not found!", nil)
	}

	var applicationCount int64
	db.Model(&models.Application{}).Where("internship_id = ? AND is_deleted = ?", internship.ID, false).Count(&applicationCount)

	if applicationCount > 0 && role != models.RoleSuperAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only a super admin can delete an internship with applications!", nil)
	}

	tx := db.Begin()
	if err := tx.Model(&models.Internship{}).Where("id = ?", internship.ID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete internship!", nil)
	}
	if applicationCount > 0 {
		if err := tx.Model(&models.Application{}).Where("internship_id = ?", internship.ID).Update("is_deleted", true).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete internship applications!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Internship deleted successfully!", nil)
}

// AdminListInternships lists all internships with pagination
func AdminListInternships(c *fiber.Ctx) error {
	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Internship{}).Where("is_deleted = ?", false)

	var total int64
	db.Count(&total)

	var internships []models.Internship
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&internships).Error; err != nil {
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

// AdminGetInternship fetches one internship with its learning path and counts
func AdminGetInternship(c *fiber.Ctx) error {
	internshipID := c.Locals("internshipID").(int)

	db := database.Database.Db

	var internship models.Internship
	if err := db.Where("id = ? AND is_deleted = ?", internshipID, false).First(&internship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship not found!", nil)
	}

	var path *models.LearningPath
	var tasks []models.Task
	if internship.LearningPathID != nil {
		var p models.LearningPath
		if err := db.Where("id = ? AND is_deleted = ?", *internship.LearningPathID, false).First(&p).Error; err == nil {
			path = &p
			db.Where("learning_path_id = ? AND is_deleted = ?", p.ID, false).
				Order("order_index asc, id asc").Find(&tasks)
		}
	}

	var pendingApplications, acceptedApplications int64
	db.Model(&models.Application{}).Where("internship_id = ? AND status = ? AND is_deleted = ?", internship.ID, models.ApplicationPending, false).Count(&pendingApplications)
	db.Model(&models.Application{}).Where("internship_id = ? AND status = ? AND is_deleted = ?", internship.ID, models.ApplicationAccepted, false).Count(&acceptedApplications)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Internship fetched successfully!", fiber.Map{
		"internship":            internship,
		"learning_path":         path,
		"tasks":                 tasks,
		"pending_applications":  pendingApplications,
		"accepted_applications": acceptedApplications,
	})
}
