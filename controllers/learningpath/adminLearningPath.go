package controllers

import (
	"internhub/database"
	"internhub/middleware"
	"internhub/models"
	"log"

	learningPathValidator "internhub/validators/learningpath"

	"github.com/gofiber/fiber/v2"
)

// AdminCreatePath creates a learning path
func AdminCreatePath(c *fiber.Ctx) error {
	reqData := c.Locals("validatedPath").(*learningPathValidator.CreatePathRequest)

	path := models.LearningPath{
		Title:       reqData.Title,
		Description: reqData.Description,
	}

	if err := database.Database.Db.Create(&path).Error; err != nil {
		log.Printf("Error creating learning path: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create learning path!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Learning path created successfully!", path)
}

// AdminUpdatePath updates a learning path
func AdminUpdatePath(c *fiber.Ctx) error {
	pathID := c.Locals("pathID").(int)
	reqData := c.Locals("validatedPath").(*learningPathValidator.CreatePathRequest)

	db := database.Database.Db

	var path models.LearningPath
	if err := db.Where("id = ? AND is_deleted = ?", pathID, false).First(&path).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
	}

	path.Title = reqData.Title
	path.Description = reqData.Description

	if err := db.Save(&path).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update learning path!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning path updated successfully!", path)
}

// AdminDeletePath deletes a learning path unless an internship references it
func AdminDeletePath(c *fiber.Ctx) error {
	pathID := c.Locals("pathID").(int)

	db := database.Database.Db

	var path models.LearningPath
	if err := db.Where("id = ? AND is_deleted = ?", pathID, false).First(&path).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
	}

	var refs int64
	db.Model(&models.Internship{}).Where("learning_path_id = ? AND is_deleted = ?", path.ID, false).Count(&refs)
	if refs > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Learning path is used by an internship and cannot be deleted!", nil)
	}

	// The cascade must not delete tasks that hold submissions
	var submissionCount int64
	db.Model(&models.Submission{}).
		Joins("JOIN tasks ON tasks.id = submissions.task_id").
		Where("tasks.learning_path_id = ? AND submissions.is_deleted = ?", path.ID, false).
		Count(&submissionCount)
	if submissionCount > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Learning path has tasks with submissions and cannot be deleted!", nil)
	}

	tx := db.Begin()
	if err := tx.Model(&models.LearningPath{}).Where("id = ?", path.ID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete learning path!", nil)
	}
	if err := tx.Model(&models.Task{}).Where("learning_path_id = ?", path.ID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete learning path tasks!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning path deleted successfully!", nil)
}

// AdminListPaths lists learning paths with their task counts
func AdminListPaths(c *fiber.Ctx) error {
	db := database.Database.Db

	var paths []models.LearningPath
	if err := db.Where("is_deleted = ?", false).Order("created_at desc").Find(&paths).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch learning paths!", nil)
	}

	type PathWithCount struct {
		models.LearningPath
		TaskCount int64 `json:"task_count"`
	}

	result := make([]PathWithCount, len(paths))
	for i, p := range paths {
		result[i] = PathWithCount{LearningPath: p}
		db.Model(&models.Task{}).Where("learning_path_id = ? AND is_deleted = ?", p.ID, false).Count(&result[i].TaskCount)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning paths fetched successfully!", result)
}

// AdminGetPath fetches one learning path with its ordered tasks
func AdminGetPath(c *fiber.Ctx) error {
	pathID := c.Locals("pathID").(int)

	db := database.Database.Db

	var path models.LearningPath
	if err := db.Where("id = ? AND is_deleted = ?", pathID, false).First(&path).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
	}

	var tasks []models.Task
	db.Where("learning_path_id = ? AND is_deleted = ?", path.ID, false).
		Order("order_index asc, id asc").Find(&tasks)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning path fetched successfully!", fiber.Map{
		"learning_path": path,
		"tasks":         tasks,
	})
}
