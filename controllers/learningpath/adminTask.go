package controllers

import (
	"internhub/database"
	"internhub/middleware"
	"internhub/models"
	"log"

	learningPathValidator "internhub/validators/learningpath"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AdminCreateTask adds a task to a learning path
func AdminCreateTask(c *fiber.Ctx) error {
	pathID := c.Locals("pathID").(int)
	reqData := c.Locals("validatedTask").(*learningPathValidator.CreateTaskRequest)

	db := database.Database.Db

	var path models.LearningPath
	if err := db.Where("id = ? AND is_deleted = ?", pathID, false).First(&path).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
	}

	task := models.Task{
		LearningPathID: path.ID,
		Title:          reqData.Title,
		Description:    reqData.Description,
		Content:        datatypes.JSON(reqData.Content),
	}
	if reqData.OrderIndex != nil {
		task.OrderIndex = *reqData.OrderIndex
	} else {
		// append at the end of the path by default
		var maxOrder int
		db.Model(&models.Task{}).Where("learning_path_id = ? AND is_deleted = ?", path.ID, false).
			Select("COALESCE(MAX(order_index), -1)").Scan(&maxOrder)
		task.OrderIndex = maxOrder + 1
	}
	if reqData.DeadlineOffset != nil {
		task.DeadlineOffset = *reqData.DeadlineOffset
	} else {
		task.DeadlineOffset = 7
	}

	if err := db.Create(&task).Error; err != nil {
		log.Printf("Error creating task: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create task!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Task created successfully!", task)
}

// AdminUpdateTask updates a task
func AdminUpdateTask(c *fiber.Ctx) error {
	taskID := c.Locals("taskID").(int)
	reqData := c.Locals("validatedTask").(*learningPathValidator.CreateTaskRequest)

	db := database.Database.Db

	var task models.Task
	if err := db.Where("id = ? AND is_deleted = ?", taskID, false).First(&task).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found!", nil)
	}

	task.Title = reqData.Title
	task.Description = reqData.Description
	if len(reqData.Content) > 0 {
		task.Content = datatypes.JSON(reqData.Content)
	}
	if reqData.OrderIndex != nil {
		task.OrderIndex = *reqData.OrderIndex
	}
	if reqData.DeadlineOffset != nil {
		task.DeadlineOffset = *reqData.DeadlineOffset
	}

	if err := db.Save(&task).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update task!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Task updated successfully!", task)
}

// AdminDeleteTask deletes a task unless submissions exist for it
func AdminDeleteTask(c *fiber.Ctx) error {
	taskID := c.Locals("taskID").(int)

	db := database.Database.Db

	var task models.Task
	if err := db.Where("id = ? AND is_deleted = ?", taskID, false).First(&task).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found!", nil)
	}

	var submissionCount int64
	db.Model(&models.Submission{}).Where("task_id = ? AND is_deleted = ?", task.ID, false).Count(&submissionCount)
	if submissionCount > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Task has submissions and cannot be deleted!", nil)
	}

	if err := db.Model(&models.Task{}).Where("id = ?", task.ID).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete task!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Task deleted successfully!", nil)
}

// AdminReorderTasks rewrites the order index of a path's tasks in one transaction
func AdminReorderTasks(c *fiber.Ctx) error {
	pathID := c.Locals("pathID").(int)
	reqData := c.Locals("validatedReorder").(*learningPathValidator.ReorderRequest)

	db := database.Database.Db

	var path models.LearningPath
	if err := db.Where("id = ? AND is_deleted = ?", pathID, false).First(&path).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
	}

	tx := db.Begin()
	for _, item := range reqData.Tasks {
		res := tx.Model(&models.Task{}).
			Where("id = ? AND learning_path_id = ? AND is_deleted = ?", item.TaskID, path.ID, false).
			Update("order_index", item.OrderIndex)
		if res.Error != nil || res.RowsAffected == 0 {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Task does not belong to this learning path!", nil)
		}
	}
	tx.Commit()

	var tasks []models.Task
	db.Where("learning_path_id = ? AND is_deleted = ?", path.ID, false).
		Order("order_index asc, id asc").Find(&tasks)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tasks reordered successfully!", tasks)
}
