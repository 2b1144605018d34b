package controllers

import (
	"internhub/database"
	"internhub/middleware"
	"internhub/models"
	"log"
	"time"

	submissionValidator "internhub/validators/submission"

	"github.com/gofiber/fiber/v2"
)

// AdminListPendingSubmissions lists submissions awaiting review
func AdminListPendingSubmissions(c *fiber.Ctx) error {
	db := database.Database.Db

	var submissions []models.Submission
	if err := db.Where("status = ? AND is_deleted = ?", models.SubmissionPending, false).
		Order("submitted_at asc").Find(&submissions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	type SubmissionWithContext struct {
		models.Submission
		TaskTitle string `json:"task_title"`
		UserName  string `json:"user_name"`
		UserEmail string `json:"user_email"`
	}

	result := make([]SubmissionWithContext, len(submissions))
	for i, s := range submissions {
		result[i] = SubmissionWithContext{Submission: s}
		var task models.Task
		if err := db.Select("title").Where("id = ?", s.TaskID).First(&task).Error; err == nil {
			result[i].TaskTitle = task.Title
		}
		var user models.User
		if err := db.Select("name, email").Where("id = ?", s.UserID).First(&user).Error; err == nil {
			result[i].UserName = user.Name
			result[i].UserEmail = user.Email
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending submissions fetched successfully!", result)
}

// AdminReviewSubmission records the review decision for a submission
func AdminReviewSubmission(c *fiber.Ctx) error {
	submissionID := c.Locals("submissionID").(int)
	reqData := c.Locals("validatedReview").(*submissionValidator.ReviewRequest)

	db := database.Database.Db

	var submission models.Submission
	if err := db.Where("id = ? AND is_deleted = ?", submissionID, false).First(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}

	if submission.Status != models.SubmissionPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Submission has already been reviewed!", nil)
	}

	now := time.Now()
	submission.Status = reqData.Status
	submission.Feedback = reqData.Feedback
	submission.AdminComment = reqData.AdminComment
	submission.ReviewedAt = &now

	if err := db.Save(&submission).Error; err != nil {
		log.Printf("Error reviewing submission %d: %v", submission.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to review submission!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission reviewed successfully!", submission)
}

// AdminUpsertAdjustment grants or updates a per-user deadline override
func AdminUpsertAdjustment(c *fiber.Ctx) error {
	adminID, _ := c.Locals("userId").(uint)
	reqData := c.Locals("validatedAdjustment").(*submissionValidator.AdjustmentRequest)

	db := database.Database.Db

	var task models.Task
	if err := db.Where("id = ? AND is_deleted = ?", reqData.TaskID, false).First(&task).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found!", nil)
	}

	if !canSubmit(db, reqData.UserID, task) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User is not an accepted intern for this task!", nil)
	}

	var adjustment models.DeadlineAdjustment
	err := db.Where("user_id = ? AND task_id = ? AND is_deleted = ?", reqData.UserID, reqData.TaskID, false).First(&adjustment).Error
	if err == nil {
		adjustment.NewDeadlineOffset = *reqData.NewDeadlineOffset
		adjustment.Reason = reqData.Reason
		adjustment.CreatedBy = adminID
		if err := db.Save(&adjustment).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update deadline adjustment!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Deadline adjustment updated successfully!", adjustment)
	}

	adjustment = models.DeadlineAdjustment{
		UserID:            reqData.UserID,
		TaskID:            reqData.TaskID,
		NewDeadlineOffset: *reqData.NewDeadlineOffset,
		Reason:            reqData.Reason,
		CreatedBy:         adminID,
	}
	if err := db.Create(&adjustment).Error; err != nil {
		log.Printf("Error creating deadline adjustment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create deadline adjustment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Deadline adjustment created successfully!", adjustment)
}

// AdminRevokeAdjustment removes a deadline override
func AdminRevokeAdjustment(c *fiber.Ctx) error {
	adjustmentID, err := c.ParamsInt("id")
	if err != nil || adjustmentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid adjustment id!", nil)
	}

	db := database.Database.Db

	var adjustment models.DeadlineAdjustment
	if err := db.Where("id = ? AND is_deleted = ?", adjustmentID, false).First(&adjustment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Deadline adjustment not found!", nil)
	}

	if err := db.Model(&models.DeadlineAdjustment{}).Where("id = ?", adjustment.ID).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to revoke deadline adjustment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Deadline adjustment revoked successfully!", nil)
}
