package submissionValidator

import (
	"internhub/middleware"
	"internhub/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SubmitRequest is the validated submission payload
type SubmitRequest struct {
	FileURL string `json:"file_url"`
	Comment string `json:"comment"`
}

func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		taskID, err := c.ParamsInt("task_id")
		if err != nil || taskID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid task id!", nil)
		}

		reqData := new(SubmitRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.FileURL) == "" {
			errors["file_url"] = "File URL is required!"
		} else if !strings.HasPrefix(reqData.FileURL, "http://") && !strings.HasPrefix(reqData.FileURL, "https://") {
			errors["file_url"] = "File URL must be an http(s) URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("taskID", taskID)
		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

// ReviewRequest is the validated admin review payload
type ReviewRequest struct {
	Status       string `json:"status"`
	Feedback     string `json:"feedback"`
	AdminComment string `json:"admin_comment"`
}

func Review() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid submission id!", nil)
		}

		reqData := new(ReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		switch reqData.Status {
		case models.SubmissionApproved, models.SubmissionRejected, models.SubmissionRequiresChanges:
		default:
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be APPROVED, REJECTED or REQUIRES_CHANGES!",
			})
		}

		c.Locals("submissionID", id)
		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

// AdjustmentRequest is the validated deadline adjustment payload
type AdjustmentRequest struct {
	UserID            uint   `json:"user_id"`
	TaskID            uint   `json:"task_id"`
	NewDeadlineOffset *int   `json:"new_deadline_offset"`
	Reason            string `json:"reason"`
}

func Adjustment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AdjustmentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["user_id"] = "User id is required!"
		}
		if reqData.TaskID == 0 {
			errors["task_id"] = "Task id is required!"
		}
		if reqData.NewDeadlineOffset == nil {
			errors["new_deadline_offset"] = "New deadline offset is required!"
		} else if *reqData.NewDeadlineOffset < 0 {
			errors["new_deadline_offset"] = "New deadline offset cannot be negative!"
		}
		if strings.TrimSpace(reqData.Reason) == "" {
			errors["reason"] = "Reason is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdjustment", reqData)
		return c.Next()
	}
}
