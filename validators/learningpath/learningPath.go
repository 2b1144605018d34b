package learningPathValidator

import (
	"encoding/json"
	"internhub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreatePathRequest is the validated learning path payload
type CreatePathRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func CreatePath() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreatePathRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPath", reqData)
		return c.Next()
	}
}

// PathID validates the :id route param
func PathID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid learning path id!", nil)
		}
		c.Locals("pathID", id)
		return c.Next()
	}
}

// CreateTaskRequest is the validated task payload
type CreateTaskRequest struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Content        json.RawMessage `json:"content"`
	OrderIndex     *int            `json:"order_index"`
	DeadlineOffset *int            `json:"deadline_offset"`
}

func CreateTask() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid learning path id!", nil)
		}

		reqData := new(CreateTaskRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.DeadlineOffset != nil && *reqData.DeadlineOffset < 0 {
			errors["deadline_offset"] = "Deadline offset cannot be negative!"
		}
		if reqData.OrderIndex != nil && *reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("pathID", id)
		c.Locals("validatedTask", reqData)
		return c.Next()
	}
}

// UpdateTask validates the :task_id route param plus the task payload
func UpdateTask() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("task_id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid task id!", nil)
		}

		reqData := new(CreateTaskRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.DeadlineOffset != nil && *reqData.DeadlineOffset < 0 {
			errors["deadline_offset"] = "Deadline offset cannot be negative!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("taskID", id)
		c.Locals("validatedTask", reqData)
		return c.Next()
	}
}

// TaskID validates the :task_id route param
func TaskID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("task_id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid task id!", nil)
		}
		c.Locals("taskID", id)
		return c.Next()
	}
}

// ReorderRequest carries the new ranks for a path's tasks
type ReorderRequest struct {
	Tasks []struct {
		TaskID     uint `json:"task_id"`
		OrderIndex int  `json:"order_index"`
	} `json:"tasks"`
}

func ReorderTasks() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid learning path id!", nil)
		}

		reqData := new(ReorderRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if len(reqData.Tasks) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"tasks": "At least one task is required!"})
		}

		c.Locals("pathID", id)
		c.Locals("validatedReorder", reqData)
		return c.Next()
	}
}
