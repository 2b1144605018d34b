package applicationValidator

import (
	"encoding/json"
	"internhub/middleware"
	"internhub/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ApplyRequest is the validated application payload
type ApplyRequest struct {
	InternshipID uint            `json:"internship_id" validate:"required"`
	Responses    json.RawMessage `json:"responses"`
}

func Apply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ApplyRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			errors["internship_id"] = "Internship id is required!"
		}
		if len(reqData.Responses) > 0 && !json.Valid(reqData.Responses) {
			errors["responses"] = "Responses must be valid JSON!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedApplication", reqData)
		return c.Next()
	}
}

// ReviewRequest is the validated admin decision payload
type ReviewRequest struct {
	Status   string `json:"status" validate:"required,oneof=ACCEPTED REJECTED"`
	Feedback string `json:"feedback"`
}

func Review() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid application id!", nil)
		}

		reqData := new(ReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be ACCEPTED or REJECTED!",
			})
		}

		c.Locals("applicationID", id)
		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

// StatusFilter validates the optional ?status= query param
func StatusFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := c.Query("status")
		switch status {
		case "", models.ApplicationPending, models.ApplicationAccepted, models.ApplicationRejected:
			c.Locals("statusFilter", status)
			return c.Next()
		}
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid status filter!", nil)
	}
}
