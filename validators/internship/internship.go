package internshipValidator

import (
	"encoding/json"
	"internhub/middleware"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

// CreateInternshipRequest is the validated create/update payload
type CreateInternshipRequest struct {
	Title          string          `json:"title" validate:"required,min=3"`
	Description    string          `json:"description" validate:"required,min=5"`
	Capacity       int             `json:"capacity" validate:"gte=0"`
	StartDate      *string         `json:"start_date"`
	EndDate        *string         `json:"end_date"`
	LearningPathID *uint           `json:"learning_path_id"`
	FormSchema     json.RawMessage `json:"form_schema"`

	// Parsed by the validator when the date strings are present
	ParsedStart *time.Time `json:"-"`
	ParsedEnd   *time.Time `json:"-"`
}

func CreateInternship() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateInternshipRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Title":
					errors["title"] = "Title is required and must be at least 3 characters long!"
				case "Description":
					errors["description"] = "Description is required and must be at least 5 characters long!"
				case "Capacity":
					errors["capacity"] = "Capacity cannot be negative!"
				}
			}
		}

		parseDate(reqData.StartDate, "start_date", &reqData.ParsedStart, errors)
		parseDate(reqData.EndDate, "end_date", &reqData.ParsedEnd, errors)

		if reqData.ParsedStart != nil && reqData.ParsedEnd != nil && !reqData.ParsedEnd.After(*reqData.ParsedStart) {
			errors["end_date"] = "End date must be after start date!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInternship", reqData)
		return c.Next()
	}
}

func parseDate(raw *string, field string, out **time.Time, errors map[string]string) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*raw))
	if err != nil {
		errors[field] = "Date must be in YYYY-MM-DD format!"
		return
	}
	*out = &t
}

// InternshipID validates the :id route param
func InternshipID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid internship id!", nil)
		}
		c.Locals("internshipID", id)
		return c.Next()
	}
}

// ListQuery validates optional pagination query params
func ListQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query params!", nil)
		}

		page := 1
		limit := 20
		if reqData.Page != nil && *reqData.Page > 0 {
			page = *reqData.Page
		}
		if reqData.Limit != nil && *reqData.Limit > 0 {
			limit = *reqData.Limit
		}

		c.Locals("page", page)
		c.Locals("limit", limit)
		return c.Next()
	}
}
