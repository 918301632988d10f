package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// parseBody decodes the JSON body into dst and validates it. A non-nil
// result is ready to be sent with status 400.
func parseBody(c *fiber.Ctx, dst any) *dto.ErrorResponse {
	if err := c.BodyParser(dst); err != nil {
		return &dto.ErrorResponse{Error: true, Message: "Invalid request body"}
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return &dto.ErrorResponse{Error: true, Message: err.Error()}
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
		return &dto.ErrorResponse{Error: true, Message: "Validation failed", Fields: fields}
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_with":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return "Must be at least " + fe.Param() + " characters"
	case "max":
		return "Must be at most " + fe.Param() + " characters"
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "eqfield":
		return "Does not match " + fe.Param()
	}
	return "Invalid value"
}

func badRequest(c *fiber.Ctx, resp *dto.ErrorResponse) error {
	return c.Status(fiber.StatusBadRequest).JSON(resp)
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}
