package response

import "github.com/gofiber/fiber/v2"

// Response is the envelope every endpoint returns.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Errors     interface{} `json:"errors"`
	Data       interface{} `json:"data"`
}

// Send writes the envelope with the given status code.
func Send(c *fiber.Ctx, statusCode int, message string, errs interface{}, data interface{}) error {
	return c.Status(statusCode).JSON(Response{
		StatusCode: statusCode,
		Message:    message,
		Errors:     errs,
		Data:       data,
	})
}

// OK sends a 200 response
func OK(c *fiber.Ctx, data interface{}) error {
	return Send(c, fiber.StatusOK, "OK", nil, data)
}

// OKMessage sends a 200 response with a custom message
func OKMessage(c *fiber.Ctx, message string, data interface{}) error {
	return Send(c, fiber.StatusOK, message, nil, data)
}

// Created sends a 201 response
func Created(c *fiber.Ctx, data interface{}) error {
	return Send(c, fiber.StatusCreated, "Created", nil, data)
}

// BadRequest sends a 400 response with field-level errors
func BadRequest(c *fiber.Ctx, errs interface{}) error {
	return Send(c, fiber.StatusBadRequest, "Bad Request", errs, nil)
}

// Unauthorized sends a 401 response
func Unauthorized(c *fiber.Ctx) error {
	return Send(c, fiber.StatusUnauthorized, "Unauthorized", nil, nil)
}

// Forbidden sends a 403 response
func Forbidden(c *fiber.Ctx) error {
	return Send(c, fiber.StatusForbidden, "Forbidden", nil, nil)
}

// NotFound sends a 404 response
func NotFound(c *fiber.Ctx) error {
	return Send(c, fiber.StatusNotFound, "Not Found", nil, nil)
}

// InternalServerError sends a 500 response with the error detail in the
// errors field.
func InternalServerError(c *fiber.Ctx, err error) error {
	var detail interface{}
	if err != nil {
		detail = err.Error()
	}
	return Send(c, fiber.StatusInternalServerError, "", detail, nil)
}
