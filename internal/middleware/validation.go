package middleware

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ecan/pathways/internal/app/models/dto"
)

// ValidatedBodyKey is the context key the validated request body is stored
// under.
const ValidatedBodyKey = "validatedBody"

var validate = validator.New()

// ValidateRequest binds and validates a request body against the model type.
// A fresh instance is allocated per request; handlers read it back with
// ValidatedBody.
func ValidateRequest(model interface{}) gin.HandlerFunc {
	modelType := reflect.TypeOf(model)
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}

	return func(c *gin.Context) {
		obj := reflect.New(modelType).Interface()

		if err := c.ShouldBindJSON(obj); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")
			errorDetail = errorDetail.WithDetails(err.Error())
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			c.Abort()
			return
		}

		if err := validate.Struct(obj); err != nil {
			errorDetail := handleValidationError(err)
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			c.Abort()
			return
		}

		c.Set(ValidatedBodyKey, obj)
		c.Next()
	}
}

// handleValidationError converts validator errors to a single error detail
func handleValidationError(err error) *dto.ErrorDetail {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error())
	}

	first := validationErrors[0]
	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, formatValidationError(first)).WithField(first.Field())
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
