package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ecan/pathways/internal/app/models/dto"
	"github.com/ecan/pathways/internal/pkg/apperrors"
)

// --- Central Error Handling ---

// HandleAPIError maps service errors onto the standard response envelope.
// Controllers call it for any error coming out of the service layer.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrCollegeNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "College not found").WithField("college"),
		})
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found").WithField("course"),
		})
	case errors.Is(err, apperrors.ErrCareerNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Career path not found").WithField("careerPath"),
		})
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		})
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		})
	default:
		// Handle unknown errors
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
