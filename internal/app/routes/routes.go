package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ecan/pathways/internal/app/controllers"
	"github.com/ecan/pathways/internal/app/models/dto"
	"github.com/ecan/pathways/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	catalogController *controllers.CatalogController,
	plannerController *controllers.PlannerController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Catalog routes (read-only) ---
	colleges := v1.Group("/colleges")
	{
		colleges.GET("", catalogController.GetAllColleges)
		colleges.GET("/:id/courses", catalogController.GetCollegeCourses)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("/:id", catalogController.GetCourseByID)
	}

	v1.GET("/careers", catalogController.GetCareerPaths)

	// --- Planner routes ---
	v1.POST("/recommendations", middleware.ValidateRequest(dto.PlanRequest{}), plannerController.Recommend)
	v1.POST("/schedule", middleware.ValidateRequest(dto.PlanRequest{}), plannerController.GenerateSchedule)
}
