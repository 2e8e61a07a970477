package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecan/pathways/internal/app/models/dto"
	"github.com/ecan/pathways/internal/app/services"
	"github.com/ecan/pathways/internal/middleware"
)

// PlannerController handles recommendation and schedule generation requests.
type PlannerController struct {
	plannerService  *services.PlannerService
	scheduleService *services.ScheduleService
}

// NewPlannerController creates a new PlannerController
func NewPlannerController(plannerService *services.PlannerService, scheduleService *services.ScheduleService) *PlannerController {
	return &PlannerController{
		plannerService:  plannerService,
		scheduleService: scheduleService,
	}
}

// Recommend returns ranked next-course and elective suggestions
// @Summary Recommend courses
// @Description Ranks eligible next courses and interest-matched electives for the submitted student state
// @Tags planner
// @Accept json
// @Produce json
// @Param request body dto.PlanRequest true "Student state"
// @Success 200 {object} dto.APIResponse{data=dto.RecommendationsResponse} "Recommendations computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "College or course not found"
// @Router /recommendations [post]
func (c *PlannerController) Recommend(ctx *gin.Context) {
	req := ctx.MustGet(middleware.ValidatedBodyKey).(*dto.PlanRequest)

	recommendations, err := c.plannerService.Recommend(ctx, *req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      recommendations,
		Timestamp: time.Now(),
	})
}

// GenerateSchedule returns a full multi-semester plan with narration
// @Summary Generate a schedule
// @Description Builds an 8-semester schedule with per-semester workload narration
// @Tags planner
// @Accept json
// @Produce json
// @Param request body dto.PlanRequest true "Student state"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleResponse} "Schedule generated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "College or course not found"
// @Router /schedule [post]
func (c *PlannerController) GenerateSchedule(ctx *gin.Context) {
	req := ctx.MustGet(middleware.ValidatedBodyKey).(*dto.PlanRequest)

	schedule, err := c.scheduleService.Build(ctx, *req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      schedule,
		Timestamp: time.Now(),
	})
}
