package dto

import "github.com/ecan/pathways/internal/app/models"

// PlanRequest is the shared payload for the recommendation and schedule
// endpoints.
type PlanRequest struct {
	College          string   `json:"college" binding:"required"`
	CompletedCourses []string `json:"completedCourses"`
	CareerPath       string   `json:"careerPath"`
	Interests        string   `json:"interests"`
}

// RecommendationsResponse holds ranked next-course and elective suggestions
// for one request.
type RecommendationsResponse struct {
	CollegeName         string                  `json:"collegeName"`
	NextCourses         []models.Recommendation `json:"nextCourses"`
	ElectiveSuggestions []models.Recommendation `json:"electiveSuggestions"`
}

// SemesterPlan pairs a schedule slot with its workload narration.
type SemesterPlan struct {
	models.ScheduleSlot
	Workload models.SemesterNarration `json:"workload"`
}

// ScheduleResponse is the full multi-semester plan for one request.
type ScheduleResponse struct {
	CollegeName string         `json:"collegeName"`
	CareerPath  string         `json:"careerPath,omitempty"`
	Semesters   []SemesterPlan `json:"semesters"`
}
