package dto

import "github.com/ecan/pathways/internal/app/models"

// CollegeCoursesResponse lists the full course records offered by a college.
type CollegeCoursesResponse struct {
	CollegeName string           `json:"collegeName"`
	Courses     []*models.Course `json:"courses"`
}

// CareerPathResponse describes one selectable career path.
type CareerPathResponse struct {
	Name    string   `json:"name"`
	Courses []string `json:"courses"`
}
