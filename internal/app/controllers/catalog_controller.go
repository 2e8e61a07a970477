package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecan/pathways/internal/app/models/dto"
	"github.com/ecan/pathways/internal/app/repositories"
	"github.com/ecan/pathways/internal/middleware"
)

// CatalogController serves the read-only catalog: colleges, their course
// offerings, individual courses and the career path list.
type CatalogController struct {
	catalog *repositories.CatalogRepository
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalog *repositories.CatalogRepository) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// GetAllColleges lists all colleges
// @Summary List colleges
// @Description Retrieves all colleges and the course identifiers they offer
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.College} "Colleges retrieved successfully"
// @Router /colleges [get]
func (c *CatalogController) GetAllColleges(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.catalog.Colleges(),
		Timestamp: time.Now(),
	})
}

// GetCollegeCourses lists the full course records offered by a college
// @Summary List a college's courses
// @Description Retrieves the full course records offered by a specific college
// @Tags catalog
// @Produce json
// @Param id path string true "College identifier"
// @Success 200 {object} dto.APIResponse{data=dto.CollegeCoursesResponse} "Courses retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /colleges/{id}/courses [get]
func (c *CatalogController) GetCollegeCourses(ctx *gin.Context) {
	college, err := c.catalog.CollegeByID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.CollegeCoursesResponse{
			CollegeName: college.Name,
			Courses:     c.catalog.CoursesOffered(college),
		},
		Timestamp: time.Now(),
	})
}

// GetCourseByID retrieves a single course
// @Summary Get course by ID
// @Description Retrieves detailed information about a specific catalog course
// @Tags catalog
// @Produce json
// @Param id path string true "Course identifier"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CatalogController) GetCourseByID(ctx *gin.Context) {
	course, err := c.catalog.CourseByID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// GetCareerPaths lists the selectable career paths
// @Summary List career paths
// @Description Retrieves all career paths and their course progressions
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CareerPathResponse} "Career paths retrieved successfully"
// @Router /careers [get]
func (c *CatalogController) GetCareerPaths(ctx *gin.Context) {
	careers := c.catalog.CareerPaths()
	out := make([]dto.CareerPathResponse, len(careers))
	for i, career := range careers {
		out[i] = dto.CareerPathResponse{
			Name:    career.Name,
			Courses: career.Courses,
		}
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      out,
		Timestamp: time.Now(),
	})
}
