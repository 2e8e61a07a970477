package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ecan/pathways/internal/app/models"
	"github.com/ecan/pathways/internal/pkg/apperrors"
)

// courseRecord is the on-disk shape of one catalog entry.
type courseRecord struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Level         string   `json:"level"`
	Credits       int      `json:"credits"`
	Prerequisites []string `json:"prerequisites"`
	Tags          []string `json:"tags"`
}

// catalogDocument is the course-catalog file: courses keyed by identifier
// plus ordered course progressions per career path.
type catalogDocument struct {
	Courses     map[string]courseRecord `json:"courses"`
	CareerPaths map[string][]string     `json:"career_paths"`
}

// collegeRecord is the on-disk shape of one college entry.
type collegeRecord struct {
	Name    string   `json:"name"`
	Courses []string `json:"courses"`
}

// collegesDocument is the college-curriculum file, keyed by college
// identifier.
type collegesDocument struct {
	Colleges map[string]collegeRecord `json:"colleges"`
}

// CatalogRepository holds the course catalog, college curricula and career
// paths loaded at startup. The data is immutable after load, so it is safe to
// share across requests without locking.
type CatalogRepository struct {
	courses    map[string]*models.Course
	courseIDs  []string
	colleges   map[string]*models.College
	collegeIDs []string
	careers    []models.CareerPath
}

// LoadCatalog reads and cross-validates both data documents. Any missing
// file, malformed structure or dangling reference is an error; the caller
// treats that as startup-fatal.
func LoadCatalog(coursesPath, collegesPath string) (*CatalogRepository, error) {
	var catalogDoc catalogDocument
	if err := readJSONFile(coursesPath, &catalogDoc); err != nil {
		return nil, fmt.Errorf("failed to load course catalog: %w", err)
	}
	if len(catalogDoc.Courses) == 0 {
		return nil, fmt.Errorf("course catalog %s contains no courses", coursesPath)
	}

	var collegesDoc collegesDocument
	if err := readJSONFile(collegesPath, &collegesDoc); err != nil {
		return nil, fmt.Errorf("failed to load college curricula: %w", err)
	}
	if len(collegesDoc.Colleges) == 0 {
		return nil, fmt.Errorf("college curricula %s contains no colleges", collegesPath)
	}

	repo := &CatalogRepository{
		courses:  make(map[string]*models.Course, len(catalogDoc.Courses)),
		colleges: make(map[string]*models.College, len(collegesDoc.Colleges)),
	}

	for id, rec := range catalogDoc.Courses {
		course, err := buildCourse(id, rec)
		if err != nil {
			return nil, fmt.Errorf("invalid course %q: %w", id, err)
		}
		repo.courses[id] = course
		repo.courseIDs = append(repo.courseIDs, id)
	}
	sort.Strings(repo.courseIDs)

	// Prerequisites must reference catalog entries.
	for _, id := range repo.courseIDs {
		for _, prereq := range repo.courses[id].Prerequisites {
			if _, ok := repo.courses[prereq]; !ok {
				return nil, fmt.Errorf("course %q lists unknown prerequisite %q", id, prereq)
			}
		}
	}

	// Career path progressions must reference catalog entries. While
	// validating, tag each course with the careers that include it.
	careerNames := make([]string, 0, len(catalogDoc.CareerPaths))
	for name := range catalogDoc.CareerPaths {
		careerNames = append(careerNames, name)
	}
	sort.Strings(careerNames)

	for _, name := range careerNames {
		courseIDs := catalogDoc.CareerPaths[name]
		for _, id := range courseIDs {
			course, ok := repo.courses[id]
			if !ok {
				return nil, fmt.Errorf("career path %q lists unknown course %q", name, id)
			}
			course.Careers = append(course.Careers, name)
		}
		repo.careers = append(repo.careers, models.CareerPath{
			Name:    name,
			Courses: append([]string(nil), courseIDs...),
		})
	}

	// Referential invariant: every offered course must exist in the catalog.
	for id, rec := range collegesDoc.Colleges {
		if strings.TrimSpace(rec.Name) == "" {
			return nil, fmt.Errorf("college %q has no name", id)
		}
		for _, courseID := range rec.Courses {
			if _, ok := repo.courses[courseID]; !ok {
				return nil, fmt.Errorf("college %q offers unknown course %q", id, courseID)
			}
		}
		repo.colleges[id] = &models.College{
			ID:      id,
			Name:    rec.Name,
			Courses: append([]string(nil), rec.Courses...),
		}
		repo.collegeIDs = append(repo.collegeIDs, id)
	}
	sort.Strings(repo.collegeIDs)

	return repo, nil
}

// buildCourse validates one catalog record and converts it to the domain
// type. The display name defaults to the identifier, matching catalogs that
// key courses by name.
func buildCourse(id string, rec courseRecord) (*models.Course, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("empty course identifier")
	}

	level, err := models.ParseLevel(rec.Level)
	if err != nil {
		return nil, err
	}

	if rec.Credits <= 0 {
		return nil, fmt.Errorf("credits must be positive, got %d", rec.Credits)
	}

	name := rec.Name
	if strings.TrimSpace(name) == "" {
		name = id
	}

	return &models.Course{
		ID:            id,
		Name:          name,
		Description:   rec.Description,
		Level:         level,
		Credits:       rec.Credits,
		Prerequisites: append([]string(nil), rec.Prerequisites...),
		Tags:          append([]string(nil), rec.Tags...),
	}, nil
}

func readJSONFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// CourseByID returns a catalog course.
func (r *CatalogRepository) CourseByID(id string) (*models.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCourseNotFound, id)
	}
	return course, nil
}

// Courses returns all catalog courses ordered by identifier.
func (r *CatalogRepository) Courses() []*models.Course {
	out := make([]*models.Course, len(r.courseIDs))
	for i, id := range r.courseIDs {
		out[i] = r.courses[id]
	}
	return out
}

// CollegeByID returns a college.
func (r *CatalogRepository) CollegeByID(id string) (*models.College, error) {
	college, ok := r.colleges[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCollegeNotFound, id)
	}
	return college, nil
}

// Colleges returns all colleges ordered by identifier.
func (r *CatalogRepository) Colleges() []*models.College {
	out := make([]*models.College, len(r.collegeIDs))
	for i, id := range r.collegeIDs {
		out[i] = r.colleges[id]
	}
	return out
}

// CoursesOffered returns the full course records offered by a college, in
// the college's listed order.
func (r *CatalogRepository) CoursesOffered(college *models.College) []*models.Course {
	out := make([]*models.Course, 0, len(college.Courses))
	for _, id := range college.Courses {
		if course, ok := r.courses[id]; ok {
			out = append(out, course)
		}
	}
	return out
}

// CareerPaths returns all career paths ordered by name.
func (r *CatalogRepository) CareerPaths() []models.CareerPath {
	return r.careers
}

// CareerPath looks a career path up by name, case-insensitively.
func (r *CatalogRepository) CareerPath(name string) (*models.CareerPath, error) {
	for i := range r.careers {
		if strings.EqualFold(r.careers[i].Name, name) {
			return &r.careers[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", apperrors.ErrCareerNotFound, name)
}
