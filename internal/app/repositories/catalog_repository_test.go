package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecan/pathways/internal/pkg/apperrors"
)

const validCourses = `{
  "courses": {
    "a1": {"name": "Intro Programming", "level": "freshman", "credits": 4, "prerequisites": [], "tags": ["programming"]},
    "b1": {"name": "Data Structures", "level": "sophomore", "credits": 4, "prerequisites": ["a1"], "tags": ["programming", "theory"]}
  },
  "career_paths": {
    "Software Engineer": ["a1", "b1"]
  }
}`

const validColleges = `{
  "colleges": {
    "tech": {"name": "Institute of Technology", "courses": ["a1", "b1"]},
    "small": {"name": "Evergreen College", "courses": ["a1"]}
  }
}`

func writeFiles(t *testing.T, courses, colleges string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	coursesPath := filepath.Join(dir, "courses.json")
	collegesPath := filepath.Join(dir, "colleges.json")
	require.NoError(t, os.WriteFile(coursesPath, []byte(courses), 0o600))
	require.NoError(t, os.WriteFile(collegesPath, []byte(colleges), 0o600))
	return coursesPath, collegesPath
}

func TestLoadCatalog_Valid(t *testing.T) {
	coursesPath, collegesPath := writeFiles(t, validCourses, validColleges)

	repo, err := LoadCatalog(coursesPath, collegesPath)
	require.NoError(t, err)

	assert.Len(t, repo.Courses(), 2)
	assert.Len(t, repo.Colleges(), 2)
	assert.Len(t, repo.CareerPaths(), 1)

	course, err := repo.CourseByID("b1")
	require.NoError(t, err)
	assert.Equal(t, "Data Structures", course.Name)
	assert.Equal(t, 4, course.Credits)
	assert.Equal(t, []string{"a1"}, course.Prerequisites)

	// Career membership is derived from the path listings at load time.
	assert.True(t, course.HasCareer("Software Engineer"))

	college, err := repo.CollegeByID("tech")
	require.NoError(t, err)
	assert.Equal(t, "Institute of Technology", college.Name)
	assert.Len(t, repo.CoursesOffered(college), 2)
}

func TestLoadCatalog_CollegesSortedByID(t *testing.T) {
	coursesPath, collegesPath := writeFiles(t, validCourses, validColleges)

	repo, err := LoadCatalog(coursesPath, collegesPath)
	require.NoError(t, err)

	colleges := repo.Colleges()
	require.Len(t, colleges, 2)
	assert.Equal(t, "small", colleges[0].ID)
	assert.Equal(t, "tech", colleges[1].ID)
}

func TestLoadCatalog_MissingCoursesFile(t *testing.T) {
	_, collegesPath := writeFiles(t, validCourses, validColleges)

	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"), collegesPath)
	assert.Error(t, err)
}

func TestLoadCatalog_MalformedJSON(t *testing.T) {
	coursesPath, collegesPath := writeFiles(t, `{"courses": {`, validColleges)

	_, err := LoadCatalog(coursesPath, collegesPath)
	assert.Error(t, err)
}

func TestLoadCatalog_EmptyCatalog(t *testing.T) {
	coursesPath, collegesPath := writeFiles(t, `{"courses": {}}`, validColleges)

	_, err := LoadCatalog(coursesPath, collegesPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no courses")
}

func TestLoadCatalog_UnknownPrerequisite(t *testing.T) {
	courses := `{
	  "courses": {
	    "a1": {"name": "Intro", "level": "freshman", "credits": 4, "prerequisites": ["ghost"]}
	  }
	}`
	coursesPath, collegesPath := writeFiles(t, courses, `{"colleges": {"tech": {"name": "Tech", "courses": ["a1"]}}}`)

	_, err := LoadCatalog(coursesPath, collegesPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown prerequisite")
}

func TestLoadCatalog_CollegeOffersUnknownCourse(t *testing.T) {
	coursesPath, collegesPath := writeFiles(t, validCourses, `{"colleges": {"tech": {"name": "Tech", "courses": ["ghost"]}}}`)

	_, err := LoadCatalog(coursesPath, collegesPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown course")
}

func TestLoadCatalog_CareerPathUnknownCourse(t *testing.T) {
	courses := `{
	  "courses": {
	    "a1": {"name": "Intro", "level": "freshman", "credits": 4}
	  },
	  "career_paths": {"Software Engineer": ["a1", "ghost"]}
	}`
	coursesPath, collegesPath := writeFiles(t, courses, `{"colleges": {"tech": {"name": "Tech", "courses": ["a1"]}}}`)

	_, err := LoadCatalog(coursesPath, collegesPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown course")
}

func TestLoadCatalog_InvalidLevel(t *testing.T) {
	courses := `{
	  "courses": {
	    "a1": {"name": "Intro", "level": "postdoc", "credits": 4}
	  }
	}`
	coursesPath, collegesPath := writeFiles(t, courses, `{"colleges": {"tech": {"name": "Tech", "courses": ["a1"]}}}`)

	_, err := LoadCatalog(coursesPath, collegesPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown academic level")
}

func TestLoadCatalog_NonPositiveCredits(t *testing.T) {
	courses := `{
	  "courses": {
	    "a1": {"name": "Intro", "level": "freshman", "credits": 0}
	  }
	}`
	coursesPath, collegesPath := writeFiles(t, courses, `{"colleges": {"tech": {"name": "Tech", "courses": ["a1"]}}}`)

	_, err := LoadCatalog(coursesPath, collegesPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "credits")
}

func TestCourseByID_NotFound(t *testing.T) {
	coursesPath, collegesPath := writeFiles(t, validCourses, validColleges)
	repo, err := LoadCatalog(coursesPath, collegesPath)
	require.NoError(t, err)

	_, err = repo.CourseByID("ghost")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCollegeByID_NotFound(t *testing.T) {
	coursesPath, collegesPath := writeFiles(t, validCourses, validColleges)
	repo, err := LoadCatalog(coursesPath, collegesPath)
	require.NoError(t, err)

	_, err = repo.CollegeByID("ghost")
	assert.ErrorIs(t, err, apperrors.ErrCollegeNotFound)
}

func TestCareerPath_CaseInsensitive(t *testing.T) {
	coursesPath, collegesPath := writeFiles(t, validCourses, validColleges)
	repo, err := LoadCatalog(coursesPath, collegesPath)
	require.NoError(t, err)

	career, err := repo.CareerPath("software engineer")
	require.NoError(t, err)
	assert.Equal(t, "Software Engineer", career.Name)

	_, err = repo.CareerPath("Astronaut")
	assert.ErrorIs(t, err, apperrors.ErrCareerNotFound)
}
