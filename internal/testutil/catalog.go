// Package testutil provides shared catalog fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecan/pathways/internal/app/repositories"
)

// FixtureCourses is a small catalog spanning all four academic levels with a
// prerequisite chain per track. Identifiers sort in catalog order (a* before
// b* before c* before d*) so ranking expectations stay readable.
const FixtureCourses = `{
  "courses": {
    "a1": {"name": "Intro Programming", "description": "First programming course.", "level": "freshman", "credits": 4, "prerequisites": [], "tags": ["programming"]},
    "a2": {"name": "Calculus I", "description": "Single-variable calculus.", "level": "freshman", "credits": 4, "prerequisites": [], "tags": ["math"]},
    "a3": {"name": "Technical Writing", "description": "Reports and documentation.", "level": "freshman", "credits": 3, "prerequisites": [], "tags": ["writing"]},
    "a4": {"name": "Digital Logic", "description": "Gates, circuits and binary arithmetic.", "level": "freshman", "credits": 3, "prerequisites": [], "tags": ["systems"]},
    "b1": {"name": "Data Structures", "description": "Lists, trees and hash tables.", "level": "sophomore", "credits": 4, "prerequisites": ["a1"], "tags": ["programming", "theory"]},
    "b2": {"name": "Statistics", "description": "Probability and estimation.", "level": "sophomore", "credits": 3, "prerequisites": ["a2"], "tags": ["math", "data"]},
    "b3": {"name": "Computer Systems", "description": "Memory hierarchy and assembly.", "level": "sophomore", "credits": 4, "prerequisites": ["a1"], "tags": ["systems"]},
    "c1": {"name": "Machine Learning", "description": "Supervised and unsupervised models.", "level": "junior", "credits": 4, "prerequisites": ["b1", "b2"], "tags": ["ai", "ml"]},
    "c2": {"name": "Security Fundamentals", "description": "Threats and cryptographic basics.", "level": "junior", "credits": 3, "prerequisites": ["b3"], "tags": ["security", "systems"]},
    "c3": {"name": "Algorithms", "description": "Design paradigms and complexity.", "level": "junior", "credits": 4, "prerequisites": ["b1"], "tags": ["theory"]},
    "d1": {"name": "Deep Learning", "description": "Neural network architectures.", "level": "senior", "credits": 4, "prerequisites": ["c1"], "tags": ["ai", "ml", "advanced"]},
    "d2": {"name": "Network Security", "description": "Attacks and defenses on networks.", "level": "senior", "credits": 3, "prerequisites": ["c2"], "tags": ["security", "advanced"]}
  },
  "career_paths": {
    "AI Researcher": ["a1", "b1", "c1", "d1"],
    "Security Engineer": ["a1", "b3", "c2", "d2"]
  }
}`

// FixtureColleges pairs a full curriculum ("tech") with a minimal one
// ("small").
const FixtureColleges = `{
  "colleges": {
    "tech": {
      "name": "Institute of Technology",
      "courses": ["a1", "a2", "a3", "a4", "b1", "b2", "b3", "c1", "c2", "c3", "d1", "d2"]
    },
    "small": {
      "name": "Evergreen College",
      "courses": ["a1", "a2", "a3"]
    }
  }
}`

// WriteCatalogFiles writes the two catalog documents into a temp dir and
// returns their paths.
func WriteCatalogFiles(t *testing.T, coursesJSON, collegesJSON string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	coursesPath := filepath.Join(dir, "courses.json")
	collegesPath := filepath.Join(dir, "colleges.json")
	require.NoError(t, os.WriteFile(coursesPath, []byte(coursesJSON), 0o600))
	require.NoError(t, os.WriteFile(collegesPath, []byte(collegesJSON), 0o600))
	return coursesPath, collegesPath
}

// NewTestCatalog loads the standard fixture catalog.
func NewTestCatalog(t *testing.T) *repositories.CatalogRepository {
	t.Helper()
	coursesPath, collegesPath := WriteCatalogFiles(t, FixtureCourses, FixtureColleges)
	catalog, err := repositories.LoadCatalog(coursesPath, collegesPath)
	require.NoError(t, err)
	return catalog
}
