package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecan/pathways/internal/app/models"
	"github.com/ecan/pathways/internal/app/models/dto"
	"github.com/ecan/pathways/internal/pkg/apperrors"
	"github.com/ecan/pathways/internal/testutil"
)

func courseIDs(recs []models.Recommendation) []string {
	ids := make([]string, len(recs))
	for i, rec := range recs {
		ids[i] = rec.Course.ID
	}
	return ids
}

func TestEligible_PrerequisiteChain(t *testing.T) {
	catalog := testutil.NewTestCatalog(t)
	planner := NewPlannerService(catalog)

	college, err := catalog.CollegeByID("tech")
	require.NoError(t, err)
	offered := catalog.CoursesOffered(college)

	// Nothing completed: only the no-prerequisite freshman courses qualify.
	eligible := planner.Eligible(offered, map[string]bool{})
	ids := make([]string, len(eligible))
	for i, c := range eligible {
		ids[i] = c.ID
	}
	assert.ElementsMatch(t, []string{"a1", "a2", "a3", "a4"}, ids)

	// Completing a1 unlocks its dependents but nothing deeper.
	eligible = planner.Eligible(offered, map[string]bool{"a1": true})
	ids = ids[:0]
	for _, c := range eligible {
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, "b1")
	assert.Contains(t, ids, "b3")
	assert.NotContains(t, ids, "c1")
	assert.NotContains(t, ids, "a1")
}

func TestEligible_AllPrerequisitesRequired(t *testing.T) {
	catalog := testutil.NewTestCatalog(t)
	planner := NewPlannerService(catalog)

	college, err := catalog.CollegeByID("tech")
	require.NoError(t, err)
	offered := catalog.CoursesOffered(college)

	// c1 requires both b1 and b2; one of the two is not enough.
	completed := map[string]bool{"a1": true, "a2": true, "b1": true}
	for _, c := range planner.Eligible(offered, completed) {
		assert.NotEqual(t, "c1", c.ID)
	}

	completed["b2"] = true
	found := false
	for _, c := range planner.Eligible(offered, completed) {
		if c.ID == "c1" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRankNext_LevelThenCareerThenID(t *testing.T) {
	catalog := testutil.NewTestCatalog(t)
	planner := NewPlannerService(catalog)

	college, err := catalog.CollegeByID("tech")
	require.NoError(t, err)
	offered := catalog.CoursesOffered(college)

	eligible := planner.Eligible(offered, map[string]bool{})
	ranked := planner.RankNext(eligible, "AI Researcher")

	// a1 is on the AI Researcher path, so it leads its level group.
	assert.Equal(t, []string{"a1", "a2", "a3", "a4"}, courseIDs(ranked))
	assert.Contains(t, ranked[0].Reason, "part of the AI Researcher track")
	assert.Equal(t, 1, ranked[0].Score)
	assert.Contains(t, ranked[1].Reason, "freshman-level course")
	assert.Equal(t, 0, ranked[1].Score)
}

func TestRankNext_Deterministic(t *testing.T) {
	catalog := testutil.NewTestCatalog(t)
	planner := NewPlannerService(catalog)

	college, err := catalog.CollegeByID("tech")
	require.NoError(t, err)
	offered := catalog.CoursesOffered(college)
	eligible := planner.Eligible(offered, map[string]bool{"a1": true, "a2": true})

	first := courseIDs(planner.RankNext(eligible, ""))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, courseIDs(planner.RankNext(eligible, "")))
	}
}

func TestSuggestElectives_TagNameDescription(t *testing.T) {
	catalog := testutil.NewTestCatalog(t)
	planner := NewPlannerService(catalog)

	college, err := catalog.CollegeByID("tech")
	require.NoError(t, err)
	offered := catalog.CoursesOffered(college)

	suggestions := planner.SuggestElectives(offered, map[string]bool{}, "AI, security")
	require.NotEmpty(t, suggestions)

	// Keywords are case-insensitive; every suggestion carries a positive
	// score and a reason naming what matched.
	for _, s := range suggestions {
		assert.Greater(t, s.Score, 0)
		assert.NotEmpty(t, s.Reason)
	}
	assert.Equal(t, []string{"c1", "c2", "d1", "d2"}, courseIDs(suggestions))
	assert.Equal(t, "matches 'ai' tag", suggestions[0].Reason)
}

func TestSuggestElectives_NameMatch(t *testing.T) {
	catalog := testutil.NewTestCatalog(t)
	planner := NewPlannerService(catalog)

	college, err := catalog.CollegeByID("tech")
	require.NoError(t, err)
	offered := catalog.CoursesOffered(college)

	suggestions := planner.SuggestElectives(offered, map[string]bool{}, "machine")
	require.Len(t, suggestions, 1)
	assert.Equal(t, "c1", suggestions[0].Course.ID)
	assert.Equal(t, "name contains 'machine'", suggestions[0].Reason)
}

func TestSuggestElectives_CapAndOrdering(t *testing.T) {
	catalog := testutil.NewTestCatalog(t)
	planner := NewPlannerService(catalog)

	college, err := catalog.CollegeByID("tech")
	require.NoError(t, err)
	offered := catalog.CoursesOffered(college)

	suggestions := planner.SuggestElectives(offered, map[string]bool{}, "math, programming, systems, theory")
	require.Len(t, suggestions, 5)

	// b1 matches two keywords and leads; the single-match group follows by
	// level then identifier.
	assert.Equal(t, []string{"b1", "a1", "a2", "a4", "b2"}, courseIDs(suggestions))
	assert.Equal(t, 2, suggestions[0].Score)
}

func TestSuggestElectives_ExcludesCompleted(t *testing.T) {
	catalog := testutil.NewTestCatalog(t)
	planner := NewPlannerService(catalog)

	college, err := catalog.CollegeByID("tech")
	require.NoError(t, err)
	offered := catalog.CoursesOffered(college)

	suggestions := planner.SuggestElectives(offered, map[string]bool{"c1": true}, "ai")
	assert.Equal(t, []string{"d1"}, courseIDs(suggestions))
}

func TestSuggestElectives_NoInterests(t *testing.T) {
	catalog := testutil.NewTestCatalog(t)
	planner := NewPlannerService(catalog)

	college, err := catalog.CollegeByID("tech")
	require.NoError(t, err)
	offered := catalog.CoursesOffered(college)

	assert.Empty(t, planner.SuggestElectives(offered, map[string]bool{}, ""))
	assert.Empty(t, planner.SuggestElectives(offered, map[string]bool{}, " , ,"))
}

func TestRecommend_FullRequest(t *testing.T) {
	catalog := testutil.NewTestCatalog(t)
	planner := NewPlannerService(catalog)

	resp, err := planner.Recommend(context.Background(), dto.PlanRequest{
		College:          "tech",
		CompletedCourses: []string{"a1", "a2"},
		CareerPath:       "ai researcher",
		Interests:        "security",
	})
	require.NoError(t, err)

	assert.Equal(t, "Institute of Technology", resp.CollegeName)
	assert.NotEmpty(t, resp.NextCourses)
	for _, rec := range resp.NextCourses {
		assert.NotEqual(t, "a1", rec.Course.ID)
		assert.NotEqual(t, "a2", rec.Course.ID)
	}
	assert.NotEmpty(t, resp.ElectiveSuggestions)
}

func TestRecommend_UnknownCollege(t *testing.T) {
	catalog := testutil.NewTestCatalog(t)
	planner := NewPlannerService(catalog)

	_, err := planner.Recommend(context.Background(), dto.PlanRequest{College: "ghost"})
	assert.ErrorIs(t, err, apperrors.ErrCollegeNotFound)
}

func TestRecommend_UnknownCompletedCourse(t *testing.T) {
	catalog := testutil.NewTestCatalog(t)
	planner := NewPlannerService(catalog)

	_, err := planner.Recommend(context.Background(), dto.PlanRequest{
		College:          "tech",
		CompletedCourses: []string{"ghost"},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRecommend_UnknownCareerPath(t *testing.T) {
	catalog := testutil.NewTestCatalog(t)
	planner := NewPlannerService(catalog)

	_, err := planner.Recommend(context.Background(), dto.PlanRequest{
		College:    "tech",
		CareerPath: "Astronaut",
	})
	assert.ErrorIs(t, err, apperrors.ErrCareerNotFound)
}
