package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ecan/pathways/internal/app/models"
	"github.com/ecan/pathways/internal/app/models/dto"
	"github.com/ecan/pathways/internal/app/repositories"
	"github.com/ecan/pathways/internal/pkg/apperrors"
)

// electiveSuggestionLimit caps the elective list returned to the caller.
const electiveSuggestionLimit = 5

// PlannerService computes course eligibility and ranked recommendations over
// the immutable catalog.
type PlannerService struct {
	catalog *repositories.CatalogRepository
}

// NewPlannerService creates a new planner service instance
func NewPlannerService(catalog *repositories.CatalogRepository) *PlannerService {
	return &PlannerService{catalog: catalog}
}

// Recommend returns ranked next-course and elective suggestions for one
// request. Completed courses and the career path are validated against the
// catalog; student state lives only for the duration of the call.
func (s *PlannerService) Recommend(ctx context.Context, req dto.PlanRequest) (*dto.RecommendationsResponse, error) {
	college, err := s.catalog.CollegeByID(req.College)
	if err != nil {
		return nil, err
	}

	completed, err := s.completedSet(req.CompletedCourses)
	if err != nil {
		return nil, err
	}

	career, err := s.resolveCareer(req.CareerPath)
	if err != nil {
		return nil, err
	}

	offered := s.catalog.CoursesOffered(college)
	eligible := s.Eligible(offered, completed)

	return &dto.RecommendationsResponse{
		CollegeName:         college.Name,
		NextCourses:         s.RankNext(eligible, career),
		ElectiveSuggestions: s.SuggestElectives(offered, completed, req.Interests),
	}, nil
}

// Eligible returns the offered courses that are not yet completed and whose
// entire prerequisite list is contained in completed. Prerequisites are
// all-or-nothing; OR-groups are not supported.
func (s *PlannerService) Eligible(offered []*models.Course, completed map[string]bool) []*models.Course {
	eligible := make([]*models.Course, 0, len(offered))
	for _, course := range offered {
		if completed[course.ID] {
			continue
		}
		if prerequisitesMet(course, completed) {
			eligible = append(eligible, course)
		}
	}
	return eligible
}

func prerequisitesMet(course *models.Course, completed map[string]bool) bool {
	for _, prereq := range course.Prerequisites {
		if !completed[prereq] {
			return false
		}
	}
	return true
}

// RankNext orders eligible courses by academic level ascending, courses
// tagged with the selected career path first within a level, then by
// identifier so repeated calls yield the same order.
func (s *PlannerService) RankNext(eligible []*models.Course, career string) []models.Recommendation {
	ranked := append([]*models.Course(nil), eligible...)
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Level.Rank() != b.Level.Rank() {
			return a.Level.Rank() < b.Level.Rank()
		}
		aCareer := career != "" && a.HasCareer(career)
		bCareer := career != "" && b.HasCareer(career)
		if aCareer != bCareer {
			return aCareer
		}
		return a.ID < b.ID
	})

	recommendations := make([]models.Recommendation, 0, len(ranked))
	for _, course := range ranked {
		rec := models.Recommendation{
			Course: course,
			Reason: fmt.Sprintf("%s-level course with all prerequisites met", course.Level),
		}
		if career != "" && course.HasCareer(career) {
			rec.Reason += fmt.Sprintf("; part of the %s track", career)
			rec.Score = 1
		}
		recommendations = append(recommendations, rec)
	}
	return recommendations
}

// SuggestElectives scores offered courses against free-text interests. The
// score counts interest keywords found in a course's tags, name or
// description; zero-score courses are excluded. Results are ordered by score
// descending, level ascending, then identifier, and capped at
// electiveSuggestionLimit.
func (s *PlannerService) SuggestElectives(offered []*models.Course, completed map[string]bool, interests string) []models.Recommendation {
	keywords := parseInterests(interests)
	if len(keywords) == 0 {
		return []models.Recommendation{}
	}

	suggestions := make([]models.Recommendation, 0, len(offered))
	for _, course := range offered {
		if completed[course.ID] {
			continue
		}
		matches := matchInterests(course, keywords)
		if len(matches) == 0 {
			continue
		}
		suggestions = append(suggestions, models.Recommendation{
			Course: course,
			Reason: strings.Join(matches, ", "),
			Score:  len(matches),
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Course.Level.Rank() != b.Course.Level.Rank() {
			return a.Course.Level.Rank() < b.Course.Level.Rank()
		}
		return a.Course.ID < b.Course.ID
	})

	if len(suggestions) > electiveSuggestionLimit {
		suggestions = suggestions[:electiveSuggestionLimit]
	}
	return suggestions
}

// parseInterests splits a comma-separated interest string into lowercase
// keywords, dropping empties.
func parseInterests(interests string) []string {
	parts := strings.Split(interests, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		kw := strings.ToLower(strings.TrimSpace(part))
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// matchInterests reports, per keyword, the first place it matched: an exact
// tag, the course name, or the description.
func matchInterests(course *models.Course, keywords []string) []string {
	name := strings.ToLower(course.Name)
	description := strings.ToLower(course.Description)

	var matches []string
	for _, kw := range keywords {
		switch {
		case hasTagFold(course, kw):
			matches = append(matches, fmt.Sprintf("matches '%s' tag", kw))
		case strings.Contains(name, kw):
			matches = append(matches, fmt.Sprintf("name contains '%s'", kw))
		case strings.Contains(description, kw):
			matches = append(matches, fmt.Sprintf("description contains '%s'", kw))
		}
	}
	return matches
}

func hasTagFold(course *models.Course, keyword string) bool {
	for _, tag := range course.Tags {
		if strings.ToLower(tag) == keyword {
			return true
		}
	}
	return false
}

// completedSet validates the request's completed-course identifiers against
// the catalog and converts them to a set.
func (s *PlannerService) completedSet(ids []string) (map[string]bool, error) {
	completed := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, err := s.catalog.CourseByID(id); err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown completed course %q", id))
		}
		completed[id] = true
	}
	return completed, nil
}

// resolveCareer canonicalizes an optional career path name. An empty name
// means no career bias; an unknown name is a client-input error.
func (s *PlannerService) resolveCareer(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", nil
	}
	career, err := s.catalog.CareerPath(name)
	if err != nil {
		return "", err
	}
	return career.Name, nil
}
