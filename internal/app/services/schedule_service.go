package services

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/ecan/pathways/internal/app/models"
	"github.com/ecan/pathways/internal/app/models/dto"
	"github.com/ecan/pathways/internal/app/repositories"
	"github.com/ecan/pathways/internal/app/services/narrator"
)

// ScheduleConfig carries the per-semester allocation limits.
type ScheduleConfig struct {
	MinCredits int
	MaxCredits int
	MaxCourses int
	Semesters  int
}

// ScheduleService generates multi-semester schedules with workload
// narration.
type ScheduleService struct {
	catalog  *repositories.CatalogRepository
	planner  *PlannerService
	narrator narrator.Narrator
	cfg      ScheduleConfig
	logger   zerolog.Logger
}

// NewScheduleService creates a new schedule service instance
func NewScheduleService(catalog *repositories.CatalogRepository, planner *PlannerService, n narrator.Narrator, cfg ScheduleConfig, logger zerolog.Logger) *ScheduleService {
	return &ScheduleService{
		catalog:  catalog,
		planner:  planner,
		narrator: n,
		cfg:      cfg,
		logger:   logger,
	}
}

// Build generates the full schedule for one request. Narration problems
// never surface here: the narrator degrades internally, so the response
// shape is the same in both modes.
func (s *ScheduleService) Build(ctx context.Context, req dto.PlanRequest) (*dto.ScheduleResponse, error) {
	college, err := s.catalog.CollegeByID(req.College)
	if err != nil {
		return nil, err
	}

	completed, err := s.planner.completedSet(req.CompletedCourses)
	if err != nil {
		return nil, err
	}

	career, err := s.planner.resolveCareer(req.CareerPath)
	if err != nil {
		return nil, err
	}

	offered := s.catalog.CoursesOffered(college)
	slots := s.BuildSlots(offered, completed, career, req.Interests)
	narrations := s.narrator.Narrate(ctx, slots)

	semesters := make([]dto.SemesterPlan, len(slots))
	for i := range slots {
		semesters[i] = dto.SemesterPlan{
			ScheduleSlot: slots[i],
			Workload:     narrations[i],
		}
	}

	return &dto.ScheduleResponse{
		CollegeName: college.Name,
		CareerPath:  career,
		Semesters:   semesters,
	}, nil
}

// BuildSlots runs the greedy semester-by-semester allocation. Each semester
// takes the ranked eligible courses until the credit band or course cap is
// hit; scheduled courses count as completed for later semesters, so every
// prerequisite lands in a strictly earlier semester. A semester that cannot
// reach the minimum of the band is flagged under-filled and emitted as-is;
// there is no backtracking.
func (s *ScheduleService) BuildSlots(offered []*models.Course, completed map[string]bool, career, interests string) []models.ScheduleSlot {
	// The request's set stays untouched; the running set also covers courses
	// scheduled in earlier semesters.
	scheduled := make(map[string]bool, len(completed))
	for id := range completed {
		scheduled[id] = true
	}

	scores := s.interestScores(offered, interests)

	slots := make([]models.ScheduleSlot, 0, s.cfg.Semesters)
	for semester := 1; semester <= s.cfg.Semesters; semester++ {
		eligible := s.planner.Eligible(offered, scheduled)
		rankForSchedule(eligible, career, scores)

		slot := models.ScheduleSlot{
			Semester: semester,
			Year:     (semester-1)/2 + 1,
			Term:     models.TermForSemester(semester),
			Courses:  []*models.Course{},
		}

		for _, course := range eligible {
			if len(slot.Courses) >= s.cfg.MaxCourses {
				break
			}
			if slot.Credits+course.Credits <= s.cfg.MaxCredits {
				slot.Courses = append(slot.Courses, course)
				slot.Credits += course.Credits
			}
			if slot.Credits >= s.cfg.MinCredits {
				break
			}
		}

		if slot.Credits < s.cfg.MinCredits {
			slot.UnderFilled = true
			s.logger.Debug().Int("semester", semester).Int("credits", slot.Credits).
				Msg("Semester below minimum credit band")
		}

		for _, course := range slot.Courses {
			scheduled[course.ID] = true
		}
		slots = append(slots, slot)
	}
	return slots
}

// rankForSchedule orders courses by academic level ascending, career-tagged
// first, interest score descending, then identifier.
func rankForSchedule(courses []*models.Course, career string, interestScore map[string]int) {
	sort.Slice(courses, func(i, j int) bool {
		a, b := courses[i], courses[j]
		if a.Level.Rank() != b.Level.Rank() {
			return a.Level.Rank() < b.Level.Rank()
		}
		aCareer := career != "" && a.HasCareer(career)
		bCareer := career != "" && b.HasCareer(career)
		if aCareer != bCareer {
			return aCareer
		}
		if interestScore[a.ID] != interestScore[b.ID] {
			return interestScore[a.ID] > interestScore[b.ID]
		}
		return a.ID < b.ID
	})
}

// interestScores precomputes the keyword match count per offered course.
func (s *ScheduleService) interestScores(offered []*models.Course, interests string) map[string]int {
	keywords := parseInterests(interests)
	scores := make(map[string]int, len(offered))
	if len(keywords) == 0 {
		return scores
	}
	for _, course := range offered {
		scores[course.ID] = len(matchInterests(course, keywords))
	}
	return scores
}
