package models

// Term represents a semester term
type Term string

// Term constants
const (
	TermFall   Term = "Fall"
	TermSpring Term = "Spring"
)

// TermForSemester maps a 1-based semester index to its term. Odd semesters
// are Fall, even semesters Spring.
func TermForSemester(semester int) Term {
	if (semester-1)%2 == 0 {
		return TermFall
	}
	return TermSpring
}

// ScheduleSlot is one semester of a generated schedule.
type ScheduleSlot struct {
	Semester int       `json:"semester"`
	Year     int       `json:"year"`
	Term     Term      `json:"term"`
	Courses  []*Course `json:"courses"`
	Credits  int       `json:"credits"`

	// UnderFilled marks a semester that ended below the minimum of the
	// configured credit band. The builder emits it as-is; it never fails or
	// backtracks over earlier semesters.
	UnderFilled bool `json:"underFilled"`
}

// CourseIDs returns the identifiers of the slot's courses in order.
func (s *ScheduleSlot) CourseIDs() []string {
	ids := make([]string, len(s.Courses))
	for i, c := range s.Courses {
		ids[i] = c.ID
	}
	return ids
}

// NarrationMethod identifies which narrator produced a workload block.
type NarrationMethod string

const (
	NarrationGemini    NarrationMethod = "gemini"
	NarrationHeuristic NarrationMethod = "heuristic"
)

// SemesterNarration is the workload commentary for one semester. Both
// narrator implementations populate the same fields so rendering is
// mode-agnostic.
type SemesterNarration struct {
	Semester    int             `json:"semester"`
	Difficulty  int             `json:"difficulty"`
	WeeklyHours string          `json:"weeklyHours"`
	Tips        []string        `json:"tips"`
	Balance     string          `json:"balance"`
	Guidance    string          `json:"guidance,omitempty"`
	Method      NarrationMethod `json:"method"`
}
