package models

import "fmt"

// AcademicLevel is the class-year bucket a course is aimed at. Levels are
// ordered; Rank gives the ordering used by the recommendation ranker.
type AcademicLevel string

const (
	LevelFreshman  AcademicLevel = "freshman"
	LevelSophomore AcademicLevel = "sophomore"
	LevelJunior    AcademicLevel = "junior"
	LevelSenior    AcademicLevel = "senior"
)

var levelRanks = map[AcademicLevel]int{
	LevelFreshman:  1,
	LevelSophomore: 2,
	LevelJunior:    3,
	LevelSenior:    4,
}

// Rank returns the ordinal position of the level, freshman first. Unknown
// levels sort last.
func (l AcademicLevel) Rank() int {
	if r, ok := levelRanks[l]; ok {
		return r
	}
	return len(levelRanks) + 1
}

// Valid reports whether the level is one of the four known buckets.
func (l AcademicLevel) Valid() bool {
	_, ok := levelRanks[l]
	return ok
}

// ParseLevel validates a raw level string from the catalog document.
func ParseLevel(s string) (AcademicLevel, error) {
	l := AcademicLevel(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown academic level %q", s)
	}
	return l, nil
}
