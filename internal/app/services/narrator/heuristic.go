package narrator

import (
	"context"
	"fmt"
	"sort"

	"github.com/ecan/pathways/internal/app/models"
)

// Tag courses as "advanced" in the catalog to raise the difficulty estimate.
const advancedTag = "advanced"

// maxTips caps the number of study tips per semester.
const maxTips = 3

// tipsByTag is the static tip lookup keyed by course tags. The first tag of
// each course that has an entry contributes its tip.
var tipsByTag = map[string]string{
	"programming": "Block out regular lab time; programming assignments take longer than they look.",
	"math":        "Work problem sets incrementally instead of cramming before deadlines.",
	"theory":      "Rewrite proofs in your own words to check you actually follow them.",
	"systems":     "Budget debugging time for systems projects; the last 10% is half the work.",
	"ai":          "Reproduce the textbook examples before attempting the open-ended exercises.",
	"ml":          "Keep experiments small and logged so results stay comparable.",
	"security":    "Set up an isolated lab environment early in the term.",
	advancedTag:   "Start projects in advanced courses the week they are assigned.",
}

// defaultTip is used when no course tag has a canned tip.
const defaultTip = "Start assignments early and keep a consistent study schedule."

// HeuristicNarrator produces workload commentary from static rules: credit
// totals, the count of advanced-tagged courses, and a tag-keyed tip table.
// It never fails.
type HeuristicNarrator struct {
	// HoursPerCredit is the upper multiplier for the weekly-hours estimate.
	HoursPerCredit int
}

// NewHeuristicNarrator creates a heuristic narrator with the conventional
// 3-hours-per-credit estimate.
func NewHeuristicNarrator() *HeuristicNarrator {
	return &HeuristicNarrator{HoursPerCredit: 3}
}

// Narrate produces one block per slot.
func (n *HeuristicNarrator) Narrate(_ context.Context, slots []models.ScheduleSlot) []models.SemesterNarration {
	blocks := make([]models.SemesterNarration, len(slots))
	for i := range slots {
		blocks[i] = n.NarrateSlot(slots[i])
	}
	return blocks
}

// NarrateSlot builds the commentary for a single semester. The Gemini
// narrator uses it as its per-semester fallback.
func (n *HeuristicNarrator) NarrateSlot(slot models.ScheduleSlot) models.SemesterNarration {
	advanced := 0
	for _, course := range slot.Courses {
		if course.HasTag(advancedTag) {
			advanced++
		}
	}

	return models.SemesterNarration{
		Semester:    slot.Semester,
		Difficulty:  difficultyFor(slot.Credits, advanced),
		WeeklyHours: n.weeklyHours(slot.Credits),
		Tips:        tipsFor(slot.Courses),
		Balance:     balanceFor(slot),
		Method:      models.NarrationHeuristic,
	}
}

// difficultyFor rates a semester 1-10 from its credit total plus one point
// per advanced-tagged course.
func difficultyFor(credits, advanced int) int {
	difficulty := 5
	switch {
	case credits >= 15:
		difficulty = 8
	case credits >= 12:
		difficulty = 6
	}
	difficulty += advanced
	if difficulty > 10 {
		difficulty = 10
	}
	if difficulty < 1 {
		difficulty = 1
	}
	return difficulty
}

func (n *HeuristicNarrator) weeklyHours(credits int) string {
	high := n.HoursPerCredit
	if high < 2 {
		high = 2
	}
	return fmt.Sprintf("%d-%d hours", credits*(high-1), credits*high)
}

// tipsFor selects up to maxTips distinct tips for the slot's course tags,
// scanning tags in sorted order for deterministic output.
func tipsFor(courses []*models.Course) []string {
	tagSet := make(map[string]bool)
	for _, course := range courses {
		for _, tag := range course.Tags {
			tagSet[tag] = true
		}
	}

	tags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	seen := make(map[string]bool)
	tips := make([]string, 0, maxTips)
	for _, tag := range tags {
		tip, ok := tipsByTag[tag]
		if !ok || seen[tip] {
			continue
		}
		seen[tip] = true
		tips = append(tips, tip)
		if len(tips) == maxTips {
			break
		}
	}

	if len(tips) == 0 {
		tips = append(tips, defaultTip)
	}
	return tips
}

func balanceFor(slot models.ScheduleSlot) string {
	if slot.UnderFilled {
		return fmt.Sprintf("Light semester at %d credits; room for an extra elective if one opens up.", slot.Credits)
	}
	if slot.Credits >= 15 {
		return fmt.Sprintf("Heavy load at %d credits across %d courses; avoid stacking other commitments.", slot.Credits, len(slot.Courses))
	}
	return fmt.Sprintf("Balanced load at %d credits across %d courses.", slot.Credits, len(slot.Courses))
}
