package narrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecan/pathways/internal/app/models"
)

func testCourse(id string, credits int, tags ...string) *models.Course {
	return &models.Course{
		ID:      id,
		Name:    id,
		Level:   models.LevelJunior,
		Credits: credits,
		Tags:    tags,
	}
}

func testSlot(semester int, courses ...*models.Course) models.ScheduleSlot {
	slot := models.ScheduleSlot{
		Semester: semester,
		Year:     (semester-1)/2 + 1,
		Term:     models.TermForSemester(semester),
		Courses:  courses,
	}
	for _, c := range courses {
		slot.Credits += c.Credits
	}
	return slot
}

func TestHeuristicNarrate_OneBlockPerSlot(t *testing.T) {
	n := NewHeuristicNarrator()

	slots := []models.ScheduleSlot{
		testSlot(1, testCourse("a1", 4, "programming"), testCourse("a2", 4, "math"), testCourse("a3", 4)),
		testSlot(2, testCourse("b1", 4, "systems")),
	}

	blocks := n.Narrate(context.Background(), slots)
	require.Len(t, blocks, 2)
	for i, block := range blocks {
		assert.Equal(t, slots[i].Semester, block.Semester)
		assert.Equal(t, models.NarrationHeuristic, block.Method)
		assert.GreaterOrEqual(t, block.Difficulty, 1)
		assert.LessOrEqual(t, block.Difficulty, 10)
		assert.NotEmpty(t, block.WeeklyHours)
		assert.NotEmpty(t, block.Tips)
		assert.NotEmpty(t, block.Balance)
		assert.Empty(t, block.Guidance)
	}
}

func TestHeuristicDifficulty_CreditsAndAdvancedCourses(t *testing.T) {
	n := NewHeuristicNarrator()

	light := n.NarrateSlot(testSlot(1, testCourse("x", 9)))
	assert.Equal(t, 5, light.Difficulty)

	moderate := n.NarrateSlot(testSlot(1, testCourse("x", 12)))
	assert.Equal(t, 6, moderate.Difficulty)

	heavy := n.NarrateSlot(testSlot(1, testCourse("x", 16)))
	assert.Equal(t, 8, heavy.Difficulty)

	// One point per advanced-tagged course, capped at 10.
	withAdvanced := n.NarrateSlot(testSlot(1,
		testCourse("x", 12, "advanced"),
		testCourse("y", 4, "advanced"),
	))
	assert.Equal(t, 10, withAdvanced.Difficulty)
}

func TestHeuristicWeeklyHours(t *testing.T) {
	n := NewHeuristicNarrator()

	block := n.NarrateSlot(testSlot(1, testCourse("x", 14)))
	assert.Equal(t, "28-42 hours", block.WeeklyHours)
}

func TestHeuristicTips_TagDrivenAndCapped(t *testing.T) {
	n := NewHeuristicNarrator()

	block := n.NarrateSlot(testSlot(1,
		testCourse("a", 3, "programming"),
		testCourse("b", 3, "math"),
		testCourse("c", 3, "systems"),
		testCourse("d", 3, "security"),
	))
	assert.Len(t, block.Tips, 3)

	// No tag with a canned tip falls back to the generic one.
	generic := n.NarrateSlot(testSlot(1, testCourse("a", 3, "writing")))
	require.Len(t, generic.Tips, 1)
	assert.Equal(t, defaultTip, generic.Tips[0])
}

func TestHeuristicTips_Deterministic(t *testing.T) {
	n := NewHeuristicNarrator()
	slot := testSlot(1,
		testCourse("a", 3, "programming", "theory"),
		testCourse("b", 3, "math", "systems"),
	)

	first := n.NarrateSlot(slot).Tips
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, n.NarrateSlot(slot).Tips)
	}
}

func TestHeuristicBalance(t *testing.T) {
	n := NewHeuristicNarrator()

	under := testSlot(1, testCourse("x", 9))
	under.UnderFilled = true
	assert.Contains(t, n.NarrateSlot(under).Balance, "Light semester")

	heavy := n.NarrateSlot(testSlot(1, testCourse("x", 16)))
	assert.Contains(t, heavy.Balance, "Heavy load")

	balanced := n.NarrateSlot(testSlot(1, testCourse("x", 13)))
	assert.Contains(t, balanced.Balance, "Balanced load")
}
