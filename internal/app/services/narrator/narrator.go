// Package narrator produces per-semester workload commentary for a generated
// schedule. Two implementations exist: one backed by the Gemini generation
// API and a heuristic one used when no API key is configured. The
// implementation is selected once at startup; both produce structurally
// identical records so rendering is mode-agnostic.
package narrator

import (
	"context"

	"github.com/ecan/pathways/internal/app/models"
)

// Narrator turns schedule slots into workload commentary, one block per
// semester. Implementations must not fail: a backend problem degrades to
// heuristic values instead of surfacing an error.
type Narrator interface {
	Narrate(ctx context.Context, slots []models.ScheduleSlot) []models.SemesterNarration
}
