package narrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/ecan/pathways/internal/app/models"
	"github.com/ecan/pathways/internal/pkg/apperrors"
)

// generateFunc runs one text-generation call and returns the raw completion.
type generateFunc func(ctx context.Context, prompt string) (string, error)

// GeminiNarrator asks the Gemini API for per-semester workload commentary.
// Each semester gets one attempt with a bounded timeout; a transport failure
// or an unusable response degrades to the heuristic narrator for that
// semester, so Narrate never fails and the output shape matches the
// heuristic mode exactly.
type GeminiNarrator struct {
	generate generateFunc
	timeout  time.Duration
	fallback *HeuristicNarrator
	logger   zerolog.Logger
}

// NewGeminiNarrator creates a Gemini-backed narrator.
func NewGeminiNarrator(ctx context.Context, apiKey, model string, timeout time.Duration, fallback *HeuristicNarrator, logger zerolog.Logger) (*GeminiNarrator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	generate := func(ctx context.Context, prompt string) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		})
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	}

	return newGeminiNarrator(generate, timeout, fallback, logger), nil
}

// newGeminiNarrator wires a narrator around an arbitrary generation call.
func newGeminiNarrator(generate generateFunc, timeout time.Duration, fallback *HeuristicNarrator, logger zerolog.Logger) *GeminiNarrator {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if fallback == nil {
		fallback = NewHeuristicNarrator()
	}
	return &GeminiNarrator{
		generate: generate,
		timeout:  timeout,
		fallback: fallback,
		logger:   logger,
	}
}

// Narrate produces one block per slot, falling back per semester on error.
func (n *GeminiNarrator) Narrate(ctx context.Context, slots []models.ScheduleSlot) []models.SemesterNarration {
	blocks := make([]models.SemesterNarration, len(slots))
	for i := range slots {
		remaining := len(slots) - i - 1
		block, err := n.narrateSlot(ctx, slots[i], remaining)
		if err != nil {
			n.logger.Warn().Err(err).Int("semester", slots[i].Semester).
				Msg("Gemini narration failed, using heuristic fallback")
			block = n.fallback.NarrateSlot(slots[i])
		}
		blocks[i] = block
	}
	return blocks
}

// workloadPayload mirrors the JSON object the prompt asks the model for.
type workloadPayload struct {
	Difficulty  int      `json:"difficulty_rating"`
	WeeklyHours string   `json:"weekly_hours"`
	Tips        []string `json:"tips"`
	Balance     string   `json:"balance_analysis"`
	Guidance    string   `json:"guidance"`
}

func (n *GeminiNarrator) narrateSlot(ctx context.Context, slot models.ScheduleSlot, remaining int) (models.SemesterNarration, error) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	prompt := buildWorkloadPrompt(slot, remaining)

	raw, err := n.generate(ctx, prompt)
	if err != nil {
		return models.SemesterNarration{}, fmt.Errorf("%w: %v", apperrors.ErrServiceUnavailable, err)
	}

	text := strings.TrimSpace(raw)
	if text == "" {
		return models.SemesterNarration{}, fmt.Errorf("%w: empty completion", apperrors.ErrInvalidResponse)
	}

	var payload workloadPayload
	if err := json.Unmarshal([]byte(extractJSON(text)), &payload); err != nil {
		return models.SemesterNarration{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidResponse, err)
	}

	if err := validatePayload(payload); err != nil {
		return models.SemesterNarration{}, err
	}

	tips := payload.Tips
	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}

	return models.SemesterNarration{
		Semester:    slot.Semester,
		Difficulty:  payload.Difficulty,
		WeeklyHours: payload.WeeklyHours,
		Tips:        tips,
		Balance:     payload.Balance,
		Guidance:    strings.TrimSpace(payload.Guidance),
		Method:      models.NarrationGemini,
	}, nil
}

func validatePayload(payload workloadPayload) error {
	if payload.Difficulty < 1 || payload.Difficulty > 10 {
		return fmt.Errorf("%w: difficulty_rating %d out of range", apperrors.ErrInvalidResponse, payload.Difficulty)
	}
	if strings.TrimSpace(payload.WeeklyHours) == "" {
		return fmt.Errorf("%w: missing weekly_hours", apperrors.ErrInvalidResponse)
	}
	if len(payload.Tips) == 0 {
		return fmt.Errorf("%w: missing tips", apperrors.ErrInvalidResponse)
	}
	if strings.TrimSpace(payload.Balance) == "" {
		return fmt.Errorf("%w: missing balance_analysis", apperrors.ErrInvalidResponse)
	}
	return nil
}

// buildWorkloadPrompt summarizes the semester's course list and asks for a
// strict-JSON analysis.
func buildWorkloadPrompt(slot models.ScheduleSlot, remaining int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the workload for semester %d (%s, year %d) of a computer science degree plan.\n\nCourses:\n", slot.Semester, slot.Term, slot.Year)
	for _, course := range slot.Courses {
		fmt.Fprintf(&b, "- %s (%s, %d credits): %s\n", course.Name, course.Level, course.Credits, course.Description)
	}
	fmt.Fprintf(&b, "Total credits: %d\nRemaining semesters after this one: %d\n\n", slot.Credits, remaining)
	b.WriteString("Return only a JSON object with these exact keys: " +
		"difficulty_rating (integer 1-10), weekly_hours (string estimate), " +
		"tips (array of 1-3 short study tips), balance_analysis (string), " +
		"guidance (string, 2-3 actionable recommendations under 100 words).")
	return b.String()
}

// extractJSON strips a Markdown code fence if the model wrapped its JSON in
// one.
func extractJSON(s string) string {
	if i := strings.Index(s, "```json"); i >= 0 {
		s = s[i+len("```json"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	} else if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+len("```"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}
	return strings.TrimSpace(s)
}
