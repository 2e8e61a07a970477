package models

// Recommendation is a derived, per-request view over a catalog course. It is
// recomputed on every request and never cached.
type Recommendation struct {
	Course *Course `json:"course"`
	Reason string  `json:"reason"`
	Score  int     `json:"score"`
}
