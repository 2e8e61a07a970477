package models

// College represents a college and the set of catalog courses it offers.
type College struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Courses []string `json:"courses"`
}
