package models

// CareerPath is a named professional track with an ordered course
// progression. The order expresses the recommended sequence for the track.
type CareerPath struct {
	Name    string   `json:"name"`
	Courses []string `json:"courses"`
}
