package models

// Course represents a single catalog entry. Courses are immutable after the
// catalog is loaded at startup.
type Course struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	Level         AcademicLevel `json:"level"`
	Credits       int           `json:"credits"`
	Prerequisites []string      `json:"prerequisites"`
	Tags          []string      `json:"tags,omitempty"`

	// Careers lists the career paths whose curriculum includes this course.
	// Derived from the career path listings when the catalog is loaded.
	Careers []string `json:"careers,omitempty"`
}

// HasCareer reports whether the course is part of the given career path's
// curriculum.
func (c *Course) HasCareer(career string) bool {
	for _, cp := range c.Careers {
		if cp == career {
			return true
		}
	}
	return false
}

// HasTag reports whether the course carries the given tag.
func (c *Course) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
