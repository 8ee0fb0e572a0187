package course

import "time"

// Course は研修カタログのコースです。
type Course struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Skill         string    `json:"skill"`
	Provider      string    `json:"provider"`
	Level         int       `json:"level" validate:"min=1,max=5"`
	DurationWeeks int       `json:"durationWeeks" validate:"min=1"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
