package entities

import "time"

// LessonPlan is a generated lesson plan kept in the user's history.
type LessonPlan struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Subject     string    `json:"subject"`
	Grade       string    `json:"grade"`
	Topic       string    `json:"topic"`
	Duration    string    `json:"duration"`
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generated_at"`
}
