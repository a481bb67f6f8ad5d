package response

import (
	"guytogo/internal/domain/entities"
	"time"
)

type LessonPlanResponse struct {
	ID          string    `json:"id"`
	Subject     string    `json:"subject"`
	Grade       string    `json:"grade"`
	Topic       string    `json:"topic"`
	Duration    string    `json:"duration"`
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generated_at"`
}

func FromLessonPlan(p entities.LessonPlan) LessonPlanResponse {
	return LessonPlanResponse{
		ID:          p.ID,
		Subject:     p.Subject,
		Grade:       p.Grade,
		Topic:       p.Topic,
		Duration:    p.Duration,
		Content:     p.Content,
		GeneratedAt: p.GeneratedAt,
	}
}

func FromLessonPlans(list []entities.LessonPlan) []LessonPlanResponse {
	out := make([]LessonPlanResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromLessonPlan(p))
	}
	return out
}
