package request

import "guytogo/internal/usecase/interfaces"

type GenerateLessonPlanRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Grade    string `json:"grade" binding:"required"`
	Topic    string `json:"topic" binding:"required"`
	Duration string `json:"duration" binding:"required"`
}

func (r GenerateLessonPlanRequest) ToInput() interfaces.LessonPlanInput {
	return interfaces.LessonPlanInput{
		Subject:  r.Subject,
		Grade:    r.Grade,
		Topic:    r.Topic,
		Duration: r.Duration,
	}
}
