package interfaces

import "context"

// LessonPlanInput is the user-provided brief for a lesson plan.
type LessonPlanInput struct {
	Subject  string
	Grade    string
	Topic    string
	Duration string
}

// ILessonPlanGenerator is an opaque text-generation call returning HTML.
type ILessonPlanGenerator interface {
	Generate(ctx context.Context, in LessonPlanInput) (string, error)
}
