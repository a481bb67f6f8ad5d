package interfaces

import (
	"context"
	"guytogo/internal/domain/entities"
)

type ILessonPlanRepository interface {
	Create(ctx context.Context, p entities.LessonPlan) (entities.LessonPlan, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.LessonPlan, error)
	Delete(ctx context.Context, id string) (bool, error)
}
