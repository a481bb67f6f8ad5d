package interfaces

import "guytogo/internal/domain/entities"

// IWorkflowMetrics records business events of the storefront workflow.
type IWorkflowMetrics interface {
	RequestSubmitted(kind entities.PaymentKind)
	DecisionApplied(kind entities.PaymentKind, status entities.SubscriptionStatus)
	NotificationFailed(event string)
	LessonPlanGenerated(ok bool)
}
