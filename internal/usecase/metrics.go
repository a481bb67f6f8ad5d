package usecase

import (
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase/interfaces"
)

type noopMetrics struct{}

func (noopMetrics) RequestSubmitted(entities.PaymentKind) {}

func (noopMetrics) DecisionApplied(entities.PaymentKind, entities.SubscriptionStatus) {}

func (noopMetrics) NotificationFailed(string) {}

func (noopMetrics) LessonPlanGenerated(bool) {}

func metricsOrNoop(m interfaces.IWorkflowMetrics) interfaces.IWorkflowMetrics {
	if m == nil {
		return noopMetrics{}
	}
	return m
}
