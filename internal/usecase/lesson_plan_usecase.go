package usecase

import (
	"context"
	"errors"
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase/interfaces"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSubscriptionRequired   = errors.New("active subscription required")
	ErrInvalidLessonPlanInput = errors.New("invalid lesson plan input")
	ErrLessonPlanUnavailable  = errors.New("lesson plan service unavailable")
	ErrLessonPlanNotFound     = errors.New("lesson plan not found")
)

// LessonPlanHistoryLimit is the number of plans kept per user.
const LessonPlanHistoryLimit = 50

// ILessonPlanUseCase is the premium lesson planner.

type ILessonPlanUseCase interface {
	Generate(ctx context.Context, userID string, in interfaces.LessonPlanInput) (entities.LessonPlan, error)
	History(ctx context.Context, userID string) ([]entities.LessonPlan, error)
	Delete(ctx context.Context, userID, planID string) error
}

type LessonPlanUseCase struct {
	repo       interfaces.ILessonPlanRepository
	identities interfaces.IIdentityRepository
	generator  interfaces.ILessonPlanGenerator
	metrics    interfaces.IWorkflowMetrics
	now        func() time.Time
}

var _ ILessonPlanUseCase = (*LessonPlanUseCase)(nil)

func NewLessonPlanUseCase(
	repo interfaces.ILessonPlanRepository,
	identities interfaces.IIdentityRepository,
	generator interfaces.ILessonPlanGenerator,
	metrics interfaces.IWorkflowMetrics,
) *LessonPlanUseCase {
	return &LessonPlanUseCase{
		repo:       repo,
		identities: identities,
		generator:  generator,
		metrics:    metricsOrNoop(metrics),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *LessonPlanUseCase) Generate(ctx context.Context, userID string, in interfaces.LessonPlanInput) (entities.LessonPlan, error) {
	in = interfaces.LessonPlanInput{
		Subject:  strings.TrimSpace(in.Subject),
		Grade:    strings.TrimSpace(in.Grade),
		Topic:    strings.TrimSpace(in.Topic),
		Duration: strings.TrimSpace(in.Duration),
	}
	if in.Subject == "" || in.Grade == "" || in.Topic == "" || in.Duration == "" {
		return entities.LessonPlan{}, ErrInvalidLessonPlanInput
	}

	identity, err := u.premiumIdentity(ctx, userID)
	if err != nil {
		return entities.LessonPlan{}, err
	}
	if u.generator == nil {
		log.Printf("[lessonplan][usecase] generator not configured")
		return entities.LessonPlan{}, ErrLessonPlanUnavailable
	}

	log.Printf("[lessonplan][usecase] generate start user_id=%s subject=%q grade=%q", identity.ID, in.Subject, in.Grade)
	raw, err := u.generator.Generate(ctx, in)
	if err != nil {
		log.Printf("[lessonplan][usecase] generation failed user_id=%s err=%v", identity.ID, err)
		u.metrics.LessonPlanGenerated(false)
		return entities.LessonPlan{}, ErrLessonPlanUnavailable
	}
	content := stripCodeFences(raw)
	if content == "" {
		u.metrics.LessonPlanGenerated(false)
		return entities.LessonPlan{}, ErrLessonPlanUnavailable
	}
	u.metrics.LessonPlanGenerated(true)

	plan := entities.LessonPlan{
		ID:          uuid.NewString(),
		UserID:      identity.ID,
		Subject:     in.Subject,
		Grade:       in.Grade,
		Topic:       in.Topic,
		Duration:    in.Duration,
		Content:     content,
		GeneratedAt: u.now(),
	}
	created, err := u.repo.Create(ctx, plan)
	if err != nil {
		log.Printf("[lessonplan][usecase] save failed user_id=%s err=%v", identity.ID, err)
		return entities.LessonPlan{}, err
	}
	u.trimHistory(ctx, identity.ID)

	log.Printf("[lessonplan][usecase] generate success plan_id=%s user_id=%s", created.ID, identity.ID)
	return created, nil
}

func (u *LessonPlanUseCase) premiumIdentity(ctx context.Context, userID string) (entities.Identity, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Identity{}, ErrInvalidIdentityID
	}
	identity, err := u.identities.GetByID(ctx, userID)
	if err != nil {
		return entities.Identity{}, err
	}
	if identity.ID == "" {
		return entities.Identity{}, ErrIdentityNotFound
	}
	if !identity.HasPremiumAccess() {
		log.Printf("[lessonplan][usecase] premium access denied user_id=%s subscription=%s", identity.ID, identity.SubscriptionStatus)
		return entities.Identity{}, ErrSubscriptionRequired
	}
	return identity, nil
}

// trimHistory drops the oldest plans beyond the per-user limit.
func (u *LessonPlanUseCase) trimHistory(ctx context.Context, userID string) {
	plans, err := u.History(ctx, userID)
	if err != nil {
		log.Printf("[lessonplan][usecase] history trim skipped user_id=%s err=%v", userID, err)
		return
	}
	for _, old := range plans[min(len(plans), LessonPlanHistoryLimit):] {
		if _, err := u.repo.Delete(ctx, old.ID); err != nil {
			log.Printf("[lessonplan][usecase] history trim failed plan_id=%s err=%v", old.ID, err)
		}
	}
}

// History returns the user's plans, newest first.
func (u *LessonPlanUseCase) History(ctx context.Context, userID string) ([]entities.LessonPlan, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidIdentityID
	}
	plans, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].GeneratedAt.After(plans[j].GeneratedAt)
	})
	return plans, nil
}

// Delete removes one of the user's own plans.
func (u *LessonPlanUseCase) Delete(ctx context.Context, userID, planID string) error {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return ErrLessonPlanNotFound
	}
	plans, err := u.History(ctx, userID)
	if err != nil {
		return err
	}
	owned := false
	for _, p := range plans {
		if p.ID == planID {
			owned = true
			break
		}
	}
	if !owned {
		return ErrLessonPlanNotFound
	}
	deleted, err := u.repo.Delete(ctx, planID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLessonPlanNotFound
	}
	log.Printf("[lessonplan][usecase] plan deleted plan_id=%s user_id=%s", planID, userID)
	return nil
}

// stripCodeFences removes markdown code fences some models wrap HTML in.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```html", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
