package handlers

import (
	"errors"
	request "guytogo/internal/adapter/http/dto/request"
	response "guytogo/internal/adapter/http/dto/response"
	"guytogo/internal/usecase"
	"guytogo/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// LessonPlanHandler serves the AI lesson planner.
type LessonPlanHandler struct {
	usecase usecase.ILessonPlanUseCase
}

func NewLessonPlanHandler(uc usecase.ILessonPlanUseCase) *LessonPlanHandler {
	return &LessonPlanHandler{usecase: uc}
}

// Generate godoc
// @Summary      Generate a lesson plan (subscription required)
// @Tags         lesson-plans
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.GenerateLessonPlanRequest  true  "Brief"
// @Success      201   {object}  response.LessonPlanResponse
// @Failure      403   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /lesson-plans [post]
func (h *LessonPlanHandler) Generate(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req request.GenerateLessonPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidRequest())
		return
	}

	plan, err := h.usecase.Generate(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		log.Printf("[lessonplan][handler] generate failed user_id=%s err=%v", userID, err)
		writeError(c, mapLessonPlanError(err))
		return
	}
	log.Printf("[lessonplan][handler] generate success user_id=%s plan_id=%s", userID, plan.ID)

	c.JSON(http.StatusCreated, response.FromLessonPlan(plan))
}

// History godoc
// @Summary      The caller's saved lesson plans, newest first
// @Tags         lesson-plans
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  response.LessonPlanResponse
// @Router       /lesson-plans [get]
func (h *LessonPlanHandler) History(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	plans, err := h.usecase.History(c.Request.Context(), userID)
	if err != nil {
		writeError(c, mapLessonPlanError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLessonPlans(plans))
}

// Delete godoc
// @Summary      Delete one of the caller's lesson plans
// @Tags         lesson-plans
// @Security     Bearer
// @Param        id   path  string  true  "Lesson plan ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /lesson-plans/{id} [delete]
func (h *LessonPlanHandler) Delete(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeError(c, mapLessonPlanError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapLessonPlanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSubscriptionRequired):
		return pkg.NewDomainErrorSimple("SUBSCRIPTION_REQUIRED", "An active subscription is required", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidLessonPlanInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Subject, grade, topic and duration are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLessonPlanUnavailable):
		return pkg.NewDomainErrorSimple("LESSON_PLANNER_UNAVAILABLE", "The AI service is currently unavailable. Please try again later.", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrLessonPlanNotFound):
		return pkg.NewDomainErrorSimple("LESSON_PLAN_NOT_FOUND", "Lesson plan not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
