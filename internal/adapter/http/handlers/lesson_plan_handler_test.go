package handlers

import (
	"net/http"
	"testing"

	"guytogo/internal/adapter/http/handlers/mocks"
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase"
	"guytogo/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const briefJSON = `{"subject":"Mathematics","grade":"Grade 7","topic":"Fractions","duration":"40 minutes"}`

func TestLessonPlanHandler_Generate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, http.StatusCreated},
		{"no subscription", usecase.ErrSubscriptionRequired, http.StatusForbidden},
		{"ai down", usecase.ErrLessonPlanUnavailable, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockILessonPlanUseCase(ctrl)
			uc.EXPECT().Generate(gomock.Any(), "u-1", interfaces.LessonPlanInput{
				Subject: "Mathematics", Grade: "Grade 7", Topic: "Fractions", Duration: "40 minutes",
			}).Return(entities.LessonPlan{ID: "lp-1"}, tc.err)
			h := NewLessonPlanHandler(uc)
			r := gin.New()
			r.POST("/v1/lesson-plans", asUser("u-1"), h.Generate)

			if w := doJSON(r, http.MethodPost, "/v1/lesson-plans", briefJSON); w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("missing field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewLessonPlanHandler(mocks.NewMockILessonPlanUseCase(ctrl))
		r := gin.New()
		r.POST("/v1/lesson-plans", asUser("u-1"), h.Generate)

		if w := doJSON(r, http.MethodPost, "/v1/lesson-plans", `{"subject":"Mathematics"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestLessonPlanHandler_HistoryAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockILessonPlanUseCase(ctrl)
	uc.EXPECT().History(gomock.Any(), "u-1").Return([]entities.LessonPlan{{ID: "lp-1"}}, nil)
	uc.EXPECT().Delete(gomock.Any(), "u-1", "lp-1").Return(nil)
	uc.EXPECT().Delete(gomock.Any(), "u-1", "lp-2").Return(usecase.ErrLessonPlanNotFound)
	h := NewLessonPlanHandler(uc)
	r := gin.New()
	r.GET("/v1/lesson-plans", asUser("u-1"), h.History)
	r.DELETE("/v1/lesson-plans/:id", asUser("u-1"), h.Delete)

	if w := doJSON(r, http.MethodGet, "/v1/lesson-plans", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/v1/lesson-plans/lp-1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/v1/lesson-plans/lp-2", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/ping", Ping)

	w := doJSON(r, http.MethodGet, "/v1/ping", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected ping: %d %s", w.Code, w.Body.String())
	}
}
