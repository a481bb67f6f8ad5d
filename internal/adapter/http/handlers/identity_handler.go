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

// IdentityHandler serves sign up, login and the caller's own profile.
type IdentityHandler struct {
	usecase usecase.IIdentityUseCase
}

func NewIdentityHandler(uc usecase.IIdentityUseCase) *IdentityHandler {
	return &IdentityHandler{usecase: uc}
}

// SignUp godoc
// @Summary      Create a teacher account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.SignUpRequest  true  "Account"
// @Success      201   {object}  response.AuthResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /auth/signup [post]
func (h *IdentityHandler) SignUp(c *gin.Context) {
	var req request.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[identity][handler] signup invalid payload err=%v", err)
		writeError(c, invalidRequest())
		return
	}

	res, err := h.usecase.SignUp(c.Request.Context(), req.ToInput())
	if err != nil {
		log.Printf("[identity][handler] signup failed err=%v", err)
		writeError(c, mapIdentityError(err))
		return
	}
	log.Printf("[identity][handler] signup success user_id=%s", res.Identity.ID)

	c.JSON(http.StatusCreated, response.FromAuthResult(res))
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.LoginRequest  true  "Credentials"
// @Success      200   {object}  response.AuthResponse
// @Failure      401   {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *IdentityHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidRequest())
		return
	}

	res, err := h.usecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		log.Printf("[identity][handler] login failed err=%v", err)
		writeError(c, mapIdentityError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromAuthResult(res))
}

// Me godoc
// @Summary      Current user's profile
// @Tags         me
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.ProfileResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /me [get]
func (h *IdentityHandler) Me(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	profile, err := h.usecase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[identity][handler] get profile failed user_id=%s err=%v", userID, err)
		writeError(c, mapIdentityError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromProfile(profile))
}

// UpdateMe godoc
// @Summary      Update the current user's profile
// @Tags         me
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.UpdateProfileRequest  true  "Changes"
// @Success      200   {object}  response.IdentityResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /me [patch]
func (h *IdentityHandler) UpdateMe(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidRequest())
		return
	}

	updated, err := h.usecase.UpdateProfile(c.Request.Context(), userID, req.ToUpdate())
	if err != nil {
		log.Printf("[identity][handler] update profile failed user_id=%s err=%v", userID, err)
		writeError(c, mapIdentityError(err))
		return
	}
	log.Printf("[identity][handler] update profile success user_id=%s", updated.ID)

	c.JSON(http.StatusOK, response.FromIdentity(updated))
}

// ListUsers godoc
// @Summary      List every account
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   response.IdentityResponse
// @Failure      403  {object}  pkg.HTTPError
// @Router       /admin/users [get]
func (h *IdentityHandler) ListUsers(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapIdentityError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromIdentities(list))
}

func mapIdentityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail), errors.Is(err, usecase.ErrInvalidName), errors.Is(err, usecase.ErrInvalidPassword):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "Email already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrReservedEmail):
		return pkg.NewDomainErrorSimple("RESERVED_EMAIL", "This email is reserved", http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
