package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/response"
)

// AuthHandler handles signup, sign in, onboarding and sign out
type AuthHandler struct {
	accounts usecase.AccountUseCase
	logger   coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(accounts usecase.AccountUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, logger: logger}
}

// SignUp handles POST /auth/signup
//
//	@Summary	Create an account with email and password
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.SignUpRequest	true	"Signup form"
//	@Success	201		{object}	dto.AuthResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.accounts.SignUp(c.Request.Context(), usecase.SignUpInput{
		Email:        req.Email,
		Password:     req.Password,
		FullName:     req.FullName,
		Username:     req.Username,
		Country:      req.Country,
		ReferralCode: req.ReferralCode,
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAuthResponse(result))
}

// Login handles POST /auth/login
//
//	@Summary	Sign in with email and password
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.LoginRequest	true	"Credentials"
//	@Success	200		{object}	dto.AuthResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Router		/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.accounts.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAuthResponse(result))
}

// Federated handles POST /auth/federated. A first-time user is sent to onboarding.
//
//	@Summary	Sign in with a federated identity assertion
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.FederatedLoginRequest	true	"Assertion"
//	@Success	200		{object}	dto.AuthResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Router		/auth/federated [post]
func (h *AuthHandler) Federated(c *gin.Context) {
	var req dto.FederatedLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.accounts.SignInFederated(c.Request.Context(), req.Assertion)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAuthResponse(result))
}

// Onboarding handles POST /onboarding
//
//	@Summary	Complete the profile after the first federated sign in
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.OnboardingRequest	true	"Onboarding form"
//	@Success	201		{object}	dto.AuthResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/onboarding [post]
func (h *AuthHandler) Onboarding(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, h.logger, errs.ErrUnauthenticated)
		return
	}

	var req dto.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.accounts.CompleteOnboarding(c.Request.Context(), session, usecase.OnboardingInput{
		Username:     req.Username,
		Country:      req.Country,
		ReferralCode: req.ReferralCode,
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAuthResponse(result))
}

// Logout handles POST /auth/logout
//
//	@Summary	Revoke the current session
//	@Tags		auth
//	@Security	BearerAuth
//	@Success	204
//	@Router		/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.BearerToken(c); token != "" {
		if err := h.accounts.SignOut(c.Request.Context(), token); err != nil {
			response.Error(c, h.logger, err)
			return
		}
	}
	c.Status(http.StatusNoContent)
}
