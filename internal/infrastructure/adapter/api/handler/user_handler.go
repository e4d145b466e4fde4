package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/response"
)

// UserHandler handles the account ledger views of the signed-in user
type UserHandler struct {
	accounts usecase.AccountUseCase
	logger   coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(accounts usecase.AccountUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{accounts: accounts, logger: logger}
}

// GetDashboard handles GET /me/dashboard. A session without a user record is signed out.
//
//	@Summary	Dashboard of the signed-in user
//	@Tags		account
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.DashboardResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/me/dashboard [get]
func (h *UserHandler) GetDashboard(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, h.logger, domainerr.ErrUnauthenticated)
		return
	}

	dashboard, err := h.accounts.GetDashboard(c.Request.Context(), session.UserID)
	if err != nil {
		if errors.Is(err, domainerr.ErrProfileNotFound) {
			h.logger.Warn("Signing out session without a user record", map[string]any{
				"user_id": session.UserID,
			})
			if signOutErr := h.accounts.SignOut(c.Request.Context(), session.Token); signOutErr != nil {
				h.logger.Error("Failed to sign out session", map[string]any{
					"user_id": session.UserID,
					"error":   signOutErr.Error(),
				})
			}
		}
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDashboardResponse(dashboard))
}

// ListReferrals handles GET /me/referrals
//
//	@Summary	Referral earnings grouped by referred user
//	@Tags		account
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.ReferralSummaryResponse
//	@Router		/me/referrals [get]
func (h *UserHandler) ListReferrals(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, h.logger, domainerr.ErrUnauthenticated)
		return
	}

	summaries, err := h.accounts.ListReferralSummaries(c.Request.Context(), session.UserID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReferralSummaries(summaries))
}

// CreditReferral handles POST /admin/referral-earnings
//
//	@Summary	Credit a referrer for a referred user's activity
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.ReferralCreditRequest	true	"Earning"
//	@Success	201		{object}	dto.ReferralEarningResponse
//	@Router		/admin/referral-earnings [post]
func (h *UserHandler) CreditReferral(c *gin.Context) {
	var req dto.ReferralCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	earning, err := h.accounts.CreditReferralEarning(c.Request.Context(), usecase.ReferralCreditInput{
		ReferrerID:       req.ReferrerID,
		ReferredUsername: req.ReferredUsername,
		Amount:           req.Amount,
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewReferralEarningResponse(earning))
}
