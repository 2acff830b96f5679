package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fooding/internal/models/request_models"
	"fooding/internal/services"
	"fooding/pkg/middleware"
	"fooding/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
	secureCookie   bool
}

func NewAccountController(accountService services.AccountServiceInterface, secureCookie bool) *AccountController {
	return &AccountController{
		accountService: accountService,
		secureCookie:   secureCookie,
	}
}

func (a *AccountController) setSession(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", a.secureCookie, true)
}

// Register godoc
// @Summary Register a new account
// @Description Create a new user account and its empty pantry
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithCode(c, http.StatusCreated, account, "User registered successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user, set the session cookie and return the token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	a.setSession(c, session.Token, maxAgeUntil(session.ExpiresAt))
	utils.RespondSuccess(c, session, "Logged in successfully")
}

// OAuthCallback godoc
// @Summary Login with Google
// @Description Exchange an authorization code, creating the account on first login
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.OAuthCallbackRequest true "Authorization code"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /oauth2callback [post]
func (a *AccountController) OAuthCallback(c *gin.Context) {
	var req request_models.OAuthCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Authorization code is required")
		return
	}

	session, err := a.accountService.OAuthLogin(c.Request.Context(), req.Code)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	a.setSession(c, session.Token, maxAgeUntil(session.ExpiresAt))
	utils.RespondSuccess(c, session, "Logged in successfully")
}

// Logout godoc
// @Summary Logout
// @Description Revoke the current session and clear the cookie
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	if id, ok := middleware.IdentityFrom(c); ok {
		a.accountService.Logout(id.TokenID, id.ExpiresAt)
	}
	a.setSession(c, "", -1)
	utils.RespondSuccess(c, nil, "Logged out successfully")
}

// CurrentUser godoc
// @Summary Current user
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /current_user [get]
func (a *AccountController) CurrentUser(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	account, err := a.accountService.CurrentUser(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "")
}

func (a *AccountController) Onboarding(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	var req request_models.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.Onboard(c.Request.Context(), email, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Profile updated")
}
