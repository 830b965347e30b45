package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njrexim/cms-api/internal/api/metrics"
	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, toSessionResponse(session))
}

// Setup creates the first super-admin. It only works while no user exists.
//
// @Summary      Bootstrap the first super admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      setupRequest  true  "Super admin details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/auth/setup [post]
func (h *AuthHandler) Setup(c echo.Context) error {
	var req setupRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	session, err := h.authService.Setup(c.Request().Context(), ports.SetupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toSessionResponse(session))
}

// Profile returns the caller's account.
//
// @Summary      Get own profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	me, err := ctxUser(c)
	if err != nil {
		return err
	}
	user, err := h.authService.Profile(c.Request().Context(), me.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateProfile edits the caller's name, email or password and returns a
// fresh token.
//
// @Summary      Update own profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Fields to change"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/auth/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	me, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req profileRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	session, err := h.authService.UpdateProfile(c.Request().Context(), me.ID, ports.ProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(session))
}

// ForgotPassword emails a single-use reset link.
//
// @Summary      Request a password reset email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Account email"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/forgotpassword [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	if err := h.authService.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrMailDelivery) {
			metrics.RecoveryFlowsTotal.WithLabelValues("reset", "delivery_failed").Inc()
		}
		return err
	}

	metrics.RecoveryFlowsTotal.WithLabelValues("reset", "issued").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Email sent"})
}

// ResetPassword consumes a reset token and sets a new password.
//
// @Summary      Reset password with an emailed token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token  path      string                true  "Reset token from the email link"
// @Param        body   body      resetPasswordRequest  true  "New password"
// @Success      201    {object}  sessionResponse
// @Failure      400    {object}  map[string]string
// @Router       /api/auth/resetpassword/{token} [put]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	session, err := h.authService.ResetPassword(c.Request().Context(), c.Param("token"), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOrExpiredToken) {
			metrics.RecoveryFlowsTotal.WithLabelValues("reset", "rejected").Inc()
		}
		return err
	}

	metrics.RecoveryFlowsTotal.WithLabelValues("reset", "consumed").Inc()
	return c.JSON(http.StatusCreated, toSessionResponse(session))
}

// Invite creates a placeholder account and emails an invitation link.
//
// @Summary      Invite an administrator
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      inviteRequest  true  "Invitee"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/invite [post]
func (h *AuthHandler) Invite(c echo.Context) error {
	me, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req inviteRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return domain.NewValidationError("role", "role must be one of: admin super-admin")
	}

	user, err := h.authService.Invite(c.Request().Context(), ports.InviteInput{
		Email:     req.Email,
		Role:      role,
		InvitedBy: me,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMailDelivery) {
			metrics.RecoveryFlowsTotal.WithLabelValues("invite", "delivery_failed").Inc()
		}
		return err
	}

	metrics.RecoveryFlowsTotal.WithLabelValues("invite", "issued").Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// AcceptInvite activates an invited account.
//
// @Summary      Accept an invitation
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      acceptInviteRequest  true  "Token and new credentials"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/accept-invite [post]
func (h *AuthHandler) AcceptInvite(c echo.Context) error {
	var req acceptInviteRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	if _, err := h.authService.AcceptInvite(c.Request().Context(), ports.AcceptInviteInput{
		Token:    req.Token,
		Name:     req.Name,
		Password: req.Password,
	}); err != nil {
		if errors.Is(err, domain.ErrInvalidOrExpiredToken) {
			metrics.RecoveryFlowsTotal.WithLabelValues("invite", "rejected").Inc()
		}
		return err
	}

	metrics.RecoveryFlowsTotal.WithLabelValues("invite", "consumed").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Invitation accepted, you can now log in"})
}
