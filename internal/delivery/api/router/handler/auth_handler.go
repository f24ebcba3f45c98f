package handler

import (
	"context"
	"net/http"

	"canteen/internal/delivery/api/middleware"
	"canteen/internal/delivery/api/response"
	"canteen/internal/domain/service"
	"canteen/internal/usecase"
	"canteen/internal/usecase/guard"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type signUpRequest struct {
	Name     string `json:"name" validate:"required,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type passwordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type actionRequest struct {
	Mode        string `json:"mode" query:"mode" validate:"required"`
	Code        string `json:"oobCode" query:"oobCode" validate:"required"`
	NewPassword string `json:"newPassword" query:"-"`
}

type authResponse struct {
	IDToken       string `json:"id_token"`
	RefreshToken  string `json:"refresh_token,omitempty"`
	ExpiresIn     int64  `json:"expires_in"`
	UID           string `json:"uid"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Admin         bool   `json:"admin"`
	Landing       string `json:"landing"`
}

type statusResponse struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Admin         bool   `json:"admin"`
	Landing       string `json:"landing"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// AuthHandler serves sign-up, sign-in and the email flows.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// SignUp creates an account and signs it in.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.uc.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAuthResponse(out))
}

// Login signs a customer or an admin in.
func (h *AuthHandler) Login(c echo.Context) error {
	return h.signIn(c, h.uc.SignIn)
}

// AdminLogin signs in and requires the privileged flag.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	return h.signIn(c, h.uc.AdminSignIn)
}

func (h *AuthHandler) signIn(c echo.Context, signIn func(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error)) error {
	var req signInRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := signIn(c.Request().Context(), &usecase.SignInInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(out))
}

// PasswordReset mails a password reset link.
func (h *AuthHandler) PasswordReset(c echo.Context) error {
	var req passwordResetRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.uc.SendPasswordReset(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, messageResponse{Message: "Password reset email sent. Check your inbox."})
}

// SendVerification mails a new verification link to the caller.
func (h *AuthHandler) SendVerification(c echo.Context) error {
	s := middleware.Session(c)
	if err := h.uc.SendVerificationEmail(c.Request().Context(), s.UID()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, messageResponse{Message: "Verification email sent. Check your inbox."})
}

// ApplyAction completes an emailed link. Verification links arrive as GET; password resets
// post the new password.
func (h *AuthHandler) ApplyAction(c echo.Context) error {
	var req actionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	err := h.uc.ApplyAction(c.Request().Context(), &usecase.ApplyActionInput{
		Mode:        service.ActionMode(req.Mode),
		Code:        req.Code,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Your email address has been verified."
	if service.ActionMode(req.Mode) == service.ActionResetPassword {
		message = "Your password has been changed."
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: message})
}

// Status re-reads the caller's identity so a completed verification is observed.
func (h *AuthHandler) Status(c echo.Context) error {
	s := middleware.Session(c)
	status, err := h.uc.Status(c.Request().Context(), s.UID())
	if err != nil {
		return errors.WithStack(err)
	}

	resp := statusResponse{Landing: status.Landing}
	if status.Identity != nil {
		resp.UID = status.Identity.UID
		resp.Email = status.Identity.Email
		resp.EmailVerified = status.Identity.EmailVerified
	}
	if status.Profile != nil {
		resp.Name = status.Profile.Name
		resp.Admin = status.Profile.AdminCheck
	}

	return response.Success(c, http.StatusOK, resp)
}

// Landing names the screen the caller should open. Anonymous callers get the home route.
func (h *AuthHandler) Landing(c echo.Context) error {
	identity, profile := middleware.Caller(c)

	return response.Success(c, http.StatusOK, map[string]string{"landing": guard.Landing(identity, profile)})
}

// Logout revokes the caller's tokens and ends the session.
func (h *AuthHandler) Logout(c echo.Context) error {
	s := middleware.Session(c)
	if err := h.uc.SignOut(c.Request().Context(), s.UID()); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

func toAuthResponse(out *usecase.AuthOutput) authResponse {
	resp := authResponse{Landing: out.Landing}
	if out.Tokens != nil {
		resp.IDToken = out.Tokens.IDToken
		resp.RefreshToken = out.Tokens.RefreshToken
		resp.ExpiresIn = out.Tokens.ExpiresIn
	}
	if out.Identity != nil {
		resp.UID = out.Identity.UID
		resp.Email = out.Identity.Email
		resp.EmailVerified = out.Identity.EmailVerified
	}
	if out.Profile != nil {
		resp.Name = out.Profile.Name
		resp.Admin = out.Profile.AdminCheck
	}

	return resp
}
