package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kimdohyun-dev/actionlog/errors"
	authdto "github.com/kimdohyun-dev/actionlog/internal/adapter/dto/auth"
	"github.com/kimdohyun-dev/actionlog/internal/usecase/auth"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService *auth.Service
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService *auth.Service, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Signup registers a new account
// @Summary      Sign up
// @Description  Registers a new user; login id and email must be unused
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      authdto.SignupRequest  true  "Signup payload"
// @Success      201      {object}  authdto.SignupResponse
// @Failure      400      {object}  map[string]interface{}  "Duplicate login id or email"
// @Router       /api/auth/signup [post]
func (h *Auth) Signup(c echo.Context) error {
	var req authdto.SignupRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	if _, err := h.authService.Signup(c.Request().Context(), auth.SignupInput{
		LoginID:  req.LoginID,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
	}); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusCreated, authdto.SignupResponse{
		Message: "signup successful",
	})
}

// Login authenticates a user and issues a token
// @Summary      Log in
// @Description  Verifies credentials and returns a bearer token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      authdto.LoginRequest  true  "Login payload"
// @Success      200      {object}  authdto.TokenResponse
// @Failure      401      {object}  map[string]interface{}  "Invalid credentials"
// @Router       /api/auth/login [post]
func (h *Auth) Login(c echo.Context) error {
	var req authdto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	result, err := h.authService.Login(c.Request().Context(), req.LoginID, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, authdto.TokenResponse{
		AccessToken: result.AccessToken,
		LoginID:     result.LoginID,
		Name:        result.Name,
	})
}
