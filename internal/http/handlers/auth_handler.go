// Admin login handler.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jrautos/go-dealer-backend/internal/services"
)

// LoginRequest is the JSON payload for the admin login endpoint.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token issued on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login godoc
// @ID          adminLogin
// @Summary     Admin login
// @Description Exchanges the admin password for a bearer token used on /admin endpoints. There is no server-side session; logging out is discarding the token.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.LoginRequest  true  "Login payload"
// @Success     200  {object}  handlers.LoginResponse
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse "Invalid password"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /admin/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "password is required")
		return
	}

	token, err := h.authSvc.Login(req.Password)
	switch {
	case err == nil:
		ok(c, http.StatusOK, LoginResponse{Token: token})
	case errors.Is(err, services.ErrInvalidPassword),
		errors.Is(err, services.ErrAuthDisabled):
		// Disabled auth is reported as a plain rejection; it carries no
		// information a caller should act on.
		fail(c, http.StatusUnauthorized, ErrCodeInvalidPassword, "invalid password")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}
