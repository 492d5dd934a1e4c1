package handlers

import (
	"net/http"

	"github.com/YSWikcramatantri/Official-Website/internal/middleware"
	"github.com/YSWikcramatantri/Official-Website/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Login godoc
// @Summary      Admin login
// @Description  Returns a bearer token and sets a session cookie
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Admin password"
// @Success      200 {object} LoginResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, sessionID, err := h.auth.Login(c.Request.Context(), req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	if sessionID != "" {
		maxAge := int(h.auth.SessionTTL().Seconds())
		c.SetCookie(middleware.SessionCookie, sessionID, maxAge, "/", "", false, true)
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// Logout godoc
// @Summary      Admin logout
// @Description  Destroys the session cookie, if one is set
// @Tags         admin
// @Produce      json
// @Success      200 {object} MessageResponse
// @Router       /api/admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(middleware.SessionCookie); err == nil {
		h.auth.DestroySession(c.Request.Context(), sessionID)
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "logged out"})
}
