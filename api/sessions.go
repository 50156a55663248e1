package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/auth"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/service/session"
)

type SessionHandler struct {
	auth     auth.Authenticator
	sessions *session.Registry
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token       string `json:"token"`
	OwnerID     string `json:"owner_id"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
}

func NewSessionHandler(authenticator auth.Authenticator, sessions *session.Registry) *SessionHandler {
	return &SessionHandler{auth: authenticator, sessions: sessions}
}

func (h *SessionHandler) Register(router *gin.RouterGroup, authed gin.HandlerFunc) {
	router.POST("/", h.login)
	router.DELETE("/", authed, h.logout)
}

func (h *SessionHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity, err := h.auth.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s, err := h.sessions.Create(c.Request.Context(), identity.OwnerID, identity.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, loginResponse{
		Token:       s.Token,
		OwnerID:     identity.OwnerID,
		Role:        identity.Role,
		DisplayName: identity.DisplayName,
	})
}

func (h *SessionHandler) logout(c *gin.Context) {
	if !h.sessions.Destroy(c.Request.Context(), c.GetString(ContextOwnerID)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active session"})
		return
	}
	c.Status(http.StatusNoContent)
}
