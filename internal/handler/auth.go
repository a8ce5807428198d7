package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desesbraker/Buchonapp/internal/apierror"
	"github.com/Desesbraker/Buchonapp/internal/dto"
	"github.com/Desesbraker/Buchonapp/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
