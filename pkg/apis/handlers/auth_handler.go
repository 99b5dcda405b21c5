package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sukryu/pAdmin/pkg/controllers"
	"github.com/sukryu/pAdmin/pkg/errors"
)

type AuthHandler struct {
	controller controllers.AuthController
}

func NewAuthHandler(controller controllers.AuthController) *AuthHandler {
	return &AuthHandler{
		controller: controller,
	}
}

type loginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(errors.ErrInvalidInput.WithReason(err.Error()))
		return
	}

	session, err := h.controller.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, session)
}
