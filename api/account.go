package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/service/account"
	"github.com/gin-gonic/gin"
)

// AccountHandler serves registration and login. ProfileHandler serves the
// authenticated /me resource from the same service.
type AccountHandler struct {
	service account.AccountUseCase
}

type ProfileHandler struct {
	service account.AccountUseCase
}

type registerRequest struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	PhoneNumber *string `json:"phone_number"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt string      `json:"expires_at"`
	User      domain.User `json:"user"`
}

type profileRequest struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
}

func NewAccountHandler(service account.AccountUseCase) *AccountHandler {
	return &AccountHandler{service: service}
}

func (h *AccountHandler) Register(router *gin.RouterGroup) {
	router.POST("/register", h.register)
	router.POST("/login", h.login)
}

func (h *AccountHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.service.Register(c.Request.Context(), account.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *AccountHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, loginResponse{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt.Format(time.RFC3339),
		User:      *user,
	})
}

func NewProfileHandler(service account.AccountUseCase) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.get)
	router.PUT("", h.update)
}

func (h *ProfileHandler) get(c *gin.Context) {
	user, err := h.service.Profile(c.Request.Context(), callerFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *ProfileHandler) update(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), callerFrom(c), account.ProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
