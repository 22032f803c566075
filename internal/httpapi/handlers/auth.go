package handlers

import (
	"net/http"

	"github.com/axiomai/axiom-server/internal/auth"
	"github.com/axiomai/axiom-server/internal/common"
	"github.com/axiomai/axiom-server/internal/httpapi/middleware"
	"github.com/axiomai/axiom-server/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func userPayload(u *models.User) gin.H {
	return gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	}
}

// sendTokenResponse issues the session token, sets the cookie and writes the
// user payload.
func (h *Handler) sendTokenResponse(c *gin.Context, u *models.User, status int, message string) {
	token, err := auth.SignJWT(u.ID, u.Email, u.Role, h.Cfg.JWTSecret, h.Cfg.TokenTTL())
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, "Could not generate token")
		return
	}

	middleware.SetSessionCookie(c, token, int(h.Cfg.TokenTTL().Seconds()), h.Cfg.IsProduction())
	common.OK(c, status, message, gin.H{"user": userPayload(u)})
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerReq
	_ = c.ShouldBindJSON(&req)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		common.Fail(c, http.StatusBadRequest, "Please provide name, email and password")
		return
	}

	var count int64
	if err := h.DB.WithContext(c.Request.Context()).
		Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		common.Fail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if count > 0 {
		common.Fail(c, http.StatusBadRequest, "User with this email already exists")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, "Failed to process password")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		IsActive:     true,
	}
	if err := h.DB.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		// unique index race on email
		common.Fail(c, http.StatusBadRequest, "User with this email already exists")
		return
	}

	h.sendTokenResponse(c, &user, http.StatusCreated, "Registration successful")
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	_ = c.ShouldBindJSON(&req)

	if req.Email == "" || req.Password == "" {
		common.Fail(c, http.StatusBadRequest, "Please provide email and password")
		return
	}

	var user models.User
	if err := h.DB.WithContext(c.Request.Context()).
		Where("email = ?", req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			common.Fail(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		common.Fail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if !user.IsActive {
		common.Fail(c, http.StatusUnauthorized, "Account is deactivated. Please contact support.")
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		common.Fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	h.sendTokenResponse(c, &user, http.StatusOK, "Login successful")
}

func (h *Handler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c, h.Cfg.IsProduction())
	common.OK(c, http.StatusOK, "Logged out successfully", nil)
}

// Session is the silent probe: absence of a valid session is a neutral
// {success:false}, never an error status.
func (h *Handler) Session(c *gin.Context) {
	negative := func() {
		c.JSON(http.StatusOK, gin.H{"success": false})
	}

	token := middleware.ExtractToken(c)
	if token == "" {
		negative()
		return
	}

	claims, err := auth.ParseJWT(token, h.Cfg.JWTSecret)
	if err != nil {
		negative()
		return
	}

	var user models.User
	if err := h.DB.WithContext(c.Request.Context()).First(&user, claims.UserID).Error; err != nil || !user.IsActive {
		negative()
		return
	}

	common.OK(c, http.StatusOK, "", gin.H{"user": userPayload(&user)})
}

// Me returns the authenticated user's profile. If the account vanished
// mid-session the cookie is cleared and 404 returned.
func (h *Handler) Me(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		common.Fail(c, http.StatusUnauthorized, "Please login first")
		return
	}

	var user models.User
	if err := h.DB.WithContext(c.Request.Context()).First(&user, current.ID).Error; err != nil {
		middleware.ClearSessionCookie(c, h.Cfg.IsProduction())
		common.Fail(c, http.StatusNotFound, "User not found")
		return
	}

	payload := userPayload(&user)
	payload["createdAt"] = user.CreatedAt
	common.OK(c, http.StatusOK, "", gin.H{"user": payload})
}
