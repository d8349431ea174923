package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prithvi-path/api-go/config"
	"github.com/prithvi-path/api-go/models"
	"github.com/prithvi-path/api-go/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB           *gorm.DB // nil when running without a database
	GoogleConfig *config.GoogleConfig
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:           db,
		GoogleConfig: config.NewGoogleConfig(),
	}
}

func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}
	if ac.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Registration is unavailable right now", "success": false})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password", "success": false})
		return
	}
	hashedPasswordStr := string(hashedPassword)

	user := models.User{
		ID:         fmt.Sprintf("user-%s", uuid.New().String()),
		Name:       input.Name,
		Email:      input.Email,
		Password:   &hashedPasswordStr,
		UserType:   "user",
		AuthMethod: "email",
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered", "success": false})
		return
	}

	ac.respondWithTokens(c, http.StatusCreated, &user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}
	if ac.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Sign-in is unavailable right now", "success": false})
		return
	}

	var user models.User
	if err := ac.DB.First(&user, "email = ?", input.Email).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password", "success": false})
		return
	}
	if user.Password == nil ||
		bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password", "success": false})
		return
	}

	ac.respondWithTokens(c, http.StatusOK, &user)
}

// GuestSignIn issues a session-scoped guest identity. Guests work even
// without a database; their ledger lives in memory like everyone else's.
func (ac *AuthController) GuestSignIn(c *gin.Context) {
	sessionID := uuid.New().String()
	user := models.User{
		ID:         fmt.Sprintf("guest-%s", sessionID),
		Name:       "Guest Explorer",
		Email:      fmt.Sprintf("guest-%s@prithvipath.local", sessionID),
		UserType:   "guest",
		AuthMethod: "guest",
		SessionID:  sessionID,
	}
	if ac.DB != nil {
		ac.DB.Create(&user)
	}

	ac.respondWithTokens(c, http.StatusOK, &user)
}

func (ac *AuthController) GoogleSignIn(c *gin.Context) {
	var input struct {
		IDToken string `json:"idToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}
	if ac.GoogleConfig == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google sign-in is not configured", "success": false})
		return
	}
	if ac.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Sign-in is unavailable right now", "success": false})
		return
	}

	info, err := ac.GoogleConfig.VerifyIDToken(input.IDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google token", "success": false})
		return
	}

	var user models.User
	err = ac.DB.First(&user, "google_id = ?", info.ID).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{
			ID:         fmt.Sprintf("user-%s", uuid.New().String()),
			Name:       info.Name,
			Email:      info.Email,
			Avatar:     info.Picture,
			UserType:   "user",
			AuthMethod: "google",
			GoogleID:   &info.ID,
		}
		if err := ac.DB.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create account", "success": false})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign-in failed", "success": false})
		return
	}

	ac.respondWithTokens(c, http.StatusOK, &user)
}

func (ac *AuthController) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}
	if ac.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Sign-in is unavailable right now", "success": false})
		return
	}

	var stored models.RefreshToken
	if err := ac.DB.First(&stored, "token = ?", input.RefreshToken).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token", "success": false})
		return
	}
	if time.Now().After(stored.ExpirationDate) {
		ac.DB.Delete(&stored)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token expired", "success": false})
		return
	}

	var user models.User
	if err := ac.DB.First(&user, "id = ?", stored.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token", "success": false})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.UserType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not issue token", "success": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	if ac.DB != nil {
		var user models.User
		if err := ac.DB.Preload("Badges").First(&user, "id = ?", claims.UserID).Error; err == nil {
			c.JSON(http.StatusOK, StandardResponse{Success: true, Data: user})
			return
		}
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: gin.H{
		"id":       claims.UserID,
		"userType": claims.UserType,
	}})
}

func (ac *AuthController) respondWithTokens(c *gin.Context, status int, user *models.User) {
	token, err := utils.GenerateToken(user.ID, user.UserType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not issue token", "success": false})
		return
	}

	refresh := uuid.New().String()
	if ac.DB != nil {
		ac.DB.Create(&models.RefreshToken{
			UserID:         user.ID,
			Token:          refresh,
			ExpirationDate: time.Now().Add(30 * 24 * time.Hour),
		})
	}

	c.JSON(status, gin.H{
		"success":      true,
		"token":        token,
		"refreshToken": refresh,
		"user": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"userType": user.UserType,
			"avatar":   user.Avatar,
		},
	})
}
