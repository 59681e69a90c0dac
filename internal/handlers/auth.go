package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/minisocial/backend/internal/auth"
	"github.com/minisocial/backend/internal/models"
)

var errEmailTaken = errors.New("email already registered")

type AuthHandler struct {
	db     *gorm.DB
	tokens *auth.TokenService
	hasher *auth.PasswordHasher
}

func NewAuthHandler(db *gorm.DB, tokens *auth.TokenService, hasher *auth.PasswordHasher) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens, hasher: hasher}
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "one or more fields are missing or invalid"})
		return
	}

	hashedPassword, err := h.hasher.Hash(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	// Check and insert in one transaction so a concurrent register with the
	// same email cannot slip between the two; the unique index on email is
	// the schema-level backstop.
	err = h.db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			return errEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&user).Error
	})
	if errors.Is(err, errEmailTaken) {
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	// Never echo the hash back.
	c.JSON(http.StatusCreated, gin.H{
		"username": user.Username,
		"email":    user.Email,
	})
}

// Login handles user authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "one or more fields are missing"})
		return
	}

	// Unknown email and wrong password return the same message so neither
	// case leaks which one happened.
	var user models.User
	if err := h.db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "email or password is not valid"})
		return
	}

	if !h.hasher.Check(input.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "email or password is not valid"})
		return
	}

	accessToken, err := h.tokens.Issue(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}

// Me returns the identity the middleware decoded from the bearer token.
// No store lookup: the claims are the identity.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       userID,
		"username": c.GetString("username"),
		"email":    c.GetString("email"),
	})
}
