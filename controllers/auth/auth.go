package authControllers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NoobOtaku-terminal/vibe-commerce-cart/auth"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/controllers/respond"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/middleware"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/models"
)

// Email shape is checked after normalization, not via a binding tag, so a
// padded or oddly-cased address is trimmed and lowercased before validation.
type RegisterInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// dummyPasswordHash is a valid bcrypt hash compared against when the email
// lookup misses, so the miss path costs as much as a wrong password and
// account existence is not observable through response timing.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// POST /api/auth/register
func Register(db *gorm.DB, tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.Fail(c, http.StatusBadRequest, respond.KindValidation, "Invalid input: "+err.Error())
			return
		}

		email := normalizeEmail(input.Email)
		if !emailShape.MatchString(email) {
			respond.Fail(c, http.StatusBadRequest, respond.KindValidation, "A valid email address is required")
			return
		}

		var existing models.User
		err := db.Where("email = ?", email).First(&existing).Error
		if err == nil {
			respond.Fail(c, http.StatusBadRequest, respond.KindConflict, "Email is already registered")
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to check email")
			return
		}

		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to hash password")
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Email:        email,
			PasswordHash: hash,
			Name:         input.Name,
			Role:         models.RoleUser,
		}
		if err := db.Create(&user).Error; err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to create user")
			return
		}

		token, err := tokens.Issue(user)
		if err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to issue token")
			return
		}

		respond.OK(c, http.StatusCreated, gin.H{"token": token, "user": user.Summary()})
	}
}

// POST /api/auth/login
func Login(db *gorm.DB, tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.Fail(c, http.StatusBadRequest, respond.KindValidation, "Email and password are required")
			return
		}

		// Unknown email and wrong password answer identically, and both
		// paths pay for a bcrypt comparison, so a caller cannot tell which
		// addresses have accounts from the body or the timing.
		var user models.User
		err := db.Where("email = ?", normalizeEmail(input.Email)).First(&user).Error
		hash := user.PasswordHash
		if err != nil {
			hash = dummyPasswordHash
		}
		if !auth.CheckPassword(hash, input.Password) || err != nil {
			respond.Fail(c, http.StatusUnauthorized, respond.KindUnauthenticated, "Invalid email or password")
			return
		}

		token, err := tokens.Issue(user)
		if err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to issue token")
			return
		}

		respond.OK(c, http.StatusOK, gin.H{"token": token, "user": user.Summary()})
	}
}

// GET /api/auth/me
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			respond.Fail(c, http.StatusNotFound, respond.KindNotFound, "User not found")
			return
		}

		respond.OK(c, http.StatusOK, user.Summary())
	}
}
