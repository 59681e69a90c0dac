package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/minisocial/backend/internal/models"
)

var errAlreadyFollowing = errors.New("already following")

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// Follow makes the authenticated user follow the user in the path.
func (h *UserHandler) Follow(c *gin.Context) {
	followedID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	followerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if followedID == followerID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot follow yourself"})
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		var target models.User
		if err := tx.First(&target, followedID).Error; err != nil {
			return err
		}
		var existing models.Follow
		if err := tx.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
			First(&existing).Error; err == nil {
			return errAlreadyFollowing
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&models.Follow{FollowerID: followerID, FollowedID: followedID}).Error
	})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "User followed successfully"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, errAlreadyFollowing):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already following this user"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error following user"})
	}
}

// Unfollow removes the follow edge if present. Unfollowing someone you do
// not follow is a no-op success.
func (h *UserHandler) Unfollow(c *gin.Context) {
	followedID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	followerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error unfollowing user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User unfollowed successfully"})
}

// Followers returns the users following the authenticated user.
func (h *UserHandler) Followers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var follows []models.Follow
	if err := h.db.Where("followed_id = ?", userID).Preload("Follower").Find(&follows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch followers"})
		return
	}

	followers := []gin.H{}
	for _, follow := range follows {
		followers = append(followers, gin.H{
			"id":       follow.Follower.ID,
			"username": follow.Follower.Username,
		})
	}

	c.JSON(http.StatusOK, followers)
}

// Following returns the users the authenticated user follows.
func (h *UserHandler) Following(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var follows []models.Follow
	if err := h.db.Where("follower_id = ?", userID).Preload("Followed").Find(&follows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch following"})
		return
	}

	following := []gin.H{}
	for _, follow := range follows {
		following = append(following, gin.H{
			"id":       follow.Followed.ID,
			"username": follow.Followed.Username,
		})
	}

	c.JSON(http.StatusOK, following)
}
