package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/minisocial/backend/internal/models"
)

var (
	errAlreadyLiked = errors.New("already liked")
	errNotLiked     = errors.New("not liked")
)

type PostHandler struct {
	db *gorm.DB
}

func NewPostHandler(db *gorm.DB) *PostHandler {
	return &PostHandler{db: db}
}

// CreatePost creates a new post owned by the authenticated user.
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input models.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	post := models.Post{
		Title:       input.Title,
		Description: input.Description,
		CreatedBy:   userID,
	}

	if err := h.db.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding new post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          post.ID,
		"title":       post.Title,
		"description": post.Description,
		"created_at":  post.CreatedAt,
	})
}

// DeletePost deletes a post the authenticated user owns. The delete is
// scoped by owner in a single statement, so a missing post and someone
// else's post are indistinguishable 404s.
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	res := h.db.Where("id = ? AND created_by = ?", postID, userID).Delete(&models.Post{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting post"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// GetPost returns a post with its like and comment counts.
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	var post models.Post
	if err := h.db.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var numLikes, numComments int64
	h.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&numLikes)
	h.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&numComments)

	c.JSON(http.StatusOK, gin.H{
		"id":           post.ID,
		"title":        post.Title,
		"description":  post.Description,
		"created_by":   post.CreatedBy,
		"created_at":   post.CreatedAt,
		"num_likes":    numLikes,
		"num_comments": numComments,
	})
}

// GetMyPosts returns the authenticated user's posts, newest first.
func (h *PostHandler) GetMyPosts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var posts []models.Post
	if err := h.db.Where("created_by = ?", userID).Order("created_at desc").Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	// Empty array, never null.
	if posts == nil {
		posts = []models.Post{}
	}

	c.JSON(http.StatusOK, posts)
}

// LikePost records a like. Existence and duplicate checks run in the same
// transaction as the insert so concurrent likes cannot double up.
func (h *PostHandler) LikePost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	like := models.Like{PostID: postID, UserID: userID}
	err = h.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			return err
		}
		var existing models.Like
		if err := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			First(&existing).Error; err == nil {
			return errAlreadyLiked
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&like).Error
	})
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, like)
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	case errors.Is(err, errAlreadyLiked):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post already liked"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like post"})
	}
}

// UnlikePost removes the authenticated user's like from a post.
func (h *PostHandler) UnlikePost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			return err
		}
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errNotLiked
		}
		return nil
	})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Post unliked successfully"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	case errors.Is(err, errNotLiked):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post not liked yet"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike post"})
	}
}

// CreateComment adds a comment to an existing post.
func (h *PostHandler) CreateComment(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment is required"})
		return
	}

	comment := models.Comment{PostID: postID, UserID: userID, Body: input.Comment}
	err = h.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			return err
		}
		return tx.Create(&comment).Error
	})
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"id": comment.ID})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
	}
}

// GetComments returns a post's comments, newest first.
func (h *PostHandler) GetComments(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	var post models.Post
	if err := h.db.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var comments []models.Comment
	if err := h.db.Where("post_id = ?", postID).Order("created_at desc").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	c.JSON(http.StatusOK, comments)
}
