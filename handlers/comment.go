package handlers

import (
	"github.com/gin-gonic/gin"

	"mocksocial/middleware"
	"mocksocial/services"
	"mocksocial/utils"
)

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
	Owner   string `json:"owner" binding:"omitempty,uuid"`
}

type UpdateCommentRequest struct {
	Content  string   `json:"content" binding:"required"`
	Likes    []string `json:"likes" binding:"required"`
	Dislikes []string `json:"dislikes" binding:"required"`
	Replies  []string `json:"replies" binding:"required,dive,uuid"`
}

func (h *Handler) GetCommentsOfPost(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var query paginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	page, err := h.services.Comment.GetCommentsOfPost(uri.ID, query.Limit, query.Page)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "Comments fetched successfully", gin.H{
		"comments": page.Data,
		"metadata": page.Metadata,
	})
}

// AddComment defaults the owner to the authenticated user.
func (h *Handler) AddComment(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if req.Owner == "" {
		req.Owner = middleware.GetUserID(c)
	}

	comment, err := h.services.Comment.AddComment(uri.ID, services.CommentCreate{
		Content: req.Content,
		Owner:   req.Owner,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Created(c, "Comment created successfully", gin.H{"comment": comment})
}

func (h *Handler) GetCommentByID(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	comment, err := h.services.Comment.GetCommentByID(uri.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "Comment fetched successfully", gin.H{"comment": comment})
}

func (h *Handler) UpdateComment(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	comment, err := h.services.Comment.UpdateComment(uri.ID, services.CommentEdit{
		Content:  req.Content,
		Likes:    req.Likes,
		Dislikes: req.Dislikes,
		Replies:  req.Replies,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "Comment updated successfully", gin.H{"comment": comment})
}

func (h *Handler) DeleteComment(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.services.Comment.DeleteComment(uri.ID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "Comment deleted successfully", gin.H{"commentId": uri.ID})
}
