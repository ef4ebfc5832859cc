package handlers

import (
	"github.com/gin-gonic/gin"

	"mocksocial/middleware"
	"mocksocial/services"
	"mocksocial/utils"
)

type CreatePostRequest struct {
	Description string   `json:"description" binding:"required"`
	Images      []string `json:"images" binding:"omitempty,dive,url"`
}

type UpdatePostRequest struct {
	Description string   `json:"description" binding:"required"`
	Images      []string `json:"images" binding:"omitempty,dive,url"`
	Likes       []string `json:"likes"`
	Dislikes    []string `json:"dislikes"`
}

type getPostsQuery struct {
	paginationQuery
	HasComments     bool `form:"has-comments"`
	WithTopComments bool `form:"with-top-comments"`
}

func (h *Handler) GetPosts(c *gin.Context) {
	var query getPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if query.WithTopComments {
		page := h.services.Post.GetPostsWithTopComments(query.Limit, query.Page, query.HasComments)
		utils.Success(c, "Posts fetched successfully", gin.H{
			"posts":    page.Data,
			"metadata": page.Metadata,
		})
		return
	}

	page := h.services.Post.GetPosts(query.Limit, query.Page, query.HasComments)
	utils.Success(c, "Posts fetched successfully", gin.H{
		"posts":    page.Data,
		"metadata": page.Metadata,
	})
}

// AddPost creates a post owned by the authenticated user.
func (h *Handler) AddPost(c *gin.Context) {
	h.createPost(c, middleware.GetUserID(c))
}

func (h *Handler) AddUserPost(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	h.createPost(c, uri.ID)
}

func (h *Handler) createPost(c *gin.Context, ownerID string) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	post, err := h.services.Post.AddPost(ownerID, services.PostCreate{
		Description: req.Description,
		Images:      req.Images,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Created(c, "Post created successfully", gin.H{"post": post})
}

func (h *Handler) GetUserPosts(c *gin.Context) {
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

	page, err := h.services.Post.GetUserPosts(uri.ID, query.Limit, query.Page)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "User posts fetched successfully", gin.H{
		"posts":    page.Data,
		"metadata": page.Metadata,
	})
}

func (h *Handler) GetPostByID(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	post, err := h.services.Post.GetPostByID(uri.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "Post fetched successfully", gin.H{"post": post})
}

func (h *Handler) UpdatePost(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	post, err := h.services.Post.UpdatePost(uri.ID, services.PostEdit{
		Description: req.Description,
		Images:      req.Images,
		Likes:       req.Likes,
		Dislikes:    req.Dislikes,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "Post updated successfully", gin.H{"post": post})
}

func (h *Handler) DeletePost(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.services.Post.DeletePost(uri.ID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "Post deleted successfully", gin.H{"postId": uri.ID})
}
