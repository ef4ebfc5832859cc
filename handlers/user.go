package handlers

import (
	"github.com/gin-gonic/gin"

	"mocksocial/services"
	"mocksocial/utils"
)

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required,min=3,max=50"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	ProfilePicture string `json:"profilePicture" binding:"omitempty,url"`
}

type UpdateUserRequest struct {
	Username       string `json:"username" binding:"omitempty,min=3,max=50"`
	Email          string `json:"email" binding:"omitempty,email"`
	ProfilePicture string `json:"profilePicture" binding:"omitempty,url"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required,min=8"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type getUsersQuery struct {
	paginationQuery
	Keyword string `form:"keyword"`
}

func (h *Handler) GetUsers(c *gin.Context) {
	var query getUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	page := h.services.User.GetUsers(query.Keyword, query.Limit, query.Page)

	utils.Success(c, "Users fetched successfully", gin.H{
		"users":    page.Data,
		"metadata": page.Metadata,
	})
}

func (h *Handler) AddUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	user, err := h.services.User.AddUser(services.UserCreate{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Created(c, "User created successfully", gin.H{"user": user})
}

func (h *Handler) GetUserByID(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	user, err := h.services.User.GetUserByID(uri.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "User fetched successfully", gin.H{"user": user})
}

func (h *Handler) GetUserByUsername(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		utils.BadRequest(c, "Username is required")
		return
	}

	user, err := h.services.User.GetUserByUsername(username)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "User fetched successfully", gin.H{"user": user})
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	user, err := h.services.User.UpdateUser(uri.ID, services.UserEdit{
		Username:       req.Username,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "User updated successfully", gin.H{"user": user})
}

func (h *Handler) UpdateUserPassword(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.services.User.UpdateUserPassword(uri.ID, req.OldPassword, req.NewPassword); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "Password updated successfully", gin.H{"userId": uri.ID})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.services.User.DeleteUser(uri.ID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "User deleted successfully", gin.H{"userId": uri.ID})
}
