package handlers

import (
	"github.com/gin-gonic/gin"

	"mocksocial/utils"
)

type friendURI struct {
	ID       string `uri:"id" binding:"required,uuid"`
	FriendID string `uri:"friendId" binding:"required,uuid"`
}

type getFriendsQuery struct {
	paginationQuery
	WithUserData bool `form:"with-user-data"`
}

func (h *Handler) GetFriends(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var query getFriendsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	page, err := h.services.Friend.GetFriends(uri.ID, query.Limit, query.Page, query.WithUserData)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "Friends fetched successfully", gin.H{
		"friendsList": page.FriendsList,
		"metadata":    page.Metadata,
	})
}

func (h *Handler) AddFriend(c *gin.Context) {
	var uri friendURI
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.services.Friend.AddFriend(uri.ID, uri.FriendID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Created(c, "Friend added successfully", gin.H{"friendId": uri.FriendID})
}

func (h *Handler) RemoveFriend(c *gin.Context) {
	var uri friendURI
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.services.Friend.RemoveFriend(uri.ID, uri.FriendID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "Friend removed successfully", gin.H{"friendId": uri.FriendID})
}
