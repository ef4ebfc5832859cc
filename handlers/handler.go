package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mocksocial/middleware"
	"mocksocial/services"
	"mocksocial/utils"
)

// Handler serves the REST API on top of the services.
type Handler struct {
	services *services.Services
	tokens   *utils.TokenManager
	dev      bool
}

func New(svc *services.Services, tokens *utils.TokenManager, dev bool) *Handler {
	return &Handler{services: svc, tokens: tokens, dev: dev}
}

// RegisterRoutes mounts every endpoint on rg. auth guards all routes except
// register, login, logout and refresh.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/logout", h.Logout)
		authGroup.GET("/refresh-token", h.RefreshTokenFromHeader)
		authGroup.POST("/refresh-token", h.RefreshToken)
		authGroup.GET("/me", auth, h.Me)
	}

	users := rg.Group("/users", auth)
	{
		users.GET("", h.GetUsers)
		users.POST("", h.AddUser)
		users.GET("/username/:username", h.GetUserByUsername)
		users.GET("/:id", h.GetUserByID)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
		users.PUT("/:id/password", h.UpdateUserPassword)

		users.GET("/:id/posts", h.GetUserPosts)
		users.POST("/:id/posts", h.AddUserPost)

		users.GET("/:id/friends", h.GetFriends)
		users.POST("/:id/friends/:friendId", h.AddFriend)
		users.DELETE("/:id/friends/:friendId", h.RemoveFriend)
	}

	posts := rg.Group("/posts", auth)
	{
		posts.GET("", h.GetPosts)
		posts.POST("", h.AddPost)
		posts.GET("/:id", h.GetPostByID)
		posts.PUT("/:id", h.UpdatePost)
		posts.DELETE("/:id", h.DeletePost)

		posts.GET("/:id/comments", h.GetCommentsOfPost)
		posts.POST("/:id/comments", h.AddComment)
	}

	comments := rg.Group("/comments", auth)
	{
		comments.GET("/:id", h.GetCommentByID)
		comments.PUT("/:id", h.UpdateComment)
		comments.DELETE("/:id", h.DeleteComment)
	}
}

type idURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type paginationQuery struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=10" binding:"min=1"`
}

// bindOptionalJSON treats an empty body as a zero value.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (h *Handler) setTokenCookie(c *gin.Context, name, value string, ttl time.Duration) {
	if h.dev {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(name, value, int(ttl.Seconds()), "/", "localhost", false, true)
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(name, value, int(ttl.Seconds()), "/", "", true, true)
}

func (h *Handler) clearTokenCookie(c *gin.Context, name string) {
	h.setTokenCookie(c, name, "", -time.Second)
}

func (h *Handler) refreshCookie(c *gin.Context) string {
	cookie, err := c.Cookie(middleware.RefreshTokenCookie)
	if err != nil {
		return ""
	}
	return cookie
}
