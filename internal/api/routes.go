package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"webchat/internal/api/handlers"
	"webchat/internal/api/middleware"
	"webchat/internal/config"
	"webchat/internal/repositories"
	"webchat/internal/services"
	"webchat/internal/utils"
)

// NewRouter wires repositories, services and handlers into a gin engine.
func NewRouter(cfg *config.Config, db *gorm.DB, log zerolog.Logger, templatesGlob, staticDir string) *gin.Engine {
	userRepo := repositories.NewUserRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	msgRepo := repositories.NewMessageRepository(db)

	tokens := utils.NewTokenManager(cfg.Auth)
	authSvc := services.NewAuthService(userRepo, tokens)
	chatSvc := services.NewChatService(chatRepo, userRepo)
	msgSvc := services.NewMessageService(msgRepo)

	h := handlers.New(authSvc, chatSvc, msgSvc, log, int(cfg.Auth.TokenTTL.Seconds()))
	auth := middleware.NewAuth(tokens, userRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(auth.Authenticate())

	r.LoadHTMLGlob(templatesGlob)
	if staticDir != "" {
		r.Static("/static", staticDir)
	}

	r.GET("/", h.Home)
	r.GET("/signup", h.SignupPage)
	r.POST("/signup", h.Signup)
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	chats := r.Group("/chats", middleware.RequireAuth())
	chats.GET("", h.ListChats)
	chats.POST("/create", h.CreateChat)
	chats.GET("/:id", h.ChatDetail)
	chats.POST("/:id/message", h.SendMessage)
	chats.POST("/:id/join", h.JoinChat)
	chats.POST("/:id/invite", h.InviteUser)
	chats.POST("/:id/delete", h.DeleteChat)

	return r
}
