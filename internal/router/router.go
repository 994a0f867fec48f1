package router

import (
	"teamvote/internal/config"
	"teamvote/internal/handlers"
	"teamvote/internal/middleware"
	"teamvote/internal/session"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config, codec *session.Codec) {
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.LoadSession(codec))

	// Handlers
	authHandler := handlers.NewAuthHandler(cfg, codec)
	optionsHandler := handlers.NewOptionsHandler()
	voteHandler := handlers.NewVoteHandler()
	adminHandler := handlers.NewAdminHandler()

	// Public routes
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.GET("/is-admin", authHandler.IsAdmin) // session optional, never 401

	// Voter routes
	voter := r.Group("/")
	voter.Use(middleware.AuthRequired())
	{
		voter.GET("/me", authHandler.Me)
		voter.GET("/options", optionsHandler.List)
		voter.POST("/vote", voteHandler.Cast)
	}

	// Admin routes: shared password or whitelisted team
	admin := r.Group("/")
	admin.Use(middleware.AdminRequired(cfg))
	{
		admin.GET("/admin/teams", adminHandler.Teams)
		admin.GET("/admin/options", adminHandler.ListOptions)
		admin.POST("/admin/options", adminHandler.CreateOption)
		admin.PATCH("/admin/options/:id", adminHandler.PatchOption)
		admin.DELETE("/admin/options/:id", adminHandler.DeleteOption)
		admin.POST("/admin/options/delete-all", adminHandler.DeleteAll)
		admin.POST("/admin/reset-team", adminHandler.ResetTeam)
		admin.GET("/results", adminHandler.Results)
	}
}
