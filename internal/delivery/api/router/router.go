// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strings"

	"album/config"
	"album/internal/delivery/api/middleware"
	"album/internal/delivery/api/router/handler"
	"album/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MediaHandler   *handler.MediaHandler
	UploadHandler  *handler.UploadHandler
	AuthHandler    *handler.AuthHandler
	AgentHandler   *handler.AgentHandler
	StaticHandler  *handler.StaticHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	media        *handler.MediaHandler
	upload       *handler.UploadHandler
	auth         *handler.AuthHandler
	agent        *handler.AgentHandler
	static       *handler.StaticHandler
	mw           *middleware.AuthMiddleware
	staticPrefix string
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		media:        params.MediaHandler,
		upload:       params.UploadHandler,
		auth:         params.AuthHandler,
		agent:        params.AgentHandler,
		static:       params.StaticHandler,
		mw:           params.AuthMiddleware,
		staticPrefix: strings.Trim(params.Config.Upload.StaticPrefix, "/"),
	}
}

// RegisterRoutes sets up all the routes for the application. Identify runs globally,
// so every handler sees the caller when one is logged in.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public feed
	e.GET("/", r.media.Feed)
	e.GET("/page/:n", r.media.Feed)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.auth.Register)
		authGroup.POST("/login", r.auth.Login)
		authGroup.POST("/google", r.auth.GoogleLogin)
		authGroup.POST("/logout", r.auth.Logout)
		authGroup.POST("/reset", r.auth.RequestReset)
		authGroup.POST("/reset/:token", r.auth.ResetPassword)
	}

	agentGroup := e.Group("/agent", r.mw.RequireLogin)
	{
		agentGroup.GET("", r.agent.Me)
		agentGroup.GET("/grants", r.agent.Grants)
		agentGroup.POST("/grants", r.agent.Grant)
		agentGroup.DELETE("/grants/:email", r.agent.Revoke)
		agentGroup.GET("/admin", r.agent.Admin, r.mw.RequirePrivileged)
	}

	e.GET("/flagged", r.media.Flagged, r.mw.RequireLogin)
	e.GET("/flagged/page/:n", r.media.Flagged, r.mw.RequireLogin)

	// Stored bytes
	e.GET("/"+r.staticPrefix+"/*", r.static.Serve)

	r.registerMediaRoutes(e, entity.MediaKindImage)
	r.registerMediaRoutes(e, entity.MediaKindTrack)
}

// registerMediaRoutes wires the upload and lifecycle routes of one media kind. Handlers
// read the kind back from the matched route.
func (r *router) registerMediaRoutes(e *echo.Echo, kind entity.MediaKind) {
	prefix := "/" + kind.String()

	// Uploads always answer JSON.
	e.POST(prefix, r.upload.Upload, r.mw.APIOnly, r.mw.RequireLogin)
	if kind == entity.MediaKindTrack {
		e.POST(prefix+"/stream", r.upload.Stream, r.mw.APIOnly, r.mw.RequireLogin)
	}

	dir := e.Group(prefix+"/:domain/:agentId", r.mw.GuardDirectory)
	{
		dir.GET("", r.media.Album)
		dir.GET("/page/:n", r.media.Album)
		dir.GET("/:itemId", r.media.Show)
		dir.GET("/:itemId/qr", r.media.ShareQR)
		dir.POST("/:itemId", r.media.TogglePublish)
		dir.PATCH("/:itemId/flag", r.media.ToggleFlag)
		dir.PATCH("/:itemId/like", r.media.ToggleLike)
		dir.POST("/:itemId/note", r.media.AddNote)
		dir.DELETE("/:itemId/note/:noteId", r.media.DeleteNote)
		dir.DELETE("/:itemId", r.media.Delete)
		if kind == entity.MediaKindTrack {
			dir.PATCH("/:itemId", r.media.UpdateTrack)
		}
	}
}
