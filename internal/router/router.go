package router

import (
	"github.com/labstack/echo/v4"

	"sample-registry/internal/cache"
	"sample-registry/internal/database"
	"sample-registry/internal/handler"
	"sample-registry/internal/handler/admin"
	"sample-registry/internal/handler/auth"
	"sample-registry/internal/handler/samples"
	"sample-registry/internal/handler/users"
	"sample-registry/internal/middleware"
)

// Setup registers every route and its middleware.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache) {
	// public
	e.GET("/ping", handler.PingHandler(db))
	e.GET("/remaining", handler.RemainingHandler(db, rdb))
	e.POST("/login", auth.LoginHandler(db))
	e.POST("/register", auth.RegisterHandler(db))

	// authenticated users
	e.GET("/samples", samples.ListSamplesHandler(db), middleware.RequireAuth)
	e.GET("/running_options", samples.RunningOptionsHandler(db, rdb), middleware.RequireAuth)
	e.POST("/addsample", samples.AddSampleHandler(db), middleware.RequireAuth)
	e.POST("/change_password", users.ChangePasswordHandler(db), middleware.RequireAuth)

	// admin surface
	adminGroup := e.Group("/admin", middleware.RequireAdmin)
	adminGroup.GET("/settings", admin.GetSettingsHandler(db, rdb))
	adminGroup.POST("/settings", admin.UpdateSettingsHandler(db, rdb))
	adminGroup.GET("/allsamples", admin.AllSamplesHandler(db))
	adminGroup.GET("/allusers", admin.AllUsersHandler(db))
	adminGroup.POST("/zipsamples", admin.ZipSamplesHandler(db))
}
