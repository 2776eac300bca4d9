package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"wardrobe/internal/auth"
	"wardrobe/internal/handler"
	"wardrobe/internal/metrics"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	resolver auth.UserResolver,
	recorder metrics.Recorder,
	gatherer prometheus.Gatherer,
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	clothesHandler *handler.ClothesHandler,
	suggestHandler *handler.SuggestHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(requestMetrics(recorder))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/metrics", echo.WrapHandler(metrics.Handler(gatherer)))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/categories", catalogHandler.ListCategories)
	api.POST("/categories", catalogHandler.CreateCategory)
	api.GET("/types", catalogHandler.ListTypes)
	api.POST("/types", catalogHandler.CreateType)

	// Secured routes (require a live session token)
	secured := api.Group("", auth.RequireUser(resolver))

	secured.POST("/logout", authHandler.Logout)
	secured.GET("/user", authHandler.CurrentUser)

	secured.GET("/clothes", clothesHandler.List)
	secured.POST("/clothes", clothesHandler.Create)
	secured.GET("/clothes/suggest", suggestHandler.Suggest)
	secured.GET("/clothes/:id", clothesHandler.Get)
	secured.PUT("/clothes/:id", clothesHandler.Update)
	secured.DELETE("/clothes/:id", clothesHandler.Delete)
}

// requestMetrics counts finished requests by method, route and status.
func requestMetrics(recorder metrics.Recorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			recorder.RecordHTTPRequest(c.Request().Method, c.Path(), c.Response().Status)
			return err
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
