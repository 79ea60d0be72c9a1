package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/taskvault/todo-api/docs"
	"github.com/taskvault/todo-api/internal/api/handler"
	"github.com/taskvault/todo-api/internal/api/middleware"
	"github.com/taskvault/todo-api/internal/core/ports"
)

// Deps carries everything the router wires into handlers. The store handle
// and services are injected here once at startup; no handler reaches for
// process-wide state.
type Deps struct {
	Auth   ports.AuthService
	Users  ports.UserService
	Tasks  ports.TaskService
	Tokens ports.TokenManager
	// UserRepo lets the guard resolve token subjects to live accounts.
	UserRepo ports.UserRepository
	DB       *mongo.Database
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("todo"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users)
	taskHandler := handler.NewTaskHandler(d.Tasks)
	enumHandler := handler.NewEnumHandler()

	guard := middleware.Auth(d.Tokens, d.UserRepo)

	// --- Open routes: login, self-registration, docs, probes ---
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/openapi/index.html")
	})
	e.GET("/openapi/*", echoswagger.WrapHandler)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(d.DB).Readiness)

	e.POST("/login", authHandler.Login)
	e.POST("/usuario", userHandler.Create)

	// --- Guarded routes ---
	e.GET("/auth", authHandler.Me, guard)

	e.GET("/usuario", userHandler.List, guard)
	e.GET("/usuario/:id", userHandler.Get, guard)
	e.PUT("/usuario/:id", userHandler.Update, guard)
	e.DELETE("/usuario/:id", userHandler.Delete, guard)

	e.GET("/tarefa", taskHandler.List, guard)
	e.GET("/tarefa/:id", taskHandler.Get, guard)
	e.POST("/tarefa", taskHandler.Create, guard)
	e.PUT("/tarefa/:id", taskHandler.Update, guard)
	e.DELETE("/tarefa/:id", taskHandler.Delete, guard)

	e.GET("/status", enumHandler.Statuses, guard)
	e.GET("/prioridade", enumHandler.Priorities, guard)

	return e
}
