package server

import (
	"net/http"

	"agencyx/internal/config"
	"agencyx/internal/handlers"
	"agencyx/internal/middleware"
	"agencyx/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("agencyx_session", store))

	r.Use(middleware.InjectUser())

	// AUTH
	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	// NOTIFICACIÓN "PROYECTO COMPLETADO"
	// fuera de la sesión: es la función HTTP pública de la versión original,
	// con su propio CORS y control de método
	r.Any("/notifications/project-completed", handlers.ProjectCompleted)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	auth.GET("/me", handlers.Me)

	app := auth.Group("/")
	app.Use(middleware.RequireAccepted())

	// USUARIOS (gestión solo para admin)
	app.GET("/users", handlers.ListUsers)
	app.POST("/users/:id/approve",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ApproveUser,
	)
	app.PUT("/users/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.UpdateUser,
	)
	app.DELETE("/users/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteUser,
	)

	// CLIENTES (escritura solo para admin)
	app.GET("/clients", handlers.ListClients)
	app.GET("/clients/:id", handlers.GetClient)
	app.POST("/clients",
		middleware.RequireRole(models.RoleAdmin),
		handlers.CreateClient,
	)
	app.PUT("/clients/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.UpdateClient,
	)
	app.DELETE("/clients/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteClient,
	)

	// PROYECTOS
	app.GET("/projects", handlers.ListProjects)
	app.GET("/projects/:id", handlers.GetProject)
	app.POST("/projects", handlers.CreateProject)
	app.PUT("/projects/:id", handlers.UpdateProject)
	app.POST("/projects/:id/archive", handlers.ArchiveProject)
	app.DELETE("/projects/:id", handlers.DeleteProject)

	// TAREAS
	app.GET("/tasks", handlers.ListTasks)
	app.POST("/tasks", handlers.CreateTask)
	app.PUT("/tasks/:id", handlers.UpdateTask)
	app.DELETE("/tasks/:id", handlers.DeleteTask)

	// CALENDARIO
	app.GET("/events", handlers.ListEvents)
	app.POST("/events", handlers.CreateEvent)
	app.PUT("/events/:id", handlers.UpdateEvent)
	app.DELETE("/events/:id", handlers.DeleteEvent)

	// OBJETIVOS MENSUALES
	app.GET("/goals", handlers.ListGoals)
	app.POST("/goals", handlers.CreateGoal)
	app.PUT("/goals/:id", handlers.UpdateGoal)
	app.DELETE("/goals/:id", handlers.DeleteGoal)

	// NOTIFICACIONES
	app.GET("/notifications", handlers.ListNotifications)
	app.POST("/notifications/token", handlers.RegisterToken)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
