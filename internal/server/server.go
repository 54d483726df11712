package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/amaliagrey/blog-platform/internal/auth"
	"github.com/amaliagrey/blog-platform/internal/database"
	"github.com/amaliagrey/blog-platform/internal/handlers"
	"github.com/amaliagrey/blog-platform/internal/middleware"
)

type Server struct {
	db       database.Service
	sessions *auth.Sessions
	handler  *handlers.Handler
}

// New wires a Server around an open database service.
func New(db database.Service) *Server {
	sessions := auth.NewSessions(db.GetDB())
	return &Server{
		db:       db,
		sessions: sessions,
		handler:  handlers.NewHandler(db.GetDB(), sessions),
	}
}

// NewServer creates and configures a new server
func NewServer() *http.Server {
	// Initialize database
	newServer := New(database.New())

	// Sweep out sessions that expired while we were down.
	if err := newServer.sessions.DeleteExpired(); err != nil {
		log.Printf("session cleanup failed: %v", err)
	}

	// Configure Gin router
	router := newServer.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // local dev fallback
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("🚀 Server starting on port %s\n", port)
	fmt.Println("📝 Press Ctrl+C to stop the server")

	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Every route sees the resolved session identity.
	r.Use(middleware.CurrentUser(s.sessions))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	// Public routes
	r.GET("/", s.handler.Post.GetPosts)
	r.GET("/about", s.handler.Page.About)
	r.GET("/contact", s.handler.Page.Contact)

	r.GET("/register", s.handler.Auth.RegisterForm)
	r.POST("/register", s.handler.Auth.Register)
	r.GET("/login", s.handler.Auth.LoginForm)
	r.POST("/login", s.handler.Auth.Login)
	r.GET("/logout", s.handler.Auth.Logout)

	r.GET("/post/:id", s.handler.Post.GetPost)

	// Commenting needs a logged-in user; anonymous callers are sent
	// to the login page instead of erroring.
	r.POST("/post/:id", middleware.RequireUser(s.sessions), s.handler.Comment.AddComment)

	// Post management is restricted to the administrator account.
	admin := r.Group("")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/new-post", s.handler.Post.NewPostForm)
		admin.POST("/new-post", s.handler.Post.CreatePost)
		admin.GET("/edit-post/:id", s.handler.Post.EditPostForm)
		admin.POST("/edit-post/:id", s.handler.Post.EditPost)
		admin.GET("/delete/:id", s.handler.Post.DeletePost)
	}

	return r
}
