package server

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"blogicum/internal/database"
	"blogicum/internal/handlers"
	"blogicum/internal/middleware"
)

// NewServer creates and configures a new server
func NewServer() *http.Server {
	db := database.New()
	handler := handlers.NewHandler(db.GetDB())

	router := NewRouter(handler, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // local dev fallback
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("Server starting on port %s", port)

	return server
}

// NewRouter sets up all application routes
func NewRouter(h *handlers.Handler, db database.Service) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		c.JSON(http.StatusOK, db.Health())
	})

	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/register", h.Auth.Register)
		api.POST("/login", h.Auth.Login)

		// Static info pages
		api.GET("/pages/about", aboutPage)
		api.GET("/pages/rules", rulesPage)

		// Public reads carry an optional identity so the visibility filter
		// knows whether the viewer is an author.
		public := api.Group("")
		public.Use(middleware.AuthOptional())
		{
			public.GET("/posts", h.Post.Index)
			public.GET("/posts/:id", h.Post.Detail)
			public.GET("/category/:slug", h.Category.Posts)
			public.GET("/categories", h.Category.List)
			public.GET("/profile/:username", h.Profile.Get)
		}

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			protected.GET("/me", h.Auth.GetMe)
			protected.PUT("/profile", h.Profile.Update)

			protected.POST("/posts", h.Post.Create)
			protected.PUT("/posts/:id", h.Post.Update)
			protected.DELETE("/posts/:id", h.Post.Delete)

			protected.POST("/posts/:id/comments", h.Comment.Create)
			protected.PUT("/comments/:commentId", h.Comment.Update)
			protected.DELETE("/comments/:commentId", h.Comment.Delete)
		}
	}

	return r
}

func aboutPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title": "About",
		"text":  "Blogicum is a small blogging platform: write posts, sort them into categories and places, discuss them in comments.",
	})
}

func rulesPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title": "Rules",
		"text":  "Be kind. Post under your own name. Scheduled posts stay hidden until their publication date.",
	})
}
