package api

import (
	db "github.com/banachtech/quantarb/db/sqlc"
	"github.com/gin-gonic/gin"
)

// Server serves HTTP requests for the option pricing and pair analytics
// service.
type Server struct {
	store  db.Store
	router *gin.Engine
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(store db.Store) *Server {
	server := &Server{store: store}

	server.setupRouter()
	return server
}

func (server *Server) setupRouter() {
	router := gin.Default()

	router.POST("/register", server.register)

	authRoutes := router.Group("/v1").Use(server.authentication)
	authRoutes.GET("/tickers", server.tickers)
	authRoutes.POST("/pricer", server.pricer)
	authRoutes.POST("/cointegration", server.cointegration)
	authRoutes.POST("/scan", server.scan)
	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
