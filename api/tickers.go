package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// tickers lists every ticker with stored close data, the universe a scan
// request can draw from.
func (server *Server) tickers(c *gin.Context) {
	tickers, err := server.store.GetTickers(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickers": tickers})
}
