package api

import (
	"errors"
	"net/http"

	"github.com/banachtech/quantarb/coint"
	"github.com/banachtech/quantarb/scan"
	"github.com/gin-gonic/gin"
)

type cointegrationRequest struct {
	Dates []string  `json:"dates"`
	Y     []float64 `json:"y" binding:"required"`
	X     []float64 `json:"x" binding:"required"`
}

// cointegration runs the Engle-Granger procedure on a pair of raw series.
func (server *Server) cointegration(c *gin.Context) {
	var req cointegrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	y := coint.Series{Dates: req.Dates, Values: req.Y}
	x := coint.Series{Dates: req.Dates, Values: req.X}

	rel, err := coint.EstimateLongRunShortRunRelationships(y, x)
	if err != nil {
		abortCointErr(c, err)
		return
	}
	test, err := coint.EngleGrangerTwoStepCointegrationTest(y, x)
	if err != nil {
		abortCointErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"relationship": rel, "test": test})
}

type scanRequest struct {
	Tickers []string `json:"tickers" binding:"required,min=2"`
}

// scan pulls the stored close series for the requested tickers and ranks
// every pair by cointegration p-value.
func (server *Server) scan(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	universe, err := server.store.GetSeries(c, req.Tickers)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	pairs, err := scan.Scan(universe)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"pairs": pairs})
}

func abortCointErr(c *gin.Context, err error) {
	if errors.Is(err, coint.ErrInvalidInput) {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
}
