package api

import (
	"net/http"

	"github.com/banachtech/quantarb/bs"
	"github.com/gin-gonic/gin"
)

type pricerRequest struct {
	Spot   float64 `json:"spot" binding:"required,gt=0"`
	Strike float64 `json:"strike" binding:"required,gt=0"`
	Expiry float64 `json:"expiry" binding:"required,gt=0"`
	Rate   float64 `json:"rate"`
	Vol    float64 `json:"volatility" binding:"required,gt=0"`
}

type pricerResponse struct {
	CallValue float64 `json:"call_value"`
	PutValue  float64 `json:"put_value"`
	CallDelta float64 `json:"call_delta"`
	PutDelta  float64 `json:"put_delta"`
	Vega      float64 `json:"vega"`
}

// pricer values a European call and put with their greeks. The binding
// constraints are the validation layer around the permissive bs package.
func (server *Server) pricer(c *gin.Context) {
	var req pricerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	S, K, T, r, sigma := req.Spot, req.Strike, req.Expiry, req.Rate, req.Vol
	resp := pricerResponse{
		CallValue: bs.CallValue(S, K, T, r, sigma),
		PutValue:  bs.PutValue(S, K, T, r, sigma),
		CallDelta: bs.CallDelta(S, K, T, r, sigma),
		PutDelta:  bs.PutDelta(S, K, T, r, sigma),
		Vega:      bs.CallVega(S, K, T, r, sigma),
	}

	c.JSON(http.StatusOK, gin.H{"contract": req, "greeks": resp})
}
