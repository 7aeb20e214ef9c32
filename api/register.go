package api

import (
	"net/http"
	"time"

	db "github.com/banachtech/quantarb/db/sqlc"
	"github.com/banachtech/quantarb/util"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// register issues a new API key, valid for six months. Only the bcrypt
// hash is stored; the clear key is returned once in the response.
func (server *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	prefix, apiKey := util.RandomAPIKey()
	hashed, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	arg := db.CreateUserParams{
		Email:     req.Email,
		Prefix:    prefix,
		Token:     string(hashed),
		ExpiredAt: time.Now().AddDate(0, 6, 0).Format(layoutTimestamp),
	}
	if err := server.store.CreateUser(c, arg); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": req.Email, "api_key": apiKey, "expired_at": arg.ExpiredAt})
}
