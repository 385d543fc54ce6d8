package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /user/getAllUser
func (h *Handler) GetAllUsers(c *gin.Context) {
	ctx, cancel := h.storeContext(c)
	defer cancel()

	users, err := h.UserRepo.ListAll(ctx)
	if err != nil {
		h.storeFailure(c, err, "failed to select users")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"users": users})
}

type createUserRequest struct {
	Username *string `json:"username"`
}

// POST /user/createUser
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if req.Username == nil {
		h.missingField(c, "no username provided")
		return
	}

	ctx, cancel := h.storeContext(c)
	defer cancel()

	id, err := h.UserRepo.Create(ctx, *req.Username)
	if err != nil {
		h.storeFailure(c, err, "failed to insert user")
		return
	}
	h.logger(c).Info().Int64("user_id", id).Msg("created user")
	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("User added with ID: %d", id),
		"id":      id,
	})
}
