package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chepyr/taskboard/internal/models"
)

type taskCommentsRequest struct {
	TaskID *int64 `json:"taskId"`
}

// POST /comment/getTaskComment
func (h *Handler) GetTaskComments(c *gin.Context) {
	var req taskCommentsRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if req.TaskID == nil {
		h.missingField(c, "no taskId provided")
		return
	}

	ctx, cancel := h.storeContext(c)
	defer cancel()

	comments, err := h.CommentRepo.ListByTask(ctx, *req.TaskID)
	if err != nil {
		h.storeFailure(c, err, "failed to select comments")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comments": comments})
}

type createCommentRequest struct {
	Message      *string `json:"message"`
	CreatorID    *int64  `json:"creatorId"`
	BelongTaskID *int64  `json:"belongTaskId"`
}

// POST /comment/createComment
func (h *Handler) CreateComment(c *gin.Context) {
	var req createCommentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if req.Message == nil || *req.Message == "" {
		h.missingField(c, "no message provided")
		return
	}
	if req.CreatorID == nil {
		h.missingField(c, "no creatorId provided")
		return
	}
	if req.BelongTaskID == nil {
		h.missingField(c, "no belongTaskId provided")
		return
	}

	ctx, cancel := h.storeContext(c)
	defer cancel()

	id, err := h.CommentRepo.Create(ctx, models.NewComment{
		Message:      *req.Message,
		CreatorID:    *req.CreatorID,
		BelongTaskID: *req.BelongTaskID,
	})
	if err != nil {
		h.storeFailure(c, err, "failed to insert comment")
		return
	}
	h.logger(c).Info().
		Int64("comment_id", id).
		Int64("task_id", *req.BelongTaskID).
		Msg("created comment")
	created(c, "Comment added success")
}

type modCommentRequest struct {
	CommentID *int64  `json:"commentId"`
	Message   *string `json:"message"`
}

// PUT /comment/modComment
func (h *Handler) ModComment(c *gin.Context) {
	var req modCommentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if req.CommentID == nil {
		h.missingField(c, "no commentId provided")
		return
	}
	if req.Message == nil {
		h.missingField(c, "no message provided")
		return
	}

	ctx, cancel := h.storeContext(c)
	defer cancel()

	if err := h.CommentRepo.UpdateMessage(ctx, *req.CommentID, *req.Message); err != nil {
		h.storeFailure(c, err, "failed to update comment")
		return
	}
	h.logger(c).Info().Int64("comment_id", *req.CommentID).Msg("updated comment")
	created(c, "Comment mod success")
}

type deleteCommentRequest struct {
	CommentID *int64 `json:"commentId"`
}

// DELETE /comment/deleteComment
func (h *Handler) DeleteComment(c *gin.Context) {
	var req deleteCommentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if req.CommentID == nil {
		h.missingField(c, "no commentId provided")
		return
	}

	ctx, cancel := h.storeContext(c)
	defer cancel()

	if err := h.CommentRepo.Delete(ctx, *req.CommentID); err != nil {
		h.storeFailure(c, err, "failed to delete comment")
		return
	}
	h.logger(c).Info().Int64("comment_id", *req.CommentID).Msg("deleted comment")
	created(c, "comment delete success")
}
