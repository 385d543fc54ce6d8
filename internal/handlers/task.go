package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chepyr/taskboard/internal/models"
	"github.com/chepyr/taskboard/internal/taskfilter"
)

const (
	eventTaskCreated           = "task_created"
	eventTaskCompletionChanged = "task_completion_changed"
	eventTaskUpdated           = "task_updated"
	eventTaskDeleted           = "task_deleted"
)

type filterTaskRequest struct {
	SearchMode   *int   `json:"searchMode"`
	SortMode     *int   `json:"sortMode"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	SearchString string `json:"searchString"`
}

// POST /task/getFilterTask
func (h *Handler) GetFilterTask(c *gin.Context) {
	var req filterTaskRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if req.SearchMode == nil {
		h.missingField(c, "no searchMode provided")
		return
	}
	if req.SortMode == nil {
		h.missingField(c, "no sortMode provided")
		return
	}

	ctx, cancel := h.storeContext(c)
	defer cancel()

	tasks, err := h.TaskRepo.ListAll(ctx)
	if err != nil {
		h.storeFailure(c, err, "failed to select tasks")
		return
	}

	criteria := taskfilter.Criteria{
		Search:    taskfilter.ParseSearchMode(*req.SearchMode),
		Sort:      taskfilter.ParseSortMode(*req.SortMode),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Creator:   req.SearchString,
	}
	filtered := taskfilter.Apply(tasks, criteria)
	h.logger(c).Debug().
		Stringer("search", criteria.Search).
		Stringer("sort", criteria.Sort).
		Int("total", len(tasks)).
		Int("count", len(filtered)).
		Msg("filtered tasks")

	c.JSON(http.StatusCreated, gin.H{"task": filtered})
}

// GET /task/getAllTasks
func (h *Handler) GetAllTasks(c *gin.Context) {
	ctx, cancel := h.storeContext(c)
	defer cancel()

	tasks, err := h.TaskRepo.ListAll(ctx)
	if err != nil {
		h.storeFailure(c, err, "failed to select tasks")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": tasks})
}

type createTaskRequest struct {
	TaskName    *string        `json:"taskName"`
	CreatorID   *int64         `json:"creatorId"`
	Description *string        `json:"description"`
	DueDate     optionalString `json:"dueDate"`
}

// POST /task/createTask
func (h *Handler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if req.TaskName == nil {
		h.missingField(c, "no taskName provided")
		return
	}
	if req.CreatorID == nil {
		h.missingField(c, "no creatorId provided")
		return
	}
	dueDate, err := req.DueDate.dueDate()
	if err != nil {
		h.invalidField(c, "invalid dueDate: "+err.Error())
		return
	}

	task := models.NewTask{
		TaskName:  *req.TaskName,
		CreatorID: *req.CreatorID,
		DueDate:   dueDate,
	}
	if req.Description != nil {
		task.Description = *req.Description
	}

	ctx, cancel := h.storeContext(c)
	defer cancel()

	id, err := h.TaskRepo.Create(ctx, task)
	if err != nil {
		h.storeFailure(c, err, "failed to insert task")
		return
	}
	h.logger(c).Info().Int64("task_id", id).Msg("created task")
	h.notify(eventTaskCreated, id)
	created(c, "Task added success")
}

type modTaskCompleteRequest struct {
	ID       *int64 `json:"id"`
	Complete *bool  `json:"complete"`
}

// PUT /task/modTaskComplete
func (h *Handler) ModTaskComplete(c *gin.Context) {
	var req modTaskCompleteRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if req.ID == nil {
		h.missingField(c, "no taskId provided")
		return
	}
	if req.Complete == nil {
		h.missingField(c, "no status provided")
		return
	}

	ctx, cancel := h.storeContext(c)
	defer cancel()

	if err := h.TaskRepo.SetComplete(ctx, *req.ID, *req.Complete); err != nil {
		h.storeFailure(c, err, "failed to update task completion")
		return
	}
	h.logger(c).Info().
		Int64("task_id", *req.ID).
		Bool("complete", *req.Complete).
		Msg("updated task completion")
	h.notify(eventTaskCompletionChanged, *req.ID)
	created(c, "Task mod success")
}

type modTaskRequest struct {
	ID          *int64         `json:"id"`
	DueDate     optionalString `json:"dueDate"`
	TaskName    *string        `json:"taskName"`
	Description *string        `json:"description"`
	Complete    *bool          `json:"complete"`
}

// PUT /task/modTask
func (h *Handler) ModTask(c *gin.Context) {
	var req modTaskRequest
	if !h.bindJSON(c, &req) {
		return
	}
	switch {
	case req.ID == nil:
		h.missingField(c, "no taskId provided")
		return
	case req.Complete == nil:
		h.missingField(c, "no status provided")
		return
	case req.TaskName == nil:
		h.missingField(c, "no task name provided")
		return
	case req.Description == nil:
		h.missingField(c, "no description provided")
		return
	case !req.DueDate.Set:
		h.missingField(c, "no dueDate provided")
		return
	}
	dueDate, err := req.DueDate.dueDate()
	if err != nil {
		h.invalidField(c, "invalid dueDate: "+err.Error())
		return
	}

	ctx, cancel := h.storeContext(c)
	defer cancel()

	edit := models.TaskEdit{
		ID:          *req.ID,
		TaskName:    *req.TaskName,
		DueDate:     dueDate,
		Complete:    *req.Complete,
		Description: *req.Description,
	}
	if err := h.TaskRepo.Update(ctx, edit); err != nil {
		h.storeFailure(c, err, "failed to update task")
		return
	}
	h.logger(c).Info().Int64("task_id", edit.ID).Msg("updated task")
	h.notify(eventTaskUpdated, edit.ID)
	created(c, "Task mod success")
}

type deleteTaskRequest struct {
	ID *int64 `json:"id"`
}

// DELETE /task/deleteTask
func (h *Handler) DeleteTask(c *gin.Context) {
	var req deleteTaskRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if req.ID == nil {
		h.missingField(c, "no taskId provided")
		return
	}

	ctx, cancel := h.storeContext(c)
	defer cancel()

	if err := h.TaskRepo.Delete(ctx, *req.ID); err != nil {
		h.storeFailure(c, err, "failed to delete task")
		return
	}
	h.logger(c).Info().Int64("task_id", *req.ID).Msg("deleted task")
	h.notify(eventTaskDeleted, *req.ID)
	created(c, "Task delete success")
}
