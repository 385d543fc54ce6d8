package models

import "time"

// Task is a row of the tasks table joined with its creator's name and the
// mod_time of its retained history snapshot.
type Task struct {
	ID          int64      `json:"id"`
	TaskName    string     `json:"taskName"`
	CreatorID   int64      `json:"creatorId"`
	CreateTime  time.Time  `json:"createTime"`
	DueDate     *time.Time `json:"dueDate"`
	Complete    bool       `json:"complete"`
	Description string     `json:"description"`
	Creator     string     `json:"creator"`
	ModTime     *time.Time `json:"modTime"`
}

// NewTask holds the fields supplied when a task is created.
type NewTask struct {
	TaskName    string
	CreatorID   int64
	Description string
	DueDate     *time.Time
}

// TaskEdit is a full replacement of the editable task fields.
type TaskEdit struct {
	ID          int64
	TaskName    string
	DueDate     *time.Time
	Complete    bool
	Description string
}
