package models

import "time"

type Comment struct {
	ID           int64     `json:"id"`
	Message      string    `json:"message"`
	CreateTime   time.Time `json:"createTime"`
	BelongTaskID int64     `json:"belongTaskId"`
	CreatorID    int64     `json:"creatorId"`
	Creator      string    `json:"creator"`
}

type NewComment struct {
	Message      string
	CreatorID    int64
	BelongTaskID int64
}
