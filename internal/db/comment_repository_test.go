package db

import (
	"context"
	"errors"
	"testing"

	"github.com/chepyr/taskboard/internal/models"
)

func TestCommentRepository_Create_List_Update_Delete(t *testing.T) {
	dbx := setupTestDB(t)
	repo := NewCommentRepository(dbx)
	ctx := context.Background()

	anna := insertUser(t, dbx, "Anna")
	taskID := insertTask(t, dbx, models.NewTask{TaskName: "commented", CreatorID: anna})
	otherTask := insertTask(t, dbx, models.NewTask{TaskName: "other", CreatorID: anna})

	first, err := repo.Create(ctx, models.NewComment{Message: "first", CreatorID: anna, BelongTaskID: taskID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(ctx, models.NewComment{Message: "second", CreatorID: anna, BelongTaskID: taskID}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(ctx, models.NewComment{Message: "elsewhere", CreatorID: anna, BelongTaskID: otherTask}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := repo.ListByTask(ctx, taskID)
	if err != nil {
		t.Fatalf("ListByTask: %v", err)
	}
	if len(list) != 2 || list[0].Message != "first" || list[1].Message != "second" {
		t.Fatalf("ListByTask unexpected: %+v", list)
	}
	if list[0].Creator != "Anna" || list[0].BelongTaskID != taskID || list[0].CreateTime.IsZero() {
		t.Errorf("ListByTask returned incorrect data: %+v", list[0])
	}

	if err := repo.UpdateMessage(ctx, first, "edited"); err != nil {
		t.Fatalf("UpdateMessage: %v", err)
	}
	list, err = repo.ListByTask(ctx, taskID)
	if err != nil {
		t.Fatalf("ListByTask after update: %v", err)
	}
	if list[0].Message != "edited" {
		t.Errorf("UpdateMessage not applied: %+v", list[0])
	}

	if err := repo.Delete(ctx, first); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	list, err = repo.ListByTask(ctx, taskID)
	if err != nil {
		t.Fatalf("ListByTask after delete: %v", err)
	}
	if len(list) != 1 || list[0].Message != "second" {
		t.Errorf("Delete not applied: %+v", list)
	}
}

func TestCommentRepository_NonExistent(t *testing.T) {
	dbx := setupTestDB(t)
	repo := NewCommentRepository(dbx)
	ctx := context.Background()

	if err := repo.UpdateMessage(ctx, 77, "x"); !errors.Is(err, ErrCommentNotFound) {
		t.Errorf("UpdateMessage: got %v, want ErrCommentNotFound", err)
	}
	if err := repo.Delete(ctx, 77); !errors.Is(err, ErrCommentNotFound) {
		t.Errorf("Delete: got %v, want ErrCommentNotFound", err)
	}
	list, err := repo.ListByTask(ctx, 77)
	if err != nil {
		t.Fatalf("ListByTask: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected no comments, got %+v", list)
	}
}

func TestCommentRepository_Create_InvalidTask(t *testing.T) {
	dbx := setupTestDB(t)

	anna := insertUser(t, dbx, "Anna")
	_, err := NewCommentRepository(dbx).Create(context.Background(),
		models.NewComment{Message: "lost", CreatorID: anna, BelongTaskID: 999})
	if err == nil {
		t.Fatal("expected error for comment on a non-existent task, got nil")
	}
}
