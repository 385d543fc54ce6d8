package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/chepyr/taskboard/internal/models"
)

type CommentRepositoryInterface interface {
	ListByTask(ctx context.Context, taskID int64) ([]models.Comment, error)
	Create(ctx context.Context, comment models.NewComment) (int64, error)
	UpdateMessage(ctx context.Context, id int64, message string) error
	Delete(ctx context.Context, id int64) error
}

type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) ListByTask(ctx context.Context, taskID int64) ([]models.Comment, error) {
	query := `SELECT comments.id, comments.message, comments.created_at, comments.belong_task_id,
	 comments.creator_id, users.username
	 FROM comments LEFT JOIN users ON comments.creator_id = users.id
	 WHERE comments.belong_task_id = $1
	 ORDER BY comments.created_at, comments.id`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("select comments: %w", err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var (
			comment models.Comment
			creator sql.NullString
		)
		if err := rows.Scan(
			&comment.ID, &comment.Message, &comment.CreateTime, &comment.BelongTaskID,
			&comment.CreatorID, &creator,
		); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comment.Creator = creator.String
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) Create(ctx context.Context, comment models.NewComment) (int64, error) {
	query := `INSERT INTO comments (message, creator_id, belong_task_id, created_at)
	 VALUES ($1, $2, $3, $4) RETURNING id`

	var id int64
	err := r.db.QueryRowContext(
		ctx, query, comment.Message, comment.CreatorID, comment.BelongTaskID, time.Now().UTC(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert comment: %w", err)
	}
	return id, nil
}

func (r *CommentRepository) UpdateMessage(ctx context.Context, id int64, message string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE comments SET message = $1 WHERE id = $2`, message, id)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	return expectAffected(res, ErrCommentNotFound)
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return expectAffected(res, ErrCommentNotFound)
}
