package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/chepyr/taskboard/internal/models"
)

// defines methods for task db operations
type TaskRepositoryInterface interface {
	ListAll(ctx context.Context) ([]models.Task, error)
	Create(ctx context.Context, task models.NewTask) (int64, error)
	SetComplete(ctx context.Context, id int64, complete bool) error
	Update(ctx context.Context, edit models.TaskEdit) error
	Delete(ctx context.Context, id int64) error
}

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const selectTasksQuery = `
SELECT tasks.id, tasks.task_name, tasks.creator_id, tasks.created_at, tasks.duedate,
       tasks.complete, tasks.description, users.username, task_history.mod_time
FROM tasks
LEFT JOIN users ON tasks.creator_id = users.id
LEFT JOIN task_history ON task_history.task_id = tasks.id
ORDER BY tasks.id`

// ListAll returns every task ordered by id. The join on task_history yields
// one row per task because at most one snapshot is retained.
func (r *TaskRepository) ListAll(ctx context.Context) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectTasksQuery)
	if err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var (
			task        models.Task
			dueDate     sql.NullTime
			description sql.NullString
			creator     sql.NullString
			modTime     sql.NullTime
		)
		if err := rows.Scan(
			&task.ID, &task.TaskName, &task.CreatorID, &task.CreateTime, &dueDate,
			&task.Complete, &description, &creator, &modTime,
		); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		task.DueDate = timePtr(dueDate)
		task.Description = description.String
		task.Creator = creator.String
		task.ModTime = timePtr(modTime)
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, task models.NewTask) (int64, error) {
	query := `INSERT INTO tasks (task_name, created_at, duedate, creator_id, complete, description)
	 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	var id int64
	err := r.db.QueryRowContext(
		ctx, query, task.TaskName, time.Now().UTC(), nullTime(task.DueDate),
		task.CreatorID, false, task.Description,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	return id, nil
}

func (r *TaskRepository) SetComplete(ctx context.Context, id int64, complete bool) error {
	query := `UPDATE tasks SET complete = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, complete, id)
	if err != nil {
		return fmt.Errorf("update task completion: %w", err)
	}
	return expectAffected(res, ErrTaskNotFound)
}

// Update archives the current row of the task into task_history, replacing
// any earlier snapshot, and then applies edit. Either all three statements
// take effect or none does.
func (r *TaskRepository) Update(ctx context.Context, edit models.TaskEdit) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM task_history WHERE task_id = $1`, edit.ID); err != nil {
			return fmt.Errorf("delete task history: %w", err)
		}

		archiveQuery := `INSERT INTO task_history (task_id, task_name, created_at, duedate, creator_id, complete, description)
		 SELECT id, task_name, created_at, duedate, creator_id, complete, description FROM tasks WHERE id = $1`
		if _, err := tx.ExecContext(ctx, archiveQuery, edit.ID); err != nil {
			return fmt.Errorf("archive task: %w", err)
		}

		updateQuery := `UPDATE tasks SET task_name = $1, duedate = $2, complete = $3, description = $4 WHERE id = $5`
		res, err := tx.ExecContext(ctx, updateQuery,
			edit.TaskName, nullTime(edit.DueDate), edit.Complete, edit.Description, edit.ID)
		if err != nil {
			return fmt.Errorf("update task: %w", err)
		}
		return expectAffected(res, ErrTaskNotFound)
	})
}

// Delete removes the task together with its history and comments.
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM task_history WHERE task_id = $1`, id); err != nil {
			return fmt.Errorf("delete task history: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM comments WHERE belong_task_id = $1`, id); err != nil {
			return fmt.Errorf("delete task comments: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		return expectAffected(res, ErrTaskNotFound)
	})
}

func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
