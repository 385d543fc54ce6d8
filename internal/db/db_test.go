package db

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

func TestConnect(t *testing.T) {
	tests := []struct {
		name          string
		driverName    string
		dsn           string
		expectedError bool
	}{
		{
			name:          "Successful connection with SQLite",
			driverName:    "sqlite3",
			dsn:           ":memory:",
			expectedError: false,
		},
		{
			name:          "Failed connection with invalid DSN",
			driverName:    "sqlite3",
			dsn:           "file::memory:?mode=invalid",
			expectedError: true,
		},
		{
			name:          "Unknown driver",
			driverName:    "nope",
			dsn:           "whatever",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Connect(tt.driverName, tt.dsn, 10, 5)

			if tt.expectedError {
				if err == nil {
					t.Error("Expected error, got none")
				}
				if conn != nil {
					t.Error("Expected nil connection on error")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if conn == nil {
					t.Error("Expected non-nil connection")
				} else {
					if conn.Stats().MaxOpenConnections != 10 {
						t.Errorf("Expected MaxOpenConnections to be 10, got %d", conn.Stats().MaxOpenConnections)
					}

					for i := 0; i < 10; i++ {
						rows, err := conn.Query("SELECT 1")
						if err != nil {
							t.Errorf("Query failed: %v", err)
							continue
						}
						rows.Close()
					}
					time.Sleep(100 * time.Millisecond)
					if conn.Stats().Idle > 5 {
						t.Errorf("Expected at most 5 idle connections, got %d", conn.Stats().Idle)
					}
				}
			}

			if conn != nil {
				conn.Close()
			}
		})
	}
}

func TestIsConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"lib/pq foreign key", &pq.Error{Code: "23503"}, true},
		{"lib/pq unique wrapped", fmt.Errorf("insert user: %w", &pq.Error{Code: "23505"}), true},
		{"lib/pq syntax error", &pq.Error{Code: "42601"}, false},
		{"pgx foreign key", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, true},
		{"pgx undefined table", &pgconn.PgError{Code: pgerrcode.UndefinedTable}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConstraintViolation(tt.err); got != tt.want {
				t.Errorf("IsConstraintViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
