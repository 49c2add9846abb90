package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-shop-front/internal/logger"
)

func newTestBlobRepo(t *testing.T) (*blobRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &blobRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestBlobRead_Success(t *testing.T) {
	repo, mock, db := newTestBlobRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[{"id":1}]`))
	mock.ExpectQuery("SELECT value FROM blobs").
		WithArgs("products").
		WillReturnRows(rows)

	value, err := repo.Read(context.Background(), "products")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(value) != `[{"id":1}]` {
		t.Errorf("unexpected value: %s", value)
	}
}

func TestBlobRead_KeyNotFound(t *testing.T) {
	repo, mock, db := newTestBlobRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM blobs").
		WithArgs("cart").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Read(context.Background(), "cart")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestBlobRead_QueryError(t *testing.T) {
	repo, mock, db := newTestBlobRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM blobs").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Read(context.Background(), "users")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestBlobWrite_Success(t *testing.T) {
	repo, mock, db := newTestBlobRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO blobs").
		WithArgs("cart", []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Write(context.Background(), "cart", []byte(`[]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBlobWrite_NoRowsAffected(t *testing.T) {
	repo, mock, db := newTestBlobRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO blobs").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Write(context.Background(), "cart", []byte(`[]`))
	if !errors.Is(err, ErrBlobNotSaved) {
		t.Fatalf("expected ErrBlobNotSaved, got %v", err)
	}
}

func TestBlobWrite_ExecError(t *testing.T) {
	repo, mock, db := newTestBlobRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO blobs").
		WillReturnError(errors.New("database is locked"))

	err := repo.Write(context.Background(), "orders", []byte(`[]`))
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestBlobRemove_Success(t *testing.T) {
	repo, mock, db := newTestBlobRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM blobs").
		WithArgs("current-session-user").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Remove(context.Background(), "current-session-user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBlobRemove_AbsentKeyIsNoOp(t *testing.T) {
	repo, mock, db := newTestBlobRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM blobs").
		WithArgs("current-session-user").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Remove(context.Background(), "current-session-user")
	if err != nil {
		t.Fatalf("expected no error on absent key, got %v", err)
	}
}

func TestBlobClear_Success(t *testing.T) {
	repo, mock, db := newTestBlobRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM blobs").
		WillReturnResult(sqlmock.NewResult(0, 5))

	err := repo.Clear(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBlobClear_ExecError(t *testing.T) {
	repo, mock, db := newTestBlobRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM blobs").
		WillReturnError(errors.New("database is locked"))

	err := repo.Clear(context.Background())
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
