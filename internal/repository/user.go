package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/carebridge/carebridge-go/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRecord is a stored account: the public profile, its password hash, and
// the role-specific registration details kept as a JSON document.
type UserRecord struct {
	model.User
	AuthHash string
	Details  json.RawMessage
}

// UserRepository handles account persistence.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new account, minting a UUID for it. The generated ID is
// set on the record before returning.
func (r *UserRepository) Create(ctx context.Context, rec *UserRecord) error {
	rec.ID = uuid.NewString()

	query := `INSERT INTO users (id, name, email, phone, role, date_of_birth, auth_hash, details)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	details := rec.Details
	if details == nil {
		details = json.RawMessage("{}")
	}

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Name, rec.Email, rec.Phone, rec.Role, nullable(rec.DateOfBirth), rec.AuthHash, []byte(details),
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}

// GetByEmail retrieves an account by email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*UserRecord, error) {
	query := `SELECT id, name, email, phone, role, date_of_birth, auth_hash, details
	          FROM users WHERE email = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

// GetByID retrieves an account by its UUID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*UserRecord, error) {
	query := `SELECT id, name, email, phone, role, date_of_birth, auth_hash, details
	          FROM users WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) scanOne(row *sql.Row) (*UserRecord, error) {
	rec := &UserRecord{}
	var dob sql.NullString
	var details []byte

	err := row.Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Phone, &rec.Role, &dob, &rec.AuthHash, &details)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	rec.DateOfBirth = dob.String
	rec.Details = details
	return rec, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// isDuplicateEntryError checks for a MySQL duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
