package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/authgate-dev/authgate/internal/domain"
	internal_errors "github.com/authgate-dev/authgate/internal/errors"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint
// violation. See https://www.postgresql.org/docs/current/errcodes-appendix.html
const uniqueViolation = "23505"

// =========================================================================
// Public Methods (satisfy the service.AuthStorage interface)
// =========================================================================

// CreateUser inserts a new user record inside a transaction. A uniqueness
// violation is translated into a typed ConflictError naming the offending
// field; either the record is fully created or nothing is.
func (s *Storage) CreateUser(user domain.User) (domain.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var created domain.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		created, err = s.createUser(tx, user)
		return err
	})
	return created, err
}

// UserByEmail fetches a user by email. It is read-only and uses the main
// connection pool directly.
func (s *Storage) UserByEmail(email string) (domain.User, error) {
	return s.userByEmail(s.db, email)
}

// =========================================================================
// Internal Methods (Core Database Logic)
// These methods accept a Querier and are transaction-agnostic.
// =========================================================================

func (s *Storage) createUser(q Querier, user domain.User) (domain.User, error) {
	created := user
	err := q.QueryRow(
		"INSERT INTO users(email, username, password_hash) VALUES($1, $2, $3) RETURNING id, created_at",
		user.Email, user.Username, user.PassHash,
	).Scan(&created.Id, &created.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.User{}, &internal_errors.ConflictError{Field: conflictField(pqErr.Constraint)}
		}
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return created, nil
}

func (s *Storage) userByEmail(q Querier, email string) (domain.User, error) {
	var user domain.User
	err := q.QueryRow(
		"SELECT id, email, username, password_hash, created_at FROM users WHERE email = $1",
		email,
	).Scan(&user.Id, &user.Email, &user.Username, &user.PassHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

// conflictField maps a violated constraint name to the unique field it
// covers. Attribution defaults to email when the constraint name is
// ambiguous.
func conflictField(constraint string) string {
	if strings.Contains(constraint, "username") {
		return "username"
	}
	return "email"
}
