package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/authgate-dev/authgate/internal/domain"
	internal_errors "github.com/authgate-dev/authgate/internal/errors"
	"github.com/authgate-dev/authgate/internal/logger"
	"github.com/authgate-dev/authgate/internal/validation"
)

// Deliberately identical for an unknown email and a wrong password so the
// response never discloses which part of the credentials failed.
const invalidCredentialsMessage = "No user with your credentials found"

type AuthService interface {
	Login(raw domain.RawCredentials) (domain.User, string, error)
	Register(raw domain.RawCredentials) (domain.User, error)
}

type AuthStorage interface {
	UserByEmail(email string) (domain.User, error)
	CreateUser(user domain.User) (domain.User, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

type Auth struct {
	storage AuthStorage
	hasher  PasswordHasher
	jwt     Jwt
}

func NewAuth(storage AuthStorage, hasher PasswordHasher, jwt Jwt) *Auth {
	return &Auth{
		storage: storage,
		hasher:  hasher,
		jwt:     jwt,
	}
}

// Login authenticates stored credentials and issues a session token.
// Validation failures come back as an ordered ValidationErrors value; wrong
// email and wrong password are indistinguishable to the caller. The returned
// user projection never carries the password hash.
func (a *Auth) Login(raw domain.RawCredentials) (domain.User, string, error) {
	creds, fieldErrs := validation.NormalizeLogin(raw)
	if len(fieldErrs) > 0 {
		return domain.User{}, "", internal_errors.ValidationErrors(validation.Messages(fieldErrs))
	}

	user, err := a.storage.UserByEmail(creds.Email)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			// to not leak existing users
			return domain.User{}, "", &internal_errors.ErrorWithStatusCode{
				Message:    invalidCredentialsMessage,
				StatusCode: http.StatusUnauthorized,
			}
		}
		logger.Log.Error("user lookup failed", "error", err)
		return domain.User{}, "", err
	}

	if !a.hasher.Verify(creds.Password, user.PassHash) {
		return domain.User{}, "", &internal_errors.ErrorWithStatusCode{
			Message:    invalidCredentialsMessage,
			StatusCode: http.StatusUnauthorized,
		}
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return domain.User{}, "", err
	}

	return user.Public(), token, nil
}

// Register creates a new user record from raw credentials. The plaintext
// password exists only long enough to be hashed. Uniqueness conflicts
// reported by the store are classified by offending field; the created user
// is returned without the password hash.
func (a *Auth) Register(raw domain.RawCredentials) (domain.User, error) {
	creds, fieldErrs := validation.NormalizeRegister(raw)
	if len(fieldErrs) > 0 {
		return domain.User{}, internal_errors.ValidationErrors(validation.Messages(fieldErrs))
	}

	passHash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, err
	}

	created, err := a.storage.CreateUser(domain.User{
		Email:    creds.Email,
		Username: creds.Username,
		PassHash: passHash,
	})
	if err != nil {
		var conflict *internal_errors.ConflictError
		if errors.As(err, &conflict) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{
				Message:    fmt.Sprintf("User with this %s already existing", conflict.Field),
				StatusCode: http.StatusConflict,
			}
		}
		logger.Log.Error("failed to create user", "error", err)
		return domain.User{}, err
	}

	return created.Public(), nil
}
