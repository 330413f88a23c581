package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/authgate-dev/authgate/internal/api"
	"github.com/authgate-dev/authgate/internal/config"
	internal_errors "github.com/authgate-dev/authgate/internal/errors"
	"github.com/authgate-dev/authgate/internal/service"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth   service.AuthService
	health Pinger
	cfg    *config.Config
}

func New(auth service.AuthService, health Pinger, cfg *config.Config) *Handler {
	return &Handler{auth: auth, health: health, cfg: cfg}
}

// decode parses the request body. The credential fields stay untyped here;
// rejecting wrong types is the normalizer's job, not the JSON layer's.
func decode(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &internal_errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}

// writeError maps service errors onto the response envelope. Validation
// failures carry a message array; status-coded errors keep their message;
// anything else is an unexpected condition whose detail was already logged
// at the service boundary and must not leak to the caller.
func writeError(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case internal_errors.ValidationErrors:
		api.Write(w, http.StatusBadRequest, api.Error([]string(e)))
	case *internal_errors.ErrorWithStatusCode:
		api.Write(w, e.StatusCode, api.Error(e.Message))
	default:
		api.Write(w, http.StatusInternalServerError, api.Error("Unhandled error happened"))
	}
}
