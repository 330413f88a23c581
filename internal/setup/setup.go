package setup

import (
	"github.com/authgate-dev/authgate/internal/config"
	"github.com/authgate-dev/authgate/internal/handler"
	"github.com/authgate-dev/authgate/internal/hasher"
	"github.com/authgate-dev/authgate/internal/jwt"
	"github.com/authgate-dev/authgate/internal/service"
	"github.com/authgate-dev/authgate/internal/storage/pg"
)

// Dependencies holds all initialized application dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Jwt     jwt.JwtService
	Config  *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	auth := service.NewAuth(storage, hasher.New(cfg.Public.BcryptCost), jwtService)

	h := handler.New(auth, storage, cfg)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Jwt:     jwtService,
		Config:  cfg,
	}, nil
}
