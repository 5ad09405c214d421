package di

import (
	"fmt"

	ginhandler "user-api/internal/adapter/gin/handler"
	"user-api/internal/adapter/repository/memory"
	"user-api/internal/config"
	"user-api/internal/usecase/user"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	UserRepo   *memory.UserRepository
	UserUC     user.Usecase
	GinHandler *ginhandler.UserHandler
}

// NewContainer creates and initializes all application dependencies.
// The user store lives for the lifetime of the container.
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	repo := memory.NewUserRepository(l)
	userUC := user.New(repo, l)
	ginHandler := ginhandler.NewUserHandler(userUC, l)

	return &Container{
		Config:     cfg,
		Logger:     l,
		UserRepo:   repo,
		UserUC:     userUC,
		GinHandler: ginHandler,
	}, nil
}
