// Package tasks implements scheduled background tasks for the helpdesk bot
// and their registration.
package tasks

import (
	"log/slog"

	"helpdeskbot/internal/config"
	"helpdeskbot/internal/store"
)

// TaskDeps contains the dependencies available to scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Store  store.Store
	Config *config.Config
}
