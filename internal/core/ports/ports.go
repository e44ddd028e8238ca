package ports

import (
	"context"

	"github.com/quarklabs/taskline/internal/core/models"
)

type TaskExecutor interface {
	ExecuteTask(ctx context.Context, task *models.Task) (*models.TaskResult, error)
}

type ResultEmitter interface {
	Emit(result *models.TaskResult) error
}
