package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/deppfellow/persons-api/internal/model"
	"github.com/hibiken/asynq"
)

const (
	// TaskPersonRegistered is the job type name stored in Redis.
	TaskPersonRegistered = "email:person_registered"
)

// PersonRegisteredPayload is the JSON payload of the registration email task.
type PersonRegisteredPayload struct {
	To         string `json:"to"`
	FullName   string `json:"full_name"`
	NationalID string `json:"national_id"`
}

// NewPersonRegisteredTask constructs an Asynq task for the registration email.
//
// Task options:
//   - MaxRetry(3): retry up to 3 times on failure
//   - Queue("default")
//   - Timeout(30s): kill the task if the handler runs longer
func NewPersonRegisteredTask(p *model.Person) (*asynq.Task, error) {
	payload, err := json.Marshal(PersonRegisteredPayload{
		To:         p.Email,
		FullName:   p.FullName,
		NationalID: p.NationalID,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskPersonRegistered,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NotifyPersonRegistered enqueues the registration email for p.
func (j *JobService) NotifyPersonRegistered(ctx context.Context, p *model.Person) error {
	task, err := NewPersonRegisteredTask(p)
	if err != nil {
		return err
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return err
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Str("national_id", p.NationalID).
		Msg("enqueued person registered email")

	return nil
}
