package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// handlePersonRegisteredTask decodes the payload and sends the email.
// Returning an error makes Asynq mark the task failed and schedule a retry.
func (j *JobService) handlePersonRegisteredTask(ctx context.Context, t *asynq.Task) error {
	var p PersonRegisteredPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal person registered payload: %w: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", TaskPersonRegistered).
		Str("national_id", p.NationalID).
		Logger()

	logger.Info().Msg("processing person registered email task")

	if j.emailClient == nil {
		return fmt.Errorf("job handlers not initialized: %w", asynq.SkipRetry)
	}

	if err := j.emailClient.SendPersonRegisteredEmail(p.To, p.FullName, p.NationalID); err != nil {
		logger.Error().Err(err).Msg("failed to send person registered email")
		return err
	}

	logger.Info().Msg("sent person registered email")

	return nil
}
