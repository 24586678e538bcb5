package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/deppfellow/persons-api/internal/lib/email"
	"github.com/deppfellow/persons-api/internal/model"
	"github.com/hibiken/asynq"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	requests []*resend.SendEmailRequest
	err      error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.requests = append(f.requests, params)
	if f.err != nil {
		return nil, f.err
	}
	return &resend.SendEmailResponse{Id: "1"}, nil
}

func newTestJobService(sender email.Sender) *JobService {
	logger := zerolog.Nop()
	return &JobService{
		logger:      &logger,
		emailClient: email.NewClientWithSender(sender, email.DefaultFrom, &logger),
	}
}

func TestNewPersonRegisteredTask(t *testing.T) {
	task, err := NewPersonRegisteredTask(&model.Person{
		FullName:   "Ana Torres",
		Email:      "ana@example.com",
		NationalID: "0102030405",
	})
	require.NoError(t, err)

	assert.Equal(t, TaskPersonRegistered, task.Type())

	var payload PersonRegisteredPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, PersonRegisteredPayload{
		To:         "ana@example.com",
		FullName:   "Ana Torres",
		NationalID: "0102030405",
	}, payload)
}

func TestHandlePersonRegisteredTaskSendsEmail(t *testing.T) {
	sender := &fakeSender{}
	j := newTestJobService(sender)

	task, err := NewPersonRegisteredTask(&model.Person{
		FullName:   "Ana Torres",
		Email:      "ana@example.com",
		NationalID: "0102030405",
	})
	require.NoError(t, err)

	require.NoError(t, j.handlePersonRegisteredTask(context.Background(), task))
	require.Len(t, sender.requests, 1)
	assert.Equal(t, []string{"ana@example.com"}, sender.requests[0].To)
}

func TestHandlePersonRegisteredTaskRetriesOnSendFailure(t *testing.T) {
	j := newTestJobService(&fakeSender{err: errors.New("rate limited")})

	task, err := NewPersonRegisteredTask(&model.Person{Email: "ana@example.com"})
	require.NoError(t, err)

	err = j.handlePersonRegisteredTask(context.Background(), task)
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestHandlePersonRegisteredTaskBadPayload(t *testing.T) {
	j := newTestJobService(&fakeSender{})

	err := j.handlePersonRegisteredTask(context.Background(), asynq.NewTask(TaskPersonRegistered, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
