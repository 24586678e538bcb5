package email

import (
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (s *recordingSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.sent = append(s.sent, params)
	return &resend.SendEmailResponse{Id: "test"}, nil
}

func TestRenderEscapesData(t *testing.T) {
	html, err := Render(TemplatePersonRegistered, map[string]string{
		"FullName":   "<script>alert(1)</script>",
		"NationalID": "0102030405",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "0102030405")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render(Template("missing"), nil)
	assert.Error(t, err)
}

func TestSendPersonRegisteredEmail(t *testing.T) {
	logger := zerolog.Nop()
	sender := &recordingSender{}
	client := NewClientWithSender(sender, "noreply@example.com", &logger)

	require.NoError(t, client.SendPersonRegisteredEmail("ana@example.com", "Ana Torres", "0102030405"))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"ana@example.com"}, sender.sent[0].To)
	assert.Equal(t, "Persons API <noreply@example.com>", sender.sent[0].From)
	assert.Contains(t, sender.sent[0].Html, "Ana Torres")
}

func TestSendWithoutSenderIsNoop(t *testing.T) {
	logger := zerolog.Nop()
	client := NewClientWithSender(nil, DefaultFrom, &logger)

	assert.NoError(t, client.SendPersonRegisteredEmail("ana@example.com", "Ana Torres", "0102030405"))
}
