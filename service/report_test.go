package service

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	assert.Equal(t, "Summarize: a,\nb,\nc", BuildPrompt("Summarize: ", []string{"a", "b", "c"}))
	assert.Equal(t, "Summarize: ", BuildPrompt("Summarize: ", []string{}))
	assert.Equal(t, "Summarize: ", BuildPrompt("Summarize: ", nil))
	assert.Equal(t, "p: a,\n,\nb", BuildPrompt("p: ", []string{"a", "", "b"}))
}

func TestGenerate(t *testing.T) {
	client := &stubCompleter{content: "Report body"}
	report, err := NewGenerator(client, "gpt-x", "Summarize: ").Generate(context.Background(), []string{"http://x/1", "http://x/2"})
	require.NoError(t, err)
	assert.Equal(t, "Report body", report)

	require.Len(t, client.requests, 1)
	request := client.requests[0]
	assert.Equal(t, "gpt-x", request.Model)
	require.Len(t, request.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, request.Messages[0].Role)
	assert.Equal(t, SystemPrompt, request.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, request.Messages[1].Role)
	assert.Equal(t, "Summarize: http://x/1,\nhttp://x/2", request.Messages[1].Content)
}

func TestGenerate_ClientError(t *testing.T) {
	client := &stubCompleter{err: errors.New("quota exceeded")}
	_, err := NewGenerator(client, "gpt-x", "p").Generate(context.Background(), nil)
	assert.ErrorContains(t, err, "quota exceeded")
	assert.Len(t, client.requests, 1)
}

func TestGenerate_NoChoices(t *testing.T) {
	_, err := NewGenerator(&stubCompleter{noChoice: true}, "gpt-x", "p").Generate(context.Background(), nil)
	assert.Error(t, err)
}

func TestGenerate_NotConfigured(t *testing.T) {
	client := &stubCompleter{content: "x"}
	_, err := NewGenerator(client, "", "p").Generate(context.Background(), nil)
	assert.Error(t, err)
	_, err = NewGenerator(client, "gpt-x", "").Generate(context.Background(), nil)
	assert.Error(t, err)
	assert.Empty(t, client.requests)
}
