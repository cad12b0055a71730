package chatbot

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a study assistant inside an aptitude-test app. " +
	"Answer briefly and stay on the topics of aptitude preparation, quiz " +
	"categories, and test-taking strategy."

// OpenAIOracle answers via a chat-completion call. Stateless: each query is
// its own single-turn conversation.
type OpenAIOracle struct {
	client *openai.Client
	model  string
}

func NewOpenAIOracle(apiKey, model string) (*OpenAIOracle, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key required")
	}
	return &OpenAIOracle{client: openai.NewClient(apiKey), model: model}, nil
}

func (o *OpenAIOracle) Respond(ctx context.Context, query string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}
