package agent

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// Expert represent a chat with a model that can call back a Library.
type Expert struct {
	Name      string                       `json:"name"`
	ModelName string                       `json:"model_name"`
	Config    *genai.GenerateContentConfig `json:"config"`
	Library   Library
	chat      *genai.Chat
}

// Start opens the chat session of the expert.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send that answers the function
// calls of the model until it returns text.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (string, error) {
	if e.chat == nil {
		return "", fmt.Errorf("expert %s is not started", e.Name)
	}
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from expert %s", e.Name)
	}

	var calls []*genai.Part
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.FunctionCall == nil {
			continue
		}
		if e.Library == nil {
			return "", fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
		}
		logrus.WithFields(logrus.Fields{"expert": e.Name, "function": p.FunctionCall.Name}).Debug("function call")
		calls = append(calls, &genai.Part{FunctionResponse: e.Library(ctx, p.FunctionCall)})
	}
	if len(calls) > 0 {
		// Ask again with the responses until we have a real answer.
		return e.Ask(ctx, calls...)
	}
	return responseText(resp), nil
}
