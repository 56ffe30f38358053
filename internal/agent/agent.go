package agent

import (
	"context"
	"encoding/json"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// maxToolRounds caps how many times the model may come back for more
	// tool results before we bail with the fallback reply.
	maxToolRounds = 3

	fallbackReply = "I didn't catch that. Could you please repeat your question?"
)

// ChatClient is the slice of the OpenAI client the agent needs.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Agent runs the tool-calling conversation loop: the model picks a tool,
// the toolbox executes it, the result goes back as a tool message, until
// the model answers in plain text.
type Agent struct {
	chat        ChatClient
	model       string
	temperature float32
	tools       *Toolbox
}

func New(chat ChatClient, model string, tools *Toolbox) *Agent {
	return &Agent{
		chat:        chat,
		model:       model,
		temperature: 0.4,
		tools:       tools,
	}
}

// NewConversation seeds a conversation with the system prompt.
func NewConversation() []openai.ChatCompletionMessage {
	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
	}
}

// Reply appends the user's text to the conversation, resolves any tool
// calls, and returns the agent's final reply plus the grown conversation
// so callers can keep history across rounds.
func (a *Agent) Reply(
	ctx context.Context,
	conversation []openai.ChatCompletionMessage,
	userText string,
) (string, []openai.ChatCompletionMessage, error) {

	conversation = append(conversation, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userText,
	})

	toolRounds := 0

	for {
		resp, err := a.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       a.model,
			Messages:    conversation,
			Temperature: a.temperature,
			Tools:       ToolDefinitions(),
		})
		if err != nil {
			return "", conversation, err
		}
		if len(resp.Choices) == 0 {
			return "", conversation, errors.New("empty model response")
		}

		msg := resp.Choices[0].Message
		conversation = append(conversation, openai.ChatCompletionMessage{
			Role:      msg.Role,
			Content:   msg.Content,
			ToolCalls: msg.ToolCalls,
		})

		if len(msg.ToolCalls) > 0 {
			toolRounds++
			if toolRounds > maxToolRounds {
				return fallbackReply, conversation, nil
			}

			for _, call := range msg.ToolCalls {
				result := a.tools.Dispatch(call.Function.Name, json.RawMessage(call.Function.Arguments))
				payload, err := json.Marshal(result)
				if err != nil {
					payload = []byte(`{"error":"tool result encoding failed"}`)
				}
				conversation = append(conversation, openai.ChatCompletionMessage{
					Role:       openai.ChatMessageRoleTool,
					Content:    string(payload),
					ToolCallID: call.ID,
				})
			}
			continue
		}

		if msg.Content == "" {
			return fallbackReply, conversation, nil
		}
		return msg.Content, conversation, nil
	}
}
