// Package protocol defines the conversation types exchanged with model
// providers: messages, tool calls, and the thinking blocks that accompany
// tool-calling turns.
package protocol

import "encoding/json"

// Role identifies the sender of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Thinking is the reasoning block a provider attaches to an assistant turn.
// Signature is an opaque provider token that must be echoed back verbatim
// on the next request; Content is the reasoning text it signs.
type Thinking struct {
	Content   string `json:"content,omitempty"`
	Signature string `json:"signature,omitempty"`
}

// Message represents a single message in a conversation.
//
// Assistant messages that call tools carry ToolCalls and, for reasoning
// models, the Thinking block produced before the calls. Tool result
// messages carry a ToolCallID that correlates back to the request.
type Message struct {
	Role       Role       `json:"role"`
	Content    any        `json:"content"`
	Thinking   *Thinking  `json:"thinking,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
}

// NewMessage creates a Message with the given role and content.
//
//	msg := protocol.NewMessage(protocol.RoleUser, "Hello, world!")
func NewMessage(role Role, content any) Message {
	return Message{Role: role, Content: content}
}

// Signature returns the thinking signature of m, or "" when m carries none.
func (m Message) Signature() string {
	if m.Thinking == nil {
		return ""
	}
	return m.Thinking.Signature
}

// ToolCall is a tool invocation in conversation history. The flat fields
// are the canonical form; JSON uses the nested provider form
// ({id, type, function: {name, arguments}}) and decodes either.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type toolFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type nestedToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type,omitempty"`
	Function toolFunction `json:"function"`
}

func (tc ToolCall) MarshalJSON() ([]byte, error) {
	return json.Marshal(nestedToolCall{
		ID:       tc.ID,
		Type:     "function",
		Function: toolFunction{Name: tc.Name, Arguments: tc.Arguments},
	})
}

func (tc *ToolCall) UnmarshalJSON(data []byte) error {
	var nested nestedToolCall
	if err := json.Unmarshal(data, &nested); err != nil {
		return err
	}

	if nested.Function.Name != "" {
		*tc = ToolCall{
			ID:        nested.ID,
			Name:      nested.Function.Name,
			Arguments: nested.Function.Arguments,
		}
		return nil
	}

	type flat ToolCall
	return json.Unmarshal(data, (*flat)(tc))
}
