package protocol

import (
	"slices"

	"github.com/google/uuid"
)

// ToolCallIDPrefix prefixes identifiers generated by NewToolCallID.
const ToolCallIDPrefix = "call_"

// NewToolCallID returns a unique tool call identifier. Some providers emit
// function calls without IDs; those calls need one before their thinking
// signature can be correlated with the follow-up request.
func NewToolCallID() string {
	return ToolCallIDPrefix + uuid.Must(uuid.NewV7()).String()
}

// EnsureToolCallIDs returns a copy of msg in which every tool call without
// an ID has been assigned one. The input message is not modified.
func EnsureToolCallIDs(msg Message) Message {
	if len(msg.ToolCalls) == 0 {
		return msg
	}

	msg.ToolCalls = slices.Clone(msg.ToolCalls)
	for i := range msg.ToolCalls {
		if msg.ToolCalls[i].ID == "" {
			msg.ToolCalls[i].ID = NewToolCallID()
		}
	}
	return msg
}
