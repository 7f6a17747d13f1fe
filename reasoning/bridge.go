package reasoning

import (
	"slices"

	"github.com/tailored-agentic-units/reasoning/core/protocol"
)

// Capture caches the thinking signature of an assistant message under each
// of its tool call IDs and returns how many IDs were cached. Messages from
// other roles, unsigned messages, and tool calls without an ID are skipped.
func (s *Store) Capture(msg protocol.Message) int {
	if s == nil || msg.Role != protocol.RoleAssistant {
		return 0
	}

	signature := msg.Signature()
	if signature == "" {
		return 0
	}

	var cached int
	for _, tc := range msg.ToolCalls {
		if tc.ID == "" {
			continue
		}
		s.Put(tc.ID, msg.Thinking.Content, signature)
		cached++
	}
	return cached
}

// Restore returns a copy of msgs in which every unsigned assistant message
// with tool calls carries the signature cached for its first tool call that
// has one. The second result counts the messages that were restored.
// Messages with no cached signature are copied unchanged; msgs itself is
// never modified.
func (s *Store) Restore(msgs []protocol.Message) ([]protocol.Message, int) {
	restored := slices.Clone(msgs)

	var n int
	for i, msg := range restored {
		if msg.Role != protocol.RoleAssistant || len(msg.ToolCalls) == 0 || msg.Signature() != "" {
			continue
		}

		for _, tc := range msg.ToolCalls {
			if tc.ID == "" {
				continue
			}
			if sig, ok := s.Signature(tc.ID); ok {
				thinking := protocol.Thinking{Signature: sig}
				if msg.Thinking != nil {
					thinking.Content = msg.Thinking.Content
				}
				restored[i].Thinking = &thinking
				n++
				break
			}
		}
	}
	return restored, n
}
