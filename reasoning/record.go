package reasoning

// Record is the thinking context cached for one tool call: the provider's
// opaque signature and the reasoning text it was issued for. A Record is
// immutable; replacing it in a Store swaps the whole value.
//
// Content is retained with the signature but is not readable through the
// store. Only the signature is needed to continue a conversation.
type Record struct {
	signature string
	content   string
}

// NewRecord creates a Record.
func NewRecord(signature, content string) Record {
	return Record{signature: signature, content: content}
}

// Signature returns the opaque signature token, unchanged.
func (r Record) Signature() string {
	return r.signature
}
