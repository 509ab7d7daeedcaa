package platform

import "time"

// Envelope types
const (
	TypeRequest  = "request"
	TypeResponse = "response"
	TypeEvent    = "event"
)

// Methods understood by the input helper
const (
	MethodDisplaysList  = "displays.list"
	MethodCursorGet     = "cursor.get"
	MethodCursorSet     = "cursor.set"
	MethodPing          = "ping"
	MethodHookSubscribe = "hook.subscribe"
	MethodHookResolve   = "hook.resolve"
)

// Events streamed on a subscribed connection
const (
	EventInputMouse      = "input.mouse"
	EventDisplaysChanged = "displays.changed"
)

// MessageEnvelope is the top-level message structure for all communications
type MessageEnvelope struct {
	Type     string    `json:"type"` // "request", "response", or "event"
	Request  *Request  `json:"request,omitempty"`
	Response *Response `json:"response,omitempty"`
	Event    *Event    `json:"event,omitempty"`
}

// Request represents an RPC request
type Request struct {
	ID     string                 `json:"id"`
	Method string                 `json:"method"`
	Params map[string]interface{} `json:"params,omitempty"`
}

// Response represents an RPC response
type Response struct {
	ID     string                 `json:"id"`
	Result map[string]interface{} `json:"result,omitempty"`
	Error  *ErrorInfo             `json:"error,omitempty"`
}

// ErrorInfo represents an error in a response
type ErrorInfo struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Event represents an asynchronous notification from the helper
type Event struct {
	EventType string                 `json:"eventType"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
}

// NewRequest creates a new request envelope
func NewRequest(id, method string, params map[string]interface{}) *MessageEnvelope {
	return &MessageEnvelope{
		Type: TypeRequest,
		Request: &Request{
			ID:     id,
			Method: method,
			Params: params,
		},
	}
}

// NewResponse creates a new response envelope
func NewResponse(id string, result map[string]interface{}) *MessageEnvelope {
	return &MessageEnvelope{
		Type:     TypeResponse,
		Response: &Response{ID: id, Result: result},
	}
}

// NewEvent creates a new event envelope
func NewEvent(eventType string, data map[string]interface{}) *MessageEnvelope {
	return &MessageEnvelope{
		Type: TypeEvent,
		Event: &Event{
			EventType: eventType,
			Data:      data,
			Timestamp: time.Now(),
		},
	}
}

// IsError returns true if the response contains an error
func (r *Response) IsError() bool {
	return r.Error != nil
}

// GetError returns the error message if present
func (r *Response) GetError() string {
	if r.Error != nil {
		return r.Error.Message
	}
	return ""
}
