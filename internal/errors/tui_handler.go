package errors

import (
	"sync"
	"time"
)

// TUIHandler collects reports for the workbench status line instead of
// printing them; an alternate-screen program owns the terminal, so writes
// to stdout or stderr would corrupt the view.
type TUIHandler struct {
	mu       sync.RWMutex
	messages []Message
	onReport func(msg Message)
}

// Message is one collected report.
type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
}

type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

// NewTUIHandler creates a handler that stores every report and, when
// onReport is non-nil, pushes each one to the UI as it arrives.
func NewTUIHandler(onReport func(msg Message)) *TUIHandler {
	return &TUIHandler{
		messages: make([]Message, 0),
		onReport: onReport,
	}
}

func (h *TUIHandler) Error(msg string) {
	h.addMessage(msg, MessageTypeError)
}

func (h *TUIHandler) Warning(msg string) {
	h.addMessage(msg, MessageTypeWarning)
}

func (h *TUIHandler) Info(msg string) {
	h.addMessage(msg, MessageTypeInfo)
}

func (h *TUIHandler) Success(msg string) {
	h.addMessage(msg, MessageTypeSuccess)
}

func (h *TUIHandler) addMessage(msg string, msgType MessageType) {
	h.mu.Lock()
	defer h.mu.Unlock()

	message := Message{
		Text:      msg,
		Type:      msgType,
		Timestamp: time.Now(),
	}
	h.messages = append(h.messages, message)

	if h.onReport != nil {
		h.onReport(message)
	}
}

// GetLatest returns the most recent report, if any.
func (h *TUIHandler) GetLatest() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.messages) == 0 {
		return Message{}, false
	}
	return h.messages[len(h.messages)-1], true
}

// Clear drops all collected reports.
func (h *TUIHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = make([]Message, 0)
}

// GetAll returns a copy of every collected report, oldest first.
func (h *TUIHandler) GetAll() []Message {
	h.mu.RLock()
	defer h.mu.RUnlock()

	copied := make([]Message, len(h.messages))
	copy(copied, h.messages)
	return copied
}
