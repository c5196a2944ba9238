package server

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"
)

// Level is the severity of a console message
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// ConsoleMessage is one line of a render's log, shown in the browser console
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// renderConsole collects the log output of a single render. It implements
// core.Logger so the raytracer can report progress into it; the websocket
// writer drains Messages. Sends never block: when the buffer is full the
// message is only written to the server log and counted as dropped.
type renderConsole struct {
	renderID string
	messages chan ConsoleMessage
	dropped  atomic.Int64
}

func newRenderConsole(renderID string, capacity int) *renderConsole {
	return &renderConsole{
		renderID: renderID,
		messages: make(chan ConsoleMessage, capacity),
	}
}

// Printf logs at info level
func (c *renderConsole) Printf(format string, args ...interface{}) {
	c.log(LevelInfo, format, args...)
}

// Warnf logs at warning level
func (c *renderConsole) Warnf(format string, args ...interface{}) {
	c.log(LevelWarning, format, args...)
}

// Errorf logs at error level
func (c *renderConsole) Errorf(format string, args ...interface{}) {
	c.log(LevelError, format, args...)
}

// Messages is the stream the websocket writer forwards to the client
func (c *renderConsole) Messages() <-chan ConsoleMessage {
	return c.messages
}

// Dropped returns how many messages did not fit in the buffer
func (c *renderConsole) Dropped() int64 {
	return c.dropped.Load()
}

func (c *renderConsole) log(level Level, format string, args ...interface{}) {
	// renderer messages end in a newline; the browser console adds its own
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	log.Printf("[%s] %s: %s", c.renderID, level, message)

	select {
	case c.messages <- ConsoleMessage{
		RenderID:  c.renderID,
		Level:     level,
		Message:   message,
		Timestamp: time.Now(),
	}:
	default:
		c.dropped.Add(1)
	}
}
