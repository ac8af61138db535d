package notification

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Notifier is the transient feedback surface: every controller reports success
// and failure through it, the way the original UI raised toasts.
type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
}

// Prompter blocks for a yes/no confirmation before destructive actions.
type Prompter interface {
	Confirm(message string) bool
}

// Terminal writes toasts as single lines and reads confirmations from in.
type Terminal struct {
	Out io.Writer
	In  io.Reader
}

func (t Terminal) Success(message string) { fmt.Fprintf(t.Out, "[ok] %s\n", message) }
func (t Terminal) Error(message string)   { fmt.Fprintf(t.Out, "[error] %s\n", message) }
func (t Terminal) Info(message string)    { fmt.Fprintf(t.Out, "[info] %s\n", message) }

func (t Terminal) Confirm(message string) bool {
	fmt.Fprintf(t.Out, "%s [y/N]: ", message)
	reader := bufio.NewReader(t.In)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// Confirmed answers yes to every prompt. The web face uses it because the
// confirmation already happened in the browser before the form was submitted;
// the CLI uses it behind --yes.
type Confirmed struct{}

func (Confirmed) Confirm(string) bool { return true }

// Toast is one recorded notification.
type Toast struct {
	Kind    string
	Message string
}

// Collector accumulates toasts raised during one action so the caller can
// render them afterwards. Also used as the recording fake in tests.
type Collector struct {
	mu     sync.Mutex
	toasts []Toast
}

func (r *Collector) Success(message string) { r.append("success", message) }
func (r *Collector) Error(message string)   { r.append("error", message) }
func (r *Collector) Info(message string)    { r.append("info", message) }

func (r *Collector) append(kind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, Toast{Kind: kind, Message: message})
}

func (r *Collector) Toasts() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Toast, len(r.toasts))
	copy(out, r.toasts)
	return out
}
