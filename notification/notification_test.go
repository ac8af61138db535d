package notification

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminal(t *testing.T) {
	out := &bytes.Buffer{}
	terminal := Terminal{Out: out}

	terminal.Success("Mug added to cart!")
	terminal.Error("Your cart is empty!")
	terminal.Info("reloading")

	assert.Equal(t,
		"[ok] Mug added to cart!\n[error] Your cart is empty!\n[info] reloading\n",
		out.String(),
	)
}

func TestTerminalConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "y confirms", input: "y\n", expected: true},
		{name: "yes confirms", input: "yes\n", expected: true},
		{name: "uppercase confirms", input: "YES\n", expected: true},
		{name: "n declines", input: "n\n", expected: false},
		{name: "empty declines", input: "\n", expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			terminal := Terminal{Out: out, In: strings.NewReader(tt.input)}

			confirmed := terminal.Confirm("Remove this item from cart?")

			assert.Equal(t, tt.expected, confirmed)
			assert.Contains(t, out.String(), "Remove this item from cart?")
		})
	}
}

func TestCollector(t *testing.T) {
	collector := &Collector{}
	collector.Success("one")
	collector.Error("two")

	toasts := collector.Toasts()
	assert.Equal(t, []Toast{
		{Kind: "success", Message: "one"},
		{Kind: "error", Message: "two"},
	}, toasts)

	// Toasts returns a copy, the collector is not aliased
	toasts[0].Message = "mutated"
	assert.Equal(t, "one", collector.Toasts()[0].Message)
}
