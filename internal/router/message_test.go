package router_test

import (
	"testing"

	"helpdeskbot/internal/router"
)

func TestCommandName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		text        string
		wantCommand string
		wantIs      bool
	}{
		{name: "plain command", text: "/start", wantCommand: "start", wantIs: true},
		{name: "command with mention", text: "/settings@helpdesk_bot", wantCommand: "settings", wantIs: true},
		{name: "command with arguments", text: "/support my printer is on fire", wantCommand: "support", wantIs: true},
		{name: "uppercase command", text: "/START", wantCommand: "start", wantIs: true},
		{name: "not a command", text: "hello /start", wantIs: false},
		{name: "empty text", text: "", wantIs: false},
		{name: "bare slash", text: "/", wantCommand: "", wantIs: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			msg := router.Message{Text: tc.text}
			if got := msg.IsCommand(); got != tc.wantIs {
				t.Fatalf("IsCommand(%q) = %v, want %v", tc.text, got, tc.wantIs)
			}
			if got := msg.CommandName(); got != tc.wantCommand {
				t.Errorf("CommandName(%q) = %q, want %q", tc.text, got, tc.wantCommand)
			}
		})
	}
}
