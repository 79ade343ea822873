package store

import "testing"

// The persisted layout is part of the external contract: plain string keys
// shared with any other tool inspecting the backend.
func TestKeyLayout(t *testing.T) {
	t.Parallel()

	if got := ticketKey(555); got != "ticket:555" {
		t.Errorf("ticketKey(555) = %q, want ticket:555", got)
	}
	if got := langKey(100); got != "lang:100" {
		t.Errorf("langKey(100) = %q, want lang:100", got)
	}
	if got := langKey(-100200300); got != "lang:-100200300" {
		t.Errorf("langKey(-100200300) = %q, want lang:-100200300", got)
	}
}
