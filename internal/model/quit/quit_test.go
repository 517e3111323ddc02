package quit

import (
	"strings"
	"testing"
	"time"
)

func TestTimesOut(t *testing.T) {
	m := New(0)
	m.quitUntil = time.Now().Add(-time.Second)
	_, cmd := m.Update(TickMsg(time.Now()))
	if _, ok := cmd().(TimedoutMsg); !ok {
		t.Fatalf("expected TimedoutMsg after the quit period")
	}
}

func TestView(t *testing.T) {
	tests := []struct {
		solved int
		want   string
	}{
		{0, "still out there"},
		{1, "One maze solved"},
		{3, "3 mazes solved"},
	}
	for _, tt := range tests {
		if got := New(tt.solved).View(); !strings.Contains(got, tt.want) {
			t.Errorf("View() with %d solved = %q; want %q", tt.solved, got, tt.want)
		}
	}
}
