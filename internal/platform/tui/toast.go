package tui

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyhop/internal/core"
)

const (
	toastTTL     = 3 * time.Second
	maxToasts    = 3
	toastMargin  = 1
	toastMaxText = 36
)

// Toasts is a core.Notifier that buffers notifications until the model
// drains them after a step.
type Toasts struct {
	mu      sync.Mutex
	pending []core.Notification
}

var _ core.Notifier = (*Toasts)(nil)

// NewToasts creates an empty buffer.
func NewToasts() *Toasts {
	return &Toasts{}
}

// Notify queues a notification.
func (t *Toasts) Notify(n core.Notification) {
	t.mu.Lock()
	t.pending = append(t.pending, n)
	t.mu.Unlock()
}

// Drain returns and clears the queued notifications.
func (t *Toasts) Drain() []core.Notification {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.pending
	t.pending = nil
	return out
}

// toastSeq numbers toasts process-wide, so an expiry left over from an
// earlier game can never match a toast of the next one.
var toastSeq atomic.Int64

func nextToastID() int64 {
	return toastSeq.Add(1)
}

// toast is a visible notification.
type toast struct {
	id int64
	n  core.Notification
}

// toastExpiredMsg removes a toast by id.
type toastExpiredMsg struct{ id int64 }

func expireToast(id int64) tea.Cmd {
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// removeToast drops the toast with id. Unknown ids are ignored, so an
// expiry that races with eviction is harmless.
func removeToast(list []toast, id int64) []toast {
	for i, t := range list {
		if t.id == id {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}

// drawToasts stacks toasts in the top-right corner of dst.
func drawToasts(dst *core.Screen, list []toast) {
	y := toastMargin
	for _, t := range list {
		title := truncate(t.n.Title, toastMaxText)
		body := truncate(t.n.Body, toastMaxText)
		w := core.Max(len([]rune(title)), len([]rune(body))) + 4
		h := 3
		if body != "" {
			h = 4
		}
		x := dst.Width() - w - toastMargin
		if x < 0 || y+h > dst.Height() {
			return
		}

		c := toastColor(t.n.Kind)
		r := core.NewRect(x, y, w, h)
		dst.DrawRect(r, ' ', core.ColorDefault)
		dst.DrawBox(r, c)
		dst.DrawTextColor(x+2, y+1, title, c)
		if body != "" {
			dst.DrawTextColor(x+2, y+2, body, core.ColorWhite)
		}
		y += h
	}
}

func toastColor(k core.NotificationKind) core.Color {
	switch k {
	case core.NotifyAchievement:
		return core.ColorGold
	case core.NotifyHighScore:
		return core.ColorBrightMagenta
	default:
		return core.ColorBrightCyan
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
