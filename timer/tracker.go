package timer

import "time"

// Tracker accumulates time spent on a task in whole minutes. A session
// runs from Start to Pause or Stop; partial minutes are truncated, so a
// session shorter than a minute contributes nothing.
type Tracker struct {
	prior        int
	sessionStart time.Time
	running      bool
}

// NewTracker returns a stopped tracker seeded with the minutes already
// recorded on the task.
func NewTracker(priorMinutes int) *Tracker {
	if priorMinutes < 0 {
		priorMinutes = 0
	}
	return &Tracker{prior: priorMinutes}
}

// Running reports whether a session is in progress.
func (t *Tracker) Running() bool { return t.running }

// Start begins a session at the given time. Running is a no-op.
func (t *Tracker) Start(now time.Time) {
	if t.running {
		return
	}
	t.running = true
	t.sessionStart = now
}

// Pause ends the session and folds its whole minutes into the total.
// It returns the new total for the caller to persist. Returns ok=false
// when no session is running.
func (t *Tracker) Pause(now time.Time) (total int, ok bool) {
	if !t.running {
		return t.prior, false
	}
	t.prior += sessionMinutes(t.sessionStart, now)
	t.running = false
	t.sessionStart = time.Time{}
	return t.prior, true
}

// Stop ends the session exactly like Pause. The separate name mirrors
// the two controls on the tracker UI.
func (t *Tracker) Stop(now time.Time) (total int, ok bool) {
	return t.Pause(now)
}

// Elapsed returns the minutes to display: the persisted total plus the
// whole minutes of the running session, if any. Display only; nothing is
// persisted until Pause or Stop.
func (t *Tracker) Elapsed(now time.Time) int {
	if !t.running {
		return t.prior
	}
	return t.prior + sessionMinutes(t.sessionStart, now)
}

func sessionMinutes(start, now time.Time) int {
	elapsed := now.Sub(start)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / time.Minute)
}
