// Package timer implements the focus countdown and the manual time
// tracker. Both are plain state machines advanced by their caller: the
// TUI delivers one Tick per second, tests deliver ticks directly. Neither
// machine touches the task store; callers persist the results through the
// store's public operations, so a tick that outlives its task is a no-op.
package timer

// Default countdown lengths in seconds.
const (
	DefaultWorkSeconds = 1500
	BreakSeconds       = 300
)

// FocusStatus represents the run state of a focus countdown.
type FocusStatus string

const (
	// FocusIdle indicates the countdown has not started or was reset.
	FocusIdle FocusStatus = "idle"

	// FocusRunning indicates the countdown is ticking.
	FocusRunning FocusStatus = "running"

	// FocusPaused indicates the countdown is frozen mid-phase.
	FocusPaused FocusStatus = "paused"
)

// FocusPhase represents which interval the countdown is in.
type FocusPhase string

const (
	// PhaseWork is the focused work interval.
	PhaseWork FocusPhase = "work"

	// PhaseBreak is the rest interval that follows work.
	PhaseBreak FocusPhase = "break"
)

// FocusEvent is the outcome of a single tick.
type FocusEvent int

const (
	// FocusNone means the tick only decremented the countdown.
	FocusNone FocusEvent = iota

	// FocusBreakStarted means the work interval ended and the break began.
	FocusBreakStarted

	// FocusCompleted means the break ended; the session is over and the
	// caller should mark the task completed.
	FocusCompleted
)

// Focus is a work/break countdown for a single task.
type Focus struct {
	status    FocusStatus
	phase     FocusPhase
	remaining int
	initial   int
	breakLen  int
}

// NewFocus returns an idle countdown sized from the task's estimate in
// minutes. A zero or negative estimate uses the default work interval.
func NewFocus(estimatedMinutes int) *Focus {
	initial := DefaultWorkSeconds
	if estimatedMinutes > 0 {
		initial = estimatedMinutes * 60
	}
	return NewFocusIntervals(initial, BreakSeconds)
}

// NewFocusIntervals returns an idle countdown with explicit work and break
// lengths in seconds. Non-positive values use the defaults.
func NewFocusIntervals(workSeconds, breakSeconds int) *Focus {
	if workSeconds <= 0 {
		workSeconds = DefaultWorkSeconds
	}
	if breakSeconds <= 0 {
		breakSeconds = BreakSeconds
	}
	return &Focus{
		status:    FocusIdle,
		phase:     PhaseWork,
		remaining: workSeconds,
		initial:   workSeconds,
		breakLen:  breakSeconds,
	}
}

// Status returns the current run state.
func (f *Focus) Status() FocusStatus { return f.status }

// Phase returns the current interval.
func (f *Focus) Phase() FocusPhase { return f.phase }

// Remaining returns the seconds left in the current interval.
func (f *Focus) Remaining() int { return f.remaining }

// PhaseTotal returns the full length of the current interval in seconds.
func (f *Focus) PhaseTotal() int {
	if f.phase == PhaseBreak {
		return f.breakLen
	}
	return f.initial
}

// Running reports whether ticks currently advance the countdown.
func (f *Focus) Running() bool { return f.status == FocusRunning }

// Start begins or resumes the countdown. Running is a no-op.
func (f *Focus) Start() {
	if f.status == FocusRunning {
		return
	}
	f.status = FocusRunning
}

// Pause freezes the countdown mid-phase. Only running timers pause.
func (f *Focus) Pause() {
	if f.status != FocusRunning {
		return
	}
	f.status = FocusPaused
}

// Reset returns the countdown to idle at the start of the work phase.
func (f *Focus) Reset() {
	f.status = FocusIdle
	f.phase = PhaseWork
	f.remaining = f.initial
}

// Tick advances the countdown by one second. When the work interval
// runs out the countdown rolls into the break without stopping; when the
// break runs out the countdown stops and reports completion.
func (f *Focus) Tick() FocusEvent {
	if f.status != FocusRunning {
		return FocusNone
	}

	f.remaining--
	if f.remaining > 0 {
		return FocusNone
	}

	if f.phase == PhaseWork {
		f.phase = PhaseBreak
		f.remaining = f.breakLen
		return FocusBreakStarted
	}

	f.status = FocusIdle
	f.phase = PhaseWork
	f.remaining = f.initial
	return FocusCompleted
}
