package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/taskdesk/taskdesk/internal/config"
	"github.com/taskdesk/taskdesk/internal/ui"
	"github.com/taskdesk/taskdesk/task"
	"github.com/taskdesk/taskdesk/timer"
)

var focusCmd = &cobra.Command{
	Use:   "focus <id>",
	Short: "Run a focus session for a task",
	Long: `Run a focus session for a task.

The countdown starts from the task's estimated minutes, or 25 minutes
when the task has no estimate. When the work interval ends a 5 minute
break starts automatically; when the break ends the task is marked
completed.`,
	Args: cobra.ExactArgs(1),
	RunE: runFocus,
}

var focusMinutes int

func init() {
	rootCmd.AddCommand(focusCmd)
	focusCmd.Flags().IntVarP(&focusMinutes, "minutes", "m", 0, "Override the work interval length")
}

func runFocus(cmd *cobra.Command, args []string) error {
	store, release, err := openTaskStore()
	if err != nil {
		return err
	}
	defer release()

	id, err := resolveTaskID(store, args[0])
	if err != nil {
		return err
	}
	t, _ := store.Get(id)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	workSeconds := cfg.Focus.WorkSeconds
	if cmd.Flags().Changed("minutes") {
		workSeconds = focusMinutes * 60
	} else if t.EstimatedMinutes > 0 {
		workSeconds = t.EstimatedMinutes * 60
	}
	focus := timer.NewFocusIntervals(workSeconds, cfg.Focus.BreakSeconds)

	model := newFocusModel(t.Title, focus)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("run focus timer: %w", err)
	}

	if m, ok := final.(focusModel); ok && m.completed {
		if current, ok := store.Get(id); ok && current.Status == task.StatusPending {
			store.Toggle(id)
			warnIfUnsaved(store)
			fmt.Printf("Completed task %s: %s\n", current.ID, current.Title)
		}
	}
	return nil
}

type focusTickMsg time.Time

func focusTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return focusTickMsg(t)
	})
}

type focusModel struct {
	title     string
	focus     *timer.Focus
	bar       progress.Model
	completed bool
}

func newFocusModel(title string, focus *timer.Focus) focusModel {
	return focusModel{
		title: title,
		focus: focus,
		bar:   progress.New(progress.WithDefaultGradient()),
	}
}

func (m focusModel) Init() tea.Cmd {
	return focusTick()
}

func (m focusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.focus.Running() {
				m.focus.Pause()
			} else {
				m.focus.Start()
			}
			return m, nil
		case "r":
			m.focus.Reset()
			return m, nil
		}
	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > 60 {
			width = 60
		}
		if width > 0 {
			m.bar.Width = width
		}
		return m, nil
	case focusTickMsg:
		if m.focus.Tick() == timer.FocusCompleted {
			m.completed = true
			return m, tea.Quit
		}
		return m, focusTick()
	}
	return m, nil
}

func (m focusModel) View() string {
	phaseTotal := m.focus.PhaseTotal()
	label := "Focus"
	if m.focus.Phase() == timer.PhaseBreak {
		label = "Break"
	}
	done := phaseTotal - m.focus.Remaining()
	percent := float64(done) / float64(phaseTotal)

	state := ""
	switch m.focus.Status() {
	case timer.FocusIdle:
		state = "press space to start"
	case timer.FocusPaused:
		state = "paused"
	}

	view := fmt.Sprintf("\n  %s: %s\n\n  %s  %s\n\n  %s\n",
		label,
		m.title,
		ui.FormatClock(m.focus.Remaining()),
		state,
		m.bar.ViewAs(percent),
	)
	view += "\n  " + ui.Muted.Render("space start/pause · r reset · q quit") + "\n"
	return view
}
