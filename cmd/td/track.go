package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/taskdesk/taskdesk/internal/ui"
	"github.com/taskdesk/taskdesk/timer"
)

var trackCmd = &cobra.Command{
	Use:   "track <id>",
	Short: "Track time spent on a task",
	Long: `Track time spent on a task.

The tracker starts immediately and counts in whole minutes; partial
minutes are dropped. On quit the accumulated total is written to the
task's actual duration.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrack,
}

func init() {
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
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

	prior := 0
	if t.ActualMinutes != nil {
		prior = *t.ActualMinutes
	}
	tracker := timer.NewTracker(prior)
	tracker.Start(time.Now())

	if _, err := tea.NewProgram(newTrackModel(t.Title, tracker)).Run(); err != nil {
		return fmt.Errorf("run tracker: %w", err)
	}

	total, _ := tracker.Stop(time.Now())
	if _, ok := store.SetActualMinutes(id, total); !ok {
		return fmt.Errorf("task %s not found", id)
	}
	warnIfUnsaved(store)
	fmt.Printf("Recorded %s on task %s: %s\n", ui.FormatMinutes(total), t.ID, t.Title)
	return nil
}

type trackTickMsg time.Time

func trackTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return trackTickMsg(t)
	})
}

type trackModel struct {
	title   string
	tracker *timer.Tracker
}

func newTrackModel(title string, tracker *timer.Tracker) trackModel {
	return trackModel{title: title, tracker: tracker}
}

func (m trackModel) Init() tea.Cmd {
	return trackTick()
}

func (m trackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			now := time.Now()
			if m.tracker.Running() {
				m.tracker.Pause(now)
			} else {
				m.tracker.Start(now)
			}
			return m, nil
		}
	case trackTickMsg:
		return m, trackTick()
	}
	return m, nil
}

func (m trackModel) View() string {
	state := "tracking"
	if !m.tracker.Running() {
		state = "paused"
	}
	return fmt.Sprintf("\n  Tracking: %s\n\n  %s  %s\n\n  %s\n",
		m.title,
		ui.FormatMinutes(m.tracker.Elapsed(time.Now())),
		state,
		ui.Muted.Render("space pause/resume · q quit and save"),
	)
}
