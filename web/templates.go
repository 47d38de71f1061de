package web

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/taskdesk/taskdesk/productivity"
	"github.com/taskdesk/taskdesk/stats"
	"github.com/taskdesk/taskdesk/task"
)

type pageData struct {
	ActiveTab       string
	Now             time.Time
	Tasks           []task.Task
	Selected        *task.Task
	SelectedID      string
	Create          bool
	Form            taskFormValues
	TaskError       string
	Query           task.Query
	StatusOptions   []selectOption
	PriorityOptions []selectOption
	Summary         stats.Summary
	Links           []productivity.Link
	Tips            []productivity.Tip
	Quote           productivity.Quote
	NextQuote       int
	QuoteIndex      int
}

type templateWrapper struct {
	tmpl *template.Template
}

func newTemplateWrapper() *templateWrapper {
	return &templateWrapper{tmpl: newTemplates()}
}

func (tw *templateWrapper) Render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = tw.tmpl.ExecuteTemplate(w, "page", data)
}

func newTemplates() *template.Template {
	funcs := template.FuncMap{
		"formatTime":         formatTime,
		"formatOptionalTime": formatOptionalTime,
		"formatPercent":      formatPercent,
		"formatDue":          formatDue,
		"joinTags":           func(tags []string) string { return strings.Join(tags, ", ") },
		"isOverdue":          func(t task.Task, now time.Time) bool { return t.Overdue(now) },
		"isCompleted":        func(t task.Task) bool { return t.Status == task.StatusCompleted },
	}
	return template.Must(template.New("page").Funcs(funcs).Parse(pageTemplate))
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Format("2006-01-02 15:04:05")
}

func formatOptionalTime(value *time.Time) string {
	if value == nil {
		return "-"
	}
	return formatTime(*value)
}

func formatPercent(value float64) string {
	return fmt.Sprintf("%.0f%%", value)
}

func formatDue(t task.Task) string {
	if t.DueDate == "" {
		return "-"
	}
	if t.DueTime == "" {
		return t.DueDate
	}
	return t.DueDate + " " + t.DueTime
}

const pageTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Taskdesk {{if eq .ActiveTab "dashboard"}}Dashboard{{else if eq .ActiveTab "productivity"}}Productivity{{else}}Tasks{{end}}</title>
  <style>
    :root { color-scheme: light; }
    body {
      margin: 0;
      font-family: "Charter", "Georgia", serif;
      color: #2b2520;
      background: radial-gradient(circle at top left, #f4efe3 0%, #fcfaf6 55%, #f6f2e8 100%);
    }
    header {
      padding: 16px 24px;
      border-bottom: 1px solid #d7cdbd;
      background: rgba(255, 255, 255, 0.72);
    }
    header h1 { margin: 0 0 8px 0; font-size: 20px; letter-spacing: 0.02em; }
    .tabs { display: flex; gap: 12px; }
    .tab {
      padding: 8px 14px;
      border-radius: 999px;
      text-decoration: none;
      color: #5b5148;
      border: 1px solid transparent;
    }
    .tab.active {
      color: #1d1712;
      border-color: #d1c6b6;
      background: #f5efe4;
      font-weight: 600;
    }
    main { display: flex; gap: 18px; padding: 18px 24px 28px; }
    .pane {
      background: #ffffff;
      border: 1px solid #d7cdbd;
      border-radius: 14px;
      box-shadow: 0 8px 24px rgba(60, 45, 30, 0.08);
    }
    .list-pane {
      width: 35%;
      min-width: 240px;
      padding: 16px;
      display: flex;
      flex-direction: column;
      gap: 12px;
    }
    .detail-pane { flex: 1; padding: 18px 22px 22px; }
    .item-list { list-style: none; margin: 0; padding: 0; display: flex; flex-direction: column; gap: 6px; }
    .item-list a {
      display: block;
      padding: 8px 10px;
      border-radius: 10px;
      text-decoration: none;
      color: #2b2520;
      border: 1px solid transparent;
    }
    .item-list a.selected { border-color: #d1c6b6; background: #f8f3e9; }
    .item-meta { font-size: 12px; color: #7a6f63; }
    .completed-title { text-decoration: line-through; color: #978b7d; }
    .overdue { color: #a83c2e; font-weight: 600; }
    .badge {
      display: inline-block;
      padding: 1px 8px;
      border-radius: 999px;
      font-size: 12px;
      border: 1px solid #d1c6b6;
    }
    .badge.high { background: #f7ddd7; border-color: #e0a294; }
    .badge.medium { background: #f8eed4; border-color: #dcc386; }
    .badge.low { background: #e3efdd; border-color: #a9c89a; }
    .error { color: #a83c2e; margin: 0 0 12px 0; }
    form.detail label { display: block; margin: 10px 0 4px; font-size: 14px; color: #5b5148; }
    form.detail input[type="text"], form.detail input[type="date"], form.detail input[type="time"],
    form.detail input[type="number"], form.detail select, form.detail textarea {
      width: 100%;
      box-sizing: border-box;
      padding: 7px 9px;
      border: 1px solid #cbbfae;
      border-radius: 8px;
      font: inherit;
      background: #fcfaf5;
    }
    .button-link, button {
      display: inline-block;
      padding: 6px 12px;
      border-radius: 8px;
      border: 1px solid #cbbfae;
      background: #f7f2e8;
      text-decoration: none;
      color: #2b2520;
      font: inherit;
      font-size: 14px;
      cursor: pointer;
    }
    .actions { display: flex; gap: 8px; margin-top: 14px; flex-wrap: wrap; }
    .filter-form { display: flex; gap: 8px; flex-wrap: wrap; }
    .filter-form input, .filter-form select {
      padding: 6px 9px;
      border: 1px solid #cbbfae;
      border-radius: 8px;
      font: inherit;
      background: #fcfaf5;
    }
    .stat-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: 12px; margin-bottom: 18px; }
    .stat-card { border: 1px solid #d7cdbd; border-radius: 12px; padding: 12px 16px; background: #fcfaf5; }
    .stat-card .value { font-size: 26px; font-weight: 600; }
    .stat-card .label { font-size: 13px; color: #7a6f63; }
    .section { margin-top: 20px; }
    .section h3 { margin: 0 0 8px 0; }
    blockquote { font-size: 18px; margin: 0 0 6px 0; }
    cite { font-size: 14px; color: #7a6f63; }
    .link-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 12px; }
    .link-card { border: 1px solid #d7cdbd; border-radius: 12px; padding: 12px 16px; text-decoration: none; color: #2b2520; background: #fcfaf5; }
    .link-card p { margin: 4px 0 0; font-size: 13px; color: #7a6f63; }
  </style>
</head>
<body>
  <header>
    <h1>Taskdesk</h1>
    <nav class="tabs">
      <a class="tab {{if eq .ActiveTab "tasks"}}active{{end}}" href="/tasks">Tasks</a>
      <a class="tab {{if eq .ActiveTab "dashboard"}}active{{end}}" href="/dashboard">Dashboard</a>
      <a class="tab {{if eq .ActiveTab "productivity"}}active{{end}}" href="/productivity">Productivity</a>
    </nav>
  </header>
  <main>
  {{if eq .ActiveTab "tasks"}}
    <section class="pane list-pane">
      <form class="filter-form" method="get" action="/tasks">
        <input type="text" name="q" placeholder="Search" value="{{.Query.Search}}">
        <select name="status">
          <option value="all">all statuses</option>
          {{range .StatusOptions}}<option value="{{.Value}}" {{if eq .Value $.Query.Status}}selected{{end}}>{{.Label}}</option>{{end}}
        </select>
        <select name="priority">
          <option value="all">all priorities</option>
          {{range .PriorityOptions}}<option value="{{.Value}}" {{if eq .Value $.Query.Priority}}selected{{end}}>{{.Label}}</option>{{end}}
        </select>
        <button type="submit">Filter</button>
        <a class="button-link" href="/tasks?create=1">New task</a>
      </form>
      <ul class="item-list">
        {{range .Tasks}}
        <li>
          <a href="/tasks?id={{.ID}}" class="{{if eq .ID $.SelectedID}}selected{{end}}">
            <span class="{{if isCompleted .}}completed-title{{else if isOverdue . $.Now}}overdue{{end}}">{{.Title}}</span>
            <div class="item-meta">
              <span class="badge {{.Priority}}">{{.Priority}}</span>
              due {{formatDue .}}
            </div>
          </a>
        </li>
        {{else}}
        <li class="item-meta">No tasks match.</li>
        {{end}}
      </ul>
    </section>
    <section class="pane detail-pane">
      {{if .TaskError}}<p class="error">{{.TaskError}}</p>{{end}}
      {{if .Create}}
        <h2>New task</h2>
        <form class="detail" method="post" action="/tasks/create">
          {{template "taskform" .}}
          <div class="actions"><button type="submit">Create</button></div>
        </form>
      {{else if .Selected}}
        <h2>{{.Selected.Title}}</h2>
        <p class="item-meta">
          created {{formatTime .Selected.CreatedAt}} ·
          completed {{formatOptionalTime .Selected.CompletedAt}}
          {{if .Selected.ActualMinutes}} · {{.Selected.ActualMinutes}}m tracked{{end}}
        </p>
        <form class="detail" method="post" action="/tasks/update?id={{.Selected.ID}}">
          {{template "taskform" .}}
          <div class="actions"><button type="submit">Save</button></div>
        </form>
        <div class="actions">
          <form method="post" action="/tasks/toggle?id={{.Selected.ID}}">
            <button type="submit">{{if isCompleted .Selected}}Mark pending{{else}}Mark done{{end}}</button>
          </form>
          <form method="post" action="/tasks/delete?id={{.Selected.ID}}">
            <button type="submit">Delete</button>
          </form>
          <form method="post" action="/tasks/duration?id={{.Selected.ID}}">
            <input type="number" name="minutes" min="0" placeholder="minutes">
            <button type="submit">Set time spent</button>
          </form>
        </div>
      {{else}}
        <p>No task selected. <a href="/tasks?create=1">Create one</a>.</p>
      {{end}}
    </section>
  {{else if eq .ActiveTab "dashboard"}}
    <section class="pane detail-pane">
      <div class="stat-grid">
        <div class="stat-card"><div class="value">{{.Summary.Counts.Total}}</div><div class="label">Total tasks</div></div>
        <div class="stat-card"><div class="value">{{.Summary.Counts.Pending}}</div><div class="label">Pending</div></div>
        <div class="stat-card"><div class="value">{{.Summary.Counts.Completed}}</div><div class="label">Completed</div></div>
        <div class="stat-card"><div class="value">{{.Summary.Counts.Overdue}}</div><div class="label">Overdue</div></div>
        <div class="stat-card"><div class="value">{{formatPercent .Summary.CompletionRate}}</div><div class="label">Completion rate</div></div>
        <div class="stat-card"><div class="value">{{formatPercent .Summary.ProductivityScore}}</div><div class="label">Productivity score</div></div>
        <div class="stat-card"><div class="value">{{.Summary.AverageMinutes}}m</div><div class="label">Avg completion time</div></div>
      </div>
      <div class="section">
        <h3>Due today ({{len .Summary.DueToday}})</h3>
        <ul class="item-list">
          {{range .Summary.DueToday}}<li><a href="/tasks?id={{.ID}}">{{.Title}} <span class="item-meta">{{formatDue .}}</span></a></li>{{else}}<li class="item-meta">Nothing due today.</li>{{end}}
        </ul>
      </div>
      <div class="section">
        <h3>Due this week ({{len .Summary.DueThisWeek}})</h3>
        <ul class="item-list">
          {{range .Summary.DueThisWeek}}<li><a href="/tasks?id={{.ID}}">{{.Title}} <span class="item-meta">{{formatDue .}}</span></a></li>{{else}}<li class="item-meta">Nothing due this week.</li>{{end}}
        </ul>
      </div>
      <div class="section">
        <h3>Recently completed</h3>
        <ul class="item-list">
          {{range .Summary.RecentlyCompleted}}<li><a href="/tasks?id={{.ID}}"><span class="completed-title">{{.Title}}</span> <span class="item-meta">{{formatOptionalTime .CompletedAt}}</span></a></li>{{else}}<li class="item-meta">Nothing completed yet.</li>{{end}}
        </ul>
      </div>
      <div class="section">
        <h3>Upcoming</h3>
        <ul class="item-list">
          {{range .Summary.Upcoming}}<li><a href="/tasks?id={{.ID}}">{{.Title}} <span class="item-meta">{{formatDue .}}</span></a></li>{{else}}<li class="item-meta">Nothing scheduled.</li>{{end}}
        </ul>
      </div>
      <div class="section">
        <h3>By category</h3>
        <ul class="item-list">
          {{range .Summary.Categories}}<li>{{.Category}} <span class="item-meta">{{.Count}}</span></li>{{else}}<li class="item-meta">No categories.</li>{{end}}
        </ul>
      </div>
    </section>
  {{else}}
    <section class="pane detail-pane">
      <div class="section">
        <h3>Daily motivation</h3>
        <blockquote>&ldquo;{{.Quote.Text}}&rdquo;</blockquote>
        <cite>&mdash; {{.Quote.Author}}</cite>
        <div class="actions"><a class="button-link" href="/productivity?quote={{.NextQuote}}">Next quote</a></div>
      </div>
      <div class="section">
        <h3>Productivity tools</h3>
        <div class="link-grid">
          {{range .Links}}
          <a class="link-card" href="{{.URL}}" target="_blank" rel="noopener noreferrer">
            <strong>{{.Title}}</strong>
            <p>{{.Description}}</p>
          </a>
          {{end}}
        </div>
      </div>
      <div class="section">
        <h3>Productivity tips</h3>
        <ul class="item-list">
          {{range .Tips}}<li><strong>{{.Title}}</strong> <span class="item-meta">{{.Body}}</span></li>{{end}}
        </ul>
      </div>
    </section>
  {{end}}
  </main>
</body>
</html>
{{define "taskform"}}
  <label for="title">Title</label>
  <input type="text" id="title" name="title" value="{{.Form.Title}}" required>
  <label for="description">Description</label>
  <textarea id="description" name="description" rows="4">{{.Form.Description}}</textarea>
  <label for="priority">Priority</label>
  <select id="priority" name="priority">
    {{range .PriorityOptions}}<option value="{{.Value}}" {{if eq .Value $.Form.Priority}}selected{{end}}>{{.Label}}</option>{{end}}
  </select>
  <label for="status">Status</label>
  <select id="status" name="status">
    {{range .StatusOptions}}<option value="{{.Value}}" {{if eq .Value $.Form.Status}}selected{{end}}>{{.Label}}</option>{{end}}
  </select>
  <label for="due_date">Due date</label>
  <input type="date" id="due_date" name="due_date" value="{{.Form.DueDate}}">
  <label for="due_time">Due time</label>
  <input type="time" id="due_time" name="due_time" value="{{.Form.DueTime}}">
  <label for="category">Category</label>
  <input type="text" id="category" name="category" value="{{.Form.Category}}">
  <label for="estimated_minutes">Estimated minutes</label>
  <input type="number" id="estimated_minutes" name="estimated_minutes" min="0" value="{{.Form.EstimatedMins}}">
  <label for="tags">Tags (comma separated)</label>
  <input type="text" id="tags" name="tags" value="{{.Form.Tags}}">
{{end}}
`
