// Package productivity holds the curated links, quotes, and tips shown
// on the productivity page.
package productivity

// Link is an external productivity tool worth a bookmark.
type Link struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Quote is a motivational quote with attribution.
type Quote struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Tip is a short working-habit suggestion.
type Tip struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

var links = []Link{
	{ID: "1", Title: "Pomodoro Timer", URL: "https://pomofocus.io", Description: "Time management technique with focused work intervals"},
	{ID: "2", Title: "Forest", URL: "https://www.forestapp.cc", Description: "Stay focused and plant virtual trees"},
	{ID: "3", Title: "Toggl Track", URL: "https://toggl.com", Description: "Time tracking for productivity insights"},
	{ID: "4", Title: "Notion", URL: "https://notion.so", Description: "All-in-one workspace for notes and planning"},
	{ID: "5", Title: "RescueTime", URL: "https://rescuetime.com", Description: "Automatic time tracking and productivity analysis"},
	{ID: "6", Title: "Brain.fm", URL: "https://brain.fm", Description: "Music designed to improve focus and productivity"},
}

var quotes = []Quote{
	{ID: "1", Text: "The way to get started is to quit talking and begin doing.", Author: "Walt Disney"},
	{ID: "2", Text: "Success is not final, failure is not fatal: it is the courage to continue that counts.", Author: "Winston Churchill"},
	{ID: "3", Text: "Don't watch the clock; do what it does. Keep going.", Author: "Sam Levenson"},
	{ID: "4", Text: "The future depends on what you do today.", Author: "Mahatma Gandhi"},
	{ID: "5", Text: "It is during our darkest moments that we must focus to see the light.", Author: "Aristotle"},
	{ID: "6", Text: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
	{ID: "7", Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{ID: "8", Text: "Success is not the key to happiness. Happiness is the key to success.", Author: "Albert Schweitzer"},
}

var tips = []Tip{
	{Title: "Time Blocking", Body: "Schedule specific time blocks for different types of tasks to maintain focus."},
	{Title: "Two-Minute Rule", Body: "If a task takes less than two minutes, do it immediately instead of adding it to your list."},
	{Title: "Batch Similar Tasks", Body: "Group similar tasks together to minimize context switching and increase efficiency."},
	{Title: "Take Regular Breaks", Body: "Use techniques like the Pomodoro Technique to maintain high productivity with regular breaks."},
}

// Links returns the curated tool links in display order.
func Links() []Link {
	out := make([]Link, len(links))
	copy(out, links)
	return out
}

// Quotes returns all motivational quotes in rotation order.
func Quotes() []Quote {
	out := make([]Quote, len(quotes))
	copy(out, quotes)
	return out
}

// Tips returns the working-habit tips in display order.
func Tips() []Tip {
	out := make([]Tip, len(tips))
	copy(out, tips)
	return out
}

// QuoteAt returns the quote for a rotation index; indexes wrap around so
// callers can keep incrementing a counter.
func QuoteAt(index int) Quote {
	n := len(quotes)
	i := index % n
	if i < 0 {
		i += n
	}
	return quotes[i]
}

// NextIndex advances a rotation index, wrapping back to the first quote.
func NextIndex(index int) int {
	return (index + 1) % len(quotes)
}
