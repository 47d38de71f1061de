package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/taskdesk/taskdesk/internal/ui"
	"github.com/taskdesk/taskdesk/productivity"
)

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "Show productivity tools, tips, and a motivational quote",
	RunE:  runLinks,
}

var linksJSON bool

func init() {
	rootCmd.AddCommand(linksCmd)
	linksCmd.Flags().BoolVar(&linksJSON, "json", false, "Output as JSON")
}

func runLinks(cmd *cobra.Command, args []string) error {
	if linksJSON {
		return printJSON(struct {
			Links  []productivity.Link  `json:"links"`
			Quotes []productivity.Quote `json:"quotes"`
			Tips   []productivity.Tip   `json:"tips"`
		}{productivity.Links(), productivity.Quotes(), productivity.Tips()})
	}

	width := outputWidth()

	quote := productivity.QuoteAt(rand.New(rand.NewSource(time.Now().UnixNano())).Intn(len(productivity.Quotes())))
	fmt.Println(wordwrap.String(fmt.Sprintf("%q", quote.Text), width))
	fmt.Printf("    -- %s\n\n", quote.Author)

	fmt.Println(ui.Title.Render("Tools"))
	builder := ui.NewTableBuilder([]string{"TITLE", "URL", "DESCRIPTION"}, len(productivity.Links()))
	for _, link := range productivity.Links() {
		builder.AddRow([]string{link.Title, link.URL, link.Description})
	}
	fmt.Print(builder.String())

	fmt.Println()
	fmt.Println(ui.Title.Render("Tips"))
	for _, tip := range productivity.Tips() {
		fmt.Println(wordwrap.String(fmt.Sprintf("  %s: %s", tip.Title, tip.Body), width))
	}
	return nil
}
