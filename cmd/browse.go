package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"catalog-browser/feature/catalog"
	"catalog-browser/feature/catalog/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const browseHelp = `commands:
  q <text>            filter by name (applied after typing pauses)
  cat|path|tier a,b   set accepted categories, paths or tiers (empty clears)
  sort <column>       click a column header (name, category, path, level_tier, stats, enchants, info, obtain)
  stat <KEY>          click a stat badge; stat! <KEY> holds the modifier
  more                reveal the next page
  reset               clear filters and sort
  debug               toggle the diagnostic line
  export json|csv [file]
  quit`

// browseCmd is a line-driven terminal front end over one Controller.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long:  `Loads the configured catalog and reads browsing commands from stdin. Type "help" for the command list.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := setup()
		defer logg.Sync()

		snap, err := loadCatalog(cmd.Context(), cfg, logg)
		if err != nil {
			logg.Fatal("Failed to load catalog", zap.Error(err))
		}

		b := &browser{
			ctrl:     catalog.NewController(snap.Items, cfg.Catalog.ControllerConfig()),
			debounce: catalog.NewDebouncer(cfg.Catalog.QueryDebounce()),
		}
		defer b.debounce.Stop()

		b.render()
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if !b.handle(strings.TrimSpace(scanner.Text())) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			logg.Error("Failed to read input", zap.Error(err))
		}
	},
}

type browser struct {
	// mu guards ctrl; debounced queries apply from a timer goroutine.
	mu       sync.Mutex
	ctrl     *catalog.Controller
	debounce *catalog.Debouncer
}

func (b *browser) render() {
	b.mu.Lock()
	defer b.mu.Unlock()
	printView(b.ctrl.View())
}

// handle runs one command line and reports whether to keep reading.
func (b *browser) handle(line string) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	if cmd == "q" {
		b.debounce.Trigger(func() {
			b.mu.Lock()
			b.ctrl.SetQuery(arg)
			b.mu.Unlock()
			b.render()
		})
		return true
	}

	b.mu.Lock()
	var err error
	switch cmd {
	case "", "help":
		fmt.Println(browseHelp)
		b.mu.Unlock()
		return true
	case "quit", "exit":
		b.mu.Unlock()
		return false
	case "cat", "path", "tier":
		criteria := b.ctrl.State().Criteria
		switch cmd {
		case "cat":
			criteria.Categories = splitList(arg)
		case "path":
			criteria.Paths = splitList(arg)
		case "tier":
			criteria.Tiers = splitList(arg)
		}
		b.ctrl.ApplyFilters(criteria)
	case "sort":
		err = b.ctrl.SelectColumn(models.SortKey(arg))
	case "stat", "stat!":
		b.ctrl.ClickStat(arg, cmd == "stat!")
	case "more":
		if !b.ctrl.Advance() {
			fmt.Println("Everything is visible.")
		}
	case "reset":
		b.ctrl.Reset()
	case "debug":
		b.ctrl.ToggleDebug()
	case "export":
		format, path, _ := strings.Cut(arg, " ")
		err = export(format, strings.TrimSpace(path), b.ctrl.Filtered())
	default:
		err = fmt.Errorf("unknown command %q, type help", cmd)
	}
	b.mu.Unlock()

	if err != nil {
		fmt.Println("error:", err)
		return true
	}
	if cmd != "export" {
		b.render()
	}
	return true
}

func init() {
	RootCmd.AddCommand(browseCmd)
}
