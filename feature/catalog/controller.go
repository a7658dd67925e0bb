package catalog

import (
	"errors"
	"fmt"
	"strings"

	"catalog-browser/feature/catalog/models"
)

// ErrInvalidInput marks UI events that cannot be applied, e.g. an unknown sort column.
var ErrInvalidInput = errors.New("invalid input")

// ControllerConfig configures a Controller.
type ControllerConfig struct {
	PageSize int
	Filter   FilterOptions
}

// View is what a renderer needs to draw the table.
type View struct {
	Items         []models.Item         `json:"items"`
	Visible       int                   `json:"visible"`
	Total         int                   `json:"total"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"page_size"`
	HasMore       bool                  `json:"has_more"`
	Empty         bool                  `json:"empty"`
	ResultsInfo   string                `json:"results_info"`
	SortIndicator string                `json:"sort_indicator"`
	Sort          models.SortSpec       `json:"sort"`
	Criteria      models.FilterCriteria `json:"criteria"`
	// Debug is the diagnostic line, set while the debug surface is open.
	Debug string `json:"debug,omitempty"`
}

// Controller owns the view state of one browsing session and applies UI events to it.
// It is not safe for concurrent use.
type Controller struct {
	items []models.Item
	state CatalogState
	opts  FilterOptions
	debug bool
}

// NewController creates a controller over items showing the unfiltered catalog by name.
func NewController(items []models.Item, cfg ControllerConfig) *Controller {
	c := &Controller{
		items: items,
		state: NewCatalogState(cfg.PageSize),
		opts:  cfg.Filter,
	}
	c.state = c.state.WithFilters(items, models.FilterCriteria{}, c.opts)
	// An empty catalog is worth a look at the diagnostics.
	c.debug = len(items) == 0
	return c
}

// SetItems swaps in a reloaded catalog and reapplies the current filters.
func (c *Controller) SetItems(items []models.Item) {
	c.items = items
	c.state = c.state.WithFilters(items, c.state.Criteria, c.opts)
	if len(items) == 0 {
		c.debug = true
	}
}

// State returns a copy of the current state.
func (c *Controller) State() CatalogState {
	return c.state
}

// ApplyFilters recomputes the view for new criteria.
func (c *Controller) ApplyFilters(criteria models.FilterCriteria) {
	c.state = c.state.WithFilters(c.items, criteria, c.opts)
}

// SetQuery changes only the free-text query.
func (c *Controller) SetQuery(q string) {
	criteria := c.state.Criteria
	criteria.Query = q
	c.ApplyFilters(criteria)
}

// SetSort applies a sort spec directly, e.g. one restored from preferences.
func (c *Controller) SetSort(spec models.SortSpec) error {
	if !spec.Key.Valid() {
		return fmt.Errorf("%w: unknown sort key %q", ErrInvalidInput, spec.Key)
	}
	if spec.Direction != models.Desc {
		spec.Direction = models.Asc
	}
	if spec.Key != models.SortStat {
		spec.StatKey = ""
	}
	c.state = c.state.WithSort(spec)
	return nil
}

// SelectColumn handles a column header click: the active column flips direction, another column
// becomes active ascending and any stat sort is dropped.
func (c *Controller) SelectColumn(key models.SortKey) error {
	if !key.Valid() || key == models.SortStat {
		return fmt.Errorf("%w: unknown sort column %q", ErrInvalidInput, key)
	}

	spec := c.state.Sort
	if spec.Key == key {
		spec.Direction = spec.Direction.Toggle()
	} else {
		spec = models.SortSpec{Key: key, Direction: models.Asc}
	}
	c.state = c.state.WithSort(spec)
	return nil
}

// ClickStat handles a click on a stat badge.
//
// Clicking the active stat clears the stat sort back to name ascending, unless modifier is held, in
// which case the direction flips. Clicking another stat makes it active with its default direction
// (ascending for AC, descending otherwise), reversed when modifier is held.
func (c *Controller) ClickStat(stat string, modifier bool) {
	cur := c.state.Sort
	active := cur.Key == models.SortStat && cur.StatKey == stat

	var spec models.SortSpec
	switch {
	case active && !modifier:
		spec = models.DefaultSort()
	case active:
		spec = cur
		spec.Direction = cur.Direction.Toggle()
	default:
		spec = models.SortSpec{Key: models.SortStat, StatKey: stat, Direction: models.DefaultStatDirection(stat)}
		if modifier {
			spec.Direction = spec.Direction.Toggle()
		}
	}
	c.state = c.state.WithSort(spec)
}

// Advance handles the scroll-proximity signal. It reports whether more rows were revealed.
func (c *Controller) Advance() bool {
	return c.state.Revealer.Advance(len(c.state.Filtered))
}

// Reset clears every filter and restores the default sort.
func (c *Controller) Reset() {
	c.state.Sort = models.DefaultSort()
	c.state = c.state.WithFilters(c.items, models.FilterCriteria{}, c.opts)
}

// ToggleDebug opens or closes the diagnostic surface and returns the new state.
func (c *Controller) ToggleDebug() bool {
	c.debug = !c.debug
	return c.debug
}

// View renders the current state.
func (c *Controller) View() View {
	total := len(c.state.Filtered)
	visible := c.state.Visible()

	v := View{
		Items:         visible,
		Visible:       len(visible),
		Total:         total,
		Page:          c.state.Revealer.Page,
		PageSize:      c.state.Revealer.PageSize,
		HasMore:       len(visible) < total,
		Empty:         total == 0,
		ResultsInfo:   ResultsInfo(len(visible), total),
		SortIndicator: SortIndicator(c.state.Sort),
		Sort:          c.state.Sort,
		Criteria:      c.state.Criteria,
	}
	if c.debug {
		v.Debug = c.DebugMeta()
	}
	return v
}

// Filtered returns the whole filtered view, which is what exports contain.
// The slice is never reordered once returned.
func (c *Controller) Filtered() []models.Item {
	return c.state.Filtered
}

// DebugMeta is the one-line diagnostic summary of the session.
func (c *Controller) DebugMeta() string {
	s := c.state
	sortKey := string(s.Sort.Key)
	if s.Sort.Key == models.SortStat && s.Sort.StatKey != "" {
		sortKey += "/" + s.Sort.StatKey
	}
	return fmt.Sprintf("items:%d filtered:%d sort:%s dir:%s page:%d size:%d | cats:%s paths:%s tiers:%s",
		len(c.items), len(s.Filtered), sortKey, s.Sort.Direction, s.Revealer.Page, s.Revealer.PageSize,
		strings.Join(s.Criteria.Categories.Values(), ","),
		strings.Join(s.Criteria.Paths.Values(), ","),
		strings.Join(s.Criteria.Tiers.Values(), ","))
}

// ResultsInfo renders "<visible> of <total> result(s)".
func ResultsInfo(visible, total int) string {
	plural := "s"
	if total == 1 {
		plural = ""
	}
	return fmt.Sprintf("%d of %d result%s", visible, total, plural)
}

// SortIndicator describes a non-default sort, e.g. "Sorted by AC ↑". Name sorts render empty.
func SortIndicator(spec models.SortSpec) string {
	arrow := func(d models.Direction) string {
		if d == models.Asc {
			return "↑"
		}
		return "↓"
	}

	switch {
	case spec.Key == models.SortStat && spec.StatKey != "":
		return fmt.Sprintf("Sorted by %s %s", spec.StatKey, arrow(spec.EffectiveDirection()))
	case spec.Key != "" && spec.Key != models.SortName:
		return fmt.Sprintf("Sorted by %s %s", spec.Key, arrow(spec.Direction))
	default:
		return ""
	}
}
