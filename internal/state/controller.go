package state

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/five82/covidboard/internal/covid"
	"github.com/five82/covidboard/internal/diseasesh"
)

var (
	// ErrUnknownCountry is returned when a code is neither the worldwide
	// sentinel nor present in the last fetched country list.
	ErrUnknownCountry = errors.New("unknown country")

	// ErrSuperseded is returned when a newer request of the same kind was
	// issued while a fetch was in flight; its result was discarded.
	ErrSuperseded = errors.New("superseded by a newer request")
)

// DefaultHistoryDays is how much worldwide history the graph requests.
const DefaultHistoryDays = 120

// Selection identifies one issued summary request.
type Selection struct {
	Code       string
	Generation uint64
}

// Controller owns the view state. All mutations go through its methods; the
// fetch itself runs without the lock held so reads stay cheap.
type Controller struct {
	fetcher     diseasesh.Fetcher
	logger      *zap.Logger
	historyDays int
	now         func() time.Time

	mu      sync.RWMutex
	snap    Snapshot
	listGen uint64 // last issued country list request
}

// Option customizes a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for fetch outcomes.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHistoryDays sets how many days of history are requested.
func WithHistoryDays(days int) Option {
	return func(c *Controller) {
		if days > 0 {
			c.historyDays = days
		}
	}
}

// WithMetric sets the initially selected metric. Invalid values are ignored.
func WithMetric(m covid.Metric) Option {
	return func(c *Controller) {
		if m.Valid() {
			c.snap.Metric = m
		}
	}
}

// NewController returns a controller in its session-start state: worldwide
// selected, default viewport, empty collections.
func NewController(fetcher diseasesh.Fetcher, opts ...Option) *Controller {
	c := &Controller{
		fetcher:     fetcher,
		logger:      zap.NewNop(),
		historyDays: DefaultHistoryDays,
		now:         time.Now,
		snap: Snapshot{
			SelectedCode: covid.Worldwide,
			Metric:       covid.MetricCases,
			Viewport:     covid.DefaultViewport(),
			Phase:        PhaseIdle,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := c.snap
	snap.Countries = cloneCountries(c.snap.Countries)
	snap.MapCountries = cloneCountries(c.snap.MapCountries)
	if len(c.snap.Options) > 0 {
		snap.Options = append([]covid.DropdownOption(nil), c.snap.Options...)
	}
	if c.snap.CurrentCountry != nil {
		country := *c.snap.CurrentCountry
		snap.CurrentCountry = &country
	}
	return snap
}

// Initialize performs the session's first load. See Refresh.
func (c *Controller) Initialize(ctx context.Context) error {
	return c.Refresh(ctx)
}

// Refresh reloads the summary for the current selection, the country list
// and the history. The three fetches run concurrently and each applies its own
// result as soon as it arrives; one failing does not hold back the others.
// The returned error combines every failure.
func (c *Controller) Refresh(ctx context.Context) error {
	sel := c.BeginRefresh()

	var wg sync.WaitGroup
	errs := make([]error, 3)
	wg.Add(3)
	go func() {
		defer wg.Done()
		errs[0] = c.ResolveSelection(ctx, sel)
	}()
	go func() {
		defer wg.Done()
		errs[1] = c.LoadCountries(ctx)
	}()
	go func() {
		defer wg.Done()
		errs[2] = c.LoadHistory(ctx)
	}()
	wg.Wait()

	var result *multierror.Error
	for _, err := range errs {
		if err != nil && !errors.Is(err, ErrSuperseded) {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// BeginRefresh issues a new request for the current selection and returns it
// for ResolveSelection.
func (c *Controller) BeginRefresh() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.issueLocked(c.snap.SelectedCode)
}

// SelectCountry switches the selection to code and fetches its summary.
func (c *Controller) SelectCountry(ctx context.Context, code string) error {
	sel, err := c.BeginSelection(code)
	if err != nil {
		return err
	}
	return c.ResolveSelection(ctx, sel)
}

// BeginSelection records code as selected right away and returns the request
// to resolve. Codes are matched case-insensitively against the worldwide
// sentinel, country codes and names.
func (c *Controller) BeginSelection(code string) (Selection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	canonical, ok := c.canonicalCodeLocked(code)
	if !ok {
		return Selection{}, fmt.Errorf("%w %q", ErrUnknownCountry, strings.TrimSpace(code))
	}
	sel := c.issueLocked(canonical)
	c.logger.Debug("selection issued",
		zap.String("code", sel.Code),
		zap.Uint64("generation", sel.Generation))
	return sel, nil
}

// ResolveSelection fetches the summary for sel and applies it if no newer
// request was issued meanwhile. Failures keep the last applied summary and
// viewport and are recorded on the snapshot.
func (c *Controller) ResolveSelection(ctx context.Context, sel Selection) error {
	var (
		summary diseasesh.Summary
		country *diseasesh.Country
		err     error
	)
	if sel.Code == covid.Worldwide {
		summary, err = c.fetcher.FetchGlobal(ctx)
	} else {
		var ct diseasesh.Country
		ct, err = c.fetcher.FetchCountry(ctx, sel.Code)
		if err == nil {
			summary = ct.Summary
			country = &ct
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if sel.Generation != c.snap.Generation {
		c.logger.Debug("discarding superseded summary",
			zap.String("code", sel.Code),
			zap.Uint64("generation", sel.Generation),
			zap.Uint64("latest", c.snap.Generation),
			zap.Error(err))
		return ErrSuperseded
	}

	if err != nil {
		c.snap.Phase = PhaseFailed
		c.recordFailureLocked(OpSummary, err)
		c.logger.Warn("summary fetch failed",
			zap.String("code", sel.Code),
			zap.Uint64("generation", sel.Generation),
			zap.Error(err))
		return fmt.Errorf("fetch summary for %s: %w", sel.Code, err)
	}

	c.snap.Current = summary
	c.snap.CurrentCountry = country
	c.snap.HasSummary = true
	if country != nil {
		c.snap.Viewport = covid.CountryViewport(country.Info.Lat, country.Info.Long)
	} else {
		c.snap.Viewport = covid.DefaultViewport()
	}
	c.snap.Phase = PhaseApplied
	c.recordSuccessLocked(OpSummary)
	c.logger.Info("summary applied",
		zap.String("code", sel.Code),
		zap.Uint64("generation", sel.Generation),
		zap.Int64("cases", summary.Cases))
	return nil
}

// LoadCountries fetches the country list and replaces the ranked table,
// the map records and the picker options. If the selected country vanished
// from the list the selection falls back to worldwide. Only the most recently
// issued load applies; an older one returns ErrSuperseded.
func (c *Controller) LoadCountries(ctx context.Context) error {
	c.mu.Lock()
	c.listGen++
	gen := c.listGen
	c.mu.Unlock()

	records, err := c.fetcher.FetchCountries(ctx)

	c.mu.Lock()
	if gen != c.listGen {
		c.mu.Unlock()
		c.logger.Debug("discarding stale country list", zap.Uint64("generation", gen))
		return ErrSuperseded
	}
	if err != nil {
		c.recordFailureLocked(OpCountries, err)
		c.mu.Unlock()
		c.logger.Warn("country list fetch failed", zap.Error(err))
		return fmt.Errorf("fetch countries: %w", err)
	}

	c.snap.MapCountries = cloneCountries(records)
	c.snap.Countries = covid.SortByCases(records)
	c.snap.Options = covid.DropdownOptions(records)
	c.recordSuccessLocked(OpCountries)

	var fallback *Selection
	if c.snap.SelectedCode != covid.Worldwide {
		if _, ok := c.canonicalCodeLocked(c.snap.SelectedCode); !ok {
			sel := c.issueLocked(covid.Worldwide)
			fallback = &sel
		}
	}
	c.mu.Unlock()

	c.logger.Info("country list applied", zap.Int("countries", len(records)))
	if fallback != nil {
		c.logger.Warn("selected country missing from list, falling back to worldwide")
		if err := c.ResolveSelection(ctx, *fallback); err != nil && !errors.Is(err, ErrSuperseded) {
			return err
		}
	}
	return nil
}

// LoadHistory fetches the worldwide history used by the graph.
func (c *Controller) LoadHistory(ctx context.Context) error {
	history, err := c.fetcher.FetchHistory(ctx, c.historyDays)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.recordFailureLocked(OpHistory, err)
		c.logger.Warn("history fetch failed", zap.Error(err))
		return fmt.Errorf("fetch history: %w", err)
	}
	c.snap.History = history
	c.snap.HasHistory = true
	c.recordSuccessLocked(OpHistory)
	return nil
}

// SelectMetric switches the metric used by the map, graph and info boxes.
func (c *Controller) SelectMetric(m covid.Metric) error {
	if !m.Valid() {
		return fmt.Errorf("%w %q", covid.ErrUnknownMetric, string(m))
	}
	c.mu.Lock()
	c.snap.Metric = m
	c.mu.Unlock()
	return nil
}

// ClearError dismisses the current error notice.
func (c *Controller) ClearError() {
	c.mu.Lock()
	c.snap.LastError = nil
	c.snap.ErrorOp = ""
	c.mu.Unlock()
}

func (c *Controller) issueLocked(code string) Selection {
	c.snap.SelectedCode = code
	c.snap.Generation++
	c.snap.Phase = PhaseFetching
	return Selection{Code: code, Generation: c.snap.Generation}
}

func (c *Controller) canonicalCodeLocked(code string) (string, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}
	if strings.EqualFold(code, covid.Worldwide) {
		return covid.Worldwide, true
	}
	for _, rec := range c.snap.MapCountries {
		if strings.EqualFold(rec.Code(), code) || strings.EqualFold(rec.Name, code) {
			return rec.Code(), true
		}
	}
	return "", false
}

func (c *Controller) recordFailureLocked(op string, err error) {
	c.snap.LastError = err
	c.snap.ErrorOp = op
	c.snap.Failures++
	c.snap.LastUpdated = c.now()
}

func (c *Controller) recordSuccessLocked(op string) {
	if c.snap.ErrorOp == op {
		c.snap.LastError = nil
		c.snap.ErrorOp = ""
	}
	c.snap.Failures = 0
	c.snap.LastUpdated = c.now()
}

func cloneCountries(items []diseasesh.Country) []diseasesh.Country {
	if len(items) == 0 {
		return nil
	}
	dup := make([]diseasesh.Country, len(items))
	copy(dup, items)
	return dup
}
