// Package app implements the application layer for reach.
package app

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"go.trai.ch/reach/internal/adapters/watcher" //nolint:depguard // Debouncing is shared with the adapter
	"go.trai.ch/reach/internal/core/domain"
	"go.trai.ch/reach/internal/core/ports"
	"go.trai.ch/reach/internal/engine/reach"
	"go.trai.ch/zerr"
)

// DefaultDebounce is how long Watch waits for file events to settle.
const DefaultDebounce = 200 * time.Millisecond

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.InputResolver
	schemas      ports.SchemaLoader
	printer      ports.SchemaPrinter
	hasher       ports.Hasher
	logger       ports.Logger
	tracer       ports.Tracer

	openStore   ports.ReportStoreFactory
	newRenderer ports.RendererFactory
	newWatcher  ports.WatcherFactory
	debounce    time.Duration
	now         func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.InputResolver,
	schemas ports.SchemaLoader,
	printer ports.SchemaPrinter,
	hasher ports.Hasher,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		schemas:      schemas,
		printer:      printer,
		hasher:       hasher,
		logger:       log,
		tracer:       tracer,
		debounce:     DefaultDebounce,
		now:          time.Now,
	}
}

// WithStore enables the report store.
func (a *App) WithStore(open ports.ReportStoreFactory) *App {
	a.openStore = open
	return a
}

// WithRenderer sets the factory used to render reports.
func (a *App) WithRenderer(newRenderer ports.RendererFactory) *App {
	a.newRenderer = newRenderer
	return a
}

// WithWatcher sets the factory used by Watch.
func (a *App) WithWatcher(newWatcher ports.WatcherFactory) *App {
	a.newWatcher = newWatcher
	return a
}

// WithDebounce sets the window Watch uses to coalesce file events.
func (a *App) WithDebounce(window time.Duration) *App {
	a.debounce = window
	return a
}

// Options configures a single analysis.
type Options struct {
	// Dir is the working directory. Empty means ".".
	Dir string
	// ConfigPath names an explicit config file instead of discovering one.
	ConfigPath string
	// Inputs lists schema patterns relative to Dir. They replace the config's schema list.
	Inputs []string
	// Retain adds type names that are always reachable.
	Retain []string
	// Format overrides the configured output format.
	Format string
	// NoCache skips the report store lookup. The fresh report is still stored.
	NoCache bool
}

// UnusedOptions configures the Unused method.
type UnusedOptions struct {
	Options
	// Fail makes Unused return ErrUnreachableTypes when any type is unreachable.
	Fail bool
}

// CleanOptions configures the Clean method.
type CleanOptions struct {
	Dir        string
	ConfigPath string
}

// loaded is a schema together with everything needed to analyze it.
type loaded struct {
	config      *domain.Config
	schema      *domain.Schema
	retain      []string
	fingerprint string
}

// Analyze computes the reachability report for the configured schema.
// A stored report with the same fingerprint is returned unless NoCache is set.
func (a *App) Analyze(ctx context.Context, opts Options) (*domain.Report, error) {
	report, _, err := a.analyze(ctx, opts)
	return report, err
}

// Types writes the reachable types of the schema to w.
func (a *App) Types(ctx context.Context, opts Options, w io.Writer) error {
	report, cfg, err := a.analyze(ctx, opts)
	if err != nil {
		return err
	}

	renderer, err := a.renderer(opts.Format, cfg)
	if err != nil {
		return err
	}
	return renderer.Reachable(w, report)
}

// Unused writes the declared types that are not reachable to w.
func (a *App) Unused(ctx context.Context, opts UnusedOptions, w io.Writer) error {
	report, cfg, err := a.analyze(ctx, opts.Options)
	if err != nil {
		return err
	}

	renderer, err := a.renderer(opts.Format, cfg)
	if err != nil {
		return err
	}
	if err := renderer.Unused(w, report); err != nil {
		return err
	}

	if opts.Fail && report.HasUnreachable() {
		return zerr.With(zerr.Wrap(domain.ErrUnreachableTypes, "unused check failed"), "count", len(report.Unreachable))
	}
	return nil
}

// Prune writes the schema to w without the types that are not reachable.
func (a *App) Prune(ctx context.Context, opts Options, w io.Writer) error {
	ctx, span := a.tracer.Start(ctx, "prune")
	defer span.End()

	l, err := a.load(ctx, opts)
	if err != nil {
		span.RecordError(err)
		return err
	}

	keep := reach.NewCache(l.schema, reach.WithRetained(l.retain...)).ReachableTypes()
	span.SetAttribute("reachable", keep.Len())

	if err := a.printer.Print(w, l.schema, keep); err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "failed to print pruned schema")
	}
	return nil
}

// Watch runs Unused, then runs it again each time a schema or config file
// below the project root changes. It returns when ctx is done.
func (a *App) Watch(ctx context.Context, opts Options, w io.Writer) error {
	if a.newWatcher == nil {
		return zerr.New("file watching is not available")
	}

	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	fsWatcher, err := a.newWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = fsWatcher.Stop() }()

	run := func() {
		if err := a.Unused(ctx, UnusedOptions{Options: opts}, w); err != nil {
			a.logger.Error(err)
		}
	}

	run()

	if err := fsWatcher.Start(ctx, cfg.Root); err != nil {
		return zerr.Wrap(err, "failed to start watching")
	}
	a.logger.Info("watching " + cfg.Root + " for schema changes")

	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		a.logger.Info(pluralize(len(paths), "file") + " changed")
		run()
	})

	for event := range fsWatcher.Events() {
		debouncer.Add(event.Path)
	}

	// Both wait for a run already started by the debouncer, so w is not
	// written to after Watch returns.
	if ctx.Err() != nil {
		debouncer.Stop()
		return nil
	}
	debouncer.Flush()
	return nil
}

// Clean removes the report store.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, err := a.loadConfig(Options{Dir: opts.Dir, ConfigPath: opts.ConfigPath})
	if err != nil {
		return err
	}
	if cfg.Cache == "" || a.openStore == nil {
		a.logger.Info("report store is disabled")
		return nil
	}

	store, err := a.openStore(cfg.Cache)
	if err != nil {
		// A corrupt store is exactly what clean is for.
		a.logger.Warn("report store is unreadable, removing it")
		store = nil
	}
	if store == nil {
		return removeStoreFile(cfg.Cache)
	}

	if err := store.Clear(); err != nil {
		return zerr.Wrap(err, "failed to clean report store")
	}
	a.logger.Info("removed " + cfg.Cache)
	return nil
}

func (a *App) analyze(ctx context.Context, opts Options) (*domain.Report, *domain.Config, error) {
	ctx, span := a.tracer.Start(ctx, "analyze")
	defer span.End()

	l, err := a.load(ctx, opts)
	if err != nil {
		span.RecordError(err)
		return nil, nil, err
	}
	span.SetAttribute("fingerprint", l.fingerprint)

	store := a.store(l.config)
	if store != nil && !opts.NoCache {
		cached, err := store.Get(l.fingerprint)
		if err != nil {
			a.logger.Warn("failed to read stored report: " + err.Error())
		}
		if cached != nil {
			span.SetAttribute("cached", true)
			return cached, l.config, nil
		}
	}
	span.SetAttribute("cached", false)

	report, err := a.buildReport(ctx, l)
	if err != nil {
		span.RecordError(err)
		return nil, nil, err
	}

	if store != nil {
		if err := store.Put(*report); err != nil {
			a.logger.Warn("failed to store report: " + err.Error())
		}
	}
	return report, l.config, nil
}

func (a *App) buildReport(ctx context.Context, l *loaded) (*domain.Report, error) {
	_, span := a.tracer.Start(ctx, "collect")
	defer span.End()

	matcher, err := reach.NewMatcher(l.config.Ignore)
	if err != nil {
		return nil, err
	}

	set := reach.NewCache(l.schema, reach.WithRetained(l.retain...)).ReachableTypes()
	report := reach.BuildReport(l.schema, set, matcher)
	report.Fingerprint = l.fingerprint
	report.CreatedAt = a.now().UTC()

	span.SetAttribute("reachable", len(report.Reachable))
	span.SetAttribute("unreachable", len(report.Unreachable))
	return report, nil
}

func (a *App) load(ctx context.Context, opts Options) (*loaded, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}

	patterns, root := cfg.Schema, cfg.Root
	if len(opts.Inputs) > 0 {
		patterns, root = opts.Inputs, workDir(opts)
	}
	if len(patterns) == 0 {
		return nil, domain.ErrNoSchemaInputs
	}

	paths, err := a.resolver.ResolveInputs(patterns, root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve schema inputs")
	}

	ctx, span := a.tracer.Start(ctx, "load")
	span.SetAttribute("files", len(paths))
	schema, err := a.schemas.Load(ctx, paths)
	if err != nil {
		span.RecordError(err)
		span.End()
		return nil, zerr.Wrap(err, "failed to load schema")
	}
	span.SetAttribute("types", schema.Len())
	span.End()

	retain := append(slices.Clone(cfg.Retain), opts.Retain...)
	slices.Sort(retain)
	retain = slices.Compact(retain)
	for _, name := range retain {
		if _, ok := schema.Lookup(domain.NewInternedString(name)); !ok {
			a.logger.Warn("retained type " + name + " is not declared in the schema")
		}
	}

	fingerprint, err := a.hasher.Fingerprint(schema, retain, cfg.Ignore)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to fingerprint schema")
	}

	return &loaded{
		config:      cfg,
		schema:      schema,
		retain:      retain,
		fingerprint: fingerprint,
	}, nil
}

func (a *App) loadConfig(opts Options) (*domain.Config, error) {
	var (
		cfg *domain.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = a.configLoader.LoadFile(opts.ConfigPath)
	} else {
		cfg, err = a.configLoader.Load(workDir(opts))
	}
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

func (a *App) store(cfg *domain.Config) ports.ReportStore {
	if a.openStore == nil || cfg.Cache == "" {
		return nil
	}
	store, err := a.openStore(cfg.Cache)
	if err != nil {
		a.logger.Warn("report store disabled: " + err.Error())
		return nil
	}
	return store
}

func (a *App) renderer(format string, cfg *domain.Config) (ports.Renderer, error) {
	if a.newRenderer == nil {
		return nil, zerr.New("no renderer configured")
	}
	if format == "" {
		format = cfg.Format
	}
	return a.newRenderer(format)
}

func workDir(opts Options) string {
	if opts.Dir == "" {
		return "."
	}
	return filepath.Clean(opts.Dir)
}

func removeStoreFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove report store"), "path", path)
	}
	return nil
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
