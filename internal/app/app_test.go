package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"iter"
	"path/filepath"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reach/internal/adapters/telemetry"
	"go.trai.ch/reach/internal/app"
	"go.trai.ch/reach/internal/core/domain"
	"go.trai.ch/reach/internal/core/ports"
	"go.trai.ch/reach/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader   *mocks.MockConfigLoader
	resolver *mocks.MockInputResolver
	schemas  *mocks.MockSchemaLoader
	printer  *mocks.MockSchemaPrinter
	hasher   *mocks.MockHasher
	logger   *mocks.MockLogger
	store    *mocks.MockReportStore
	renderer *mocks.MockRenderer
	watcher  *mocks.MockWatcher
	app      *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		resolver: mocks.NewMockInputResolver(ctrl),
		schemas:  mocks.NewMockSchemaLoader(ctrl),
		printer:  mocks.NewMockSchemaPrinter(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		store:    mocks.NewMockReportStore(ctrl),
		renderer: mocks.NewMockRenderer(ctrl),
		watcher:  mocks.NewMockWatcher(ctrl),
	}
	f.app = app.New(f.loader, f.resolver, f.schemas, f.printer, f.hasher, f.logger, telemetry.NewNoOpTracer()).
		WithStore(func(string) (ports.ReportStore, error) { return f.store, nil }).
		WithRenderer(func(string) (ports.Renderer, error) { return f.renderer, nil }).
		WithWatcher(func() (ports.Watcher, error) { return f.watcher, nil })
	return f
}

// testSchema declares Query -> User -> ID and an Orphan nothing references.
func testSchema(t *testing.T) *domain.Schema {
	t.Helper()
	s := domain.NewSchema()
	require.NoError(t, s.AddBuiltinType(&domain.ScalarType{Name: domain.NewInternedString("ID")}))
	require.NoError(t, s.AddType(&domain.ObjectType{
		Name:   domain.NewInternedString("Query"),
		Fields: []domain.Field{{Name: "user", Type: domain.Named("User")}},
	}))
	require.NoError(t, s.AddType(&domain.ObjectType{
		Name:   domain.NewInternedString("User"),
		Fields: []domain.Field{{Name: "id", Type: domain.NonNullOf(domain.Named("ID"))}},
	}))
	require.NoError(t, s.AddType(&domain.ObjectType{
		Name:   domain.NewInternedString("Orphan"),
		Fields: []domain.Field{{Name: "id", Type: domain.Named("ID")}},
	}))
	s.SetRoot(domain.OperationQuery, "Query")
	return s
}

func testConfig(cache string) *domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Schema = []string{"schema.graphql"}
	cfg.Cache = cache
	return cfg
}

// expectLoad sets up a successful config, resolve, load and fingerprint sequence.
func (f *fixture) expectLoad(t *testing.T, cfg *domain.Config) *domain.Schema {
	t.Helper()
	schema := testSchema(t)
	f.loader.EXPECT().Load(".").Return(cfg, nil)
	f.resolver.EXPECT().ResolveInputs(cfg.Schema, cfg.Root).Return([]string{"schema.graphql"}, nil)
	f.schemas.EXPECT().Load(gomock.Any(), []string{"schema.graphql"}).Return(schema, nil)
	f.hasher.EXPECT().Fingerprint(schema, gomock.Any(), cfg.Ignore).Return("fp", nil)
	return schema
}

func TestApp_Analyze(t *testing.T) {
	f := newFixture(t)
	f.expectLoad(t, testConfig(""))

	report, err := f.app.Analyze(context.Background(), app.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"ID", "Query", "User"}, report.Reachable)
	assert.Equal(t, []string{"Orphan"}, report.Unreachable)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, "fp", report.Fingerprint)
	assert.False(t, report.CreatedAt.IsZero())
}

func TestApp_Analyze_StoreHit(t *testing.T) {
	f := newFixture(t)
	f.expectLoad(t, testConfig(".reach/reports.json"))

	stored := &domain.Report{Fingerprint: "fp", Reachable: []string{"Query"}, Unreachable: []string{}}
	f.store.EXPECT().Get("fp").Return(stored, nil)

	report, err := f.app.Analyze(context.Background(), app.Options{})
	require.NoError(t, err)
	assert.Same(t, stored, report)
}

func TestApp_Analyze_StoreMissPutsReport(t *testing.T) {
	f := newFixture(t)
	f.expectLoad(t, testConfig(".reach/reports.json"))

	f.store.EXPECT().Get("fp").Return(nil, nil)
	f.store.EXPECT().Put(gomock.Any()).DoAndReturn(func(r domain.Report) error {
		assert.Equal(t, "fp", r.Fingerprint)
		assert.Equal(t, []string{"Orphan"}, r.Unreachable)
		return nil
	})

	_, err := f.app.Analyze(context.Background(), app.Options{})
	require.NoError(t, err)
}

func TestApp_Analyze_NoCacheSkipsLookup(t *testing.T) {
	f := newFixture(t)
	f.expectLoad(t, testConfig(".reach/reports.json"))

	f.store.EXPECT().Get(gomock.Any()).Times(0)
	f.store.EXPECT().Put(gomock.Any()).Return(nil)

	_, err := f.app.Analyze(context.Background(), app.Options{NoCache: true})
	require.NoError(t, err)
}

func TestApp_Analyze_StoreErrorsAreWarnings(t *testing.T) {
	f := newFixture(t)
	f.expectLoad(t, testConfig(".reach/reports.json"))

	f.store.EXPECT().Get("fp").Return(nil, errors.New("corrupt"))
	f.store.EXPECT().Put(gomock.Any()).Return(errors.New("read-only"))
	f.logger.EXPECT().Warn(gomock.Any()).Times(2)

	report, err := f.app.Analyze(context.Background(), app.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Orphan"}, report.Unreachable)
}

func TestApp_Analyze_RetainedAndIgnored(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig("")
	cfg.Retain = []string{"Missing"}
	cfg.Ignore = []string{"Orph*"}
	f.expectLoad(t, cfg)

	f.logger.EXPECT().Warn("retained type Missing is not declared in the schema")

	report, err := f.app.Analyze(context.Background(), app.Options{Retain: []string{"Missing"}})
	require.NoError(t, err)
	assert.Empty(t, report.Unreachable)
	assert.Equal(t, 3, report.Total)
}

func TestApp_Analyze_RetainMakesTypeReachable(t *testing.T) {
	f := newFixture(t)
	f.expectLoad(t, testConfig(""))

	report, err := f.app.Analyze(context.Background(), app.Options{Retain: []string{"Orphan"}})
	require.NoError(t, err)
	assert.Contains(t, report.Reachable, "Orphan")
	assert.Empty(t, report.Unreachable)
}

func TestApp_Analyze_InputsOverrideConfig(t *testing.T) {
	f := newFixture(t)
	schema := testSchema(t)
	dir := filepath.Join("projects", "api")

	f.loader.EXPECT().Load(dir).Return(testConfig(""), nil)
	f.resolver.EXPECT().ResolveInputs([]string{"*.graphqls"}, dir).Return([]string{"a.graphqls"}, nil)
	f.schemas.EXPECT().Load(gomock.Any(), []string{"a.graphqls"}).Return(schema, nil)
	f.hasher.EXPECT().Fingerprint(schema, gomock.Any(), gomock.Any()).Return("fp", nil)

	_, err := f.app.Analyze(context.Background(), app.Options{Dir: dir, Inputs: []string{"*.graphqls"}})
	require.NoError(t, err)
}

func TestApp_Analyze_ExplicitConfigFile(t *testing.T) {
	f := newFixture(t)
	schema := testSchema(t)
	cfg := testConfig("")

	f.loader.EXPECT().LoadFile("custom/reach.yaml").Return(cfg, nil)
	f.resolver.EXPECT().ResolveInputs(cfg.Schema, cfg.Root).Return([]string{"schema.graphql"}, nil)
	f.schemas.EXPECT().Load(gomock.Any(), gomock.Any()).Return(schema, nil)
	f.hasher.EXPECT().Fingerprint(schema, gomock.Any(), gomock.Any()).Return("fp", nil)

	_, err := f.app.Analyze(context.Background(), app.Options{ConfigPath: "custom/reach.yaml"})
	require.NoError(t, err)
}

func TestApp_Analyze_NoInputs(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(domain.DefaultConfig(), nil)

	_, err := f.app.Analyze(context.Background(), app.Options{})
	require.ErrorIs(t, err, domain.ErrNoSchemaInputs)
}

func TestApp_Analyze_ConfigError(t *testing.T) {
	f := newFixture(t)
	loadErr := errors.New("config load error")
	f.loader.EXPECT().Load(".").Return(nil, loadErr)

	_, err := f.app.Analyze(context.Background(), app.Options{})
	require.ErrorIs(t, err, loadErr)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Analyze_SchemaError(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig("")
	loadErr := errors.New("syntax error")

	f.loader.EXPECT().Load(".").Return(cfg, nil)
	f.resolver.EXPECT().ResolveInputs(gomock.Any(), gomock.Any()).Return([]string{"schema.graphql"}, nil)
	f.schemas.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, loadErr)

	_, err := f.app.Analyze(context.Background(), app.Options{})
	require.ErrorIs(t, err, loadErr)
}

func TestApp_Analyze_InvalidIgnorePattern(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig("")
	cfg.Ignore = []string{"[unterminated"}
	f.expectLoad(t, cfg)

	_, err := f.app.Analyze(context.Background(), app.Options{})
	require.ErrorIs(t, err, domain.ErrInvalidPattern)
}

func TestApp_Types(t *testing.T) {
	f := newFixture(t)
	f.expectLoad(t, testConfig(""))

	var buf bytes.Buffer
	f.renderer.EXPECT().Reachable(&buf, gomock.Any()).DoAndReturn(func(w io.Writer, r *domain.Report) error {
		_, err := io.WriteString(w, "rendered")
		assert.Equal(t, []string{"ID", "Query", "User"}, r.Reachable)
		return err
	})

	require.NoError(t, f.app.Types(context.Background(), app.Options{}, &buf))
	assert.Equal(t, "rendered", buf.String())
}

func TestApp_Types_FormatOverride(t *testing.T) {
	f := newFixture(t)
	f.expectLoad(t, testConfig(""))

	var formats []string
	f.app.WithRenderer(func(format string) (ports.Renderer, error) {
		formats = append(formats, format)
		return f.renderer, nil
	})
	f.renderer.EXPECT().Reachable(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.app.Types(context.Background(), app.Options{Format: domain.FormatJSON}, io.Discard))
	assert.Equal(t, []string{domain.FormatJSON}, formats)
}

func TestApp_Unused(t *testing.T) {
	f := newFixture(t)
	f.expectLoad(t, testConfig(""))
	f.renderer.EXPECT().Unused(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.app.Unused(context.Background(), app.UnusedOptions{}, io.Discard))
}

func TestApp_Unused_Fail(t *testing.T) {
	f := newFixture(t)
	f.expectLoad(t, testConfig(""))
	f.renderer.EXPECT().Unused(gomock.Any(), gomock.Any()).Return(nil)

	err := f.app.Unused(context.Background(), app.UnusedOptions{Fail: true}, io.Discard)
	require.ErrorIs(t, err, domain.ErrUnreachableTypes)
}

func TestApp_Unused_FailWithNothingUnreachable(t *testing.T) {
	f := newFixture(t)
	f.expectLoad(t, testConfig(""))
	f.renderer.EXPECT().Unused(gomock.Any(), gomock.Any()).Return(nil)

	opts := app.UnusedOptions{Options: app.Options{Retain: []string{"Orphan"}}, Fail: true}
	require.NoError(t, f.app.Unused(context.Background(), opts, io.Discard))
}

func TestApp_Prune(t *testing.T) {
	f := newFixture(t)
	schema := f.expectLoad(t, testConfig(""))

	f.printer.EXPECT().Print(io.Discard, schema, gomock.Any()).DoAndReturn(
		func(_ io.Writer, _ *domain.Schema, keep *domain.ReachableSet) error {
			assert.True(t, keep.Has("User"))
			assert.False(t, keep.Has("Orphan"))
			return nil
		})

	require.NoError(t, f.app.Prune(context.Background(), app.Options{}, io.Discard))
}

func TestApp_Prune_PrintError(t *testing.T) {
	f := newFixture(t)
	f.expectLoad(t, testConfig(""))
	printErr := errors.New("disk full")
	f.printer.EXPECT().Print(gomock.Any(), gomock.Any(), gomock.Any()).Return(printErr)

	err := f.app.Prune(context.Background(), app.Options{}, io.Discard)
	require.ErrorIs(t, err, printErr)
}

func TestApp_Clean(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(testConfig(".reach/reports.json"), nil)
	f.store.EXPECT().Clear().Return(nil)
	f.logger.EXPECT().Info("removed .reach/reports.json")

	require.NoError(t, f.app.Clean(context.Background(), app.CleanOptions{}))
}

func TestApp_Clean_Disabled(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(testConfig(""), nil)
	f.logger.EXPECT().Info("report store is disabled")

	require.NoError(t, f.app.Clean(context.Background(), app.CleanOptions{}))
}

func TestApp_Clean_UnreadableStore(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(t.TempDir(), "reports.json")
	f.loader.EXPECT().Load(".").Return(testConfig(path), nil)
	f.logger.EXPECT().Warn(gomock.Any())
	f.app.WithStore(func(string) (ports.ReportStore, error) { return nil, errors.New("bad json") })

	require.NoError(t, f.app.Clean(context.Background(), app.CleanOptions{}))
}

func eventsOf(paths ...string) iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for _, p := range paths {
			if !yield(ports.WatchEvent{Path: p}) {
				return
			}
		}
	}
}

func TestApp_Watch(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig("")
	schema := testSchema(t)
	f.app.WithDebounce(time.Hour)

	f.loader.EXPECT().Load(".").Return(cfg, nil).Times(3)
	f.resolver.EXPECT().ResolveInputs(gomock.Any(), gomock.Any()).Return([]string{"schema.graphql"}, nil).Times(2)
	f.schemas.EXPECT().Load(gomock.Any(), gomock.Any()).Return(schema, nil).Times(2)
	f.hasher.EXPECT().Fingerprint(gomock.Any(), gomock.Any(), gomock.Any()).Return("fp", nil).Times(2)
	f.renderer.EXPECT().Unused(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	f.watcher.EXPECT().Start(gomock.Any(), cfg.Root).Return(nil)
	f.watcher.EXPECT().Events().Return(eventsOf("schema.graphql", "schema.graphql"))
	f.watcher.EXPECT().Stop().Return(nil)
	f.logger.EXPECT().Info("watching . for schema changes")
	f.logger.EXPECT().Info("1 file changed")

	require.NoError(t, f.app.Watch(context.Background(), app.Options{}, io.Discard))
}

func TestApp_Watch_CancelWaitsForRunningCheck(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		cfg := testConfig("")
		schema := testSchema(t)
		f.app.WithDebounce(10 * time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		started := make(chan struct{})
		release := make(chan struct{})

		f.loader.EXPECT().Load(".").Return(cfg, nil).Times(3)
		f.resolver.EXPECT().ResolveInputs(gomock.Any(), gomock.Any()).Return([]string{"schema.graphql"}, nil).Times(2)
		f.schemas.EXPECT().Load(gomock.Any(), gomock.Any()).Return(schema, nil).Times(2)
		f.hasher.EXPECT().Fingerprint(gomock.Any(), gomock.Any(), gomock.Any()).Return("fp", nil).Times(2)
		f.renderer.EXPECT().Unused(gomock.Any(), gomock.Any()).Return(nil)
		f.renderer.EXPECT().Unused(gomock.Any(), gomock.Any()).DoAndReturn(func(io.Writer, *domain.Report) error {
			close(started)
			<-release
			return nil
		})

		f.watcher.EXPECT().Start(gomock.Any(), cfg.Root).Return(nil)
		f.watcher.EXPECT().Events().Return(func(yield func(ports.WatchEvent) bool) {
			if yield(ports.WatchEvent{Path: "schema.graphql"}) {
				<-ctx.Done()
			}
		})
		f.watcher.EXPECT().Stop().Return(nil)
		f.logger.EXPECT().Info("watching . for schema changes")
		f.logger.EXPECT().Info("1 file changed")

		done := make(chan error, 1)
		go func() { done <- f.app.Watch(ctx, app.Options{}, io.Discard) }()

		<-started
		cancel()
		synctest.Wait()

		select {
		case <-done:
			t.Fatal("Watch returned while a check was still writing")
		default:
		}

		close(release)
		require.NoError(t, <-done)
	})
}

func TestApp_Watch_InitialRunErrorIsLogged(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.loader.EXPECT().Load(".").Return(domain.DefaultConfig(), nil).Times(2)
	f.logger.EXPECT().Error(gomock.Any())
	f.logger.EXPECT().Info(gomock.Any())
	f.watcher.EXPECT().Start(gomock.Any(), ".").Return(nil)
	f.watcher.EXPECT().Events().Return(eventsOf("schema.graphql"))
	f.watcher.EXPECT().Stop().Return(nil)

	require.NoError(t, f.app.Watch(ctx, app.Options{}, io.Discard))
}

func TestApp_Watch_StartError(t *testing.T) {
	f := newFixture(t)
	startErr := errors.New("too many open files")

	f.loader.EXPECT().Load(".").Return(domain.DefaultConfig(), nil).Times(2)
	f.logger.EXPECT().Error(gomock.Any())
	f.watcher.EXPECT().Start(gomock.Any(), ".").Return(startErr)
	f.watcher.EXPECT().Stop().Return(nil)

	err := f.app.Watch(context.Background(), app.Options{}, io.Discard)
	require.ErrorIs(t, err, startErr)
}
