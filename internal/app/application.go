package app

import (
	"launch-profiles/internal/autostart"
	"launch-profiles/internal/config"
	"launch-profiles/internal/events"
	"launch-profiles/internal/gui"
	"launch-profiles/internal/logger"
	"launch-profiles/internal/platform"
	"launch-profiles/internal/profile"
	"launch-profiles/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const EventBufferSize = 64

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	handlers   *Handlers
	bus        *events.Bus
	watcher    *profile.Watcher
	shutdown   *shutdown.Manager
	logger     logger.Logger
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(config.AppID)
	window := fyneApp.NewWindow(config.AppName)

	window.Resize(fyne.NewSize(gui.WindowWidth, gui.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	palette := initialPalette(cfg, fyneApp)

	log.Info("Application", "starting application", map[string]interface{}{
		"profile_file": cfg.ProfileFile,
		"palette":      palette.Name,
		"log_level":    cfg.LogLevel.String(),
	})

	guiManager := gui.NewManager(fyneApp, window, log, palette)

	registrar, err := autostart.New(config.AppName, config.AppID)
	if err != nil {
		log.Warning("Application", "autostart unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		registrar = unavailableRegistrar{}
	}

	bus := events.NewBus(EventBufferSize)
	bus.OnPanic(func(r interface{}) {
		log.Warning("EventBus", "handler panicked", map[string]interface{}{"panic": r})
	})
	subscribeEventLog(bus, log)

	repo := profile.NewRepository(cfg.ProfileFile)
	handlers := NewHandlers(HandlersConfig{
		Repository: repo,
		Launcher:   NewLauncher(platform.FyneURLOpener{App: fyneApp}),
		Registrar:  registrar,
		View:       guiManager,
		Bus:        bus,
		Logger:     log,
		Prefs:      fyneApp.Preferences(),
		RunOnUI:    fyne.Do,
	})

	guiManager.SetNewHandler(handlers.HandleNew)
	guiManager.SetEditHandler(handlers.HandleEdit)
	guiManager.SetDeleteHandler(handlers.HandleDelete)
	guiManager.SetRunHandler(handlers.HandleRun)
	guiManager.SetApplyAutostartHandler(handlers.HandleApplyAutostart)
	guiManager.SetToggleThemeHandler(handlers.HandleToggleTheme)

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register(bus)

	watcher, err := profile.NewWatcher(repo.Path(), profile.DefaultDebounce, handlers.HandleStoreChanged, func(err error) {
		log.Error("ProfileWatcher", err, nil)
	})
	if err != nil {
		log.Warning("Application", "profile file watch disabled", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		shutdownManager.Register(watcher)
	}
	shutdownManager.Register(guiManager)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		handlers:   handlers,
		bus:        bus,
		watcher:    watcher,
		shutdown:   shutdownManager,
		logger:     log,
	}

	handlers.Refresh()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"profiles": handlers.Store().Len(),
	})
	return application, nil
}

// initialPalette prefers the configured theme, then the saved preference,
// then the system variant.
func initialPalette(cfg config.Config, fyneApp fyne.App) gui.Palette {
	if cfg.Theme != "" {
		return gui.PaletteByName(cfg.Theme)
	}
	if saved := fyneApp.Preferences().String(themePreferenceKey); saved != "" {
		return gui.PaletteByName(saved)
	}
	if fyneApp.Settings().ThemeVariant() == gui.Dark.Variant() {
		return gui.Dark
	}
	return gui.Light
}

func subscribeEventLog(bus *events.Bus, log logger.Logger) {
	handler := events.HandlerFunc(func(e events.Event) {
		log.Debug("EventBus", e.Type, e.Data)
	})
	for _, t := range []string{
		events.ProfileSaved,
		events.ProfileDeleted,
		events.LaunchCompleted,
		events.StoreChanged,
		events.AutostartChanged,
	} {
		bus.Subscribe(t, handler)
	}
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.shutdown.Shutdown()
		a.window.Close()
	})
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	return nil
}

// unavailableRegistrar keeps the checkbox usable when the login mechanism
// cannot be located.
type unavailableRegistrar struct{}

func (unavailableRegistrar) IsEnabled() bool      { return false }
func (unavailableRegistrar) SetEnabled(bool) bool { return false }
