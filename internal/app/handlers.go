package app

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"launch-profiles/internal/autostart"
	"launch-profiles/internal/events"
	"launch-profiles/internal/gui"
	"launch-profiles/internal/gui/components"
	"launch-profiles/internal/launcher"
	"launch-profiles/internal/logger"
	"launch-profiles/internal/profile"
)

const themePreferenceKey = "theme"

// View is the part of the GUI the handlers drive.
type View interface {
	ShowProfiles(store profile.Store)
	Select(name string)
	SetAutostart(enabled bool)
	ApplyPalette(p gui.Palette)
	Palette() gui.Palette
	UpdateStatus(status string)
	ShowMessage(message string, d time.Duration)
	ShowError(title string, err error)
	ConfirmDelete(name string, onConfirm func())
	ShowEditor(oldName string, p profile.Profile, onSave func(components.EditorResult))
}

type ProfileLauncher interface {
	Launch(name string, p profile.Profile) launcher.Report
}

// Preferences persists small UI choices. fyne.Preferences satisfies it.
type Preferences interface {
	String(key string) string
	SetString(key string, value string)
}

// Handlers reacts to user actions. It keeps the last store it loaded or wrote
// for display and launching; every mutation still reloads from disk first.
type Handlers struct {
	repo      *profile.Repository
	launcher  ProfileLauncher
	registrar autostart.Registrar
	view      View
	bus       *events.Bus
	logger    logger.Logger
	prefs     Preferences

	// runOnUI marshals work onto the GUI goroutine; async runs launches off it.
	runOnUI func(func())
	async   func(func())

	mu    sync.Mutex
	store profile.Store
}

type HandlersConfig struct {
	Repository *profile.Repository
	Launcher   ProfileLauncher
	Registrar  autostart.Registrar
	View       View
	Bus        *events.Bus
	Logger     logger.Logger
	Prefs      Preferences
	RunOnUI    func(func())
	Async      func(func())
}

func NewHandlers(cfg HandlersConfig) *Handlers {
	h := &Handlers{
		repo:      cfg.Repository,
		launcher:  cfg.Launcher,
		registrar: cfg.Registrar,
		view:      cfg.View,
		bus:       cfg.Bus,
		logger:    cfg.Logger,
		prefs:     cfg.Prefs,
		runOnUI:   cfg.RunOnUI,
		async:     cfg.Async,
		store:     profile.NewStore(),
	}
	if h.logger == nil {
		h.logger = logger.NoOpLogger{}
	}
	if h.runOnUI == nil {
		h.runOnUI = func(fn func()) { fn() }
	}
	if h.async == nil {
		h.async = func(fn func()) { go fn() }
	}
	return h
}

func (h *Handlers) Store() profile.Store {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.store.Clone()
}

func (h *Handlers) setStore(store profile.Store) {
	h.mu.Lock()
	h.store = store
	h.mu.Unlock()
}

// Refresh loads the store and autostart state into the view.
func (h *Handlers) Refresh() {
	store := h.repo.Load()
	h.setStore(store)
	h.view.ShowProfiles(store)
	h.view.SetAutostart(h.registrar.IsEnabled())
}

func (h *Handlers) HandleNew() {
	h.view.ShowEditor("", profile.Profile{}, h.HandleSave)
}

func (h *Handlers) HandleEdit(name string) {
	if name == "" {
		return
	}
	p, ok := h.Store().Get(name)
	if !ok {
		return
	}
	h.view.ShowEditor(name, p, h.HandleSave)
}

// HandleSave persists an editor result, renaming when the name changed.
func (h *Handlers) HandleSave(res components.EditorResult) {
	name := strings.TrimSpace(res.Name)
	store, err := h.repo.Upsert(res.OldName, name, res.Profile)
	if err != nil {
		h.view.ShowError("Save profile", fmt.Errorf("save profile %q: %w", name, err))
		return
	}
	h.setStore(store)
	h.view.ShowProfiles(store)
	h.view.Select(name)

	verb := "saved"
	if res.OldName != "" {
		verb = "updated"
	}
	h.view.ShowMessage(fmt.Sprintf("Profile «%s» %s", name, verb), gui.MessageDuration)
	h.publish(events.ProfileSaved, map[string]interface{}{
		"name":     name,
		"old_name": res.OldName,
		"apps":     len(res.Profile.Apps),
		"urls":     len(res.Profile.URLs),
	})
}

func (h *Handlers) HandleDelete(name string) {
	if name == "" {
		return
	}
	h.view.ConfirmDelete(name, func() {
		store, err := h.repo.Delete(name)
		if err != nil {
			h.view.ShowError("Delete profile", fmt.Errorf("delete profile %q: %w", name, err))
			return
		}
		h.setStore(store)
		h.view.ShowProfiles(store)
		h.view.ShowMessage(fmt.Sprintf("Profile «%s» deleted", name), gui.MessageDuration)
		h.publish(events.ProfileDeleted, map[string]interface{}{"name": name})
	})
}

// HandleRun launches name from the in-memory store without blocking the GUI.
func (h *Handlers) HandleRun(name string) {
	if name == "" {
		h.view.ShowMessage("Select a profile first", gui.MessageDuration)
		return
	}
	p, ok := h.Store().Get(name)
	if !ok {
		h.view.ShowMessage(fmt.Sprintf("Profile «%s» no longer exists", name), gui.MessageDuration)
		return
	}

	h.view.UpdateStatus(fmt.Sprintf("Launching profile: %s…", name))
	h.async(func() {
		report := h.launcher.Launch(name, p)
		LogReport(h.logger, report)
		h.publish(events.LaunchCompleted, reportFields(report))
		h.runOnUI(func() {
			h.view.ShowMessage(fmt.Sprintf("Done: %s (%s)", name, DescribeReport(report)), gui.MessageDuration)
		})
	})
}

func (h *Handlers) HandleApplyAutostart(enabled bool) {
	ok := h.registrar.SetEnabled(enabled)
	var msg string
	switch {
	case enabled && ok:
		msg = "Autostart enabled"
	case enabled:
		msg = "Could not enable autostart"
	case ok:
		msg = "Autostart disabled"
	default:
		msg = "Could not disable autostart"
	}
	h.view.ShowMessage(msg, gui.MessageDuration)
	h.view.SetAutostart(h.registrar.IsEnabled())
	h.publish(events.AutostartChanged, map[string]interface{}{"requested": enabled, "ok": ok})
}

func (h *Handlers) HandleToggleTheme() {
	next := h.view.Palette().Toggled()
	h.view.ApplyPalette(next)
	h.view.ShowProfiles(h.Store())
	if h.prefs != nil {
		h.prefs.SetString(themePreferenceKey, next.Name)
	}
}

// HandleStoreChanged reloads after the file changed on disk. It may be called
// from any goroutine.
func (h *Handlers) HandleStoreChanged() {
	store := h.repo.Load()
	h.setStore(store)
	h.runOnUI(func() {
		h.view.ShowProfiles(store)
	})
	h.publish(events.StoreChanged, map[string]interface{}{"profiles": store.Len()})
}

func (h *Handlers) publish(eventType string, data map[string]interface{}) {
	if h.bus != nil {
		h.bus.Publish(eventType, data)
	}
}

// DescribeReport summarises a launch for the status bar.
func DescribeReport(r launcher.Report) string {
	return fmt.Sprintf("%d launched, %d skipped, %d failed",
		r.Count(launcher.Launched), r.Count(launcher.Skipped), r.Count(launcher.Failed))
}

// LogReport writes one line per launch and one warning per failed item.
func LogReport(log logger.Logger, r launcher.Report) {
	log.Info("Launcher", "profile launched", reportFields(r))
	for _, item := range r.Failures() {
		log.Warning("Launcher", "item failed to start", map[string]interface{}{
			"run_id":   r.RunID,
			"kind":     string(item.Kind),
			"target":   item.Target,
			"resolved": item.Resolved,
			"error":    item.Err.Error(),
		})
	}
	for _, item := range r.Items {
		if item.Outcome == launcher.Skipped {
			log.Debug("Launcher", "item skipped", map[string]interface{}{
				"run_id":   r.RunID,
				"kind":     string(item.Kind),
				"target":   item.Target,
				"resolved": item.Resolved,
			})
		}
	}
}

func reportFields(r launcher.Report) map[string]interface{} {
	return map[string]interface{}{
		"run_id":      r.RunID,
		"profile":     r.Profile,
		"launched":    r.Count(launcher.Launched),
		"skipped":     r.Count(launcher.Skipped),
		"failed":      r.Count(launcher.Failed),
		"duration_ms": r.Duration().Milliseconds(),
	}
}
