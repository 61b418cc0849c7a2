package gui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"launch-profiles/internal/gui/components"
	"launch-profiles/internal/logger"
	"launch-profiles/internal/profile"
)

const (
	WindowWidth  = 900
	WindowHeight = 640

	MessageDuration = 3 * time.Second
	EmptyListText   = "No profiles yet"
)

// Manager owns the main window content: the profile card list, the action
// buttons, the autostart toggle and the status bar.
type Manager struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	palette Palette

	title          *canvas.Text
	themeButton    *widget.Button
	cards          *fyne.Container
	autostartCheck *widget.Check
	status         *components.StatusBar
	content        *fyne.Container

	newButton    *widget.Button
	editButton   *widget.Button
	deleteButton *widget.Button
	runButton    *widget.Button
	applyButton  *widget.Button

	store      profile.Store
	selected   string
	cardByName map[string]*components.ProfileCard

	newHandler            func()
	editHandler           func(name string)
	deleteHandler         func(name string)
	runHandler            func(name string)
	applyAutostartHandler func(enabled bool)
	toggleThemeHandler    func()
}

func NewManager(fyneApp fyne.App, window fyne.Window, log logger.Logger, palette Palette) *Manager {
	m := &Manager{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		palette:    palette,
		store:      profile.NewStore(),
		cardByName: map[string]*components.ProfileCard{},
	}
	m.build()
	m.ApplyPalette(palette)

	log.Debug("GUIManager", "initialized", map[string]interface{}{
		"palette": palette.Name,
	})
	return m
}

func (m *Manager) build() {
	m.title = canvas.NewText("Launch Profiles", m.palette.Text)
	m.title.TextSize = 22
	m.title.TextStyle = fyne.TextStyle{Bold: true}
	m.themeButton = widget.NewButton("", func() { call0(m.toggleThemeHandler) })
	header := container.NewBorder(nil, nil, nil, m.themeButton, m.title)

	m.cards = container.NewVBox()
	scroll := container.NewVScroll(m.cards)

	m.autostartCheck = widget.NewCheck("Start at login", nil)
	m.applyButton = widget.NewButton("Apply", func() {
		if m.applyAutostartHandler != nil {
			m.applyAutostartHandler(m.autostartCheck.Checked)
		}
	})
	autostartRow := container.NewBorder(nil, nil, m.autostartCheck, m.applyButton)

	m.newButton = widget.NewButtonWithIcon("New profile", theme.ContentAddIcon(), func() { call0(m.newHandler) })
	m.newButton.Importance = widget.HighImportance
	m.editButton = widget.NewButtonWithIcon("Edit", theme.DocumentCreateIcon(), func() { call1(m.editHandler, m.selected) })
	m.deleteButton = widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), func() { call1(m.deleteHandler, m.selected) })
	m.deleteButton.Importance = widget.DangerImportance
	m.runButton = widget.NewButtonWithIcon("Run", theme.MediaPlayIcon(), func() { call1(m.runHandler, m.selected) })
	m.runButton.Importance = widget.HighImportance
	actions := container.NewBorder(nil, nil,
		container.NewHBox(m.newButton, m.editButton, m.deleteButton),
		m.runButton,
	)

	m.status = components.NewStatusBar()

	footer := container.NewVBox(autostartRow, actions, m.status.GetContainer())
	m.content = container.NewPadded(container.NewBorder(header, footer, nil, nil, scroll))
}

func call0(fn func()) {
	if fn != nil {
		fn()
	}
}

func call1(fn func(string), name string) {
	if fn != nil {
		fn(name)
	}
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return m.content
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) SetNewHandler(handler func())                { m.newHandler = handler }
func (m *Manager) SetEditHandler(handler func(string))         { m.editHandler = handler }
func (m *Manager) SetDeleteHandler(handler func(string))       { m.deleteHandler = handler }
func (m *Manager) SetRunHandler(handler func(string))          { m.runHandler = handler }
func (m *Manager) SetApplyAutostartHandler(handler func(bool)) { m.applyAutostartHandler = handler }
func (m *Manager) SetToggleThemeHandler(handler func())        { m.toggleThemeHandler = handler }

// ShowProfiles rebuilds the card list from store. The selection survives if
// the selected profile still exists.
func (m *Manager) ShowProfiles(store profile.Store) {
	m.store = store.Clone()
	if _, ok := m.store.Get(m.selected); !ok {
		m.selected = ""
	}
	m.renderCards()
}

func (m *Manager) renderCards() {
	m.cards.RemoveAll()
	m.cardByName = map[string]*components.ProfileCard{}

	colors := m.cardColors()
	names := m.store.Names()
	if len(names) == 0 {
		m.cards.Add(components.NewPlaceholderCard(EmptyListText, colors))
	}
	for _, name := range names {
		p, _ := m.store.Get(name)
		card := components.NewProfileCard(name, p.Summary().String(), colors, m.Select)
		card.SetSelected(name == m.selected)
		m.cardByName[name] = card
		m.cards.Add(card)
	}
	m.cards.Refresh()
	m.updateActions()
}

func (m *Manager) cardColors() components.CardColors {
	return components.CardColors{
		Card:    m.palette.Card,
		Border:  m.palette.Border,
		Text:    m.palette.Text,
		Subtext: m.palette.Subtext,
		Primary: m.palette.Primary,
	}
}

// Select highlights name's card; unknown names clear the selection.
func (m *Manager) Select(name string) {
	if _, ok := m.cardByName[name]; !ok {
		name = ""
	}
	m.selected = name
	for n, card := range m.cardByName {
		card.SetSelected(n == name)
	}
	m.updateActions()
	if name != "" {
		m.ShowMessage(fmt.Sprintf("Selected: %s", name), 2*time.Second)
	}
}

func (m *Manager) Selected() string {
	return m.selected
}

func (m *Manager) CardCount() int {
	return len(m.cards.Objects)
}

func (m *Manager) updateActions() {
	for _, b := range []*widget.Button{m.editButton, m.deleteButton} {
		if m.selected == "" {
			b.Disable()
		} else {
			b.Enable()
		}
	}
}

func (m *Manager) SetAutostart(enabled bool) {
	m.autostartCheck.SetChecked(enabled)
}

func (m *Manager) AutostartChecked() bool {
	return m.autostartCheck.Checked
}

// ApplyPalette switches the app theme and repaints the cards.
func (m *Manager) ApplyPalette(p Palette) {
	m.palette = p
	m.fyneApp.Settings().SetTheme(NewTheme(p))
	m.title.Color = p.Text
	m.title.Refresh()
	// The button offers the other theme.
	if p.Name == Dark.Name {
		m.themeButton.SetText("Light")
		m.themeButton.SetIcon(theme.VisibilityIcon())
	} else {
		m.themeButton.SetText("Dark")
		m.themeButton.SetIcon(theme.VisibilityOffIcon())
	}
	m.renderCards()
}

func (m *Manager) Palette() Palette {
	return m.palette
}

func (m *Manager) UpdateStatus(status string) {
	m.status.SetStatus(status)
}

func (m *Manager) ShowMessage(message string, d time.Duration) {
	m.status.ShowMessage(message, d)
}

func (m *Manager) StatusText() string {
	return m.status.Text()
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})
	dialog.ShowError(err, m.window)
}

// ConfirmDelete asks before onConfirm runs.
func (m *Manager) ConfirmDelete(name string, onConfirm func()) {
	dialog.ShowConfirm("Delete profile", fmt.Sprintf("Delete profile «%s»?", name), func(ok bool) {
		if ok {
			onConfirm()
		}
	}, m.window)
}

// ShowEditor opens the profile editor. oldName is empty for a new profile.
func (m *Manager) ShowEditor(oldName string, p profile.Profile, onSave func(components.EditorResult)) {
	components.NewProfileEditor(m.window, oldName, p, onSave).Show()
}

// Shutdown stops the status bar's pending timers so none fire into a closed
// window.
func (m *Manager) Shutdown() {
	m.status.Stop()
	m.logger.Info("GUIManager", "shutdown completed", nil)
}
