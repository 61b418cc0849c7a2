package components

import (
	"errors"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"launch-profiles/internal/profile"
)

var errNameRequired = errors.New("a profile needs a name")

// EditorResult is what the editor hands back on save.
type EditorResult struct {
	OldName string
	Name    string
	Profile profile.Profile
}

// ProfileEditor is the create/edit dialog for a single profile.
type ProfileEditor struct {
	window  fyne.Window
	oldName string
	onSave  func(EditorResult)

	nameEntry    *widget.Entry
	browserEntry *widget.Entry
	urlEntry     *widget.Entry
	appsList     *widget.List
	urlsList     *widget.List

	apps        []string
	urls        []string
	selectedApp int
	selectedURL int
}

// NewProfileEditor prepares an editor. oldName is empty for a new profile.
func NewProfileEditor(window fyne.Window, oldName string, p profile.Profile, onSave func(EditorResult)) *ProfileEditor {
	e := &ProfileEditor{
		window:      window,
		oldName:     oldName,
		onSave:      onSave,
		apps:        append([]string(nil), p.Apps...),
		urls:        append([]string(nil), p.URLs...),
		selectedApp: -1,
		selectedURL: -1,
	}

	e.nameEntry = widget.NewEntry()
	e.nameEntry.SetText(oldName)
	e.nameEntry.SetPlaceHolder("Work, Study, Gaming…")

	e.browserEntry = widget.NewEntry()
	e.browserEntry.SetText(p.BrowserPath)
	e.browserEntry.SetPlaceHolder("Default browser")

	e.urlEntry = widget.NewEntry()
	e.urlEntry.SetPlaceHolder("https://")
	e.urlEntry.OnSubmitted = func(string) { e.addURLFromEntry() }

	e.appsList = newStringList(&e.apps, &e.selectedApp)
	e.urlsList = newStringList(&e.urls, &e.selectedURL)
	return e
}

func newStringList(items *[]string, selected *int) *widget.List {
	list := widget.NewList(
		func() int { return len(*items) },
		func() fyne.CanvasObject {
			l := widget.NewLabel("")
			l.Truncation = fyne.TextTruncateEllipsis
			return l
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(*items) {
				obj.(*widget.Label).SetText((*items)[id])
			}
		},
	)
	list.OnSelected = func(id widget.ListItemID) { *selected = id }
	list.OnUnselected = func(widget.ListItemID) { *selected = -1 }
	return list
}

func (e *ProfileEditor) Apps() []string { return append([]string(nil), e.apps...) }
func (e *ProfileEditor) URLs() []string { return append([]string(nil), e.urls...) }

func (e *ProfileEditor) SetName(name string)        { e.nameEntry.SetText(name) }
func (e *ProfileEditor) SetBrowserPath(path string) { e.browserEntry.SetText(path) }

// AddApps appends paths that are not listed yet.
func (e *ProfileEditor) AddApps(paths ...string) {
	e.apps = profile.AppendUnique(e.apps, paths...)
	e.appsList.Refresh()
}

// AddURL appends a trimmed URL. It reports false for blanks and duplicates.
func (e *ProfileEditor) AddURL(u string) bool {
	u = strings.TrimSpace(u)
	before := len(e.urls)
	e.urls = profile.AppendUnique(e.urls, u)
	e.urlsList.Refresh()
	return len(e.urls) > before
}

func (e *ProfileEditor) RemoveSelectedApp() {
	e.apps = removeAt(e.apps, e.selectedApp)
	e.selectedApp = -1
	e.appsList.UnselectAll()
	e.appsList.Refresh()
}

func (e *ProfileEditor) RemoveSelectedURL() {
	e.urls = removeAt(e.urls, e.selectedURL)
	e.selectedURL = -1
	e.urlsList.UnselectAll()
	e.urlsList.Refresh()
}

// SelectApp and SelectURL mirror a click on the list row.
func (e *ProfileEditor) SelectApp(i int) { e.appsList.Select(i) }
func (e *ProfileEditor) SelectURL(i int) { e.urlsList.Select(i) }

func removeAt(list []string, i int) []string {
	if i < 0 || i >= len(list) {
		return list
	}
	return append(list[:i:i], list[i+1:]...)
}

func (e *ProfileEditor) addURLFromEntry() {
	if e.AddURL(e.urlEntry.Text) {
		e.urlEntry.SetText("")
	}
}

// Result collects the form. ok is false when the name is blank.
func (e *ProfileEditor) Result() (EditorResult, bool) {
	name := strings.TrimSpace(e.nameEntry.Text)
	if name == "" {
		return EditorResult{}, false
	}
	return EditorResult{
		OldName: e.oldName,
		Name:    name,
		Profile: profile.Profile{
			Apps:        e.Apps(),
			URLs:        e.URLs(),
			BrowserPath: strings.TrimSpace(e.browserEntry.Text),
		},
	}, true
}

// Show opens the editor as a modal dialog on its window.
func (e *ProfileEditor) Show() {
	browse := widget.NewButton("Browse…", e.pickBrowser)
	form := widget.NewForm(
		widget.NewFormItem("Profile name", e.nameEntry),
		widget.NewFormItem("Browser (.exe or .lnk)", container.NewBorder(nil, nil, nil, browse, e.browserEntry)),
	)

	appsButtons := container.NewHBox(
		widget.NewButton("Add…", e.pickApps),
		widget.NewButton("Remove selected", e.RemoveSelectedApp),
	)
	appsSection := container.NewBorder(
		widget.NewLabel("Programs and files (exe, lnk, docx, xlsx, pptx, …)"),
		appsButtons, nil, nil, e.appsList,
	)

	urlButtons := container.NewHBox(
		widget.NewButton("Add URL", e.addURLFromEntry),
		widget.NewButton("Remove selected", e.RemoveSelectedURL),
	)
	urlsSection := container.NewBorder(
		widget.NewLabel("Websites (URL)"),
		container.NewBorder(nil, nil, nil, urlButtons, e.urlEntry), nil, nil, e.urlsList,
	)

	content := container.NewBorder(form, nil, nil, nil, container.NewGridWithRows(2, appsSection, urlsSection))

	title := "New profile"
	if e.oldName != "" {
		title = "Edit profile"
	}
	var d dialog.Dialog
	d = dialog.NewCustomConfirm(title, "Save", "Cancel", content, func(save bool) {
		if !save {
			return
		}
		result, ok := e.Result()
		if !ok {
			warn := dialog.NewError(errNameRequired, e.window)
			warn.SetOnClosed(d.Show)
			warn.Show()
			return
		}
		if e.onSave != nil {
			e.onSave(result)
		}
	}, e.window)
	d.Resize(fyne.NewSize(760, 560))
	d.Show()
}

func (e *ProfileEditor) pickBrowser() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		e.SetBrowserPath(uriPath(reader.URI()))
	}, e.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".exe", ".lnk"}))
	fd.Show()
}

// pickApps keeps offering the file dialog, opening in the folder of the last
// pick, until the user dismisses it.
func (e *ProfileEditor) pickApps() {
	e.pickAppsFrom(nil)
}

func (e *ProfileEditor) pickAppsFrom(location fyne.ListableURI) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		e.pickAppsFrom(e.AddPicked(reader.URI()))
	}, e.window)
	if location != nil {
		fd.SetLocation(location)
	}
	fd.SetConfirmText("Add")
	fd.SetDismissText("Done")
	fd.Show()
}

// AddPicked adds a picked file and returns its folder for the next pick, or
// nil when the folder cannot be listed.
func (e *ProfileEditor) AddPicked(u fyne.URI) fyne.ListableURI {
	e.AddApps(uriPath(u))
	parent, err := storage.Parent(u)
	if err != nil {
		return nil
	}
	dir, err := storage.ListerForURI(parent)
	if err != nil {
		return nil
	}
	return dir
}

func uriPath(u fyne.URI) string {
	return filepath.FromSlash(u.Path())
}
