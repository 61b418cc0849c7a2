package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// CardColors is the subset of a palette a card paints with.
type CardColors struct {
	Card    color.Color
	Border  color.Color
	Text    color.Color
	Subtext color.Color
	Primary color.Color
}

// ProfileCard shows one profile's name and summary and reports taps.
type ProfileCard struct {
	widget.BaseWidget

	Name     string
	Meta     string
	OnTapped func(name string)

	colors   CardColors
	selected bool
	hovered  bool
	disabled bool
}

func NewProfileCard(name, meta string, colors CardColors, onTapped func(string)) *ProfileCard {
	c := &ProfileCard{Name: name, Meta: meta, colors: colors, OnTapped: onTapped}
	c.ExtendBaseWidget(c)
	return c
}

// NewPlaceholderCard is an inert card shown when there is nothing to list.
func NewPlaceholderCard(text string, colors CardColors) *ProfileCard {
	c := NewProfileCard(text, "", colors, nil)
	c.disabled = true
	return c
}

func (c *ProfileCard) Selected() bool {
	return c.selected
}

func (c *ProfileCard) SetSelected(selected bool) {
	if c.selected == selected {
		return
	}
	c.selected = selected
	c.Refresh()
}

func (c *ProfileCard) Tapped(*fyne.PointEvent) {
	if c.disabled || c.OnTapped == nil {
		return
	}
	c.OnTapped(c.Name)
}

func (c *ProfileCard) Cursor() desktop.Cursor {
	if c.disabled {
		return desktop.DefaultCursor
	}
	return desktop.PointerCursor
}

func (c *ProfileCard) MouseIn(*desktop.MouseEvent) {
	c.hovered = true
	c.Refresh()
}

func (c *ProfileCard) MouseMoved(*desktop.MouseEvent) {}

func (c *ProfileCard) MouseOut() {
	c.hovered = false
	c.Refresh()
}

func (c *ProfileCard) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(c.colors.Card)
	bg.CornerRadius = 12
	bg.StrokeWidth = 1

	icon := widget.NewIcon(theme.FolderIcon())
	title := canvas.NewText(c.Name, c.colors.Text)
	title.TextSize = 20
	title.TextStyle = fyne.TextStyle{Bold: true}
	meta := canvas.NewText(c.Meta, c.colors.Subtext)

	content := container.NewBorder(nil, nil, container.NewCenter(icon), nil, container.NewVBox(title, meta))
	r := &cardRenderer{
		card:   c,
		bg:     bg,
		title:  title,
		meta:   meta,
		layout: container.NewStack(bg, container.NewPadded(container.NewPadded(content))),
	}
	r.Refresh()
	return r
}

type cardRenderer struct {
	card   *ProfileCard
	bg     *canvas.Rectangle
	title  *canvas.Text
	meta   *canvas.Text
	layout *fyne.Container
}

func (r *cardRenderer) Layout(size fyne.Size) {
	r.layout.Resize(size)
}

func (r *cardRenderer) MinSize() fyne.Size {
	return r.layout.MinSize()
}

func (r *cardRenderer) Refresh() {
	c := r.card
	r.bg.FillColor = c.colors.Card
	r.bg.StrokeColor = c.colors.Border
	if !c.disabled && (c.selected || c.hovered) {
		r.bg.StrokeColor = c.colors.Primary
	}
	if c.selected {
		r.bg.StrokeWidth = 2
	} else {
		r.bg.StrokeWidth = 1
	}

	r.title.Text = c.Name
	r.title.Color = c.colors.Text
	r.meta.Text = c.Meta
	r.meta.Color = c.colors.Subtext
	if c.Meta == "" {
		r.meta.Hide()
	} else {
		r.meta.Show()
	}

	r.bg.Refresh()
	r.title.Refresh()
	r.meta.Refresh()
}

func (r *cardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.layout}
}

func (r *cardRenderer) Destroy() {}
