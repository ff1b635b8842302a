package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuItem is one entry of a vertical menu. Label is re-read every refresh
// so entries such as the volume setting can show their current value.
type MenuItem struct {
	Label  func() string
	Action func()
}

// StaticLabel returns a Label func for fixed text.
func StaticLabel(s string) func() string {
	return func() string { return s }
}

// MenuUI is a titled column of buttons. It works with the mouse through
// ebitenui and with keyboard or gamepad through MoveSelection and Activate.
type MenuUI struct {
	UI *ebitenui.UI

	items    []MenuItem
	buttons  []*widget.Button
	selected int
	hint     *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewMenuUI builds a menu with title, items and a footer hint.
func NewMenuUI(title string, items []MenuItem, hint string) *MenuUI {
	m := &MenuUI{items: items}
	m.loadFonts()
	m.buildUI(title, hint)
	return m
}

func (m *MenuUI) loadFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}

	m.titleFace = &text.GoTextFace{Source: bold, Size: 40}
	m.normalFace = &text.GoTextFace{Source: regular, Size: 20}
	m.smallFace = &text.GoTextFace{Source: regular, Size: 13}
}

func (m *MenuUI) buildUI(title, hint string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{14, 14, 22, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(title, &m.titleFace, &widget.LabelColor{
			Idle: color.RGBA{230, 190, 60, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	for i := range m.items {
		idx := i
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(260, 40)),
			widget.ButtonOpts.Image(m.buttonImage()),
			widget.ButtonOpts.Text(m.items[i].Label(), &m.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{220, 220, 230, 255},
				Hover:   color.RGBA{255, 255, 255, 255},
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				m.selected = idx
				m.Activate()
			}),
		)
		m.buttons = append(m.buttons, btn)
		contentContainer.AddChild(btn)
	}

	m.hint = widget.NewLabel(
		widget.LabelOpts.Text(hint, &m.smallFace, &widget.LabelColor{
			Idle: color.RGBA{140, 140, 150, 255},
		}),
	)
	contentContainer.AddChild(m.hint)

	rootContainer.AddChild(contentContainer)

	m.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (m *MenuUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 40, 56, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{70, 70, 96, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 30, 44, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{30, 30, 30, 255}),
	}
}

// MoveSelection moves the keyboard cursor by delta, wrapping around.
func (m *MenuUI) MoveSelection(delta int) {
	n := len(m.items)
	if n == 0 {
		return
	}
	m.selected = (m.selected + delta + n) % n
	m.Refresh()
}

// Selected returns the cursor index.
func (m *MenuUI) Selected() int {
	return m.selected
}

// Activate runs the selected item's action.
func (m *MenuUI) Activate() {
	if m.selected < 0 || m.selected >= len(m.items) {
		return
	}
	if action := m.items[m.selected].Action; action != nil {
		action()
	}
	m.Refresh()
}

// Refresh re-reads every label and marks the selected entry.
func (m *MenuUI) Refresh() {
	for i, btn := range m.buttons {
		if btn == nil {
			continue
		}
		textWidget := btn.Text()
		if textWidget == nil {
			continue
		}
		label := m.items[i].Label()
		if i == m.selected {
			label = "> " + label + " <"
		}
		textWidget.Label = label
	}
}

// Update calls the UI's Update method
func (m *MenuUI) Update() {
	m.UI.Update()
	// Widgets are only valid after the first update
	if !m.initialized {
		m.initialized = true
		m.Refresh()
	}
}
