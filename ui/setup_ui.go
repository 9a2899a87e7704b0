package ui

import (
	"bytes"
	"image"
	"image/color"

	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// SetupUI is the ebitenui panel of the match setup screen. Buttons carry no
// click handlers: the screen feeds taps and menu actions in through Tap, Move
// and ActivateSelected so pointer and keyboard share one path.
type SetupUI struct {
	UI    *ebitenui.UI
	Model *SetupModel

	titleLabel *widget.Label
	options    []SetupOption
	buttons    []*widget.Button
	selected   int

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
}

func NewSetupUI(model *SetupModel) *SetupUI {
	sui := &SetupUI{Model: model}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SetupUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
}

func (sui *SetupUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(eimage.NewNineSliceColor(cfg.Menu.PopupBoxColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	sui.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text(sui.Model.Title(), &sui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(sui.titleLabel)

	sui.options = sui.Model.Options()
	for _, o := range sui.options {
		img := sui.buttonImage()
		if o == OptionPlay {
			img = sui.playButtonImage()
		}
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(int(cfg.Menu.EntryWidth), 28)),
			widget.ButtonOpts.Image(img),
			widget.ButtonOpts.Text(sui.Model.Label(o), &sui.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 255, 200, 255},
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
		)
		sui.buttons = append(sui.buttons, button)
		contentContainer.AddChild(button)
	}

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *SetupUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     eimage.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    eimage.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  eimage.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: eimage.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (sui *SetupUI) playButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     eimage.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    eimage.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  eimage.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: eimage.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}

// Update lays the panel out and refreshes every label from the model
func (sui *SetupUI) Update() {
	sui.UI.Update()
	sui.UpdateUI()
}

// UpdateUI copies the model's labels onto the buttons
func (sui *SetupUI) UpdateUI() {
	for i, o := range sui.options {
		if textWidget := sui.buttons[i].Text(); textWidget != nil {
			textWidget.Label = sui.Model.Label(o)
		}
	}
}

// Draw renders the panel and outlines the keyboard selection
func (sui *SetupUI) Draw(screen *ebiten.Image) {
	sui.UI.Draw(screen)

	r := sui.buttons[sui.selected].GetWidget().Rect
	if r.Empty() {
		return
	}
	vector.StrokeRect(screen, float32(r.Min.X)-2, float32(r.Min.Y)-2,
		float32(r.Dx())+4, float32(r.Dy())+4, 2, cfg.Menu.TextColorSelected, false)
}

// Tap activates the row under a tap, if any
func (sui *SetupUI) Tap(x, y float64) SetupAction {
	p := image.Pt(int(x), int(y))
	for i, b := range sui.buttons {
		if p.In(b.GetWidget().Rect) {
			sui.selected = i
			return sui.activate(i)
		}
	}
	return SetupNone
}

// Move shifts the keyboard selection, wrapping around
func (sui *SetupUI) Move(delta int) {
	n := len(sui.buttons)
	sui.selected = ((sui.selected+delta)%n + n) % n
}

func (sui *SetupUI) ActivateSelected() SetupAction {
	return sui.activate(sui.selected)
}

func (sui *SetupUI) activate(i int) SetupAction {
	action := sui.Model.Activate(sui.options[i])
	if action == SetupChanged {
		sui.UpdateUI()
	}
	return action
}
