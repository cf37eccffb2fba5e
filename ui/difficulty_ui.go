package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/duel/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DifficultyUI is the start screen: pick a bot preset and start the duel.
type DifficultyUI struct {
	UI       *ebitenui.UI
	Selected cfg.BotDifficulty

	// Callbacks
	OnStart func(cfg.BotDifficulty)
	OnQuit  func()

	diffButtons map[cfg.BotDifficulty]*widget.Button
	detailLabel *widget.Label
	recordLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewDifficultyUI creates the start screen with selected preselected.
func NewDifficultyUI(selected cfg.BotDifficulty, record string, onStart func(cfg.BotDifficulty), onQuit func()) *DifficultyUI {
	dui := &DifficultyUI{
		Selected:    selected,
		OnStart:     onStart,
		OnQuit:      onQuit,
		diffButtons: map[cfg.BotDifficulty]*widget.Button{},
	}

	dui.loadFonts()
	dui.buildUI(record)

	return dui
}

func (dui *DifficultyUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	dui.titleFace = &text.GoTextFace{Source: fontSource, Size: 48}
	dui.normalFace = &text.GoTextFace{Source: fontSource, Size: 20}
	dui.smallFace = &text.GoTextFace{Source: fontSource, Size: 14}
}

func (dui *DifficultyUI) buildUI(record string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("DUEL", &dui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Bot difficulty", &dui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	))

	contentContainer.AddChild(dui.buildDifficultyRow())

	dui.detailLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &dui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	contentContainer.AddChild(dui.detailLabel)

	dui.recordLabel = widget.NewLabel(
		widget.LabelOpts.Text(record, &dui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	contentContainer.AddChild(dui.recordLabel)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("A/D move  W jump  Space attack  1/2/3 difficulty  R reset  F1 overlay  F2 copy report",
			&dui.smallFace, &widget.LabelColor{Idle: color.RGBA{150, 150, 150, 255}}),
	))

	contentContainer.AddChild(dui.buildButtonsContainer())

	rootContainer.AddChild(contentContainer)

	dui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (dui *DifficultyUI) buildDifficultyRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	for _, d := range cfg.Difficulties() {
		d := d
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(110, 32)),
			widget.ButtonOpts.Image(dui.buttonImage()),
			widget.ButtonOpts.Text(d.String(), &dui.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 255, 200, 255},
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				dui.Selected = d
				dui.UpdateUI()
			}),
		)
		dui.diffButtons[d] = button
		row.AddChild(button)
	}
	return row
}

func (dui *DifficultyUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 32)),
		widget.ButtonOpts.Image(dui.buttonImage()),
		widget.ButtonOpts.Text("Quit", &dui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if dui.OnQuit != nil {
				dui.OnQuit()
			}
		}),
	)
	container.AddChild(quitButton)

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 32)),
		widget.ButtonOpts.Image(dui.selectedButtonImage()),
		widget.ButtonOpts.Text("FIGHT", &dui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if dui.OnStart != nil {
				dui.OnStart(dui.Selected)
			}
		}),
	)
	container.AddChild(startButton)

	return container
}

func (dui *DifficultyUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (dui *DifficultyUI) selectedButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}

// UpdateUI marks the selected preset and shows its numbers.
func (dui *DifficultyUI) UpdateUI() {
	for d, button := range dui.diffButtons {
		if textWidget := button.Text(); textWidget != nil {
			label := d.String()
			if d == dui.Selected {
				label = "> " + label + " <"
			}
			textWidget.Label = label
		}
	}

	if dui.detailLabel != nil {
		if p, ok := cfg.Preset(dui.Selected); ok {
			dui.detailLabel.Label = fmt.Sprintf("speed %.0f  cooldown %s  damage %d",
				p.Speed, p.AttackCooldown, p.AttackDamage)
		}
	}
}

// Update calls the UI's Update method
func (dui *DifficultyUI) Update() {
	dui.UI.Update()
	// Widgets are only valid after the first update.
	if !dui.initialized {
		dui.initialized = true
		dui.UpdateUI()
	}
}
