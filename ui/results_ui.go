package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// ResultsUI is the game over panel: outcome, score, best score and the
// retry/menu buttons.
type ResultsUI struct {
	UI *ebitenui.UI

	OnRetry func()
	OnMenu  func()

	results components.ResultsData

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewResultsUI(results components.ResultsData, onRetry, onMenu func()) *ResultsUI {
	ui := &ResultsUI{
		OnRetry: onRetry,
		OnMenu:  onMenu,
		results: results,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *ResultsUI) loadFonts() {
	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: boldSource, Size: 44}
	ui.normalFace = &text.GoTextFace{Source: regularSource, Size: 22}
	ui.smallFace = &text.GoTextFace{Source: regularSource, Size: 16}
}

func (ui *ResultsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.GameOver.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 24, Bottom: 24, Left: 48, Right: 48}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.GameOver.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(ui.label(ui.results.Title, &ui.titleFace, cfg.GameOver.TitleColor))
	for _, line := range SummaryLines(ui.results) {
		panel.AddChild(ui.label(line, &ui.normalFace, cfg.GameOver.TextColor))
	}
	if ui.results.NewBest {
		panel.AddChild(ui.label("NEW BEST!", &ui.normalFace, cfg.BrightYellow))
	}

	panel.AddChild(ui.buildButtons())
	panel.AddChild(ui.label("Enter: Retry   Esc: Menu", &ui.smallFace, cfg.GameOver.TextColor))

	rootContainer.AddChild(panel)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// SummaryLines formats the stats shown under the outcome title.
func SummaryLines(r components.ResultsData) []string {
	return []string{
		fmt.Sprintf("SCORE  %d", r.Score),
		fmt.Sprintf("ROUND  %d", r.Round),
		fmt.Sprintf("BOSSES DEFEATED  %d", r.BossesDefeated),
		fmt.Sprintf("BEST  %d", r.Best),
	}
}

func (ui *ResultsUI) label(s string, face *text.Face, clr color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: clr}),
	)
}

func (ui *ResultsUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
		)),
	)
	container.AddChild(ui.button("Retry", func() {
		if ui.OnRetry != nil {
			ui.OnRetry()
		}
	}))
	container.AddChild(ui.button("Menu", func() {
		if ui.OnMenu != nil {
			ui.OnMenu()
		}
	}))
	return container
}

func (ui *ResultsUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 36)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(cfg.GameOver.ButtonIdle),
			Hover:   image.NewNineSliceColor(cfg.GameOver.ButtonHover),
			Pressed: image.NewNineSliceColor(cfg.GameOver.ButtonPressed),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.GameOver.ButtonText,
			Hover:   cfg.GameOver.ButtonText,
			Pressed: cfg.GameOver.ButtonText,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *ResultsUI) Update() {
	ui.UI.Update()
}
