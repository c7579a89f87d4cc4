package scenes

import (
	"image"
	"image/color"

	"github.com/cbodonnell/reaction/client/fonts"
	"github.com/cbodonnell/reaction/client/objects"
	"github.com/cbodonnell/reaction/pkg/reaction"
	"github.com/cbodonnell/reaction/pkg/stats"
	"github.com/ebitenui/ebitenui"
	uiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// ReactionScene draws the prompt for the current state and, once at least one
// round has been recorded, the statistics overlay with its reset button.
type ReactionScene struct {
	*BaseScene

	stats  *stats.View
	router *stats.PressRouter
	ui     *ebitenui.UI
	// resetButton is nil while the overlay is hidden.
	resetButton *widget.Button
	// summary is the summary the overlay was last built for.
	summary   stats.Summary
	hasScores bool
}

type ReactionSceneOptions struct {
	// Prompt returns the prompt for the current state.
	Prompt func() reaction.Prompt
	// Stats provides the overlay values.
	Stats *stats.View
	// Router is told where the reset button was laid out.
	Router *stats.PressRouter
}

var _ Scene = &ReactionScene{}

func NewReactionScene(opts ReactionSceneOptions) (*ReactionScene, error) {
	return &ReactionScene{
		BaseScene: NewBaseScene(objects.NewPromptObject(opts.Prompt)),
		stats:     opts.Stats,
		router:    opts.Router,
	}, nil
}

func (s *ReactionScene) Init() error {
	s.summary, s.hasScores = s.stats.Summary()
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *ReactionScene) renderUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
	s.resetButton = nil

	best, average, ok := s.stats.Lines()
	if !ok {
		return
	}

	overlay := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(widget.Insets{Bottom: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(uiimage.NewNineSliceColor(color.NRGBA{R: 255, G: 255, B: 255, A: 26})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(32),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(newStatColumn("BEST", best))
	panel.AddChild(newStatColumn("AVERAGE", average))
	overlay.AddChild(panel)

	s.resetButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    uiimage.NewNineSliceColor(color.NRGBA{A: 0}),
			Hover:   uiimage.NewNineSliceColor(color.NRGBA{R: 255, G: 255, B: 255, A: 26}),
			Pressed: uiimage.NewNineSliceColor(color.NRGBA{R: 255, G: 255, B: 255, A: 51}),
		}),
		widget.ButtonOpts.Text("Reset Stats", fonts.SmallFont, &widget.ButtonTextColor{
			Idle:     color.NRGBA{R: 255, G: 255, B: 255, A: 128},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 128},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   16,
			Right:  16,
			Top:    8,
			Bottom: 8,
		}),
	)
	overlay.AddChild(s.resetButton)

	rootContainer.AddChild(overlay)
}

func newStatColumn(label, value string) *widget.Container {
	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	column.AddChild(widget.NewText(
		widget.TextOpts.Text(label, fonts.SmallFont, color.NRGBA{R: 255, G: 255, B: 255, A: 178}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))
	column.AddChild(widget.NewText(
		widget.TextOpts.Text(value, fonts.BodyFont, color.White),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))
	return column
}

func (s *ReactionScene) Update() error {
	summary, ok := s.stats.Summary()
	if ok != s.hasScores || summary != s.summary {
		s.summary, s.hasScores = summary, ok
		s.renderUI()
	}
	s.ui.Update()
	s.router.SetResetArea(s.resetArea())
	return s.BaseScene.Update()
}

// resetArea is the laid out bounds of the reset button, empty while the
// overlay is hidden.
func (s *ReactionScene) resetArea() image.Rectangle {
	if s.resetButton == nil {
		return image.Rectangle{}
	}
	return s.resetButton.GetWidget().Rect
}

func (s *ReactionScene) Draw(screen *ebiten.Image) {
	s.BaseScene.Draw(screen)
	s.ui.Draw(screen)
}

func (s *ReactionScene) Destroy() error {
	s.resetButton = nil
	s.router.SetResetArea(image.Rectangle{})
	return s.BaseScene.Destroy()
}
