package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// controlPanel is the button bar along the top edge: pause/step controls,
// clear/add, gravity and restitution nudges, and a live readout. Buttons are
// colored nine-slices with the built-in basic font, so no theme assets are
// needed.
type controlPanel struct {
	ui      *ebitenui.UI
	readout *widget.Text
}

func newControlPanel(g *Game) *controlPanel {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	readout := widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(button("Pause", func() { g.stepper.TogglePause() }))
	panel.AddChild(button("Step", func() { g.stepper.StepOnce() }))
	panel.AddChild(button("Clear", g.clearAll))
	panel.AddChild(button("Add 10", func() { g.addRandom(10) }))
	panel.AddChild(button("G-", func() { g.nudgeGravity(-100) }))
	panel.AddChild(button("G+", func() { g.nudgeGravity(100) }))
	panel.AddChild(button("E-", func() { g.nudgeRestitution(-0.05) }))
	panel.AddChild(button("E+", func() { g.nudgeRestitution(0.05) }))
	panel.AddChild(readout)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &controlPanel{
		ui:      &ebitenui.UI{Container: root},
		readout: readout,
	}
}

// refresh updates the readout; called once per frame before the UI update.
func (p *controlPanel) refresh(g *Game) {
	state := "running"
	if g.stepper.Paused() {
		state = "paused"
	}
	p.readout.Label = fmt.Sprintf("bodies %d | g %.0f | e %.2f | %s",
		g.world.Len(), g.world.Gravity(), g.world.Restitution(), state)
}
