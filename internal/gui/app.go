package gui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/fractree/internal/render"
	"github.com/san-kum/fractree/internal/tree"
)

// Theme Colors
var (
	ColButton   = rl.NewColor(235, 240, 230, 255)
	ColSelect   = rl.NewColor(46, 125, 50, 255)
	ColText     = rl.NewColor(40, 40, 40, 255)
	ColTextDim  = rl.NewColor(140, 140, 140, 255)
	ColTextOnFg = rl.NewColor(255, 255, 255, 255)
)

const (
	buttonW    = 90
	buttonH    = 28
	buttonGap  = 8
	buttonPad  = 10
	buttonFont = 16
)

// Options configures the window.
type Options struct {
	Width, Height int
	FPS           int
	Style         render.Style
	Logger        *log.Logger
}

// button is one selection trigger.
type button struct {
	Variant tree.Variant
	Rect    rl.Rectangle
}

type App struct {
	Scene   *tree.Scene
	Style   render.Style
	Buttons []button
	Logger  *log.Logger
	surface surface
}

// initWindow opens a window of the configured size and caps the frame rate.
func initWindow(opts Options) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), "fractree")
	rl.SetTargetFPS(int32(opts.FPS))
}

// NewApp lays out one button per variant along the top edge.
func NewApp(scene *tree.Scene, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	app := &App{
		Scene:  scene,
		Style:  opts.Style,
		Logger: opts.Logger,
	}
	for i, v := range tree.Variants {
		x := float32(buttonPad + i*(buttonW+buttonGap))
		app.Buttons = append(app.Buttons, button{
			Variant: v,
			Rect:    rl.NewRectangle(x, buttonPad, buttonW, buttonH),
		})
	}
	return app
}

// Run opens the window and blocks until it is closed.
func Run(scene *tree.Scene, opts Options) {
	initWindow(opts)
	defer rl.CloseWindow()
	app := NewApp(scene, opts)
	app.RunLoop()
}

// RunLoop draws frames until the window is closed or Q or Esc is pressed.
func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !rl.IsKeyPressed(rl.KeyQ) {
		a.Update()
		a.Draw()
	}
}

// Update polls the selection triggers: button clicks and keys 1-3.
func (a *App) Update() {
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		for _, b := range a.Buttons {
			if rl.CheckCollisionPointRec(mouse, b.Rect) {
				a.Select(b.Variant)
				return
			}
		}
	}

	keys := []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree}
	for i, k := range keys {
		if rl.IsKeyPressed(k) {
			a.Select(tree.Variants[i])
			return
		}
	}
}

// Select activates v and regenerates its tree.
func (a *App) Select(v tree.Variant) {
	start := time.Now()
	a.Scene.Select(v)
	a.Logger.Debug("variant selected", "variant", v, "segments", len(a.Scene.Current()), "took", time.Since(start))
}

// Draw renders one frame: the full active tree, then the buttons on top.
func (a *App) Draw() {
	rl.BeginDrawing()
	render.Render(&a.surface, a.Scene.Current(), a.Style)
	a.drawButtons()
	rl.EndDrawing()
}

func (a *App) drawButtons() {
	for _, b := range a.Buttons {
		bg, fg := ColButton, ColText
		if b.Variant == a.Scene.Active() {
			bg, fg = ColSelect, ColTextOnFg
		}
		rl.DrawRectangleRec(b.Rect, bg)
		rl.DrawRectangleLinesEx(b.Rect, 1, ColSelect)

		label := b.Variant.String()
		tw := rl.MeasureText(label, buttonFont)
		x := int32(b.Rect.X) + (int32(b.Rect.Width)-tw)/2
		y := int32(b.Rect.Y) + (int32(b.Rect.Height)-buttonFont)/2
		rl.DrawText(label, x, y, buttonFont, fg)
	}

	info := fmt.Sprintf("%d segments  [1] [2] [3]", len(a.Scene.Current()))
	rl.DrawText(info, buttonPad, buttonPad*2+buttonH, 12, ColTextDim)
}
