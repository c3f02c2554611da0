package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chewxy/math32"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/mkarpushin/trig-visualization/internal/anglemodel"
	"github.com/mkarpushin/trig-visualization/internal/config"
	"github.com/mkarpushin/trig-visualization/internal/plotexport"
	"github.com/mkarpushin/trig-visualization/internal/tone"
	"github.com/mkarpushin/trig-visualization/internal/wavemodel"
)

type view int

const (
	viewWheel view = iota
	viewWave
)

// slider is a draggable horizontal control mapping a pixel position to a
// value in [min, max].
type slider struct {
	label    string
	min, max float64
	value    float64

	x, y, w, h int

	hovered  bool
	dragging bool
}

func (s *slider) fraction() float64 {
	return (s.value - s.min) / (s.max - s.min)
}

func (s *slider) setFromMouse(mouseX int) {
	frac := float64(mouseX-s.x) / float64(s.w)
	s.value = s.min + clamp(frac, 0, 1)*(s.max-s.min)
}

type game struct {
	log *zap.SugaredLogger

	view view

	// wheel view
	angle    anglemodel.Angle
	dragging bool

	// wave view
	params  wavemodel.Params
	samples []wavemodel.Point
	sliders []*slider

	// sonification
	tone        *tone.Generator
	toneCtrl    *beep.Ctrl
	tonePlaying bool
	speakerOn   bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

func NewGame(log *zap.SugaredLogger) *game {
	g := &game{
		log:     log,
		angle:   anglemodel.FromDegrees(30),
		params:  wavemodel.DefaultParams(),
		prevKey: map[ebiten.Key]bool{},
	}
	g.sliders = []*slider{
		{label: "A (amplitude)", min: -3, max: 3},
		{label: "ω (frequency)", min: 0, max: 5},
		{label: "φ (phase ×π)", min: -2, max: 2},
		{label: "k (offset)", min: -2, max: 2},
	}
	for i, s := range g.sliders {
		s.x = config.SliderX
		s.y = config.SliderY + i*config.SliderGap
		s.w = config.SliderWidth
		s.h = config.SliderHeight
	}
	g.loadSliders()
	g.resample()
	return g
}

// loadSliders pushes the current parameters into the slider positions.
func (g *game) loadSliders() {
	g.sliders[0].value = g.params.A
	g.sliders[1].value = g.params.Omega
	g.sliders[2].value = g.params.Phi
	g.sliders[3].value = g.params.K
}

// storeSliders pulls the slider positions back into the parameters.
func (g *game) storeSliders() {
	g.params.A = g.sliders[0].value
	g.params.Omega = g.sliders[1].value
	g.params.Phi = g.sliders[2].value
	g.params.K = g.sliders[3].value
}

func (g *game) resample() {
	g.samples = wavemodel.Sample(g.params, wavemodel.DomainStart, wavemodel.DomainEnd, wavemodel.Steps)
	if g.tone != nil {
		g.tone.SetParams(g.params)
	}
}

func (g *game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyTab) {
		if g.view == viewWheel {
			g.view = viewWave
		} else {
			g.view = viewWheel
		}
	}
	if justPressed(ebiten.KeyDigit1) {
		g.view = viewWheel
	}
	if justPressed(ebiten.KeyDigit2) {
		g.view = viewWave
	}

	switch g.view {
	case viewWheel:
		g.updateWheel(justPressed)
	case viewWave:
		g.updateWave(justPressed)
	}
	return nil
}

func (g *game) updateWheel(justPressed func(ebiten.Key) bool) {
	mouseX, mouseY := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		dx := float64(mouseX - config.WheelCenterX)
		dy := float64(mouseY - config.WheelCenterY)
		if math.Hypot(dx, dy) <= config.WheelRadius+config.GrabMargin {
			g.dragging = true
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}
	if g.dragging {
		g.angle = anglemodel.FromPointer(
			float64(mouseX), float64(mouseY),
			config.WheelCenterX, config.WheelCenterY,
		)
	}

	if justPressed(ebiten.KeyE) {
		if err := g.promptDegrees(); err != nil {
			g.lastErr = err
			g.log.Errorw("degree entry failed", "error", err)
		}
	}
}

func (g *game) updateWave(justPressed func(ebiten.Key) bool) {
	mouseX, mouseY := ebiten.CursorPosition()

	changed := false
	for _, s := range g.sliders {
		s.hovered = mouseX >= s.x && mouseX <= s.x+s.w &&
			mouseY >= s.y-6 && mouseY <= s.y+s.h+6

		if s.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			s.dragging = true
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			s.dragging = false
		}
		if s.dragging {
			old := s.value
			s.setFromMouse(mouseX)
			if s.value != old {
				changed = true
			}
		}
	}
	if changed {
		g.storeSliders()
		g.resample()
	}

	if justPressed(ebiten.KeyR) {
		g.params = wavemodel.DefaultParams()
		g.loadSliders()
		g.resample()
		g.log.Infow("parameters reset")
	}
	if justPressed(ebiten.KeyT) {
		if err := g.toggleTone(); err != nil {
			g.lastErr = err
			g.log.Errorw("tone toggle failed", "error", err)
		}
	}
	if justPressed(ebiten.KeyS) {
		if err := g.exportPlot(); err != nil {
			g.lastErr = err
			g.log.Errorw("plot export failed", "error", err)
		}
	}
}

// promptDegrees opens a blocking entry dialog for manual degree input.
// Unparseable or non-finite input keeps the previous angle.
func (g *game) promptDegrees() error {
	text, err := zenity.Entry(
		"Angle in degrees:",
		zenity.Title("Set Angle"),
		zenity.EntryText(fmt.Sprintf("%.1f", g.angle.Degrees())),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	deg, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(deg) || math.IsInf(deg, 0) {
		g.log.Infow("ignoring unparseable degree entry", "text", text)
		return nil
	}
	g.angle = anglemodel.FromDegrees(deg)
	g.log.Infow("angle set from entry", "degrees", deg)
	return nil
}

func (g *game) toggleTone() error {
	if !g.speakerOn {
		sr := beep.SampleRate(44100)
		if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
			return err
		}
		g.tone = tone.NewGenerator(sr, g.params)
		g.toneCtrl = &beep.Ctrl{Streamer: g.tone, Paused: true}
		speaker.Play(g.toneCtrl)
		g.speakerOn = true
	}

	speaker.Lock()
	g.tonePlaying = !g.tonePlaying
	g.toneCtrl.Paused = !g.tonePlaying
	speaker.Unlock()
	g.log.Infow("tone toggled", "playing", g.tonePlaying)
	return nil
}

func (g *game) exportPlot() error {
	path, err := zenity.SelectFileSave(
		zenity.Title("Export Plot"),
		zenity.Filename("wave.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := plotexport.WritePNG(f, g.params, g.samples); err != nil {
		return err
	}
	g.log.Infow("plot exported", "path", path)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	switch g.view {
	case viewWheel:
		g.drawWheelView(screen)
	case viewWave:
		g.drawWaveView(screen)
	}

	status := "Tab/1/2: switch view | Esc/Q: quit"
	if g.view == viewWheel {
		status = "Drag the point around the wheel | E: enter degrees | " + status
	} else {
		status = "Drag the sliders | R: reset, T: tone, S: export PNG | " + status
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *game) drawBackground(screen *ebiten.Image) {
	for y := 0; y < config.WindowHeight; y++ {
		ratio := float64(y) / float64(config.WindowHeight)
		shade := uint8(18 + 14*ratio)
		vector.StrokeLine(screen, 0, float32(y), config.WindowWidth, float32(y), 1,
			color.RGBA{R: shade, G: shade, B: shade + 12, A: 255}, false)
	}
}

func quadrantColor(q anglemodel.Quadrant) color.RGBA {
	switch q {
	case anglemodel.Q1:
		return color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
	case anglemodel.Q2:
		return color.RGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff}
	case anglemodel.Q3:
		return color.RGBA{R: 0xff, G: 0x98, B: 0x00, A: 0xff}
	default:
		return color.RGBA{R: 0xe9, G: 0x1e, B: 0x63, A: 0xff}
	}
}

func (g *game) drawWheelView(screen *ebiten.Image) {
	const (
		cx = float32(config.WheelCenterX)
		cy = float32(config.WheelCenterY)
		r  = float32(config.WheelRadius)
	)

	axisColor := color.RGBA{R: 90, G: 95, B: 110, A: 255}
	vector.StrokeLine(screen, cx-r-30, cy, cx+r+30, cy, 1, axisColor, false)
	vector.StrokeLine(screen, cx, cy-r-30, cx, cy+r+30, 1, axisColor, false)

	vector.StrokeCircle(screen, cx, cy, r, 2, color.RGBA{R: 150, G: 155, B: 175, A: 255}, false)

	ux, uy := g.angle.Point()
	px := cx + r*float32(ux)
	py := cy - r*float32(uy)

	qc := quadrantColor(g.angle.Quadrant())

	// Radius to the marker, then the sine and cosine projections.
	vector.StrokeLine(screen, cx, cy, px, py, 3, qc, false)
	sineColor := color.RGBA{R: 0xef, G: 0x53, B: 0x50, A: 0xff}
	cosColor := color.RGBA{R: 0x42, G: 0xa5, B: 0xf5, A: 0xff}
	drawDashedLine(screen, px, py, px, cy, sineColor)
	drawDashedLine(screen, px, py, cx, py, cosColor)
	vector.StrokeLine(screen, px, cy, cx, cy, 3, cosColor, false)
	vector.StrokeLine(screen, cx, py, cx, cy, 3, sineColor, false)

	drawAngleArc(screen, cx, cy, config.ArcRadius, float32(g.angle.Normalized()), qc)

	vector.DrawFilledCircle(screen, px, py, 9, qc, false)
	vector.StrokeCircle(screen, px, py, 9, 2, color.White, false)

	g.drawWheelReadout(screen)
}

func (g *game) drawWheelReadout(screen *ebiten.Image) {
	x, y := config.ReadoutX, config.ReadoutY
	line := func(s string) {
		ebitenutil.DebugPrintAt(screen, s, x, y)
		y += 22
	}

	ux, uy := g.angle.Point()
	line(fmt.Sprintf("θ   = %.1f° = %s", g.angle.Degrees(), g.angle.RadianLabel()))
	line(fmt.Sprintf("sin θ = %.3f", uy))
	line(fmt.Sprintf("cos θ = %.3f", ux))
	if v, ok := g.angle.Tangent(); ok {
		line(fmt.Sprintf("tan θ = %.3f", v))
	} else {
		line("tan θ = ∞ (undefined)")
	}
	line("quadrant: " + g.angle.Quadrant().String())
}

// drawAngleArc traces the arc from angle 0 to a counterclockwise. a must
// already be wrapped into one revolution; the float32 accumulator loses its
// step far beyond that.
func drawAngleArc(screen *ebiten.Image, cx, cy, r, a float32, col color.Color) {
	if a <= 0 {
		return
	}
	const step = 0.05
	prevX := cx + r
	prevY := cy
	for t := float32(step); ; t += step {
		if t > a {
			t = a
		}
		x := cx + r*math32.Cos(t)
		y := cy - r*math32.Sin(t)
		vector.StrokeLine(screen, prevX, prevY, x, y, 2, col, false)
		prevX, prevY = x, y
		if t >= a {
			break
		}
	}
}

func drawDashedLine(screen *ebiten.Image, x0, y0, x1, y1 float32, col color.Color) {
	const dash = 6
	dx := x1 - x0
	dy := y1 - y0
	length := math32.Hypot(dx, dy)
	if length == 0 {
		return
	}
	steps := int(length / dash)
	for i := 0; i < steps; i += 2 {
		t0 := float32(i) * dash / length
		t1 := float32(i+1) * dash / length
		if t1 > 1 {
			t1 = 1
		}
		vector.StrokeLine(screen,
			x0+dx*t0, y0+dy*t0,
			x0+dx*t1, y0+dy*t1,
			1, col, false)
	}
}

func (g *game) drawWaveView(screen *ebiten.Image) {
	left := float32(config.PlotLeft)
	top := float32(config.PlotTop)
	width := float32(config.PlotWidth)
	height := float32(config.PlotHeight)

	vector.DrawFilledRect(screen, left, top, width, height, color.RGBA{R: 22, G: 26, B: 36, A: 255}, false)
	vector.StrokeRect(screen, left, top, width, height, 2, color.RGBA{R: 70, G: 80, B: 100, A: 255}, false)

	xToPx := func(x float64) float32 {
		frac := (x - wavemodel.DomainStart) / (wavemodel.DomainEnd - wavemodel.DomainStart)
		return left + float32(frac)*width
	}
	yToPx := func(y float64) float32 {
		frac := (y + config.PlotYRange) / (2 * config.PlotYRange)
		return top + height - float32(frac)*height
	}

	axisColor := color.RGBA{R: 90, G: 95, B: 110, A: 255}
	vector.StrokeLine(screen, left, yToPx(0), left+width, yToPx(0), 1, axisColor, false)
	vector.StrokeLine(screen, xToPx(0), top, xToPx(0), top+height, 1, axisColor, false)

	// Ticks at every multiple of π/2 across the domain.
	for i := -4; i <= 4; i++ {
		x := float64(i) * math.Pi / 2
		px := xToPx(x)
		vector.StrokeLine(screen, px, yToPx(0)-4, px, yToPx(0)+4, 1, axisColor, false)
		label := wavemodel.AxisTickLabel(x)
		if label == "0" {
			continue
		}
		ebitenutil.DebugPrintAt(screen, label, int(px)-len(label)*8/2, int(yToPx(0))+8)
	}
	for yv := -3; yv <= 3; yv++ {
		if yv == 0 {
			continue
		}
		py := yToPx(float64(yv))
		vector.StrokeLine(screen, xToPx(0)-4, py, xToPx(0)+4, py, 1, axisColor, false)
		ebitenutil.DebugPrintAt(screen, strconv.Itoa(yv), int(xToPx(0))+8, int(py)-8)
	}

	clipY := func(py float32) float32 {
		if py < top {
			return top
		}
		if py > top+height {
			return top + height
		}
		return py
	}

	refColor := color.RGBA{R: 120, G: 120, B: 130, A: 255}
	waveColor := color.RGBA{R: 0x2b, G: 0x8c, B: 0xbe, A: 0xff}
	for i := 1; i < len(g.samples); i++ {
		a, b := g.samples[i-1], g.samples[i]
		vector.StrokeLine(screen,
			xToPx(a.X), clipY(yToPx(a.RefY)),
			xToPx(b.X), clipY(yToPx(b.RefY)),
			1, refColor, false)
		vector.StrokeLine(screen,
			xToPx(a.X), clipY(yToPx(a.Y)),
			xToPx(b.X), clipY(yToPx(b.Y)),
			2, waveColor, false)
	}

	caption := wavemodel.Describe(g.params)
	ebitenutil.DebugPrintAt(screen, caption,
		config.PlotLeft+(config.PlotWidth-len(caption)*8)/2,
		config.PlotTop+config.PlotHeight+14)

	for _, s := range g.sliders {
		g.drawSlider(screen, s)
	}

	toneStatus := "tone: off (T to hear the wave)"
	if g.tonePlaying {
		toneStatus = "tone: playing (T to stop)"
	}
	ebitenutil.DebugPrintAt(screen, toneStatus, config.SliderX, config.SliderY+len(g.sliders)*config.SliderGap)
}

func (g *game) drawSlider(screen *ebiten.Image, s *slider) {
	x := float32(s.x)
	y := float32(s.y)
	w := float32(s.w)
	h := float32(s.h)

	bg := color.RGBA{R: 25, G: 30, B: 40, A: 200}
	if s.hovered || s.dragging {
		bg = color.RGBA{R: 35, G: 42, B: 56, A: 220}
	}
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{R: 70, G: 80, B: 100, A: 255}, false)

	frac := float32(s.fraction())
	vector.DrawFilledRect(screen, x, y, frac*w, h, color.RGBA{R: 0x2b, G: 0x8c, B: 0xbe, A: 180}, false)
	vector.DrawFilledCircle(screen, x+frac*w, y+h/2, 7, color.White, false)
	vector.StrokeCircle(screen, x+frac*w, y+h/2, 7, 1, color.RGBA{R: 100, G: 110, B: 130, A: 255}, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s = %.2f", s.label, s.value), s.x, s.y-20)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Trig Visualization - unit circle & sine wave")

	log.Infow("starting", "width", config.WindowWidth, "height", config.WindowHeight)
	g := NewGame(log)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalw("run failed", "error", err)
	}
}
