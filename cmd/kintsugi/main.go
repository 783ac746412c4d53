// Command kintsugi is an interactive terminal rendition of the break-and-mend
// piece: charge a fracture, shatter the vessel, and watch the gold lacquer
// pull it back together.
//
// Controls: SPACE charges and releases the break, mouse click moves the
// impact point, r resets, q or ESC quits.
package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mendedgold/kintsugi"
)

const (
	tickInterval = 16 * time.Millisecond
	tickSeconds  = 0.016

	chargeSeconds  = 2.5 // time to reach full intensity while charging
	scatterSeconds = 1.8 // rest between shatter and mend
	lacquerSeconds = 2.2 // gold front travel time along each path
)

type phase int

const (
	phaseWhole phase = iota
	phaseTension
	phaseScatter
	phaseMend
)

type app struct {
	screen tcell.Screen
	sound  *soundboard

	fracturer *kintsugi.Fracturer
	scatter   kintsugi.Scatter
	mend      kintsugi.Mend

	phase     phase
	impact    kintsugi.Point
	intensity float64
	elapsed   float64
	lacquer   float64
	mended    bool

	cracks   []*kintsugi.CrackPath
	fracture *kintsugi.Fracture
}

func newApp() (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	a := &app{screen: screen}
	a.layout()
	a.impact = a.fracturer.Vessel.Center
	a.mend = kintsugi.NewMend(int(time.Second / tickInterval))

	sound, err := newSoundboard()
	if err != nil {
		// The piece works fine silent.
		log.Printf("audio disabled: %v", err)
	}
	a.sound = sound
	return a, nil
}

// layout fits the vessel to the terminal. Cells are roughly twice as tall as
// wide, so the world is cols × rows*2 and y is halved when drawing.
func (a *app) layout() {
	cols, rows := a.screen.Size()
	w, h := float64(cols), float64(rows*2)
	v := kintsugi.Vessel{
		Center: kintsugi.Pt(w/2, h/2),
		Radius: 0.42 * math.Min(w, h),
	}
	if a.fracturer == nil {
		a.fracturer = kintsugi.NewFracturer(v, nil)
	} else {
		a.fracturer.Vessel = v
	}
	a.scatter = kintsugi.Scatter{Vessel: v}
}

func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'r':
			a.reset()
		case ' ':
			switch a.phase {
			case phaseWhole:
				a.beginTension()
			case phaseTension:
				a.shatter()
			}
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			a.impact = a.fracturer.Vessel.Clamp(kintsugi.Pt(float64(x), float64(y*2)))
			if a.phase == phaseWhole {
				a.beginTension()
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
		a.layout()
	}
	return true
}

func (a *app) reset() {
	a.phase = phaseWhole
	a.intensity = 0
	a.elapsed = 0
	a.lacquer = 0
	a.mended = false
	a.cracks = nil
	a.fracture = nil
}

func (a *app) beginTension() {
	a.reset()
	a.phase = phaseTension
	a.cracks = a.fracturer.InitTensionCracks(a.impact, 3)
	a.sound.crackle()
}

func (a *app) shatter() {
	a.fracture = a.fracturer.CreateFracture(a.impact, a.intensity, a.cracks)
	a.cracks = nil
	a.phase = phaseScatter
	a.elapsed = 0
	a.sound.crash(a.intensity)
}

func (a *app) tick() {
	switch a.phase {
	case phaseTension:
		a.intensity = math.Min(1, a.intensity+tickSeconds/chargeSeconds)
		a.cracks = a.fracturer.GrowTensionCracks(a.cracks, a.impact, a.intensity)
		if a.fracturer.Rand.Float64() < 0.04*a.intensity {
			a.sound.crackle()
		}
		if a.intensity >= 1 {
			a.shatter()
		}
	case phaseScatter:
		a.scatter.Step(a.fracture.Fragments, tickSeconds)
		a.elapsed += tickSeconds
		if a.elapsed >= scatterSeconds {
			a.phase = phaseMend
			a.lacquer = 0
		}
	case phaseMend:
		settled := a.mend.Step(a.fracture.Fragments)
		a.lacquer = math.Min(1, a.lacquer+tickSeconds/lacquerSeconds)
		if settled && a.lacquer >= 1 && !a.mended {
			a.mended = true
			a.phase = phaseWhole
			a.sound.chime()
		}
	}
	a.draw()
}

var (
	styleRim   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCrack = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleShard = tcell.StyleDefault.Foreground(tcell.ColorLightSlateGray)
	styleGold  = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleText  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

func (a *app) draw() {
	a.screen.Clear()
	v := a.fracturer.Vessel

	if a.phase == phaseWhole || a.phase == phaseTension {
		a.drawRim(v)
	}

	switch a.phase {
	case phaseTension:
		for _, c := range a.cracks {
			a.drawPolyline(c.Smoothed(kintsugi.SmoothResolution), '·', styleCrack)
		}
	case phaseScatter:
		a.drawFragments()
	case phaseMend:
		a.drawFragments()
		for _, p := range a.fracture.Paths {
			a.drawPolyline(p.Partial(a.lacquer), '•', styleGold)
		}
		if a.lacquer > 0.6 {
			for _, pool := range a.fracture.Pools {
				a.plot(pool.Center, '◉', styleGold)
			}
		}
	case phaseWhole:
		if a.fracture != nil {
			// The mended vessel keeps its gold veins.
			for _, p := range a.fracture.Paths {
				a.drawPolyline(p.Points, '•', styleGold)
			}
			for _, pool := range a.fracture.Pools {
				a.plot(pool.Center, '◉', styleGold)
			}
		}
	}

	a.drawStatus()
	a.screen.Show()
}

func (a *app) drawRim(v kintsugi.Vessel) {
	steps := int(2 * math.Pi * v.Radius)
	for i := 0; i < steps; i++ {
		th := 2 * math.Pi * float64(i) / float64(steps)
		a.plot(v.RimPoint(th), '∙', styleRim)
	}
}

func (a *app) drawFragments() {
	var buf []kintsugi.Point
	for _, fr := range a.fracture.Fragments {
		buf = fr.WorldVertices(buf[:0])
		for i := range buf {
			a.drawSegment(buf[i], buf[(i+1)%len(buf)], '▒', styleShard)
		}
	}
}

func (a *app) drawPolyline(pts []kintsugi.Point, r rune, style tcell.Style) {
	for i := 1; i < len(pts); i++ {
		a.drawSegment(pts[i-1], pts[i], r, style)
	}
}

func (a *app) drawSegment(p0, p1 kintsugi.Point, r rune, style tcell.Style) {
	steps := int(p0.Distance(p1)) + 1
	for i := 0; i <= steps; i++ {
		a.plot(p0.Lerp(p1, float64(i)/float64(steps)), r, style)
	}
}

func (a *app) plot(p kintsugi.Point, r rune, style tcell.Style) {
	a.screen.SetContent(int(p.X), int(p.Y/2), r, nil, style)
}

func (a *app) drawStatus() {
	var line string
	switch a.phase {
	case phaseWhole:
		line = "SPACE or click: break the vessel   r: reset   q: quit"
	case phaseTension:
		bar := int(a.intensity * 20)
		line = "tension ["
		for i := 0; i < 20; i++ {
			if i < bar {
				line += "█"
			} else {
				line += "░"
			}
		}
		line += "]  release with SPACE"
	case phaseScatter:
		line = "…"
	case phaseMend:
		line = fmt.Sprintf("mending  %d%%", int(a.lacquer*100))
	}
	col := 1
	for _, r := range line {
		a.screen.SetContent(col, 0, r, nil, styleText)
		col++
	}
}

func (a *app) run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.tick()
		}
	}
}

func (a *app) cleanup() {
	a.sound.close()
	a.screen.Fini()
}

func main() {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.cleanup()

	a.run()
}
