// Package demo is a small endless runner used to exercise the console from
// the command line and on hardware.
package demo

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/valerio/go-arduboy/arduboy"
	"github.com/valerio/go-arduboy/arduboy/display"
	"github.com/valerio/go-arduboy/arduboy/geom"
	"github.com/valerio/go-arduboy/arduboy/input"
	"github.com/valerio/go-arduboy/arduboy/text"
	"github.com/valerio/go-arduboy/arduboy/video"
)

const (
	groundY     = display.Height - 8
	playerX     = 16
	jumpSpeed   = -7
	gravity     = 1
	maxCactuses = 3
	cloudCount  = 2
	minGap      = 48
	scoreEvery  = 6
	blinkEvery  = 30
	frameRate   = 30
)

type state int

const (
	playing state = iota
	gameOver
)

// Runner is the game. The zero value is ready for Setup.
type Runner struct {
	state    state
	playerY  int
	velocity int
	cactuses []int
	clouds   [cloudCount]geom.Point
	score    int
	best     int
	speed    int
	scroll   int
}

// New returns a runner ready to be passed to arduboy.Run.
func New() *Runner {
	return &Runner{}
}

func (r *Runner) Setup(a *arduboy.Arduboy) {
	a.SetFrameRate(frameRate)
	a.InitRandomSeed()
	for i := range r.clouds {
		r.clouds[i] = geom.Point{X: a.Random(0, display.Width), Y: a.Random(2, 20)}
	}
	r.reset()
	slog.Info("Runner ready")
}

func (r *Runner) reset() {
	r.state = playing
	r.playerY = groundY - playerSprite.Height()
	r.velocity = 0
	r.cactuses = r.cactuses[:0]
	r.score = 0
	r.speed = 2
}

func (r *Runner) Loop(a *arduboy.Arduboy) {
	if a.JustPressed(input.BButton) {
		a.Audio().Toggle()
		a.Audio().SaveOnOff()
	}

	switch r.state {
	case playing:
		r.update(a)
	case gameOver:
		if a.JustPressed(input.AButton) {
			r.reset()
		}
	}

	r.draw(a)
}

func (r *Runner) onGround() bool {
	return r.playerY >= groundY-playerSprite.Height()
}

func (r *Runner) update(a *arduboy.Arduboy) {
	if r.onGround() && (a.JustPressed(input.AButton) || a.JustPressed(input.UpButton)) {
		r.velocity = jumpSpeed
		a.Tones().Tone(880, 30*time.Millisecond)
	}

	r.velocity += gravity
	r.playerY += r.velocity
	if r.onGround() {
		r.playerY = groundY - playerSprite.Height()
		r.velocity = 0
	}

	r.scroll = (r.scroll + r.speed) % groundTile.Width()
	for i := range r.clouds {
		if a.EveryXFrames(3) {
			r.clouds[i].X--
		}
		if r.clouds[i].X < -cloudSprite.Width() {
			r.clouds[i] = geom.Point{X: display.Width, Y: a.Random(2, 20)}
		}
	}

	kept := r.cactuses[:0]
	for _, x := range r.cactuses {
		x -= r.speed
		if x > -cactusSprite.Width() {
			kept = append(kept, x)
		}
	}
	r.cactuses = kept
	if r.canSpawn() && a.Random(0, 20) == 0 {
		r.cactuses = append(r.cactuses, display.Width)
	}

	if a.EveryXFrames(scoreEvery) {
		r.score++
		if r.score%100 == 0 {
			r.speed++
		}
	}

	for _, x := range r.cactuses {
		if a.Collide(r.playerRect(), cactusRect(x)) {
			r.crash(a)
			return
		}
	}
}

func (r *Runner) canSpawn() bool {
	if len(r.cactuses) >= maxCactuses {
		return false
	}
	if n := len(r.cactuses); n > 0 && r.cactuses[n-1] > display.Width-minGap {
		return false
	}
	return true
}

func (r *Runner) crash(a *arduboy.Arduboy) {
	r.state = gameOver
	if r.score > r.best {
		r.best = r.score
	}
	a.Tones().Tone(110, 200*time.Millisecond)
	slog.Info("Runner crashed", "score", r.score, "best", r.best, "frame", a.FrameCount())
}

// playerRect is a little smaller than the sprite so grazes don't count
func (r *Runner) playerRect() geom.Rect {
	return geom.NewRect(playerX+1, r.playerY+1, uint(playerSprite.Width()-2), uint(playerSprite.Height()-1))
}

func cactusRect(x int) geom.Rect {
	return geom.NewRect(x+1, groundY-cactusSprite.Height(), uint(cactusSprite.Width()-2), uint(cactusSprite.Height()))
}

func (r *Runner) draw(a *arduboy.Arduboy) {
	a.Clear()
	s := a.Sprites()
	screen := a.Buffer()

	for _, c := range r.clouds {
		s.DrawSelfMasked(c.X, c.Y, cloudSprite, 0)
	}

	for x := -r.scroll; x < display.Width; x += groundTile.Width() {
		s.DrawOverwrite(x, groundY, groundTile, 0)
	}

	for _, x := range r.cactuses {
		s.DrawExternalMask(x, groundY-cactusSprite.Height(), cactusSprite, cactusMask, 0, 0)
	}

	frame := 0
	if r.state == playing && r.onGround() && (a.FrameCount()/4)%2 == 1 {
		frame = 1
	}
	s.DrawPlusMask(playerX, r.playerY, playerSprite, frame)

	score := fmt.Sprintf("%05d", r.score)
	scoreX := display.Width - text.Width(text.DefaultFont, score) - 2
	text.Print(screen, scoreX, 8, score)

	if r.state == gameOver {
		// blink the player out
		if (a.FrameCount()/(blinkEvery/2))%2 == 1 {
			s.DrawErase(playerX, r.playerY, playerSprite, 0)
		}
		r.drawBanner(screen, "GAME OVER", 28)
		r.drawBanner(screen, fmt.Sprintf("BEST %d", r.best), 40)
	}
}

func (r *Runner) drawBanner(screen video.Surface, msg string, baseline int) {
	w := text.Width(text.DefaultFont, msg)
	x := (display.Width - w) / 2
	video.FillRect(screen, x-2, baseline-8, w+4, 11, false)
	video.DrawRect(screen, x-3, baseline-9, w+6, 13, true)
	text.Print(screen, x, baseline, msg)
}

// Score returns the current score.
func (r *Runner) Score() int {
	return r.score
}

// Over reports whether the player has crashed.
func (r *Runner) Over() bool {
	return r.state == gameOver
}
