package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/vape/component"
	"github.com/lixenwraith/vape/content"
	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/physics"
	"github.com/lixenwraith/vape/render"
	"github.com/lixenwraith/vape/vmath"
)

// Draw composes the current frame and presents it
// It runs between steps, so every entity is seen fully updated
func (s *State) Draw(canvas render.Canvas) error {
	s.world.RunSafe(s.compose)
	cfg := s.world.Resources.Config
	return canvas.Present(render.Projection(cfg.Width(), cfg.Height()), s.list)
}

// DrawList returns the last composed frame
func (s *State) DrawList() *render.DrawList {
	return s.list
}

func (s *State) compose() {
	s.list.Reset()
	s.sprites()
	s.lasers()
	s.particles()
	s.vampArea()
	s.hud()

	switch s.phase {
	case PhasePaused:
		s.pauseMenu()
	case PhaseOver:
		s.runOver()
	}
}

// sprites queues one glyph per actor at its cached model matrix
// The draw pass only reads; actors without a Transform get a model built on the spot
func (s *State) sprites() {
	c := &s.world.Components
	for _, e := range s.world.Query().With(c.Sprite).With(c.Motion).With(c.Physics).Execute() {
		sp, _ := c.Sprite.GetComponent(e)

		var model vmath.Mat3
		if tf, ok := c.Transform.GetComponent(e); ok {
			model = tf.Model
		} else {
			m, _ := c.Motion.GetComponent(e)
			p, _ := c.Physics.GetComponent(e)
			model = p.Model(m)
		}
		// Explosions are drawn through their particles
		if sp.Texture == content.TextureExplosion {
			continue
		}
		s.list.Sprite(sp.Layer, model, sp.Glyph, s.tint(e))
	}
}

func (s *State) tint(e core.Entity) render.RGB {
	c := &s.world.Components
	if cb, ok := c.Combat.GetComponent(e); ok && cb.HitFlashRemaining > 0 {
		if fx, ok := c.Effect.GetComponent(e); ok {
			return render.FromColor(fx.Flash)
		}
	}

	switch {
	case c.Player.HasEntity(e):
		return render.RGBPlayer
	case c.Boss.HasEntity(e):
		return render.RGBBoss
	case c.Enemy.HasEntity(e):
		return render.RGBEnemy
	case c.Pickup.HasEntity(e):
		return render.RGBPickup
	}
	if b, ok := c.Bullet.GetComponent(e); ok {
		if b.Hostile {
			return render.RGBHostile
		}
		return render.RGBBullet
	}
	return render.RGBText
}

// lasers draws the aim line while primed and both beam edges while firing
func (s *State) lasers() {
	c := &s.world.Components
	for _, e := range s.world.Query().With(c.Laser).With(c.Motion).Execute() {
		l, _ := c.Laser.GetComponent(e)
		m, _ := c.Motion.GetComponent(e)
		facing := m.Rotation + math.Pi

		switch l.State {
		case component.LaserPrimed:
			end := m.Position.Add(vmath.FromAngle(facing).Scale(l.Length))
			s.list.Line(parameter.LayerProjectile, m.Position, end, ':', render.RGBLaserWarn)
		case component.LaserFiring:
			for _, seg := range physics.Beam(m.Position, facing, l.Length, l.Width) {
				s.list.Line(parameter.LayerProjectile, seg[0], seg[1], '|', render.RGBLaserBeam)
			}
		}
	}
}

func (s *State) particles() {
	c := &s.world.Components
	for _, e := range c.Emitter.GetAllEntities() {
		em, _ := c.Emitter.GetComponent(e)
		for _, p := range em.Particles {
			s.list.Point(parameter.LayerParticle, p.Position, '.', render.FromColor(p.Color))
		}
	}
}

func (s *State) vampArea() {
	c := &s.world.Components
	player := s.world.Resources.Game.Player
	v, ok := c.Vamp.GetComponent(player)
	if !ok || !v.Active {
		return
	}
	m, ok := c.Motion.GetComponent(player)
	if !ok {
		return
	}
	s.list.Circle(parameter.LayerVamp, m.Position, v.Radius, render.RGBVamp)
}

// StatusLine renders the HUD text for the current frame
func (s *State) StatusLine() string {
	var b strings.Builder
	game := s.world.Resources.Game
	c := &s.world.Components

	name := game.LevelID
	if s.level != nil && s.level.Name != "" {
		name = s.level.Name
	}
	fmt.Fprintf(&b, "%s  SCORE %d", name, s.Score())

	if h, ok := c.Health.GetComponent(game.Player); ok {
		if h.Dead {
			b.WriteString("  DOWN")
		} else {
			fmt.Fprintf(&b, "  HP %d/%d", int(math.Ceil(h.Current)), int(h.Max))
		}
	}

	if lives := s.set.Progress.LivesLeft(); lives >= 0 {
		fmt.Fprintf(&b, "  LIVES %d", lives)
	}

	if v, ok := c.Vamp.GetComponent(game.Player); ok {
		b.WriteString("  ")
		b.WriteString(chargeBar(v.Charge, v.MaxCharge, v.Active))
	}

	if game.Quota > 0 {
		fmt.Fprintf(&b, "  QUOTA %d", game.Quota)
	}

	if game.Debug.Enabled {
		fmt.Fprintf(&b, "  DEBUG x%.2f", game.BaseSpeed)
		if game.Debug.Invincible {
			b.WriteString(" INV")
		}
	}
	return b.String()
}

func chargeBar(charge, limit int, active bool) string {
	width := parameter.ChargeBarWidth
	filled := 0
	if limit > 0 {
		filled = min(max(charge*width/limit, 0), width)
	}
	label := "VAMP"
	if active {
		label = "VAMP!"
	}
	return label + " [" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func (s *State) hud() {
	color := render.RGBText
	if s.flash > 0 {
		color = render.RGBHostile
	}
	s.list.Label(parameter.LayerUI, 0, parameter.HUDRow, s.StatusLine(), color)

	if s.dialogue != "" {
		s.list.Label(parameter.LayerUI, 1, -parameter.DialogueRowFromBottom, s.dialogue, render.RGBHighlight)
	}
}

// centre returns a world anchor roughly centring n cells of text around row offset dy
func (s *State) centre(n int, dy float64) vmath.Vec2 {
	cfg := s.world.Resources.Config
	return vmath.V(cfg.Width()/2-float64(n)*parameter.MenuCharWidth/2, cfg.Height()/2+dy)
}

func (s *State) pauseMenu() {
	s.list.Text(parameter.LayerPause, s.centre(len(parameter.PauseTitle), -parameter.MenuLineHeight*2),
		parameter.PauseTitle, render.RGBHighlight)
	for i := MenuItem(0); i < menuCount; i++ {
		label := "  " + i.String()
		color := render.RGBText
		if int(i) == s.menu {
			label = "> " + i.String()
			color = render.RGBHighlight
		}
		s.list.Text(parameter.LayerPause, s.centre(len(label), float64(i)*parameter.MenuLineHeight), label, color)
	}
}

func (s *State) runOver() {
	title := "GAME OVER"
	if s.won {
		title = "VICTORY"
	}
	score := fmt.Sprintf("SCORE %d", s.finalScore)
	prompt := "ENTER new run  Q quit"

	s.list.Text(parameter.LayerPause, s.centre(len(title), -parameter.MenuLineHeight), title, render.RGBHighlight)
	s.list.Text(parameter.LayerPause, s.centre(len(score), 0), score, render.RGBText)
	s.list.Text(parameter.LayerPause, s.centre(len(prompt), parameter.MenuLineHeight), prompt, render.RGBText)
}
