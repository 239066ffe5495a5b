package game

import (
	"github.com/lixenwraith/vape/content"
	"github.com/lixenwraith/vape/network"
)

// Snapshot captures a read-only view of the world for spectators
func (s *State) Snapshot() network.Snapshot {
	var snap network.Snapshot
	s.world.RunSafe(func() {
		res := s.world.Resources
		c := &s.world.Components
		player := res.Game.Player

		snap = network.Snapshot{
			Frame:  uint64(s.ctx.FrameNumber.Load()),
			Level:  res.Game.LevelID,
			Score:  s.Score(),
			Lives:  s.set.Progress.LivesLeft(),
			Paused: s.phase == PhasePaused,
			Stats:  res.Status.Snapshot(),
		}

		if m, ok := c.Motion.GetComponent(player); ok {
			pv := &network.PlayerView{X: m.Position.X, Y: m.Position.Y}
			if h, ok := c.Health.GetComponent(player); ok {
				pv.Health = int(h.Current)
				pv.Max = int(h.Max)
			}
			if v, ok := c.Vamp.GetComponent(player); ok {
				pv.Charge = v.Charge
				pv.Vamp = v.Active
			}
			snap.Player = pv
		}

		entities := s.world.Query().With(c.Sprite).With(c.Motion).Execute()
		snap.Entities = make([]network.EntityView, 0, len(entities))
		for _, e := range entities {
			if e == player {
				continue
			}
			sp, _ := c.Sprite.GetComponent(e)
			if sp.Texture == content.TextureExplosion {
				continue
			}
			m, _ := c.Motion.GetComponent(e)
			snap.Entities = append(snap.Entities, network.EntityView{
				Kind: sp.Texture,
				X:    m.Position.X,
				Y:    m.Position.Y,
				Rot:  m.Rotation,
			})
		}
	})
	return snap
}

// publish hands every PublishEvery-th frame to the spectator sink
func (s *State) publish() {
	if s.opts.Spectators == nil {
		return
	}
	s.published++
	if s.published < s.opts.PublishEvery {
		return
	}
	s.published = 0
	s.opts.Spectators.Publish(s.Snapshot())
}
