package game

import (
	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/log"
)

// MenuItem is one pause menu entry
type MenuItem int

const (
	MenuResume MenuItem = iota
	MenuRestart
	MenuQuit
	menuCount
)

var menuLabels = [menuCount]string{"Resume", "Restart level", "Quit"}

func (m MenuItem) String() string {
	if m < 0 || m >= menuCount {
		return "unknown"
	}
	return menuLabels[m]
}

// Selected returns the highlighted pause menu entry
func (s *State) Selected() MenuItem {
	return MenuItem(s.menu)
}

// menuInput is the only input path while paused; the simulation does not step
func (s *State) menuInput(in core.InputSnapshot) {
	switch {
	case in.JustPressed(core.InputPause):
		s.resume()
	case in.JustPressed(core.InputUp):
		s.menu = (s.menu + int(menuCount) - 1) % int(menuCount)
	case in.JustPressed(core.InputDown):
		s.menu = (s.menu + 1) % int(menuCount)
	case in.JustPressed(core.InputConfirm):
		s.choose(MenuItem(s.menu))
	}
}

func (s *State) choose(item MenuItem) {
	s.logger.Debug("pause menu", log.Stringer("item", item))
	switch item {
	case MenuResume:
		s.resume()
	case MenuRestart:
		s.resume()
		s.requestRestart()
	case MenuQuit:
		s.phase = PhaseQuit
	}
}
