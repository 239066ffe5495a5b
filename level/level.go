package level

import (
	"embed"
	"io"
	"io/fs"
	"os"
	"path"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/vmath"
)

// Level is a loaded stage: its wave script, kill quota and successor
type Level struct {
	ID        string
	Name      string
	Next      string // Empty ends the chain
	VampQuota int
	Tutorial  bool
	Timeline  *Timeline
	Seed      uint64
}

type fileLevel struct {
	ID        string     `yaml:"id"`
	Name      string     `yaml:"name"`
	Next      string     `yaml:"next"`
	VampQuota int        `yaml:"vamp_quota"`
	Tutorial  bool       `yaml:"tutorial"`
	Waves     []fileWave `yaml:"waves"`
}

type fileWave struct {
	AtMs   int64            `yaml:"at_ms"`
	Spawns []fileDescriptor `yaml:"spawns"`
}

type fileDescriptor struct {
	Kind      string  `yaml:"kind"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	VX        float64 `yaml:"vx"`
	VY        float64 `yaml:"vy"`
	Direction float64 `yaml:"direction"`
	TX        float64 `yaml:"tx"`
	TY        float64 `yaml:"ty"`
}

// Seed derives a stable RNG seed from a level id
func Seed(id string) uint64 {
	return xxhash.Sum64String(id)
}

// Load decodes one level from YAML
func Load(r io.Reader) (*Level, error) {
	var fl fileLevel
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fl); err != nil {
		return nil, errors.Wrapf(core.ErrResourceLoad, "decode level: %v", err)
	}
	if fl.ID == "" {
		return nil, errors.Wrap(core.ErrResourceLoad, "level without id")
	}

	waves := make([]Wave, 0, len(fl.Waves))
	for i, fw := range fl.Waves {
		if fw.AtMs < 0 {
			return nil, errors.Wrapf(core.ErrResourceLoad, "level %s wave %d: negative at_ms", fl.ID, i)
		}
		w := Wave{At: time.Duration(fw.AtMs) * time.Millisecond}
		for j, fd := range fw.Spawns {
			if fd.Kind == "" {
				return nil, errors.Wrapf(core.ErrResourceLoad, "level %s wave %d spawn %d: missing kind", fl.ID, i, j)
			}
			w.Spawns = append(w.Spawns, Descriptor{
				Kind:      fd.Kind,
				Position:  vmath.V(fd.X, fd.Y),
				Velocity:  vmath.V(fd.VX, fd.VY),
				Direction: fd.Direction,
				Target:    vmath.V(fd.TX, fd.TY),
			})
		}
		waves = append(waves, w)
	}

	return &Level{
		ID:        fl.ID,
		Name:      fl.Name,
		Next:      fl.Next,
		VampQuota: fl.VampQuota,
		Tutorial:  fl.Tutorial,
		Timeline:  NewTimeline(waves),
		Seed:      Seed(fl.ID),
	}, nil
}

// Source resolves level ids to levels
type Source interface {
	Level(id string) (*Level, error)
}

// FSSource reads <id>.yaml files from a filesystem
type FSSource struct {
	fsys fs.FS
	dir  string
}

// NewFSSource reads levels from dir inside fsys
func NewFSSource(fsys fs.FS, dir string) *FSSource {
	return &FSSource{fsys: fsys, dir: dir}
}

// Level loads id.yaml
func (s *FSSource) Level(id string) (*Level, error) {
	f, err := s.fsys.Open(path.Join(s.dir, id+".yaml"))
	if err != nil {
		return nil, errors.Wrapf(core.ErrResourceLoad, "level %s: %v", id, err)
	}
	defer f.Close()

	lvl, err := Load(f)
	if err != nil {
		return nil, err
	}
	if lvl.ID != id {
		return nil, errors.Wrapf(core.ErrResourceLoad, "level file %s declares id %s", id, lvl.ID)
	}
	return lvl, nil
}

//go:embed levels/*.yaml
var embedded embed.FS

// FirstLevel is the entry point of the embedded chain
const FirstLevel = "tutorial"

// Embedded returns the built-in level chain
func Embedded() Source {
	return NewFSSource(embedded, "levels")
}

// Dir returns a source reading levels from a directory on disk
func Dir(dir string) Source {
	return NewFSSource(os.DirFS(dir), ".")
}
