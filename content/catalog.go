package content

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/vmath"
)

// Texture names shared by factories, the catalog and the renderer
const (
	TexturePlayer       = "player"
	TextureBullet       = "bullet"
	TextureEnemyBullet  = "enemy_bullet"
	TextureTurtle       = "turtle"
	TextureShooter      = "shooter"
	TextureBoss         = "boss"
	TextureClone        = "clone"
	TextureLaserTurret  = "laser_turret"
	TextureHealthPickup = "health_pickup"
	TextureWeaponPickup = "weapon_pickup"
	TextureExplosion    = "explosion"
)

// MapCatalog resolves textures from an in-memory extent table
type MapCatalog map[string]vmath.Vec2

// Extent returns the native size of texture
func (c MapCatalog) Extent(texture string) (vmath.Vec2, error) {
	ext, ok := c[texture]
	if !ok {
		return vmath.Vec2{}, errors.Wrapf(core.ErrResourceLoad, "texture %q not in catalog", texture)
	}
	return ext, nil
}

// DefaultCatalog returns the built-in extents
func DefaultCatalog() MapCatalog {
	return MapCatalog{
		TexturePlayer:       vmath.V(parameter.PlayerExtentX, parameter.PlayerExtentY),
		TextureBullet:       vmath.V(parameter.BulletExtentX, parameter.BulletExtentY),
		TextureEnemyBullet:  vmath.V(parameter.BulletExtentX, parameter.BulletExtentY),
		TextureTurtle:       vmath.V(parameter.TurtleExtentX, parameter.TurtleExtentY),
		TextureShooter:      vmath.V(parameter.ShooterExtentX, parameter.ShooterExtentY),
		TextureBoss:         vmath.V(parameter.BossExtentX, parameter.BossExtentY),
		TextureClone:        vmath.V(parameter.CloneExtentX, parameter.CloneExtentY),
		TextureLaserTurret:  vmath.V(parameter.LaserTurretExtentX, parameter.LaserTurretExtentY),
		TextureHealthPickup: vmath.V(parameter.PickupExtentX, parameter.PickupExtentY),
		TextureWeaponPickup: vmath.V(parameter.PickupExtentX, parameter.PickupExtentY),
		TextureExplosion:    vmath.V(1, 1),
	}
}

// LoadCatalog decodes a texture extent table and overlays it on the defaults
//
//	player: [48, 48]
//	boss: [400, 300]
func LoadCatalog(r io.Reader) (MapCatalog, error) {
	raw := make(map[string][2]float64)
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, errors.Wrapf(core.ErrResourceLoad, "decode asset catalog: %v", err)
	}

	cat := DefaultCatalog()
	for name, ext := range raw {
		if ext[0] <= 0 || ext[1] <= 0 {
			return nil, errors.Wrapf(core.ErrResourceLoad, "texture %q has non-positive extent", name)
		}
		cat[name] = vmath.V(ext[0], ext[1])
	}
	return cat, nil
}
