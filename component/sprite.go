package component

import "github.com/lixenwraith/vape/vmath"

// SpriteComponent binds an entity to a texture and draw layer
type SpriteComponent struct {
	Texture string
	Glyph   rune // Terminal stand-in for the texture
	Layer   int
}

// Color is an RGB tint
type Color struct {
	R, G, B uint8
}

// EffectComponent binds a shader and its tints
// Flash replaces Tint while the entity's hit flash runs
type EffectComponent struct {
	Shader string
	Tint   Color
	Flash  Color
}

// TransformComponent caches the model matrix, refreshed by the motion step
type TransformComponent struct {
	Model vmath.Mat3
}
