package scene

// PointLight emits light in all directions from its world position.
type PointLight struct {
	Object
	Color     [3]float32
	Intensity float32
	// Range limits the light's reach; zero means unlimited.
	Range      float32
	CastShadow bool
}

// NewPointLight creates a point light. Color components are in 0-1.
func NewPointLight(name string, color [3]float32, intensity float32) *PointLight {
	l := &PointLight{Color: color, Intensity: intensity}
	l.init(name)
	return l
}

// HexColor converts 0xRRGGBB to 0-1 RGB components.
func HexColor(hex uint32) [3]float32 {
	return [3]float32{
		float32((hex>>16)&0xff) / 255,
		float32((hex>>8)&0xff) / 255,
		float32(hex&0xff) / 255,
	}
}
