package terrain

import "github.com/go-gl/mathgl/mgl32"

// Terrain band thresholds on normalized height, in ascending order. Each
// transition blends linearly over blendWidth on either side.
const (
	deepWaterThresh    = 0.20
	shallowWaterThresh = 0.30
	sandThresh         = 0.40
	grassThresh        = 0.60
	mountainThresh     = 0.80
	blendWidth         = 0.03
)

var (
	deepWaterColor    = mgl32.Vec3{0.0, 0.0, 0.5}
	shallowWaterColor = mgl32.Vec3{0.0, 0.0, 0.8}
	sandColor         = mgl32.Vec3{0.76, 0.7, 0.5}
	grassColor        = mgl32.Vec3{0.0, 0.6, 0.0}
	mountainColor     = mgl32.Vec3{0.5, 0.35, 0.05}
	snowColor         = mgl32.Vec3{1.0, 1.0, 1.0}
)

func colorLerp(t float32, a, b mgl32.Vec3) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// ColorFor maps a normalized height in [0, 1] to a terrain color. Bands run
// deep water, shallow water, sand, grass, mountain, snow; each boundary
// blends linearly so the map is continuous in height.
func ColorFor(normalized float64) mgl32.Vec3 {
	h := float32(normalized)

	bands := []struct {
		thresh float32
		lo, hi mgl32.Vec3
	}{
		{deepWaterThresh, deepWaterColor, shallowWaterColor},
		{shallowWaterThresh, shallowWaterColor, sandColor},
		{sandThresh, sandColor, grassColor},
		{grassThresh, grassColor, mountainColor},
		{mountainThresh, mountainColor, snowColor},
	}

	for _, b := range bands {
		if h < b.thresh-blendWidth {
			return b.lo
		}
		if h < b.thresh+blendWidth {
			t := (h - (b.thresh - blendWidth)) / (2 * blendWidth)
			return colorLerp(t, b.lo, b.hi)
		}
	}
	return snowColor
}
