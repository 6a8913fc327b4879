package touch

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// rXPlate is the X plate resistance in ohms, a fixed physical constant
// of the panel used to scale the pressure resistance estimate.
const rXPlate = 330

// rInvalid is returned as the resistance when a frame's readings are
// degenerate (zero span or zero Z1). It exceeds any sane threshold, so
// the pressure gate rejects the frame.
const rInvalid = fixed.Int52_12(math.MaxInt64)

// Metrics are the derived per-frame touch measurements: normalized
// (x, y) in a roughly [0, 1] range and a resistance estimate used
// purely as a pressure-validity gate. Computed fresh per frame, never
// cached.
type Metrics struct {
	X, Y fixed.Int52_12
	R    fixed.Int52_12
}

const fixShift = 12

func fixFromInt(n int) fixed.Int52_12 {
	return fixed.Int52_12(int64(n) << fixShift)
}

func fixFromFloat(f float64) fixed.Int52_12 {
	return fixed.Int52_12(math.Round(f * (1 << fixShift)))
}

func fixDiv(a, b fixed.Int52_12) fixed.Int52_12 {
	return fixed.Int52_12((int64(a) << fixShift) / int64(b))
}

func fixRound(a fixed.Int52_12) int {
	return int((int64(a) + 1<<(fixShift-1)) >> fixShift)
}

// CalculateMetrics derives the normalized position and resistance
// estimate from one frame using the standard four-wire ratio method:
// each axis position is the midpoint of the two cross-axis sense
// lines, normalized against that axis's span; resistance comes from
// the ratio of the two pressure-plate readings scaled by the plate
// constant.
func CalculateMetrics(f Frame) Metrics {
	xMax := int(f.X.XP)
	xMin := int(f.X.XN)
	xRange := xMax - xMin
	xPos := (int(f.X.YP) + int(f.X.YN)) / 2

	yMax := int(f.Y.YN)
	yMin := int(f.Y.YP)
	yRange := yMax - yMin
	yPos := (int(f.Y.XP) + int(f.Y.XN)) / 2

	zMax := int(f.Pressure.YP)
	zMin := int(f.Pressure.XN)
	zRange := zMax - zMin
	z1Pos := int(f.Pressure.XP)
	z2Pos := int(f.Pressure.YN)

	if xRange <= 0 || yRange <= 0 || zRange <= 0 {
		return Metrics{R: rInvalid}
	}

	xNorm := fixDiv(fixFromInt(xPos-xMin), fixFromInt(xRange))
	yNorm := fixDiv(fixFromInt(yPos-yMin), fixFromInt(yRange))

	z1Norm := fixDiv(fixFromInt(z1Pos-zMin), fixFromInt(zRange))
	z2Norm := fixDiv(fixFromInt(z2Pos-zMin), fixFromInt(zRange))
	if z1Norm <= 0 {
		return Metrics{X: xNorm, Y: yNorm, R: rInvalid}
	}

	// r = rXPlate * xNorm * (z2/z1 - 1)
	ratio := fixDiv(z2Norm, z1Norm) - fixFromInt(1)
	r := fixFromInt(rXPlate).Mul(xNorm).Mul(ratio)

	return Metrics{X: xNorm, Y: yNorm, R: r}
}
