package material

import (
	"math"

	"github.com/ljanyst/ray-tracer/pkg/core"
)

// permutation is Ken Perlin's reference permutation table
var permutation = [256]int{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225, 140, 36,
	103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148, 247, 120, 234, 75, 0,
	26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32, 57, 177, 33, 88, 237, 149, 56, 87,
	174, 20, 125, 136, 171, 168, 68, 175, 74, 165, 71, 134, 139, 48, 27, 166, 77, 146,
	158, 231, 83, 111, 229, 122, 60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40,
	244, 102, 143, 54, 65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18,
	169, 200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212, 207, 206,
	59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213, 119, 248, 152, 2,
	44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9, 129, 22, 39, 253, 19, 98,
	108, 110, 79, 113, 224, 232, 178, 185, 112, 104, 218, 246, 97, 228, 251, 34, 242,
	193, 238, 210, 144, 12, 191, 179, 162, 241, 81, 51, 145, 235, 249, 14, 239, 107,
	49, 192, 214, 31, 181, 199, 106, 157, 184, 84, 204, 176, 115, 121, 50, 45, 127, 4,
	150, 254, 138, 236, 205, 93, 222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66,
	215, 61, 156, 180,
}

// perm wraps the index modulo 255 rather than doubling the table
func perm(i int) int {
	return permutation[i%255]
}

// Noise returns 3D Perlin noise at pt, scaled to [0, 1]
func Noise(pt core.Tuple) float64 {
	xi := int(math.Floor(pt.X)) & 255
	yi := int(math.Floor(pt.Y)) & 255
	zi := int(math.Floor(pt.Z)) & 255

	aaa := perm(perm(perm(xi)+yi) + zi)
	aba := perm(perm(perm(xi)+yi+1) + zi)
	aab := perm(perm(perm(xi)+yi) + zi + 1)
	abb := perm(perm(perm(xi)+yi+1) + zi + 1)
	baa := perm(perm(perm(xi+1)+yi) + zi)
	bba := perm(perm(perm(xi+1)+yi+1) + zi)
	bab := perm(perm(perm(xi+1)+yi) + zi + 1)
	bbb := perm(perm(perm(xi+1)+yi+1) + zi + 1)

	xf := pt.X - math.Floor(pt.X)
	yf := pt.Y - math.Floor(pt.Y)
	zf := pt.Z - math.Floor(pt.Z)

	u := fade(xf)
	v := fade(yf)
	w := fade(zf)

	x1 := lerp(grad(aaa, xf, yf, zf), grad(baa, xf-1, yf, zf), u)
	x2 := lerp(grad(aba, xf, yf-1, zf), grad(bba, xf-1, yf-1, zf), u)
	y1 := lerp(x1, x2, v)

	x1 = lerp(grad(aab, xf, yf, zf-1), grad(bab, xf-1, yf, zf-1), u)
	x2 = lerp(grad(abb, xf, yf-1, zf-1), grad(bbb, xf-1, yf-1, zf-1), u)
	y2 := lerp(x1, x2, v)

	return (lerp(y1, y2, w) + 1) / 2
}

// OctaveNoise sums octaves of Noise, doubling the frequency and scaling
// the amplitude by persistence at each step. The result is normalized back
// to [0, 1].
func OctaveNoise(pt core.Tuple, octaves int, persistence float64) float64 {
	total := 0.0
	frequency := 1.0
	amplitude := 1.0
	maxValue := 0.0
	for i := 0; i < octaves; i++ {
		total += Noise(pt.Multiply(frequency)) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	if maxValue == 0 {
		return 0
	}
	return total / maxValue
}

// fade is 6t^5 - 15t^4 + 10t^3
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, x float64) float64 {
	return a + x*(b-a)
}

func grad(hash int, x, y, z float64) float64 {
	switch hash & 0xf {
	case 0x0:
		return x + y
	case 0x1:
		return -x + y
	case 0x2:
		return x - y
	case 0x3:
		return -x - y
	case 0x4:
		return x + z
	case 0x5:
		return -x + z
	case 0x6:
		return x - z
	case 0x7:
		return -x - z
	case 0x8:
		return y + z
	case 0x9:
		return -y + z
	case 0xa:
		return y - z
	case 0xb:
		return -y - z
	case 0xc:
		return y + x
	case 0xd:
		return -y + z
	case 0xe:
		return y - x
	default:
		return -y - z
	}
}
