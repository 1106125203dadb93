package shapes

import "image/color"

// Named colors, matching the raylib palette values.
var (
	LightGray = color.RGBA{200, 200, 200, 255}
	Gray      = color.RGBA{130, 130, 130, 255}
	DarkGray  = color.RGBA{80, 80, 80, 255}
	Yellow    = color.RGBA{253, 249, 0, 255}
	Gold      = color.RGBA{255, 203, 0, 255}
	Orange    = color.RGBA{255, 161, 0, 255}
	Pink      = color.RGBA{255, 109, 194, 255}
	Red       = color.RGBA{230, 41, 55, 255}
	Maroon    = color.RGBA{190, 33, 55, 255}
	Green     = color.RGBA{0, 228, 48, 255}
	Lime      = color.RGBA{0, 158, 47, 255}
	SkyBlue   = color.RGBA{102, 191, 255, 255}
	Blue      = color.RGBA{0, 121, 241, 255}
	DarkBlue  = color.RGBA{0, 82, 172, 255}
	Purple    = color.RGBA{200, 122, 255, 255}
	Violet    = color.RGBA{135, 60, 190, 255}
	Beige     = color.RGBA{211, 176, 131, 255}
	Brown     = color.RGBA{127, 106, 79, 255}
	White     = color.RGBA{255, 255, 255, 255}
	Black     = color.RGBA{0, 0, 0, 255}
	Magenta   = color.RGBA{255, 0, 255, 255}
	RayWhite  = color.RGBA{245, 245, 245, 255}
)
