package demo

import (
	"strings"

	"github.com/valerio/go-arduboy/arduboy/bitmap"
)

// Art legend: '#' lit and masked in, '.' unlit but masked in, ' ' masked out.

var playerArt = [][]string{
	{
		"  .##.  ",
		"  .##.  ",
		" .####. ",
		".#.##.#.",
		"  .##.  ",
		" .#..#. ",
		" .#..#. ",
		".##..##.",
	},
	{
		"  .##.  ",
		"  .##.  ",
		" .####. ",
		".#.##.#.",
		"  .##.  ",
		"  .##.  ",
		" .#.#.  ",
		" .##.## ",
	},
}

var cactusArt = []string{
	"   ##   ",
	"   ##   ",
	"#  ##   ",
	"#  ##  #",
	"#  ##  #",
	"## ## ##",
	" ###### ",
	"   ##   ",
	"   ##   ",
	"   ##   ",
	"   ##   ",
	"   ##   ",
	"   ##   ",
	"   ##   ",
	"   ##   ",
	"  ####  ",
}

var cloudArt = []string{
	"                ",
	"     ####       ",
	"   ##    ##     ",
	"  #        ###  ",
	" #            # ",
	"#              #",
	" ############## ",
	"                ",
}

var groundArt = []string{
	"########",
	"        ",
	" #    # ",
	"    #   ",
	"        ",
	"  #     ",
	"       #",
	"        ",
}

var (
	playerSprite = mustPlusMask(8, 8, playerArt...)
	cactusSprite = mustPack(8, 16, cactusArt)
	// cactusMask is the cactus silhouette grown by one pixel sideways so the
	// obstacle carves a gap out of anything behind it
	cactusMask  = bitmap.NewMask(mustPack(8, 16, grow(cactusArt))[bitmap.HeaderSize:], 8, 16)
	cloudSprite = mustPack(16, 8, cloudArt)
	groundTile  = mustPack(8, 8, groundArt)
)

func parseArt(rows []string) (image, mask [][]bool) {
	image = make([][]bool, len(rows))
	mask = make([][]bool, len(rows))
	for y, row := range rows {
		image[y] = make([]bool, len(row))
		mask[y] = make([]bool, len(row))
		for x, c := range row {
			image[y][x] = c == '#'
			mask[y][x] = c != ' '
		}
	}
	return image, mask
}

func grow(rows []string) []string {
	out := make([]string, len(rows))
	for y, row := range rows {
		var sb strings.Builder
		for x := range row {
			c := byte(' ')
			for dx := -1; dx <= 1; dx++ {
				if i := x + dx; i >= 0 && i < len(row) && row[i] != ' ' {
					c = '#'
				}
			}
			sb.WriteByte(c)
		}
		out[y] = sb.String()
	}
	return out
}

func mustPack(width, height int, rows []string) bitmap.Bitmap {
	image, _ := parseArt(rows)
	data, err := bitmap.Pack(width, height, image)
	if err != nil {
		panic(err)
	}
	return bitmap.New(data)
}

func mustPlusMask(width, height int, frames ...[]string) bitmap.Bitmap {
	images := make([][][]bool, len(frames))
	masks := make([][][]bool, len(frames))
	for i, rows := range frames {
		images[i], masks[i] = parseArt(rows)
	}
	data, err := bitmap.PackPlusMask(width, height, images, masks)
	if err != nil {
		panic(err)
	}
	return bitmap.NewPlusMask(data)
}
