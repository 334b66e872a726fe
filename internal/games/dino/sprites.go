package dino

import "github.com/ImplFerris/pico-rex/internal/core"

// Sprites are rasterized once at package init. Bounding boxes come from
// sprite sizes, so the art and the collision model cannot drift apart.

// trexSprite is the runner, 25x25. The top rows and right columns are blank
// headroom; collisions use the full sprite box.
var trexSprite = core.ParseSprite(
	".........................",
	".........................",
	".........................",
	".........................",
	"..........########.......",
	".........##.#######......",
	".........##########......",
	".........##########......",
	".........##########......",
	".........#####...........",
	".........########........",
	"#.......#####............",
	"#......######............",
	"##...##########..........",
	"###.########..#..........",
	"############.............",
	"############.............",
	".##########..............",
	"..#########..............",
	"...#######...............",
	"....######...............",
	"....###..##..............",
	"....##....#..............",
	"....#.....#..............",
	"....##....##.............",
)

// smallCactusSprite is a single cactus, 11x19.
var smallCactusSprite = core.ParseSprite(
	"....###....",
	"...#####...",
	"...#####...",
	"...#####.#.",
	".#.#####.##",
	"##.#####.##",
	"##.#####.##",
	"##.#####.##",
	"##.########",
	"##.#######.",
	"#########..",
	".########..",
	"...#####...",
	"...#####...",
	"...#####...",
	"...#####...",
	"...#####...",
	"...#####...",
	"...#####...",
)

// mediumCactusSprite is a pair of cacti, 22x19.
var mediumCactusSprite = core.ParseSprite(
	"....###........###....",
	"...#####......#####...",
	"...#####......#####...",
	"...#####.#....#####.#.",
	".#.#####.##.#.#####.##",
	"##.#####.####.#####.##",
	"##.#####.####.#####.##",
	"##.#####.####.#####.##",
	"##.##########.########",
	"##.#######.##.#######.",
	"#########..#########..",
	".########...########..",
	"...#####......#####...",
	"...#####......#####...",
	"...#####......#####...",
	"...#####......#####...",
	"...#####......#####...",
	"...#####......#####...",
	"...#####......#####...",
)

// largeCactusSprite is a cactus cluster, 21x19.
var largeCactusSprite = core.ParseSprite(
	"..........###........",
	".........#####.......",
	".........#####.......",
	"....##...#####...##..",
	"....##...#####...##..",
	"#...##...#####...##.#",
	"#...##.#.#####.#.##.#",
	"#...##.#.#####.#.##.#",
	"######.#.#####.#.####",
	"#####..#########.###.",
	"..##...########..##..",
	"..##.....#####...##..",
	"..##.....#####...##..",
	"..##.....#####...##..",
	".........#####.......",
	".........#####.......",
	".........#####.......",
	".........#####.......",
	".........#####.......",
)

// Game-over indicator layout.
var (
	gameOverBox      = core.NewRect(14, 22, 100, 20)
	gameOverTitle    = core.Pt(60, 28)
	gameOverHint     = core.Pt(54, 34)
	gameOverHintText = "hold jump to restart"
)

const (
	groundHeight  = 3
	groundPattern = 40 // Speckle period, divides the default strip length
)

// newGroundStrip rasterizes a tileable ground texture of the given length:
// a horizon line with bumps above a band of pebbles.
func newGroundStrip(length int) *core.Sprite {
	s := core.NewSprite(length, groundHeight)
	for x := 0; x < length; x++ {
		p := x % groundPattern
		s.Set(x, 0, p != 17 && p != 18)
		s.Set(x, 1, p == 3 || p == 17 || p == 18 || p == 26)
		s.Set(x, 2, p == 9 || p == 10 || p == 31)
	}
	return s
}
