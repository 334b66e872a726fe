package dino

import (
	"errors"
	"fmt"
	"iter"

	"github.com/ImplFerris/pico-rex/internal/config"
	"github.com/ImplFerris/pico-rex/internal/core"
)

// ObstacleKind selects a cactus sprite.
type ObstacleKind int

const (
	Small ObstacleKind = iota
	Medium
	Large
)

// obstacleKinds is indexed by random()%len when spawning.
var obstacleKinds = [...]ObstacleKind{Small, Medium, Large}

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case Small:
		return "Small"
	case Medium:
		return "Medium"
	case Large:
		return "Large"
	default:
		return "Unknown"
	}
}

// Sprite returns the cactus image for this kind.
func (k ObstacleKind) Sprite() *core.Sprite {
	switch k {
	case Medium:
		return mediumCactusSprite
	case Large:
		return largeCactusSprite
	default:
		return smallCactusSprite
	}
}

// Obstacle is a cactus scrolling toward the trex.
type Obstacle struct {
	Kind ObstacleKind
	X    int // Left edge
	Y    int // Top edge, the same for every obstacle
}

// BoundingBox returns the collision rectangle for this obstacle.
func (o Obstacle) BoundingBox() core.Rectangle {
	return o.Kind.Sprite().Bounds(core.Pt(o.X, o.Y))
}

// Draw blits the cactus sprite.
func (o Obstacle) Draw(dst core.Surface) error {
	return dst.Blit(o.Kind.Sprite(), core.Pt(o.X, o.Y))
}

// ErrQueueFull is returned when enqueueing into a full ObstacleQueue.
var ErrQueueFull = errors.New("dino: obstacle queue is full")

// ObstacleQueue is a bounded FIFO ring buffer. Storage is allocated once, at
// construction.
type ObstacleQueue struct {
	buf  []Obstacle
	head int // Index of the front obstacle
	n    int // Number of live obstacles
}

// NewObstacleQueue creates an empty queue holding up to capacity obstacles.
func NewObstacleQueue(capacity int) *ObstacleQueue {
	return &ObstacleQueue{buf: make([]Obstacle, capacity)}
}

// Len returns the number of live obstacles.
func (q *ObstacleQueue) Len() int {
	return q.n
}

// Cap returns the queue capacity.
func (q *ObstacleQueue) Cap() int {
	return len(q.buf)
}

// Enqueue appends an obstacle at the back.
func (q *ObstacleQueue) Enqueue(o Obstacle) error {
	if q.n == len(q.buf) {
		return ErrQueueFull
	}
	q.buf[(q.head+q.n)%len(q.buf)] = o
	q.n++
	return nil
}

// Dequeue removes and returns the front obstacle.
func (q *ObstacleQueue) Dequeue() (Obstacle, bool) {
	if q.n == 0 {
		return Obstacle{}, false
	}
	o := q.buf[q.head]
	q.buf[q.head] = Obstacle{}
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return o, true
}

// Front returns the obstacle nearest the left edge without removing it.
func (q *ObstacleQueue) Front() (Obstacle, bool) {
	if q.n == 0 {
		return Obstacle{}, false
	}
	return q.buf[q.head], true
}

// at returns a pointer to the i-th live obstacle counted from the front.
func (q *ObstacleQueue) at(i int) *Obstacle {
	return &q.buf[(q.head+i)%len(q.buf)]
}

// All iterates live obstacles from front to back.
func (q *ObstacleQueue) All() iter.Seq[Obstacle] {
	return func(yield func(Obstacle) bool) {
		for i := 0; i < q.n; i++ {
			if !yield(*q.at(i)) {
				return
			}
		}
	}
}

// ordered reports whether x is non-decreasing from front to back.
func (q *ObstacleQueue) ordered() bool {
	for i := 1; i < q.n; i++ {
		if q.at(i).X < q.at(i-1).X {
			return false
		}
	}
	return true
}

// ObstacleManager scrolls obstacles left and recycles the front one once it
// leaves the screen.
//
// All obstacles share one velocity and new ones always spawn at the same
// point past the right edge, so the queue stays sorted by x and only the
// front obstacle can have left the screen. At most one obstacle is recycled
// per frame.
type ObstacleManager struct {
	queue   *ObstacleQueue
	rng     core.Random
	cfg     config.ObstacleConfig
	spawnX  int
	recycle int // Total recycles since construction
}

// NewObstacleManager seeds the queue with a small cactus at the right screen
// edge and a medium one a gap further.
func NewObstacleManager(cfg config.RunnerConfig, rng core.Random) *ObstacleManager {
	om := &ObstacleManager{
		queue:  NewObstacleQueue(cfg.Obstacles.Capacity),
		rng:    rng,
		cfg:    cfg.Obstacles,
		spawnX: cfg.Screen.Width + cfg.Obstacles.Gap,
	}
	om.mustEnqueue(Obstacle{Kind: Small, X: cfg.Screen.Width, Y: cfg.Obstacles.Y})
	om.mustEnqueue(Obstacle{Kind: Medium, X: om.spawnX, Y: cfg.Obstacles.Y})
	return om
}

// Advance shifts every obstacle left by |velocity| and recycles the front
// obstacle if its left edge has gone past x=0.
// Returns whether a recycle happened.
func (om *ObstacleManager) Advance(velocity int) bool {
	dx := core.Abs(velocity)
	for i := 0; i < om.queue.Len(); i++ {
		om.queue.at(i).X -= dx
	}

	front, ok := om.queue.Front()
	if !ok || front.X >= 0 {
		return false
	}

	om.queue.Dequeue()
	om.mustEnqueue(om.spawn())
	om.recycle++
	return true
}

// spawn draws a random cactus at the spawn point.
func (om *ObstacleManager) spawn() Obstacle {
	kind := obstacleKinds[om.rng.Uint32()%uint32(len(obstacleKinds))]
	return Obstacle{Kind: kind, X: om.spawnX, Y: om.cfg.Y}
}

// mustEnqueue appends o, panicking if the queue is full. Steady state uses
// two slots; a full queue means recycling is broken and obstacle spacing
// would silently drift.
func (om *ObstacleManager) mustEnqueue(o Obstacle) {
	if err := om.queue.Enqueue(o); err != nil {
		panic(fmt.Sprintf("dino: cannot enqueue %v obstacle at x=%d (%d/%d live): %v",
			o.Kind, o.X, om.queue.Len(), om.queue.Cap(), err))
	}
}

// All iterates live obstacles from leftmost to rightmost.
func (om *ObstacleManager) All() iter.Seq[Obstacle] {
	return om.queue.All()
}

// Len returns the number of live obstacles.
func (om *ObstacleManager) Len() int {
	return om.queue.Len()
}

// Front returns the leftmost obstacle.
func (om *ObstacleManager) Front() (Obstacle, bool) {
	return om.queue.Front()
}

// Recycled returns how many obstacles have been recycled.
func (om *ObstacleManager) Recycled() int {
	return om.recycle
}
