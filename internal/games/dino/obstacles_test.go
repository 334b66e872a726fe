package dino

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/ImplFerris/pico-rex/internal/config"
)

// seqRandom returns a fixed sequence of values, cycling when exhausted.
type seqRandom struct {
	vals []uint32
	i    int
}

func (r *seqRandom) Uint32() uint32 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func xs(om *ObstacleManager) []int {
	var out []int
	for o := range om.All() {
		out = append(out, o.X)
	}
	return out
}

func TestObstacleManagerInitialSeeding(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	om := NewObstacleManager(cfg, &seqRandom{})

	if got := xs(om); !slices.Equal(got, []int{128, 228}) {
		t.Errorf("initial x = %v, expected [128 228]", got)
	}
	front, _ := om.Front()
	if front.Kind != Small || front.Y != 35 {
		t.Errorf("front = %+v, expected Small at y=35", front)
	}
	if om.queue.Cap() != 4 {
		t.Errorf("Cap() = %d, expected 4", om.queue.Cap())
	}
}

func TestObstacleManagerRecyclesOnExit(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	om := &ObstacleManager{
		queue:  NewObstacleQueue(4),
		rng:    &seqRandom{vals: []uint32{2}},
		cfg:    cfg.Obstacles,
		spawnX: 228,
	}
	om.mustEnqueue(Obstacle{Kind: Small, X: 5, Y: 35})
	om.mustEnqueue(Obstacle{Kind: Medium, X: 105, Y: 35})

	if !om.Advance(-25) {
		t.Fatal("Advance() should report a recycle when the front reaches x=-20")
	}

	if got := xs(om); !slices.Equal(got, []int{80, 228}) {
		t.Errorf("x after recycle = %v, expected [80 228]", got)
	}
	front, _ := om.Front()
	if front.Kind != Medium {
		t.Errorf("front kind = %v, expected Medium", front.Kind)
	}
	var back Obstacle
	for o := range om.All() {
		back = o
	}
	if back.Kind != Large {
		t.Errorf("spawned kind = %v, expected Large (2 %% 3)", back.Kind)
	}
	if om.Recycled() != 1 {
		t.Errorf("Recycled() = %d, expected 1", om.Recycled())
	}
}

func TestObstacleManagerNoRecycleAtZero(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	om := &ObstacleManager{
		queue:  NewObstacleQueue(4),
		rng:    &seqRandom{},
		cfg:    cfg.Obstacles,
		spawnX: 228,
	}
	om.mustEnqueue(Obstacle{Kind: Small, X: 25, Y: 35})

	if om.Advance(-25) {
		t.Error("an obstacle at x=0 is still on screen and must not be recycled")
	}
	if !om.Advance(-25) {
		t.Error("an obstacle at x=-25 must be recycled")
	}
}

func TestObstacleManagerScenario(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	om := NewObstacleManager(cfg, &seqRandom{})

	for frame := 1; frame <= 5; frame++ {
		if om.Advance(cfg.Obstacles.Velocity) {
			t.Fatalf("unexpected recycle at frame %d", frame)
		}
	}
	if got := xs(om); !slices.Equal(got, []int{3, 103}) {
		t.Errorf("after frame 5 x = %v, expected [3 103]", got)
	}

	// 128 - 6*25 = -22 crosses zero during frame 6.
	if !om.Advance(cfg.Obstacles.Velocity) {
		t.Fatal("expected recycle at frame 6")
	}
	if got := xs(om); !slices.Equal(got, []int{78, 228}) {
		t.Errorf("after frame 6 x = %v, expected [78 228]", got)
	}
}

func TestObstacleManagerKindSelection(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	rng := &seqRandom{vals: []uint32{0, 1, 2, 3, 4, 5, 0xFFFFFFFF}}
	om := NewObstacleManager(cfg, rng)

	want := []ObstacleKind{Small, Medium, Large, Small, Medium, Large, Small}
	for i, kind := range want {
		if got := om.spawn().Kind; got != kind {
			t.Errorf("spawn %d: kind = %v, expected %v", i, got, kind)
		}
	}
}

func TestObstacleQueueOrderingInvariant(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	om := NewObstacleManager(cfg, rand.New(rand.NewSource(7)))

	recycles := 0
	for frame := 0; frame < 2000; frame++ {
		if om.Advance(cfg.Obstacles.Velocity) {
			recycles++
		}
		if !om.queue.ordered() {
			t.Fatalf("frame %d: queue out of order: %v", frame, xs(om))
		}
		if om.Len() != 2 {
			t.Fatalf("frame %d: steady state should hold 2 obstacles, got %d", frame, om.Len())
		}
	}
	if recycles != om.Recycled() || recycles == 0 {
		t.Errorf("recycles = %d, Recycled() = %d", recycles, om.Recycled())
	}
}

func TestObstacleQueueRingWraparound(t *testing.T) {
	q := NewObstacleQueue(3)
	for i := 0; i < 10; i++ {
		if err := q.Enqueue(Obstacle{X: i}); err != nil {
			t.Fatalf("Enqueue(%d) failed: %v", i, err)
		}
		if i >= 1 {
			o, ok := q.Dequeue()
			if !ok || o.X != i-1 {
				t.Fatalf("Dequeue() = %v, %v; expected x=%d", o, ok, i-1)
			}
		}
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", q.Len())
	}

	q.Enqueue(Obstacle{X: 10})
	q.Enqueue(Obstacle{X: 11})
	if err := q.Enqueue(Obstacle{X: 12}); err != ErrQueueFull {
		t.Errorf("Enqueue() on full queue = %v, expected ErrQueueFull", err)
	}

	var got []int
	for o := range q.All() {
		got = append(got, o.X)
	}
	if !slices.Equal(got, []int{9, 10, 11}) {
		t.Errorf("All() = %v, expected [9 10 11]", got)
	}

	for q.Len() > 0 {
		q.Dequeue()
	}
	if _, ok := q.Dequeue(); ok {
		t.Error("Dequeue() on empty queue should fail")
	}
	if _, ok := q.Front(); ok {
		t.Error("Front() on empty queue should fail")
	}
}

func TestObstacleManagerPanicsWhenFull(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.Capacity = 2
	om := NewObstacleManager(cfg, &seqRandom{})

	defer func() {
		if recover() == nil {
			t.Error("enqueue past capacity should panic")
		}
	}()
	om.mustEnqueue(Obstacle{Kind: Small, X: 400})
}

func TestObstacleBoundingBoxes(t *testing.T) {
	tests := []struct {
		kind ObstacleKind
		w, h int
	}{
		{Small, 11, 19},
		{Medium, 22, 19},
		{Large, 21, 19},
	}
	for _, tc := range tests {
		box := Obstacle{Kind: tc.kind, X: 50, Y: 35}.BoundingBox()
		if box.Origin.X != 50 || box.Origin.Y != 35 || box.W != tc.w || box.H != tc.h {
			t.Errorf("%v: BoundingBox() = %v, expected %dx%d at (50,35)", tc.kind, box, tc.w, tc.h)
		}
	}
}
