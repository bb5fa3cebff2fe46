package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/flappy-ai/internal/audio"
	"github.com/vovakirdan/flappy-ai/internal/config"
)

func TestBirdVelocityLaw(t *testing.T) {
	rec := &cueRecorder{}
	b := NewBird(config.DefaultFlappyConfig(), testAssets, rec)

	b.Update(1)
	if !approx(b.Velocity, 0.4) || !approx(b.Y, 350.4) {
		t.Fatalf("after fall: v=%v y=%v, expected 0.4 and 350.4", b.Velocity, b.Y)
	}

	// Several requests before an update give one impulse.
	b.Jump()
	b.Jump()
	if n := rec.count(audio.CueWing); n != 1 {
		t.Errorf("wing played %d times, expected 1", n)
	}
	b.Update(1)
	if b.Velocity != -7 || !approx(b.Y, 343.4) {
		t.Fatalf("after jump: v=%v y=%v, expected -7 and 343.4", b.Velocity, b.Y)
	}

	b.Update(1)
	if !approx(b.Velocity, -6.6) {
		t.Errorf("impulse should be consumed, v=%v", b.Velocity)
	}
}

func TestBirdDeltaTimeScaling(t *testing.T) {
	b := NewBird(config.DefaultFlappyConfig(), testAssets, audio.Silent{})

	// 30 fps: one update covers two reference frames.
	b.Update(2)
	if !approx(b.Velocity, 0.8) || !approx(b.Y, 351.6) {
		t.Errorf("v=%v y=%v, expected 0.8 and 351.6", b.Velocity, b.Y)
	}
}

func TestBirdAnimationCycle(t *testing.T) {
	b := NewBird(config.DefaultFlappyConfig(), testAssets, audio.Silent{})

	want := []int{0, 0, 0, 0, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 0, 0}
	for i, frame := range want {
		b.Update(1)
		if b.Frame() != frame {
			t.Fatalf("update %d: frame = %d, expected %d", i+1, b.Frame(), frame)
		}
	}
}

func TestBirdAnimationFollowsTime(t *testing.T) {
	tests := []struct {
		name      string
		dt        float64
		firstFlap int // update on which frame 1 first shows
		wrap      int // update on which frame 0 shows again
	}{
		{"60fps", 1, 5, 15},
		{"120fps", 0.5, 10, 30},
		{"30fps", 2, 3, 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBird(config.DefaultFlappyConfig(), testAssets, audio.Silent{})
			for i := 1; i <= tc.wrap; i++ {
				b.Update(tc.dt)
				switch {
				case i < tc.firstFlap && b.Frame() != 0:
					t.Fatalf("update %d: frame %d, expected 0", i, b.Frame())
				case i == tc.firstFlap && b.Frame() != 1:
					t.Fatalf("update %d: frame %d, expected 1", i, b.Frame())
				case i == tc.wrap && b.Frame() != 0:
					t.Fatalf("update %d: frame %d, expected the cycle to wrap", i, b.Frame())
				}
			}
		})
	}
}

func TestBirdRotationFollowsVelocity(t *testing.T) {
	b := NewBird(config.DefaultFlappyConfig(), testAssets, audio.Silent{})

	b.Jump()
	b.Update(1)
	if !approx(b.Angle(), 21) {
		t.Errorf("angle after jump = %v, expected 21", b.Angle())
	}
	r := b.Rect()
	if r.W <= 68 || r.H <= 48 {
		t.Errorf("rotated bounds %dx%d should exceed the upright sprite", r.W, r.H)
	}
	if r.W != b.Mask().Width() || r.H != b.Mask().Height() {
		t.Error("mask must match the rotated sprite")
	}

	// Rect stays centered on the bird.
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	if math.Abs(float64(cx)-b.X) > 1 || math.Abs(float64(cy)-b.Y) > 1 {
		t.Errorf("rect center (%d, %d) is off the bird (%v, %v)", cx, cy, b.X, b.Y)
	}
}

func TestPipeGapInvariant(t *testing.T) {
	s := newTestStream(7, audio.Silent{})
	cfg := config.DefaultFlappyConfig()

	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		s.spawn()
		p := s.pipes[len(s.pipes)-1]

		if p.Anchor < cfg.Obstacles.MinAnchor || p.Anchor > cfg.Obstacles.MaxAnchor {
			t.Fatalf("anchor %d outside [%d, %d]", p.Anchor, cfg.Obstacles.MinAnchor, cfg.Obstacles.MaxAnchor)
		}
		topEdge := p.TopY() + testAssets.PipeTop().Height()
		if p.BottomY()-topEdge != 200 {
			t.Fatalf("gap = %d, expected 200", p.BottomY()-topEdge)
		}
		if p.X != 510 {
			t.Fatalf("spawn x = %v, expected 510", p.X)
		}
		seen[p.Anchor] = true
	}
	if len(seen) < 50 {
		t.Errorf("only %d distinct anchors in 500 spawns", len(seen))
	}
}

func TestStreamPassAndSpawnTiming(t *testing.T) {
	rec := &cueRecorder{}
	s := newTestStream(1, rec)
	s.Reset()

	first := s.Pipes()[0]
	var second *Pipe
	for frame := 1; frame <= 139; frame++ {
		passed := s.Advance(1, 230)

		switch {
		case frame == 57:
			if passed != 1 {
				t.Fatalf("frame 57: passed = %d, expected 1", passed)
			}
		case passed != 0:
			t.Fatalf("frame %d: unexpected pass", frame)
		}

		wantPending := frame >= 57 && frame < 83
		if s.Pending() != wantPending {
			t.Fatalf("frame %d: pending = %v, expected %v", frame, s.Pending(), wantPending)
		}
		// The first pipe spawns at x=510 and is 104px wide, so it is
		// retired once x < -104, on frame 123.
		wantLen := 1
		if frame >= 83 && frame < 123 {
			wantLen = 2
		}
		if len(s.Pipes()) != wantLen {
			t.Fatalf("frame %d: %d pipes, expected %d", frame, len(s.Pipes()), wantLen)
		}
		if frame == 83 {
			second = s.Pipes()[1]
		}
		if frame >= 123 && s.Pipes()[0] != second {
			t.Fatalf("frame %d: the older pipe should have been retired", frame)
		}
		if frame < 123 && s.Pipes()[0] != first {
			t.Fatalf("frame %d: the first pipe was retired early", frame)
		}
	}
	if n := rec.count(audio.CuePoint); n != 1 {
		t.Errorf("point played %d times, expected 1", n)
	}
}

func TestStreamSpawnSpacing(t *testing.T) {
	s := newTestStream(3, audio.Silent{})
	s.Reset()

	total := 0
	spawned := 1
	for frame := 0; frame < 3000; frame++ {
		prev := s.Pipes()[len(s.Pipes())-1]

		total += s.Advance(1, 230)

		pipes := s.Pipes()
		if newest := pipes[len(pipes)-1]; newest != prev {
			spawned++
			if prev.X >= 100 {
				t.Fatalf("frame %d: spawned while the previous pipe was at %v", frame, prev.X)
			}
			if newest.X != 510 {
				t.Fatalf("frame %d: spawned at %v, expected 510", frame, newest.X)
			}
		}
		for i := 1; i < len(pipes); i++ {
			if pipes[i].X-pipes[i-1].X <= 400 {
				t.Fatalf("frame %d: pipes %d and %d only %v apart", frame, i-1, i, pipes[i].X-pipes[i-1].X)
			}
		}
	}

	// Every pass owes exactly one pipe.
	if spawned != total && spawned != total+1 {
		t.Errorf("spawned %d pipes for %d passes", spawned, total)
	}
}

func TestStreamRetireKeepsOrder(t *testing.T) {
	s := newTestStream(1, audio.Silent{})
	for _, x := range []float64{-100, 50, 300} {
		p := newPipe(x, 100, 200, testAssets)
		p.Passed = x < 230
		s.pipes = append(s.pipes, p)
	}

	s.Advance(1, 230)

	pipes := s.Pipes()
	if len(pipes) != 2 {
		t.Fatalf("%d pipes left, expected 2", len(pipes))
	}
	if pipes[0].X != 45 || pipes[1].X != 295 {
		t.Errorf("order not preserved: %v, %v", pipes[0].X, pipes[1].X)
	}
}

func TestGroundTilesStayAdjacent(t *testing.T) {
	g := NewGround(730, 5, testAssets.Ground())
	w := float64(g.Width())

	for frame := 0; frame < 1000; frame++ {
		g.Move(1)
		if math.Abs(g.X1-g.X2) != w {
			t.Fatalf("frame %d: |x1-x2| = %v, expected %v", frame, math.Abs(g.X1-g.X2), w)
		}
		if min(g.X1, g.X2) > 0 || min(g.X1, g.X2)+w < 0 {
			t.Fatalf("frame %d: gap at the left edge (x1=%v x2=%v)", frame, g.X1, g.X2)
		}
	}
}

func TestGroundTilesStayAdjacentAtAnyRate(t *testing.T) {
	g := NewGround(730, 5, testAssets.Ground())
	w := float64(g.Width())
	dt := 60.0 / 144

	for frame := 0; frame < 100000; frame++ {
		g.Move(dt)
		lead, trail := min(g.X1, g.X2), max(g.X1, g.X2)
		if trail != lead+w {
			t.Fatalf("frame %d: tiles drifted apart (x1=%v x2=%v)", frame, g.X1, g.X2)
		}
		if lead > 0 || lead+w < 0 {
			t.Fatalf("frame %d: gap at the left edge (x1=%v x2=%v)", frame, g.X1, g.X2)
		}
	}
}

func TestPipeCollideNeedsBoxOverlap(t *testing.T) {
	b := NewBird(config.DefaultFlappyConfig(), testAssets, audio.Silent{})
	box := b.Rect()

	tests := []struct {
		name   string
		x      float64
		anchor int
		want   bool
	}{
		{"pipe ahead", float64(box.Right()), 100, false},
		{"pipe behind", float64(box.X - 104), 100, false},
		{"bird in the gap", float64(box.X), box.Y - 1, false},
		{"bottom piece", float64(box.X), box.Y - 200 + box.H/2, true},
		{"top piece", float64(box.X), box.Bottom(), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newPipe(tc.x, tc.anchor, 200, testAssets)
			if p.BottomRect().Y != p.TopRect().Bottom()+200 {
				t.Fatalf("gap between %v and %v is not 200", p.TopRect(), p.BottomRect())
			}
			boxes := box.Intersects(p.TopRect()) || box.Intersects(p.BottomRect())
			if tc.want && !boxes {
				t.Fatal("test setup: boxes should meet")
			}
			if got := p.Collide(b); got != tc.want {
				t.Errorf("Collide = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestCollisionIsPixelExact(t *testing.T) {
	rec := &cueRecorder{}
	b := NewBird(config.DefaultFlappyConfig(), testAssets, rec)

	// Upright bird at (230, 350) spans x [196, 264), y [326, 374). The top
	// piece's corner covers the bird's transparent top-left corner only.
	p := newPipe(96, 330, 200, testAssets)
	if !b.Rect().Intersects(p.TopRect()) {
		t.Fatal("test setup: bounding boxes should overlap")
	}
	if p.Collide(b) {
		t.Error("bounding-box overlap alone must not collide")
	}
	if _, hit := CheckCollision(b, []*Pipe{p}, nil, rec); hit {
		t.Error("CheckCollision reported a hit")
	}
	if len(rec.cues) != 0 {
		t.Errorf("no cue expected, got %v", rec.cues)
	}

	p.X = 150
	c, hit := CheckCollision(b, []*Pipe{p}, nil, rec)
	if !hit || c.Cause != CausePipe {
		t.Errorf("expected pipe collision, got %v %v", c, hit)
	}
	if n := rec.count(audio.CueHit); n != 1 {
		t.Errorf("hit played %d times, expected 1", n)
	}
}

func TestCollisionCauses(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	ground := NewGround(cfg.Ground.Y, cfg.Ground.Speed, testAssets.Ground())

	tests := []struct {
		name  string
		y     float64
		pipes []*Pipe
		want  Cause
	}{
		{"clear air", 350, nil, CauseNone},
		{"ceiling", 20, nil, CauseCeiling},
		{"exactly at the top", 24, nil, CauseCeiling},
		{"ground", 740, nil, CauseGround},
		{"pipe before ground", 740, []*Pipe{newPipe(196, 500, 200, testAssets)}, CausePipe},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := &cueRecorder{}
			b := NewBird(cfg, testAssets, rec)
			b.Y = tc.y

			c, hit := CheckCollision(b, tc.pipes, ground, rec)
			if hit != (tc.want != CauseNone) || c.Cause != tc.want {
				t.Fatalf("got %v (hit=%v), expected %v", c.Cause, hit, tc.want)
			}
			wantHits := 0
			if hit {
				wantHits = 1
			}
			if n := rec.count(audio.CueHit); n != wantHits {
				t.Errorf("hit played %d times, expected %d", n, wantHits)
			}
		})
	}
}

func TestGroundIgnoresBirdAbove(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	ground := NewGround(cfg.Ground.Y, cfg.Ground.Speed, testAssets.Ground())
	b := NewBird(cfg, testAssets, audio.Silent{})

	// Bottom edge one pixel above the ground top.
	b.Y = 730 - 24 - 1
	if ground.Collide(b) {
		t.Error("bird above the ground must not collide")
	}
	b.Y = 730 - 24 + 2
	if !ground.Collide(b) {
		t.Error("bird overlapping the ground should collide")
	}
}
