package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/starfield/pkg/errors"
	"github.com/matzehuels/starfield/pkg/footprint"
)

const epsilon = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < epsilon }

func TestComputeDeterministic(t *testing.T) {
	fp := footprint.Footprint{Width: 173.5, Height: 41}
	a := Compute(fp, 11, nil)
	b := Compute(fp, 11, nil)

	if len(a) != len(b) {
		t.Fatalf("len = %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("marker %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestComputeAngularCoverage(t *testing.T) {
	markers := Compute(footprint.Default, 11, nil)
	if len(markers) != 11 {
		t.Fatalf("len = %d, want 11", len(markers))
	}

	for i, m := range markers {
		if m.Index != i {
			t.Errorf("Index = %d, want %d", m.Index, i)
		}
		wantBase := float64(i) * 360 / 11
		if !near(m.BaseAngle, wantBase) {
			t.Errorf("BaseAngle[%d] = %v, want %v", i, m.BaseAngle, wantBase)
		}
		if d := math.Abs(m.AngleDeg - m.BaseAngle); d > 15 {
			t.Errorf("marker %d jitter = %v°, want <= 15°", i, d)
		}
	}

	if !near(markers[1].BaseAngle, 32.72727272727273) {
		t.Errorf("BaseAngle[1] = %v, want 32.7272...", markers[1].BaseAngle)
	}
}

func TestComputeMonotonicScaling(t *testing.T) {
	small := Compute(footprint.Footprint{Width: 100, Height: 30}, 11, nil)
	large := Compute(footprint.Footprint{Width: 200, Height: 60}, 11, nil)

	for i := range small {
		if large[i].Distance < small[i].Distance {
			t.Errorf("marker %d: distance %v under larger footprint < %v", i, large[i].Distance, small[i].Distance)
		}
	}
}

func TestComputeZeroSize(t *testing.T) {
	for _, fp := range []footprint.Footprint{
		{Width: 0, Height: 0},
		{Width: math.NaN(), Height: math.Inf(1)},
		{Width: -20, Height: -5},
	} {
		for _, m := range Compute(fp, 11, nil) {
			if m.Distance < 12 {
				t.Errorf("%v: marker %d distance = %v, want >= 12", fp, m.Index, m.Distance)
			}
			wantExtra := 12 + m.Rand*12
			if !near(m.Distance, wantExtra) {
				t.Errorf("%v: marker %d distance = %v, want extra %v", fp, m.Index, m.Distance, wantExtra)
			}
			if math.IsNaN(m.OffsetX) || math.IsNaN(m.OffsetY) {
				t.Errorf("%v: marker %d has NaN offset", fp, m.Index)
			}
		}
	}
}

func TestComputeKeepsPaddingFloor(t *testing.T) {
	seed := 130
	fp := footprint.Footprint{}
	for _, opts := range []*Options{
		{JitterSpread: 30, PaddingFloor: 0, PaddingScale: 0.6},
		{PaddingFloor: -4},
		{Seed: &seed},
	} {
		for _, m := range Compute(fp, 5, opts) {
			if m.Distance < 12 {
				t.Errorf("%+v: marker %d distance = %v, want >= 12", *opts, m.Index, m.Distance)
			}
			if m.OffsetX == 0 && m.OffsetY == 0 {
				t.Errorf("%+v: marker %d placed on the origin", *opts, m.Index)
			}
		}
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"defaults", func(*Options) {}, false},
		{"no jitter", func(o *Options) { o.JitterSpread = 0 }, false},
		{"zero floor", func(o *Options) { o.PaddingFloor = 0 }, true},
		{"negative floor", func(o *Options) { o.PaddingFloor = -1 }, true},
		{"negative scale", func(o *Options) { o.PaddingScale = -0.1 }, true},
		{"nan spread", func(o *Options) { o.JitterSpread = math.NaN() }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidDimension) {
				t.Errorf("Validate() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidDimension)
			}
		})
	}
}

func TestComputeCounts(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"zero", 0, 0},
		{"negative", -4, 0},
		{"single", 1, 1},
		{"default", 11, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(footprint.Default, tt.count, nil)
			if got == nil {
				t.Fatal("Compute returned nil, want empty slice")
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}

	single := Compute(footprint.Default, 1, nil)
	if single[0].BaseAngle != 0 {
		t.Errorf("single marker BaseAngle = %v, want 0", single[0].BaseAngle)
	}
}

func TestComputeEndToEnd(t *testing.T) {
	markers := Compute(footprint.Footprint{Width: 100, Height: 30}, 3, nil)

	want := []struct {
		base, rand, angle, distance, x, y float64
	}{
		{0, 0.8023685901425779, 9.071057704277337, 86.07105770427734, 84.99461625923573, 13.569899825654563},
		{120, 0.31623291969299316, 114.4869875907898, 71.4869875907898, -29.630396373307025, 65.05712109805081},
		{240, 0.8300972492434084, 249.90291747730225, 86.90291747730225, -29.86087449127727, -81.61155090232627},
	}

	for i, w := range want {
		m := markers[i]
		if m.BaseAngle != w.base {
			t.Errorf("BaseAngle[%d] = %v, want %v", i, m.BaseAngle, w.base)
		}
		if m.Rand != w.rand {
			t.Errorf("Rand[%d] = %v, want %v", i, m.Rand, w.rand)
		}
		if !near(m.AngleDeg, w.angle) {
			t.Errorf("AngleDeg[%d] = %v, want %v", i, m.AngleDeg, w.angle)
		}
		if !near(m.Distance, w.distance) {
			t.Errorf("Distance[%d] = %v, want %v", i, m.Distance, w.distance)
		}
		if !near(m.OffsetX, w.x) || !near(m.OffsetY, w.y) {
			t.Errorf("Offset[%d] = (%v, %v), want (%v, %v)", i, m.OffsetX, m.OffsetY, w.x, w.y)
		}
	}
}

func TestComputeSeedOverride(t *testing.T) {
	seed := 130
	a := Compute(footprint.Footprint{Width: 100, Height: 30}, 5, nil)
	b := Compute(footprint.Footprint{Width: 140, Height: 30}, 5, &Options{
		JitterSpread: 30, PaddingFloor: 12, PaddingScale: 0.6, Seed: &seed,
	})

	for i := range a {
		if a[i].AngleDeg != b[i].AngleDeg {
			t.Errorf("AngleDeg[%d] = %v, want %v with pinned seed", i, b[i].AngleDeg, a[i].AngleDeg)
		}
	}
}

func TestBounds(t *testing.T) {
	fp := footprint.Footprint{Width: 100, Height: 30}
	empty := Bounds(fp, nil)
	if empty.Width() != 100 || empty.Height() != 30 {
		t.Errorf("Bounds without markers = %vx%v, want 100x30", empty.Width(), empty.Height())
	}

	markers := Compute(fp, 11, nil)
	r := Bounds(fp, markers)
	for _, m := range markers {
		if m.OffsetX < r.MinX || m.OffsetX > r.MaxX || m.OffsetY < r.MinY || m.OffsetY > r.MaxY {
			t.Errorf("marker %d outside bounds %+v", m.Index, r)
		}
	}
}
