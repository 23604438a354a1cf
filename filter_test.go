package vignette

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

// testPattern fills a pixmap with a deterministic gradient so every band
// carries distinct pixel values.
func testPattern(w, h int) *Pixmap {
	pm := NewPixmap(w, h)
	data := pm.Data()
	for i := range data {
		data[i] = uint8((i*31 + i/7) % 256)
	}
	return pm
}

func TestNewFilterRejectsInvalid(t *testing.T) {
	p := DefaultParams()
	p.Opacity = math.NaN()
	if _, err := NewFilter(p); err == nil {
		t.Fatal("NewFilter accepted NaN opacity")
	}
}

func TestApplyRejectsNilAndMismatch(t *testing.T) {
	f, err := NewFilter(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src := NewPixmap(8, 8)
	if err := f.Apply(nil, src); err == nil {
		t.Error("Apply accepted nil src")
	}
	if err := f.Apply(src, nil); err == nil {
		t.Error("Apply accepted nil dst")
	}
	if err := f.Apply(src, NewPixmap(8, 9)); err == nil {
		t.Error("Apply accepted size mismatch")
	}
	if err := f.Apply(NewPixmap(0, 0), NewPixmap(0, 0)); err != nil {
		t.Errorf("Apply on empty pixmap: %v", err)
	}
}

func TestApplyZeroOpacityIsIdentity(t *testing.T) {
	p := DefaultParams()
	p.Opacity = 0

	f, err := NewFilter(p)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src := testPattern(40, 30)
	dst := NewPixmap(40, 30)
	if err := f.Apply(src, dst); err != nil {
		t.Fatal(err)
	}

	// The byte -> float -> byte trip may truncate a value by one step.
	s, d := src.Data(), dst.Data()
	for i := range s {
		if diff := int(s[i]) - int(d[i]); diff < 0 || diff > 1 {
			t.Fatalf("byte %d changed by %d (src %d, dst %d)", i, diff, s[i], d[i])
		}
	}
}

func TestApplySerialParallelMatch(t *testing.T) {
	p, _ := Preset("sepia")
	src := testPattern(97, 66)

	serial, err := NewFilter(p, WithWorkers(1), WithBandHeight(200))
	if err != nil {
		t.Fatal(err)
	}
	defer serial.Close()

	parallelF, err := NewFilter(p, WithWorkers(4), WithBandHeight(7))
	if err != nil {
		t.Fatal(err)
	}
	defer parallelF.Close()

	dstSerial := NewPixmap(97, 66)
	dstParallel := NewPixmap(97, 66)
	if err := serial.Apply(src, dstSerial); err != nil {
		t.Fatal(err)
	}
	if err := parallelF.Apply(src, dstParallel); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(dstSerial.Data(), dstParallel.Data()) {
		t.Fatal("parallel output differs from serial output")
	}
}

func TestApplyInPlace(t *testing.T) {
	p := DefaultParams()
	f, err := NewFilter(p, WithBandHeight(5))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src := testPattern(33, 21)
	expected := NewPixmap(33, 21)
	if err := f.Apply(src, expected); err != nil {
		t.Fatal(err)
	}

	inPlace := src.Clone()
	if err := f.Apply(inPlace, inPlace); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(expected.Data(), inPlace.Data()) {
		t.Fatal("in-place output differs from out-of-place output")
	}
}

func TestApplyPreservesAlpha(t *testing.T) {
	p := DefaultParams()
	p.Opacity = 1

	f, err := NewFilter(p)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src := testPattern(24, 24)
	dst := NewPixmap(24, 24)
	if err := f.Apply(src, dst); err != nil {
		t.Fatal(err)
	}

	s, d := src.Data(), dst.Data()
	for i := 3; i < len(s); i += 4 {
		if diff := int(s[i]) - int(d[i]); diff < 0 || diff > 1 {
			t.Fatalf("alpha byte %d changed by %d", i, diff)
		}
	}
}

func TestApplyDarkensEdges(t *testing.T) {
	f, err := NewFilter(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src := NewPixmap(64, 64)
	src.Clear(RGBA{R: 0.6, G: 0.6, B: 0.6, A: 1})
	dst := NewPixmap(64, 64)
	if err := f.Apply(src, dst); err != nil {
		t.Fatal(err)
	}

	corner := dst.GetPixel(0, 0)
	center := dst.GetPixel(32, 32)
	if corner.R >= 0.6 {
		t.Errorf("corner not darkened: %v", corner.R)
	}
	if center.R < 0.6 {
		t.Errorf("center darkened below source: %v", center.R)
	}
}

func TestSetParamsKeepsOldOnError(t *testing.T) {
	f, err := NewFilter(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	bad := DefaultParams()
	bad.AspectRatio = math.Inf(1)
	if err := f.SetParams(bad); err == nil {
		t.Fatal("SetParams accepted non-finite aspect ratio")
	}
	if got := f.Params(); got != DefaultParams() {
		t.Errorf("params changed after rejected SetParams: %+v", got)
	}
}

// fakeAccelerator records calls and either filters via the reference
// kernel or fails.
type fakeAccelerator struct {
	name   string
	fail   error
	called int
}

func (a *fakeAccelerator) Name() string { return a.name }
func (a *fakeAccelerator) Init() error  { return nil }
func (a *fakeAccelerator) Close()       {}

func (a *fakeAccelerator) ApplyVignette(target RenderTarget, p Params) error {
	a.called++
	if a.fail != nil {
		return a.fail
	}
	for y := 0; y < target.Height; y++ {
		v := (float64(y) + 0.5) / float64(target.Height)
		for x := 0; x < target.Width; x++ {
			i := y*target.Stride + x*4
			src := RGBA{
				R: float64(target.Data[i+0]) / 255,
				G: float64(target.Data[i+1]) / 255,
				B: float64(target.Data[i+2]) / 255,
				A: float64(target.Data[i+3]) / 255,
			}
			u := (float64(x) + 0.5) / float64(target.Width)
			out := Evaluate(u, v, src, p)
			target.Data[i+0] = uint8(clamp255(out.R * 255))
			target.Data[i+1] = uint8(clamp255(out.G * 255))
			target.Data[i+2] = uint8(clamp255(out.B * 255))
			target.Data[i+3] = uint8(clamp255(out.A * 255))
		}
	}
	return nil
}

// clearAccelerator removes any registered accelerator so other tests see
// the pure CPU path again.
func clearAccelerator() {
	accelMu.Lock()
	accel = nil
	accelMu.Unlock()
}

func TestRegisterAccelerator(t *testing.T) {
	defer clearAccelerator()

	fake := &fakeAccelerator{name: "fake"}
	if err := RegisterAccelerator(fake); err != nil {
		t.Fatal(err)
	}
	if got := ActiveAccelerator(); got != Accelerator(fake) {
		t.Fatalf("ActiveAccelerator = %v, want the fake", got)
	}
	if err := RegisterAccelerator(nil); err == nil {
		t.Error("RegisterAccelerator accepted nil")
	}
}

func TestApplyUsesAccelerator(t *testing.T) {
	defer clearAccelerator()

	fake := &fakeAccelerator{name: "fake"}
	if err := RegisterAccelerator(fake); err != nil {
		t.Fatal(err)
	}

	f, err := NewFilter(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src := testPattern(20, 20)
	dst := NewPixmap(20, 20)
	if err := f.Apply(src, dst); err != nil {
		t.Fatal(err)
	}
	if fake.called != 1 {
		t.Fatalf("accelerator called %d times, want 1", fake.called)
	}

	clearAccelerator()
	cpu := NewPixmap(20, 20)
	if err := f.Apply(src, cpu); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst.Data(), cpu.Data()) {
		t.Fatal("accelerated output differs from CPU output")
	}
}

func TestApplyFallsBackOnAcceleratorError(t *testing.T) {
	defer clearAccelerator()

	fake := &fakeAccelerator{name: "fake", fail: ErrFallbackToCPU}
	if err := RegisterAccelerator(fake); err != nil {
		t.Fatal(err)
	}

	f, err := NewFilter(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src := testPattern(16, 16)
	dst := NewPixmap(16, 16)
	if err := f.Apply(src, dst); err != nil {
		t.Fatal(err)
	}
	if fake.called != 1 {
		t.Fatalf("accelerator called %d times, want 1", fake.called)
	}

	clearAccelerator()
	cpu := NewPixmap(16, 16)
	if err := f.Apply(src, cpu); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst.Data(), cpu.Data()) {
		t.Fatal("fallback output differs from CPU output")
	}
}

func TestSetParamsConcurrentWithApply(t *testing.T) {
	f, err := NewFilter(DefaultParams(), WithBandHeight(4))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src := testPattern(48, 48)
	dst := NewPixmap(48, 48)

	done := make(chan struct{})
	go func() {
		defer close(done)
		p, _ := Preset("sepia")
		for i := 0; i < 200; i++ {
			if i%2 == 0 {
				_ = f.SetParams(p)
			} else {
				_ = f.SetParams(DefaultParams())
			}
			_ = f.Params()
		}
	}()

	for i := 0; i < 50; i++ {
		if err := f.Apply(src, dst); err != nil {
			t.Fatal(err)
		}
	}
	<-done
}

func TestApplyInPlaceFallsBackOnAcceleratorError(t *testing.T) {
	defer clearAccelerator()

	fake := &fakeAccelerator{name: "fake", fail: ErrFallbackToCPU}
	if err := RegisterAccelerator(fake); err != nil {
		t.Fatal(err)
	}

	f, err := NewFilter(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src := testPattern(16, 16)
	inPlace := src.Clone()
	if err := f.Apply(inPlace, inPlace); err != nil {
		t.Fatal(err)
	}
	if fake.called != 1 {
		t.Fatalf("accelerator called %d times, want 1", fake.called)
	}

	// The failing accelerator left the buffer untouched, so the CPU
	// fallback must produce exactly the pure CPU result.
	clearAccelerator()
	cpu := NewPixmap(16, 16)
	if err := f.Apply(src, cpu); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(inPlace.Data(), cpu.Data()) {
		t.Fatal("in-place fallback output differs from CPU output")
	}
}

func TestErrFallbackMessage(t *testing.T) {
	if !strings.Contains(ErrFallbackToCPU.Error(), "CPU") {
		t.Errorf("unexpected fallback error text: %v", ErrFallbackToCPU)
	}
}
