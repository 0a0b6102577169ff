package utils

import "testing"

func TestPointerTrackerMouse(t *testing.T) {
	var tr PointerTracker

	steps := []struct {
		raw          RawPointer
		wantPressed  bool
		wantReleased bool
	}{
		{RawPointer{X: 10, Y: 10}, false, false},
		{RawPointer{X: 12, Y: 10, Down: true}, true, false},
		{RawPointer{X: 14, Y: 10, Down: true}, true, false},
		{RawPointer{X: 14, Y: 10}, false, true},
		{RawPointer{X: 14, Y: 10}, false, false},
	}

	for i, step := range steps {
		s := tr.Update(step.raw)
		if s.Pressed != step.wantPressed || s.JustReleased != step.wantReleased {
			t.Errorf("step %d: pressed=%v released=%v, want %v %v",
				i, s.Pressed, s.JustReleased, step.wantPressed, step.wantReleased)
		}
		if s.X != float64(step.raw.X) || s.Y != float64(step.raw.Y) {
			t.Errorf("step %d: mouse position (%v,%v) should pass through", i, s.X, s.Y)
		}
	}
}

func TestPointerTrackerTouchReleaseUsesLastPosition(t *testing.T) {
	var tr PointerTracker

	tr.Update(RawPointer{X: 100, Y: 200, Down: true, IsTouching: true})
	tr.Update(RawPointer{X: 110, Y: 205, Down: true, IsTouching: true})

	// 抬起后鼠标坐标无意义（移动端为 0,0）
	s := tr.Update(RawPointer{})
	if !s.JustReleased {
		t.Fatal("touch lift should be reported as a release")
	}
	if s.X != 110 || s.Y != 205 {
		t.Errorf("release position = (%v,%v), want last touch (110,205)", s.X, s.Y)
	}

	s = tr.Update(RawPointer{})
	if s.JustReleased {
		t.Error("release should only be reported once")
	}
}
