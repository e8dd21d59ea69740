package runner

import "testing"

func TestControlPauseResume(t *testing.T) {
	ctl := NewControl()
	if ctl.Paused() || ctl.Stopped() {
		t.Fatal("new control should be neither paused nor stopped")
	}

	ctl.Pause()
	if !ctl.Paused() {
		t.Error("expected paused after Pause")
	}

	ctl.Resume()
	if ctl.Paused() {
		t.Error("expected not paused after Resume")
	}
}

func TestControlStopClearsPause(t *testing.T) {
	ctl := NewControl()
	ctl.Pause()
	ctl.Stop()

	if !ctl.Stopped() {
		t.Error("expected stopped after Stop")
	}
	if ctl.Paused() {
		t.Error("Stop should clear the paused flag")
	}
}

func TestControlPauseAfterStopIgnored(t *testing.T) {
	ctl := NewControl()
	ctl.Stop()
	ctl.Pause()

	if ctl.Paused() {
		t.Error("Pause after Stop should be a no-op")
	}
	if !ctl.Stopped() {
		t.Error("stop flag must stay set")
	}
}

func TestControlStopIsMonotonic(t *testing.T) {
	ctl := NewControl()
	ctl.Stop()
	ctl.Resume()
	if !ctl.Stopped() {
		t.Error("Resume must not clear the stop flag")
	}
}
