package component

import (
	"testing"
	"time"
)

func TestOnceTimerStaysFinished(t *testing.T) {
	tm := NewTimer(time.Second, Once)
	tm.Tick(600 * time.Millisecond)
	if tm.Finished() {
		t.Fatal("timer finished early")
	}
	tm.Tick(600 * time.Millisecond)
	if !tm.Finished() || !tm.JustFinished() {
		t.Fatal("timer should have just finished")
	}
	tm.Tick(time.Second)
	if !tm.Finished() {
		t.Fatal("once timer should stay finished")
	}
	if tm.JustFinished() {
		t.Fatal("JustFinished should only hold for one tick")
	}
	if tm.Remaining() != 0 {
		t.Fatalf("expected no time remaining, got %v", tm.Remaining())
	}
	tm.Reset()
	if tm.Finished() || tm.Elapsed != 0 {
		t.Fatal("Reset should rewind the timer")
	}
}

func TestRepeatingTimerWraps(t *testing.T) {
	tm := NewTimer(time.Second, Repeating)
	tm.Tick(1500 * time.Millisecond)
	if !tm.JustFinished() {
		t.Fatal("repeating timer should fire when crossing its duration")
	}
	if tm.Elapsed != 500*time.Millisecond {
		t.Fatalf("expected 500ms carried over, got %v", tm.Elapsed)
	}
	tm.Tick(100 * time.Millisecond)
	if tm.Finished() {
		t.Fatal("repeating timer should not stay finished")
	}
}

func TestSetDurationKeepsElapsed(t *testing.T) {
	tm := NewTimer(2*time.Second, Once)
	tm.Tick(time.Second)
	tm.SetDuration(500 * time.Millisecond)
	if tm.Elapsed != time.Second {
		t.Fatal("SetDuration should not touch elapsed time")
	}
	tm.Tick(0)
	if !tm.Finished() {
		t.Fatal("timer past its new duration should finish on the next tick")
	}
}

func TestEnergySpend(t *testing.T) {
	e := Energy{Current: 5, Max: 10}
	if e.Spend(6) {
		t.Fatal("should not spend more than available")
	}
	if !e.Spend(5) || e.Current != 0 {
		t.Fatalf("expected spend to leave 0, got %v", e.Current)
	}
}
