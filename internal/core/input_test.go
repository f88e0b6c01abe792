package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionFire)

	if !f.Has(ActionFire) {
		t.Error("NewInputFrame should set the given actions")
	}
	if f.Has(ActionLeft) {
		t.Error("unset action should not be reported")
	}

	f.Set(ActionLeft)
	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Clear should remove every action")
	}
	if !clone.Has(ActionLeft) || !clone.Has(ActionFire) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestMultiInputFrame(t *testing.T) {
	m := NewMultiInputFrame()
	m.Set(Player1, ActionUp)
	m.Set(Player2, ActionDown)
	m.Set(Player2, ActionPause)

	if !m.Player1().Has(ActionUp) || m.Player1().Has(ActionDown) {
		t.Error("Player1 frame should only hold its own actions")
	}
	if !m.Player2().Has(ActionDown) {
		t.Error("Player2 frame should hold ActionDown")
	}

	combined := m.Combined()
	for _, a := range []Action{ActionUp, ActionDown, ActionPause} {
		if !combined.Has(a) {
			t.Errorf("Combined() missing %s", a)
		}
	}

	clone := m.Clone()
	m.Clear()
	if !m.Player1().Empty() || !m.Player2().Empty() {
		t.Error("Clear should empty every player frame")
	}
	if !clone.Player2().Has(ActionPause) {
		t.Error("Clone should survive Clear of the original")
	}

	var zero MultiInputFrame
	if !zero.Player(Player2).Empty() {
		t.Error("missing player should yield an empty frame")
	}
}

func TestActionAndPlayerStrings(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
	if Player2.String() != "Player 2" {
		t.Errorf("Player2.String() = %q", Player2.String())
	}
}

func TestEventLog(t *testing.T) {
	var log EventLog
	if log.Drain() != nil {
		t.Error("empty log should drain to nil")
	}

	log.Emit(EventShoot)
	log.Emit(EventEnemyHit)
	events := log.Drain()
	if len(events) != 2 || events[0] != EventShoot || events[1] != EventEnemyHit {
		t.Errorf("Drain() = %v", events)
	}
	if log.Drain() != nil {
		t.Error("Drain should empty the log")
	}
	if EventVictory.String() != "Victory" {
		t.Errorf("EventVictory.String() = %q", EventVictory.String())
	}
}
