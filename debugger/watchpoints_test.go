package debugger

import (
	"testing"

	"github.com/lookbusy1344/rv32i-emu/vm"
)

func TestWatchpointDetectsRegisterChange(t *testing.T) {
	machine := vm.NewVM()
	wm := NewWatchpointManager()

	wp := wm.AddWatchpoint(WatchWrite, "t0", 0, true, 5)
	if err := wm.InitializeWatchpoint(wp.ID, machine); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}

	if hit, ok := wm.CheckWatchpoints(machine); ok {
		t.Fatalf("expected no hit before any change, got %+v", hit)
	}

	machine.CPU.SetRegister(5, 99)
	hit, ok := wm.CheckWatchpoints(machine)
	if !ok {
		t.Fatal("expected a hit after the register changed")
	}
	if hit.ID != wp.ID {
		t.Errorf("hit ID = %d, want %d", hit.ID, wp.ID)
	}
	if hit.HitCount != 1 {
		t.Errorf("HitCount = %d, want 1", hit.HitCount)
	}
	if hit.LastValue != 99 {
		t.Errorf("LastValue = %d, want 99", hit.LastValue)
	}
}

func TestWatchpointDetectsMemoryChange(t *testing.T) {
	machine := vm.NewVM()
	wm := NewWatchpointManager()

	wp := wm.AddWatchpoint(WatchReadWrite, "*0x100", 0x100, false, 0)
	if err := wm.InitializeWatchpoint(wp.ID, machine); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}

	if err := machine.Memory.WriteWord(0x100, 0xABCD); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	hit, ok := wm.CheckWatchpoints(machine)
	if !ok || hit.ID != wp.ID {
		t.Fatalf("expected a hit on watchpoint %d, got %+v, %v", wp.ID, hit, ok)
	}
}

func TestWatchpointDisabledIsSkipped(t *testing.T) {
	machine := vm.NewVM()
	wm := NewWatchpointManager()

	wp := wm.AddWatchpoint(WatchWrite, "t0", 0, true, 5)
	if err := wm.InitializeWatchpoint(wp.ID, machine); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}

	all := wm.GetAllWatchpoints()
	if len(all) != 1 {
		t.Fatalf("expected 1 watchpoint, got %d", len(all))
	}
	all[0].Enabled = false

	machine.CPU.SetRegister(5, 123)
	if _, ok := wm.CheckWatchpoints(machine); ok {
		t.Error("expected a disabled watchpoint to be skipped")
	}
}

func TestDeleteWatchpoint(t *testing.T) {
	wm := NewWatchpointManager()
	wp := wm.AddWatchpoint(WatchWrite, "t0", 0, true, 5)

	if err := wm.DeleteWatchpoint(wp.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := wm.DeleteWatchpoint(wp.ID); err == nil {
		t.Error("expected an error deleting an already-removed watchpoint")
	}
}
