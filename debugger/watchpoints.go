package debugger

import (
	"fmt"
	"sync"

	"github.com/lookbusy1344/rv32i-emu/vm"
)

// WatchType distinguishes what access triggers a watchpoint. The core has no
// trap mechanism, so all three types are checked the same way: by comparing
// the current value against the value recorded at the last check.
type WatchType int

const (
	WatchWrite WatchType = iota
	WatchRead
	WatchReadWrite
)

// Watchpoint tracks a register or memory location for value changes.
type Watchpoint struct {
	ID         int
	Type       WatchType
	Expression string
	Address    uint32
	IsRegister bool
	Register   int
	LastValue  uint32
	Enabled    bool
	HitCount   int
}

// WatchpointManager manages all watchpoints.
type WatchpointManager struct {
	mu          sync.RWMutex
	watchpoints map[int]*Watchpoint
	nextID      int
}

// NewWatchpointManager creates a new watchpoint manager.
func NewWatchpointManager() *WatchpointManager {
	return &WatchpointManager{
		watchpoints: make(map[int]*Watchpoint),
		nextID:      1,
	}
}

// AddWatchpoint registers a new watchpoint.
func (wm *WatchpointManager) AddWatchpoint(wtype WatchType, expr string, address uint32, isRegister bool, register int) *Watchpoint {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	wp := &Watchpoint{
		ID:         wm.nextID,
		Type:       wtype,
		Expression: expr,
		Address:    address,
		IsRegister: isRegister,
		Register:   register,
		Enabled:    true,
	}
	wm.watchpoints[wp.ID] = wp
	wm.nextID++
	return wp
}

// InitializeWatchpoint records the current value as the watchpoint's baseline.
func (wm *WatchpointManager) InitializeWatchpoint(id int, machine *vm.VM) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	wp, exists := wm.watchpoints[id]
	if !exists {
		return fmt.Errorf("watchpoint %d not found", id)
	}

	value, err := wm.readValue(wp, machine)
	if err != nil {
		return err
	}
	wp.LastValue = value
	return nil
}

// readValue reads the current value a watchpoint is tracking.
func (wm *WatchpointManager) readValue(wp *Watchpoint, machine *vm.VM) (uint32, error) {
	if wp.IsRegister {
		return machine.CPU.GetRegister(wp.Register), nil
	}
	return machine.Memory.ReadWord(wp.Address)
}

// DeleteWatchpoint removes a watchpoint by ID.
func (wm *WatchpointManager) DeleteWatchpoint(id int) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	if _, exists := wm.watchpoints[id]; !exists {
		return fmt.Errorf("watchpoint %d not found", id)
	}
	delete(wm.watchpoints, id)
	return nil
}

// GetAllWatchpoints returns all watchpoints.
func (wm *WatchpointManager) GetAllWatchpoints() []*Watchpoint {
	wm.mu.RLock()
	defer wm.mu.RUnlock()

	result := make([]*Watchpoint, 0, len(wm.watchpoints))
	for _, wp := range wm.watchpoints {
		result = append(result, wp)
	}
	return result
}

// CheckWatchpoints scans every enabled watchpoint for a value change since
// the last check, updating LastValue and HitCount as it goes.
func (wm *WatchpointManager) CheckWatchpoints(machine *vm.VM) (*Watchpoint, bool) {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	for _, wp := range wm.watchpoints {
		if !wp.Enabled {
			continue
		}
		value, err := wm.readValue(wp, machine)
		if err != nil {
			continue
		}
		if value != wp.LastValue {
			wp.LastValue = value
			wp.HitCount++
			return wp, true
		}
	}
	return nil, false
}
