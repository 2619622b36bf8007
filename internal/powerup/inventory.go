package powerup

// DefaultSlots is the inventory capacity used when none is configured.
const DefaultSlots = 3

// Inventory is a fixed-capacity ordered list of power-ups owned by one player.
type Inventory struct {
	items []Kind
	slots int
}

func NewInventory(slots int) *Inventory {
	if slots <= 0 {
		slots = DefaultSlots
	}
	return &Inventory{items: make([]Kind, 0, slots), slots: slots}
}

// Add appends k. It returns false and leaves the inventory untouched when full.
func (inv *Inventory) Add(k Kind) bool {
	if inv.Full() {
		return false
	}
	inv.items = append(inv.items, k)
	return true
}

// Use removes and returns the item at index i. An out-of-range index reports
// false and leaves the inventory unchanged.
func (inv *Inventory) Use(i int) (Kind, bool) {
	if i < 0 || i >= len(inv.items) {
		return 0, false
	}
	k := inv.items[i]
	inv.items = append(inv.items[:i], inv.items[i+1:]...)
	return k, true
}

func (inv *Inventory) Len() int   { return len(inv.items) }
func (inv *Inventory) Slots() int { return inv.slots }
func (inv *Inventory) Full() bool  { return len(inv.items) >= inv.slots }

// Items returns a copy of the held power-ups in insertion order.
func (inv *Inventory) Items() []Kind {
	out := make([]Kind, len(inv.items))
	copy(out, inv.items)
	return out
}

// Active is a power-up currently applied to a player.
type Active struct {
	Kind      Kind
	PlayerID  int
	Remaining float64
}

// Activate starts k for playerID with the catalog duration.
func Activate(k Kind, playerID int) (Active, bool) {
	e, ok := Lookup(k)
	if !ok {
		return Active{}, false
	}
	return Active{Kind: k, PlayerID: playerID, Remaining: e.Duration}, true
}

// Tick consumes delta seconds and reports whether the power-up is still running.
func (a *Active) Tick(delta float64) bool {
	a.Remaining -= delta
	return a.Remaining > 0
}

func (a Active) Modifiers() Stats {
	e, _ := Lookup(a.Kind)
	return e.Modifiers
}
