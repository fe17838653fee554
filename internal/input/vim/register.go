package vim

// NumRegisters is the fixed number of register slots.
const NumRegisters = 10

// RegisterStore holds the numbered registers and tracks the active one.
// All yank, delete and paste operations go through the active register.
type RegisterStore struct {
	slots  [NumRegisters]string
	active int
}

// NewRegisterStore creates a store with every register empty and
// register 0 active.
func NewRegisterStore() *RegisterStore {
	return &RegisterStore{}
}

// ValidIndex returns true if index names a register.
func ValidIndex(index int) bool {
	return index >= 0 && index < NumRegisters
}

// Write stores text in register index. Invalid indexes are ignored.
func (rs *RegisterStore) Write(index int, text string) {
	if !ValidIndex(index) {
		return
	}
	rs.slots[index] = text
}

// Read returns the content of register index, or "" if it was never
// written or index is invalid.
func (rs *RegisterStore) Read(index int) string {
	if !ValidIndex(index) {
		return ""
	}
	return rs.slots[index]
}

// SetActive makes index the active register. Invalid indexes are ignored.
func (rs *RegisterStore) SetActive(index int) {
	if !ValidIndex(index) {
		return
	}
	rs.active = index
}

// Active returns the index of the active register.
func (rs *RegisterStore) Active() int {
	return rs.active
}

// WriteActive stores text in the active register.
func (rs *RegisterStore) WriteActive(text string) {
	rs.slots[rs.active] = text
}

// ReadActive returns the content of the active register.
func (rs *RegisterStore) ReadActive() string {
	return rs.slots[rs.active]
}

// All returns a copy of every register's content in index order.
func (rs *RegisterStore) All() []string {
	out := make([]string, NumRegisters)
	copy(out, rs.slots[:])
	return out
}
