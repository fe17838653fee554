package vim

// DefaultMaxCount caps repeat counts so a mistyped count stays bounded.
const DefaultMaxCount = 10000

// Pending accumulates a normal-mode command that is not yet resolved:
// an optional run of digits followed by at most one operator key.
type Pending struct {
	digits   string
	operator byte
}

// Empty returns true if nothing is pending.
func (p *Pending) Empty() bool {
	return p.digits == "" && p.operator == 0
}

// HasOperator returns true if an operator key has been typed.
func (p *Pending) HasOperator() bool {
	return p.operator != 0
}

// Operator returns the pending operator key, or 0.
func (p *Pending) Operator() byte {
	return p.operator
}

// AddDigit appends a count digit. Returns false if b is not a digit or an
// operator has already been typed.
func (p *Pending) AddDigit(b byte) bool {
	if !IsCountDigit(b) || p.operator != 0 {
		return false
	}
	p.digits += string(b)
	return true
}

// SetOperator records the operator key. Returns false if one is already set.
func (p *Pending) SetOperator(b byte) bool {
	if p.operator != 0 {
		return false
	}
	p.operator = b
	return true
}

// Count returns the repeat count, 1 if no digits were typed.
// The value saturates at max.
func (p *Pending) Count(max int) int {
	if p.digits == "" {
		return 1
	}
	if max <= 0 {
		max = DefaultMaxCount
	}
	n := 0
	for i := 0; i < len(p.digits); i++ {
		n = n*10 + int(p.digits[i]-'0')
		if n >= max {
			return max
		}
	}
	return n
}

// String returns the pending keys as typed.
func (p *Pending) String() string {
	if p.operator == 0 {
		return p.digits
	}
	return p.digits + string(p.operator)
}

// Reset clears the pending command.
func (p *Pending) Reset() {
	p.digits = ""
	p.operator = 0
}

// IsCountDigit returns true if the byte is a digit valid in a count.
func IsCountDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsOperator returns true if the byte is an operator key.
func IsOperator(b byte) bool {
	return b == 'd'
}
