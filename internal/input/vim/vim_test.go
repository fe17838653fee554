package vim

import "testing"

func TestRegisterStore(t *testing.T) {
	rs := NewRegisterStore()
	if rs.Active() != 0 {
		t.Fatalf("Active() = %d, want 0", rs.Active())
	}

	rs.WriteActive("zero")
	rs.SetActive(7)
	rs.WriteActive("seven")

	if got := rs.Read(0); got != "zero" {
		t.Errorf("Read(0) = %q, want %q", got, "zero")
	}
	if got := rs.ReadActive(); got != "seven" {
		t.Errorf("ReadActive() = %q, want %q", got, "seven")
	}

	rs.SetActive(10)
	rs.SetActive(-1)
	if rs.Active() != 7 {
		t.Errorf("invalid SetActive changed active to %d", rs.Active())
	}

	rs.Write(42, "ignored")
	if got := rs.Read(42); got != "" {
		t.Errorf("Read(42) = %q, want empty", got)
	}

	all := rs.All()
	if len(all) != NumRegisters {
		t.Fatalf("len(All()) = %d, want %d", len(all), NumRegisters)
	}
	all[0] = "mutated"
	if rs.Read(0) != "zero" {
		t.Error("All() should return a copy")
	}
}

func TestPendingCount(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		max    int
		want   int
	}{
		{"no digits", "", 100, 1},
		{"single", "3", 100, 3},
		{"multi", "42", 100, 42},
		{"zero", "0", 100, 0},
		{"leading zero", "05", 100, 5},
		{"saturates", "999", 100, 100},
		{"huge saturates", "99999999999999999999999", 100, 100},
		{"default cap", "123456", 0, DefaultMaxCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Pending
			for i := 0; i < len(tt.digits); i++ {
				if !p.AddDigit(tt.digits[i]) {
					t.Fatalf("AddDigit(%q) returned false", tt.digits[i])
				}
			}
			if got := p.Count(tt.max); got != tt.want {
				t.Errorf("Count(%d) = %d, want %d", tt.max, got, tt.want)
			}
		})
	}
}

func TestPendingOperator(t *testing.T) {
	var p Pending
	if !p.Empty() {
		t.Fatal("zero Pending should be empty")
	}
	p.AddDigit('3')
	if !p.SetOperator('d') {
		t.Fatal("SetOperator should succeed once")
	}
	if p.SetOperator('d') {
		t.Error("second SetOperator should fail")
	}
	if p.AddDigit('4') {
		t.Error("digits after the operator should be rejected")
	}
	if p.AddDigit('x') {
		t.Error("non-digit should be rejected")
	}
	if got := p.String(); got != "3d" {
		t.Errorf("String() = %q, want %q", got, "3d")
	}
	if !p.HasOperator() || p.Operator() != 'd' {
		t.Errorf("Operator() = %q", p.Operator())
	}

	p.Reset()
	if !p.Empty() || p.String() != "" {
		t.Errorf("after Reset: Empty=%v String=%q", p.Empty(), p.String())
	}
}

func TestWordMotions(t *testing.T) {
	tests := []struct {
		name   string
		motion func(string, int) int
		line   string
		col    int
		want   int
	}{
		{"w to next word", NextWordStart, "one two", 0, 4},
		{"w from inside word", NextWordStart, "one two", 1, 4},
		{"w stops on second space", NextWordStart, "ab  cd", 0, 3},
		{"w at last byte", NextWordStart, "abc", 2, 2},
		{"w on empty line", NextWordStart, "", 0, 0},
		{"e to end of word", WordEnd, "one two", 0, 2},
		{"e to end of next word", WordEnd, "one two", 2, 6},
		{"e at last byte", WordEnd, "abc", 2, 2},
		{"e on empty line", WordEnd, "", 0, 0},
		{"b to word start", PrevWordStart, "one two", 6, 4},
		{"b to previous word", PrevWordStart, "one two", 4, 0},
		{"b at column 0", PrevWordStart, "one", 0, 0},
		{"b on empty line", PrevWordStart, "", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.motion(tt.line, tt.col); got != tt.want {
				t.Errorf("motion(%q, %d) = %d, want %d", tt.line, tt.col, got, tt.want)
			}
		})
	}
}

func TestDeleteSpan(t *testing.T) {
	tests := []struct {
		name    string
		motion  byte
		line    string
		col     int
		want    Span
		wantOK  bool
		removed string
	}{
		{"dh", 'h', "abc", 2, Span{1, 2}, true, "b"},
		{"dh at column 0", 'h', "abc", 0, Span{}, false, ""},
		{"dl", 'l', "abc", 1, Span{1, 2}, true, "b"},
		{"dl on empty line", 'l', "", 0, Span{0, 0}, true, ""},
		{"dw", 'w', "one two", 0, Span{0, 4}, true, "one "},
		{"dw last word", 'w', "one two", 4, Span{4, 7}, true, "two"},
		{"dw on empty line", 'w', "", 0, Span{0, 0}, true, ""},
		{"de", 'e', "one two", 0, Span{0, 3}, true, "one"},
		{"de from space", 'e', "one two", 3, Span{3, 7}, true, " two"},
		{"db", 'b', "one two", 4, Span{0, 4}, true, "one "},
		{"db mid word", 'b', "one two", 6, Span{4, 6}, true, "tw"},
		{"db at column 0", 'b', "one", 0, Span{}, false, ""},
		{"d with line motion", 'j', "abc", 0, Span{}, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DeleteSpan(tt.motion, tt.line, tt.col)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("DeleteSpan(%q, %q, %d) = %v, %v; want %v, %v",
					tt.motion, tt.line, tt.col, got, ok, tt.want, tt.wantOK)
			}
			if ok && tt.line[got.Start:got.End] != tt.removed {
				t.Errorf("removed %q, want %q", tt.line[got.Start:got.End], tt.removed)
			}
		})
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text     string
		kind     CommandKind
		register int
		ops      string
	}{
		{"reg show", CommandRegShow, -1, ""},
		{"reg select 3", CommandRegSelect, 3, ""},
		{"reg select 00", CommandRegSelect, 0, ""},
		{"reg select 12", CommandRegSelect, 12, ""},
		{"reg select 99999999999999999999999", CommandRegSelect, -1, ""},
		{"reg select ", CommandUnknown, -1, ""},
		{"reg select x", CommandUnknown, -1, ""},
		{"reg show ", CommandUnknown, -1, ""},
		{"w", CommandWriteQuit, -1, "w"},
		{"wq", CommandWriteQuit, -1, "wq"},
		{"qw", CommandWriteQuit, -1, "qw"},
		{"wqw", CommandWriteQuit, -1, "wqw"},
		{"", CommandUnknown, -1, ""},
		{"wx", CommandUnknown, -1, ""},
		{"set nu", CommandUnknown, -1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			cmd := ParseCommand(tt.text)
			if cmd.Kind != tt.kind {
				t.Fatalf("Kind = %v, want %v", cmd.Kind, tt.kind)
			}
			if cmd.Register != tt.register {
				t.Errorf("Register = %d, want %d", cmd.Register, tt.register)
			}
			if cmd.Ops != tt.ops {
				t.Errorf("Ops = %q, want %q", cmd.Ops, tt.ops)
			}
			if cmd.Text != tt.text {
				t.Errorf("Text = %q, want %q", cmd.Text, tt.text)
			}
		})
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"a\nb", `a\nb`},
		{"\x1b[0m", `\33[0m`},
		{"\t", `\x09`},
		{"\x7f", `\x7f`},
		{"\xc3\xa9", `\xc3\xa9`},
		{"~", "~"},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
