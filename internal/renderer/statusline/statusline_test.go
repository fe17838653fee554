package statusline

import (
	"regexp"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

var sgrPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

func visible(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}

func TestRenderWidth(t *testing.T) {
	s := New("7")
	s.SetFilename("main.go")
	s.SetTotalLines(10)
	for _, width := range []int{1, 5, 20, 40, 80} {
		got := visible(s.Render(width))
		if w := runewidth.StringWidth(got); w != width {
			t.Errorf("Render(%d) width = %d (%q)", width, w, got)
		}
	}
	if s.Render(0) != "" {
		t.Error("Render(0) should be empty")
	}
}

func TestRenderContent(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(*StatusLine)
		want   []string
		reject []string
	}{
		{
			name:  "file",
			setup: func(s *StatusLine) { s.SetFilename("a.txt"); s.SetModified(true) },
			want:  []string{" NORMAL ", "a.txt [+]", "Ln 1, Col 1"},
		},
		{
			name:  "no name",
			setup: func(s *StatusLine) {},
			want:  []string{"[No Name]"},
		},
		{
			name: "command",
			setup: func(s *StatusLine) {
				s.SetMode("COMMAND")
				s.SetCommandMode(true)
				s.SetCommandBuffer("reg show")
			},
			want:   []string{" COMMAND ", ":reg show"},
			reject: []string{"[No Name]"},
		},
		{
			name: "message",
			setup: func(s *StatusLine) {
				s.SetMode("ERROR")
				s.SetMessage("Unrecognized command zz", MessageError)
			},
			want: []string{" ERROR ", "Unrecognized command zz"},
		},
		{
			name:  "pending",
			setup: func(s *StatusLine) { s.SetPending("3d") },
			want:  []string{"3d  Ln"},
		},
		{
			name:  "position",
			setup: func(s *StatusLine) { s.SetPosition(4, 2); s.SetTotalLines(9) },
			want:  []string{"Ln 5, Col 3 | 50%"},
		},
		{
			name:  "bottom",
			setup: func(s *StatusLine) { s.SetPosition(8, 0); s.SetTotalLines(9) },
			want:  []string{"| Bot"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("")
			tt.setup(s)
			got := visible(s.Render(80))
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Render() = %q, missing %q", got, w)
				}
			}
			for _, r := range tt.reject {
				if strings.Contains(got, r) {
					t.Errorf("Render() = %q, should not contain %q", got, r)
				}
			}
		})
	}
}

func TestClear(t *testing.T) {
	s := New("")
	s.SetMessage("saved", MessageInfo)
	s.ClearMessage()
	s.SetCommandMode(true)
	s.SetCommandBuffer("w")
	s.SetCommandMode(false)
	got := visible(s.Render(80))
	if strings.Contains(got, "saved") || strings.Contains(got, ":w") {
		t.Errorf("Render() = %q after clearing", got)
	}
}

func TestModeStyle(t *testing.T) {
	s := New("")
	s.SetMode("INSERT")
	if !strings.HasPrefix(s.Render(40), "\x1b[1;42;30m INSERT ") {
		t.Errorf("Render() = %q", s.Render(40))
	}
	s.SetMode("OTHER")
	if !strings.HasPrefix(s.Render(40), "\x1b[1m OTHER ") {
		t.Errorf("Render() = %q", s.Render(40))
	}
}
