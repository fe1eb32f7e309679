package normalize

import (
	"testing"
)

func TestLink_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"identity", "https://youtu.be/dQw4w9WgXcQ", "https://youtu.be/dQw4w9WgXcQ"},
		{"empty", "", ""},
		{"keeps case", "https://www.bilibili.com/video/BV1xX411c7Xx", "https://www.bilibili.com/video/BV1xX411c7Xx"},
		{"trims", "  https://b23.tv/av1 \n", "https://b23.tv/av1"},
		{"zero width space", "https://you\u200btu.be/dQw4w9WgXcQ", "https://youtu.be/dQw4w9WgXcQ"},
		{"bom prefix", "\ufeffhttps://youtu.be/x", "https://youtu.be/x"},
		{"fullwidth scheme", "ｈｔｔｐｓ：／／ｙｏｕｔｕ．ｂｅ/x", "https://youtu.be/x"},
		{"ideographic space", "\u3000https://b23.tv/av1\u3000", "https://b23.tv/av1"},
		{"embedded newline", "https://www.bilibili.com/vi\ndeo/BV1", "https://www.bilibili.com/video/BV1"},
		{"invalid utf8", string([]byte{0xff, '/', 't', 'm', 'p', 0x80}), "/tmp"},
		{"c1 control", "/tmp/a\u0085.mp4", "/tmp/a.mp4"},
		{"path with spaces", "/home/me/My Videos/a.mp4", "/home/me/My Videos/a.mp4"},
		{"cjk path kept", "/视频/笔记.mp4", "/视频/笔记.mp4"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Link(tc.in); got != tc.out {
				t.Fatalf("Link(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestSanitize_FastPathReturnsInput(t *testing.T) {
	s := "https://youtu.be/x"
	if got := Sanitize(s); got != s {
		t.Fatalf("Sanitize changed clean input: %q", got)
	}
	if got := Sanitize("a\tb\x7fc"); got != "abc" {
		t.Fatalf("Sanitize = %q", got)
	}
}

func TestChanged(t *testing.T) {
	if Changed("https://youtu.be/x") {
		t.Fatal("clean link reported as changed")
	}
	if !Changed(" https://youtu.be/x") {
		t.Fatal("padded link not reported as changed")
	}
}

func TestLink_Concurrent(t *testing.T) {
	done := make(chan struct{})
	for range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 200 {
				if Link("ｈｔｔｐｓ://b23.tv/av1") != "https://b23.tv/av1" {
					t.Error("concurrent Link mismatch")
					return
				}
			}
		}()
	}
	for range 8 {
		<-done
	}
}
