package ui

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderPlainSuccessSortsDetails(t *testing.T) {
	r := NewSuccessResult("Config decoded", map[string]string{
		"ssid":  "lab",
		"bssid": "aa:bb:cc:dd:ee:ff",
		"wpa":   "2",
	}).SetPlain(true).SetBody("SSID: lab\n")

	out := r.Render()

	if !strings.HasPrefix(out, SuccessMarker+" Config decoded\n") {
		t.Errorf("unexpected title line in %q", out)
	}
	bssid := strings.Index(out, "\nbssid:")
	ssid := strings.Index(out, "\nssid:")
	wpa := strings.Index(out, "\nwpa:")
	if bssid < 0 || ssid < 0 || wpa < 0 {
		t.Fatalf("missing detail keys in %q", out)
	}
	if !(bssid < ssid && ssid < wpa) {
		t.Errorf("details not in key order: %q", out)
	}
	if !strings.HasSuffix(out, "\nSSID: lab\n") {
		t.Errorf("body not appended: %q", out)
	}
}

func TestRenderPlainFailure(t *testing.T) {
	err := errors.New("error parsing wifi status\nsecond line")
	r := NewFailureResult("Status rejected", err, []string{"check the socket"}).
		SetPlain(true).
		SetReply("state=ENABLED\nphy=phy0\n")

	out := r.Render()

	tests := []string{
		FailureMarker + " FAILED: Status rejected",
		"Error: error parsing wifi status\n",
		"Reply:\n  state=ENABLED\n  phy=phy0\n",
		"Troubleshooting:\n  - check the socket\n",
	}
	for _, want := range tests {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "second line") {
		t.Errorf("only the first error line should be shown:\n%s", out)
	}
}

func TestRenderStyledContainsContent(t *testing.T) {
	r := NewFailureResult("Config rejected", errors.New("boom"), []string{"tip one"}).
		SetPlain(false).
		SetReply("wpa=abc")
	r.Width = 80

	out := r.Render()

	for _, want := range []string{"FAILED", "Config rejected", "boom", "wpa=abc", "tip one"} {
		if !strings.Contains(out, want) {
			t.Errorf("styled output missing %q", want)
		}
	}
}

func TestAddDetail(t *testing.T) {
	r := &Result{}
	r.AddDetail("state", "ENABLED").AddDetail("channel", "6")

	if len(r.Details) != 2 || r.Details["channel"] != "6" {
		t.Errorf("Details = %v", r.Details)
	}
}

func TestReplyExcerpt(t *testing.T) {
	tests := []struct {
		name      string
		lines     int
		wantTrail bool
	}{
		{"short reply kept whole", 3, false},
		{"exact limit kept whole", maxReplyLines, false},
		{"long reply truncated", maxReplyLines + 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			for i := 0; i < tt.lines; i++ {
				b.WriteString("k=v\n")
			}
			got := replyExcerpt(b.String())
			if strings.Contains(got, "more lines") != tt.wantTrail {
				t.Errorf("replyExcerpt trailer = %v, want %v:\n%s", !tt.wantTrail, tt.wantTrail, got)
			}
			if tt.wantTrail && !strings.HasSuffix(got, "(5 more lines)") {
				t.Errorf("unexpected trailer: %q", got)
			}
		})
	}
}
