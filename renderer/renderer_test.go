package renderer

import (
	"strings"
	"testing"
)

func TestRenderDashboard(t *testing.T) {
	d := &Dashboard{
		Owner:    "TESTUSER",
		Currency: "MXN",
		Rows: []Row{
			{ID: 0, Type: "BTC", Fund: "liberty", Held: "365d", Entrance: "$2,500.00", Current: "$5,000.00"},
			{ID: 1, Type: "GOLD", Fund: "legacy", Held: "1200d", Entrance: "$400.00", Current: "$120.00"},
		},
	}
	out := RenderDashboard(d)

	for _, want := range []string{
		"TESTUSER's assets (MXN)",
		"| 0 | BTC | liberty | 365d | $2,500.00 | $5,000.00 |",
		"| 1 | GOLD | legacy | 1200d | $400.00 | $120.00 |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderDashboard() missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "could not be evaluated") {
		t.Error("RenderDashboard() should not mention skipped assets when there are none")
	}

	d.Skipped = 1
	if out := RenderDashboard(d); !strings.Contains(out, "1 asset(s) could not be evaluated") {
		t.Errorf("RenderDashboard() should mention the skipped asset in:\n%s", out)
	}
}
