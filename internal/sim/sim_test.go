package sim

import (
	"errors"
	"testing"
	"time"

	"bomberman-classic/pkg/ai"
	"bomberman-classic/pkg/core"
)

func testOptions() Options {
	return Options{
		Seed:     5,
		Rounds:   3,
		TPS:      30,
		MaxRound: 20 * time.Second,
		Bot:      ai.ConfigReckless,
	}
}

func TestRunReportsEveryRound(t *testing.T) {
	report, err := Run(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Rounds) != 3 {
		t.Fatalf("rounds = %d, want 3", len(report.Rounds))
	}
	if report.Victories+report.Defeats+report.Timeouts != 3 {
		t.Errorf("tallies do not add up: %+v", report)
	}

	seen := make(map[string]bool)
	for _, r := range report.Rounds {
		if r.Round == "" || seen[r.Round] {
			t.Errorf("round id %q missing or reused", r.Round)
		}
		seen[r.Round] = true
		if r.Duration <= 0 || r.Duration > 20*time.Second {
			t.Errorf("round duration %s out of range", r.Duration)
		}
		switch r.Outcome {
		case core.StateVictory, core.StateGameOver, core.StateInGame:
		default:
			t.Errorf("unexpected outcome %s", r.Outcome)
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	a, err := Run(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Rounds {
		ra, rb := a.Rounds[i], b.Rounds[i]
		if ra.Outcome != rb.Outcome || ra.Duration != rb.Duration || ra.Bombs != rb.Bombs || ra.Kills != rb.Kills {
			t.Errorf("round %d differs: %+v vs %+v", i, ra, rb)
		}
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	opts := testOptions()
	opts.Rounds = 0
	if _, err := Run(opts); !errors.Is(err, ErrNoRounds) {
		t.Errorf("err = %v, want ErrNoRounds", err)
	}

	opts = testOptions()
	opts.TPS = 0
	if _, err := Run(opts); err == nil {
		t.Error("zero tps accepted")
	}
}

func TestTimeoutStopsWithinLimit(t *testing.T) {
	opts := testOptions()
	opts.Rounds = 2
	opts.MaxRound = 100 * time.Millisecond

	report, err := Run(opts)
	if err != nil {
		t.Fatal(err)
	}
	if report.Timeouts != 2 {
		t.Fatalf("timeouts = %d, want 2: %+v", report.Timeouts, report)
	}
	dt := time.Second / 30
	for _, r := range report.Rounds {
		if r.Outcome != core.StateInGame {
			t.Errorf("outcome = %s, want in_game", r.Outcome)
		}
		if r.Duration != 3*dt {
			t.Errorf("duration = %s, want %s", r.Duration, 3*dt)
		}
	}
	if report.Rounds[0].Round == report.Rounds[1].Round {
		t.Error("second round did not start after timeout")
	}
}
