package heatshrink

import "testing"

func TestCanTakeByte(t *testing.T) {
	dst := make([]byte, 3)
	cases := []struct {
		written int
		want    bool
	}{
		{0, true},
		{1, true},
		{2, true},
		{3, false},
	}
	for _, tc := range cases {
		if got := canTakeByte(dst, tc.written); got != tc.want {
			t.Fatalf("canTakeByte(len=3, written=%d) = %v, want %v", tc.written, got, tc.want)
		}
	}
}

func TestSinkResult_String(t *testing.T) {
	if SinkOK.String() != "OK" {
		t.Fatalf("SinkOK.String() = %q", SinkOK.String())
	}
	if SinkFull.String() != "Full" {
		t.Fatalf("SinkFull.String() = %q", SinkFull.String())
	}
}

func TestPollResult_String(t *testing.T) {
	if PollEmpty.String() != "Empty" {
		t.Fatalf("PollEmpty.String() = %q", PollEmpty.String())
	}
	if PollMore.String() != "More" {
		t.Fatalf("PollMore.String() = %q", PollMore.String())
	}
}

func TestFinishResult_String(t *testing.T) {
	if FinishMore.String() != "More" {
		t.Fatalf("FinishMore.String() = %q", FinishMore.String())
	}
	if FinishDone.String() != "Done" {
		t.Fatalf("FinishDone.String() = %q", FinishDone.String())
	}
}
