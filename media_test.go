package playwait

import (
	"strings"
	"testing"
)

func TestTimeRanges_StringEmpty(t *testing.T) {
	var r TimeRanges
	if s := r.String(); s != "[]" {
		t.Errorf("expected [], got %s", s)
	}
}

func TestTimeRanges_String(t *testing.T) {
	r := TimeRanges{{Start: 0, End: 4.5}, {Start: 10, End: 12.3}}
	if s := r.String(); s != "[0.0-4.5, 10.0-12.3]" {
		t.Errorf("expected [0.0-4.5, 10.0-12.3], got %s", s)
	}
}

func TestTimeRanges_Total(t *testing.T) {
	r := TimeRanges{{Start: 0, End: 4.5}, {Start: 10, End: 12.5}}
	if total := r.Total(); total != 7.0 {
		t.Errorf("expected total 7.0, got %v", total)
	}
}

func TestReadyState_String(t *testing.T) {
	cases := map[ReadyState]string{
		ReadyNothing:     "nothing",
		ReadyMetadata:    "metadata",
		ReadyCurrentData: "current-data",
		ReadyFutureData:  "future-data",
		ReadyEnoughData:  "enough-data",
		ReadyState(99):   "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("ReadyState(%d): expected %s, got %s", state, want, got)
		}
	}
}

func TestDescribeMedia(t *testing.T) {
	media := newFakeMedia(2.5, 10.0)
	media.paused = true
	media.buffered = TimeRanges{{Start: 0, End: 4.5}}

	desc := describeMedia(media)
	for _, want := range []string{
		"currentTime=2.500",
		"duration=10.000",
		"ended=false",
		"paused=true",
		"readyState=enough-data",
		"rate=1",
		"buffered=[0.0-4.5]",
	} {
		if !strings.Contains(desc, want) {
			t.Errorf("expected %q in %q", want, desc)
		}
	}
}
