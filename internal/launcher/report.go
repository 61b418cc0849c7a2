package launcher

import "time"

type Outcome string

const (
	Launched Outcome = "launched"
	Skipped  Outcome = "skipped"
	Failed   Outcome = "failed"
)

type ItemKind string

const (
	KindBrowser ItemKind = "browser"
	KindURL     ItemKind = "url"
	KindApp     ItemKind = "app"
)

// Item records what happened to one entry of a profile.
type Item struct {
	Kind     ItemKind
	Target   string
	Resolved string
	Outcome  Outcome
	Err      error
}

// Report lists per-item outcomes of a launch. Launch itself never fails; the
// report only exists so callers can tell the user what happened.
type Report struct {
	RunID    string
	Profile  string
	Started  time.Time
	Finished time.Time
	Items    []Item
}

func (r Report) Count(o Outcome) int {
	n := 0
	for _, item := range r.Items {
		if item.Outcome == o {
			n++
		}
	}
	return n
}

func (r Report) Failures() []Item {
	var failed []Item
	for _, item := range r.Items {
		if item.Outcome == Failed {
			failed = append(failed, item)
		}
	}
	return failed
}

func (r Report) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}
