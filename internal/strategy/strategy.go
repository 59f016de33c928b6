package strategy

import "time"

// Strategy is a named, fixed set of sleep durations a scraper uses while
// waiting for a page to render: an initial wait after navigation, a number of
// scroll steps with a per-step wait, and a final network-settle wait.
type Strategy struct {
	Name           string
	InitialWait    time.Duration
	ScrollSteps    int
	ScrollStepWait time.Duration
	NetworkWait    time.Duration
}

// ScrollWait returns the combined wait spent scrolling.
func (s Strategy) ScrollWait() time.Duration {
	return time.Duration(s.ScrollSteps) * s.ScrollStepWait
}

// Total returns the combined wait for the whole strategy.
func (s Strategy) Total() time.Duration {
	return s.InitialWait + s.ScrollWait() + s.NetworkWait
}
