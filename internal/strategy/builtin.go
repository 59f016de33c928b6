package strategy

import "time"

func init() {
	Register(DefaultOld())
	Register(DefaultNew())
}

// DefaultOld returns the wait strategy the scraper shipped with: a short
// initial wait, two quick scroll steps and a short network wait.
func DefaultOld() Strategy {
	return Strategy{
		Name:           "old",
		InitialWait:    1000 * time.Millisecond,
		ScrollSteps:    2,
		ScrollStepWait: 400 * time.Millisecond,
		NetworkWait:    800 * time.Millisecond,
	}
}

// DefaultNew returns the lengthened wait strategy: everything is slower so
// lazy-loaded content has a chance to render before extraction.
func DefaultNew() Strategy {
	return Strategy{
		Name:           "new",
		InitialWait:    2000 * time.Millisecond,
		ScrollSteps:    4,
		ScrollStepWait: 800 * time.Millisecond,
		NetworkWait:    2000 * time.Millisecond,
	}
}
