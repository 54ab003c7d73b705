package service

const (
	MaxPropertyValue       = 1_000_000_000.0 // sanity cap on price/value inputs
	MaxInterestRate        = 1000.0          // annual percent
	MaxTermYears           = 50
	MaxLiensPerScenario    = 5
	MaxScenariosPerRequest = 25
	MaxScheduleRows        = 1200 // largest schedule a request may ask back
	MaxOutlookYears        = 50

	// LienShareEpsilon absorbs floating input on the combined
	// percent-of-value check.
	LienShareEpsilon = 0.0001
)

// DefaultOutlookYears are the projection horizons used when a request
// names none.
var DefaultOutlookYears = []int{1, 5}
