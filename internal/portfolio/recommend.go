package portfolio

import "fmt"

// RiskLevel is a riskLevel slot value.
type RiskLevel string

const (
	RiskNone     RiskLevel = "None"
	RiskVeryLow  RiskLevel = "Very Low"
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskVeryHigh RiskLevel = "Very High"
)

// Allocation is a bonds/equities split in whole percent.
type Allocation struct {
	Bonds    int
	Equities int
}

func (a Allocation) String() string {
	return fmt.Sprintf("%d%% bonds (AGG), %d%% equities (SPY)", a.Bonds, a.Equities)
}

var allocations = map[RiskLevel]Allocation{
	RiskNone:     {Bonds: 100, Equities: 0},
	RiskVeryLow:  {Bonds: 80, Equities: 20},
	RiskLow:      {Bonds: 60, Equities: 40},
	RiskMedium:   {Bonds: 40, Equities: 60},
	RiskHigh:     {Bonds: 20, Equities: 80},
	RiskVeryHigh: {Bonds: 0, Equities: 100},
}

// RiskLevels lists the recognized labels from most to least conservative.
func RiskLevels() []RiskLevel {
	return []RiskLevel{RiskNone, RiskVeryLow, RiskLow, RiskMedium, RiskHigh, RiskVeryHigh}
}

// AllocationFor returns the allocation for level. Unrecognized labels,
// including the empty string, fall back to the None allocation.
func AllocationFor(level RiskLevel) Allocation {
	if a, ok := allocations[level]; ok {
		return a
	}
	return allocations[RiskNone]
}

// Recommend returns the allocation description for a riskLevel slot value.
func Recommend(level string) string {
	return AllocationFor(RiskLevel(level)).String()
}
