package analyzer

// Rank cutoffs for the list-based bands. A password on a top list is guessed
// by rank order long before brute force matters, so rank always wins over
// entropy.
const (
	rankDays          = 100
	rankDaysToWeeks   = 1000
	rankWeeks         = 10000
	rankWeeksToMonths = 100000
)

// Entropy cutoffs for the brute-force bands, in bits.
const (
	bitsDaysToWeeks   = 30.0
	bitsWeeksToMonths = 45.0
	bitsMonthsToYears = 60.0
)

// TimeToCompromise maps an entropy estimate and an optional list rank to a
// coarse, illustrative band. The bands are fixed heuristics, not calibrated
// cracking times.
func TimeToCompromise(entropyBits float64, rank int, ranked bool) string {
	if ranked {
		switch {
		case rank <= rankDays:
			return "days"
		case rank <= rankDaysToWeeks:
			return "days to weeks"
		case rank <= rankWeeks:
			return "weeks"
		case rank <= rankWeeksToMonths:
			return "weeks to months"
		default:
			return "months (lower risk than top lists)"
		}
	}

	switch {
	case entropyBits < bitsDaysToWeeks:
		return "days to weeks"
	case entropyBits < bitsWeeksToMonths:
		return "weeks to months"
	case entropyBits < bitsMonthsToYears:
		return "months to years"
	default:
		return "many years (hard to brute-force)"
	}
}
