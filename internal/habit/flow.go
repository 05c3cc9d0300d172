package habit

import "github.com/carson-networks/flow-server/internal/record"

// CompletionBonus is added when every habit has a non-zero rating.
const CompletionBonus = 5

// Tier is the qualitative label of a flow score.
type Tier string

const (
	TierExcellent Tier = "Excellent"
	TierGood      Tier = "Good"
	TierKeepGoing Tier = "Keep Going"
)

// FlowScore is the composite score of one day.
type FlowScore struct {
	Score    int
	Complete bool
	Tier     Tier
}

// Flow sums the day's ratings and adds the completion bonus when no habit is 0.
func Flow(habits record.Habits) FlowScore {
	score := 0
	complete := true
	for _, r := range habits {
		score += int(r)
		if r == 0 {
			complete = false
		}
	}
	if complete {
		score += CompletionBonus
	}
	return FlowScore{Score: score, Complete: complete, Tier: TierFor(score)}
}

// TierFor maps a score to its tier: above 10 is Excellent, 6 through 10 is Good.
func TierFor(score int) Tier {
	switch {
	case score > 10:
		return TierExcellent
	case score > 5:
		return TierGood
	default:
		return TierKeepGoing
	}
}
