// ABOUTME: Achievement tiers: score-to-rank classification and progress to next tier.
// ABOUTME: Eight ordered half-open bands; 10000+ is the terminal tier.
package stats

import "math"

// Tier is a named score band [Lower, Upper). The terminal tier's Upper is
// unbounded.
type Tier struct {
	Name  string
	Lower int
	Upper int
}

// Tiers is the ordered rank table. Bands are half-open on the upper side:
// a score of exactly 500 is Silver Strider, not Bronze Beginner.
var Tiers = []Tier{
	{Name: "Bronze Beginner", Lower: 0, Upper: 500},
	{Name: "Silver Strider", Lower: 500, Upper: 1000},
	{Name: "Golden Grinder", Lower: 1000, Upper: 2000},
	{Name: "Platinum Pro", Lower: 2000, Upper: 3500},
	{Name: "Diamond Elite", Lower: 3500, Upper: 5000},
	{Name: "Athlete", Lower: 5000, Upper: 7500},
	{Name: "Olympian", Lower: 7500, Upper: 10000},
	{Name: "#1 ReHealth User", Lower: 10000, Upper: math.MaxInt},
}

// Rank returns the name of the tier containing score.
func Rank(score int) string {
	for _, t := range Tiers {
		if score < t.Upper {
			return t.Name
		}
	}
	return Tiers[len(Tiers)-1].Name
}

// Progress returns the next tier's name and the percentage of the current
// tier already covered. Inside a tier the percentage is 0.0 at the lower
// bound and approaches (never reaches) 100 at the upper bound. At the
// terminal tier there is no next rank: ("", 100.0).
func Progress(score int) (next string, percent float64) {
	last := len(Tiers) - 1
	if score >= Tiers[last].Lower {
		return "", 100.0
	}
	for i, t := range Tiers[:last] {
		if score < t.Upper {
			span := float64(t.Upper - t.Lower)
			pct := float64(score-t.Lower) / span * 100
			if pct < 0 {
				pct = 0
			}
			return Tiers[i+1].Name, pct
		}
	}
	return "", 100.0
}
