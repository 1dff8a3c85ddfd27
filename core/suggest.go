package core

import (
	"strings"

	lev "github.com/agnivade/levenshtein"
	"github.com/mmmkit/decomp/schema"
)

// groupPatterns is checked in order; the first group with a matching
// substring wins.
var groupPatterns = []struct {
	group    string
	patterns []string
}{
	{schema.PriceGroup, []string{"price", "pricing"}},
	{schema.PromotionsGroup, []string{"promo", "promotion", "offer"}},
	{schema.MediaGroup, []string{"tv", "radio", "online", "media"}},
	{schema.CompetitionGroup, []string{"comp", "competitor"}},
	{schema.WeatherGroup, []string{"weather", "temperature", "rain"}},
	{schema.SeasonalityGroup, []string{"holiday", "season", "event"}},
}

// SuggestGroup classifies a variable into a default group by name.
// The intercept always belongs to the base group.
func SuggestGroup(variable string) string {
	lower := strings.ToLower(variable)
	if lower == schema.ConstVariable {
		return schema.BaseGroup
	}
	for _, gp := range groupPatterns {
		for _, p := range gp.patterns {
			if strings.Contains(lower, p) {
				return gp.group
			}
		}
	}
	return schema.OtherGroup
}

// SuggestGroups classifies every variable, keeping input order.
func SuggestGroups(variables []string) []schema.GroupAssignment {
	out := make([]schema.GroupAssignment, len(variables))
	for i, v := range variables {
		out[i] = schema.GroupAssignment{Variable: v, Group: SuggestGroup(v)}
	}
	return out
}

// ClosestName returns the candidate nearest to name by edit distance.
// Ties go to the earlier candidate. It returns "" when there are no candidates.
func ClosestName(name string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := lev.ComputeDistance(strings.ToLower(name), strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
