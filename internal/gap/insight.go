package gap

import "fmt"

func gapInsight(name, role string, critical bool, demand, impact float64) string {
	if critical {
		return fmt.Sprintf("%s is a critical skill for %s with %.0f%% market demand.", name, role, demand)
	}
	return fmt.Sprintf("Adding %s would strengthen your %s profile and could raise your market value by about ₹%.1fL.", name, role, impact)
}

func improveInsight(name, from, to string, gap int) string {
	return fmt.Sprintf("Moving %s from %s to %s closes a %d%% proficiency gap.", name, from, to, gap)
}

func matchInsight(name string, pct int) string {
	return fmt.Sprintf("You already have %s at %d%% proficiency. Maintain and deepen this expertise.", name, pct)
}

func bonusInsight(name, role string) string {
	return fmt.Sprintf("%s is not required for %s but is a valuable bonus skill.", name, role)
}
