package reconcile

import "sort"

// PlanSummary provides aggregate statistics for an action list.
type PlanSummary struct {
	// Total is the number of actions.
	Total int `json:"total"`

	// ByAction counts actions per action name.
	ByAction map[string]int `json:"by_action"`

	// Actions lists the distinct action names in first-seen order.
	Actions []string `json:"actions"`
}

// Summarize counts the actions of a plan.
func Summarize(actions []UpdateAction) PlanSummary {
	summary := PlanSummary{
		Total:    len(actions),
		ByAction: make(map[string]int),
		Actions:  []string{},
	}
	for _, a := range actions {
		name := a.Name()
		if _, seen := summary.ByAction[name]; !seen {
			summary.Actions = append(summary.Actions, name)
		}
		summary.ByAction[name]++
	}
	return summary
}

// SortedNames returns the distinct action names alphabetically.
func (s PlanSummary) SortedNames() []string {
	names := make([]string, 0, len(s.ByAction))
	for name := range s.ByAction {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
