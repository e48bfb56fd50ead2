package classifier

import (
	"strings"

	"github.com/spec-kit/ticket-classifier/internal/domain"
)

// Keyword rule tables for the fallback path. Rules are evaluated in order and
// the first hit wins, so broader buckets must stay below narrower ones.
// Matching is plain substring containment, not word-boundary: "download"
// carries "down" and still maps to high priority.
type departmentRule struct {
	department domain.Department
	keywords   []string
}

type priorityRule struct {
	priority domain.Priority
	keywords []string
}

var departmentRules = []departmentRule{
	{domain.DepartmentAccount, []string{"login", "password", "2fa", "account", "signin", "reset"}},
	{domain.DepartmentNetwork, []string{"wifi", "network", "vpn", "latency", "internet", "dns"}},
	{domain.DepartmentHardware, []string{"laptop", "keyboard", "monitor", "printer", "disk", "hardware", "battery"}},
	{domain.DepartmentSoftware, []string{"install", "crash", "error", "bug", "update", "windows", "macos", "linux", "app"}},
}

var priorityRules = []priorityRule{
	{domain.PriorityHigh, []string{
		"can't work", "can’t work", "cannot work", "down", "outage",
		"urgent", "security", "data loss", "won't boot", "won’t boot",
	}},
	{domain.PriorityMedium, []string{"slow", "sometimes", "intermittent", "degraded"}},
}

// Fallback classifies ticket text with deterministic keyword rules. It is a
// pure function of its input and never fails. Department defaults to the
// catch-all queue and priority to low when no keyword matches.
func Fallback(text string) domain.Classification {
	t := strings.ToLower(text)

	department := domain.DepartmentOther
	for _, rule := range departmentRules {
		if containsAny(t, rule.keywords) {
			department = rule.department
			break
		}
	}

	priority := domain.PriorityLow
	for _, rule := range priorityRules {
		if containsAny(t, rule.keywords) {
			priority = rule.priority
			break
		}
	}

	return domain.Classification{
		Priority:         priority,
		Department:       department,
		EstimatedMinutes: domain.EstimateMinutes(department, priority),
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
