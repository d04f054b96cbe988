package models

import "strings"

// Departments lists the branch codes the portal recognizes
var Departments = []string{"CSE", "IT", "ECE", "EEE", "MECH", "CIVIL"}

// Rounds is the fixed interview-round vocabulary, in drive order.
// Selection does not require earlier rounds to be cleared; the order
// is presentational.
var Rounds = []string{"Round 1", "Round 2", "Round 3", "HR Round", "Final Round"}

// ValidRound reports whether name is part of the round vocabulary
func ValidRound(name string) bool {
	for _, r := range Rounds {
		if r == name {
			return true
		}
	}
	return false
}

// ValidDepartment reports whether code names a known branch, ignoring
// case and surrounding whitespace
func ValidDepartment(code string) bool {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for _, d := range Departments {
		if d == normalized {
			return true
		}
	}
	return false
}
