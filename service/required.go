package service

import (
	"strings"

	"github.com/max-scw/dmc-service/identifier"
)

// RequiredGroups is a list of OR-groups of Data Identifiers: a message
// satisfies a group if at least one of its members is present. Parsed from
// the requiredDataIdentifiers config key (§6), where a group is written as
// a single DI ("P") or a pipe-separated alternation ("S|T"), adapted from
// original_source/utils/config.py's isrequireddi.
type RequiredGroups [][]identifier.DI

// ParseRequiredGroups parses the requiredDataIdentifiers config value into
// RequiredGroups.
func ParseRequiredGroups(specs []string) RequiredGroups {
	groups := make(RequiredGroups, 0, len(specs))
	for _, spec := range specs {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		parts := strings.Split(spec, "|")
		group := make([]identifier.DI, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			group = append(group, identifier.DI(p))
		}
		if len(group) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

// CheckRequired reports every group in groups that has no representative
// among the given DIs. An empty return means all required groups are
// satisfied.
func CheckRequired(present []identifier.DI, groups RequiredGroups) [][]identifier.DI {
	have := make(map[identifier.DI]bool, len(present))
	for _, di := range present {
		have[di] = true
	}

	var missing [][]identifier.DI
	for _, group := range groups {
		satisfied := false
		for _, di := range group {
			if have[di] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			missing = append(missing, group)
		}
	}
	return missing
}
