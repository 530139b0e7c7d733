// Package names normalizes display names on insertion: trimming,
// case-insensitive duplicate disambiguation, and the bulk import formats
// for participants and tasks.
package names

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolve returns a name guaranteed not to collide case-insensitively
// with any name in existing. Collisions get the smallest free
// "name (N)" suffix with N >= 2. The second return is false when the
// trimmed name is empty.
func Resolve(name string, existing []string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", false
	}

	taken := make(map[string]bool, len(existing))
	for _, e := range existing {
		taken[strings.ToLower(strings.TrimSpace(e))] = true
	}

	if !taken[strings.ToLower(trimmed)] {
		return trimmed, true
	}

	for counter := 2; ; counter++ {
		candidate := fmt.Sprintf("%s (%d)", trimmed, counter)
		if !taken[strings.ToLower(candidate)] {
			return candidate, true
		}
	}
}

// ResolveBulk resolves an ordered batch of candidate names against a
// running existing-name set, so identical names in the same batch come
// out as "X", "X (2)", "X (3)". Empty candidates are dropped.
func ResolveBulk(candidates []string, existing []string) []string {
	running := make([]string, len(existing))
	copy(running, existing)

	resolved := make([]string, 0, len(candidates))
	for _, c := range candidates {
		name, ok := Resolve(c, running)
		if !ok {
			continue
		}
		resolved = append(resolved, name)
		running = append(running, name)
	}

	return resolved
}

// SplitNames parses a newline- or comma-delimited list of names,
// trimming each entry and discarding empties.
func SplitNames(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == ','
	})

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			names = append(names, trimmed)
		}
	}

	return names
}

// ClampRequired clamps a task's required participant count to [1, 10]
func ClampRequired(n int) int {
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}

// ParseTaskLine parses one bulk task-import line in the
// "name|description|requiredParticipants" pipe format. Description and
// required count are optional trailing segments; an unparsable count
// defaults to 1 and any count is clamped to [1, 10]. The last return is
// false when the name segment is empty.
func ParseTaskLine(line string) (name, description string, required int, ok bool) {
	segments := strings.Split(line, "|")

	name = strings.TrimSpace(segments[0])
	if name == "" {
		return "", "", 0, false
	}

	required = 1
	if len(segments) > 1 {
		description = strings.TrimSpace(segments[1])
	}
	if len(segments) > 2 {
		if n, err := strconv.Atoi(strings.TrimSpace(segments[2])); err == nil {
			required = n
		}
	}

	return name, description, ClampRequired(required), true
}
