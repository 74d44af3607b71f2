// Package datefmt discovers and applies the compact date-pattern notation
// used by ANSI MH10.8.2 Data Identifier explanations, e.g. a DI whose
// explanation reads "Ship Date (YYYYMMDDhhmm)" carries the pattern
// "YYYYMMDDhhmm" describing how its twelve-character content is laid out.
//
// Patterns are built from the token alphabet {Y,M,D,h,m,s,f,p,W,T}; runs of
// the same letter form one field (YYYY is a 4-digit year, hh a 2-digit
// 24-hour hour, and so on). Because a pattern's fields are concatenated
// with no separators, both parsing and formatting work by slicing the
// value into fixed-width runs rather than by building a reference-time
// layout string.
package datefmt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// patternRe finds a candidate date pattern inside a DI explanation: a run
// of 4 to 23 characters from the token alphabet, preceded by '(', '[', or
// whitespace and followed by ')', ']', '.', or whitespace.
var patternRe = regexp.MustCompile(`[(\[\s]([YMDhmsfpWT]{4,23})[)\]\s.]`)

// ErrNoPattern indicates the explanation carries no recognizable date pattern.
var ErrNoPattern = fmt.Errorf("no date pattern found in explanation")

// Discover scans a DI explanation string for a bracketed/parenthesized date
// pattern and returns it. ok is false if none was found.
func Discover(explanation string) (pattern string, ok bool) {
	padded := " " + explanation + " "
	m := patternRe.FindStringSubmatch(padded)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// run is one maximal repetition of a single token letter within a pattern.
type run struct {
	token byte
	width int
}

// splitRuns groups a pattern into its maximal same-letter runs.
func splitRuns(pattern string) []run {
	var runs []run
	for i := 0; i < len(pattern); {
		j := i + 1
		for j < len(pattern) && pattern[j] == pattern[i] {
			j++
		}
		runs = append(runs, run{token: pattern[i], width: j - i})
		i = j
	}
	return runs
}

// Parse interprets value according to pattern, slicing it into the
// fixed-width runs the pattern describes. Returns an error if value is
// shorter than the pattern demands or a numeric run does not parse.
func Parse(pattern, value string) (time.Time, error) {
	runs := splitRuns(pattern)

	year, month, day := 1, time.January, 1
	hour, minute, second, nsec := 0, 0, 0, 0

	pos := 0
	for _, r := range runs {
		if pos+r.width > len(value) {
			return time.Time{}, fmt.Errorf("value %q is too short for pattern %q", value, pattern)
		}
		chunk := value[pos : pos+r.width]
		pos += r.width

		switch r.token {
		case 'Y':
			n, err := strconv.Atoi(chunk)
			if err != nil {
				return time.Time{}, fmt.Errorf("bad year %q: %w", chunk, err)
			}
			if r.width <= 2 {
				if n < 69 {
					n += 2000
				} else {
					n += 1900
				}
			}
			year = n
		case 'M':
			if r.width >= 3 {
				mo, err := monthFromAbbrev(chunk)
				if err != nil {
					return time.Time{}, err
				}
				month = mo
			} else {
				n, err := strconv.Atoi(chunk)
				if err != nil {
					return time.Time{}, fmt.Errorf("bad month %q: %w", chunk, err)
				}
				month = time.Month(n)
			}
		case 'D':
			n, err := strconv.Atoi(chunk)
			if err != nil {
				return time.Time{}, fmt.Errorf("bad day %q: %w", chunk, err)
			}
			day = n
		case 'h':
			n, err := strconv.Atoi(chunk)
			if err != nil {
				return time.Time{}, fmt.Errorf("bad hour %q: %w", chunk, err)
			}
			hour = n
		case 'm':
			n, err := strconv.Atoi(chunk)
			if err != nil {
				return time.Time{}, fmt.Errorf("bad minute %q: %w", chunk, err)
			}
			minute = n
		case 's':
			n, err := strconv.Atoi(chunk)
			if err != nil {
				return time.Time{}, fmt.Errorf("bad second %q: %w", chunk, err)
			}
			second = n
		case 'f':
			n, err := strconv.Atoi(chunk)
			if err != nil {
				return time.Time{}, fmt.Errorf("bad fractional second %q: %w", chunk, err)
			}
			nsec = n * pow10(9-r.width)
		case 'T':
			if r.width != 4 {
				return time.Time{}, fmt.Errorf("T run must be exactly 4 characters (hour+minute), got %d", r.width)
			}
			h, err := strconv.Atoi(chunk[:2])
			if err != nil {
				return time.Time{}, fmt.Errorf("bad hour in T run %q: %w", chunk, err)
			}
			mi, err := strconv.Atoi(chunk[2:])
			if err != nil {
				return time.Time{}, fmt.Errorf("bad minute in T run %q: %w", chunk, err)
			}
			hour, minute = h, mi
		case 'p':
			// AM/PM indicator; content does not affect the 24-hour fields
			// already parsed from an 'h' run.
		case 'W':
			// ISO week alone is insufficient to determine a calendar date
			// without an accompanying year; reject rather than guess.
			return time.Time{}, fmt.Errorf("cannot parse a bare ISO week pattern %q to a date", pattern)
		default:
			return time.Time{}, fmt.Errorf("unknown date pattern token %q", string(r.token))
		}
	}

	return time.Date(year, month, day, hour, minute, second, nsec, time.UTC), nil
}

// Format renders t according to pattern, producing a fixed-width run per
// token. Parse reads its output back, except that Parse rejects W runs and
// ignores p runs.
func Format(pattern string, t time.Time) (string, error) {
	var sb strings.Builder
	for _, r := range splitRuns(pattern) {
		switch r.token {
		case 'Y':
			if r.width <= 2 {
				fmt.Fprintf(&sb, "%0*d", r.width, t.Year()%100)
			} else {
				fmt.Fprintf(&sb, "%0*d", r.width, t.Year())
			}
		case 'M':
			if r.width >= 3 {
				sb.WriteString(strings.ToUpper(t.Month().String())[:3])
			} else {
				fmt.Fprintf(&sb, "%0*d", r.width, int(t.Month()))
			}
		case 'D':
			fmt.Fprintf(&sb, "%0*d", r.width, t.Day())
		case 'h':
			fmt.Fprintf(&sb, "%0*d", r.width, t.Hour())
		case 'm':
			fmt.Fprintf(&sb, "%0*d", r.width, t.Minute())
		case 's':
			fmt.Fprintf(&sb, "%0*d", r.width, t.Second())
		case 'f':
			frac := t.Nanosecond() / pow10(9-r.width)
			fmt.Fprintf(&sb, "%0*d", r.width, frac)
		case 'T':
			if r.width != 4 {
				return "", fmt.Errorf("T run must be exactly 4 characters, got %d", r.width)
			}
			fmt.Fprintf(&sb, "%02d%02d", t.Hour(), t.Minute())
		case 'p':
			if t.Hour() < 12 {
				sb.WriteString(strings.Repeat("A", r.width))
			} else {
				sb.WriteString(strings.Repeat("P", r.width))
			}
		case 'W':
			_, week := t.ISOWeek()
			fmt.Fprintf(&sb, "%0*d", r.width, week)
		default:
			return "", fmt.Errorf("unknown date pattern token %q", string(r.token))
		}
	}
	return sb.String(), nil
}

func pow10(n int) int {
	if n <= 0 {
		return 1
	}
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

func monthFromAbbrev(s string) (time.Month, error) {
	s = strings.ToUpper(s)
	for m := time.January; m <= time.December; m++ {
		if strings.ToUpper(m.String())[:3] == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unrecognized month abbreviation %q", s)
}
