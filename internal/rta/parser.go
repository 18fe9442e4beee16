package rta

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var triplePattern = regexp.MustCompile(`^\((\d+),(\d+),(\d+)\)$`)

// ParseTaskSet scans the compact "(C,T,D),(C,T,D)" notation and returns
// tasks in appearance order, IDs assigned 1..n. Whitespace outside
// tokens is ignored. A comma separates triples only at parenthesis
// depth zero; inside a triple it belongs to the triple. An empty input
// is a valid empty task set.
func ParseTaskSet(text string, precision int) ([]Task, error) {
	var (
		tasks     []Task
		frag      strings.Builder
		depth     int
		fragStart = -1
	)

	flush := func() error {
		raw := frag.String()
		frag.Reset()
		start := fragStart
		if start < 0 {
			start = len(text)
		}
		fragStart = -1

		m := triplePattern.FindStringSubmatch(raw)
		if m == nil {
			return &MalformedSystemError{Fragment: raw, Pos: start, Reason: "expected (C,T,D) triple"}
		}
		c, _ := strconv.ParseFloat(m[1], 64)
		t, _ := strconv.ParseFloat(m[2], 64)
		d, _ := strconv.ParseFloat(m[3], 64)
		tasks = append(tasks, NewTask(TaskID(len(tasks)+1), c, t, d, precision))
		return nil
	}

	for i, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, &MalformedSystemError{Pos: i, Reason: "unbalanced ')'"}
			}
		case ',':
			if depth == 0 {
				if err := flush(); err != nil {
					return nil, err
				}
				continue
			}
		}
		if fragStart < 0 {
			fragStart = i
		}
		frag.WriteRune(r)
	}

	if depth != 0 {
		return nil, &MalformedSystemError{Pos: len(text), Reason: "unbalanced '('"}
	}
	if fragStart < 0 && len(tasks) == 0 {
		return nil, nil
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return tasks, nil
}
