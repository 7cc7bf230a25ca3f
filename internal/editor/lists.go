package editor

import (
	"regexp"
	"strconv"
	"strings"
)

// listItemPattern matches a markdown list marker with optional task box:
// "- ", "* ", "+ ", "3. ", "3) ", "- [ ] ", "  - [x] ".
var listItemPattern = regexp.MustCompile(`^(\s*)([-*+]|\d+[.)])(\s+)(\[[ xX]\]\s+)?`)

// listItem describes the list marker at the start of a line.
type listItem struct {
	// prefix is the marker exactly as written, indentation included.
	prefix string
	// next is the marker the following item starts with.
	next string
	// empty is true when nothing follows the marker.
	empty bool
}

// parseListItem recognises a markdown list item.
func parseListItem(line string) (listItem, bool) {
	m := listItemPattern.FindStringSubmatch(line)
	if m == nil {
		return listItem{}, false
	}
	indent, marker, gap, task := m[1], m[2], m[3], m[4]

	if n, err := strconv.Atoi(strings.TrimRight(marker, ".)")); err == nil {
		marker = strconv.Itoa(n+1) + marker[len(marker)-1:]
	}
	if task != "" {
		task = "[ ]" + task[3:]
	}

	return listItem{
		prefix: m[0],
		next:   indent + marker + gap + task,
		empty:  strings.TrimSpace(line[len(m[0]):]) == "",
	}, true
}
