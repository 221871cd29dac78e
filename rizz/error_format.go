package rizz

import (
	"fmt"
	"strconv"
	"strings"
)

// Frame renders the source line a diagnostic points at.
func (a *Analysis) Frame(d Diagnostic) string {
	return formatCodeFrame(a.Source, d.Line)
}

func formatCodeFrame(source string, line int) string {
	if source == "" || line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}

	lineText := strings.TrimRight(lines[line-1], "\r")
	lineLabel := strconv.Itoa(line)

	return fmt.Sprintf(
		"  --> line %d\n %s | %s",
		line,
		lineLabel,
		lineText,
	)
}
