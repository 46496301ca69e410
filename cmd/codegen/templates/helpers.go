package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// cellParams renders "c0 Cell[T0], c1 Cell[T1], ...".
func cellParams(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		n := strconv.Itoa(i)
		sb.WriteString("c" + n + " Cell[T" + n + "]")
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// cellValues renders "c0.Value(), c1.Value(), ...".
func cellValues(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString("c" + strconv.Itoa(i) + ".Value()")
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
