package util

import (
	"strings"
	"sync"
)

// AnyNonEmpty reports whether at least one of ss is not empty.
func AnyNonEmpty(ss ...string) bool {
	for _, s := range ss {
		if s != "" {
			return true
		}
	}
	return false
}

// EqFold reports whether s1 and s2 are equal under simple Unicode case-folding.
func EqFold[T1, T2 ~string](s1 T1, s2 T2) bool {
	return strings.EqualFold(string(s1), string(s2))
}

// Ellipsis cuts s to maxLen runes and appends "..." when it was longer.
func Ellipsis(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[0:maxLen]) + "..."
}

// Mask replaces every rune of s with '*'. Empty input stays empty.
func Mask(s string) string {
	if s == "" {
		return ""
	}
	return strings.Repeat("*", len([]rune(s)))
}

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(256)
		return sb
	},
}

func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}
