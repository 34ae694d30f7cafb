package api

import (
	"fmt"
	"html/template"
	"math"
	"path/filepath"
)

// formatGap renders a gap to the winner as "+M:SS". An absent or
// non-positive gap renders as a dash, never "+0:00".
func formatGap(gap *float64) string {
	if gap == nil {
		return "—"
	}
	secs := *gap
	if secs <= 0 {
		return "—"
	}
	return fmt.Sprintf("+%d:%02d", int(secs)/60, int(math.Floor(secs))%60)
}

// formatPct renders a percentage without decimals.
func formatPct(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}

// formatPctPtr renders an optional percentage, dash when absent.
func formatPctPtr(v *float64) string {
	if v == nil {
		return "—"
	}
	return formatPct(*v)
}

// formatSecondsPtr renders an optional duration in raw seconds. The
// rider history falls back to it when the source time string is blank.
func formatSecondsPtr(v *float64) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%.0fs", *v)
}

// inList reports whether s is one of items.
func inList(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatGap":        formatGap,
		"formatPct":        formatPct,
		"formatPctPtr":     formatPctPtr,
		"formatSecondsPtr": formatSecondsPtr,
		"inList":           inList,
	}
}

func LoadTemplates() (*template.Template, error) {
	t := template.New("base").Funcs(templateFuncs())

	patterns := []string{
		"web/templates/layouts/*.html",
		"web/templates/pages/*.html",
		"web/templates/partials/*.html",
	}
	for _, p := range patterns {
		if matches, _ := filepath.Glob(p); len(matches) == 0 {
			continue
		}
		if _, err := t.ParseGlob(p); err != nil {
			return nil, err
		}
	}

	return t, nil
}
