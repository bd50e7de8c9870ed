// Package classify maps an entry's text to its display color through an
// ordered rule table. The rules are genuinely order-dependent: the first
// match wins, and user-defined legends outrank every built-in pattern.
package classify

import (
	"regexp"
	"strings"

	"tableflip.dev/prodsched/pkg/palette"
	"tableflip.dev/prodsched/pkg/schedule"
)

// Context carries the per-view inputs a classification needs: the custom
// legend list and the effective holiday names (lowercased) for the entry's
// year.
type Context struct {
	Legends      []palette.Legend
	HolidayNames map[string]bool
}

var (
	runPattern         = regexp.MustCompile(`(ac225|in111)\s*run[\s-]*(evg|srx)`)
	placeholderPattern = regexp.MustCompile(`^\d{5}-p\d`)
	confirmedPattern   = regexp.MustCompile(`^\d{5}-\d{3}`)
	mdSuffixPattern    = regexp.MustCompile(`md[1-3]$`)
)

// rule is one prioritized classification step. match operates on the
// trimmed, lowercased text and returns the color when it applies.
type rule struct {
	name  string
	match func(ctx Context, lower string) (palette.Color, bool)
}

var rules = []rule{
	{"legend", func(ctx Context, lower string) (palette.Color, bool) {
		for _, item := range ctx.Legends {
			label := strings.ToLower(strings.TrimSpace(item.Label))
			if label != "" && strings.Contains(lower, label) {
				return item.Color, true
			}
		}
		return "", false
	}},
	{"weekend", exact("weekend", palette.Weekend)},
	{"holiday", func(ctx Context, lower string) (palette.Color, bool) {
		if ctx.HolidayNames[lower] {
			return palette.Holiday, true
		}
		return "", false
	}},
	{"shutdown", contains("shutdown", palette.Shutdown)},
	{"production-run", func(_ Context, lower string) (palette.Color, bool) {
		m := runPattern.FindStringSubmatch(lower)
		if m == nil {
			return "", false
		}
		switch m[1] + "-" + m[2] {
		case "ac225-evg":
			return palette.AC225RunEVG, true
		case "in111-evg":
			return palette.IN111RunEVG, true
		case "ac225-srx":
			return palette.AC225RunSRX, true
		default:
			return palette.IN111RunSRX, true
		}
	}},
	{"partner", func(_ Context, lower string) (palette.Color, bool) {
		for _, prefix := range []string{"cardinal", "tpi", "niowave"} {
			if strings.HasPrefix(lower, prefix) {
				return palette.Partner, true
			}
		}
		return "", false
	}},
	{"nmctg", contains("nmctg", palette.NMCTG)},
	{"placeholder-patient", func(_ Context, lower string) (palette.Color, bool) {
		if placeholderPattern.MatchString(lower) {
			return palette.Placeholder, true
		}
		return "", false
	}},
	{"confirmed-patient", func(_ Context, lower string) (palette.Color, bool) {
		if !confirmedPattern.MatchString(lower) {
			return "", false
		}
		if mdSuffixPattern.MatchString(lower) {
			return palette.Maintenance, true
		}
		return palette.Confirmed, true
	}},
	{"process-validation", func(_ Context, lower string) (palette.Color, bool) {
		if strings.HasPrefix(lower, "pv") && strings.Contains(lower, "srx") {
			return palette.PV, true
		}
		return "", false
	}},
	{"srx-maintenance", exact("srx maintenance", palette.SRX)},
	{"perceptive", contains("perceptive", palette.Perceptive)},
	{"bwxt", exact("bwxt order", palette.BWXT)},
}

func exact(want string, c palette.Color) func(Context, string) (palette.Color, bool) {
	return func(_ Context, lower string) (palette.Color, bool) {
		if lower == want {
			return c, true
		}
		return "", false
	}
}

func contains(want string, c palette.Color) func(Context, string) (palette.Color, bool) {
	return func(_ Context, lower string) (palette.Color, bool) {
		if strings.Contains(lower, want) {
			return c, true
		}
		return "", false
	}
}

// Color classifies an entry. Cancelled non-empty entries take the
// cancelled color regardless of content; empty text is neutral white.
func Color(e schedule.Entry, ctx Context) palette.Color {
	lower := strings.ToLower(strings.TrimSpace(e.Text))
	if lower == "" {
		return palette.White
	}
	if e.Cancelled {
		return palette.Cancelled
	}
	for _, r := range rules {
		if c, ok := r.match(ctx, lower); ok {
			return c
		}
	}
	return palette.Unmatched
}
