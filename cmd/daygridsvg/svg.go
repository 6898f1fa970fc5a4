package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/daygrid"
)

// Rendering constants. The gutter on the left holds the hour labels; the
// event column itself spans cfg.ColumnWidth to the right of it.
const (
	gutterWidth  = 48.0
	marginTop    = 8.0
	marginBottom = 8.0
	fontSize     = 11
	labelInset   = 4.0
)

// renderSVG builds the SVG document for one computed layout. Events are
// emitted in ascending id order so the output is byte-stable for a given
// solution.
func renderSVG(cfg daygrid.Config, sol daygrid.Solution, titles map[int]string) string {
	totalW := gutterWidth + cfg.ColumnWidth
	totalH := marginTop + cfg.ColumnHeight + marginBottom
	hourHeight := cfg.ColumnHeight / daygrid.HoursPerDay

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		totalW, totalH, totalW, totalH)
	fmt.Fprintf(&b, `  <rect width="%.0f" height="%.0f" fill="#ffffff"/>`+"\n", totalW, totalH)

	// Hour grid and labels.
	for h := 0; h <= daygrid.HoursPerDay; h++ {
		y := marginTop + float64(h)*hourHeight
		fmt.Fprintf(&b, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#e0e0e0" stroke-width="1"/>`+"\n",
			gutterWidth, y, totalW, y)
		if h < daygrid.HoursPerDay {
			fmt.Fprintf(&b, `  <text x="%.1f" y="%.1f" font-size="%d" fill="#888888" text-anchor="end">%02d:00</text>`+"\n",
				gutterWidth-labelInset, y+float64(fontSize), fontSize, h)
		}
	}

	ids := make([]int, 0, len(sol))
	for id := range sol {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		r := sol[id]
		x := gutterWidth + r.X
		y := marginTop + r.Y
		fmt.Fprintf(&b, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="#4a90d9" fill-opacity="0.85" stroke="#2a5d95" stroke-width="1" rx="2"/>`+"\n",
			x, y, r.Width, r.Height)
		if title := titles[id]; title != "" && r.Height >= float64(fontSize)+2 {
			fmt.Fprintf(&b, `  <text x="%.2f" y="%.2f" font-size="%d" fill="#ffffff">%s</text>`+"\n",
				x+labelInset, y+float64(fontSize)+2, fontSize, escapeText(title))
		}
	}

	b.WriteString("</svg>\n")

	return b.String()
}

// escapeText makes a title safe for SVG text content.
func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

	return r.Replace(s)
}
