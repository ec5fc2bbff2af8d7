package img2css

import "sort"

// DefaultThreshold is the minimum occurrence count for a color to
// qualify for a shared class. At the default of 2, colors appearing
// once always render inline.
const DefaultThreshold = 2

// ColorCount pairs a color with its number of occurrences in a pixel
// source.
type ColorCount struct {
	Color RGB
	Count int
}

// byCount orders descending by occurrence count and nothing else.
// Equal counts must keep their scan order, so only a stable sort may
// be applied to it.
type byCount []ColorCount

func (s byCount) Len() int           { return len(s) }
func (s byCount) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s byCount) Less(i, j int) bool { return s[i].Count > s[j].Count }

// CountColors tallies the occurrences of every distinct color in
// pixels, preserving first-encounter order of the scan. An empty
// source yields an empty result.
func CountColors(pixels []RGB) []ColorCount {
	counts := make(map[RGB]int)
	order := make([]RGB, 0)
	for _, c := range pixels {
		if _, seen := counts[c]; !seen {
			order = append(order, c)
		}
		counts[c]++
	}

	result := make([]ColorCount, len(order))
	for i, c := range order {
		result[i] = ColorCount{Color: c, Count: counts[c]}
	}
	return result
}

// RankColors returns the distinct colors in pixels occurring at least
// threshold times, ordered by descending count with ties kept in scan
// order. The pixel source may be a flattened raw grid or the color
// channel of a compressed grid; both orderings are deterministic.
// A threshold of 1 or less selects every distinct color.
func RankColors(pixels []RGB, threshold int) []RGB {
	counts := CountColors(pixels)

	qualifying := make([]ColorCount, 0, len(counts))
	for _, cc := range counts {
		if cc.Count >= threshold {
			qualifying = append(qualifying, cc)
		}
	}
	sort.Stable(byCount(qualifying))

	ranked := make([]RGB, len(qualifying))
	for i, cc := range qualifying {
		ranked[i] = cc.Color
	}
	return ranked
}
