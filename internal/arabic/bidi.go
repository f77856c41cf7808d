package arabic

import (
	"strings"

	"golang.org/x/text/unicode/bidi"
)

type direction int

const (
	dirRTL direction = iota
	dirLTR
	dirNumber
	dirNeutral
)

// cluster is a base rune plus the combining marks that follow it.
type cluster struct {
	runes []rune
	class bidi.Class
	dir   direction
}

var mirrored = map[rune]rune{
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'<': '>', '>': '<',
	'«': '»', '»': '«',
}

// Display shapes s and converts it to visual order for an RTL paragraph.
// Runs of digits and Latin text keep their internal order.
func Display(s string) string {
	if s == "" {
		return ""
	}
	return Visual(Shape(s))
}

// Visual reorders logical-order text of a right-to-left paragraph into the
// left-to-right visual order a plain layout engine draws.
func Visual(s string) string {
	clusters := splitClusters(s)
	resolveNumbers(clusters)
	resolveNeutrals(clusters)

	var b strings.Builder
	b.Grow(len(s))
	end := len(clusters)
	for end > 0 {
		start := end - 1
		rtl := clusters[start].dir == dirRTL
		for start > 0 && (clusters[start-1].dir == dirRTL) == rtl {
			start--
		}
		if rtl {
			for i := end - 1; i >= start; i-- {
				writeCluster(&b, clusters[i], true)
			}
		} else {
			for i := start; i < end; i++ {
				writeCluster(&b, clusters[i], false)
			}
		}
		end = start
	}
	return b.String()
}

func writeCluster(b *strings.Builder, c cluster, mirror bool) {
	for i, r := range c.runes {
		if mirror && i == 0 {
			if m, ok := mirrored[r]; ok {
				r = m
			}
		}
		b.WriteRune(r)
	}
}

func splitClusters(s string) []cluster {
	var clusters []cluster
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		class := props.Class()
		if class == bidi.NSM && len(clusters) > 0 {
			last := &clusters[len(clusters)-1]
			last.runes = append(last.runes, r)
			continue
		}
		clusters = append(clusters, cluster{runes: []rune{r}, class: class, dir: directionOf(class)})
	}
	return clusters
}

func directionOf(class bidi.Class) direction {
	switch class {
	case bidi.R, bidi.AL:
		return dirRTL
	case bidi.L:
		return dirLTR
	case bidi.EN, bidi.AN:
		return dirNumber
	default:
		return dirNeutral
	}
}

// resolveNumbers joins separators into numbers (10,000.00, 2025-01-15, 9.75%)
// and turns digits that follow Latin text into Latin (SA0380000).
func resolveNumbers(clusters []cluster) {
	for i := 1; i+1 < len(clusters); i++ {
		c := clusters[i]
		if c.dir != dirNeutral || (c.class != bidi.CS && c.class != bidi.ES) {
			continue
		}
		if clusters[i-1].dir == dirNumber && clusters[i+1].dir == dirNumber {
			clusters[i].dir = dirNumber
		}
	}
	for i := range clusters {
		if clusters[i].class != bidi.ET {
			continue
		}
		if (i > 0 && clusters[i-1].dir == dirNumber) || (i+1 < len(clusters) && clusters[i+1].dir == dirNumber) {
			clusters[i].dir = dirNumber
		}
	}

	last := dirRTL
	for i := range clusters {
		switch clusters[i].dir {
		case dirRTL, dirLTR:
			last = clusters[i].dir
		case dirNumber:
			if last == dirLTR {
				clusters[i].dir = dirLTR
			}
		}
	}
}

// resolveNeutrals gives runs of neutrals the direction of their neighbours
// when both sides agree, and the paragraph direction otherwise. Numbers
// count as right-to-left neighbours.
func resolveNeutrals(clusters []cluster) {
	strong := func(d direction) direction {
		if d == dirNumber {
			return dirRTL
		}
		return d
	}
	for i := 0; i < len(clusters); {
		if clusters[i].dir != dirNeutral {
			i++
			continue
		}
		j := i
		for j < len(clusters) && clusters[j].dir == dirNeutral {
			j++
		}
		before, after := dirRTL, dirRTL
		if i > 0 {
			before = strong(clusters[i-1].dir)
		}
		if j < len(clusters) {
			after = strong(clusters[j].dir)
		}
		resolved := dirRTL
		if before == dirLTR && after == dirLTR {
			resolved = dirLTR
		}
		for k := i; k < j; k++ {
			clusters[k].dir = resolved
		}
		i = j
	}
}
