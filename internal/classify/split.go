// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"math"
	"math/rand"
	"sort"
)

// splitIndices partitions document indices into a fitting set and a
// held-out evaluation set. k is the number of distinct labels actually
// present, not the configured category count.
//
// With fewer than max(6, 2k) documents everything goes to the fitting set
// and the held-out set is nil. Otherwise the held-out fraction is
// max(0.2, k/n), split stratified when more than one label is present and
// every present category has at least two examples, unstratified otherwise.
// The shuffle is seeded so repeated runs produce the same partition.
func splitIndices(labels []int, seed int64) (fit, held []int) {
	n := len(labels)

	byLabel := make(map[int][]int)
	for i, label := range labels {
		byLabel[label] = append(byLabel[label], i)
	}
	k := len(byLabel)

	minForSplit := 6
	if 2*k > minForSplit {
		minForSplit = 2 * k
	}
	if n < minForSplit {
		fit = make([]int, n)
		for i := range fit {
			fit[i] = i
		}
		return fit, nil
	}

	fraction := math.Max(0.2, float64(k)/float64(n))
	rng := rand.New(rand.NewSource(seed))

	stratified := k > 1
	for _, group := range byLabel {
		if len(group) < 2 {
			stratified = false
			break
		}
	}

	if !stratified {
		order := rng.Perm(n)
		heldCount := clamp(int(math.Round(fraction*float64(n))), 1, n-1)
		held = append(held, order[:heldCount]...)
		fit = append(fit, order[heldCount:]...)
		sort.Ints(fit)
		sort.Ints(held)
		return fit, held
	}

	// Deterministic label order keeps the seeded shuffle reproducible.
	presentLabels := make([]int, 0, len(byLabel))
	for label := range byLabel {
		presentLabels = append(presentLabels, label)
	}
	sort.Ints(presentLabels)

	for _, label := range presentLabels {
		group := byLabel[label]
		rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})
		// Every category keeps at least one fitting example.
		heldCount := clamp(int(math.Round(fraction*float64(len(group)))), 0, len(group)-1)
		held = append(held, group[:heldCount]...)
		fit = append(fit, group[heldCount:]...)
	}
	sort.Ints(fit)
	sort.Ints(held)
	return fit, held
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
