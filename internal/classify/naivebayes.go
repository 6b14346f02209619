// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import "math"

// naiveBayes is a multinomial generative model over TF-IDF feature mass
// with Laplace smoothing. Likelihoods are accumulated in log space and
// normalized with softmax.
type naiveBayes struct {
	classLogPrior  []float64
	featureLogProb [][]float64
}

const nbSmoothing = 1.0

func (nb *naiveBayes) fit(X [][]float64, y []int, k int) {
	features := 0
	if len(X) > 0 {
		features = len(X[0])
	}

	classCount := make([]float64, k)
	featureMass := make([][]float64, k)
	for c := range featureMass {
		featureMass[c] = make([]float64, features)
	}
	for i, row := range X {
		c := y[i]
		classCount[c]++
		for j, v := range row {
			featureMass[c][j] += v
		}
	}

	total := float64(len(X))
	nb.classLogPrior = make([]float64, k)
	nb.featureLogProb = make([][]float64, k)
	for c := 0; c < k; c++ {
		if classCount[c] > 0 {
			nb.classLogPrior[c] = math.Log(classCount[c] / total)
		} else {
			// Classes with no training examples get a vanishing prior.
			nb.classLogPrior[c] = math.Log(1e-10)
		}
		var mass float64
		for _, v := range featureMass[c] {
			mass += v
		}
		denom := math.Log(mass + nbSmoothing*float64(features))
		nb.featureLogProb[c] = make([]float64, features)
		for j, v := range featureMass[c] {
			nb.featureLogProb[c][j] = math.Log(v+nbSmoothing) - denom
		}
	}
}

func (nb *naiveBayes) predictProba(x []float64) []float64 {
	logits := make([]float64, len(nb.classLogPrior))
	for c := range logits {
		joint := nb.classLogPrior[c]
		logProb := nb.featureLogProb[c]
		for j, v := range x {
			if v != 0 && j < len(logProb) {
				joint += v * logProb[j]
			}
		}
		logits[c] = joint
	}
	return softmaxFromLog(logits)
}

func (nb *naiveBayes) state() modelState {
	return modelState{
		Kind:           kindNaiveBayes,
		ClassLogPrior:  nb.classLogPrior,
		FeatureLogProb: nb.featureLogProb,
	}
}

func restoreNaiveBayes(st modelState) *naiveBayes {
	return &naiveBayes{
		classLogPrior:  st.ClassLogPrior,
		featureLogProb: st.FeatureLogProb,
	}
}
