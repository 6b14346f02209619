// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

// logisticRegression is a multinomial (softmax) discriminative model fitted
// with deterministic full-batch gradient descent and L2 regularization. The
// fixed iteration budget keeps training time bounded on small corpora.
type logisticRegression struct {
	iterations   int
	learningRate float64
	l2           float64

	weights [][]float64
	bias    []float64
}

func newLogisticRegression() *logisticRegression {
	return &logisticRegression{
		iterations:   300,
		learningRate: 0.5,
		l2:           0.01,
	}
}

func (lr *logisticRegression) fit(X [][]float64, y []int, k int) {
	features := 0
	if len(X) > 0 {
		features = len(X[0])
	}

	lr.weights = make([][]float64, k)
	for c := range lr.weights {
		lr.weights[c] = make([]float64, features)
	}
	lr.bias = make([]float64, k)

	n := float64(len(X))
	if n == 0 {
		return
	}

	gradW := make([][]float64, k)
	for c := range gradW {
		gradW[c] = make([]float64, features)
	}
	gradB := make([]float64, k)

	for iter := 0; iter < lr.iterations; iter++ {
		for c := range gradW {
			for j := range gradW[c] {
				gradW[c][j] = lr.l2 * lr.weights[c][j]
			}
			gradB[c] = 0
		}

		for i, row := range X {
			probs := lr.predictProba(row)
			for c := 0; c < k; c++ {
				delta := probs[c]
				if c == y[i] {
					delta--
				}
				delta /= n
				for j, v := range row {
					if v != 0 {
						gradW[c][j] += delta * v
					}
				}
				gradB[c] += delta
			}
		}

		for c := 0; c < k; c++ {
			for j := range lr.weights[c] {
				lr.weights[c][j] -= lr.learningRate * gradW[c][j]
			}
			lr.bias[c] -= lr.learningRate * gradB[c]
		}
	}
}

func (lr *logisticRegression) predictProba(x []float64) []float64 {
	logits := make([]float64, len(lr.weights))
	for c, w := range lr.weights {
		score := lr.bias[c]
		for j, v := range x {
			if v != 0 && j < len(w) {
				score += w[j] * v
			}
		}
		logits[c] = score
	}
	return softmaxFromLog(logits)
}

func (lr *logisticRegression) state() modelState {
	return modelState{
		Kind:    kindLogisticRegression,
		Weights: lr.weights,
		Bias:    lr.bias,
	}
}

func restoreLogisticRegression(st modelState) *logisticRegression {
	mdl := newLogisticRegression()
	mdl.weights = st.Weights
	mdl.bias = st.Bias
	return mdl
}
