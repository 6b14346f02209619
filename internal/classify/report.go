// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import "github.com/pdiddy/pubengine/pkg/types"

func accuracy(truth, predicted []int) float64 {
	if len(truth) == 0 {
		return 0
	}
	correct := 0
	for i := range truth {
		if truth[i] == predicted[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(truth))
}

// classificationReport computes per-category precision, recall, F1 and
// support over a held-out evaluation set. Categories absent from the truth
// set report zero support.
func classificationReport(truth, predicted []int, categories []string) map[string]types.CategoryMetrics {
	k := len(categories)
	truePos := make([]int, k)
	falsePos := make([]int, k)
	falseNeg := make([]int, k)
	support := make([]int, k)

	for i := range truth {
		support[truth[i]]++
		if truth[i] == predicted[i] {
			truePos[truth[i]]++
		} else {
			falsePos[predicted[i]]++
			falseNeg[truth[i]]++
		}
	}

	report := make(map[string]types.CategoryMetrics, k)
	for c, cat := range categories {
		var precision, recall, f1 float64
		if truePos[c]+falsePos[c] > 0 {
			precision = float64(truePos[c]) / float64(truePos[c]+falsePos[c])
		}
		if truePos[c]+falseNeg[c] > 0 {
			recall = float64(truePos[c]) / float64(truePos[c]+falseNeg[c])
		}
		if precision+recall > 0 {
			f1 = 2 * precision * recall / (precision + recall)
		}
		report[cat] = types.CategoryMetrics{
			Precision: precision,
			Recall:    recall,
			F1:        f1,
			Support:   support[c],
		}
	}
	return report
}
