// Package metrics は2値分類の評価指標を提供する
package metrics

import (
	"math"

	"github.com/YuminosukeSato/imblearn/dataset"
	"github.com/YuminosukeSato/imblearn/pkg/errors"
)

// ConfusionMatrix は2値分類の混同行列（予測×実際、{陽性, 陰性}の順）
// 陽性ラベルの指定に対して、4つのセルを保持する
type ConfusionMatrix struct {
	TP int // 真陽性: 予測=陽性, 実際=陽性
	FP int // 偽陽性: 予測=陽性, 実際=陰性
	FN int // 偽陰性: 予測=陰性, 実際=陽性
	TN int // 真陰性: 予測=陰性, 実際=陰性
}

// NewConfusionMatrix は実際のラベルと予測ラベルから混同行列を構築する
//
// パラメータ:
//   - actual: 実際のラベル
//   - predicted: 予測ラベル（actualと同じ長さ）
//   - positive: 陽性として扱うラベル
func NewConfusionMatrix(actual, predicted []dataset.Label, positive dataset.Label) (*ConfusionMatrix, error) {
	// 入力検証
	if len(actual) == 0 {
		return nil, errors.NewValueError("NewConfusionMatrix", "empty label slice")
	}
	if len(predicted) != len(actual) {
		return nil, errors.NewDimensionError("NewConfusionMatrix", len(actual), len(predicted), 0)
	}

	cm := &ConfusionMatrix{}
	for i := range actual {
		predPos := predicted[i] == positive
		actPos := actual[i] == positive
		switch {
		case predPos && actPos:
			cm.TP++
		case predPos && !actPos:
			cm.FP++
		case !predPos && actPos:
			cm.FN++
		default:
			cm.TN++
		}
	}
	return cm, nil
}

// Total は混同行列の全サンプル数を返す
func (cm *ConfusionMatrix) Total() int {
	return cm.TP + cm.FP + cm.FN + cm.TN
}

// Accuracy は正解率 (TP+TN)/total を計算する
func (cm *ConfusionMatrix) Accuracy() float64 {
	return cm.ratio(float64(cm.TP+cm.TN), float64(cm.Total()), "accuracy", "empty confusion matrix")
}

// Precision は適合率 TP/(TP+FP) を計算する
// 陽性と予測されたサンプルが一つもない場合はNaNを返し、警告を発生させる
func (cm *ConfusionMatrix) Precision() float64 {
	return cm.ratio(float64(cm.TP), float64(cm.TP+cm.FP), "precision", "no predicted positives (TP+FP=0)")
}

// Recall は再現率（感度） TP/(TP+FN) を計算する
// 実際の陽性サンプルが一つもない場合はNaNを返し、警告を発生させる
func (cm *ConfusionMatrix) Recall() float64 {
	return cm.ratio(float64(cm.TP), float64(cm.TP+cm.FN), "recall", "no actual positives (TP+FN=0)")
}

// Specificity は特異度 TN/(TN+FP) を計算する
// 実際の陰性サンプルが一つもない場合はNaNを返し、警告を発生させる
func (cm *ConfusionMatrix) Specificity() float64 {
	return cm.ratio(float64(cm.TN), float64(cm.TN+cm.FP), "specificity", "no actual negatives (TN+FP=0)")
}

// Kappa はCohenのκ係数（偶然一致を補正した一致度）を計算する
//
//	κ = (po - pe) / (1 - pe)
//
// po は観測一致率、pe は予測と実際の周辺分布から計算される期待一致率。
// pe = 1（周辺分布が完全に偏っている場合）ではκは定義されないため、
// NaNを返し、警告を発生させる
func (cm *ConfusionMatrix) Kappa() float64 {
	n := float64(cm.Total())
	if n == 0 {
		return undefined("kappa", "empty confusion matrix")
	}

	po := float64(cm.TP+cm.TN) / n
	predPos := float64(cm.TP + cm.FP)
	predNeg := float64(cm.FN + cm.TN)
	actPos := float64(cm.TP + cm.FN)
	actNeg := float64(cm.FP + cm.TN)
	pe := (predPos*actPos + predNeg*actNeg) / (n * n)

	if pe == 1 {
		return undefined("kappa", "expected agreement equals 1 (1-pe=0)")
	}
	return (po - pe) / (1 - pe)
}

// ratio は分母が0の場合にNaNセンチネルと警告を返す安全な除算
func (cm *ConfusionMatrix) ratio(num, den float64, metric, condition string) float64 {
	if den == 0 {
		return undefined(metric, condition)
	}
	return num / den
}

func undefined(metric, condition string) float64 {
	errors.Warn(errors.NewUndefinedMetricWarning(metric, condition, math.NaN()))
	return math.NaN()
}

// Row は1戦略の評価結果（混同行列から導出されるスカラー指標の組）
// 一度構築されたら変更されない
type Row struct {
	Accuracy    float64
	Precision   float64
	Recall      float64
	Specificity float64
	Kappa       float64

	// Matrix は指標の導出元となった混同行列
	Matrix ConfusionMatrix
}

// NewRow は混同行列から全ての指標を導出したRowを構築する
// 計算不能な指標はNaNセンチネルとして保持される（行自体は常に完成する）
func NewRow(cm *ConfusionMatrix) Row {
	return Row{
		Accuracy:    cm.Accuracy(),
		Precision:   cm.Precision(),
		Recall:      cm.Recall(),
		Specificity: cm.Specificity(),
		Kappa:       cm.Kappa(),
		Matrix:      *cm,
	}
}
