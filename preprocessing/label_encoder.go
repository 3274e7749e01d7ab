// Package preprocessing はデータセット構築前の前処理ユーティリティを提供する
package preprocessing

import (
	"github.com/YuminosukeSato/imblearn/core/model"
	"github.com/YuminosukeSato/imblearn/pkg/errors"
)

// LabelEncoder はカテゴリカルな文字列値をfloat64のコードに変換するエンコーダー
// 外部のデータセットソースがdatasetパッケージの数値特徴行列を構築する際に使用する
//
// コードは出現順に0から割り当てられるため、同じ入力に対して常に同じ
// エンコーディングが得られる（再現性の保証）
type LabelEncoder struct {
	model.BaseEstimator

	// Classes は学習時に観測されたカテゴリ（出現順）
	Classes []string

	index map[string]float64
}

// NewLabelEncoder は新しいLabelEncoderを作成する
//
// 使用例:
//
//	enc := preprocessing.NewLabelEncoder()
//	codes, err := enc.FitTransform(column)
func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{}
}

// Fit は値の列からカテゴリの語彙を学習する
//
// パラメータ:
//   - values: カテゴリカルな値の列
//
// 戻り値:
//   - error: 空の入力の場合エラー
func (e *LabelEncoder) Fit(values []string) error {
	if len(values) == 0 {
		return errors.NewValueError("LabelEncoder.Fit", "empty input")
	}

	e.Classes = nil
	e.index = make(map[string]float64)
	for _, v := range values {
		if _, seen := e.index[v]; !seen {
			e.index[v] = float64(len(e.Classes))
			e.Classes = append(e.Classes, v)
		}
	}

	e.SetFitted()
	return nil
}

// Transform は学習済みの語彙を使って値をコードに変換する
// 未知のカテゴリが含まれる場合はValidationErrorを返す
func (e *LabelEncoder) Transform(values []string) ([]float64, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("LabelEncoder", "Transform")
	}

	codes := make([]float64, len(values))
	for i, v := range values {
		code, ok := e.index[v]
		if !ok {
			return nil, errors.NewValidationError("values", "unknown category", v)
		}
		codes[i] = code
	}
	return codes, nil
}

// FitTransform はFitとTransformを一度に実行する
func (e *LabelEncoder) FitTransform(values []string) ([]float64, error) {
	if err := e.Fit(values); err != nil {
		return nil, err
	}
	return e.Transform(values)
}

// InverseTransform はコードを元のカテゴリ値に戻す
// 語彙に存在しないコードが含まれる場合はValidationErrorを返す
func (e *LabelEncoder) InverseTransform(codes []float64) ([]string, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("LabelEncoder", "InverseTransform")
	}

	values := make([]string, len(codes))
	for i, code := range codes {
		idx := int(code)
		if float64(idx) != code || idx < 0 || idx >= len(e.Classes) {
			return nil, errors.NewValidationError("codes", "unknown encoding", code)
		}
		values[i] = e.Classes[idx]
	}
	return values, nil
}
