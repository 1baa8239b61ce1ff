// Package rewrite は .cue ファイル内の .wav 参照の書き換えを提供します
package rewrite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"CueFix/internal/domain/model"
	"CueFix/internal/infrastructure/filesystem"
	"CueFix/internal/infrastructure/textenc"
)

// Reporter は処理の進捗を受け取るインターフェースです
type Reporter interface {
	Decoded(path string, enc model.Encoding)
	Result(res model.Result)
}

// Rewriter は1ファイルずつ読み込み、置換し、変更があった場合のみ書き戻します
type Rewriter struct {
	reporter Reporter
}

// NewRewriter は新しい Rewriter を作成します
func NewRewriter(reporter Reporter) *Rewriter {
	return &Rewriter{reporter: reporter}
}

// Process は path のファイルを処理します。
// 同じディレクトリに flac があれば ".wav" を ".flac" に、なければ ape があれば ".ape" に置換します。
// 内容が変わった場合のみUTF-8で書き戻します。
func (r *Rewriter) Process(path string) (model.Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return model.Result{}, fmt.Errorf("ファイル '%s' の読み込みに失敗しました: %w", path, err)
	}

	text, enc := textenc.Decode(content)
	r.reporter.Decoded(path, enc)

	siblings, err := filesystem.InspectSiblings(filepath.Dir(path))
	if err != nil {
		return model.Result{}, err
	}

	res := model.Result{
		Path:     path,
		Encoding: enc,
		Format:   siblings.Target(),
	}

	newText, count := Replace(text, res.Format)
	if newText != text {
		// 元のエンコーディングに関係なくUTF-8で書き戻す
		if err := os.WriteFile(path, textenc.EncodeUTF8(newText), 0644); err != nil {
			return model.Result{}, fmt.Errorf("ファイル '%s' の書き込みに失敗しました: %w", path, err)
		}
		res.Replacements = count
		res.Written = true
	}

	r.reporter.Result(res)
	return res, nil
}

// Visit は filesystem.FileFunc として使える形で Process を呼び出します
func (r *Rewriter) Visit(path string) error {
	_, err := r.Process(path)
	return err
}

// Replace は text 内のすべての ".wav" を format の拡張子に置換し、置換数とともに返します。
// format が FormatNone の場合は text をそのまま返します。
func Replace(text string, format model.AudioFormat) (string, int) {
	if format == model.FormatNone {
		return text, 0
	}
	count := strings.Count(text, model.WavReference)
	if count == 0 {
		return text, 0
	}
	return strings.ReplaceAll(text, model.WavReference, format.Suffix()), count
}
