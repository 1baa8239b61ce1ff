// Package report は標準出力への進捗表示を提供します
package report

import (
	"fmt"
	"io"
	"os"

	"CueFix/internal/domain/model"
)

// Reporter は処理の進捗を人が読める形式で出力します
type Reporter struct {
	writer io.Writer
}

// NewReporter は新しい Reporter を作成します。writer が nil の場合は標準出力を使います
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

// Searching は走査を開始するルートディレクトリを出力します
func (r *Reporter) Searching(root string) {
	fmt.Fprintf(r.writer, "Searching for .%s files in: %s\n", model.TargetExtension, root)
}

// Decoded はファイルのデコードに使用したエンコーディングを出力します
func (r *Reporter) Decoded(path string, enc model.Encoding) {
	fmt.Fprintf(r.writer, "File %s was decoded using %s\n", path, enc)
}

// Replaced は .wav を置換したことを出力します
func (r *Reporter) Replaced(path string, format model.AudioFormat, count int) {
	fmt.Fprintf(r.writer, "Replaced '%s' with '%s' in file: %s (%d occurrences)\n",
		model.WavReference, format.Suffix(), path, count)
}

// Unchanged はファイルを書き換えなかったことを出力します
func (r *Reporter) Unchanged(path string) {
	fmt.Fprintf(r.writer, "No '%s' replacement needed in file: %s\n", model.WavReference, path)
}

// Result は処理結果に応じて Replaced または Unchanged を出力します
func (r *Reporter) Result(res model.Result) {
	if res.Written {
		r.Replaced(res.Path, res.Format, res.Replacements)
		return
	}
	r.Unchanged(res.Path)
}
