// Package filesystem はディレクトリ走査と兄弟ファイルの検査を提供します
package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"CueFix/internal/domain/model"
	"CueFix/internal/infrastructure/logging"
)

// FileFunc は対象ファイルごとに呼び出される処理です
type FileFunc func(path string) error

// Walker はディレクトリツリーを再帰的に走査し、対象拡張子のファイルを処理します
type Walker struct {
	logger    logging.Logger
	extension string
}

// NewWalker は .cue ファイルを対象とする Walker を作成します
func NewWalker(logger logging.Logger) *Walker {
	return &Walker{
		logger:    logger,
		extension: model.TargetExtension,
	}
}

// ValidateDirectoryPath はパスが有効な絶対パスのディレクトリであることを確認します
func (w *Walker) ValidateDirectoryPath(path string) error {
	if path == "" {
		return fmt.Errorf("ディレクトリパスが指定されていません")
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("ディレクトリが存在しません: %w", err)
	}

	if !fileInfo.IsDir() {
		return fmt.Errorf("指定されたパスはディレクトリではありません: %s", path)
	}

	if !filepath.IsAbs(path) {
		return fmt.Errorf("絶対パスで指定してください: %s", path)
	}

	return nil
}

// Walk は root 以下を深さ優先（行きがけ順）で走査し、対象ファイルごとに fn を呼び出します。
// ディレクトリの読み込みに失敗した場合は走査を中断してエラーを返します。
// fn のエラーはログに記録し、走査を継続します。
// root がディレクトリでない場合は何もしません。
// ディレクトリへのシンボリックリンクはたどるため、循環するリンクがないことを前提とします。
func (w *Walker) Walk(root string, fn FileFunc) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil
	}
	return w.walkDir(root, fn)
}

func (w *Walker) walkDir(dir string, fn FileFunc) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("ディレクトリ '%s' の読み込みに失敗しました: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if isDir(path, entry) {
			if err := w.walkDir(path, fn); err != nil {
				return err
			}
			continue
		}

		if Extension(entry.Name()) != w.extension {
			continue
		}

		if err := fn(path); err != nil {
			w.logger.LogFile(logging.LevelError, path, fmt.Sprintf("Failed to process file %s", path), err)
		}
	}

	return nil
}

// isDir はシンボリックリンクをたどってディレクトリかどうかを判定します。
// リンク切れはファイルとして扱います
func isDir(path string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Extension は最後のドット以降の拡張子をドットなしで返します。
// 先頭のドットしか持たない名前（".cue" など）は拡張子なしとして扱います。
func Extension(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return ""
	}
	return name[idx+1:]
}
