package filesystem

import (
	"fmt"
	"os"

	"CueFix/internal/domain/model"
)

// InspectSiblings は dir の直下（非再帰）に flac / ape 拡張子のエントリがあるかを調べます
func InspectSiblings(dir string) (model.Siblings, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return model.Siblings{}, fmt.Errorf("ディレクトリ '%s' の一覧取得に失敗しました: %w", dir, err)
	}

	var s model.Siblings
	for _, entry := range entries {
		switch Extension(entry.Name()) {
		case model.FormatFLAC.Extension():
			s.HasFLAC = true
		case model.FormatAPE.Extension():
			s.HasAPE = true
		}
	}
	return s, nil
}
