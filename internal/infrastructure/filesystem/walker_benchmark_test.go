package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"CueFix/internal/infrastructure/logging"
)

// setupBenchmarkDir はベンチマーク用のディレクトリ構造を作成します
func setupBenchmarkDir(tb testing.TB, depth, filesPerDir, dirsPerDir int) string {
	tb.Helper()
	tempDir := tb.TempDir()
	createDirContents(tb, tempDir, depth, filesPerDir, dirsPerDir)
	return tempDir
}

func createDirContents(tb testing.TB, currentPath string, depth, filesPerDir, dirsPerDir int) {
	tb.Helper()
	if depth <= 0 {
		return
	}

	for i := 0; i < filesPerDir; i++ {
		ext := "cue"
		if i%2 == 1 {
			ext = "flac"
		}
		fileName := filepath.Join(currentPath, fmt.Sprintf("file_%d_%d.%s", depth, i, ext))
		if err := os.WriteFile(fileName, []byte(`FILE "a.wav" WAVE`), 0644); err != nil {
			tb.Fatalf("Failed to write file %s: %v", fileName, err)
		}
	}

	for i := 0; i < dirsPerDir; i++ {
		subDir := filepath.Join(currentPath, fmt.Sprintf("subdir_%d_%d", depth, i))
		if err := os.Mkdir(subDir, 0755); err != nil {
			tb.Fatalf("Failed to create subdir %s: %v", subDir, err)
		}
		createDirContents(tb, subDir, depth-1, filesPerDir, dirsPerDir)
	}
}

// BenchmarkWalker_Walk はファイル処理を除いた走査のみを計測します
func BenchmarkWalker_Walk(b *testing.B) {
	walker := NewWalker(logging.NewJSONLogger(io.Discard))
	tempDir := setupBenchmarkDir(b, 3, 5, 2)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if err := walker.Walk(tempDir, func(string) error { return nil }); err != nil {
			b.Fatalf("Walk failed during benchmark: %v", err)
		}
	}
}

func BenchmarkInspectSiblings(b *testing.B) {
	tempDir := setupBenchmarkDir(b, 1, 50, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := InspectSiblings(tempDir); err != nil {
			b.Fatalf("InspectSiblings failed: %v", err)
		}
	}
}
