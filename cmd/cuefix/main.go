// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"log"
	"os"

	"CueFix/internal/infrastructure/filesystem"
	"CueFix/internal/infrastructure/logging"
	"CueFix/internal/usecase/report"
	"CueFix/internal/usecase/rewrite"
)

func main() {
	// 進捗は標準出力、失敗は標準エラー出力
	logger := logging.NewJSONLogger(os.Stderr)
	reporter := report.NewReporter(os.Stdout)

	walker := filesystem.NewWalker(logger)
	rewriter := rewrite.NewRewriter(reporter)

	root, err := os.Getwd()
	if err != nil {
		logger.Log(logging.LevelError, "カレントディレクトリの取得に失敗", err)
		log.Fatalf("エラー: %v", err)
	}

	if err := walker.ValidateDirectoryPath(root); err != nil {
		logger.Log(logging.LevelError, "ルートディレクトリが無効です", err)
		log.Fatalf("エラー: %v", err)
	}

	reporter.Searching(root)

	if err := walker.Walk(root, rewriter.Visit); err != nil {
		logger.Log(logging.LevelError, "ディレクトリの走査に失敗", err)
		log.Fatalf("エラー: %v", err)
	}
}
