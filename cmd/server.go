// Package main はKuraサーバーコマンドの実装です
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"kura/internal/config"
	"kura/internal/server"
)

func main() {
	// コマンドラインオプション
	var (
		host       = flag.String("host", "", "リッスンするホスト (デフォルト: 0.0.0.0)")
		port       = flag.Int("p", 0, "リッスンするポート (デフォルト: 8080)")
		confPath   = flag.String("c", "", "設定ファイル (YAML) のパス")
		concurrent = flag.Bool("concurrent", false, "接続ごとにゴルーチンで処理する")
		help       = flag.Bool("h", false, "ヘルプを表示")
	)

	flag.Parse()

	// ヘルプ表示
	if *help {
		fmt.Println("Kura")
		fmt.Println()
		fmt.Println("使用方法:")
		fmt.Println("  server [オプション] /path/to/root")
		fmt.Println()
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	// 設定を読み込む
	var (
		cfg *config.Config
		err error
	)
	if *confPath != "" {
		cfg, err = config.LoadFile(*confPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// コマンドラインオプションで設定を上書き
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if root := flag.Arg(0); root != "" {
		cfg.Server.Root = root
	}
	if *concurrent {
		cfg.Server.Concurrent = true
	}

	// 設定の検証とルートの正規化
	if err := cfg.Validate(); err != nil {
		log.Fatalf("設定の検証に失敗しました: %v", err)
	}
	if err := cfg.NormalizeRoot(); err != nil {
		log.Fatalf("ルートの正規化に失敗しました: %v", err)
	}

	// サーバーを作成して起動
	srv := server.New(cfg)
	log.Printf("Kura サーバーを起動します: %s", cfg.ServerAddress())
	if err := srv.Start(context.Background()); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
