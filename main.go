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

const usage = "使い方: kura [-p port] /path/to/root"

func main() {
	// コマンドラインオプション
	port := flag.Int("p", 0, "リッスンするポート番号 (デフォルト: 8080)")
	help := flag.Bool("h", false, "使い方を表示")
	flag.Parse()

	if *help {
		fmt.Println(usage)
		os.Exit(0)
	}

	// ルートディレクトリは必須の位置引数
	root := flag.Arg(0)
	if root == "" {
		fmt.Println(usage)
		os.Exit(2)
	}

	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}
	cfg.Server.Root = root
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// 設定の検証とルートの正規化
	if err := cfg.Validate(); err != nil {
		fmt.Println(usage)
		os.Exit(2)
	}
	if err := cfg.NormalizeRoot(); err != nil {
		fmt.Println(usage)
		os.Exit(2)
	}

	// サーバーを作成して起動
	srv := server.New(cfg)
	if err := srv.Start(context.Background()); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
