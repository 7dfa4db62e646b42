// Package server は、接続の受け付けとHTTPリクエストの処理を管理します。
//
// このパッケージは、リッスンソケットの管理、接続ごとの処理パイプライン
// （フレーミング→解析→デコード→解決→応答）、および応答の書き出しを
// 担当します。
//
// 責務:
//   - リッスンソケットの作成とシャットダウン
//   - 逐次的な接続の受け付け（設定により接続ごとのゴルーチンも可）
//   - 静的ファイル転送・ディレクトリ一覧・CGI実行・リダイレクトの振り分け
//   - ステータスラインのログ出力
//
// 仕様:
//   - キープアライブは無し。1接続につき1応答で必ず切断する
//   - フレーミング失敗は応答を書かずに切断する
//   - ステータスコードは閉じた対応表にあるものだけが出力される
package server
