// Package resource は、リクエストパスのファイルシステムへの解決を担当します。
//
// デコード済みのパスをサーバールート配下のファイル・ディレクトリに対応づけ、
// 静的転送・インデックス代替・一覧表示・リダイレクトのいずれに進むかを
// 分類します。ディレクトリ一覧のHTML描画とそのエスケープ処理も持ちます。
//
// 仕様:
//   - MIMEタイプは固定の対応表による拡張子引きで、未対応の拡張子は501
//   - ルートの外に出るパスは存在しないもの（404）として扱う
//   - ディレクトリの一覧には親エントリ（..）を含み、自身（.）は含まない
package resource
