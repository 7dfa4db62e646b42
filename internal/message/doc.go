// Package message は、HTTP/1.1リクエストの読み取りと解析を担当します。
//
// 接続から生のバイト列を読み取ってヘッダーブロックを切り出し（フレーミング）、
// リクエストラインを解析し、パーセントエンコードされたパスをデコードします。
//
// 責務:
//   - ヘッダーブロックのフレーミングとサイズ上限の強制
//   - リクエストライン（メソッド・ターゲット・バージョン）の解析
//   - パスのパーセントデコード
//
// 仕様:
//   - 対応メソッドはGETのみ、バージョンはHTTP/1.1のみ
//   - ヘッダーフィールドは本数と長さを数えるだけで、個別には解釈しない
//   - フレーミング失敗は応答なしの切断として扱われる（呼び出し側の責務）
package message
