package message

import (
	"fmt"
	"strings"
)

// Request は解析済みのHTTPリクエストを表す
// 構文的に完全なヘッダーブロックからのみ生成され、解析後は変更されない
type Request struct {
	Method  string // メソッド（GETのみ）
	Target  string // 受信したままのリクエストターゲット（パス+クエリ）
	Path    string // パーセントエンコードされたままのパス部分
	Query   string // クエリ文字列（無い場合は空文字列）
	Version string // プロトコルバージョン
}

// ProtocolError はHTTPステータスコードを伴うプロトコル違反を表す
type ProtocolError struct {
	Status  int    // 応答すべきステータスコード
	Message string // ログ向けの説明
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s (ステータス %d)", e.Message, e.Status)
}

// ParseRequestLine はヘッダーブロックの先頭行からRequestを生成する。
//
// 最初の空白までがメソッド、最後の空白以降がバージョントークン、
// その間がリクエストターゲットとなる。違反は対応するステータスコードを
// 持つ *ProtocolError として返される。
func ParseRequestLine(line string) (*Request, error) {
	// メソッドの抽出
	first := strings.IndexByte(line, ' ')
	if first < 0 {
		return nil, &ProtocolError{Status: 400, Message: "リクエストラインに空白がありません"}
	}
	method := line[:first]
	if method != "GET" {
		return nil, &ProtocolError{Status: 405, Message: "GET以外のメソッドは扱えません"}
	}

	// ターゲットの抽出（最後の空白まで）
	last := strings.LastIndexByte(line, ' ')
	var target string
	if last > first {
		target = line[first+1 : last]
	}
	if !strings.HasPrefix(target, "/") {
		return nil, &ProtocolError{Status: 501, Message: "ターゲットが / で始まっていません"}
	}
	if strings.Contains(target, `"`) {
		return nil, &ProtocolError{Status: 400, Message: "ターゲットに二重引用符が含まれています"}
	}

	// 行末のCRLF
	crlf := strings.Index(line, "\r\n")
	if crlf < 0 {
		return nil, &ProtocolError{Status: 400, Message: "リクエストラインがCRLFで終わっていません"}
	}

	// バージョントークン（CRLFを含めて厳密に一致すること）
	var version string
	if crlf > last {
		version = line[last+1 : crlf+2]
	}
	if version != "HTTP/1.1\r\n" {
		return nil, &ProtocolError{Status: 505, Message: "HTTP/1.1以外のバージョンは扱えません"}
	}

	// クエリの分離。区切りの ? は行頭から最初に見つかったものを使う
	path, query := target, ""
	if strings.Contains(target, "?") {
		q := strings.IndexByte(line, '?')
		path = line[first+1 : q]
		query = line[q+1 : last]
	}

	return &Request{
		Method:  method,
		Target:  target,
		Path:    path,
		Query:   query,
		Version: "HTTP/1.1",
	}, nil
}
