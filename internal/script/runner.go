// Package script は、外部インタプリタによるCGIスクリプトの実行を担当します。
//
// サブプロセスはシェルを介さず引数ベクタで起動し、リクエストのメタデータは
// CGI規約の環境変数として渡します。インタプリタの標準出力はヘッダーブロックと
// 本文に分割されます。
package script

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrNoBoundary はインタプリタ出力にヘッダーと本文の境界が無いことを表す
var ErrNoBoundary = errors.New("インタプリタ出力にヘッダー境界がありません")

// Output はインタプリタの出力をヘッダーブロックと本文に分けたもの
type Output struct {
	Header string // 最後のヘッダー行を閉じるCRLFまでのヘッダーブロック
	Body   []byte // 境界以降の本文
}

// Runner はCGIスクリプトの実行器
type Runner struct {
	Interpreter string // インタプリタのコマンド名（例: php-cgi）
}

// New は新しいRunnerを作成する
func New(interpreter string) *Runner {
	return &Runner{Interpreter: interpreter}
}

// Run はスクリプトをインタプリタで実行し、CGI形式の出力を分割して返す。
//
// サブプロセスには QUERY_STRING、REDIRECT_STATUS、SCRIPT_FILENAME を
// 環境変数として渡す。スクリプトが読み取れない場合は fs.ErrPermission を
// 包んだエラーを、境界が無い出力には ErrNoBoundary を返す
func (r *Runner) Run(scriptPath, query string) (*Output, error) {
	// スクリプト自体が読み取り可能であることを先に確認する
	f, err := os.Open(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("スクリプトを開けません: %w", err)
	}
	f.Close()

	cmd := exec.Command(r.Interpreter)
	cmd.Env = append(os.Environ(),
		"QUERY_STRING="+query,
		"REDIRECT_STATUS=200",
		"SCRIPT_FILENAME="+scriptPath,
	)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("インタプリタの起動に失敗: %w", err)
	}
	// 成否は終了コードではなく出力の境界で判定する
	_ = cmd.Wait()

	out := stdout.Bytes()
	boundary := bytes.Index(out, []byte("\r\n\r\n"))
	if boundary < 0 {
		return nil, ErrNoBoundary
	}
	return &Output{
		Header: string(out[:boundary+2]),
		Body:   out[boundary+4:],
	}, nil
}
