package message

import (
	"bytes"
	"fmt"
	"io"

	"kura/internal/config"
)

// readChunkSize は1回のReadで読み取る最大バイト数
const readChunkSize = 512

var headerEnd = []byte("\r\n\r\n")

// ReadHeaderBlock は接続からHTTPリクエストのヘッダーブロックを読み取る。
//
// 空行（\r\n\r\n）が現れるまでバイト列を蓄積し、最後のヘッダー行を閉じる
// CRLFの直後でブロックを切り詰めて返す。読み取りエラー、終端が現れる前の
// ストリーム終了、サイズ上限の超過はすべてエラーとなり、呼び出し側は
// 応答を書かずに接続を閉じなければならない。
func ReadHeaderBlock(r io.Reader, lim config.Limits) ([]byte, error) {
	maxTotal := lim.RequestLine + lim.RequestFields*lim.RequestFieldSize + 4

	var buf []byte
	chunk := make([]byte, readChunkSize)
	for len(buf) < maxTotal {
		n, err := r.Read(chunk)
		if n > 0 {
			prev := len(buf)
			buf = append(buf, chunk[:n]...)

			// 終端がチャンク境界をまたぐ場合に備えて3バイト戻って探す
			start := prev - 3
			if start < 0 {
				start = 0
			}
			if idx := bytes.Index(buf[start:], headerEnd); idx >= 0 {
				return validateBlock(buf[:start+idx+2], lim)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("リクエストの読み取りに失敗: %w", err)
		}
	}
	return nil, fmt.Errorf("リクエストが大きすぎます（上限 %d バイト）", maxTotal)
}

// validateBlock は切り出したヘッダーブロックにサイズ上限を適用する
func validateBlock(block []byte, lim config.Limits) ([]byte, error) {
	// リクエストラインの検証（CRLFを含めた長さ）
	lineEnd := bytes.Index(block, []byte("\r\n"))
	if lineEnd < 0 || lineEnd+2 > lim.RequestLine {
		return nil, fmt.Errorf("リクエストラインが長すぎます")
	}

	// 各ヘッダーフィールドの検証
	fields := 0
	rest := block[lineEnd+2:]
	for len(rest) > 0 {
		end := bytes.Index(rest, []byte("\r\n"))
		if end < 0 {
			return nil, fmt.Errorf("ヘッダーフィールドが不完全です")
		}
		if end+2 > lim.RequestFieldSize {
			return nil, fmt.Errorf("ヘッダーフィールドが長すぎます")
		}
		fields++
		rest = rest[end+2:]
	}
	if fields > lim.RequestFields {
		return nil, fmt.Errorf("ヘッダーフィールドが多すぎます（%d 本）", fields)
	}

	return block, nil
}
