package server

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
)

// reasons はステータスコードと理由句の閉じた対応表
// ここに無いコードで応答が構築されることはない
// http://www.w3.org/Protocols/rfc2616/rfc2616-sec6.html#sec6
// https://tools.ietf.org/html/rfc2324
var reasons = map[int]string{
	200: "OK",
	301: "Moved Permanently",
	400: "Bad Request",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	414: "Request-URI Too Long",
	418: "I'm a teapot",
	500: "Internal Server Error",
	501: "Not Implemented",
	505: "HTTP Version Not Supported",
}

// Header は出力順を保持するヘッダーの名前と値の組
type Header struct {
	Name  string
	Value string
}

// Response は送信する1つのHTTP応答を表す
type Response struct {
	Code      int      // 対応表にあるステータスコード
	Headers   []Header // 順序どおりに書き出されるヘッダー
	RawHeader string   // CGI出力のヘッダーブロックをそのまま転送する場合に使う
	Body      []byte   // 本文
}

var (
	statusOK = color.New(color.FgGreen)
	statusNG = color.New(color.FgYellow)
)

// WriteResponse は応答をステータスライン・ヘッダー・空行・本文の順に書き出す。
//
// 対応表に無いステータスコードの場合は何も出力せずに戻る。
// 書き終えた応答はステータスラインを1行でログに残す
func WriteResponse(w io.Writer, res *Response) error {
	phrase, ok := reasons[res.Code]
	if !ok {
		return nil
	}

	if _, err := fmt.Fprintf(w, "HTTP/1.1 %d %s\r\n", res.Code, phrase); err != nil {
		return err
	}
	for _, h := range res.Headers {
		if _, err := fmt.Fprintf(w, "%s: %s\r\n", h.Name, h.Value); err != nil {
			return err
		}
	}
	if res.RawHeader != "" {
		if _, err := io.WriteString(w, res.RawHeader); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\r\n"); err != nil {
		return err
	}
	if len(res.Body) > 0 {
		if _, err := w.Write(res.Body); err != nil {
			return err
		}
	}

	logStatusLine(res.Code, phrase)
	return nil
}

// WriteError は最小のHTML本文を持つエラー応答を書き出す
func WriteError(w io.Writer, code int) error {
	phrase, ok := reasons[code]
	if !ok {
		return nil
	}
	body := fmt.Sprintf("<html><head><title>%d %s</title></head><body><h1>%d %s</h1></body></html>",
		code, phrase, code, phrase)
	return WriteResponse(w, &Response{
		Code:    code,
		Headers: []Header{{Name: "Content-Type", Value: "text/html"}},
		Body:    []byte(body),
	})
}

// logStatusLine は完了した応答のステータスラインを色付きでログに残す
// 200は緑、それ以外は黄色で表示する
func logStatusLine(code int, phrase string) {
	c := statusNG
	if code == 200 {
		c = statusOK
	}
	log.Printf("%s", c.Sprintf("HTTP/1.1 %d %s", code, phrase))
}
