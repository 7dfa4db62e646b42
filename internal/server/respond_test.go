package server

import (
	"bytes"
	"strings"
	"testing"
)

// TestWriteResponse は応答の書き出し形式をテストする
func TestWriteResponse(t *testing.T) {
	var buf bytes.Buffer
	err := WriteResponse(&buf, &Response{
		Code: 200,
		Headers: []Header{
			{Name: "Content-Type", Value: "text/html"},
			{Name: "X-Kura", Value: "1"},
		},
		Body: []byte("<p>ok</p>"),
	})
	if err != nil {
		t.Fatalf("書き出しに失敗しました: %v", err)
	}

	want := "HTTP/1.1 200 OK\r\nContent-Type: text/html\r\nX-Kura: 1\r\n\r\n<p>ok</p>"
	if buf.String() != want {
		t.Errorf("応答が一致しません:\ngot  %q\nwant %q", buf.String(), want)
	}
}

// TestWriteResponseRawHeader はCGIヘッダーブロックの転送をテストする
func TestWriteResponseRawHeader(t *testing.T) {
	var buf bytes.Buffer
	err := WriteResponse(&buf, &Response{
		Code:      200,
		RawHeader: "Content-Type: text/plain\r\nX-Powered-By: stub\r\n",
		Body:      []byte("hello"),
	})
	if err != nil {
		t.Fatalf("書き出しに失敗しました: %v", err)
	}

	want := "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nX-Powered-By: stub\r\n\r\nhello"
	if buf.String() != want {
		t.Errorf("応答が一致しません:\ngot  %q\nwant %q", buf.String(), want)
	}
}

// TestWriteResponseUnknownCode は対応表に無いコードが何も出力しないことをテストする
func TestWriteResponseUnknownCode(t *testing.T) {
	for _, code := range []int{0, 201, 302, 999} {
		var buf bytes.Buffer
		if err := WriteResponse(&buf, &Response{Code: code, Body: []byte("x")}); err != nil {
			t.Errorf("コード %d でエラーが返されました: %v", code, err)
		}
		if buf.Len() != 0 {
			t.Errorf("コード %d で出力がありました: %q", code, buf.String())
		}
	}
}

// TestWriteError はエラー応答の本文をテストする
func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteError(&buf, 404); err != nil {
		t.Fatalf("書き出しに失敗しました: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "HTTP/1.1 404 Not Found\r\n") {
		t.Errorf("ステータスラインが不正: %q", out)
	}
	if !strings.Contains(out, "Content-Type: text/html\r\n") {
		t.Error("Content-Type が不正です")
	}
	wantBody := "<html><head><title>404 Not Found</title></head><body><h1>404 Not Found</h1></body></html>"
	if !strings.HasSuffix(out, "\r\n\r\n"+wantBody) {
		t.Errorf("本文が不正: %q", out)
	}
}

// TestWriteErrorUnknownCode は対応表に無いコードのエラー応答が無出力なことをテストする
func TestWriteErrorUnknownCode(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteError(&buf, 999); err != nil {
		t.Errorf("エラーが返されました: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("出力がありました: %q", buf.String())
	}
}

// TestReasonTable は理由句の対応表をテストする
func TestReasonTable(t *testing.T) {
	want := map[int]string{
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
	if len(reasons) != len(want) {
		t.Errorf("対応表の要素数が不正: %d", len(reasons))
	}
	for code, phrase := range want {
		if reasons[code] != phrase {
			t.Errorf("コード %d の理由句が不正: %q", code, reasons[code])
		}
	}
}
