package server

import (
	"bytes"
	"errors"
	"io/fs"
	"log"
	"net"
	"os"
	"strings"

	"kura/internal/message"
	"kura/internal/resource"
)

// handleConn は1つの接続で1リクエストを処理して切断する。
// フレーミングに失敗した場合は応答を書かずに切断する
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	// ヘッダーブロックの切り出し
	block, err := message.ReadHeaderBlock(conn, s.config.Limits)
	if err != nil {
		log.Printf("フレーミングに失敗しました: %v", err)
		return
	}

	// リクエストラインの抽出とログ
	lineEnd := bytes.Index(block, []byte("\r\n"))
	if lineEnd < 0 {
		WriteError(conn, 500)
		return
	}
	line := string(block[:lineEnd+2])
	log.Print(strings.TrimSuffix(line, "\r\n"))

	// リクエストラインの解析
	req, err := message.ParseRequestLine(line)
	if err != nil {
		var perr *message.ProtocolError
		if errors.As(err, &perr) {
			WriteError(conn, perr.Status)
		} else {
			WriteError(conn, 500)
		}
		return
	}

	// パスのデコードとリソースへの解決
	decoded := message.Decode(req.Path)
	res := resource.Resolve(s.config.Server.Root, decoded, req.Path)

	switch res.Kind {
	case resource.KindMissing:
		WriteError(conn, 404)
	case resource.KindUnsupported:
		WriteError(conn, 501)
	case resource.KindRedirect:
		// リダイレクト先は受信したままの（デコード前の）パスにスラッシュを足す
		s.redirect(conn, req.Path+"/")
	case resource.KindListing:
		s.list(conn, res)
	case resource.KindFile:
		if res.MIME == resource.MIMETypePHP {
			s.interpret(conn, res.Path, req.Query)
		} else {
			s.transfer(conn, res.Path, res.MIME)
		}
	}
}

// redirect は301応答を書き出す
func (s *Server) redirect(conn net.Conn, location string) {
	WriteResponse(conn, &Response{
		Code:    301,
		Headers: []Header{{Name: "Location", Value: location}},
	})
}

// transfer は静的ファイルを丸ごと読み込んで応答する
func (s *Server) transfer(conn net.Conn, path, mime string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			WriteError(conn, 403)
		} else {
			WriteError(conn, 500)
		}
		return
	}

	WriteResponse(conn, &Response{
		Code:    200,
		Headers: []Header{{Name: "Content-Type", Value: mime}},
		Body:    data,
	})
}

// list はディレクトリ一覧のHTMLページを応答する
func (s *Server) list(conn net.Conn, res resource.Resolution) {
	page, err := resource.RenderListing(res.Path, res.Relative)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			WriteError(conn, 403)
		} else {
			WriteError(conn, 500)
		}
		return
	}

	WriteResponse(conn, &Response{
		Code:    200,
		Headers: []Header{{Name: "Content-Type", Value: "text/html"}},
		Body:    []byte(page),
	})
}

// interpret はCGIスクリプトを実行し、その出力を応答として転送する
func (s *Server) interpret(conn net.Conn, path, query string) {
	out, err := s.runner.Run(path, query)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			WriteError(conn, 403)
		} else {
			WriteError(conn, 500)
		}
		return
	}

	// インタプリタのヘッダーブロックはそのまま転送する
	WriteResponse(conn, &Response{
		Code:      200,
		RawHeader: out.Header,
		Body:      out.Body,
	})
}
