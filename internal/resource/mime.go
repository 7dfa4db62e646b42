package resource

import (
	"path/filepath"
	"strings"
)

// MIMETypePHP はスクリプト実行に回されるMIMEタイプ
const MIMETypePHP = "text/x-php"

// mimeTypes は対応する拡張子とContent-Typeの固定対応表
var mimeTypes = map[string]string{
	".css":  "text/css",
	".html": "text/html",
	".gif":  "image/gif",
	".ico":  "image/x-ico",
	".jpg":  "image/jpeg",
	".js":   "text/javascript",
	".php":  MIMETypePHP,
	".png":  "image/png",
}

// LookupMIME はパスの拡張子からMIMEタイプを調べる。
// 拡張子の大文字小文字は区別しない。拡張子が無いか未対応の場合は false を返す
func LookupMIME(path string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "", false
	}
	mime, ok := mimeTypes[ext]
	return mime, ok
}
