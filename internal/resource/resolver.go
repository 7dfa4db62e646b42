package resource

import (
	"os"
	"path/filepath"
	"strings"
)

// Kind は解決結果の分類を表す
type Kind int

const (
	KindFile        Kind = iota // 通常ファイル（インデックス代替を含む）
	KindRedirect                // 末尾スラッシュの無いディレクトリ（301リダイレクト）
	KindListing                 // 一覧表示するディレクトリ
	KindMissing                 // 存在しないパス（404）
	KindUnsupported             // 未対応の拡張子（501）
)

// Resolution は解決されたリソースを表す
type Resolution struct {
	Kind     Kind
	Path     string // 実際に読み取るファイルシステム上のパス
	Relative string // ルートからの相対パス（一覧表示のタイトル用）
	MIME     string // KindFile の場合のContent-Type
}

// Resolve はデコード済みパスをサーバールート配下のリソースに解決する。
//
// rawPath は受信したままの（デコード前の）パスで、ディレクトリの
// 末尾スラッシュ判定に使われる。連結後のパスは正規化され、ルートの外に
// 出るものは存在しない扱いになる。
func Resolve(root, decodedPath, rawPath string) Resolution {
	fsPath := filepath.Clean(root + decodedPath)
	prefix := root
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	if fsPath != root && !strings.HasPrefix(fsPath, prefix) {
		return Resolution{Kind: KindMissing}
	}

	info, err := os.Stat(fsPath)
	if err != nil {
		return Resolution{Kind: KindMissing}
	}

	// ファイルに末尾スラッシュが付いたパスは存在しない扱い
	if !info.IsDir() && strings.HasSuffix(decodedPath, "/") {
		return Resolution{Kind: KindMissing}
	}

	if info.IsDir() {
		// 末尾スラッシュが無ければリダイレクトが必要
		if !strings.HasSuffix(rawPath, "/") {
			return Resolution{Kind: KindRedirect, Path: fsPath}
		}

		// index.php、index.html の順で代替ファイルを探す
		index, ok := indexFile(fsPath)
		if !ok {
			return Resolution{Kind: KindListing, Path: fsPath, Relative: decodedPath}
		}
		fsPath = index
	}

	mime, ok := LookupMIME(fsPath)
	if !ok {
		return Resolution{Kind: KindUnsupported, Path: fsPath}
	}
	return Resolution{Kind: KindFile, Path: fsPath, MIME: mime}
}

// indexFile はディレクトリ内のインデックスファイルを探す
func indexFile(dir string) (string, bool) {
	for _, name := range []string{"index.php", "index.html"} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}
