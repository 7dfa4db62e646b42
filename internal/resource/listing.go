package resource

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// RenderListing はディレクトリの内容をHTMLページとして描画する。
//
// エントリは辞書順に並び、自身（.）は含まれず、親（..）は含まれる。
// 各エントリ名はエスケープしてからリンク先とリンクテキストの両方に使う。
// relPath はページのタイトルと見出しになる。
func RenderListing(dir, relPath string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("ディレクトリの読み取りに失敗: %w", err)
	}

	// os.ReadDir は . と .. を返さないため、親エントリを足してから並べ直す
	names := make([]string, 0, len(entries)+1)
	names = append(names, "..")
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var items strings.Builder
	for _, name := range names {
		escaped := EscapeHTML(name)
		fmt.Fprintf(&items, `<li><a href="%s">%s</a></li>`, escaped, escaped)
	}

	var page strings.Builder
	fmt.Fprintf(&page, "<html><head><title>%s</title></head><body><h1>%s</h1><ul>%s</ul></body></html>",
		relPath, relPath, items.String())
	return page.String(), nil
}
