package resource

import "strings"

// EscapeHTML は文字列をHTML用にエスケープする。
//
// & " ' < > を名前付きエンティティに変換し、それ以外の文字は
// そのまま通過させる。べき等ではない（エスケープ済みの文字列を
// もう一度通すと、導入された & が再度エスケープされる）
func EscapeHTML(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			b.WriteString("&amp;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#039;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
