package message

import "strings"

// Decode はパス文字列のパーセントエンコードをデコードする。
//
// %XY（16進数2桁）はその値のバイトに、+ は空白に変換され、
// それ以外の文字はそのまま通過する。末尾の % に2文字が続かない場合や
// 16進数でない場合は変換せずそのまま残す。入力の終端を越えて読むことはない。
// https://www.ietf.org/rfc/rfc3986.txt
func Decode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]):
			b.WriteByte(hexValue(s[i+1])<<4 | hexValue(s[i+2]))
			i += 2
		case s[i] == '+':
			b.WriteByte(' ')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
