package resource

import (
	"os"
	"path/filepath"
	"testing"
)

// makeRoot はテスト用のルートディレクトリを組み立てる
func makeRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"index.html":         "<h1>top</h1>",
		"style.css":          "body {}",
		"style.xyz":          "unknown",
		"app.php":            "<?php echo 'hi'; ?>",
		"sub/page.html":      "<p>sub</p>",
		"withphp/index.php":  "<?php ?>",
		"withphp/index.html": "<p>unused</p>",
		"plain/a.txt":        "text",
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
		t.Fatal(err)
	}

	// ルートを正規化（/tmp がシンボリックリンクの環境でもStatの結果と揃える）
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatal(err)
	}
	return resolved
}

// TestResolve はパス解決の分類をテストする
func TestResolve(t *testing.T) {
	root := makeRoot(t)

	testCases := []struct {
		name     string
		path     string // デコード済みパス（rawと同一とする）
		wantKind Kind
		wantMIME string
	}{
		{
			name:     "通常ファイル",
			path:     "/style.css",
			wantKind: KindFile,
			wantMIME: "text/css",
		},
		{
			name:     "PHPスクリプト",
			path:     "/app.php",
			wantKind: KindFile,
			wantMIME: "text/x-php",
		},
		{
			name:     "存在しないパス",
			path:     "/missing.txt",
			wantKind: KindMissing,
		},
		{
			name:     "未対応の拡張子",
			path:     "/style.xyz",
			wantKind: KindUnsupported,
		},
		{
			name:     "末尾スラッシュの無いディレクトリ",
			path:     "/sub",
			wantKind: KindRedirect,
		},
		{
			name:     "インデックスの無いディレクトリは一覧",
			path:     "/empty/",
			wantKind: KindListing,
		},
		{
			name:     "ファイルに末尾スラッシュが付くと存在しない扱い",
			path:     "/index.html/",
			wantKind: KindMissing,
		},
		{
			name:     "ルート直下のインデックス代替",
			path:     "/",
			wantKind: KindFile,
			wantMIME: "text/html",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Resolve(root, tc.path, tc.path)
			if res.Kind != tc.wantKind {
				t.Fatalf("分類が不正: got %v, want %v", res.Kind, tc.wantKind)
			}
			if tc.wantMIME != "" && res.MIME != tc.wantMIME {
				t.Errorf("MIMEタイプが不正: got %q, want %q", res.MIME, tc.wantMIME)
			}
		})
	}
}

// TestResolveIndexOrder は index.php が index.html より優先されることをテストする
func TestResolveIndexOrder(t *testing.T) {
	root := makeRoot(t)

	res := Resolve(root, "/withphp/", "/withphp/")
	if res.Kind != KindFile {
		t.Fatalf("分類が不正: %v", res.Kind)
	}
	if filepath.Base(res.Path) != "index.php" {
		t.Errorf("index.php が優先されていません: %s", res.Path)
	}
	if res.MIME != MIMETypePHP {
		t.Errorf("MIMEタイプが不正: %s", res.MIME)
	}
}

// TestResolveTraversal はルート外に出るパスが存在しない扱いになることをテストする
func TestResolveTraversal(t *testing.T) {
	root := makeRoot(t)

	for _, path := range []string{"/../etc/passwd", "/sub/../../escape.html", "/.."} {
		res := Resolve(root, path, path)
		if res.Kind != KindMissing {
			t.Errorf("%s がルート外に解決されています: %v", path, res.Kind)
		}
	}

	// ルート内に収まる .. は通常どおり解決される
	res := Resolve(root, "/sub/../index.html", "/sub/../index.html")
	if res.Kind != KindFile {
		t.Errorf("ルート内の .. が解決できません: %v", res.Kind)
	}
}

// TestLookupMIME は拡張子の対応表をテストする
func TestLookupMIME(t *testing.T) {
	testCases := []struct {
		path string
		want string
		ok   bool
	}{
		{path: "/a.css", want: "text/css", ok: true},
		{path: "/a.html", want: "text/html", ok: true},
		{path: "/a.gif", want: "image/gif", ok: true},
		{path: "/a.ico", want: "image/x-ico", ok: true},
		{path: "/a.jpg", want: "image/jpeg", ok: true},
		{path: "/a.js", want: "text/javascript", ok: true},
		{path: "/a.php", want: "text/x-php", ok: true},
		{path: "/a.png", want: "image/png", ok: true},
		{path: "/a.HTML", want: "text/html", ok: true}, // 大文字小文字は区別しない
		{path: "/a.txt", ok: false},
		{path: "/noext", ok: false},
	}

	for _, tc := range testCases {
		got, ok := LookupMIME(tc.path)
		if ok != tc.ok {
			t.Errorf("%s: ok が不正: got %v", tc.path, ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.path, got, tc.want)
		}
	}
}
