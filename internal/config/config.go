package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server Server `yaml:"server"`
	Limits Limits `yaml:"limits"`
	Script Script `yaml:"script"`
}

// Server はHTTPサーバーの設定
type Server struct {
	Host string `yaml:"host"` // リッスンするホスト
	Port int    `yaml:"port"` // リッスンするポート番号
	Root string `yaml:"root"` // 配信ルートディレクトリ

	// true の場合は接続ごとにゴルーチンを起こす。
	// デフォルトは逐次処理（1接続を処理し終えるまで次をacceptしない）
	Concurrent bool `yaml:"concurrent"`
}

// Limits はリクエストのサイズ上限
// Apache の LimitRequest* ディレクティブに準拠した既定値を持つ
// http://httpd.apache.org/docs/2.2/mod/core.html
type Limits struct {
	RequestLine      int `yaml:"request_line"`       // リクエストラインの最大バイト数（CRLF含む）
	RequestFields    int `yaml:"request_fields"`     // ヘッダーフィールドの最大本数
	RequestFieldSize int `yaml:"request_field_size"` // 1フィールドの最大バイト数（CRLF含む）
}

// Script はCGIスクリプト実行の設定
type Script struct {
	Interpreter string `yaml:"interpreter"` // インタプリタのコマンド名（例: php-cgi）
}

// Load は設定を読み込む
// デフォルト値に環境変数による上書きを重ねて返す
func Load() (*Config, error) {
	cfg := &Config{
		Server: Server{
			Host:       getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			Port:       getEnvAsIntOrDefault("PORT", 8080),
			Root:       os.Getenv("SERVER_ROOT"),
			Concurrent: false,
		},
		Limits: Limits{
			RequestLine:      8190,
			RequestFields:    50,
			RequestFieldSize: 4094,
		},
		Script: Script{
			Interpreter: getEnvOrDefault("SCRIPT_INTERPRETER", "php-cgi"),
		},
	}
	return cfg, nil
}

// LoadFile はYAMLファイルから設定を読み込む
// ファイルに無い項目は Load と同じデフォルト値が使われる
func LoadFile(path string) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("設定ファイルの解析に失敗: %w", err)
	}
	return cfg, nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}
	if c.Server.Root == "" {
		return fmt.Errorf("ルートディレクトリが指定されていません")
	}
	if c.Limits.RequestLine <= 0 || c.Limits.RequestFields <= 0 || c.Limits.RequestFieldSize <= 0 {
		return fmt.Errorf("リクエスト上限は正の値でなければなりません")
	}
	if c.Script.Interpreter == "" {
		return fmt.Errorf("スクリプトインタプリタが指定されていません")
	}
	return nil
}

// NormalizeRoot はルートディレクトリを絶対パスに正規化する
// シンボリックリンクを解決し、末尾のスラッシュを取り除く
func (c *Config) NormalizeRoot() error {
	abs, err := filepath.Abs(c.Server.Root)
	if err != nil {
		return fmt.Errorf("ルートの正規化に失敗: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return fmt.Errorf("ルートの解決に失敗: %w", err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return fmt.Errorf("ルートの確認に失敗: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("ルートがディレクトリではありません: %s", resolved)
	}
	c.Server.Root = strings.TrimRight(resolved, "/")
	if c.Server.Root == "" {
		c.Server.Root = "/"
	}
	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// getEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は環境変数を整数として取得し、設定されていない場合はデフォルト値を返す
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intVal int
		if _, err := fmt.Sscanf(value, "%d", &intVal); err == nil {
			return intVal
		}
	}
	return defaultValue
}
