package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"kura/internal/config"
	"kura/internal/script"
)

// Server は接続の受け付けとリクエスト処理を管理する構造体
type Server struct {
	config   *config.Config
	runner   *script.Runner
	listener net.Listener
}

// New は新しいServerインスタンスを作成する
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
		runner: script.New(cfg.Script.Interpreter),
	}
}

// Listen はリッスンソケットを開き、ルートとポートを告知する
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.config.ServerAddress())
	if err != nil {
		return fmt.Errorf("ポート %d で待ち受けできません: %w", s.config.Server.Port, err)
	}
	s.listener = ln

	announce := color.New(color.FgYellow)
	log.Printf("%s", announce.Sprintf("サーバールートとして %s を使用します", s.config.Server.Root))
	log.Printf("%s", announce.Sprintf("ポート %d で待ち受けています", s.Port()))
	return nil
}

// Addr はリッスン中のアドレスを返す
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Port は実際にリッスンしているポート番号を返す
// ポート0で起動した場合はOSが割り当てた番号になる
func (s *Server) Port() int {
	if addr, ok := s.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return s.config.Server.Port
}

// Start は接続の受け付けを開始し、シグナルかコンテキストの終了まで処理を続ける。
// Listen が先に呼ばれていなければ内部で呼ぶ
func (s *Server) Start(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	// 受け付けループを別ゴルーチンで回す
	doneCh := make(chan error, 1)
	go func() {
		doneCh <- s.serve()
	}()

	// シグナルハンドリング
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	// コンテキストかシグナルを待つ
	select {
	case <-ctx.Done():
		log.Println("コンテキストがキャンセルされました")
	case sig := <-sigCh:
		log.Printf("シグナルを受信しました: %v", sig)
	case err := <-doneCh:
		return err
	}

	return s.Shutdown()
}

// serve は接続を1つずつ受け付けて処理する。
// 1接続を処理し終えるまで次の接続は受け付けない。
// concurrent 設定が有効な場合のみ接続ごとにゴルーチンを起こす
func (s *Server) serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			// シャットダウンによるクローズは正常終了
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("接続の受け付けに失敗: %w", err)
		}

		if s.config.Server.Concurrent {
			go s.handleConn(conn)
		} else {
			s.handleConn(conn)
		}
	}
}

// Shutdown はリッスンソケットを閉じてサーバーを停止する
func (s *Server) Shutdown() error {
	log.Println("サーバーを停止しています...")

	if s.listener != nil {
		if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("リッスンソケットのクローズに失敗: %w", err)
		}
	}

	log.Println("サーバーが停止しました")
	return nil
}
