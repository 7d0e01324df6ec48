package player

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// Embed parameters of the YouTube iframe player
const (
	EmbedBase  = "https://www.youtube.com/embed/"
	EmbedQuery = "?enablejsapi=1&controls=1&rel=0&modestbranding=1&iv_load_policy=3&autoplay=1"

	sendBuffer   = 32
	writeTimeout = 5 * time.Second
)

// ErrNotConnected is returned when no player page is attached to the bridge
var ErrNotConnected = errors.New("player page not connected")

//go:embed watch.html
var watchPage string

var watchTemplate = template.Must(template.New("watch").Parse(watchPage))

type watchPageData struct {
	Title      string
	EmbedURL   string
	EmbedBase  string
	EmbedQuery string
}

// Opener shows a URL to the user, typically in the system browser
type Opener func(url string) error

// Bridge hosts the player page on a loopback address and relays commands to
// it over a websocket. It implements Channel and Surface.
type Bridge struct {
	mu       sync.Mutex
	router   chi.Router
	server   *http.Server
	listener net.Listener
	opener   Opener
	client   *clientWriter
	upgrader websocket.Upgrader

	onInfo       func(Info)
	onFullscreen func(bool)
}

// NewBridge creates a bridge that opens new player pages with opener
func NewBridge(opener Opener) *Bridge {
	b := &Bridge{
		opener: opener,
		upgrader: websocket.Upgrader{
			CheckOrigin: checkLoopbackOrigin,
		},
	}
	r := chi.NewRouter()
	r.Get("/watch/{ref}", b.handleWatch)
	r.Get("/ws", b.handleSocket)
	b.router = r
	return b
}

// Handler returns the HTTP handler of the bridge
func (b *Bridge) Handler() http.Handler {
	return b.router
}

// SetInfoCallback sets the receiver of player telemetry
func (b *Bridge) SetInfoCallback(callback func(Info)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onInfo = callback
}

// SetFullscreenCallback sets the receiver of fullscreen changes
func (b *Bridge) SetFullscreenCallback(callback func(bool)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onFullscreen = callback
}

// Start listens on addr and serves in the background
func (b *Bridge) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	b.mu.Lock()
	b.listener = ln
	b.server = &http.Server{Handler: b.router, ReadHeaderTimeout: 5 * time.Second}
	srv := b.server
	b.mu.Unlock()

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Player bridge stopped", "error", err)
		}
	}()
	slog.Info("Player bridge listening", "addr", ln.Addr().String())
	return nil
}

// BaseURL returns the http base of the running bridge
func (b *Bridge) BaseURL() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.listener == nil {
		return ""
	}
	return "http://" + b.listener.Addr().String()
}

// WatchURL returns the page URL that plays ref
func (b *Bridge) WatchURL(ref string) string {
	return b.BaseURL() + "/watch/" + url.PathEscape(ref)
}

// Shutdown stops the listener and drops the attached page
func (b *Bridge) Shutdown(ctx context.Context) error {
	b.mu.Lock()
	srv := b.server
	client := b.client
	b.client = nil
	b.mu.Unlock()

	if client != nil {
		client.stop()
	}
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// Connected reports whether a player page is attached
func (b *Bridge) Connected() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.client != nil
}

// Load switches the attached page to ref, or opens a new page
func (b *Bridge) Load(ref string) error {
	if b.Connected() {
		return b.sendFrame(frame{Event: EventLoad, Args: []string{ref}})
	}
	if b.opener == nil {
		return ErrNotConnected
	}
	if err := b.opener(b.WatchURL(ref)); err != nil {
		return fmt.Errorf("open player page: %w", err)
	}
	return nil
}

// Send relays a player command. Commands are dropped when the page is
// missing or its queue is full.
func (b *Bridge) Send(cmd Command) error {
	data, err := cmd.Encode()
	if err != nil {
		return err
	}
	return b.enqueue(data)
}

// Unload blanks the attached page
func (b *Bridge) Unload() error {
	return b.sendFrame(frame{Event: "unload"})
}

// RequestFullscreen asks the page to enter fullscreen
func (b *Bridge) RequestFullscreen() error {
	return b.sendFrame(frame{Event: EventSurface, Func: "requestFullscreen"})
}

// ExitFullscreen asks the page to leave fullscreen
func (b *Bridge) ExitFullscreen() error {
	return b.sendFrame(frame{Event: EventSurface, Func: "exitFullscreen"})
}

type frame struct {
	Event string   `json:"event"`
	Func  string   `json:"func,omitempty"`
	Args  []string `json:"args,omitempty"`
}

func (b *Bridge) sendFrame(f frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode %s frame: %w", f.Event, err)
	}
	return b.enqueue(data)
}

func (b *Bridge) enqueue(data []byte) error {
	b.mu.Lock()
	client := b.client
	b.mu.Unlock()
	if client == nil {
		return ErrNotConnected
	}
	if !client.trySend(data) {
		return fmt.Errorf("player queue full: %w", ErrNotConnected)
	}
	return nil
}

func (b *Bridge) handleWatch(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")
	if ref == "" {
		http.Error(w, "missing video reference", http.StatusBadRequest)
		return
	}
	data := watchPageData{
		Title:      "Lynch Universe",
		EmbedURL:   EmbedBase + url.PathEscape(ref) + EmbedQuery,
		EmbedBase:  EmbedBase,
		EmbedQuery: EmbedQuery,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := watchTemplate.Execute(w, data); err != nil {
		slog.Warn("Failed to render player page", "error", err)
	}
}

func (b *Bridge) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("Player page upgrade failed", "error", err)
		return
	}
	client := newClientWriter(conn)

	b.mu.Lock()
	prev := b.client
	b.client = client
	b.mu.Unlock()
	if prev != nil {
		prev.stop()
	}
	slog.Debug("Player page connected", "remote", r.RemoteAddr)

	b.readLoop(client)

	b.mu.Lock()
	if b.client == client {
		b.client = nil
	}
	b.mu.Unlock()
	client.stop()
	slog.Debug("Player page disconnected", "remote", r.RemoteAddr)
}

func (b *Bridge) readLoop(client *clientWriter) {
	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			return
		}
		msg, err := ParseMessage(data)
		if err != nil {
			slog.Debug("Ignoring player frame", "error", err)
			continue
		}
		b.dispatch(msg)
	}
}

func (b *Bridge) dispatch(msg Message) {
	b.mu.Lock()
	onInfo := b.onInfo
	onFullscreen := b.onFullscreen
	b.mu.Unlock()

	switch msg.Event {
	case EventInfoDelivery:
		if msg.Info != nil && onInfo != nil {
			onInfo(*msg.Info)
		}
	case EventFullscreenChange:
		if msg.Info != nil && msg.Info.Fullscreen != nil && onFullscreen != nil {
			onFullscreen(*msg.Info.Fullscreen)
		}
	}
}

func checkLoopbackOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	host := u.Hostname()
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

type clientWriter struct {
	conn     *websocket.Conn
	sendCh   chan []byte
	done     chan struct{}
	stopOnce sync.Once
}

func newClientWriter(conn *websocket.Conn) *clientWriter {
	cw := &clientWriter{
		conn:   conn,
		sendCh: make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
	}
	go cw.run()
	return cw
}

func (cw *clientWriter) run() {
	for {
		select {
		case msg := <-cw.sendCh:
			_ = cw.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := cw.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				slog.Debug("Player page write failed", "error", err)
				return
			}
		case <-cw.done:
			return
		}
	}
}

func (cw *clientWriter) trySend(data []byte) bool {
	select {
	case <-cw.done:
		return false
	default:
	}
	select {
	case cw.sendCh <- data:
		return true
	default:
		return false
	}
}

func (cw *clientWriter) stop() {
	cw.stopOnce.Do(func() {
		close(cw.done)
		cw.conn.Close()
	})
}
