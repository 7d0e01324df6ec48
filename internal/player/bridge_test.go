package player

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connectPage(t *testing.T, b *Bridge) (*websocket.Conn, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(b.Handler())
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, b.Connected, time.Second, 5*time.Millisecond)
	return conn, srv
}

func readFrame(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	return string(data)
}

func TestBridge_SendWithoutPage(t *testing.T) {
	b := NewBridge(nil)

	assert.ErrorIs(t, b.Send(NewCommand(FuncPlayVideo)), ErrNotConnected)
	assert.ErrorIs(t, b.RequestFullscreen(), ErrNotConnected)
	assert.ErrorIs(t, b.Load("abc"), ErrNotConnected)
}

func TestBridge_RelaysCommands(t *testing.T) {
	b := NewBridge(nil)
	conn, _ := connectPage(t, b)

	require.NoError(t, b.Send(NewCommand(FuncSeekTo, 15.0, true)))
	assert.JSONEq(t, `{"event":"command","func":"seekTo","args":[15,true]}`, readFrame(t, conn))

	require.NoError(t, b.Load("xyz"))
	assert.JSONEq(t, `{"event":"load","args":["xyz"]}`, readFrame(t, conn))

	require.NoError(t, b.RequestFullscreen())
	assert.JSONEq(t, `{"event":"surface","func":"requestFullscreen"}`, readFrame(t, conn))

	require.NoError(t, b.Unload())
	assert.JSONEq(t, `{"event":"unload"}`, readFrame(t, conn))
}

func TestBridge_InboundTelemetry(t *testing.T) {
	b := NewBridge(nil)

	var mu sync.Mutex
	var infos []Info
	var fullscreen []bool
	b.SetInfoCallback(func(info Info) {
		mu.Lock()
		infos = append(infos, info)
		mu.Unlock()
	})
	b.SetFullscreenCallback(func(fs bool) {
		mu.Lock()
		fullscreen = append(fullscreen, fs)
		mu.Unlock()
	})

	conn, _ := connectPage(t, b)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`garbage`)))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"event":"infoDelivery","info":{"currentTime":4.5,"duration":90}}`)))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"event":"fullscreenchange","info":{"fullscreen":true}}`)))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(infos) == 1 && len(fullscreen) == 1
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 4.5, *infos[0].CurrentTime)
	assert.Equal(t, 90.0, *infos[0].Duration)
	assert.True(t, fullscreen[0])
}

func TestBridge_DisconnectDetaches(t *testing.T) {
	b := NewBridge(nil)
	conn, _ := connectPage(t, b)

	conn.Close()
	assert.Eventually(t, func() bool { return !b.Connected() }, time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, b.Send(NewCommand(FuncPauseVideo)), ErrNotConnected)
}

func TestBridge_WatchPage(t *testing.T) {
	b := NewBridge(nil)
	srv := httptest.NewServer(b.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/watch/abc123")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "https://www.youtube.com/embed/abc123?enablejsapi=1")
}

func TestBridge_LoadOpensPage(t *testing.T) {
	var opened []string
	b := NewBridge(func(u string) error {
		opened = append(opened, u)
		return nil
	})
	require.NoError(t, b.Start("127.0.0.1:0"))
	defer b.Shutdown(context.Background())

	require.NoError(t, b.Load("abc123"))
	require.Len(t, opened, 1)
	assert.True(t, strings.HasPrefix(opened[0], "http://127.0.0.1:"))
	assert.True(t, strings.HasSuffix(opened[0], "/watch/abc123"))

	resp, err := http.Get(opened[0])
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCheckLoopbackOrigin(t *testing.T) {
	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"http://127.0.0.1:4000", true},
		{"http://localhost:4000", true},
		{"http://[::1]:4000", true},
		{"https://evil.example.com", false},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/ws", nil)
		if tt.origin != "" {
			r.Header.Set("Origin", tt.origin)
		}
		assert.Equal(t, tt.want, checkLoopbackOrigin(r), "origin %q", tt.origin)
	}
}

func TestBridge_WithController(t *testing.T) {
	b := NewBridge(nil)
	conn, _ := connectPage(t, b)

	c := NewController(b, b, nil, nil)
	b.SetInfoCallback(c.HandleInfo)

	c.Open(testItem)
	c.Play()
	assert.JSONEq(t, `{"event":"load","args":["abc123"]}`, readFrame(t, conn))
	assert.JSONEq(t, `{"event":"command","func":"playVideo","args":""}`, readFrame(t, conn))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"event":"infoDelivery","info":{"currentTime":12,"duration":120}}`)))
	assert.Eventually(t, func() bool {
		snap := c.Snapshot()
		return snap.CurrentTime == 12 && snap.Duration == 120
	}, time.Second, 5*time.Millisecond)

	c.Close()
}

func TestBridge_FullscreenRefusedByPage(t *testing.T) {
	b := NewBridge(nil)
	conn, _ := connectPage(t, b)

	c := NewController(b, b, nil, nil)
	reported := make(chan bool, 1)
	b.SetFullscreenCallback(func(fs bool) {
		c.HandleFullscreenChange(fs)
		reported <- fs
	})

	c.Open(testItem)
	assert.JSONEq(t, `{"event":"load","args":["abc123"]}`, readFrame(t, conn))

	c.ToggleFullscreen()
	assert.JSONEq(t, `{"event":"surface","func":"requestFullscreen"}`, readFrame(t, conn))
	assert.False(t, c.Snapshot().IsFullscreen)

	// the page could not enter fullscreen and reports the document state
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"event":"fullscreenchange","info":{"fullscreen":false}}`)))
	select {
	case fs := <-reported:
		assert.False(t, fs)
	case <-time.After(2 * time.Second):
		t.Fatal("fullscreen state never reached the controller")
	}
	assert.False(t, c.Snapshot().IsFullscreen)

	c.HandleEscape()
	assert.False(t, c.Snapshot().Active, "first escape closes the modal")
}

func TestWatchPage_ReportsFullscreenFailures(t *testing.T) {
	assert.Contains(t, watchPage, "requestFullscreen().catch(reportFullscreen)")
	assert.Contains(t, watchPage, "exitFullscreen().catch(reportFullscreen)")
}
