package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/DexterLB/mpvipc"

	"github.com/ytget/lynch-universe/internal/audio"
)

// mpv process settings
const (
	MPVSocketPrefix    = "lynch-universe-mpv-"
	MPVDialInterval    = 50 * time.Millisecond
	MPVShutdownTimeout = 2 * time.Second
	MPVCommandTimeout  = 2 * time.Second
)

var (
	// ErrIPCUnsupported is returned where mpv's unix socket IPC is unavailable
	ErrIPCUnsupported = errors.New("mpv IPC requires unix sockets")

	// ErrIPCTimeout is returned when mpv does not answer a command in time
	ErrIPCTimeout = errors.New("mpv did not reply in time")
)

// MPVLoader returns an audio.Loader that plays tracks with the mpv binary at
// path, controlled over its JSON IPC socket.
func MPVLoader(path string) audio.Loader {
	return func(ctx context.Context, src string) (audio.Resource, error) {
		return StartMPV(ctx, path, src)
	}
}

// MPV is a headless mpv process playing a single track. Every command is
// bounded by a timeout; the first one that expires drops the IPC connection
// so a hung mpv cannot stall its callers.
type MPV struct {
	cmd     *exec.Cmd
	conn    *mpvipc.Connection
	socket  string
	timeout time.Duration
}

// StartMPV launches mpv paused on src and connects to its IPC socket
func StartMPV(ctx context.Context, path, src string) (*MPV, error) {
	if runtime.GOOS == OSWindows {
		return nil, ErrIPCUnsupported
	}
	if _, err := exec.LookPath(path); err != nil {
		return nil, fmt.Errorf("mpv not found: %w", err)
	}

	socket := filepath.Join(os.TempDir(), fmt.Sprintf("%s%d.sock", MPVSocketPrefix, time.Now().UnixNano()))
	cmd := exec.Command(path,
		"--no-video",
		"--no-terminal",
		"--really-quiet",
		"--pause",
		"--idle=no",
		"--input-ipc-server="+socket,
		src,
	)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start mpv: %w", err)
	}

	m, err := connectMPV(ctx, socket, MPVCommandTimeout)
	if err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		_ = os.Remove(socket)
		return nil, err
	}
	m.cmd = cmd
	slog.Debug("mpv started", "pid", cmd.Process.Pid, "socket", socket)
	return m, nil
}

// connectMPV attaches to an already listening IPC socket
func connectMPV(ctx context.Context, socket string, timeout time.Duration) (*MPV, error) {
	conn, err := dialIPC(ctx, socket)
	if err != nil {
		return nil, err
	}
	return &MPV{conn: conn, socket: socket, timeout: timeout}, nil
}

// Play resumes playback
func (m *MPV) Play() error {
	return m.call("set_property", "pause", false)
}

// Pause pauses playback
func (m *MPV) Pause() error {
	return m.call("set_property", "pause", true)
}

// Rewind seeks to the start of the track
func (m *MPV) Rewind() error {
	return m.call("seek", 0, "absolute")
}

// SetVolume sets the level in 0..1
func (m *MPV) SetVolume(volume float64) error {
	return m.call("set_property", "volume", volume*100)
}

// SetLoop enables or disables endless looping
func (m *MPV) SetLoop(loop bool) error {
	value := "no"
	if loop {
		value = "inf"
	}
	return m.call("set_property", "loop-file", value)
}

// Close quits mpv and removes its socket
func (m *MPV) Close() error {
	if err := m.call("quit"); err != nil {
		slog.Debug("mpv quit without reply", "error", err)
	}
	_ = m.conn.Close()

	if m.cmd != nil {
		done := make(chan error, 1)
		go func() { done <- m.cmd.Wait() }()
		select {
		case <-done:
		case <-time.After(MPVShutdownTimeout):
			_ = m.cmd.Process.Kill()
			<-done
		}
	}
	if err := os.Remove(m.socket); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove mpv socket: %w", err)
	}
	return nil
}

// call runs one IPC command. mpvipc waits for the reply without a deadline,
// so the wait happens here.
func (m *MPV) call(args ...any) error {
	done := make(chan error, 1)
	go func() {
		_, err := m.conn.Call(args...)
		done <- err
	}()

	timer := time.NewTimer(m.timeout)
	defer timer.Stop()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("mpv %v: %w", args[0], err)
		}
		return nil
	case <-timer.C:
		slog.Warn("mpv stopped responding, dropping IPC connection", "command", args[0], "timeout", m.timeout)
		_ = m.conn.Close()
		return fmt.Errorf("mpv %v: %w", args[0], ErrIPCTimeout)
	}
}

// dialIPC waits for mpv to create its socket
func dialIPC(ctx context.Context, socket string) (*mpvipc.Connection, error) {
	for {
		conn := mpvipc.NewConnection(socket)
		err := conn.Open()
		if err == nil {
			return conn, nil
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("connect mpv ipc %s: %w", socket, ctx.Err())
		case <-time.After(MPVDialInterval):
		}
	}
}
