package player

import (
	"encoding/json"
	"fmt"
)

// Player command names understood by the embedded player
const (
	FuncPlayVideo      = "playVideo"
	FuncPauseVideo     = "pauseVideo"
	FuncSeekTo         = "seekTo"
	FuncSetVolume      = "setVolume"
	FuncMute           = "mute"
	FuncUnMute         = "unMute"
	FuncGetCurrentTime = "getCurrentTime"
	FuncGetDuration    = "getDuration"
)

// Message events
const (
	EventCommand          = "command"
	EventInfoDelivery     = "infoDelivery"
	EventLoad             = "load"
	EventSurface          = "surface"
	EventFullscreenChange = "fullscreenchange"
	EventListening        = "listening"
)

// Command is an outbound player command:
// {"event":"command","func":"seekTo","args":[42,true]}.
// Commands without arguments carry args "".
type Command struct {
	Event string `json:"event"`
	Func  string `json:"func"`
	Args  any    `json:"args"`
}

// NewCommand builds a command for fn with optional positional args
func NewCommand(fn string, args ...any) Command {
	cmd := Command{Event: EventCommand, Func: fn, Args: ""}
	if len(args) > 0 {
		cmd.Args = args
	}
	return cmd
}

// Encode returns the wire form of the command
func (c Command) Encode() ([]byte, error) {
	if c.Args == nil {
		c.Args = ""
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.Func, err)
	}
	return data, nil
}

// Info is best-effort telemetry reported by the player. Absent fields are nil.
type Info struct {
	CurrentTime *float64 `json:"currentTime,omitempty"`
	Duration    *float64 `json:"duration,omitempty"`
	Volume      *float64 `json:"volume,omitempty"`
	Muted       *bool    `json:"muted,omitempty"`
	Fullscreen  *bool    `json:"fullscreen,omitempty"`
}

// Message is an inbound frame from the embed page
type Message struct {
	Event string `json:"event"`
	Info  *Info  `json:"info,omitempty"`
}

// ParseMessage decodes an inbound frame. Unknown info fields are ignored.
func ParseMessage(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("parse player message: %w", err)
	}
	return msg, nil
}
