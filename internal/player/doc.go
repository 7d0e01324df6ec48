// Package player drives the embedded third-party video player for the detail
// modal. The Controller owns one playback session at a time and issues
// fire-and-forget commands over a Channel; the player reports progress back
// as best-effort telemetry. The Bridge hosts the player page on a loopback
// address and relays both directions over a websocket.
package player
