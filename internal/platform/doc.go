// Package platform contains OS integration and external tooling glue: the
// mpv-backed background audio track, the system browser launcher and the
// YouTube playlist resolver used to extend catalog sections.
package platform
