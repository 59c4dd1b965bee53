// Package websocket provides a live status stream via WebSocket.
//
// Clients can connect to /ws to receive a periodic JSON frame with
// uptime and memory usage, useful for watching a pod live while
// exercising restart and scaling behavior.
package websocket
