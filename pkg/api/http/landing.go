package http

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

const landingTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>podprobe</title>
<style>
  :root { --accent: #00add8; --bg: #0d1117; --card: #161b22; --text: #c9d1d9; --dim: #8b949e; }
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: 'Segoe UI', system-ui, sans-serif; background: var(--bg); color: var(--text); min-height: 100vh; display: flex; align-items: center; justify-content: center; }
  .container { max-width: 720px; width: 90%%; padding: 2rem; }
  h1 { font-size: 2.5rem; margin-bottom: 0.25rem; }
  h1 span { color: var(--accent); }
  .subtitle { color: var(--dim); font-size: 1.1rem; margin-bottom: 2rem; }
  .hostname { background: var(--card); border: 1px solid #30363d; border-radius: 8px; padding: 1rem 1.25rem; margin-bottom: 2rem; font-family: monospace; font-size: 1rem; }
  .hostname strong { color: var(--accent); }
  .grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 1rem; margin-bottom: 2rem; }
  .card { background: var(--card); border: 1px solid #30363d; border-radius: 8px; padding: 1.25rem; transition: border-color 0.2s; }
  .card:hover { border-color: var(--accent); }
  .card h3 { font-size: 0.85rem; text-transform: uppercase; letter-spacing: 0.05em; color: var(--dim); margin-bottom: 0.5rem; }
  .card a { color: var(--accent); text-decoration: none; font-family: monospace; font-size: 1.05rem; }
  .card a:hover { text-decoration: underline; }
  .card p { color: var(--dim); font-size: 0.85rem; margin-top: 0.4rem; }
  .footer { color: var(--dim); font-size: 0.8rem; text-align: center; margin-top: 1rem; }
</style>
</head>
<body>
<div class="container">
  <h1><span>podprobe</span></h1>
  <p class="subtitle">A lightweight container demo &mdash; running and ready.</p>

  <div class="hostname">
    <strong>Pod:</strong> %s &nbsp;|&nbsp;
    <strong>Uptime:</strong> %ds &nbsp;|&nbsp;
    <strong>UID:</strong> %d
  </div>

  <div class="grid">
    <div class="card">
      <h3>Health</h3>
      <a href="/healthz">/healthz</a>
      <p>Liveness probe endpoint</p>
    </div>
    <div class="card">
      <h3>Ready</h3>
      <a href="/readyz">/readyz</a>
      <p>Readiness probe endpoint</p>
    </div>
    <div class="card">
      <h3>Container Info</h3>
      <a href="/info">/info</a>
      <p>Runtime environment &amp; system details</p>
    </div>
    <div class="card">
      <h3>Fibonacci</h3>
      <a href="/fib?n=40">/fib?n=40</a>
      <p>CPU stress test via naive recursion</p>
    </div>
    <div class="card">
      <h3>Crash Test</h3>
      <a href="/crash">/crash</a>
      <p>Trigger panic &amp; test restart policy</p>
    </div>
    <div class="card">
      <h3>Metrics</h3>
      <a href="/metrics">/metrics</a>
      <p>Prometheus metrics</p>
    </div>
  </div>

  <p class="footer">Version %s &bull; Built with Gin &bull; Single static binary</p>
</div>
</body>
</html>`

// handleLanding serves the HTML landing page
func (s *Server) handleLanding(c *gin.Context) {
	page := fmt.Sprintf(landingTemplate,
		hostname(),
		uint64(s.uptime().Seconds()),
		os.Getuid(),
		s.version,
	)

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
