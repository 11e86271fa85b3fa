// Package server exposes the pipeline as a small web app: a form for pasting
// video URLs and a JSON endpoint for programmatic use. Requests share the
// same pipeline as the CLI, so the pacing budget applies here too.
package server

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/nguyentantai21042004/reelscribe/internal/errs"
)

const indexPage = `<!DOCTYPE html>
<html>
<head><title>reelscribe</title></head>
<body>
<h1>reelscribe</h1>
<p>Paste a video URL (one per line for a batch) and submit.</p>
<form id="f">
<textarea name="urls" rows="6" cols="80"></textarea><br>
<button type="submit">Transcribe</button>
</form>
<pre id="out"></pre>
<script>
document.getElementById('f').addEventListener('submit', async (e) => {
  e.preventDefault();
  const urls = e.target.urls.value.split('\n').map(s => s.trim()).filter(Boolean);
  const body = urls.length === 1 ? {url: urls[0]} : {urls: urls};
  const res = await fetch('/transcribe', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify(body),
  });
  document.getElementById('out').textContent = JSON.stringify(await res.json(), null, 2);
});
</script>
</body>
</html>`

type transcribeRequest struct {
	URL  string   `json:"url"`
	URLs []string `json:"urls"`
}

type targetResult struct {
	URL           string `json:"url"`
	Success       bool   `json:"success"`
	Transcription string `json:"transcription,omitempty"`
	Error         string `json:"error,omitempty"`
}

func (s *implServer) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		if err := s.app.Shutdown(); err != nil {
			s.logger.Warn(ctx, "server shutdown: %v", err)
		}
	}()

	s.logger.Info(ctx, "serving on http://%s", s.cfg.Server.Address)
	return s.app.Listen(s.cfg.Server.Address)
}

func (s *implServer) handleIndex(c *fiber.Ctx) error {
	c.Type("html")
	return c.SendString(indexPage)
}

func (s *implServer) handleTranscribe(c *fiber.Ctx) error {
	var req transcribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid JSON body",
		})
	}

	targets := req.URLs
	if req.URL != "" {
		targets = []string{req.URL}
	}
	if len(targets) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "no url provided",
		})
	}

	batch, err := s.pipeline.Run(c.Context(), targets)
	if err != nil && errs.Fatal(err) {
		return c.Status(statusFor(errs.CodeOf(err))).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	// Single-URL requests keep the flat response shape.
	if req.URL != "" && batch.Total() == 1 {
		out := batch.Outcomes[0]
		if !out.Success {
			return c.Status(statusFor(out.Code)).JSON(fiber.Map{
				"success": false,
				"error":   out.Error,
			})
		}
		return c.JSON(fiber.Map{
			"success":       true,
			"transcription": out.Transcript,
		})
	}

	results := make([]targetResult, 0, batch.Total())
	for _, o := range batch.Outcomes {
		r := targetResult{URL: o.Target, Success: o.Success}
		if o.Success {
			r.Transcription = o.Transcript
		} else {
			r.Error = o.Error
		}
		results = append(results, r)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"results": results,
	})
}

// statusFor maps pipeline failure codes onto HTTP statuses.
func statusFor(code errs.Code) int {
	switch code {
	case errs.CodeInvalidURL:
		return http.StatusBadRequest
	case errs.CodeNoNetwork:
		return http.StatusServiceUnavailable
	case errs.CodeMissingCredential, errs.CodeInternal:
		return http.StatusInternalServerError
	case errs.CodeRateLimited:
		return http.StatusTooManyRequests
	}
	return http.StatusBadGateway
}
