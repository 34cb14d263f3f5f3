package health

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Status describes whether the suggestion service is usable.
type Status struct {
	Reachable bool
	Error     string
	Latency   time.Duration
}

// Check verifies that the Gemini endpoint is reachable with the given
// key. It is a lightweight connectivity probe, not a full request.
func Check(ctx context.Context, apiKey string) Status {
	s := Status{}
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if apiKey == "" {
		s.Error = "no API key configured (set GEMINI_API_KEY)"
		return s
	}

	url := "https://generativelanguage.googleapis.com/v1beta/models?pageSize=1"
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		s.Error = err.Error()
		return s
	}
	req.Header.Set("x-goog-api-key", apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		s.Error = fmt.Sprintf("cannot reach Google API: %s", friendlyError(err))
		s.Latency = time.Since(start)
		return s
	}
	defer resp.Body.Close()

	if resp.StatusCode == 401 || resp.StatusCode == 403 {
		s.Error = "invalid API key"
	} else {
		s.Reachable = true
	}
	s.Latency = time.Since(start)
	return s
}

func friendlyError(err error) string {
	msg := err.Error()
	if strings.Contains(msg, "connection refused") {
		return "connection refused (is the network up?)"
	}
	if strings.Contains(msg, "no such host") {
		return "host not found (check your connection)"
	}
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded") {
		return "connection timed out"
	}
	return msg
}
