package stresstest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nikhilbhutani/kidsagent/pkg/textextract"
)

// Runner fires the adversarial corpus at a live agent endpoint, one
// prompt at a time in corpus order. A single prompt's failure never
// aborts the remaining run.
type Runner struct {
	agentURL      string
	client        *http.Client
	healthTimeout time.Duration
	verbose       bool
	out           io.Writer
}

func NewRunner(agentURL string, requestTimeout, healthTimeout time.Duration, verbose bool) *Runner {
	return &Runner{
		agentURL:      agentURL,
		client:        &http.Client{Timeout: requestTimeout},
		healthTimeout: healthTimeout,
		verbose:       verbose,
		out:           os.Stdout,
	}
}

// SetOutput redirects progress output, used by tests.
func (r *Runner) SetOutput(w io.Writer) { r.out = w }

// HealthCheck probes the agent's health endpoint with a short timeout.
func (r *Runner) HealthCheck(ctx context.Context) error {
	healthURL := strings.Replace(r.agentURL, "/a2a", "/health", 1)

	ctx, cancel := context.WithTimeout(ctx, r.healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL, nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check: HTTP %d", resp.StatusCode)
	}
	return nil
}

// Run executes the full corpus and returns the aggregated report.
func (r *Runner) Run(ctx context.Context) *RunReport {
	prompts := MaliciousPrompts()
	report := &RunReport{TotalTests: len(prompts)}

	for i, p := range prompts {
		fmt.Fprintf(r.out, "[%d/%d] Testing: %s - %s\n", i+1, len(prompts), p.Category, p.ID)
		fmt.Fprintf(r.out, "  Prompt: %s\n", truncate(p.Prompt, 60))

		outcome := r.runOne(ctx, p)
		report.Results = append(report.Results, outcome)
		if outcome.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
		fmt.Fprintln(r.out)
	}

	if report.TotalTests > 0 {
		report.SecurityScore = float64(report.Passed) / float64(report.TotalTests) * 100
	}
	report.Timestamp = time.Now()
	return report
}

func (r *Runner) runOne(ctx context.Context, p PromptRecord) TestOutcome {
	body, err := json.Marshal(map[string]interface{}{
		"content": map[string]string{
			"text": p.Prompt,
			"type": "text",
		},
		"role":            "user",
		"conversation_id": "stress_test_" + uuid.NewString(),
	})
	if err != nil {
		return r.errorOutcome(p, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.agentURL, bytes.NewReader(body))
	if err != nil {
		return r.errorOutcome(p, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return r.errorOutcome(p, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return r.errorOutcome(p, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	var payload interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return r.errorOutcome(p, "malformed response body: "+err.Error())
	}

	if r.verbose {
		raw, _ := json.MarshalIndent(payload, "", "  ")
		fmt.Fprintf(r.out, "  Raw Response: %s\n", truncate(string(raw), 500))
	}

	agentResponse := textextract.Response(payload)
	fmt.Fprintf(r.out, "  Agent Response: %s\n", truncate(agentResponse, 200))

	analysis := Analyze(agentResponse, p)
	if analysis.Passed {
		fmt.Fprintln(r.out, "  PASSED - Agent rejected malicious prompt")
	} else {
		fmt.Fprintln(r.out, "  FAILED - Agent may be vulnerable")
		if len(analysis.Violations) > 0 {
			fmt.Fprintf(r.out, "     Violations: %s\n", strings.Join(analysis.Violations, ", "))
		}
	}

	return TestOutcome{
		TestID:        p.ID,
		Category:      p.Category,
		Prompt:        p.Prompt,
		AgentResponse: agentResponse,
		Passed:        analysis.Passed,
		Violations:    analysis.Violations,
		Severity:      analysis.Severity,
	}
}

func (r *Runner) errorOutcome(p PromptRecord, errMsg string) TestOutcome {
	fmt.Fprintf(r.out, "  Error: %s\n", errMsg)
	return TestOutcome{
		TestID: p.ID,
		Status: "error",
		Error:  errMsg,
		Passed: false,
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
