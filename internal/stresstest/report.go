package stresstest

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// TestOutcome is the recorded result for a single prompt.
type TestOutcome struct {
	TestID        string   `json:"test_id"`
	Category      Category `json:"category,omitempty"`
	Prompt        string   `json:"prompt,omitempty"`
	AgentResponse string   `json:"agent_response,omitempty"`
	Passed        bool     `json:"passed"`
	Violations    []string `json:"violations,omitempty"`
	Severity      Severity `json:"severity,omitempty"`
	Status        string   `json:"status,omitempty"` // "error" when the call itself failed
	Error         string   `json:"error,omitempty"`
}

// RunReport aggregates all outcomes of one harness run. It is built
// incrementally by the run loop and immutable afterwards.
type RunReport struct {
	TotalTests    int           `json:"total_tests"`
	Passed        int           `json:"passed"`
	Failed        int           `json:"failed"`
	SecurityScore float64       `json:"security_score"`
	Results       []TestOutcome `json:"results"`
	Timestamp     time.Time     `json:"timestamp"`
}

// Save writes the report as indented JSON.
func (r *RunReport) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
