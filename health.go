package main

import (
	"encoding/json"
	"strings"
	"time"
)

// HealthChecker reports a short drive health status, empty when
// unavailable or unauthorized. Only physical local drives are queried.
type HealthChecker interface {
	Status(device string) string
}

// smartctlChecker shells out to smartctl, bounded by a timeout so a
// wedged controller cannot hang the whole run.
type smartctlChecker struct {
	timeout time.Duration
}

func newSmartctlChecker() smartctlChecker {
	return smartctlChecker{timeout: 10 * time.Second}
}

func (c smartctlChecker) Status(device string) string {
	smartctl := findExecutable("smartctl")
	if smartctl == "" {
		return ""
	}
	if s := c.statusJSON(smartctl, device); s != "" {
		return s
	}
	return c.statusText(smartctl, device)
}

// statusJSON runs smartctl -H -j.
// NOTE: smartctl may return a non-zero exit code even with valid output,
// so the error is ignored whenever output is present.
func (c smartctlChecker) statusJSON(smartctl, device string) string {
	out, _ := runCmdTimeout(c.timeout, smartctl, "-H", "-j", device)
	if len(out) == 0 {
		return ""
	}
	var data struct {
		SmartStatus *struct {
			Passed bool `json:"passed"`
		} `json:"smart_status"`
	}
	if json.Unmarshal([]byte(out), &data) != nil || data.SmartStatus == nil {
		return ""
	}
	if data.SmartStatus.Passed {
		return "PASSED"
	}
	return "FAILED"
}

// statusText is the fallback for smartctl builds without JSON support.
func (c smartctlChecker) statusText(smartctl, device string) string {
	out, _ := runCmdTimeout(c.timeout, smartctl, "-H", device)
	switch {
	case strings.Contains(out, "PASSED"):
		return "PASSED"
	case strings.Contains(out, "FAILED"):
		return "FAILED"
	}
	return ""
}
