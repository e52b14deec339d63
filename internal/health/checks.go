package health

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Dallionking/aistudio-primer/internal/config"
	"github.com/Dallionking/aistudio-primer/internal/playground"
)

const pingPrompt = "Reply with the single word: pong"

// registerChecks registers the config, credential and (optionally) runtime
// checks.
func (c *Checker) registerChecks() {
	c.add("config-file", "config", c.checkConfigFile)
	c.add("config-valid", "config", c.checkConfigValid)

	c.add("dotenv", "credentials", c.checkDotEnv)
	c.add("api-key", "credentials", c.checkAPIKey)

	if c.opts.Ping {
		c.add("model-ping", "runtime", c.checkPing)
	}
}

func (c *Checker) checkConfigFile(_ context.Context) CheckResult {
	if c.opts.ConfigFile == "" {
		return CheckResult{Status: StatusWarn, Message: "no config file found, using defaults"}
	}
	return CheckResult{Status: StatusPass, Message: c.opts.ConfigFile}
}

func (c *Checker) checkConfigValid(_ context.Context) CheckResult {
	if c.opts.Config == nil {
		return CheckResult{Status: StatusFail, Message: "config not loaded"}
	}
	var problems []string
	for _, ve := range config.Validate(c.opts.Config) {
		// Credentials get their own check.
		if ve.Field == "api_key" {
			continue
		}
		problems = append(problems, ve.Error())
	}
	if len(problems) > 0 {
		return CheckResult{Status: StatusFail, Message: strings.Join(problems, "; ")}
	}
	return CheckResult{Status: StatusPass, Message: "ok"}
}

func (c *Checker) checkDotEnv(_ context.Context) CheckResult {
	path := c.opts.DotEnvPath
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		return CheckResult{Status: StatusWarn, Message: ".env not found (using process environment)"}
	}
	return CheckResult{Status: StatusPass, Message: path}
}

func (c *Checker) checkAPIKey(_ context.Context) CheckResult {
	cfg := c.opts.Config
	if cfg == nil {
		return CheckResult{Status: StatusFail, Message: "config not loaded"}
	}
	if cfg.UsesVertex() {
		return CheckResult{Status: StatusPass, Message: fmt.Sprintf("Vertex AI project %s (ambient credentials)", cfg.Vertex.Project)}
	}
	if cfg.APIKey == "" {
		return CheckResult{Status: StatusFail, Message: "GEMINI_API_KEY not set"}
	}
	if !strings.HasPrefix(cfg.APIKey, "AIza") {
		return CheckResult{Status: StatusWarn, Message: "key does not look like a Google API key (expected AIza...)"}
	}
	return CheckResult{Status: StatusPass, Message: cfg.MaskedAPIKey()}
}

func (c *Checker) checkPing(ctx context.Context) CheckResult {
	if c.opts.Completer == nil {
		return CheckResult{Status: StatusFail, Message: "no completion client"}
	}
	model := playground.ModelFast
	if c.opts.Config != nil {
		if m, err := c.opts.Config.PlaygroundModel(); err == nil {
			model = m
		}
	}
	out, err := c.opts.Completer.Complete(ctx, pingPrompt, model)
	if err != nil {
		return CheckResult{Status: StatusFail, Message: err.Error()}
	}
	if strings.TrimSpace(out) == "" {
		return CheckResult{Status: StatusWarn, Message: "empty reply"}
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%s replied", model)}
}
