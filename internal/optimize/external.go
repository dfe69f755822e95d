package optimize

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// ExternalRunner invokes the optimizer binary built from the active
// source tree. The request goes to the process as JSON on stdin and
// the result comes back as JSON on stdout.
type ExternalRunner struct {
	Command []string
	Timeout time.Duration
}

func (e *ExternalRunner) Run(ctx context.Context, req *Request) (*Result, error) {
	if len(e.Command) == 0 {
		return nil, errors.New("optimizer command not configured")
	}
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding optimizer request: %w", err)
	}

	cmd := exec.CommandContext(ctx, e.Command[0], e.Command[1:]...)
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := bytes.TrimSpace(stderr.Bytes())
		if len(msg) > 0 {
			return nil, fmt.Errorf("optimizer %s dim %d: %s: %w", req.Problem, req.Dim, msg, err)
		}
		return nil, fmt.Errorf("optimizer %s dim %d: %w", req.Problem, req.Dim, err)
	}

	var res Result
	if err := json.Unmarshal(stdout.Bytes(), &res); err != nil {
		return nil, fmt.Errorf("parsing optimizer output for %s dim %d: %w", req.Problem, req.Dim, err)
	}
	return &res, nil
}
