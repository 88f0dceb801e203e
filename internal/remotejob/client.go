package remotejob

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/edupipe/edupipe/pkg/errors"
)

func (c *implClient) Enabled() bool {
	return c.mock || c.apiKey != ""
}

// Generate runs the full submit/poll/download cycle against the
// remote service, or the synthetic equivalent in mock mode.
func (c *implClient) Generate(ctx context.Context, text, destPath string) error {
	if c.mock {
		return c.generateMock(ctx, destPath)
	}
	if c.apiKey == "" {
		return errors.ErrMissingCredential
	}

	job, err := c.submit(ctx, text)
	if err != nil {
		return err
	}

	downloadURL, err := c.wait(ctx, job)
	if err != nil {
		return err
	}

	return c.download(ctx, downloadURL, destPath)
}

// submit POSTs the generation request and returns the pending job.
func (c *implClient) submit(ctx context.Context, text string) (*Job, error) {
	c.logger.Info(ctx, "Submitting %s job", c.endpoint.Name)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(c.payload(text)).
		Post(c.endpoint.SubmitPath)
	if err != nil {
		return nil, errors.Upstream(c.endpoint.Name, err)
	}
	if resp.IsError() {
		return nil, errors.Upstream(c.endpoint.Name, fmt.Errorf("submit: %s: %s", resp.Status(), resp.String()))
	}

	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, errors.Upstream(c.endpoint.Name, fmt.Errorf("decode submit response: %w", err))
	}

	id, ok := body[c.endpoint.JobIDField].(string)
	if !ok || id == "" {
		return nil, errors.Upstream(c.endpoint.Name, fmt.Errorf("submit response missing %q", c.endpoint.JobIDField))
	}

	c.logger.Info(ctx, "%s job created: %s", c.endpoint.Name, id)
	return newJob(id, c.endpoint.Timeout), nil
}

// wait polls the status endpoint at the fixed interval until the job
// completes, fails, or exceeds its wall-clock budget. No backoff.
func (c *implClient) wait(ctx context.Context, job *Job) (string, error) {
	for {
		resp, err := c.http.R().
			SetContext(ctx).
			Get(c.statusURL(job.ID))
		if err != nil {
			return "", errors.Upstream(c.endpoint.Name, err)
		}
		if resp.IsError() {
			return "", errors.Upstream(c.endpoint.Name, fmt.Errorf("poll: %s: %s", resp.Status(), resp.String()))
		}

		var body map[string]interface{}
		if err := json.Unmarshal(resp.Body(), &body); err != nil {
			return "", errors.Upstream(c.endpoint.Name, fmt.Errorf("decode poll response: %w", err))
		}

		status, _ := body["status"].(string)
		switch status {
		case "completed":
			if err := job.transition(StatusCompleted); err != nil {
				return "", err
			}
			url, _ := body[c.endpoint.DownloadField].(string)
			if url == "" {
				return "", errors.Upstream(c.endpoint.Name, fmt.Errorf("completed job missing %q", c.endpoint.DownloadField))
			}
			c.logger.Info(ctx, "%s job %s completed", c.endpoint.Name, job.ID)
			return url, nil
		case "failed":
			if err := job.transition(StatusFailed); err != nil {
				return "", err
			}
			return "", errors.RemoteJobFailed(c.endpoint.Name, resp.String())
		}

		if job.Expired() {
			if err := job.transition(StatusTimedOut); err != nil {
				return "", err
			}
			return "", errors.JobTimeout(c.endpoint.Name, job.Timeout)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.endpoint.PollInterval):
		}
	}
}

// download streams the finished artifact to destPath, overwriting any
// existing file.
func (c *implClient) download(ctx context.Context, url, destPath string) error {
	c.logger.Info(ctx, "Downloading %s artifact to %s", c.endpoint.Name, destPath)

	resp, err := c.http.R().
		SetContext(ctx).
		SetOutput(destPath).
		Get(url)
	if err != nil {
		return errors.Upstream(c.endpoint.Name, err)
	}
	if resp.IsError() {
		return errors.Upstream(c.endpoint.Name, fmt.Errorf("download: %s", resp.Status()))
	}

	return nil
}

// generateMock produces a placeholder artifact after an artificial
// delay, without touching the network.
func (c *implClient) generateMock(ctx context.Context, destPath string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.endpoint.MockDelay):
	}

	id := "mock-" + uuid.NewString()
	c.logger.Info(ctx, "[MOCK] %s: job %s simulated", c.endpoint.Name, id)

	placeholder := fmt.Sprintf("FAKE ARTIFACT - %s MOCK (%s)", c.endpoint.Name, id)
	return os.WriteFile(destPath, []byte(placeholder), 0644)
}
