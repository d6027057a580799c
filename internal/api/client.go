package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"resty.dev/v3"
)

// Client talks to the exam-prep backend. Calls either succeed once or
// return an error for the caller to map into UI state; there is no retry
// or backoff layer here — retries are user-initiated.
type Client struct {
	httpClient *resty.Client
}

// New creates a Client for the given base URL. Timeout applies per request.
func New(baseURL string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("Content-Type", "application/json")

	return &Client{httpClient: client}
}

func (c *Client) Close() error {
	return c.httpClient.Close()
}

// StartSession creates a study session and returns its server-assigned id.
func (c *Client) StartSession(ctx context.Context, req StartSessionRequest) (*StartSessionResponse, error) {
	if req.PreviousQuestionIDs == nil {
		req.PreviousQuestionIDs = []int{}
	}

	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&StartSessionResponse{}).
		Post("/v1/sessions")
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	if response.IsError() {
		return nil, &StatusError{StatusCode: response.StatusCode(), Body: response.String()}
	}

	out := response.Result().(*StartSessionResponse)
	if out.SessionID <= 0 {
		return nil, &ErrInvalidPayload{
			Endpoint: "start-session",
			Content:  response.Bytes(),
			Err:      fmt.Errorf("session id %d is not positive", out.SessionID),
		}
	}
	return out, nil
}

// GenerationStatus fetches the progress of the session's generation job.
func (c *Client) GenerationStatus(ctx context.Context, sessionID int) (*GenerationStatus, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&GenerationStatus{}).
		Get(fmt.Sprintf("/v1/sessions/%d/generation", sessionID))
	if err != nil {
		return nil, fmt.Errorf("generation status: %w", err)
	}
	if response.IsError() {
		return nil, &StatusError{StatusCode: response.StatusCode(), Body: response.String()}
	}
	return response.Result().(*GenerationStatus), nil
}

// CompleteSession ends the session, reporting the actual studied minutes.
// The response may carry the finalized question set; an empty set is a
// valid degraded response, not an error.
func (c *Client) CompleteSession(ctx context.Context, sessionID int, req CompleteSessionRequest) (*CompleteSessionResponse, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		Post(fmt.Sprintf("/v1/sessions/%d/complete", sessionID))
	if err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}
	if response.IsError() {
		return nil, &StatusError{StatusCode: response.StatusCode(), Body: response.String()}
	}

	raw := response.Bytes()
	if err := validatePayload(completeSessionSchema, raw); err != nil {
		return nil, err
	}

	var wire struct {
		TestID    int            `json:"testId"`
		Questions []questionWire `json:"questions"`
		Cached    bool           `json:"cached"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, &ErrInvalidPayload{Endpoint: "complete-session", Content: raw, Err: err}
	}
	questions, err := toQuestions(wire.Questions)
	if err != nil {
		return nil, &ErrInvalidPayload{Endpoint: "complete-session", Content: raw, Err: err}
	}
	if len(questions) > 0 && wire.TestID <= 0 {
		return nil, &ErrInvalidPayload{
			Endpoint: "complete-session",
			Content:  raw,
			Err:      fmt.Errorf("question set present but test id %d is not positive", wire.TestID),
		}
	}

	return &CompleteSessionResponse{TestID: wire.TestID, Questions: questions, Cached: wire.Cached}, nil
}

// StartTest requests a question set by topic, optionally bound to a session.
func (c *Client) StartTest(ctx context.Context, req StartTestRequest) (*StartTestResponse, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		Post("/v1/tests")
	if err != nil {
		return nil, fmt.Errorf("start test: %w", err)
	}
	if response.IsError() {
		return nil, &StatusError{StatusCode: response.StatusCode(), Body: response.String()}
	}

	raw := response.Bytes()
	if err := validatePayload(startTestSchema, raw); err != nil {
		return nil, err
	}

	var wire struct {
		TestID    int            `json:"testId"`
		Questions []questionWire `json:"questions"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, &ErrInvalidPayload{Endpoint: "start-test", Content: raw, Err: err}
	}
	questions, err := toQuestions(wire.Questions)
	if err != nil {
		return nil, &ErrInvalidPayload{Endpoint: "start-test", Content: raw, Err: err}
	}

	return &StartTestResponse{TestID: wire.TestID, Questions: questions}, nil
}

// SubmitTest submits the attempt's answers and returns the scored result.
// The caller supplies one idempotency key per attempt so a retried
// submission after a timed-out first call is safe on the server side.
func (c *Client) SubmitTest(ctx context.Context, testID int, idempotencyKey string, req SubmitTestRequest) (*TestResult, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", idempotencyKey).
		SetBody(req).
		SetResult(&TestResult{}).
		Post(fmt.Sprintf("/v1/tests/%d/submit", testID))
	if err != nil {
		return nil, fmt.Errorf("submit test: %w", err)
	}
	if response.IsError() {
		return nil, &StatusError{StatusCode: response.StatusCode(), Body: response.String()}
	}
	return response.Result().(*TestResult), nil
}

// Results fetches the full per-question breakdown for a scored test.
func (c *Client) Results(ctx context.Context, testID int) (*TestResult, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&TestResult{}).
		Get(fmt.Sprintf("/v1/tests/%d/results", testID))
	if err != nil {
		return nil, fmt.Errorf("fetch results: %w", err)
	}
	if response.IsError() {
		return nil, &StatusError{StatusCode: response.StatusCode(), Body: response.String()}
	}
	return response.Result().(*TestResult), nil
}
