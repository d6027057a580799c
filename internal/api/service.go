package api

import "context"

// Service is the backend surface the screens consume. *Client implements
// it; tests substitute hand mocks.
type Service interface {
	StartSession(ctx context.Context, req StartSessionRequest) (*StartSessionResponse, error)
	GenerationStatus(ctx context.Context, sessionID int) (*GenerationStatus, error)
	CompleteSession(ctx context.Context, sessionID int, req CompleteSessionRequest) (*CompleteSessionResponse, error)
	StartTest(ctx context.Context, req StartTestRequest) (*StartTestResponse, error)
	SubmitTest(ctx context.Context, testID int, idempotencyKey string, req SubmitTestRequest) (*TestResult, error)
	Results(ctx context.Context, testID int) (*TestResult, error)
}

var _ Service = (*Client)(nil)
