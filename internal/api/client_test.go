package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := New(server.URL, 5*time.Second)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestStartSession(t *testing.T) {
	tests := []struct {
		name              string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		wantSessionID   int
		wantError       bool
		wantErrorString string
	}{
		{
			name: "success",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/v1/sessions", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var reqBody map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
				assert.Equal(t, float64(7), reqBody["topicId"])
				assert.Equal(t, float64(45), reqBody["durationMins"])
				// nil exclusion list is sent as an empty array, not null.
				assert.Equal(t, []any{}, reqBody["previousQuestionIds"])

				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]any{"sessionId": 101})
			},
			wantSessionID: 101,
		},
		{
			name: "server error",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"boom"}`))
			},
			wantError:       true,
			wantErrorString: "500",
		},
		{
			name: "invalid session id",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]any{"sessionId": 0})
			},
			wantError:       true,
			wantErrorString: "not positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, w, r)
			})

			got, err := client.StartSession(context.Background(), StartSessionRequest{
				TopicID:      7,
				DurationMins: 45,
			})

			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrorString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSessionID, got.SessionID)
		})
	}
}

func TestGenerationStatus(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus JobStatus
		wantCount  int
	}{
		{
			name:       "pending",
			body:       `{"status":"pending","generatedCount":0}`,
			wantStatus: JobPending,
		},
		{
			name:       "in progress",
			body:       `{"status":"in_progress","generatedCount":4}`,
			wantStatus: JobInProgress,
			wantCount:  4,
		},
		{
			name:       "completed with alternate spelling",
			body:       `{"status":"Completed","generatedCount":10}`,
			wantStatus: JobCompleted,
			wantCount:  10,
		},
		{
			name:       "unknown status treated as in progress",
			body:       `{"status":"generating","generatedCount":2}`,
			wantStatus: JobInProgress,
			wantCount:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/sessions/101/generation", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			})

			got, err := client.GenerationStatus(context.Background(), 101)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantCount, got.GeneratedCount)
		})
	}
}

func questionJSON(id int) string {
	return `{
		"id": ` + jsonInt(id) + `,
		"questionText": "What is the capital of France?",
		"options": {"B": "Lyon", "A": "Paris", "C": "Nice"},
		"source": "PreviousYear",
		"difficulty": 2
	}`
}

func jsonInt(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func TestCompleteSession(t *testing.T) {
	t.Run("cached question set", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/sessions/101/complete", r.URL.Path)

			var reqBody map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
			assert.Equal(t, float64(45), reqBody["actualDurationMins"])

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"testId": 55, "cached": true, "questions": [` + questionJSON(1) + `]}`))
		})

		got, err := client.CompleteSession(context.Background(), 101, CompleteSessionRequest{ActualDurationMins: 45})
		require.NoError(t, err)
		assert.True(t, got.Cached)
		assert.Equal(t, 55, got.TestID)
		require.Len(t, got.Questions, 1)

		// Options come back sorted by label regardless of wire order.
		q := got.Questions[0]
		assert.Equal(t, []Option{
			{Label: "A", Text: "Paris"},
			{Label: "B", Text: "Lyon"},
			{Label: "C", Text: "Nice"},
		}, q.Options)
		assert.Equal(t, SourcePreviousYear, q.Source)
		assert.Equal(t, 2, q.Difficulty)
	})

	t.Run("empty set is a valid degraded response", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"cached": false, "questions": []}`))
		})

		got, err := client.CompleteSession(context.Background(), 101, CompleteSessionRequest{ActualDurationMins: 1})
		require.NoError(t, err)
		assert.False(t, got.Cached)
		assert.Empty(t, got.Questions)
	})

	t.Run("questions without test id rejected", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"cached": true, "questions": [` + questionJSON(1) + `]}`))
		})

		_, err := client.CompleteSession(context.Background(), 101, CompleteSessionRequest{ActualDurationMins: 45})
		require.Error(t, err)
		var payloadErr *ErrInvalidPayload
		assert.True(t, errors.As(err, &payloadErr))
	})

	t.Run("malformed question rejected by schema", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			// Single option violates minProperties.
			w.Write([]byte(`{"testId": 55, "cached": true, "questions": [{
				"id": 1, "questionText": "Q", "options": {"A": "only"}, "source": "AI"
			}]}`))
		})

		_, err := client.CompleteSession(context.Background(), 101, CompleteSessionRequest{ActualDurationMins: 45})
		require.Error(t, err)
		var payloadErr *ErrInvalidPayload
		assert.True(t, errors.As(err, &payloadErr))
	})
}

func TestStartTest(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/tests", r.URL.Path)

			var reqBody map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
			assert.Equal(t, float64(7), reqBody["topicId"])
			assert.Equal(t, float64(101), reqBody["sessionId"])
			assert.Equal(t, float64(10), reqBody["questionCount"])

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"testId": 56, "questions": [` + questionJSON(1) + `,` + questionJSON(2) + `]}`))
		})

		got, err := client.StartTest(context.Background(), StartTestRequest{
			TopicID:       7,
			SessionID:     101,
			QuestionCount: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, 56, got.TestID)
		assert.Len(t, got.Questions, 2)
	})

	t.Run("standalone test omits session id", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var reqBody map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
			_, present := reqBody["sessionId"]
			assert.False(t, present)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"testId": 57, "questions": []}`))
		})

		got, err := client.StartTest(context.Background(), StartTestRequest{
			TopicID:       7,
			QuestionCount: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, 57, got.TestID)
		// Empty set passes through; the caller decides it is a dead end.
		assert.Empty(t, got.Questions)
	})

	t.Run("missing test id rejected", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"questions": []}`))
		})

		_, err := client.StartTest(context.Background(), StartTestRequest{TopicID: 7, QuestionCount: 10})
		require.Error(t, err)
	})
}

func TestSubmitTest(t *testing.T) {
	t.Run("sends idempotency key and null answers", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/tests/55/submit", r.URL.Path)
			assert.Equal(t, "attempt-key-1", r.Header.Get("Idempotency-Key"))

			var reqBody struct {
				Responses []struct {
					QuestionID int     `json:"questionId"`
					Answer     *string `json:"answer"`
				} `json:"responses"`
				TotalTimeSeconds int `json:"totalTimeSeconds"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
			require.Len(t, reqBody.Responses, 2)
			require.NotNil(t, reqBody.Responses[0].Answer)
			assert.Equal(t, "B", *reqBody.Responses[0].Answer)
			assert.Nil(t, reqBody.Responses[1].Answer)
			assert.Equal(t, 612, reqBody.TotalTimeSeconds)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"score": 90,
				"correctCount": 9,
				"incorrectCount": 1,
				"starEarned": true,
				"perQuestionCorrectness": [
					{"questionId": 1, "correct": true, "source": "AI", "correctAnswer": "B"},
					{"questionId": 2, "correct": false, "source": "PreviousYear", "correctAnswer": "A"}
				]
			}`))
		})

		answer := "B"
		got, err := client.SubmitTest(context.Background(), 55, "attempt-key-1", SubmitTestRequest{
			Responses: []AnswerRecord{
				{QuestionID: 1, Answer: &answer},
				{QuestionID: 2},
			},
			TotalTimeSeconds: 612,
		})
		require.NoError(t, err)
		assert.Equal(t, float64(90), got.Score)
		assert.True(t, got.StarEarned)
		require.Len(t, got.PerQuestion, 2)

		bySource := got.BySource()
		assert.Len(t, bySource[SourceAI], 1)
		assert.Len(t, bySource[SourcePreviousYear], 1)
	})

	t.Run("server error surfaces status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.SubmitTest(context.Background(), 55, "k", SubmitTestRequest{})
		require.Error(t, err)
		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	})
}

func TestResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/tests/55/results", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"score": 70, "correctCount": 7, "incorrectCount": 3, "starEarned": false}`))
	})

	got, err := client.Results(context.Background(), 55)
	require.NoError(t, err)
	assert.Equal(t, float64(70), got.Score)
	assert.False(t, got.StarEarned)
}
