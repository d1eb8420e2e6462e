package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lumenwell/lumen/internal/models"
)

func testClient(url string) *Client {
	return New(models.Settings{RemoteURL: url, RequestTimeoutSec: 2}, "")
}

func testEntry() models.MoodEntry {
	return models.MoodEntry{
		ID:           "e1",
		Mood:         "Anxious",
		Journal:      "long day",
		Affirmation:  "this too shall pass",
		SleepQuality: 4.5,
		SleepHours:   6,
		Focus:        1,
		EntryDate:    "2026-08-28",
	}
}

func TestSubmitMoodSendsWirePayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/moods" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("body is not JSON: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	if err := testClient(srv.URL).SubmitMood(context.Background(), testEntry()); err != nil {
		t.Fatalf("SubmitMood failed: %v", err)
	}

	for _, key := range []string{"mood", "journalEntry", "affirmation", "sleepQuality", "selectedHour", "selectedFocus"} {
		if _, ok := got[key]; !ok {
			t.Errorf("payload missing key %q", key)
		}
	}
	if got["mood"] != "Anxious" {
		t.Errorf("mood = %v, want Anxious", got["mood"])
	}
	if got["selectedHour"] != float64(6) {
		t.Errorf("selectedHour = %v, want 6", got["selectedHour"])
	}
}

func TestSubmitMoodBearerToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	client := New(models.Settings{RemoteURL: srv.URL, RequestTimeoutSec: 2}, "tok-123")
	if err := client.SubmitMood(context.Background(), testEntry()); err != nil {
		t.Fatalf("SubmitMood failed: %v", err)
	}
	if auth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", auth)
	}
}

func TestSubmitMoodStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := testClient(srv.URL).SubmitMood(context.Background(), testEntry())
	netErr, ok := IsNetworkError(err)
	if !ok {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if netErr.Kind != KindStatus || netErr.Status != http.StatusInternalServerError {
		t.Errorf("got kind=%s status=%d, want status/500", netErr.Kind, netErr.Status)
	}
}

func TestSubmitMoodUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	err := testClient(srv.URL).SubmitMood(context.Background(), testEntry())
	netErr, ok := IsNetworkError(err)
	if !ok {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if netErr.Kind != KindUnreachable {
		t.Errorf("kind = %s, want %s", netErr.Kind, KindUnreachable)
	}
}

func TestSubmitMoodTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := testClient(srv.URL).SubmitMood(ctx, testEntry())
	netErr, ok := IsNetworkError(err)
	if !ok {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if netErr.Kind != KindTimeout {
		t.Errorf("kind = %s, want %s", netErr.Kind, KindTimeout)
	}
}

func TestFetchMoods(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/moods" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode([]RemoteMood{
			{Mood: "Happy", SleepQuality: 8, SelectedHour: 8, CreatedAt: "2026-08-28T09:00:00Z"},
			{Mood: "Sad", SleepQuality: 3, SelectedHour: 5, CreatedAt: "2026-08-27T09:00:00Z"},
		})
	}))
	defer srv.Close()

	moods, err := testClient(srv.URL).FetchMoods(context.Background())
	if err != nil {
		t.Fatalf("FetchMoods failed: %v", err)
	}
	if len(moods) != 2 || moods[0].Mood != "Happy" || moods[1].Mood != "Sad" {
		t.Errorf("unexpected moods: %+v", moods)
	}
}

func TestFetchMoodsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>not json</html>")
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).FetchMoods(context.Background())
	netErr, ok := IsNetworkError(err)
	if !ok || netErr.Kind != KindMalformed {
		t.Errorf("expected malformed NetworkError, got %v", err)
	}
}

func TestSubmitAnswersWireKeys(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/answers" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	answers := map[int]int{0: 1, 1: 3, 2: 5, 3: 2, 4: 4, 5: 3}
	if err := testClient(srv.URL).SubmitAnswers(context.Background(), "user-7", answers); err != nil {
		t.Fatalf("SubmitAnswers failed: %v", err)
	}
	if got["userId"] != "user-7" {
		t.Errorf("userId = %v, want user-7", got["userId"])
	}
	keyed, ok := got["answers"].(map[string]any)
	if !ok {
		t.Fatalf("answers is not an object: %v", got["answers"])
	}
	for _, key := range []string{"q0", "q1", "q2", "q3", "q4", "q5"} {
		if _, ok := keyed[key]; !ok {
			t.Errorf("answers missing key %q", key)
		}
	}
	if keyed["q2"] != float64(5) {
		t.Errorf("q2 = %v, want 5", keyed["q2"])
	}
}

func TestFetchAnswersPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/answers/user-7" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]RemoteAnswers{{UserID: "user-7", Answers: map[string]int{"q0": 2, "q5": 4}}})
	}))
	defer srv.Close()

	answers, err := testClient(srv.URL).FetchAnswers(context.Background(), "user-7")
	if err != nil {
		t.Fatalf("FetchAnswers failed: %v", err)
	}
	if len(answers) != 1 || answers[0].Answers["q5"] != 4 {
		t.Errorf("unexpected answers: %+v", answers)
	}
}

func TestReplayRoutesByKind(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
	}))
	defer srv.Close()

	client := testClient(srv.URL)
	if err := client.Replay(context.Background(), "mood", []byte(`{"mood":"Meh"}`)); err != nil {
		t.Fatalf("Replay(mood) failed: %v", err)
	}
	if err := client.Replay(context.Background(), "answers", []byte(`{"userId":"u"}`)); err != nil {
		t.Fatalf("Replay(answers) failed: %v", err)
	}
	if len(paths) != 2 || paths[0] != "/api/moods" || paths[1] != "/api/answers" {
		t.Errorf("unexpected paths: %v", paths)
	}

	if err := client.Replay(context.Background(), "bogus", nil); err == nil {
		t.Error("expected unknown kind to fail")
	}
}

func TestUserIDFromToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "user-42",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing test token failed: %v", err)
	}

	userID, err := UserIDFromToken(signed)
	if err != nil {
		t.Fatalf("UserIDFromToken failed: %v", err)
	}
	if userID != "user-42" {
		t.Errorf("userID = %q, want user-42", userID)
	}
}

func TestUserIDFromTokenFallsBackToSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-9"})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing test token failed: %v", err)
	}

	userID, err := UserIDFromToken(signed)
	if err != nil {
		t.Fatalf("UserIDFromToken failed: %v", err)
	}
	if userID != "user-9" {
		t.Errorf("userID = %q, want user-9", userID)
	}
}

func TestUserIDFromTokenGarbage(t *testing.T) {
	if _, err := UserIDFromToken("not-a-jwt"); err == nil {
		t.Error("expected garbage token to fail")
	}
}
