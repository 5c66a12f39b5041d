package opentdb

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"testing"
	"time"

	"trivia-cli/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second, WithRandSource(rand.NewSource(1)))
}

func TestFetchQuestionsBuildsParams(t *testing.T) {
	var query url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"response_code":0,"results":[]}`))
	})

	cfg := domain.QuizConfig{
		QuestionCount: 10,
		Category:      "9",
		Difficulty:    domain.DifficultyHard,
		Type:          domain.TypeMultiple,
		TimerSeconds:  300,
	}
	if _, err := client.FetchQuestions(context.Background(), cfg); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if query.Get("amount") != "10" || query.Get("category") != "9" ||
		query.Get("difficulty") != "hard" || query.Get("type") != "multiple" {
		t.Fatalf("unexpected query: %v", query)
	}
}

func TestFetchQuestionsOmitsAnyType(t *testing.T) {
	var query url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"response_code":0,"results":[]}`))
	})

	cfg := domain.QuizConfig{QuestionCount: 5, Type: domain.TypeAny, TimerSeconds: 60}
	if _, err := client.FetchQuestions(context.Background(), cfg); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if _, present := query["type"]; present {
		t.Fatalf("type=any must be omitted, got %v", query)
	}
	if _, present := query["category"]; present {
		t.Fatalf("empty category must be omitted, got %v", query)
	}
}

func TestFetchQuestionsDecodesAndShuffles(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response_code":0,"results":[{
			"category":"Science &amp; Nature",
			"type":"multiple",
			"difficulty":"easy",
			"question":"What&#039;s H2O?",
			"correct_answer":"Water",
			"incorrect_answers":["Salt","Air","Fire"]
		}]}`))
	})

	questions, err := client.FetchQuestions(context.Background(), domain.QuizConfig{QuestionCount: 5, Type: domain.TypeMultiple, TimerSeconds: 60})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected one question, got %d", len(questions))
	}

	q := questions[0]
	if q.Category != "Science & Nature" || q.Prompt != "What's H2O?" {
		t.Fatalf("entities not decoded: %+v", q)
	}
	if len(q.PresentedAnswers) != 4 {
		t.Fatalf("expected 4 presented answers, got %v", q.PresentedAnswers)
	}

	want := []string{"Air", "Fire", "Salt", "Water"}
	got := append([]string(nil), q.PresentedAnswers...)
	sort.Strings(got)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("presented answers are not a permutation of all answers: %v", q.PresentedAnswers)
		}
	}
}

func TestFetchQuestionsProviderFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response_code":1,"results":[]}`))
	})

	_, err := client.FetchQuestions(context.Background(), domain.QuizConfig{QuestionCount: 5, Type: domain.TypeAny, TimerSeconds: 60})
	if !errors.Is(err, domain.ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
}

func TestFetchQuestionsDropsMalformedRecords(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response_code":0,"results":[
			{"type":"multiple","difficulty":"easy","question":"Broken","correct_answer":"Yes","incorrect_answers":[]},
			{"type":"boolean","difficulty":"easy","question":"Is water wet?","correct_answer":"True","incorrect_answers":["False"]}
		]}`))
	})

	questions, err := client.FetchQuestions(context.Background(), domain.QuizConfig{QuestionCount: 5, Type: domain.TypeAny, TimerSeconds: 60})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(questions) != 1 || questions[0].Prompt != "Is water wet?" {
		t.Fatalf("expected malformed record dropped, got %+v", questions)
	}
}

func TestListCategories(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != categoriesPath {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"trivia_categories":[{"id":9,"name":"General Knowledge"},{"id":14,"name":"Entertainment: Television"}]}`))
	})

	categories, err := client.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(categories) != 2 || categories[0].ID != 9 || categories[1].Name != "Entertainment: Television" {
		t.Fatalf("unexpected categories: %+v", categories)
	}
}

func TestListCategoriesTransportError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	})

	if _, err := client.ListCategories(context.Background()); err == nil {
		t.Fatalf("expected error on bad status")
	}
}
