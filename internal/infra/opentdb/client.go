// Package opentdb is the HTTP client for the Open Trivia Database
// (https://opentdb.com). The API reports failures inside its response
// envelope: response_code 0 is success, anything else is a provider-side
// failure even when the transport call succeeded.
package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"trivia-cli/internal/domain"
)

const (
	questionsPath  = "/api.php"
	categoriesPath = "/api_category.php"
)

// Client fetches questions and categories.
type Client struct {
	baseURL string
	httpc   *http.Client
	rnd     *rand.Rand
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithRandSource makes the answer shuffle deterministic.
func WithRandSource(src rand.Source) Option {
	return func(c *Client) { c.rnd = rand.New(src) }
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type questionRecord struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type questionsResponse struct {
	ResponseCode int              `json:"response_code"`
	Results      []questionRecord `json:"results"`
}

type categoriesResponse struct {
	TriviaCategories []domain.Category `json:"trivia_categories"`
}

// FetchQuestions requests questions matching cfg and normalizes each
// record: HTML entities decoded, answers merged and shuffled once so the
// presented order stays fixed for the question's lifetime.
func (c *Client) FetchQuestions(ctx context.Context, cfg domain.QuizConfig) ([]domain.Question, error) {
	params := url.Values{}
	params.Set("amount", strconv.Itoa(cfg.QuestionCount))
	if cfg.Category != "" {
		params.Set("category", cfg.Category)
	}
	if cfg.Difficulty != "" {
		params.Set("difficulty", string(cfg.Difficulty))
	}
	if cfg.Type != domain.TypeAny && cfg.Type != "" {
		params.Set("type", string(cfg.Type))
	}

	var payload questionsResponse
	if err := c.getJSON(ctx, questionsPath, params, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	if payload.ResponseCode != 0 {
		return nil, fmt.Errorf("%w: response code %d", domain.ErrFetchFailed, payload.ResponseCode)
	}

	questions := make([]domain.Question, 0, len(payload.Results))
	for _, record := range payload.Results {
		question, ok := c.normalize(record)
		if !ok {
			continue
		}
		questions = append(questions, question)
	}
	return questions, nil
}

// ListCategories fetches the category list. Callers that want the
// documented fail-soft behavior go through memory.CategoryCache.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var payload categoriesResponse
	if err := c.getJSON(ctx, categoriesPath, nil, &payload); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	categories := payload.TriviaCategories
	for i := range categories {
		categories[i].Name = html.UnescapeString(categories[i].Name)
	}
	return categories, nil
}

// normalize decodes a raw record and builds the fixed answer permutation.
// Records the provider got wrong (no incorrect answers, duplicate answers)
// are dropped.
func (c *Client) normalize(record questionRecord) (domain.Question, bool) {
	question := domain.Question{
		Category:      html.UnescapeString(record.Category),
		Type:          domain.QuestionType(record.Type),
		Difficulty:    domain.Difficulty(record.Difficulty),
		Prompt:        html.UnescapeString(record.Question),
		CorrectAnswer: html.UnescapeString(record.CorrectAnswer),
	}
	if question.Prompt == "" || question.CorrectAnswer == "" || len(record.IncorrectAnswers) == 0 {
		return domain.Question{}, false
	}

	question.IncorrectAnswers = make([]string, len(record.IncorrectAnswers))
	for i, raw := range record.IncorrectAnswers {
		question.IncorrectAnswers[i] = html.UnescapeString(raw)
	}

	seen := map[string]struct{}{question.CorrectAnswer: {}}
	answers := make([]string, 0, len(question.IncorrectAnswers)+1)
	answers = append(answers, question.IncorrectAnswers...)
	answers = append(answers, question.CorrectAnswer)
	for _, a := range question.IncorrectAnswers {
		if _, dup := seen[a]; dup {
			return domain.Question{}, false
		}
		seen[a] = struct{}{}
	}

	c.rnd.Shuffle(len(answers), func(i, j int) {
		answers[i], answers[j] = answers[j], answers[i]
	})
	question.PresentedAnswers = answers
	return question, true
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
