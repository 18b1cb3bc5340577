package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/etnz/growth"
	"github.com/google/go-cmp/cmp"
	"google.golang.org/genai"
)

// fakeGenerator answers with a fixed text and records the requests.
type fakeGenerator struct {
	mu     sync.Mutex
	text   string
	err    error
	calls  int
	prompt string
	model  string
	config *genai.GenerateContentConfig
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.model = model
	f.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: f.text}}}},
		},
	}, nil
}

const goodAnswer = `{
	"advice": "Reels are carrying your growth.",
	"focusArea": "Increase Reel Frequency",
	"actionItems": ["Post 4 reels a week", "Reply to every comment", "Test hooks"]
}`

func TestAdvise(t *testing.T) {
	gen := &fakeGenerator{text: goodAnswer}
	a := New(gen, nil)

	got, err := a.Advise(context.Background(), growth.SeedStats(), growth.SeedPosts(), growth.Instagram)
	if err != nil {
		t.Fatalf("Advise() = %v", err)
	}
	want := &growth.AdvisorResponse{
		Advice:      "Reels are carrying your growth.",
		FocusArea:   "Increase Reel Frequency",
		ActionItems: []string{"Post 4 reels a week", "Reply to every comment", "Test hooks"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Advise() mismatch (-want +got):\n%s", diff)
	}

	if gen.model != DefaultModel {
		t.Errorf("model = %q, want %q", gen.model, DefaultModel)
	}
	if gen.config.ResponseMIMEType != "application/json" {
		t.Errorf("ResponseMIMEType = %q", gen.config.ResponseMIMEType)
	}
	if diff := cmp.Diff([]string{"advice", "focusArea", "actionItems"}, gen.config.ResponseSchema.Required); diff != "" {
		t.Errorf("Required mismatch (-want +got):\n%s", diff)
	}
	// Only instagram data is sent.
	if strings.Contains(gen.prompt, `"youtube"`) {
		t.Errorf("prompt contains another platform's data:\n%s", gen.prompt)
	}
	if !strings.Contains(gen.prompt, `"Morning Routine"`) {
		t.Errorf("prompt is missing the instagram post:\n%s", gen.prompt)
	}
}

func TestAdviseNeedsTwoStats(t *testing.T) {
	gen := &fakeGenerator{text: goodAnswer}
	a := New(gen, nil)

	stats := growth.SeedStats()[:1] // a single instagram day
	_, err := a.Advise(context.Background(), stats, growth.SeedPosts(), growth.Instagram)

	var verr *growth.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Advise() = %v, want a *growth.ValidationError", err)
	}
	if gen.calls != 0 {
		t.Errorf("model was called %d times, want 0", gen.calls)
	}
}

// sentData extracts the JSON arrays embedded in the prompt.
func sentData(t *testing.T, prompt string) (stats []growth.DailyStat, posts []growth.Post) {
	t.Helper()
	lines := strings.Split(prompt, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "Recent Daily Stats"):
			if err := json.Unmarshal([]byte(lines[i+1]), &stats); err != nil {
				t.Fatal(err)
			}
		case strings.HasPrefix(line, "Top Performing Posts"):
			if err := json.Unmarshal([]byte(lines[i+1]), &posts); err != nil {
				t.Fatal(err)
			}
		}
	}
	return stats, posts
}

func TestGenerateSlicesByInsertionOrder(t *testing.T) {
	var stats []growth.DailyStat
	// Dates go backwards, so the last inserted are the oldest days.
	for i := range 20 {
		stats = append(stats, growth.DailyStat{
			ID:       string(rune('a' + i)),
			Date:     "2024-01-" + string(rune('0'+(29-i)/10)) + string(rune('0'+(29-i)%10)),
			Platform: growth.YouTube,
		})
	}
	var posts []growth.Post
	for i := range 12 {
		posts = append(posts, growth.Post{ID: string(rune('A' + i)), Title: "t", Platform: growth.YouTube, Type: growth.Video})
	}

	gen := &fakeGenerator{text: goodAnswer}
	if _, err := New(gen, nil).Generate(context.Background(), stats, posts); err != nil {
		t.Fatal(err)
	}

	sentStats, sentPosts := sentData(t, gen.prompt)
	if diff := cmp.Diff(stats[6:], sentStats); diff != "" {
		t.Errorf("sent stats mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(posts[:10], sentPosts); diff != "" {
		t.Errorf("sent posts mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
	}{
		{name: "network", gen: &fakeGenerator{err: errors.New("connection reset")}},
		{name: "empty", gen: &fakeGenerator{text: "  "}},
		{name: "not json", gen: &fakeGenerator{text: "Sure! Here is my advice"}},
		{name: "array", gen: &fakeGenerator{text: `["advice"]`}},
		{name: "missing focus", gen: &fakeGenerator{text: `{"advice":"a","actionItems":[]}`}},
		{name: "wrong type", gen: &fakeGenerator{text: `{"advice":"a","focusArea":"b","actionItems":"c"}`}},
		{name: "wrong item", gen: &fakeGenerator{text: `{"advice":"a","focusArea":"b","actionItems":["c", 3]}`}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := New(tc.gen, nil).Generate(context.Background(), growth.SeedStats(), growth.SeedPosts())
			var rerr *growth.RemoteAdviceError
			if !errors.As(err, &rerr) {
				t.Fatalf("Generate() = %v, want a *growth.RemoteAdviceError", err)
			}
			if !rerr.Retryable() {
				t.Errorf("remote errors must be retryable")
			}
			if resp != nil {
				t.Errorf("Generate() returned a partial result %v", resp)
			}
		})
	}
}

func TestDecodeFencedResponse(t *testing.T) {
	got, err := decodeResponse("```json\n" + goodAnswer + "\n```")
	if err != nil {
		t.Fatal(err)
	}
	if got.FocusArea != "Increase Reel Frequency" || len(got.ActionItems) != 3 {
		t.Errorf("decodeResponse() = %+v", got)
	}
}

func TestAdviseAsync(t *testing.T) {
	gen := &fakeGenerator{text: goodAnswer}
	a := New(gen, nil)

	// Two independent requests in flight.
	first := a.AdviseAsync(context.Background(), growth.SeedStats(), growth.SeedPosts(), growth.YouTube)
	second := a.AdviseAsync(context.Background(), growth.SeedStats()[:1], nil, growth.Instagram)

	r1, ok := <-first
	if !ok || r1.Err != nil || r1.Response == nil {
		t.Fatalf("first result = %+v, %v", r1, ok)
	}
	if _, ok := <-first; ok {
		t.Errorf("first channel delivered more than one result")
	}

	r2 := <-second
	var verr *growth.ValidationError
	if !errors.As(r2.Err, &verr) {
		t.Errorf("second result = %v, want a validation error", r2.Err)
	}
}
