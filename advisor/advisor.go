// Package advisor asks a Gemini model for growth advice based on a
// platform's recent stats and posts.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/etnz/growth"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const (
	// RecentStats is the number of stats sent, the last ones by insertion.
	RecentStats = 14
	// TopPosts is the number of posts sent, the first ones by insertion.
	TopPosts = 10
	// MinStats is the number of stats needed to talk about trends.
	MinStats = 2
)

// Generator generates content. *genai.Models implements it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Advisor is a social media growth strategist.
type Advisor struct {
	ModelName string
	Config    *genai.GenerateContentConfig
	gen       Generator
	log       *slog.Logger
}

// New returns an Advisor generating with gen.
func New(gen Generator, log *slog.Logger) *Advisor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Advisor{
		ModelName: DefaultModel,
		Config:    strategist(),
		gen:       gen,
		log:       log,
	}
}

func strategist() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert Social Media Growth Strategist.
			Your tone is encouraging, data-driven, and direct. Keep advice concise.`}}},
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"advice": {
					Type:        genai.TypeString,
					Description: "A summary paragraph of the analysis and strategic advice.",
				},
				"focusArea": {
					Type:        genai.TypeString,
					Description: "A short phrase describing the main area to improve (e.g., 'Increase Reel Frequency' or 'Improve Shorts Hooks').",
				},
				"actionItems": {
					Type:        genai.TypeArray,
					Items:       &genai.Schema{Type: genai.TypeString},
					Description: "A list of 3-5 specific, bullet-point tasks the user should do.",
				},
			},
			Required: []string{"advice", "focusArea", "actionItems"},
		},
	}
}

// Advise asks for advice about platform p.
//
// stats and posts may span all platforms, they are filtered here. At least
// MinStats stats are required for p, otherwise a *growth.ValidationError is
// returned and nothing is sent.
func (a *Advisor) Advise(ctx context.Context, stats []growth.DailyStat, posts []growth.Post, p growth.Platform) (*growth.AdvisorResponse, error) {
	if err := Check(stats, p); err != nil {
		return nil, err
	}
	return a.Generate(ctx, growth.FilterByPlatform(stats, p), growth.FilterByPlatform(posts, p))
}

// Check reports whether stats hold enough days for p to ask for advice.
func Check(stats []growth.DailyStat, p growth.Platform) error {
	if len(growth.FilterByPlatform(stats, p)) < MinStats {
		return &growth.ValidationError{Failures: []string{
			fmt.Sprintf("Need at least %d days of data to generate trends.", MinStats),
		}}
	}
	return nil
}

// Generate sends the last RecentStats stats and the first TopPosts posts,
// as given, and decodes the answer. Any failure is a
// *growth.RemoteAdviceError.
func (a *Advisor) Generate(ctx context.Context, stats []growth.DailyStat, posts []growth.Post) (*growth.AdvisorResponse, error) {
	// Last by insertion order, not by date.
	if len(stats) > RecentStats {
		stats = stats[len(stats)-RecentStats:]
	}
	if len(posts) > TopPosts {
		posts = posts[:TopPosts]
	}

	prompt, err := newPrompt(stats, posts)
	if err != nil {
		return nil, &growth.RemoteAdviceError{Err: err}
	}

	a.log.Debug("requesting advice", "model", a.ModelName, "stats", len(stats), "posts", len(posts))
	resp, err := a.gen.GenerateContent(ctx, a.ModelName, genai.Text(prompt), a.Config)
	if err != nil {
		return nil, &growth.RemoteAdviceError{Err: err}
	}

	text := responseText(resp)
	if text == "" {
		return nil, &growth.RemoteAdviceError{Err: fmt.Errorf("no response text from %s", a.ModelName)}
	}
	advice, err := decodeResponse(text)
	if err != nil {
		return nil, &growth.RemoteAdviceError{Err: err}
	}
	a.log.Debug("advice received", "focus", advice.FocusArea, "actions", len(advice.ActionItems))
	return advice, nil
}

// Result is the outcome of an asynchronous advice request.
type Result struct {
	Response *growth.AdvisorResponse
	Err      error
}

// AdviseAsync runs Advise in the background. The returned channel delivers
// exactly one Result, then is closed. Requests are independent of each
// other and of the tracker: callers pass a snapshot of the collections.
func (a *Advisor) AdviseAsync(ctx context.Context, stats []growth.DailyStat, posts []growth.Post, p growth.Platform) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		resp, err := a.Advise(ctx, stats, posts, p)
		ch <- Result{Response: resp, Err: err}
	}()
	return ch
}

func newPrompt(stats []growth.DailyStat, posts []growth.Post) (string, error) {
	jstats, err := json.Marshal(stats)
	if err != nil {
		return "", fmt.Errorf("cannot encode stats: %w", err)
	}
	jposts, err := json.Marshal(posts)
	if err != nil {
		return "", fmt.Errorf("cannot encode posts: %w", err)
	}

	var b strings.Builder
	b.WriteString("I am a social media manager. Here is my recent data:\n\n")
	fmt.Fprintf(&b, "Recent Daily Stats (JSON):\n%s\n\n", jstats)
	fmt.Fprintf(&b, "Top Performing Posts (JSON):\n%s\n\n", jposts)
	b.WriteString("Please provide specific, actionable growth advice.\n")
	b.WriteString("Analyze the trends in followers and engagement.\n")
	b.WriteString("Suggest what type of content to double down on based on the top posts.\n")
	b.WriteString("Identify if I am posting enough.\n")
	return b.String(), nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}
