package renderer

import "github.com/etnz/growth"

type advice struct {
	Platform growth.Platform
	*growth.AdvisorResponse
}

// RenderAdvice renders the strategist's advice for platform p.
func RenderAdvice(p growth.Platform, r *growth.AdvisorResponse) string {
	return renderTemplate("advice.md", advice{Platform: p, AdvisorResponse: r})
}
