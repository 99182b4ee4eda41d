package ai

// SystemPrompts contains the system-level instructions for each enrichment
// operation
type SystemPrompts struct {
	RewriteSummary string
	OptimizeBullet string
	ScoreResume    string
}

// UserPrompts contains user prompt templates with placeholders for dynamic
// content
type UserPrompts struct {
	RewriteSummary string
	OptimizeBullet string
	ScoreResume    string
}

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	RewriteSummary: `You are an expert resume writer with deep knowledge of what recruiters and Applicant Tracking Systems look for. Your core principles are:

- Never invent skills or experience that the candidate did not provide
- Every claim must be traceable to the candidate's work history
- Favor strong action verbs and concrete, result-oriented phrasing
- Keep output tight enough to survive a six-second recruiter scan`,

	OptimizeBullet: `You are an expert resume writer specializing in accomplishment statements. You rewrite experience bullet points using the STAR (Situation, Task, Action, Result) method or Google's XYZ formula ("Accomplished X as measured by Y, by doing Z"). You never fabricate metrics that were not present in the original text.`,

	ScoreResume: `You are an ATS (Applicant Tracking System) compatibility analyst. You evaluate resumes the way commercial parsing and ranking systems do:

- Contact information completeness and parseability
- Summary impact and keyword relevance
- Experience bullet quality and quantifiable results
- Skill density and section structure

Your feedback is specific, actionable, and honest. You never inflate scores.`,
}

// DefaultUserPrompts provides the default user prompt templates
var DefaultUserPrompts = UserPrompts{
	RewriteSummary: `Rewrite a professional, ATS-optimized summary for a resume based on these details:
Experience: %s
Skills: %s

Make it punchy, result-oriented, and use strong action verbs. Keep it under 4 sentences.
Focus on the candidate's core strengths and professional identity derived from their work history.
Return only the text of the summary.`,

	OptimizeBullet: `The following is a bullet point from a professional resume.
Rewrite it to be more impactful using the STAR (Situation, Task, Action, Result) method or Google's XYZ formula.
Ensure it is ATS-optimized with relevant keywords.

Original: "%s"

Return only the rewritten bullet point.`,

	ScoreResume: `Analyze this resume for ATS (Applicant Tracking System) compatibility.
Candidate: %s
Focus on: Contact Info, Summary impact, Experience bullet points (quantifiable results), and Skill density.

Resume Data: %s

Provide a score (0-100) and specific feedback items, each with a category (Formatting, Content or Keywords), a status (good, warning, critical) and a short "suggestion" on how to fix it.`,
}

// resolvePrompt selects the prompt string with a clear priority order:
// an operator-configured prompt (inline or loaded from file) wins over
// the hardcoded default.
func resolvePrompt(fromConfig, fromDefault string) string {
	if fromConfig != "" {
		return fromConfig
	}
	return fromDefault
}
