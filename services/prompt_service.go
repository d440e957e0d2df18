package services

import (
	"fmt"
	"regexp"
	"strings"

	"GenAIStudio/models"
)

// PromptTemplate is a fixed prompt with {name} placeholders.
type PromptTemplate struct {
	text      string
	variables []string
}

var placeholderRe = regexp.MustCompile(`\{([a-z_]+)\}`)

// NewPromptTemplate collects the placeholder names from text, in order of first use.
func NewPromptTemplate(text string) *PromptTemplate {
	seen := map[string]bool{}
	var vars []string
	for _, m := range placeholderRe.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			vars = append(vars, m[1])
		}
	}
	return &PromptTemplate{text: text, variables: vars}
}

// Variables returns the placeholder names the template expects.
func (p *PromptTemplate) Variables() []string {
	return append([]string(nil), p.variables...)
}

// Render substitutes every placeholder. Values are inserted verbatim; a
// placeholder without a value is an error. Empty values are allowed.
func (p *PromptTemplate) Render(values map[string]string) (string, error) {
	pairs := make([]string, 0, 2*len(p.variables))
	var missing []string
	for _, name := range p.variables {
		v, ok := values[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		pairs = append(pairs, "{"+name+"}", v)
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("missing prompt variables: %s", strings.Join(missing, ", "))
	}
	// a single Replacer pass so substituted values are never re-expanded
	return strings.NewReplacer(pairs...).Replace(p.text), nil
}

var adStrategyTemplate = NewPromptTemplate(`
You are a world-class digital marketer and ad strategist.

Input:
- Ad Topic: {ad_topic}
- Company: {company_name}
- Target Audience: {target_audience}
- Objective: {campaign_objective}

Tasks:
1. Define a detailed customer avatar.
2. Describe the full customer journey from awareness to conversion.
3. Generate 3 attention-grabbing Facebook Ad Headlines.
4. Write a high-converting Facebook Ad Copy using the AIDA framework (Attention, Interest, Desire, Action).

Output in markdown with headings for each section.
`)

var sopTemplate = NewPromptTemplate(`
You are an SOP expert. Use the following inputs to write a personalized, original, and well-structured SOP.

Questions to Answer:
{questions}

Academic Background:
{academic_details}

Resume Summary:
{resume_summary}

Country: {country}
University: {university}
Course: {course}

Instructions:
- Word Count: 500-800 words
- Avoid plagiarism
- Keep it formal and goal-oriented

Now write the SOP.
`)

// BuildAdStrategyPrompt fills the ad strategist template.
func BuildAdStrategyPrompt(req models.CampaignRequest) (string, error) {
	return adStrategyTemplate.Render(map[string]string{
		"ad_topic":           req.Topic,
		"company_name":       req.Company,
		"target_audience":    req.Audience,
		"campaign_objective": string(req.Objective),
	})
}

// BuildSOPPrompt fills the SOP template. Questions are one per line.
func BuildSOPPrompt(req models.SOPRequest) (string, error) {
	return sopTemplate.Render(map[string]string{
		"questions":        strings.Join(req.Questions, "\n"),
		"academic_details": req.AcademicText,
		"resume_summary":   req.ResumeText,
		"country":          req.Country,
		"university":       req.University,
		"course":           req.Course,
	})
}
