package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildFitSummaryPrompt creates the prompt for a single candidate's fit
// rationale. It only sees the job description and this candidate's resume:
// no other candidate's score or summary leaks in, which keeps summaries
// independent and the step parallelizable.
func (pb *PromptBuilder) BuildFitSummaryPrompt(jobDescription, resumeText string, similarityScore float64, skillSummary string, topSkills []string) string {
	topSkillsLine := "None identified"
	if len(topSkills) > 0 {
		topSkillsLine = strings.Join(topSkills, ", ")
	}

	return fmt.Sprintf(`You are a professional HR assistant helping to evaluate job candidates.

JOB DESCRIPTION:
%s

CANDIDATE INFORMATION:
%s

SIMILARITY SCORE: %.3f

KEY SKILL MATCHES FOUND:
%s

TOP MATCHING SKILLS: %s

Please provide a brief, professional summary (2-3 sentences) explaining why this candidate would be a good fit for this role based on the information provided. Focus on the specific skills and experience that align with the job requirements. Return ONLY the summary text.`,
		jobDescription, resumeText, similarityScore, skillSummary, topSkillsLine)
}
