package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/seedstage-inc/seedstage-engine/pkg/jsonutil"
	"github.com/seedstage-inc/seedstage-engine/pkg/models"
)

const reviewSystemPrompt = `You are a startup accelerator coach reviewing a founder's stage deliverable.
Respond with JSON only: {"score": 0-100, "feedback": "...", "flags": ["..."]}.
Score reflects readiness of the deliverable; flags list concrete gaps.`

const assessmentSystemPrompt = `You are a startup accelerator analyst assessing an incubation application.
Respond with JSON only: {"readiness": 0-100, "tech": 0-100, "market": 0-100, "opinion": "..."}.`

const matchSystemPrompt = `You are matching co-founder candidates to a startup.
For every candidate respond with JSON only, as an array:
[{"partner_id": "...", "role": 0-100, "experience": 0-100, "industry": 0-100, "style": 0-100,
  "reasoning": ["..."], "risk": "..."}].
Role scores how the candidate's functional role fills gaps implied by the startup's
description and industry. Experience scores fit against the startup's maturity.
Industry scores domain-tag depth. Style scores behavioral compatibility.`

func buildReviewPrompt(task models.Task, startup models.Startup) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Startup: %s (industry: %s)\n%s\n\n", startup.Name, startup.Industry, startup.Bio)
	fmt.Fprintf(&b, "Stage %d deliverable: %s\n%s\n\n", task.LevelID, task.Title, task.Description)
	if task.Submission != nil {
		fmt.Fprintf(&b, "Submitted file %s:\n%s\n", task.Submission.FileName, task.Submission.Content)
	}
	return b.String()
}

func buildAssessmentPrompt(startup models.Startup) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Startup: %s\nIndustry: %s\n\n%s\n", startup.Name, startup.Industry, startup.Bio)
	if len(startup.Cofounders) > 0 {
		b.WriteString("\nTeam:\n")
		for _, c := range startup.Cofounders {
			fmt.Fprintf(&b, "- %s (%s)\n", c.Name, c.Role)
		}
	}
	return b.String()
}

func buildMatchPrompt(startup models.Startup, partners []models.PartnerProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Startup: %s (industry: %s)\n%s\n\nCandidates:\n", startup.Name, startup.Industry, startup.Bio)
	for _, p := range partners {
		fmt.Fprintf(&b, "- id=%s role=%s years=%d skills=%s style=%s goal=%s commitment=%s hours=%d\n",
			p.OwnerID, p.Role, p.Years, strings.Join(p.Skills, ","), p.WorkStyle, p.Goal, p.Commitment, p.HoursPerWeek)
	}
	return b.String()
}

// Payload shapes use RawMessage for the numeric fields because models
// routinely return scores as strings.
type reviewPayload struct {
	Score    json.RawMessage `json:"score"`
	Feedback string          `json:"feedback"`
	Flags    []string        `json:"flags"`
}

type assessmentPayload struct {
	Readiness json.RawMessage `json:"readiness"`
	Tech      json.RawMessage `json:"tech"`
	Market    json.RawMessage `json:"market"`
	Opinion   string          `json:"opinion"`
}

type candidatePayload struct {
	PartnerID  json.RawMessage `json:"partner_id"`
	Role       json.RawMessage `json:"role"`
	Experience json.RawMessage `json:"experience"`
	Industry   json.RawMessage `json:"industry"`
	Style      json.RawMessage `json:"style"`
	Reasoning  []string        `json:"reasoning"`
	Risk       string          `json:"risk"`
}

func parseReview(response string) (*models.Review, error) {
	jsonStr, err := ExtractJSON(response)
	if err != nil {
		return nil, err
	}
	var p reviewPayload
	if err := json.Unmarshal([]byte(jsonStr), &p); err != nil {
		return nil, NewError(ErrorTypeParse, "malformed review payload", false, err)
	}
	return &models.Review{
		Score:    jsonutil.FlexibleIntValue(p.Score),
		Feedback: p.Feedback,
		Flags:    p.Flags,
	}, nil
}

func parseAssessment(response string) (*Assessment, error) {
	jsonStr, err := ExtractJSON(response)
	if err != nil {
		return nil, err
	}
	var p assessmentPayload
	if err := json.Unmarshal([]byte(jsonStr), &p); err != nil {
		return nil, NewError(ErrorTypeParse, "malformed assessment payload", false, err)
	}
	return &Assessment{
		Metrics: models.Metrics{
			Readiness: jsonutil.FlexibleIntValue(p.Readiness),
			Tech:      jsonutil.FlexibleIntValue(p.Tech),
			Market:    jsonutil.FlexibleIntValue(p.Market),
		},
		Opinion: p.Opinion,
	}, nil
}

func parseCandidateScores(response string) ([]CandidateScore, error) {
	jsonStr, err := ExtractJSON(response)
	if err != nil {
		return nil, err
	}
	var payloads []candidatePayload
	if err := json.Unmarshal([]byte(jsonStr), &payloads); err != nil {
		return nil, NewError(ErrorTypeParse, "malformed match payload", false, err)
	}
	scores := make([]CandidateScore, 0, len(payloads))
	for _, p := range payloads {
		scores = append(scores, CandidateScore{
			PartnerID: jsonutil.FlexibleStringValue(p.PartnerID),
			SubScores: models.SubScores{
				Role:       jsonutil.FlexibleIntValue(p.Role),
				Experience: jsonutil.FlexibleIntValue(p.Experience),
				Industry:   jsonutil.FlexibleIntValue(p.Industry),
				Style:      jsonutil.FlexibleIntValue(p.Style),
			},
			Reasoning: p.Reasoning,
			Risk:      p.Risk,
		})
	}
	return scores, nil
}
