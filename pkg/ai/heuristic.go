package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/seedstage-inc/seedstage-engine/pkg/models"
)

// Heuristic is a fully local, deterministic Reviewer and Matcher. It is the
// default provider, keeps the engine usable offline, and doubles as the
// deterministic implementation the matcher's ranking tests rely on.
type Heuristic struct{}

// NewHeuristic creates the local provider.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// ReviewTask implements Reviewer. Scores on submission substance: length of
// the deliverable, presence of a file name, and task stage.
func (h *Heuristic) ReviewTask(_ context.Context, task models.Task, _ models.Startup) (*models.Review, error) {
	score := 40
	var flags []string

	if task.Submission == nil {
		return &models.Review{
			Score:    0,
			Feedback: "No submission attached to the task.",
			Flags:    []string{"missing_submission"},
		}, nil
	}

	content := strings.TrimSpace(task.Submission.Content)
	words := len(strings.Fields(content))
	switch {
	case words >= 300:
		score += 45
	case words >= 100:
		score += 35
	case words >= 30:
		score += 20
	default:
		flags = append(flags, "thin_submission")
	}
	if task.Submission.FileName != "" {
		score += 5
	}
	if score > 100 {
		score = 100
	}

	feedback := fmt.Sprintf("Deliverable for stage %d received (%d words).", task.LevelID, words)
	return &models.Review{Score: score, Feedback: feedback, Flags: flags}, nil
}

// AssessStartup implements Reviewer.
func (h *Heuristic) AssessStartup(_ context.Context, startup models.Startup) (*Assessment, error) {
	readiness := 30
	if len(strings.Fields(startup.Bio)) >= 50 {
		readiness += 25
	}
	if len(startup.Cofounders) > 0 {
		readiness += 15
	}
	tech := 40
	market := 40
	if startup.Industry != "" {
		market += 15
	}

	return &Assessment{
		Metrics: models.Metrics{Readiness: clamp(readiness), Tech: clamp(tech), Market: clamp(market)},
		Opinion: fmt.Sprintf("%s is at an early stage; the profile supports a provisional assessment only.", startup.Name),
	}, nil
}

// ScoreCandidates implements Matcher. Pure functions of the inputs; same
// inputs always produce the same scores.
func (h *Heuristic) ScoreCandidates(_ context.Context, startup models.Startup, partners []models.PartnerProfile) ([]CandidateScore, error) {
	maturity := startupMaturity(startup)

	scores := make([]CandidateScore, 0, len(partners))
	for _, p := range partners {
		role := roleFit(startup, p)
		exp := experienceFit(maturity, p.Years)
		ind := industryFit(startup.Industry, p)
		style := styleFit(p)

		reasoning := []string{
			fmt.Sprintf("%s covering the %s seat", p.Name, strings.ToUpper(p.Role)),
			fmt.Sprintf("%d years of experience against a %s-stage startup", p.Years, maturity),
		}
		risk := ""
		if p.HoursPerWeek < 15 {
			risk = "Low weekly availability may slow execution."
		} else if !p.Verified {
			risk = "Profile is not verified yet."
		}

		scores = append(scores, CandidateScore{
			PartnerID: p.OwnerID,
			SubScores: models.SubScores{Role: role, Experience: exp, Industry: ind, Style: style},
			Reasoning: reasoning,
			Risk:      risk,
		})
	}
	return scores, nil
}

func startupMaturity(s models.Startup) string {
	switch {
	case s.Status == models.StartupApproved && s.Metrics.Readiness >= 70:
		return "growth"
	case s.Status == models.StartupApproved:
		return "early"
	default:
		return "idea"
	}
}

func roleFit(s models.Startup, p models.PartnerProfile) int {
	// A role already covered by a declared co-founder is worth less.
	for _, c := range s.Cofounders {
		if strings.EqualFold(c.Role, p.Role) {
			return 35
		}
	}
	base := 70
	if p.Role == models.PartnerRoleCTO && !strings.Contains(strings.ToLower(s.Bio), "technical") {
		base += 15
	}
	if p.Completeness >= 80 {
		base += 10
	}
	return clamp(base)
}

func experienceFit(maturity string, years int) int {
	want := map[string]int{"idea": 3, "early": 6, "growth": 10}[maturity]
	diff := years - want
	if diff < 0 {
		diff = -diff
	}
	return clamp(95 - diff*10)
}

func industryFit(industry string, p models.PartnerProfile) int {
	if industry == "" {
		return 50
	}
	needle := strings.ToLower(industry)
	score := 40
	for _, skill := range p.Skills {
		if strings.Contains(strings.ToLower(skill), needle) {
			score += 25
		}
	}
	if strings.Contains(strings.ToLower(p.Bio), needle) {
		score += 15
	}
	return clamp(score)
}

func styleFit(p models.PartnerProfile) int {
	score := 50
	if p.WorkStyle == models.WorkStyleStructured {
		score += 10
	}
	if p.Commitment == models.CommitmentFullTime {
		score += 20
	}
	if strings.Contains(strings.ToLower(p.Goal), "long") {
		score += 15
	}
	return clamp(score)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

var (
	_ Reviewer = (*Heuristic)(nil)
	_ Matcher  = (*Heuristic)(nil)
)
