package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/seedstage-inc/seedstage-engine/pkg/apperrors"
	"github.com/seedstage-inc/seedstage-engine/pkg/models"
	"github.com/seedstage-inc/seedstage-engine/pkg/services"
)

// seedDemoData registers the fixture accounts used by demo walkthroughs.
// Because every id carries the demo prefix, seeding never starts a session
// and re-running over an already seeded store is a no-op.
func (e *Engine) seedDemoData(ctx context.Context) error {
	founders := []services.RegisterInput{
		{
			ID:          models.DemoIDPrefix + "founder-1",
			FirstName:   "Sara",
			LastName:    "Haddad",
			Email:       "sara@demo.seedstage.io",
			Role:        models.RoleFounder,
			StartupName: "Eilm",
			StartupBio:  "Adaptive tutoring for underserved school districts.",
			Industry:    "edtech",
		},
		{
			ID:          models.DemoIDPrefix + "founder-2",
			FirstName:   "Omar",
			LastName:    "Nasser",
			Email:       "omar@demo.seedstage.io",
			Role:        models.RoleFounder,
			StartupName: "Farmline",
			StartupBio:  "Logistics marketplace connecting smallholder farms to buyers.",
			Industry:    "agritech",
		},
	}

	for _, input := range founders {
		if _, _, err := e.Accounts.Register(ctx, input); err != nil {
			if errors.Is(err, apperrors.ErrDuplicateEmail) {
				continue // already seeded
			}
			return fmt.Errorf("seed founder %s: %w", input.ID, err)
		}
	}

	partners := []models.PartnerProfile{
		{
			OwnerID:      models.DemoIDPrefix + "partner-1",
			Name:         "Lina Aboud",
			Email:        "lina@demo.seedstage.io",
			Role:         models.PartnerRoleCTO,
			Years:        7,
			Skills:       []string{"edtech", "mobile", "ml"},
			HoursPerWeek: 40,
			Commitment:   models.CommitmentFullTime,
			City:         "Amman",
			Remote:       true,
			WorkStyle:    models.WorkStyleStructured,
			Goal:         "long-term company building",
			Verified:     true,
			Completeness: 90,
		},
		{
			OwnerID:      models.DemoIDPrefix + "partner-2",
			Name:         "Karim Odeh",
			Email:        "karim@demo.seedstage.io",
			Role:         models.PartnerRoleCMO,
			Years:        4,
			Skills:       []string{"growth", "content"},
			HoursPerWeek: 15,
			Commitment:   models.CommitmentPartTime,
			City:         "Dubai",
			Remote:       true,
			WorkStyle:    models.WorkStyleFast,
			Goal:         "exit in 3 years",
			Verified:     false,
			Completeness: 60,
		},
	}

	for _, p := range partners {
		if err := e.Accounts.RegisterPartner(ctx, p); err != nil {
			return fmt.Errorf("seed partner %s: %w", p.OwnerID, err)
		}
	}

	return nil
}
