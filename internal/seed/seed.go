// Package seed loads clubs, members, seasons, memberships and match templates
// from a YAML file. Applying the same file twice creates nothing new.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"football-club/matchday/internal/api"
	"football-club/matchday/internal/constants"
	"football-club/matchday/internal/logging"
	"football-club/matchday/internal/services"

	"gopkg.in/yaml.v3"
)

type File struct {
	Clubs []Club `yaml:"clubs"`
}

type Club struct {
	Name      string     `yaml:"name"`
	EmblemURL *string    `yaml:"emblem_url"`
	Members   []Member   `yaml:"members"`
	Seasons   []Season   `yaml:"seasons"`
	Templates []Template `yaml:"templates"`
}

type Member struct {
	ExternalID string               `yaml:"external_id"`
	Name       string               `yaml:"name"`
	Role       constants.MemberRole `yaml:"role"`
	ChatToken  string               `yaml:"chat_token"`
}

type Season struct {
	Name        string       `yaml:"name"`
	StartAt     time.Time    `yaml:"start_at"`
	EndAt       time.Time    `yaml:"end_at"`
	Memberships []Membership `yaml:"memberships"`
}

// Membership refers to its member by external id.
type Membership struct {
	Member string                     `yaml:"member"`
	Type   constants.MembershipType   `yaml:"type"`
	Status constants.MembershipStatus `yaml:"status"`
}

type Template struct {
	Name             string  `yaml:"name"`
	Description      *string `yaml:"description"`
	Location         string  `yaml:"location"`
	DayOfWeek        *int    `yaml:"day_of_week"`
	StartTimeOfDay   string  `yaml:"start_time_of_day"`
	DurationMinutes  *int    `yaml:"duration_minutes"`
	MinParticipants  *int    `yaml:"min_participants"`
	MaxParticipants  *int    `yaml:"max_participants"`
	PollingLeadHours *int    `yaml:"polling_lead_hours"`
	SoftLeadHours    *int    `yaml:"soft_lead_hours"`
	HardLeadHours    *int    `yaml:"hard_lead_hours"`
	NoSoftDeadline   bool    `yaml:"no_soft_deadline"`
}

// Report counts the records created by Apply.
type Report struct {
	Clubs       int
	Members     int
	Seasons     int
	Memberships int
	Templates   int
}

func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

// Apply creates whatever in f does not exist yet. Existing records are
// matched by club name, member external id, season name within the club,
// and template name within the club.
func Apply(ctx context.Context, deps *api.Dependencies, f *File) (Report, error) {
	var report Report
	for _, c := range f.Clubs {
		if err := applyClub(ctx, deps, c, &report); err != nil {
			return report, fmt.Errorf("club %q: %w", c.Name, err)
		}
	}
	return report, nil
}

func applyClub(ctx context.Context, deps *api.Dependencies, c Club, report *Report) error {
	club, err := deps.Repo.Clubs.FindByName(ctx, c.Name)
	if err != nil {
		return err
	}
	if club == nil {
		if club, err = deps.Services.Clubs.CreateClub(ctx, c.Name, c.EmblemURL); err != nil {
			return err
		}
		report.Clubs++
	}

	memberIDs := make(map[string]string, len(c.Members))
	for _, m := range c.Members {
		existing, err := deps.Repo.Members.GetByExternalID(ctx, m.ExternalID)
		if err != nil {
			return err
		}
		if existing == nil {
			existing, err = deps.Services.Clubs.CreateMember(ctx, services.CreateMemberInput{
				ClubID:     club.ID,
				ExternalID: m.ExternalID,
				Name:       m.Name,
				Role:       m.Role,
				ChatToken:  m.ChatToken,
			})
			if err != nil {
				return fmt.Errorf("member %q: %w", m.ExternalID, err)
			}
			report.Members++
		}
		memberIDs[m.ExternalID] = existing.ID
	}

	for _, s := range c.Seasons {
		season, err := deps.Repo.Seasons.FindByName(ctx, club.ID, s.Name)
		if err != nil {
			return err
		}
		if season == nil {
			season, err = deps.Services.Seasons.Create(ctx, services.CreateSeasonInput{
				ClubID:  club.ID,
				Name:    s.Name,
				StartAt: s.StartAt,
				EndAt:   s.EndAt,
			})
			if err != nil {
				return fmt.Errorf("season %q: %w", s.Name, err)
			}
			report.Seasons++
		}

		for _, ms := range s.Memberships {
			memberID, ok := memberIDs[ms.Member]
			if !ok {
				return fmt.Errorf("season %q: unknown member %q", s.Name, ms.Member)
			}
			_, err := deps.Services.Memberships.Create(ctx, services.CreateMembershipInput{
				MemberID: memberID,
				SeasonID: season.ID,
				Type:     ms.Type,
				Status:   ms.Status,
			})
			if errors.Is(err, services.ErrDuplicateMembership) {
				continue
			}
			if err != nil {
				return fmt.Errorf("membership %q: %w", ms.Member, err)
			}
			report.Memberships++
		}
	}

	templates, err := deps.Services.Matches.ListTemplates(ctx, club.ID)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(templates))
	for _, t := range templates {
		known[t.Name] = true
	}
	for _, t := range c.Templates {
		if known[t.Name] {
			continue
		}
		_, err := deps.Services.Matches.CreateTemplate(ctx, services.CreateTemplateInput{
			ClubID:           club.ID,
			Name:             t.Name,
			Description:      t.Description,
			Location:         t.Location,
			DayOfWeek:        t.DayOfWeek,
			StartTimeOfDay:   t.StartTimeOfDay,
			DurationMinutes:  t.DurationMinutes,
			MinParticipants:  t.MinParticipants,
			MaxParticipants:  t.MaxParticipants,
			PollingLeadHours: t.PollingLeadHours,
			SoftLeadHours:    t.SoftLeadHours,
			HardLeadHours:    t.HardLeadHours,
			NoSoftDeadline:   t.NoSoftDeadline,
		})
		if err != nil {
			return fmt.Errorf("template %q: %w", t.Name, err)
		}
		report.Templates++
	}

	logging.Info("Seeded club", "club", club.Name, "club_id", club.ID)
	return nil
}
