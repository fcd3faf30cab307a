package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"football-club/matchday/internal/constants"
	"football-club/matchday/internal/db/repositories"
	models "football-club/matchday/internal/models/gorm"
)

var koreanWeekdays = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// AudienceStats buckets the eligible members of a match by their vote.
// Ghosts are eligible members with no vote at all.
type AudienceStats struct {
	Attending []string `json:"attending"`
	Absent    []string `json:"absent"`
	Pending   []string `json:"pending"`
	Ghosts    []string `json:"ghosts"`
}

// Unresolved lists everyone who has not committed either way.
func (s AudienceStats) Unresolved() []string {
	out := make([]string, 0, len(s.Pending)+len(s.Ghosts))
	out = append(out, s.Pending...)
	return append(out, s.Ghosts...)
}

// BucketAudience classifies audience rows. Rows must already be restricted to
// eligible members.
func BucketAudience(rows []repositories.AudienceRow) AudienceStats {
	stats := AudienceStats{
		Attending: []string{},
		Absent:    []string{},
		Pending:   []string{},
		Ghosts:    []string{},
	}
	for _, row := range rows {
		if !row.Status.Valid {
			stats.Ghosts = append(stats.Ghosts, row.MemberName)
			continue
		}
		switch constants.ParticipationStatus(row.Status.String) {
		case constants.ParticipationAttending:
			stats.Attending = append(stats.Attending, row.MemberName)
		case constants.ParticipationAbsent:
			stats.Absent = append(stats.Absent, row.MemberName)
		default:
			stats.Pending = append(stats.Pending, row.MemberName)
		}
	}
	return stats
}

// ContentGenerator computes audience statistics and renders milestone text.
type ContentGenerator struct {
	audience AudienceStore
	loc      *time.Location
	voteURL  string

	// PENDING membership types counted as eligible, mirroring the vote gate.
	bypassTypes []constants.MembershipType
}

func NewContentGenerator(audience AudienceStore, displayLoc *time.Location, voteURL string) *ContentGenerator {
	if displayLoc == nil {
		displayLoc = time.UTC
	}
	return &ContentGenerator{audience: audience, loc: displayLoc, voteURL: voteURL}
}

// WithEligibilityBypass counts PENDING memberships of the given types as part
// of the audience. It must match the voting gate's bypass so accepted votes
// always show up in the stats.
func (g *ContentGenerator) WithEligibilityBypass(types ...constants.MembershipType) *ContentGenerator {
	g.bypassTypes = append(g.bypassTypes, types...)
	return g
}

func (g *ContentGenerator) ComputeAudienceStats(ctx context.Context, match *models.Match) (AudienceStats, error) {
	rows, err := g.audience.ListMatchAudience(ctx, match.ID, match.SeasonID, g.bypassTypes)
	if err != nil {
		return AudienceStats{}, err
	}
	return BucketAudience(rows), nil
}

// FormatStart renders the match start in the display zone, e.g. "03/15(토) 20:00".
// The weekday comes from the display zone, not UTC.
func (g *ContentGenerator) FormatStart(t time.Time) string {
	local := t.In(g.loc)
	return fmt.Sprintf("%s(%s) %s", local.Format("01/02"), koreanWeekdays[local.Weekday()], local.Format("15:04"))
}

// Render produces the frozen text for one milestone.
func (g *ContentGenerator) Render(match *models.Match, nType constants.NotificationType, stats AudienceStats) string {
	when := g.FormatStart(match.StartTime)
	link := "🔗 투표: " + g.voteURL

	var b strings.Builder
	switch nType {
	case constants.NotificationPollingStart:
		fmt.Fprintf(&b, "🗳️ [투표 시작] %s\n\n", match.Name)
		fmt.Fprintf(&b, "📅 %s\n📍 %s\n\n", when, match.Location)
		b.WriteString("참석 여부를 꼭 투표해주세요!\n")
		b.WriteString(link)
		return b.String()

	case constants.NotificationSoftDeadline:
		fmt.Fprintf(&b, "⏳ 마감 임박 - %s\n", match.Name)
		fmt.Fprintf(&b, "📅 %s\n", when)
		fmt.Fprintf(&b, "✅%d ⏸%d ❌%d 👻%d\n\n", len(stats.Attending), len(stats.Pending), len(stats.Absent), len(stats.Ghosts))
		writeRoster(&b, "⚽ 참석자:", stats.Attending)
		b.WriteString("\n\n")
		writeRoster(&b, "⏸ 미정:", stats.Pending)
		b.WriteString("\n\n")
		writeRoster(&b, "❌ 불참:", stats.Absent)
		if len(stats.Ghosts) > 0 {
			fmt.Fprintf(&b, "\n\n👇 미투표:\n%s\n\n🚨 투표해주세요!", strings.Join(stats.Ghosts, ", "))
		}

	default:
		// Hard deadline and operator-triggered summaries share the final roster.
		header := "🛑 투표 마감"
		if nType == constants.NotificationManual {
			header = "📢 참석 현황"
		}
		unresolved := stats.Unresolved()
		fmt.Fprintf(&b, "%s - %s\n", header, match.Name)
		fmt.Fprintf(&b, "📅 %s\n📍 %s\n", when, match.Location)
		fmt.Fprintf(&b, "✅%d ❌%d 👻%d\n\n", len(stats.Attending), len(stats.Absent), len(unresolved))
		writeRoster(&b, "⚽ 참석자:", stats.Attending)
		b.WriteString("\n\n")
		writeRoster(&b, "❌ 불참:", stats.Absent)
		if len(unresolved) > 0 {
			fmt.Fprintf(&b, "\n\n📌 확인 필요:\n%s", strings.Join(unresolved, ", "))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(link)
	return b.String()
}

func writeRoster(b *strings.Builder, title string, names []string) {
	b.WriteString(title)
	b.WriteString("\n")
	if len(names) == 0 {
		b.WriteString("-")
		return
	}
	b.WriteString(strings.Join(names, ", "))
}
