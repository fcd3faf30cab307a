package constants

// Queries use ? placeholders and are passed through sqlx.Rebind for postgres.
const (
	// ListMatchAudience returns every member with an ACTIVE membership in the
	// season, joined with their participation in the match when one exists.
	ListMatchAudience = `
	SELECT m.id AS member_id, m.name AS member_name, p.status AS participation_status
	FROM memberships ms
	JOIN members m ON m.id = ms.member_id
	LEFT JOIN participations p ON p.member_id = ms.member_id AND p.match_id = ?
	WHERE ms.season_id = ? AND ms.status = ?
	ORDER BY m.name, m.id
	`

	// ListMatchAudienceWithBypass also admits PENDING memberships whose type
	// may vote before activation. The IN list is expanded by sqlx.In.
	ListMatchAudienceWithBypass = `
	SELECT m.id AS member_id, m.name AS member_name, p.status AS participation_status
	FROM memberships ms
	JOIN members m ON m.id = ms.member_id
	LEFT JOIN participations p ON p.member_id = ms.member_id AND p.match_id = ?
	WHERE ms.season_id = ? AND (ms.status = ? OR (ms.status = ? AND ms.type IN (?)))
	ORDER BY m.name, m.id
	`

	CountNotificationsByStatus = `
	SELECT status, COUNT(*) AS total FROM notifications GROUP BY status
	`
)
