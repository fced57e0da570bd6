package dto

// LeaderboardEntry is one row of the faculty reputation leaderboard,
// ordered by reputation descending with id as the stable tie-break.
type LeaderboardEntry struct {
	Rank             int    `json:"rank"`
	UserID           int64  `json:"userId"`
	Username         string `json:"username"`
	DepartmentName   string `json:"departmentName,omitempty"`
	ReputationPoints int    `json:"reputationPoints"`
}
