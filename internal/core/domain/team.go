package domain

import (
	"errors"
	"time"
)

var ErrTeamNotFound = errors.New("team not found")

// Team is a leader plus a set of member user ids. The leader is tracked
// separately and never duplicated in Members.
type Team struct {
	TeamID     string    `json:"teamId" bson:"team_id"`
	TeamName   string    `json:"teamName" bson:"team_name"`
	TeamLeader string    `json:"teamLeader" bson:"team_leader"`
	Members    []string  `json:"members" bson:"members"`
	CreatedBy  Identity  `json:"createdBy" bson:"created_by"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at"`
}
