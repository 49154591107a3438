package metrics

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DXD-Magante/dxd-magnate-sub008/models"
)

// MemberStats is one roster member's task completion ratio.
type MemberStats struct {
	MemberID  primitive.ObjectID `json:"memberId"`
	Name      string             `json:"name"`
	Completed int                `json:"completed"`
	Total     int                `json:"total"`
	Percent   int                `json:"percent"`
}

// AggregateByMember computes per-member completion ratios, one entry per
// roster member in roster order. Unassigned tasks and tasks assigned to
// someone outside the roster are not attributed to anyone.
func AggregateByMember(tasks []models.Task, members []models.Member) []MemberStats {
	out := make([]MemberStats, 0, len(members))
	index := make(map[primitive.ObjectID]int, len(members))
	for _, m := range members {
		index[m.ID] = len(out)
		out = append(out, MemberStats{MemberID: m.ID, Name: m.Name})
	}

	for _, t := range tasks {
		if t.Assignee == nil {
			continue
		}
		i, ok := index[t.Assignee.ID]
		if !ok {
			continue
		}
		out[i].Total++
		if t.Status == models.StatusDone {
			out[i].Completed++
		}
	}

	for i := range out {
		out[i].Percent = percent(out[i].Completed, out[i].Total)
	}
	return out
}
