package models

import (
	"strings"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Member struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Username string             `bson:"username" json:"username"`
}

// Initials returns the uppercased first letter of every whitespace-separated
// token in the member's name, used for avatar badges.
func (m Member) Initials() string {
	var b strings.Builder
	for _, token := range strings.Fields(m.Name) {
		r, _ := utf8.DecodeRuneInString(token)
		b.WriteString(strings.ToUpper(string(r)))
	}
	return b.String()
}

// DedupMembers removes duplicate member references while preserving order.
// The source data does not guarantee uniqueness of team rosters.
func DedupMembers(members []Member) []Member {
	seen := make(map[primitive.ObjectID]bool, len(members))
	var out []Member
	for _, m := range members {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	return out
}
