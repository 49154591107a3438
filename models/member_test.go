package models

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemberInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ana Petrov", "AP"},
		{"Marko", "M"},
		{"jovana  mitic", "JM"},
		{"Đorđe Živković", "ĐŽ"},
		{"", ""},
	}
	for _, tt := range tests {
		m := Member{Name: tt.name}
		got := m.Initials()
		assert.Equal(t, tt.want, got)
		assert.True(t, utf8.ValidString(got))
	}
}

func TestDedupMembers(t *testing.T) {
	a := Member{ID: primitive.NewObjectID(), Name: "A"}
	b := Member{ID: primitive.NewObjectID(), Name: "B"}

	got := DedupMembers([]Member{a, b, a, b, a})

	assert.Equal(t, []Member{a, b}, got)
}

func TestDedupMembers_Empty(t *testing.T) {
	assert.Nil(t, DedupMembers(nil))
}
