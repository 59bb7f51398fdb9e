package wordlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  John Smith ", want: "johnsmith"},
		{in: "Lakers", want: "lakers"},
		{in: "1990-05-15", want: "19900515"},
		{in: "Zoë", want: "zoe"},
		{in: "Ünïcödé!", want: "unicode"},
		{in: "a-b-c", want: "abc"},
		{in: "ab", want: ""},
		{in: "!!!", want: ""},
		{in: "日本語", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanInput(tt.in))
		})
	}
}

func TestBuildSeeds(t *testing.T) {
	tests := []struct {
		personal map[string]string
		name     string
		custom   []string
		want     []string
	}{
		{
			name:     "full name is split into parts",
			personal: map[string]string{"name": "John Smith"},
			want:     []string{"john", "johnsmith", "smith"},
		},
		{
			name:     "full_name key is split too",
			personal: map[string]string{"full_name": "Ada  Lovelace"},
			want:     []string{"ada", "adalovelace", "lovelace"},
		},
		{
			name:     "short name parts are dropped",
			personal: map[string]string{"name": "Al Bo"},
			want:     []string{"albo"},
		},
		{
			name:     "other fields are not split",
			personal: map[string]string{"favorite_team": "LA Lakers", "pet_name": "  ", "city": "NY"},
			want:     []string{"lalakers"},
		},
		{
			name:   "custom words are cleaned and deduplicated",
			custom: []string{"Admin", "admin!", "  ", "x"},
			want:   []string{"admin"},
		},
		{
			name:     "personal and custom words merge",
			personal: map[string]string{"name": "John Smith", "birth_date": "1990-05-15"},
			custom:   []string{"admin"},
			want:     []string{"19900515", "admin", "john", "johnsmith", "smith"},
		},
		{
			name: "defaults when nothing usable",
			want: []string{"admin", "login", "password", "user", "welcome"},
		},
		{
			name:     "defaults when everything is too short",
			personal: map[string]string{"pet": "Bo"},
			custom:   []string{"!?", "a"},
			want:     []string{"admin", "login", "password", "user", "welcome"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildSeeds(tt.personal, tt.custom))
		})
	}
}
