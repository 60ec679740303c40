package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content_studio/internal/i18n"
)

func TestNav(t *testing.T) {
	l := i18n.MustNew("ja")

	tests := []struct {
		name         string
		current      string
		withActivity bool
		wantLen      int
		wantActive   string
	}{
		{name: "home", current: "/", wantLen: 4, wantActive: "/"},
		{name: "project detail highlights projects", current: "/projects/3", wantLen: 4, wantActive: "/"},
		{name: "characters", current: "/characters", wantLen: 4, wantActive: "/characters"},
		{name: "character edit", current: "/characters/5", wantLen: 4, wantActive: "/characters"},
		{name: "activity", current: "/activity", withActivity: true, wantLen: 5, wantActive: "/activity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := Nav(l, tt.current, tt.withActivity)
			require.Len(t, items, tt.wantLen)

			var active []string
			for _, item := range items {
				if item.Active {
					active = append(active, item.Path)
				}
			}
			assert.Equal(t, []string{tt.wantActive}, active)
		})
	}
}
