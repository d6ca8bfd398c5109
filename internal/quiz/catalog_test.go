package quiz

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalog(t *testing.T) {
	c := Builtin()
	require.Equal(t, 8, c.Len())

	wantIDs := []string{
		"mind_boost", "focus_sprint", "logic_flow", "speed_processing",
		"creative_thinking", "emotional_intelligence", "critical_analysis", "mindfulness_focus",
	}
	for i, m := range c.All() {
		assert.Equal(t, wantIDs[i], m.ID)
		assert.Len(t, m.Tasks, 3, m.ID)
	}

	m, ok := c.ByID("logic_flow")
	require.True(t, ok)
	assert.Equal(t, "Logic Flow", m.Title)

	_, ok = c.ByID("nope")
	assert.False(t, ok)
}

func TestCompletedCount(t *testing.T) {
	c := Builtin()
	done := map[string]bool{"mind_boost": true, "logic_flow": true, "retired_module": true}
	assert.Equal(t, 2, c.CompletedCount(func(id string) bool { return done[id] }))
}

func TestNewCatalogValidation(t *testing.T) {
	_, err := NewCatalog([]Module{
		{ID: "a", Title: "A", Tasks: []Task{{Question: "q", Options: []string{"x"}, CorrectIndex: 0}}},
		{ID: "a", Title: "A again"},
		{ID: "b", Title: "B", Tasks: []Task{{Question: "q", Options: []string{"x", "y"}, CorrectIndex: 2}}},
	})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 3)
}

func TestNewCatalogAllowsEmptyModule(t *testing.T) {
	c, err := NewCatalog([]Module{{ID: "soon", Title: "Coming soon"}})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
		wantLen int
	}{
		{
			name: "valid",
			raw: `{"modules":[{"id":"m1","title":"One","tasks":[
				{"question":"q","options":["a","b"],"correct_index":1,"explanation":"e"}]}]}`,
			wantLen: 1,
		},
		{
			name:    "malformed json",
			raw:     `{"modules":[`,
			wantErr: true,
		},
		{
			name:    "missing modules",
			raw:     `{}`,
			wantErr: true,
		},
		{
			name:    "too few options",
			raw:     `{"modules":[{"id":"m1","title":"One","tasks":[{"question":"q","options":["a"],"correct_index":0}]}]}`,
			wantErr: true,
		},
		{
			name:    "unknown field",
			raw:     `{"modules":[{"id":"m1","title":"One","tasks":[],"color":"red"}]}`,
			wantErr: true,
		},
		{
			name:    "index out of range passes schema but fails validation",
			raw:     `{"modules":[{"id":"m1","title":"One","tasks":[{"question":"q","options":["a","b"],"correct_index":4}]}]}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, c.Len())
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8, c.Len())

	path := filepath.Join(t.TempDir(), "catalog.json")
	raw := `{"modules":[{"id":"solo","title":"Solo","tasks":[{"question":"q","options":["a","b"],"correct_index":0}]}]}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	c, err = Load(path)
	require.NoError(t, err)
	_, ok := c.ByID("solo")
	assert.True(t, ok)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
