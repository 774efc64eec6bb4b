package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/affirm/internal/sequence"
)

func TestDefaultPack(t *testing.T) {
	pack, err := DefaultPack()
	require.NoError(t, err)
	assert.Len(t, pack.Categories, 6)

	sections := map[string]int{}
	for _, p := range pack.Playlists {
		sections[p.Section]++
		assert.NotEmpty(t, p.Affirmations, "playlist %s has no affirmations", p.ID)
	}
	for _, s := range HomeSections {
		assert.Equal(t, 3, sections[string(s)], "section %s", s)
	}
	assert.Equal(t, "mindful-moments", pack.Playlists[0].ID)
	assert.Len(t, pack.Playlists[0].Affirmations, 25)
}

func TestDecodePack(t *testing.T) {
	src := `
[[categories]]
id = "calm"
title = "Calm"

[[playlists]]
id = "evening"
title = "Evening"
category = "calm"

  [[playlists.affirmations]]
  id = "e1"
  text = "I rest."
  duration = "5 sec"
`
	pack, err := DecodePack(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, pack.Playlists, 1)
	assert.Equal(t, PackAffirmation{ID: "e1", Text: "I rest.", Duration: "5 sec"},
		pack.Playlists[0].Affirmations[0])
}

func TestDecodePack_Syntax(t *testing.T) {
	_, err := DecodePack(strings.NewReader("[[playlists]\nid = "))
	assert.Error(t, err)
}

func TestPackValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Pack)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(*Pack) {},
		},
		{
			name:    "duplicate category",
			mutate:  func(p *Pack) { p.Categories = append(p.Categories, p.Categories[0]) },
			wantErr: ErrInvalidPack,
		},
		{
			name:    "category without id",
			mutate:  func(p *Pack) { p.Categories = append(p.Categories, PackCategory{Title: "x"}) },
			wantErr: ErrInvalidPack,
		},
		{
			name:    "playlist without id",
			mutate:  func(p *Pack) { p.Playlists = append(p.Playlists, PackPlaylist{Title: "x"}) },
			wantErr: ErrInvalidPack,
		},
		{
			name:    "unknown category",
			mutate:  func(p *Pack) { p.Playlists[1].Category = "nope" },
			wantErr: ErrInvalidPack,
		},
		{
			name: "duplicate affirmation",
			mutate: func(p *Pack) {
				p.Playlists[0].Affirmations = append(p.Playlists[0].Affirmations,
					PackAffirmation{ID: "a1", Text: "again"})
			},
			wantErr: sequence.ErrDuplicateID,
		},
		{
			name: "empty affirmation id",
			mutate: func(p *Pack) {
				p.Playlists[0].Affirmations[0].ID = ""
			},
			wantErr: sequence.ErrEmptyID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := smallPack()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadContent(t *testing.T) {
	def, err := LoadContent("")
	require.NoError(t, err)
	assert.NotEmpty(t, def.Playlists)

	path := filepath.Join(t.TempDir(), "pack.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[playlists]]
id = "solo"
title = "Solo"
`), 0o644))
	pack, err := LoadContent(path)
	require.NoError(t, err)
	require.Len(t, pack.Playlists, 1)
	assert.Equal(t, "solo", pack.Playlists[0].ID)

	_, err = LoadContent(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
