package catalog

import (
	"path/filepath"
	"testing"

	"github.com/keoko/mots/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	topics := c.Topics()
	require.NotEmpty(t, topics)
	assert.Equal(t, "animals", topics[0].ID)

	animals, ok := c.Topic("animals")
	require.True(t, ok)
	assert.Equal(t, models.WordPair{Source: "gat", Target: "cat"}, animals.Words[0])

	_, ok = c.Topic("missing")
	assert.False(t, ok)
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		topics  []models.Topic
		wantErr bool
	}{
		{
			name: "success",
			topics: []models.Topic{
				{ID: "a", Words: []models.WordPair{{Source: "u", Target: "one"}}},
				{ID: "b"},
			},
		},
		{
			name:    "no topics",
			wantErr: true,
		},
		{
			name: "duplicate id",
			topics: []models.Topic{
				{ID: "a"},
				{ID: "a"},
			},
			wantErr: true,
		},
		{
			name: "empty target",
			topics: []models.Topic{
				{ID: "a", Words: []models.WordPair{{Source: "u", Target: "  "}}},
			},
			wantErr: true,
		},
		{
			name: "reserved practice id",
			topics: []models.Topic{
				{ID: models.PracticeTopicID},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := New(tt.topics)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, c.Topics(), len(tt.topics))
		})
	}
}

func TestCatalog_TopicsReturnsCopy(t *testing.T) {
	t.Parallel()

	c, err := New([]models.Topic{{ID: "a", Name: "A"}})
	require.NoError(t, err)

	topics := c.Topics()
	topics[0].Name = "changed"

	got, _ := c.Topic("a")
	assert.Equal(t, "A", got.Name)
}

func TestLoadXLSX(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	rows := [][]string{
		{"fruit", "Fruit", "🍐"},
		{"pera", "pear"},
		{"préssec", ""},
		{"raïm", "grape"},
	}
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cellName, &row))
	}

	path := filepath.Join(t.TempDir(), "topics.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	c, err := LoadXLSX(path)
	require.NoError(t, err)

	topic, ok := c.Topic("fruit")
	require.True(t, ok)
	assert.Equal(t, "Fruit", topic.Name)
	assert.Equal(t, "🍐", topic.Emoji)
	assert.Equal(t, []models.WordPair{
		{Source: "pera", Target: "pear"},
		{Source: "raïm", Target: "grape"},
	}, topic.Words)
}

func TestLoadXLSX_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
}
