package schema_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/egraph/pkg/schema"
)

type goldenCase struct {
	Name      string `yaml:"name"`
	Input     string `yaml:"input"`
	Canonical string `yaml:"canonical"`
}

type goldenCorpus struct {
	Cases []goldenCase `yaml:"cases"`
}

func loadCorpus(t *testing.T) []goldenCase {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "corpus.yaml"))
	require.NoError(t, err)

	var corpus goldenCorpus
	require.NoError(t, yaml.Unmarshal(data, &corpus))
	require.NotEmpty(t, corpus.Cases)
	return corpus.Cases
}

func TestGolden_CanonicalForm(t *testing.T) {
	for _, tc := range loadCorpus(t) {
		t.Run(tc.Name, func(t *testing.T) {
			g, err := schema.Parse(tc.Input)
			require.NoError(t, err)
			assert.Equal(t, tc.Canonical, schema.Serialize(g))
		})
	}
}

func TestGolden_RoundTrip(t *testing.T) {
	for _, tc := range loadCorpus(t) {
		t.Run(tc.Name, func(t *testing.T) {
			g, err := schema.Parse(tc.Input)
			require.NoError(t, err)

			back, err := schema.Parse(schema.Serialize(g))
			require.NoError(t, err)
			assert.True(t, g.Equal(back), "serialize/parse must round-trip structurally")
		})
	}
}

func TestGolden_CanonicalIsIdempotent(t *testing.T) {
	for _, tc := range loadCorpus(t) {
		t.Run(tc.Name, func(t *testing.T) {
			g, err := schema.Parse(tc.Canonical)
			require.NoError(t, err)
			assert.Equal(t, tc.Canonical, schema.Serialize(g), "canonical input must serialize unchanged")
		})
	}
}
