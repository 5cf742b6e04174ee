package i18n_test

import (
	"context"
	"testing"

	"github.com/dmitrymomot/datevalidator/pkg/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLParser(t *testing.T) {
	t.Parallel()
	parser := i18n.NewYAMLParser()

	t.Run("nested messages", func(t *testing.T) {
		t.Parallel()
		content := `
en:
  validation:
    date_invalid: "The format of %{attribute} is invalid."
de:
  validation:
    date_invalid: "Das Format von %{attribute} ist ungültig."
`
		result, err := parser.Parse(context.Background(), content)
		require.NoError(t, err)
		require.Len(t, result, 2)

		validation, ok := result["de"]["validation"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Das Format von %{attribute} ist ungültig.", validation["date_invalid"])
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), "en: [")
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("language without map", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), "en: hello")
		assert.ErrorIs(t, err, i18n.ErrInvalidTranslations)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), "")
		assert.ErrorIs(t, err, i18n.ErrInvalidTranslations)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := parser.Parse(ctx, "en: {a: b}")
		assert.ErrorIs(t, err, i18n.ErrParsingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("file extensions", func(t *testing.T) {
		t.Parallel()
		assert.True(t, parser.SupportsFileExtension("yaml"))
		assert.True(t, parser.SupportsFileExtension(".YML"))
		assert.False(t, parser.SupportsFileExtension("json"))
	})
}

func TestJSONParser(t *testing.T) {
	t.Parallel()
	parser := i18n.NewJSONParser()

	t.Run("flat messages", func(t *testing.T) {
		t.Parallel()
		result, err := parser.Parse(context.Background(), `{"en": {"hello": "Hello"}, "ru": {"hello": "Привет"}}`)
		require.NoError(t, err)
		assert.Equal(t, "Привет", result["ru"]["hello"])
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), `{"en": `)
		assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("file extensions", func(t *testing.T) {
		t.Parallel()
		assert.True(t, parser.SupportsFileExtension(".json"))
		assert.False(t, parser.SupportsFileExtension("yaml"))
	})
}

func TestNewParserForFile(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("messages.yaml"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("dir/messages.YML"))
	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("messages.json"))
	assert.Nil(t, i18n.NewParserForFile("messages.toml"))
	assert.Nil(t, i18n.NewParserForFile("messages"))
}
