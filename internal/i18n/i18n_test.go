package i18n

import (
	"context"
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/bilim/internal/store"
)

func newStore(t *testing.T) (*Store, *store.Memory) {
	t.Helper()
	kv := store.NewMemory()
	s, err := New(kv)
	require.NoError(t, err)
	return s, kv
}

func TestDefaultLanguage(t *testing.T) {
	s, _ := newStore(t)
	assert.Equal(t, Kazakh, s.Language())
	assert.Equal(t, "Мұғалім", s.T("Teacher"))
}

func TestSetLanguagePersists(t *testing.T) {
	ctx := context.Background()
	s, kv := newStore(t)

	require.NoError(t, s.SetLanguage(ctx, Russian))
	assert.Equal(t, Russian, s.Language())
	assert.Equal(t, "Учитель", s.T("Teacher"))

	v, ok, err := kv.Get(ctx, Key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ru", v)

	restored, err := New(kv)
	require.NoError(t, err)
	require.NoError(t, restored.Load(ctx))
	assert.Equal(t, Russian, restored.Language())
}

func TestSetLanguageRejectsUnsupported(t *testing.T) {
	ctx := context.Background()
	s, kv := newStore(t)

	assert.ErrorIs(t, s.SetLanguage(ctx, "de"), ErrUnsupportedLanguage)
	assert.Equal(t, Kazakh, s.Language())
	_, ok, _ := kv.Get(ctx, Key)
	assert.False(t, ok)
}

func TestLoadIgnoresInvalid(t *testing.T) {
	ctx := context.Background()
	s, kv := newStore(t)
	require.NoError(t, s.Use(English))
	require.NoError(t, kv.Set(ctx, Key, "fr"))

	require.NoError(t, s.Load(ctx))
	assert.Equal(t, English, s.Language())
}

func TestUseDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	s, kv := newStore(t)

	require.NoError(t, s.Use(English))
	assert.Equal(t, "Teacher", s.T("Teacher"))
	_, ok, _ := kv.Get(ctx, Key)
	assert.False(t, ok)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s, kv := newStore(t)
	require.NoError(t, s.SetLanguage(ctx, English))

	require.NoError(t, s.Reset(ctx))
	assert.Equal(t, Kazakh, s.Language())
	_, ok, _ := kv.Get(ctx, Key)
	assert.False(t, ok)
}

func TestTemplates(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.Use(English))

	assert.Equal(t, "Question 3 of 10", s.Td("Question", map[string]any{"Number": 3, "Total": 10}))
	assert.Equal(t, "1 question", s.Tp("QuestionsCount", 1))
	assert.Equal(t, "5 questions", s.Tp("QuestionsCount", 5))

	require.NoError(t, s.Use(Russian))
	assert.Equal(t, "2 вопроса", s.Tp("QuestionsCount", 2))
	assert.Equal(t, "5 вопросов", s.Tp("QuestionsCount", 5))
}

func TestMissingKeyReturnsID(t *testing.T) {
	s, _ := newStore(t)
	assert.Equal(t, "NoSuchMessage", s.T("NoSuchMessage"))
}

func TestLocalesShareKeys(t *testing.T) {
	keys := func(lang Language) []string {
		data, err := localeFS.ReadFile("locales/" + string(lang) + ".json")
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		out := make([]string, 0, len(m))
		for k := range m {
			out = append(out, k)
		}
		sort.Strings(out)
		return out
	}

	want := keys(Default)
	for _, lang := range Languages() {
		assert.Equal(t, want, keys(lang), "locale %s", lang)
	}
}

func TestLanguageHelpers(t *testing.T) {
	assert.Equal(t, Russian, Kazakh.Next())
	assert.Equal(t, Kazakh, English.Next())
	assert.Equal(t, "Қазақша", Kazakh.Name())

	_, err := Parse("xx")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	l, err := Parse("en")
	require.NoError(t, err)
	assert.Equal(t, English, l)
}
