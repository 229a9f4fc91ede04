package i18n

import (
	"errors"
	"fmt"
	"slices"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jsamuelsen11/pipeline-crm/internal/app"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/sequence"
)

func mustCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New("en")
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	t.Parallel()

	c := mustCatalog(t)
	assert.Equal(t, []language.Tag{language.English, language.German}, c.Languages())

	_, err := New("fr")
	require.ErrorContains(t, err, "no catalog")

	_, err = New("not a tag!")
	require.Error(t, err)
}

func TestCatalogs_CoverEveryKey(t *testing.T) {
	t.Parallel()

	c := mustCatalog(t)
	used := []string{
		domain.KeyNotFound, domain.KeyDuplicate, domain.KeyValidation,
		validationPrefix + domain.KeyRequired,
		app.KeyPersonalityMissing, app.KeyAssigneeUnresolved, app.KeyScheduleCollision,
		app.KeyTodoLinked, app.KeyInteractionLinked, app.KeyStepLinked, app.KeyProspectEnrolled,
		app.KeyInteractionForeign, app.KeyStepForeign,
		sequence.KeyMultipleOwners,
		KeyValidationInvalid, KeyInternal, KeyUnavailable, KeyForbidden, KeyNotFoundRoute,
		KeyConflict, KeyMethodNotAllowed, KeyTimeout,
	}
	for _, tag := range c.Languages() {
		for _, key := range used {
			assert.Truef(t, c.keys[tag][key], "%s catalog misses %q", tag, key)
		}
	}

	en, de := c.keys[language.English], c.keys[language.German]
	for key := range en {
		assert.Truef(t, de[key], "de catalog misses %q", key)
	}
	for key := range de {
		assert.Truef(t, en[key], "en catalog has no %q", key)
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	c := mustCatalog(t)
	tests := []struct {
		header string
		want   language.Tag
	}{
		{"", language.English},
		{"de", language.German},
		{"de-DE,de;q=0.9,en;q=0.5", language.German},
		{"de-CH", language.German},
		{"en-US,de;q=0.5", language.English},
		{"fr-FR", language.English},
		{"ja,de;q=0.3", language.German},
		{";;;", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, c.Match(tt.header))
		})
	}
}

func TestLocalizer_Error(t *testing.T) {
	t.Parallel()

	c := mustCatalog(t)
	en := c.Localizer(language.English)
	de := c.Localizer(language.German)

	tests := []struct {
		name    string
		l       *Localizer
		err     error
		wantKey string
		want    string
	}{
		{
			name:    "not found names the entity",
			l:       de,
			err:     &domain.NotFoundError{Entity: "prospect", ID: "p-1"},
			wantKey: domain.KeyNotFound,
			want:    `Interessent "p-1" wurde nicht gefunden`,
		},
		{
			name:    "wrapped duplicate",
			l:       en,
			err:     fmt.Errorf("creating company: %w", &domain.DuplicateError{Entity: "company", Candidate: "Acme"}),
			wantKey: domain.KeyDuplicate,
			want:    `a company matching "Acme" already exists`,
		},
		{
			name:    "one invalid field",
			l:       en,
			err:     domain.RequiredField("name"),
			wantKey: domain.KeyValidation,
			want:    "1 field is invalid",
		},
		{
			name:    "several invalid fields",
			l:       de,
			err:     &domain.ValidationError{Fields: map[string]string{"a": "required", "b": "email"}},
			wantKey: domain.KeyValidation,
			want:    "2 Felder sind ungültig",
		},
		{
			name:    "rule with kind argument",
			l:       en,
			err:     domain.NewRuleError(app.KeyPersonalityMissing, "lead", "l-1"),
			wantKey: app.KeyPersonalityMissing,
			want:    `lead "l-1" has no personality, so no steps can be selected`,
		},
		{
			name:    "plain error falls back",
			l:       en,
			err:     errors.New("disk on fire"),
			wantKey: KeyInternal,
			want:    "an unexpected error occurred",
		},
		{
			name:    "unknown rule key falls back",
			l:       en,
			err:     domain.NewRuleError("no.such.rule"),
			wantKey: KeyInternal,
			want:    "an unexpected error occurred",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			key, text := tt.l.Error(tt.err, KeyInternal)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestLocalizer_FieldAndTitle(t *testing.T) {
	t.Parallel()

	de := mustCatalog(t).Localizer(language.German)

	assert.Equal(t, "ist erforderlich", de.Field(domain.KeyRequired))
	assert.Equal(t, "muss eine gültige E-Mail-Adresse sein", de.Field("email"))
	assert.Equal(t, "ist ungültig", de.Field("startswith"))
	assert.Equal(t, "Nicht gefunden", de.Title("not_found", "Not Found"))
	assert.Equal(t, "I'm a teapot", de.Title("teapot", "I'm a teapot"))
	assert.Equal(t, "no.such.key", de.Message("no.such.key"))
}

func TestLocalizer_UnknownTagFallsBack(t *testing.T) {
	t.Parallel()

	l := mustCatalog(t).Localizer(language.Japanese)
	assert.Equal(t, language.English, l.Tag())
}

func TestLoad_CatalogShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"plural without other", "k:\n  one: x\n", `"other"`},
		{"unknown plural case", "k:\n  several: x\n  other: y\n", "unknown plural case"},
		{"sequence value", "k:\n  - x\n", "unsupported yaml node"},
		{"exact case", "k:\n  '=0': none\n  one: one\n  other: '%[1]d'\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fsys := fstest.MapFS{"l/en.yaml": &fstest.MapFile{Data: []byte(tt.content)}}
			c, err := load(fsys, "l", "en")
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			l := c.Localizer(language.English)
			got := []string{l.Message("k", 0), l.Message("k", 1), l.Message("k", 5)}
			assert.True(t, slices.Equal([]string{"none", "one", "5"}, got), "got %v", got)
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, language.English, FromContext(t.Context()).Tag())

	de := mustCatalog(t).Localizer(language.German)
	assert.Same(t, de, FromContext(WithLocalizer(t.Context(), de)))
}
