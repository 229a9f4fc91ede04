// Package i18n renders error messages in the caller's language. Catalogs are
// embedded YAML files under locales/, one per language, loaded into an x/text
// catalog at startup.
//
// A message is either a plain printf format:
//
//	entity.not_found: "%[1]s %[2]q was not found"
//
// or a set of plural cases selected by the first argument:
//
//	request.invalid:
//	  one: "1 field is invalid"
//	  other: "%[1]d fields are invalid"
//
// Entity names passed as string arguments are translated through the
// entity.<name> keys.
package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
)

//go:embed locales/*.yaml
var locales embed.FS

// Key prefixes and fixed keys used outside the domain error types.
const (
	entityPrefix     = "entity."
	validationPrefix = "validation."

	KeyValidationInvalid = "validation.invalid"
	KeyInternal          = "error.internal"
	KeyUnavailable       = "error.unavailable"
	KeyForbidden         = "error.forbidden"
	KeyNotFoundRoute     = "error.route_not_found"
	KeyConflict          = "error.conflict"
	KeyMethodNotAllowed  = "error.method_not_allowed"
	KeyTimeout           = "error.timeout"
	KeyTitlePrefix       = "problem."
)

// pluralCases lists the CLDR plural categories accepted in catalogs, in the
// order they are handed to plural.Selectf.
var pluralCases = []string{"zero", "one", "two", "few", "many", "other"}

// Catalog holds every embedded language.
type Catalog struct {
	builder  *catalog.Builder
	matcher  language.Matcher
	tags     []language.Tag
	keys     map[language.Tag]map[string]bool
	fallback language.Tag
}

// New loads the embedded catalogs. defaultLocale is served when nothing in
// an Accept-Language header matches and must have a catalog of its own.
func New(defaultLocale string) (*Catalog, error) {
	return load(locales, "locales", defaultLocale)
}

func load(fsys fs.FS, dir, defaultLocale string) (*Catalog, error) {
	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parsing default locale %q: %w", defaultLocale, err)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading locales: %w", err)
	}

	c := &Catalog{
		builder:  catalog.NewBuilder(catalog.Fallback(fallback)),
		keys:     make(map[language.Tag]map[string]bool),
		fallback: fallback,
	}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		if err := c.loadFile(fsys, path.Join(dir, e.Name())); err != nil {
			return nil, err
		}
	}

	if _, ok := c.keys[fallback]; !ok {
		return nil, fmt.Errorf("no catalog for default locale %q", defaultLocale)
	}

	// The fallback goes first so the matcher returns it on no match.
	slices.SortStableFunc(c.tags, func(a, b language.Tag) int {
		switch {
		case a == fallback:
			return -1
		case b == fallback:
			return 1
		default:
			return strings.Compare(a.String(), b.String())
		}
	})
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

func (c *Catalog) loadFile(fsys fs.FS, name string) error {
	tag, err := language.Parse(strings.TrimSuffix(path.Base(name), ".yaml"))
	if err != nil {
		return fmt.Errorf("locale file %s: %w", name, err)
	}

	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}

	keys := make(map[string]bool, len(doc))
	for key, node := range doc {
		msg, err := decodeMessage(&node)
		if err != nil {
			return fmt.Errorf("%s: key %s: %w", name, key, err)
		}
		if err := c.builder.Set(tag, key, msg); err != nil {
			return fmt.Errorf("%s: key %s: %w", name, key, err)
		}
		keys[key] = true
	}

	c.tags = append(c.tags, tag)
	c.keys[tag] = keys
	return nil
}

// decodeMessage turns a YAML scalar into a plain message and a mapping into
// a plural selection on the first argument.
func decodeMessage(node *yaml.Node) (catalog.Message, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return catalog.String(node.Value), nil
	case yaml.MappingNode:
		var forms map[string]string
		if err := node.Decode(&forms); err != nil {
			return nil, err
		}
		if _, ok := forms["other"]; !ok {
			return nil, errors.New(`plural message needs an "other" case`)
		}
		cases := make([]any, 0, 2*len(forms))
		for _, sel := range pluralCases {
			if text, ok := forms[sel]; ok {
				cases = append(cases, sel, text)
				delete(forms, sel)
			}
		}
		for sel := range forms {
			if !strings.HasPrefix(sel, "=") {
				return nil, fmt.Errorf("unknown plural case %q", sel)
			}
		}
		// Exact matches such as "=0" take precedence over categories.
		exact := make([]any, 0, 2*len(forms))
		for _, sel := range slices.Sorted(maps.Keys(forms)) {
			exact = append(exact, sel, forms[sel])
		}
		return plural.Selectf(1, "", append(exact, cases...)...), nil
	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d", node.Kind)
	}
}

// Languages returns the loaded languages, default first.
func (c *Catalog) Languages() []language.Tag {
	return slices.Clone(c.tags)
}

// Match picks the best loaded language for an Accept-Language header.
func (c *Catalog) Match(acceptLanguage string) language.Tag {
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return c.fallback
	}
	_, idx, conf := c.matcher.Match(prefs...)
	if conf == language.No {
		return c.fallback
	}
	return c.tags[idx]
}

// Localizer returns a localizer for tag, which should come from Match or
// Languages.
func (c *Catalog) Localizer(tag language.Tag) *Localizer {
	if _, ok := c.keys[tag]; !ok {
		tag = c.fallback
	}
	return &Localizer{
		catalog: c,
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(c.builder)),
	}
}

// Localizer renders messages in one language.
type Localizer struct {
	catalog *Catalog
	tag     language.Tag
	printer *message.Printer
}

// Tag returns the localizer's language.
func (l *Localizer) Tag() language.Tag { return l.tag }

// Has reports whether key has a message in this language.
func (l *Localizer) Has(key string) bool {
	return l.catalog.keys[l.tag][key]
}

// Message renders key with args. An unknown key renders as the key itself.
func (l *Localizer) Message(key string, args ...any) string {
	if !l.Has(key) {
		return key
	}
	return l.printer.Sprintf(key, l.translateArgs(args)...)
}

// translateArgs swaps entity names for their translation.
func (l *Localizer) translateArgs(args []any) []any {
	out := slices.Clone(args)
	for i, a := range out {
		if s, ok := a.(string); ok && l.Has(entityPrefix+s) {
			out[i] = l.printer.Sprintf(entityPrefix + s)
		}
	}
	return out
}

// Error renders err. Errors implementing domain.Localizable use their own key;
// anything else is rendered with fallbackKey.
func (l *Localizer) Error(err error, fallbackKey string) (key, text string) {
	var loc domain.Localizable
	if errors.As(err, &loc) && l.Has(loc.MessageKey()) {
		return loc.MessageKey(), l.Message(loc.MessageKey(), loc.MessageArgs()...)
	}
	return fallbackKey, l.Message(fallbackKey)
}

// Field renders a field-level validation failure. key is either a domain
// message key such as "required" or a validator tag such as "email".
func (l *Localizer) Field(key string) string {
	if l.Has(validationPrefix + key) {
		return l.printer.Sprintf(validationPrefix + key)
	}
	return l.Message(KeyValidationInvalid)
}

// Title renders the problem title for an HTTP status text key such as
// "not_found".
func (l *Localizer) Title(name, fallback string) string {
	if l.Has(KeyTitlePrefix + name) {
		return l.printer.Sprintf(KeyTitlePrefix + name)
	}
	return fallback
}

type contextKey struct{}

// WithLocalizer stores l in ctx.
func WithLocalizer(ctx context.Context, l *Localizer) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

var defaultLocalizer = sync.OnceValue(func() *Localizer {
	c, err := New("en")
	if err != nil {
		panic(fmt.Sprintf("i18n: embedded catalogs: %v", err))
	}
	return c.Localizer(language.English)
})

// FromContext returns the request's localizer, or an English one when the
// locale middleware did not run.
func FromContext(ctx context.Context) *Localizer {
	if l, ok := ctx.Value(contextKey{}).(*Localizer); ok {
		return l
	}
	return defaultLocalizer()
}
