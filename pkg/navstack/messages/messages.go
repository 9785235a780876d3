// Package messages renders navstack errors and status text for display,
// localized with go-i18n. English and German are embedded.
package messages

import (
	"embed"
	"errors"
	"io/fs"
	"strings"
	"sync"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// messageIDs maps configuration sentinels to their message IDs.
var messageIDs = []struct {
	err error
	id  string
}{
	{router.ErrNoStartingStack, "NoStartingStack"},
	{router.ErrInitialStackNotFound, "InitialStackNotFound"},
	{router.ErrNoInitialRoute, "NoInitialRoute"},
	{router.ErrRoutesAndStacks, "RoutesAndStacks"},
	{router.ErrUnknownInitialRoute, "UnknownInitialRoute"},
	{router.ErrDuplicateKey, "DuplicateKey"},
	{router.ErrScreenMissing, "ScreenMissing"},
}

// Catalog holds the parsed message bundle.
type Catalog struct {
	bundle *i18n.Bundle
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// NewCatalog parses the embedded message files.
func NewCatalog() (*Catalog, error) {
	bundle := i18n.NewBundle(language.MustParse(constants.DefaultLanguage))
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(locales, "locales/*.toml")
	if err != nil {
		return nil, err
	}

	for _, name := range files {
		data, err := locales.ReadFile(name)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, err
		}
	}

	return &Catalog{bundle: bundle}, nil
}

// Default returns a shared catalog of the embedded messages.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := NewCatalog()
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Languages returns the languages the catalog has messages for.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

func (c *Catalog) localizer(langs []string) *i18n.Localizer {
	tags := make([]string, 0, len(langs)+1)
	for _, l := range langs {
		tag, err := language.Parse(l)
		if err != nil {
			internal.GetInternalLogger().Warn("Ignoring invalid language tag", "lang", l, "error", err)
			continue
		}
		tags = append(tags, tag.String())
	}
	tags = append(tags, constants.DefaultLanguage)

	return i18n.NewLocalizer(c.bundle, tags...)
}

func (c *Catalog) localize(loc *i18n.Localizer, id string, data map[string]any) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		internal.GetInternalLogger().Warn("Message lookup failed", "id", id, "error", err)
		return id
	}
	return msg
}

// Error describes err in the first of langs the catalog knows, falling
// back to English. Joined errors are described one per line.
func (c *Catalog) Error(err error, langs ...string) string {
	if err == nil {
		return ""
	}
	return c.describe(c.localizer(langs), err)
}

func (c *Catalog) describe(loc *i18n.Localizer, err error) string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		lines := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			lines = append(lines, c.describe(loc, e))
		}
		return strings.Join(lines, "\n")
	}

	data := map[string]any{"Error": err.Error()}

	var cfgErr *router.ConfigError
	if errors.As(err, &cfgErr) {
		data["Stack"] = cfgErr.Stack
		data["Name"] = cfgErr.Name
	}

	for _, m := range messageIDs {
		if errors.Is(err, m.err) {
			return c.localize(loc, m.id, data)
		}
	}

	return c.localize(loc, "ConfigError", data)
}

// Position renders a one-line status for pos, such as "Main › Home".
func (c *Catalog) Position(pos router.Position, langs ...string) string {
	data := map[string]any{}
	if pos.Stack != nil {
		data["Stack"] = pos.Stack.Name
	}
	if pos.Route != nil {
		data["Route"] = pos.Route.Key
	}
	return c.localize(c.localizer(langs), "Position", data)
}
