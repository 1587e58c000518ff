package settings

import (
	"fmt"
	"os"

	"github.com/samhoang/claude-notify/internal/errors"
)

// NormalizeLegacyEntry converts an entry from the legacy hooks.json into the
// list shape: lists pass through unchanged, anything else (a legacy single
// hook or an unrecognized value) becomes a one-element list holding the
// original value verbatim.
func NormalizeLegacyEntry(e *Entry) *Entry {
	switch e.Kind {
	case KindGroups:
		return e
	case KindSingle:
		return NewGroupsEntry(OpaqueGroup(e.Single.raw))
	default:
		return NewGroupsEntry(OpaqueGroup(e.raw))
	}
}

// MigrateLegacy normalizes every hook type of a legacy document. It returns
// nil when the legacy document has no hooks.
func MigrateLegacy(legacy *Document) *Hooks {
	if legacy.hooks == nil {
		return nil
	}

	out := newHooks()
	for _, hookType := range legacy.hooks.order {
		out.Set(hookType, NormalizeLegacyEntry(legacy.hooks.entries[hookType]))
	}
	return out
}

// MigrationResult describes a hooks.json -> settings.json migration
type MigrationResult struct {
	Migrated      []string // hook types copied into settings.json
	LegacyRemoved bool
}

// MigrateFile moves hooks from the legacy hooks.json into settings.json and
// deletes hooks.json. Migrated hook types replace the same types in
// settings.json; other types are left alone. A missing legacy file is not an
// error and yields an empty result. A legacy file without hooks is left in place.
func MigrateFile(legacyPath, settingsPath string) (*MigrationResult, error) {
	result := &MigrationResult{}

	if _, err := os.Stat(legacyPath); err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, errors.NewPathError(legacyPath, "stat legacy hooks", err)
	}

	legacy, err := Load(legacyPath)
	if err != nil {
		return nil, err
	}

	migrated := MigrateLegacy(legacy)
	if migrated == nil {
		return result, nil
	}

	doc, err := Load(settingsPath)
	if err != nil {
		return nil, err
	}

	hooks := doc.EnsureHooks()
	for _, hookType := range migrated.order {
		hooks.Set(hookType, migrated.entries[hookType])
	}
	result.Migrated = migrated.Types()

	if _, err := doc.Save(settingsPath); err != nil {
		return nil, err
	}

	if err := os.Remove(legacyPath); err != nil {
		return result, fmt.Errorf("settings migrated but legacy file not removed: %w",
			errors.NewPathError(legacyPath, "remove legacy hooks", err))
	}
	result.LegacyRemoved = true

	return result, nil
}
