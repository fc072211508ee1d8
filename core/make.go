package core

import (
	"fmt"
	"time"
)

// maker carries the configure and finalize modifiers Builder.Make plugs into
// the lifecycle.
type maker struct {
	start time.Time
}

func (mk *maker) configure(m Model, a Archetype, u *Universe, b *Builder) (Model, error) {
	if storage, ok := m.(ComponentStorage); ok {
		if err := PopulateComponents(a, u, b, storage); err != nil {
			return nil, err
		}
		return m, nil
	}
	if declaresComponents(a) {
		u.log.LogWarn("archetype declares components but model has no component storage",
			"archetype", a.Key(),
			"model_type", fmt.Sprintf("%T", m),
			"unlinked", len(a.UnlinkedComponents()),
			"linked", len(a.LinkedComponents()),
		)
	}
	return m, nil
}

func (mk *maker) finalize(m Model, a Archetype, u *Universe, b *Builder) (Model, error) {
	log := u.ModelLog()
	if log == nil {
		return m, nil
	}
	entry := ModelLogEntry{
		Action:    ActionBuilt,
		Archetype: a.Key(),
		Model:     m,
		Builder:   b,
		Metadata:  map[string]any{MetadataAutoBuilderUsed: u.hasAutoBuilderSteps(a)},
		Timestamp: time.Now(),
	}
	entry.Elapsed = entry.Timestamp.Sub(mk.start)
	if err := tryLog(log, entry); err != nil {
		u.log.LogWarn("model log failed", "archetype", a.Key(), "error", err)
	}
	return m, nil
}

// tryLog delivers entry and converts a panicking ModelLog into an error.
func tryLog(log ModelLog, entry ModelLogEntry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("model log panic: %v", r)
		}
	}()
	return log.Log(entry)
}
