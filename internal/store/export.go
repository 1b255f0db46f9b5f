package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/kotoba/internal/progress"
)

// snapshotSchema validates imported snapshot JSON before it touches the
// domain. Imports come from hand-edited or foreign backup files, so shape
// and range errors are caught here rather than deep in conversion.
const snapshotSchema = `{
	"type": "object",
	"required": ["level", "xp", "totalXp", "streak", "longestStreak", "dailyGoal"],
	"properties": {
		"version": {"type": "integer", "minimum": 0},
		"level": {"type": "integer", "minimum": 1},
		"xp": {"type": "integer", "minimum": 0},
		"totalXp": {"type": "integer", "minimum": 0},
		"streak": {"type": "integer", "minimum": 0},
		"longestStreak": {"type": "integer", "minimum": 0},
		"lastStudyDate": {"type": "string", "pattern": "^(\\d{4}-\\d{2}-\\d{2})?$"},
		"studyDates": {"type": "array", "items": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"}},
		"wordsLearned": {"type": "array", "items": {"type": "integer"}},
		"kanjiLearned": {"type": "array", "items": {"type": "integer"}},
		"lessonsCompleted": {"type": "array", "items": {"type": "integer"}},
		"quizScores": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["lessonId", "score"],
				"properties": {
					"lessonId": {"type": "integer"},
					"score": {"type": "integer", "minimum": 0, "maximum": 100},
					"date": {"type": "string"}
				}
			}
		},
		"achievements": {"type": "array", "items": {"type": "string"}},
		"dailyGoal": {"type": "integer", "minimum": 1},
		"dailyProgress": {"type": "integer", "minimum": 0},
		"lastResetDate": {"type": "string", "pattern": "^(\\d{4}-\\d{2}-\\d{2})?$"},
		"reviewQueue": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["type", "id"],
				"properties": {
					"type": {"enum": ["word", "kanji", "grammar"]},
					"id": {"type": "integer"},
					"nextReview": {"type": "string"},
					"interval": {"type": "integer", "minimum": 0},
					"easeFactor": {"type": "number", "minimum": 1.3},
					"repetitions": {"type": "integer", "minimum": 0}
				}
			}
		},
		"settings": {"type": "object"}
	}
}`

var (
	compiledSchema     *jsonschema.Schema
	compileSchemaOnce  sync.Once
	compileSchemaError error
)

func snapshotJSONSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(snapshotSchema), &def); err != nil {
			compileSchemaError = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://snapshot.json", def); err != nil {
			compileSchemaError = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileSchemaError = c.Compile("schema://snapshot.json")
	})
	return compiledSchema, compileSchemaError
}

// ExportJSON renders the snapshot as indented JSON for backup files.
func ExportJSON(p *progress.Snapshot) ([]byte, error) {
	b, err := json.MarshalIndent(FromSnapshot(p), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export snapshot: %w", err)
	}
	return b, nil
}

// ImportJSON validates backup JSON against the snapshot schema and converts
// it to a domain snapshot. The input is rejected wholesale on any violation.
func ImportJSON(raw []byte) (*progress.Snapshot, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := snapshotJSONSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var data SnapshotData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return data.ToSnapshot()
}
