package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/fitfinder/internal/models"
)

// RawRecord is one undecoded catalog entry. Two source shapes are accepted:
// the native camelCase fields (id, name, bodyPart, ...) and the scraped
// dataset columns ("" index, Title, BodyPart, Level, Desc, Type, Rating).
type RawRecord map[string]any

const (
	unnamedExercise  = "Unnamed Exercise"
	noInstructions   = "No instructions available"
	instructionDelim = "."
	tagDelim         = ","
)

// Normalize converts a raw record into an Exercise. index is the record's
// position within its source file and only feeds the fallback id.
func Normalize(raw RawRecord, index int) models.Exercise {
	name, ok := raw.present("name", "Title")
	if !ok || name == "" {
		name = unnamedExercise
	}

	id, ok := raw.present("id", "")
	if !ok || id == "" {
		id = fmt.Sprintf("%s-%d", name, index)
	}

	ex := models.Exercise{
		ID:           id,
		Name:         name,
		BodyPart:     raw.tags("bodyPart", "BodyPart"),
		Equipment:    raw.tags("equipment", "Equipment"),
		Goals:        raw.tags("goals", "Type"),
		Difficulty:   models.ParseDifficulty(raw.truthy("difficulty", "Level")),
		Instructions: raw.instructions(),
		Tips:         raw.truthy("tips", "RatingDesc"),
		RatingDesc:   raw.truthy("ratingDesc", "RatingDesc"),
		Image:        raw.truthy("image"),
		Video:        raw.truthy("video"),
	}
	if r, ok := raw.number("rating", "Rating"); ok {
		ex.Rating = &r
	}
	return ex
}

// present returns the first key that exists with a non-nil value
func (r RawRecord) present(keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			if s, ok := scalar(v); ok {
				return strings.TrimSpace(s), true
			}
		}
	}
	return "", false
}

// truthy returns the first value that is set and not blank
func (r RawRecord) truthy(keys ...string) string {
	for _, k := range keys {
		if s, ok := scalar(r[k]); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func (r RawRecord) tags(keys ...string) []string {
	for _, k := range keys {
		var parts []string
		switch v := r[k].(type) {
		case []any:
			for _, item := range v {
				if s, ok := scalar(item); ok {
					parts = append(parts, strings.Split(s, tagDelim)...)
				}
			}
		default:
			s, ok := scalar(v)
			if !ok || strings.TrimSpace(s) == "" {
				continue
			}
			parts = strings.Split(s, tagDelim)
		}

		tags := make([]string, 0, len(parts))
		for _, p := range parts {
			if t := strings.ToLower(strings.TrimSpace(p)); t != "" {
				tags = append(tags, t)
			}
		}
		if len(tags) > 0 {
			return tags
		}
	}
	return []string{}
}

func (r RawRecord) instructions() []string {
	var steps []string
	switch v := r["instructions"].(type) {
	case []any:
		for _, item := range v {
			if s, ok := scalar(item); ok {
				steps = append(steps, s)
			}
		}
	case string:
		steps = []string{v}
	}
	if len(steps) == 0 {
		if desc, ok := r["Desc"].(string); ok {
			steps = strings.Split(desc, instructionDelim)
		}
	}

	out := make([]string, 0, len(steps))
	for _, s := range steps {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return []string{noInstructions}
	}
	return out
}

// number reads a rating-like value given either as a number or a numeric
// string. Zero and unparsable values count as absent.
func (r RawRecord) number(keys ...string) (float64, bool) {
	for _, k := range keys {
		var f float64
		switch v := r[k].(type) {
		case float64:
			f = v
		case int:
			f = float64(v)
		case int64:
			f = float64(v)
		case string:
			parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				continue
			}
			f = parsed
		default:
			continue
		}
		if f != 0 {
			return f, true
		}
	}
	return 0, false
}

func scalar(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}
