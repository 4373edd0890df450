// Package runtime handles the infrastructure-level tasks like loading lesson documents.
package runtime

import (
	"attendance-lab/domain"
	"attendance-lab/errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// lessonDocument is the layout of a lesson file. JSON files are read the same way.
type lessonDocument struct {
	Lessons []domain.Lesson `yaml:"lessons"`
}

// LessonLoader reads lesson documents from a filesystem.
type LessonLoader struct {
	fs fs.FS
}

// NewLessonLoader creates a new instance of LessonLoader reading from f.
func NewLessonLoader(f fs.FS) *LessonLoader {
	return &LessonLoader{fs: f}
}

// LoadAll parses every .yaml, .yml and .json file of dir, in lexical order.
// Lessons without an id are named after their file and position.
func (l *LessonLoader) LoadAll(dir string) ([]domain.Lesson, error) {
	entries, err := fs.ReadDir(l.fs, dir)
	if err != nil {
		return nil, err
	}

	var lessons []domain.Lesson
	for _, entry := range entries {
		// We only process files, skipping subdirectories
		if entry.IsDir() || !isLessonFile(entry.Name()) {
			continue
		}

		data, err := fs.ReadFile(l.fs, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		var doc lessonDocument
		if err = yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", entry.Name(), err)
		}
		for i, lesson := range doc.Lessons {
			if lesson.ID == "" {
				lesson.ID = fmt.Sprintf("%s#%d", entry.Name(), i+1)
			}
			lessons = append(lessons, lesson)
		}
	}

	if len(lessons) == 0 {
		return nil, fmt.Errorf("%w in %s", errors.ErrEmptyLessons, dir)
	}
	return lessons, nil
}

func isLessonFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
