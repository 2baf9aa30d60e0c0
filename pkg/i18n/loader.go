package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithYAMLDir loads translations from YAML files in an fs.FS.
// The filesystem root must contain one directory per language, with
// namespace files inside:
//
//	en/contact.yaml
//	fr/contact.yaml
func WithYAMLDir(fsys fs.FS) Option {
	return func(b *Bundle) error {
		return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}

			ext := strings.ToLower(path.Ext(filePath))
			if ext != ".yaml" && ext != ".yml" {
				return nil
			}

			dir := path.Dir(filePath)
			if dir == "." || dir == "" {
				return fmt.Errorf("%w: %q must be inside a language directory", ErrInvalidFile, filePath)
			}

			lang := path.Base(dir)
			namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

			data, err := fs.ReadFile(fsys, filePath)
			if err != nil {
				return fmt.Errorf("i18n: reading %q: %w", filePath, err)
			}

			var translations map[string]any
			if err := yaml.Unmarshal(data, &translations); err != nil {
				return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
			}

			return WithTranslations(lang, namespace, translations)(b)
		})
	}
}
