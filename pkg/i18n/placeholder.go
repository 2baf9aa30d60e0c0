package i18n

import (
	"fmt"
	"strings"
)

// ReplacePlaceholders substitutes {{name}} placeholders in template with
// values from the map. Unknown placeholders are left untouched.
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) == 0 {
		return template
	}

	result := template
	for key, value := range placeholders {
		result = strings.ReplaceAll(result, "{{"+key+"}}", fmt.Sprintf("%v", value))
	}
	return result
}
