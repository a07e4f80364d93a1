package domain

import "strings"

// uncountable are nouns whose plural equals the singular. Category names
// like "Research" must keep their view name unchanged.
var uncountable = map[string]bool{
	"research":    true,
	"information": true,
	"software":    true,
	"feedback":    true,
	"equipment":   true,
	"news":        true,
}

// Pluralize returns the plural form of a category name for view naming.
//
// Rules, in order: uncountable nouns are unchanged; a final consonant+y
// becomes "ies" (Story -> Stories); words ending in s, x, z, ch or sh take
// "es"; everything else takes a plain "s" (Testing -> Testings).
func Pluralize(name string) string {
	if name == "" {
		return name
	}
	if uncountable[strings.ToLower(name)] {
		return name
	}

	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, "y") && len(name) >= 2 && !isVowel(lower[len(lower)-2]) {
		return name[:len(name)-1] + "ies"
	}
	for _, suffix := range []string{"s", "x", "z", "ch", "sh"} {
		if strings.HasSuffix(lower, suffix) {
			return name + "es"
		}
	}
	return name + "s"
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
