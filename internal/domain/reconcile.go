package domain

// Reconcile aligns front matter with the canonical schema for its kind.
//
// Every canonical property appears in the output in schema order. Existing
// non-null values are kept untouched; absent or null values are filled from
// the property's default generator. Keys not in the schema are appended
// after the canonical ones, preserving their relative order. The function
// is pure and idempotent; persistence is the caller's job.
func Reconcile(schema Schema, fm *FrontMatter, ctx DefaultContext) *FrontMatter {
	out := NewFrontMatter()

	canonical := make(map[string]bool, len(schema.Props))
	for _, prop := range schema.Props {
		canonical[prop.Name] = true

		if fm != nil {
			if v, ok := fm.Get(prop.Name); ok && !v.IsNull() {
				out.Set(prop.Name, v)
				continue
			}
		}
		if prop.Default != nil {
			out.Set(prop.Name, prop.Default(ctx))
		} else {
			out.Set(prop.Name, Null())
		}
	}

	if fm != nil {
		for _, key := range fm.Keys() {
			if canonical[key] {
				continue
			}
			v, _ := fm.Get(key)
			out.Set(key, v)
		}
	}

	return out
}
