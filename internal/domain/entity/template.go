package entity

// Template names form a closed, compile-time-fixed set. A stored name
// outside this set renders nothing and resolves to a template-not-found
// error, never to an implicit fallback.
const (
	TemplateFlara      = "flara"
	TemplateAvenix     = "avenix"
	TemplateBlissly    = "blissly"
	TemplateFlavornest = "flavornest"
)

// KnownTemplates lists every template the platform can render.
func KnownTemplates() []string {
	return []string{TemplateFlara, TemplateAvenix, TemplateBlissly, TemplateFlavornest}
}

// IsKnownTemplate reports whether name belongs to the fixed template set.
func IsKnownTemplate(name string) bool {
	switch name {
	case TemplateFlara, TemplateAvenix, TemplateBlissly, TemplateFlavornest:
		return true
	}

	return false
}
