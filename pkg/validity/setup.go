package validity

import "strings"

// BuildRegistry discovers form's controls and appends a Field for each one
// not already indexed by registry. A nil registry starts a new one. Running
// it again over the same registry only adds controls that appeared since.
func BuildRegistry(form FormHandle, collab Collaborators, cfg Config, registry *Registry) *Registry {
	if registry == nil {
		registry = NewRegistry()
	}

	for _, control := range collab.Discovery.Controls(form) {
		if control == nil || skipKind(control.Kind()) {
			continue
		}
		if registry.Has(control) {
			continue
		}

		members := memberControls(form, collab.Discovery, control)
		grouped := len(members) > 1

		if cfg.GroupPolicy == GroupDedupe && grouped {
			if existing := capturedBy(registry, members); existing != nil {
				registry.alias(control, existing)
				continue
			}
		}

		display, messages := collab.Layout.Targets(form, control, grouped, cfg.ParentSelector)
		field := newField(control, members, ResolveValidators(control, cfg), display, messages)
		registry.add(field)

		if cfg.GroupPolicy == GroupDedupe {
			for _, member := range members {
				registry.alias(member, field)
			}
		}
	}

	return registry
}

// skipKind excludes submit and hidden controls, including variants such as
// "image-submit" a host may report.
func skipKind(kind ControlKind) bool {
	k := strings.ToLower(string(kind))
	return strings.Contains(k, string(KindSubmit)) || strings.Contains(k, string(KindHidden))
}

func memberControls(form FormHandle, discovery Discovery, control Control) []Control {
	switch control.Kind() {
	case KindRadio, KindCheckbox:
	default:
		return []Control{control}
	}

	group := discovery.Group(form, control.Name())
	if len(group) == 0 {
		return []Control{control}
	}
	return group
}

func capturedBy(registry *Registry, members []Control) *Field {
	for _, member := range members {
		if f, ok := registry.Lookup(member); ok {
			return f
		}
	}
	return nil
}
