package producttype_test

func enumValue(key, label string) map[string]any {
	return map[string]any{"key": key, "label": label}
}

func lenumValue(key, label string) map[string]any {
	return map[string]any{"key": key, "label": map[string]any{"en": label}}
}

func enumType(name string, values ...map[string]any) map[string]any {
	list := make([]any, 0, len(values))
	for _, v := range values {
		list = append(list, v)
	}
	return map[string]any{"name": name, "values": list}
}

func attribute(name string, attributeType map[string]any) map[string]any {
	return map[string]any{
		"name":                name,
		"label":               map[string]any{"en": name},
		"isRequired":          false,
		"isSearchable":        true,
		"attributeConstraint": "None",
		"inputHint":           "SingleLine",
		"type":                attributeType,
	}
}

func textAttribute(name string) map[string]any {
	return attribute(name, map[string]any{"name": "text"})
}

func productType(name string, attributes ...map[string]any) map[string]any {
	list := make([]any, 0, len(attributes))
	for _, a := range attributes {
		list = append(list, a)
	}
	return map[string]any{"name": name, "key": "pt", "attributes": list}
}

func with(doc map[string]any, key string, value any) map[string]any {
	out := make(map[string]any, len(doc)+1)
	for k, v := range doc {
		out[k] = v
	}
	if value == nil {
		delete(out, key)
		return out
	}
	out[key] = value
	return out
}
