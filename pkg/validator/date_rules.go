package validator

// Rule validates raw immediately and wraps the verdict for Apply.
func (v *DateValidator) Rule(field string, raw any) Rule {
	_, res := v.Check(raw)
	return v.ResultRule(field, res)
}

// ResultRule wraps a verdict obtained from Check, so a value parsed once can
// still be reported through Apply.
func (v *DateValidator) ResultRule(field string, res Result) Rule {
	if res == ResultValid {
		return Rule{Check: func() bool { return true }}
	}
	return Rule{
		Check: func() bool { return false },
		Error: v.newError(field, field, res),
	}
}

// Rules validates several raw values of the same format, keyed by field name.
// Fields are visited in the order given.
func (v *DateValidator) Rules(fields []string, values map[string]any) []Rule {
	rules := make([]Rule, 0, len(fields))
	for _, field := range fields {
		rules = append(rules, v.Rule(field, values[field]))
	}
	return rules
}
