package konfig

import "go.uber.org/multierr"

// ValidationResult is the outcome of validating one section.
type ValidationResult struct {
	Name string
	Err  error
}

// ValidationResults lists the outcome for every registered section, sorted by name.
type ValidationResults []ValidationResult

// OK reports whether every section passed validation.
func (r ValidationResults) OK() bool {
	for _, result := range r {
		if result.Err != nil {
			return false
		}
	}

	return true
}

// Err combines all failures into a single error, or returns nil when every section passed.
// Each failure is a *SectionError; use multierr.Errors to split them again.
func (r ValidationResults) Err() error {
	var err error

	for _, result := range r {
		if result.Err != nil {
			err = multierr.Append(err, &SectionError{Section: result.Name, Op: OpValidate, Err: result.Err})
		}
	}

	return err
}

// ValidateAll calls Validate on every registered section and reports each
// result. Unlike Load it never stops early, and it never changes any state.
func (m *Manager) ValidateAll() ValidationResults {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := m.registry.Names()
	results := make(ValidationResults, 0, len(names))

	for _, name := range names {
		section, _ := m.registry.Get(name)

		var err error
		if validateErr := section.Validate(); validateErr != nil {
			err = classify(ErrValidation, validateErr)
		}

		results = append(results, ValidationResult{Name: name, Err: err})
	}

	return results
}
