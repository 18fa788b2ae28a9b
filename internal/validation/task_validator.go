package validation

import (
	"tasker/internal/domain"
)

// TaskValidator provides validation for task and category operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWith creates a task validator backed by the given validator
func NewTaskValidatorWith(v *Validator) *TaskValidator {
	return &TaskValidator{validator: v}
}

// ValidateTitle validates a task title for creation or update
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimString(title)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
		return validationError
	}

	if !tv.validator.IsValidTitleLength(trimmed) {
		validationError.AddInvalidLengthError("title", trimmed, 1, tv.validator.TitleMaxLength())
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateDescription validates an optional task description
func (tv *TaskValidator) ValidateDescription(description string) error {
	if tv.validator.IsValidDescriptionLength(description) {
		return nil
	}

	validationError := NewValidationError()
	validationError.AddInvalidLengthError("description", description, 0, tv.validator.DescriptionMaxLength())
	return validationError
}

// ValidatePriority validates that a priority names a known level
func (tv *TaskValidator) ValidatePriority(priority domain.Priority) error {
	if priority.IsValid() {
		return nil
	}

	validationError := NewValidationError()
	validationError.AddInvalidValueError("priority", string(priority), "must be one of low, medium, high")
	return validationError
}

// ValidateCategoryName validates a category name for creation
func (tv *TaskValidator) ValidateCategoryName(name string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimString(name)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("category")
		return validationError
	}

	if !tv.validator.IsValidStringLength(trimmed, 1, tv.validator.CategoryNameMaxLength()) {
		validationError.AddInvalidLengthError("category", trimmed, 1, tv.validator.CategoryNameMaxLength())
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// GetValidTitle returns a cleaned task title if valid
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimString(title), nil
}

// GetValidCategoryName returns a cleaned category name if valid
func (tv *TaskValidator) GetValidCategoryName(name string) (string, error) {
	if err := tv.ValidateCategoryName(name); err != nil {
		return "", err
	}
	return tv.validator.TrimString(name), nil
}
