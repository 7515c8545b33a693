package casing

// Convert converts text to the given format using a Converter built from
// opts. Empty text and unknown formats return text unchanged.
func Convert(text string, format Format, opts ...Option) string {
	return New(opts...).Convert(text, format)
}

// ToUpperCase converts text to UPPER CASE.
func ToUpperCase(text string, opts ...Option) string {
	return Convert(text, FormatUpper, opts...)
}

// ToLowerCase converts text to lower case.
func ToLowerCase(text string, opts ...Option) string {
	return Convert(text, FormatLower, opts...)
}

// ToTitleCase converts text to Title Case.
// Example: "to be or not to be" -> "To Be or Not to Be"
func ToTitleCase(text string, opts ...Option) string {
	return Convert(text, FormatTitle, opts...)
}

// ToSentenceCase converts text to Sentence case.
// Example: "hello there. HOW are you?" -> "Hello there. HOW are you?"
func ToSentenceCase(text string, opts ...Option) string {
	return Convert(text, FormatSentence, opts...)
}

// ToCamelCase converts text to camelCase.
// Example: "user-profile id" -> "userProfileId"
func ToCamelCase(text string, opts ...Option) string {
	return Convert(text, FormatCamel, opts...)
}

// ToPascalCase converts text to PascalCase.
// Example: "user_profile" -> "UserProfile"
func ToPascalCase(text string, opts ...Option) string {
	return Convert(text, FormatPascal, opts...)
}

// ToSnakeCase converts text to snake_case.
// Example: "userProfile ID" -> "user_profile_id"
func ToSnakeCase(text string, opts ...Option) string {
	return Convert(text, FormatSnake, opts...)
}

// ToKebabCase converts text to kebab-case.
// Example: "UserProfile" -> "user-profile"
func ToKebabCase(text string, opts ...Option) string {
	return Convert(text, FormatKebab, opts...)
}

// ToConstantCase converts text to CONSTANT_CASE.
// Example: "maxRetryCount" -> "MAX_RETRY_COUNT"
func ToConstantCase(text string, opts ...Option) string {
	return Convert(text, FormatConstant, opts...)
}
