package generate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/testpilot-io/testpilot/config"
)

var multiSpace = regexp.MustCompile(`[ \t]+`)

// BuildPrompt constructs the model prompt for a generation request. All
// user-provided content is sanitized before being embedded, and XML-style
// tags keep a clear boundary between instructions and user data.
func BuildPrompt(req Request, vcfg *ValidationConfig) (string, error) {
	if vcfg == nil {
		vcfg = DefaultValidationConfig()
	}

	if len(req.Prompt) > vcfg.MaxPromptLength {
		return "", fmt.Errorf("%w (%d characters, maximum %d)", ErrPromptTooLong, len(req.Prompt), vcfg.MaxPromptLength)
	}
	if len(req.URL) > vcfg.MaxURLLength {
		return "", fmt.Errorf("%w (%d characters, maximum %d)", ErrURLTooLong, len(req.URL), vcfg.MaxURLLength)
	}

	scope := SanitizePrompt(req.Prompt)
	target := SanitizeURL(req.URL)

	language, framework := languageNames(req.Language, req.Framework)

	prompt := fmt.Sprintf(`Generate a browser end-to-end test suite in %s using %s.

<test_scope>
%s
</test_scope>

<target_url>%s</target_url>

<requirements>
- Start the test at the target URL above
- Cover the behaviour described in the test scope, one test per behaviour
- Include proper error handling and meaningful assertion messages
- Respect the HEADLESS environment variable when launching the browser
- Return ONLY the %s code without markdown formatting or code blocks
- Do not include any explanatory text before or after the code
</requirements>
`, language, framework, scope, target, language)

	return prompt, nil
}

// SanitizePrompt normalizes a free-text prompt: control characters are
// stripped (newlines and tabs survive), non-printable runes dropped, and
// runs of spaces collapsed within lines.
func SanitizePrompt(s string) string {
	s = strings.TrimSpace(s)
	s = removeControlCharacters(s, true)

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(multiSpace.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// SanitizeURL strips control characters from a URL and prefixes https://
// onto bare hosts.
func SanitizeURL(s string) string {
	s = removeControlCharacters(strings.TrimSpace(s), false)
	if s == "" {
		return s
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		s = "https://" + s
	}
	return s
}

func languageNames(l config.Language, f config.Framework) (string, string) {
	language := "Python"
	switch l {
	case config.LanguageTypescript:
		language = "TypeScript"
	case config.LanguageJavascript:
		language = "JavaScript"
	}

	framework := "Playwright"
	if f == config.FrameworkCypress {
		framework = "Cypress"
	}
	return language, framework
}

// removeControlCharacters removes control characters from a string. If
// preserveFormatting is true, newlines and tabs are preserved.
func removeControlCharacters(s string, preserveFormatting bool) string {
	var result strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) {
			if preserveFormatting && (r == '\n' || r == '\t') {
				result.WriteRune(r)
			}
			continue
		}
		if unicode.IsPrint(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}
