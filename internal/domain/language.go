package domain

import "fmt"

// Language identifies a supported source language.
type Language string

const (
	LanguageCpp    Language = "cpp"
	LanguageC      Language = "c"
	LanguagePython Language = "py"
	LanguageJava   Language = "java"
)

// EditorMode is the syntax mode the editor uses for a language.
type EditorMode string

const (
	EditorModeCpp    EditorMode = "cpp"
	EditorModePython EditorMode = "python"
	EditorModeJava   EditorMode = "java"
)

// LanguageSpec describes everything that varies per language.
type LanguageSpec struct {
	Language    Language   `json:"id"`
	DisplayName string     `json:"name"`
	EditorMode  EditorMode `json:"editor_mode"`
	Template    string     `json:"template"`
	Target      string     `json:"-"` // name the compiler service expects
}

// AllLanguages lists the supported languages in picker order.
var AllLanguages = [...]Language{LanguageCpp, LanguageC, LanguagePython, LanguageJava}

// languageSpecs must hold an entry for every value in AllLanguages.
var languageSpecs = map[Language]LanguageSpec{
	LanguageCpp: {
		Language:    LanguageCpp,
		Target:      "cpp",
		DisplayName: "C++",
		EditorMode:  EditorModeCpp,
		Template: `#include <iostream>

int main() {
    std::cout << "Hello World!";
    return 0;
}
`,
	},
	LanguageC: {
		Language:    LanguageC,
		Target:      "c",
		DisplayName: "C",
		EditorMode:  EditorModeCpp,
		Template: `#include <stdio.h>

int main() {
    printf("Hello, World!");
    return 0;
}
`,
	},
	LanguagePython: {
		Language:    LanguagePython,
		Target:      "py",
		DisplayName: "Python",
		EditorMode:  EditorModePython,
		Template:    "print('Hello, world!')\n",
	},
	LanguageJava: {
		Language:    LanguageJava,
		Target:      "java",
		DisplayName: "Java",
		EditorMode:  EditorModeJava,
		Template: `import java.util.Scanner;

class Main {
    public static void main(String[] args) {
        System.out.println("Hello, World!");
    }
}
`,
	},
}

// ParseLanguage validates a language identifier coming from outside the service.
func ParseLanguage(s string) (Language, error) {
	lang := Language(s)
	if _, ok := languageSpecs[lang]; !ok {
		return "", fmt.Errorf("unsupported language %q", s)
	}
	return lang, nil
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	_, ok := languageSpecs[l]
	return ok
}

// Spec returns the behaviour table entry for l. It panics for unknown
// languages; values must come from ParseLanguage or the constants above.
func (l Language) Spec() LanguageSpec {
	spec, ok := languageSpecs[l]
	if !ok {
		panic(fmt.Sprintf("domain: no spec for language %q", string(l)))
	}
	return spec
}

// LanguageSpecs returns the table in picker order.
func LanguageSpecs() []LanguageSpec {
	specs := make([]LanguageSpec, 0, len(AllLanguages))
	for _, l := range AllLanguages {
		specs = append(specs, l.Spec())
	}
	return specs
}
