package casing

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var directFuncs = map[Format]func(string, ...Option) string{
	FormatUpper:    ToUpperCase,
	FormatLower:    ToLowerCase,
	FormatTitle:    ToTitleCase,
	FormatSentence: ToSentenceCase,
	FormatCamel:    ToCamelCase,
	FormatPascal:   ToPascalCase,
	FormatSnake:    ToSnakeCase,
	FormatKebab:    ToKebabCase,
	FormatConstant: ToConstantCase,
}

var sampleInputs = []string{
	"",
	"hello world",
	"NASA launched a rocket. the iphone and android!",
	"  leading\tand trailing  ",
	"userProfile_id and-more",
	"line one\r\nline TWO\n\nline three.",
	"ünïcödé wörds",
}

func TestConvert_GoldenOutputs(t *testing.T) {
	opts := []Option{
		WithAlwaysCapitalize("iPhone"),
		WithNeverCapitalize("android"),
	}
	tests := []struct {
		input string
		want  map[Format]string
	}{
		{
			input: "the new iphone runs android",
			want: map[Format]string{
				FormatUpper:    "THE NEW IPHONE RUNS ANDROID",
				FormatLower:    "the new iphone runs android",
				FormatTitle:    "The New iPhone Runs android",
				FormatSentence: "The new iPhone runs android",
				FormatCamel:    "theNewIphoneRunsAndroid",
				FormatPascal:   "TheNewIphoneRunsAndroid",
				FormatSnake:    "the_new_iphone_runs_android",
				FormatKebab:    "the-new-iphone-runs-android",
				FormatConstant: "THE_NEW_IPHONE_RUNS_ANDROID",
			},
		},
		{
			input: "NASA rover\r\nuserID-v2_final",
			want: map[Format]string{
				FormatUpper:    "NASA ROVER\r\nUSERID-V2_FINAL",
				FormatLower:    "nasa rover\r\nuserid-v2_final",
				FormatTitle:    "NASA Rover\r\nUserid-v2_final",
				FormatSentence: "NASA rover\r\nUserid-v2_final",
				FormatCamel:    "nasaRover\r\nuseridV2Final",
				FormatPascal:   "NasaRover\r\nUseridV2Final",
				FormatSnake:    "nasa_rover\r\nuser_id_v2_final",
				FormatKebab:    "nasa-rover\r\nuser-id-v2-final",
				FormatConstant: "NASA_ROVER\r\nUSER_ID_V2_FINAL",
			},
		},
	}

	require.Len(t, directFuncs, len(Formats()))
	for _, tt := range tests {
		require.Len(t, tt.want, len(Formats()))
		for _, f := range Formats() {
			want := tt.want[f]
			assert.Equal(t, want, Convert(tt.input, f, opts...), "Convert %s, input %q", f, tt.input)
			assert.Equal(t, want, directFuncs[f](tt.input, opts...), "direct %s, input %q", f, tt.input)
		}
	}
}

func TestConverter_MethodsMatchConvert(t *testing.T) {
	c := New(WithNeverCapitalize("of"))
	methods := map[Format]func(string) string{
		FormatUpper:    c.Upper,
		FormatLower:    c.Lower,
		FormatTitle:    c.Title,
		FormatSentence: c.Sentence,
		FormatCamel:    c.Camel,
		FormatPascal:   c.Pascal,
		FormatSnake:    c.Snake,
		FormatKebab:    c.Kebab,
		FormatConstant: c.Constant,
	}
	for f, method := range methods {
		for _, input := range sampleInputs {
			assert.Equal(t, c.Convert(input, f), method(input), "format %s, input %q", f, input)
		}
	}
}

func TestConvert_UnknownFormatIsNoOp(t *testing.T) {
	assert.Equal(t, "Hello World", Convert("Hello World", Format("shouty")))
	assert.Equal(t, "Hello World", Convert("Hello World", Format("")))
}

func TestConvert_EmptyInput(t *testing.T) {
	for _, f := range Formats() {
		assert.Equal(t, "", Convert("", f), "format %s", f)
		assert.Equal(t, "", directFuncs[f](""), "format %s", f)
	}
	assert.Empty(t, ProcessMultilineText("", func(s string) string { return "x" }))
}

func TestConvert_UpperLowerIdempotent(t *testing.T) {
	for _, input := range sampleInputs {
		upper := ToUpperCase(input)
		assert.Equal(t, upper, ToUpperCase(upper))
		lower := ToLowerCase(input)
		assert.Equal(t, lower, ToLowerCase(lower))
	}
}

func TestConvert_CamelStartsLowercase(t *testing.T) {
	for _, input := range []string{"Hello World", "API response", "X", "über Cool"} {
		got := ToCamelCase(input)
		require.NotEmpty(t, got)
		first := []rune(got)[0]
		assert.Equal(t, string(first), ToLowerCase(string(first)), "ToCamelCase(%q) = %q", input, got)
	}
}

// skeleton replaces every word token with a placeholder, leaving the
// whitespace runs intact.
func skeleton(s string) []string {
	var out []string
	for _, t := range Tokenize(s) {
		if t.Space {
			out = append(out, t.Text)
		} else {
			out = append(out, "W")
		}
	}
	return out
}

func TestConvert_ProseFormatsPreserveWhitespace(t *testing.T) {
	opts := []Option{WithAlwaysCapitalize("iPhone")}
	for _, f := range []Format{FormatUpper, FormatLower, FormatTitle, FormatSentence} {
		for _, input := range sampleInputs {
			got := Convert(input, f, opts...)
			assert.Equal(t, skeleton(input), skeleton(got), "format %s, input %q", f, input)
		}
	}
}

func TestConvert_Language(t *testing.T) {
	assert.Equal(t, "İSTANBUL", ToUpperCase("istanbul", WithLanguage(language.Turkish)))
	assert.Equal(t, "ISTANBUL", ToUpperCase("istanbul"))
}

func TestConverter_ConvertAll(t *testing.T) {
	results := New().ConvertAll("user profile")
	require.Len(t, results, len(Formats()))

	want := map[Format]string{
		FormatUpper:    "USER PROFILE",
		FormatLower:    "user profile",
		FormatTitle:    "User Profile",
		FormatSentence: "User profile",
		FormatCamel:    "userProfile",
		FormatPascal:   "UserProfile",
		FormatSnake:    "user_profile",
		FormatKebab:    "user-profile",
		FormatConstant: "USER_PROFILE",
	}
	for i, r := range results {
		assert.Equal(t, Formats()[i], r.Format)
		assert.Equal(t, want[r.Format], r.Text, "format %s", r.Format)
	}
}

func TestConverter_ConcurrentUse(t *testing.T) {
	c := New(WithAlwaysCapitalize("iPhone"))
	const want = "The iPhone Is Here"

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Title("the iphone is here")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestNew_IgnoresEmptyListEntries(t *testing.T) {
	c := New(WithAlwaysCapitalize("", "iOS"), nil)
	assert.Len(t, c.always, 1)
	assert.Equal(t, "iOS Rocks", c.Title("ios rocks"))
}

func TestIsAcronym(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"NASA", true},
		{"A1", true},
		{"U.S.", true},
		{"ÉTÉ", true},
		{"A", false},
		{"Nasa", false},
		{"123", false},
		{"--", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAcronym(tt.word))
		})
	}
}
