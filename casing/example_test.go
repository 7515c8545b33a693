package casing_test

import (
	"fmt"

	"github.com/erraggy/recase/casing"
)

func ExampleToTitleCase() {
	fmt.Println(casing.ToTitleCase("NASA launched a rocket"))
	fmt.Println(casing.ToTitleCase("NASA launched a rocket", casing.WithPreserveAcronyms(false)))
	fmt.Println(casing.ToTitleCase("to be or not to be"))
	// Output:
	// NASA Launched a Rocket
	// Nasa Launched a Rocket
	// To Be or Not to Be
}

func ExampleConvert() {
	fmt.Println(casing.Convert("user profile id", casing.FormatSnake))
	fmt.Println(casing.Convert("maxRetryCount", casing.FormatConstant))
	fmt.Printf("%q\n", casing.Convert("hello\r\nWORLD", casing.FormatLower))
	// Output:
	// user_profile_id
	// MAX_RETRY_COUNT
	// "hello\r\nworld"
}

func ExampleNew() {
	c := casing.New(
		casing.WithAlwaysCapitalize("iPhone"),
		casing.WithNeverCapitalize("android"),
	)
	fmt.Println(c.Title("the iphone and android"))
	fmt.Println(c.Sentence("my iphone. android rules"))
	// Output:
	// The iPhone and android
	// My iPhone. Android rules
}

func ExampleAnalyze() {
	s := casing.Analyze("One sentence. Two sentences!")
	fmt.Println(s.Words, s.Sentences)
	// Output:
	// 4 2
}
