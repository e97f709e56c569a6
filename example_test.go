package sitehelper_test

import (
	"fmt"
	"strings"

	sitehelper "github.com/literallytheone/site-helper"
)

// Example converts the TOML frontmatter of a Hugo page to YAML.
func Example() {
	page := "+++\ntitle = \"Hello\"\ndraft = false\n+++\n# Body\nx = y"
	fmt.Println(sitehelper.ConvertFrontmatterText(page))
	// Output:
	// ---
	// title: "Hello"
	// draft: false
	// ---
	// # Body
	// x = y
}

// ExampleConvertFrontmatter shows that scanning stops at the closing marker.
func ExampleConvertFrontmatter() {
	lines := []string{"+++", "x = 1", "+++", "y = 2", "+++"}
	fmt.Println(strings.Join(sitehelper.ConvertFrontmatter(lines), " | "))
	// Output: --- | x: 1 | --- | y = 2 | +++
}

// ExampleSlidePrefix rewrites a Marp deck's shared asset paths.
func ExampleSlidePrefix() {
	prefix, err := sitehelper.SlidePrefix("site/static/slides/tutorials/pytorch/docs/0-intro/index.html")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(prefix)
	fmt.Println(sitehelper.RewriteSlideText(`<img src="../../img/logo.png">`, prefix))
	// Output:
	// tutorials/pytorch
	// <img src="/tutorials/pytorch/img/logo.png">
}
