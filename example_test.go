package ukase_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/esvolkov/ukase"
)

// Example resolves the builtin template, which needs no configuration.
func Example() {
	loader, err := ukase.NewResourceLoader()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer loader.Close()

	src, err := loader.Resolve(ukase.BuiltinTemplate)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(src.Filename(), src.Kind())
	// Output: default - image as page builtin
}

// Example_upload registers a template at runtime and resolves it.
func Example_upload() {
	loader, err := ukase.NewResourceLoader()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer loader.Close()

	loader.Upload("greeting", "Hello {{name}}")

	src, err := loader.Resolve(ukase.UploadPrefix + "greeting")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	content, _ := src.Content()
	fmt.Println(content)
	// Output: Hello {{name}}
}

// Example_templateDir resolves a template from an override directory.
func Example_templateDir() {
	dir, err := os.MkdirTemp("", "ukase-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	_ = os.MkdirAll(filepath.Join(dir, "templates"), 0o755)
	_ = os.WriteFile(filepath.Join(dir, "templates", "invoice.hbs"), []byte("Invoice #{{number}}"), 0o644)

	loader, err := ukase.NewResourceLoader(ukase.WithTemplateDir(dir))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer loader.Close()

	src, err := loader.Resolve("invoice")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	content, _ := src.Content()
	fmt.Println(content)
	// Output: Invoice #{{number}}
}
