package path_test

import (
	"fmt"
	"log"

	"lesiw.io/libpath/path"
)

func ExampleParse() {
	parts, err := path.Parse(`C:\Users\me\report.final.pdf`)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(parts.Style, parts.Class, parts.Abs)
	fmt.Println(parts.Root, parts.Dir, parts.NumDirs)
	fmt.Println(parts.Stem, parts.Ext)
	// Output:
	// windows DriveLetterRooted true
	// C:\ Users\me\ 2
	// report.final .pdf
}

func ExampleSplit() {
	fmt.Println(path.Split("static/css/site.css"))
	fmt.Println(path.Split("/"))
	// Output:
	// static/css/ site.css
	// /
}
